package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"trailfit_backend/internal/auth"
	"trailfit_backend/internal/logger"
	"trailfit_backend/internal/models"
	"trailfit_backend/internal/repositories"
	"trailfit_backend/internal/services/dto"
	"trailfit_backend/pkg/apperrors"
)

const TokenTypeBearer = "bearer"

// Все методы принимают 'db *gorm.DB' (пул или транзакцию текущего запроса)
type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, db *gorm.DB, email, password string) (*dto.TokenResponse, error)
	Authenticate(ctx context.Context, db *gorm.DB, token string) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenService

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenService) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register - регистрация нового пользователя
func (s *AuthServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, apperrors.ValidationError(map[string]string{
			"password": fmt.Sprintf("Must be at most %d bytes long", auth.MaxPasswordBytes),
		})
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		BodyWeight:   req.BodyWeight,
		Age:          req.Age,
		VO2Max:       req.VO2Max,
	}
	if req.Gender != nil {
		g := models.Gender(*req.Gender)
		user.Gender = &g
	}

	if err := s.userRepo.Create(db.WithContext(ctx), user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyRegistered
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "User registered", "user_id", user.ID)
	return user, nil
}

// Login - аутентификация по email и паролю. Неизвестный email и неверный пароль
// дают одинаковую ошибку.
func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, email, password string) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(db.WithContext(ctx), email)
	if err != nil {
		if !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.DatabaseError(err)
		}
		// Сравниваем с фиктивным хешем, чтобы время ответа не выдавало наличие аккаунта
		auth.CheckPasswordHash(password, s.dummyPasswordHash())
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		logger.CtxWarn(ctx, "Login failed", "user_id", user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenResponse{AccessToken: token, TokenType: TokenTypeBearer}, nil
}

// Authenticate проверяет access token и возвращает пользователя из subject
func (s *AuthServiceImpl) Authenticate(ctx context.Context, db *gorm.DB, token string) (*models.User, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		logger.CtxDebug(ctx, "Token rejected", "error", err)
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindByEmail(db.WithContext(ctx), claims.Subject)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, apperrors.DatabaseError(err)
	}
	return user, nil
}

func (s *AuthServiceImpl) dummyPasswordHash() string {
	s.dummyOnce.Do(func() {
		hash, err := auth.HashPassword("trailfit-dummy-password")
		if err != nil {
			logger.Error("failed to build dummy password hash", "error", err)
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

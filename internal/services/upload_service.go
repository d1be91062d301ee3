package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trailfit_backend/internal/logger"
	"trailfit_backend/internal/models"
	"trailfit_backend/internal/repositories"
	"trailfit_backend/internal/services/dto"
	"trailfit_backend/internal/storage"
	"trailfit_backend/pkg/apperrors"
)

const DefaultAllowedExtension = ".fit"

// Все методы принимают 'db *gorm.DB' (пул или транзакцию текущего запроса)
type UploadService interface {
	// Upload сохраняет файл в хранилище и создает запись с метаданными
	Upload(ctx context.Context, db *gorm.DB, req *dto.UploadRequest) (*models.Upload, error)

	// List возвращает все загрузки пользователя в порядке добавления
	List(ctx context.Context, db *gorm.DB, userID uint) ([]models.Upload, error)
}

type uploadService struct {
	uploadRepo repositories.UploadRepository
	storage    storage.Storage
	extension  string
	now        func() time.Time
	randomID   func() string
}

func NewUploadService(
	uploadRepo repositories.UploadRepository,
	storage storage.Storage,
	allowedExtension string,
) UploadService {
	if allowedExtension == "" {
		allowedExtension = DefaultAllowedExtension
	}

	return &uploadService{
		uploadRepo: uploadRepo,
		storage:    storage,
		extension:  strings.ToLower(allowedExtension),
		now:        time.Now,
		randomID:   func() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:8] },
	}
}

// checkFilename проверяет расширение файла без учета регистра
func (s *uploadService) checkFilename(filename string) error {
	if !strings.HasSuffix(strings.ToLower(filename), s.extension) {
		return apperrors.InvalidFileType(s.extension)
	}
	return nil
}

func (s *uploadService) Upload(ctx context.Context, db *gorm.DB, req *dto.UploadRequest) (*models.Upload, error) {
	if err := s.checkFilename(req.Filename); err != nil {
		return nil, err
	}

	key := s.storageKey(req.UserID, req.Filename)
	upload := &models.Upload{
		UserID:   req.UserID,
		Filename: req.Filename,
		FilePath: s.storage.Location(key),
	}
	applyMetadata(upload, &req.Metadata)

	if err := s.storage.Save(ctx, key, req.File, req.ContentType); err != nil {
		return nil, apperrors.StorageError(err)
	}

	if err := s.uploadRepo.Create(db.WithContext(ctx), upload); err != nil {
		// Откатываем файл из storage
		if delErr := s.storage.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			logger.CtxWithError(ctx, "failed to rollback file save", delErr, "key", key)
		}
		return nil, apperrors.DatabaseError(err)
	}

	logger.CtxInfo(ctx, "Upload stored", "upload_id", upload.ID, "key", key)
	return upload, nil
}

func (s *uploadService) List(ctx context.Context, db *gorm.DB, userID uint) ([]models.Upload, error) {
	uploads, err := s.uploadRepo.FindByUser(db.WithContext(ctx), userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return uploads, nil
}

// storageKey: <user_id>/<YYYYMMDD_HHMMSS>_<random>_<base name>
func (s *uploadService) storageKey(userID uint, filename string) string {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	ts := s.now().UTC().Format("20060102_150405")
	return fmt.Sprintf("%d/%s_%s_%s", userID, ts, s.randomID(), base)
}

func applyMetadata(u *models.Upload, m *dto.UploadMetadata) {
	u.RaceName = m.RaceName
	u.Notes = m.Notes
	u.FatigueLevel = m.FatigueLevel
	u.GeneralSensation = m.GeneralSensation
	u.SleepQuality = m.SleepQuality

	if m.SessionType != nil {
		v := models.SessionType(*m.SessionType)
		u.SessionType = &v
	}
	if m.HydrationStatus != nil {
		v := models.HydrationStatus(*m.HydrationStatus)
		u.HydrationStatus = &v
	}
	if m.WeatherCondition != nil {
		v := models.WeatherCondition(*m.WeatherCondition)
		u.WeatherCondition = &v
	}
	if m.TrailCondition != nil {
		v := models.TrailCondition(*m.TrailCondition)
		u.TrailCondition = &v
	}
}

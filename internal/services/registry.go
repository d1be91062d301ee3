package services

import (
	"trailfit_backend/internal/auth"
	"trailfit_backend/internal/repositories"
	"trailfit_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService   AuthService
	UploadService UploadService
}

// NewServiceContainer собирает сервисы из репозиториев, хранилища и сервиса токенов.
func NewServiceContainer(tokens *auth.TokenService, store storage.Storage, allowedExtension string) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	uploadRepo := repositories.NewUploadRepository()

	return &ServiceContainer{
		AuthService:   NewAuthService(userRepo, tokens),
		UploadService: NewUploadService(uploadRepo, store, allowedExtension),
	}
}

package handlers

import (
	"trailfit_backend/internal/config"
	"trailfit_backend/internal/services"
	"trailfit_backend/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	SystemHandler *SystemHandler
	AuthHandler   *AuthHandler
	UploadHandler *UploadHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator, uploadCfg config.UploadConfig) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		SystemHandler: NewSystemHandler(),
		AuthHandler:   NewAuthHandler(base, svc.AuthService),
		UploadHandler: NewUploadHandler(base, svc.UploadService, uploadCfg),
	}
}

package database

import (
	"fmt"

	"gorm.io/gorm"

	"trailfit_backend/internal/logger"
	"trailfit_backend/internal/models"
)

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Upload{},
	); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	logger.Info("Database migrated")
	return nil
}

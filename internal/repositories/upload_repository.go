package repositories

import (
	"gorm.io/gorm"

	"trailfit_backend/internal/models"
)

type UploadRepository interface {
	Create(db *gorm.DB, upload *models.Upload) error
	FindByUser(db *gorm.DB, userID uint) ([]models.Upload, error)
}

type UploadRepositoryImpl struct{}

func NewUploadRepository() UploadRepository {
	return &UploadRepositoryImpl{}
}

func (r *UploadRepositoryImpl) Create(db *gorm.DB, upload *models.Upload) error {
	return db.Create(upload).Error
}

// FindByUser возвращает загрузки пользователя в порядке добавления
func (r *UploadRepositoryImpl) FindByUser(db *gorm.DB, userID uint) ([]models.Upload, error) {
	uploads := make([]models.Upload, 0)
	err := db.Where("user_id = ?", userID).Order("id ASC").Find(&uploads).Error
	return uploads, err
}

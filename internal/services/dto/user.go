package dto

import (
	"time"

	"trailfit_backend/internal/models"
)

// UserResponse - данные пользователя без хеша пароля
type UserResponse struct {
	ID         uint           `json:"id"`
	Email      string         `json:"email"`
	BodyWeight *float64       `json:"body_weight"`
	Age        *int           `json:"age"`
	Gender     *models.Gender `json:"gender"`
	VO2Max     *float64       `json:"vo2max"`
	CreatedAt  time.Time      `json:"created_at"`
}

func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		BodyWeight: u.BodyWeight,
		Age:        u.Age,
		Gender:     u.Gender,
		VO2Max:     u.VO2Max,
		CreatedAt:  u.CreatedAt,
	}
}

package models

import "time"

// BaseModel содержит числовой первичный ключ и время создания, назначаемое сервером.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

package models

import "time"

// Upload описывает загруженный .fit файл и метаданные тренировки.
// Все поля метаданных необязательны: nil сохраняется как NULL.
type Upload struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index"`
	Filename   string    `gorm:"not null"`
	FilePath   string    `gorm:"column:filepath;uniqueIndex;size:512;not null"`
	UploadDate time.Time `gorm:"column:upload_date;autoCreateTime"`

	SessionType      *SessionType `gorm:"type:varchar(32)"`
	RaceName         *string
	Notes            *string `gorm:"type:text"`
	FatigueLevel     *int
	GeneralSensation *int
	SleepQuality     *int
	HydrationStatus  *HydrationStatus  `gorm:"type:varchar(32)"`
	WeatherCondition *WeatherCondition `gorm:"type:varchar(32)"`
	TrailCondition   *TrailCondition   `gorm:"type:varchar(32)"`

	User *User `gorm:"foreignKey:UserID"`
}

package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string   `gorm:"not null"`
	BodyWeight   *float64 `gorm:"column:body_weight"`
	Age          *int
	Gender       *Gender  `gorm:"type:varchar(32)"`
	VO2Max       *float64 `gorm:"column:vo2max"`

	// Relations
	Uploads []Upload `gorm:"foreignKey:UserID"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	MovieID    string    `gorm:"type:varchar(36);not null;index" json:"movieId"`
	UserID     string    `gorm:"type:varchar(36);not null;index" json:"userId"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Rating     int       `gorm:"not null" json:"rating"` // 1..5
	ReviewText string    `gorm:"type:text;not null" json:"reviewText"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

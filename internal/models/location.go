package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Location struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	City      string    `gorm:"type:varchar(100);not null" json:"city"`
	CityIcon  *string   `gorm:"type:varchar(255)" json:"cityIcon"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

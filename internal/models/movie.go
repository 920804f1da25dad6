package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Movie struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	LanguageID  *string   `gorm:"type:varchar(36);index" json:"languageId,omitempty"`
	Language    *Language `gorm:"foreignKey:LanguageID" json:"language,omitempty"`
	Genres      []Genre   `gorm:"many2many:movie_genres" json:"genres,omitempty"`
	Duration    int       `gorm:"not null" json:"duration"` // Duration in minutes
	ReleaseDate time.Time `gorm:"not null" json:"releaseDate"`
	Certificate string    `gorm:"type:varchar(20)" json:"certificate"` // Example: "U", "PG-13", "R"
	Rating      float64   `gorm:"default:0" json:"rating"`             // Average rating
	Reviews     []Review  `gorm:"foreignKey:MovieID" json:"review,omitempty"`
	TotalReview int       `gorm:"default:0" json:"total_review"`
	Status      bool      `gorm:"default:true" json:"status"`
	MovieImage  string    `gorm:"type:varchar(255)" json:"movie_image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (m *Movie) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

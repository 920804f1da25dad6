package repository

import (
	"errors"

	"github.com/cinebook/backend/internal/models"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) CreateReview(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepository) GetReviewsByMovieID(movieID string) ([]*models.Review, error) {
	var reviews []*models.Review
	err := r.db.
		Preload("User").
		Where("movie_id = ?", movieID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) GetReviewByID(id string) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) DeleteReview(id string) error {
	return r.db.Delete(&models.Review{}, "id = ?", id).Error
}

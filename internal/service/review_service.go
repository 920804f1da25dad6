package service

import (
	"github.com/cinebook/backend/internal/models"
	"github.com/cinebook/backend/internal/repository"
	"github.com/cinebook/backend/pkg/logger"
	"go.uber.org/zap"
)

type ReviewService struct {
	reviewRepo *repository.ReviewRepository
}

func NewReviewService(reviewRepo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo}
}

// CreateReview records a review authored by the authenticated user. The
// author id always comes from the verified token, never from the body.
func (s *ReviewService) CreateReview(movieID, userID string, rating int, reviewText string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, NewValidationError("rating must be between 1 and 5")
	}
	if reviewText == "" {
		return nil, NewValidationError("reviewText is required")
	}

	review := &models.Review{
		MovieID:    movieID,
		UserID:     userID,
		Rating:     rating,
		ReviewText: reviewText,
	}

	if err := s.reviewRepo.CreateReview(review); err != nil {
		logger.Log.Error("Failed to create review",
			zap.String("movie_id", movieID),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) GetReviewsByMovieID(movieID string) ([]*models.Review, error) {
	return s.reviewRepo.GetReviewsByMovieID(movieID)
}

func (s *ReviewService) DeleteReview(id string) error {
	review, err := s.reviewRepo.GetReviewByID(id)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	return s.reviewRepo.DeleteReview(id)
}

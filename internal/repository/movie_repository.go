package repository

import (
	"errors"

	"github.com/cinebook/backend/internal/models"
	"gorm.io/gorm"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) CreateMovie(movie *models.Movie) error {
	return r.db.Create(movie).Error
}

func (r *MovieRepository) GetMovies() ([]*models.Movie, error) {
	var movies []*models.Movie
	err := r.db.
		Preload("Language").
		Preload("Genres").
		Preload("Reviews").
		Order("created_at DESC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *MovieRepository) GetMovieByID(id string) (*models.Movie, error) {
	var movie models.Movie
	err := r.db.
		Preload("Language").
		Preload("Genres").
		Preload("Reviews").
		Where("id = ?", id).
		First(&movie).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &movie, nil
}

func (r *MovieRepository) UpdateMovie(movie *models.Movie) error {
	return r.db.Save(movie).Error
}

// SetGenres replaces the movie's genre associations.
func (r *MovieRepository) SetGenres(movie *models.Movie, genres []models.Genre) error {
	return r.db.Model(movie).Association("Genres").Replace(genres)
}

// AttachReviews points existing reviews at the movie.
func (r *MovieRepository) AttachReviews(movieID string, reviewIDs []string) error {
	if len(reviewIDs) == 0 {
		return nil
	}
	return r.db.Model(&models.Review{}).
		Where("id IN ?", reviewIDs).
		Update("movie_id", movieID).Error
}

func (r *MovieRepository) DeleteMovie(id string) error {
	return r.db.Delete(&models.Movie{}, "id = ?", id).Error
}

func (r *MovieRepository) GetGenresByIDs(ids []string) ([]models.Genre, error) {
	var genres []models.Genre
	if len(ids) == 0 {
		return genres, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&genres).Error
	if err != nil {
		return nil, err
	}
	return genres, nil
}

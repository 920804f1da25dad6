package service

import (
	"mime/multipart"
	"time"

	"github.com/cinebook/backend/internal/models"
	"github.com/cinebook/backend/internal/repository"
	"github.com/cinebook/backend/internal/storage"
	"github.com/cinebook/backend/pkg/logger"
	"go.uber.org/zap"
)

type MovieService struct {
	movieRepo *repository.MovieRepository
	store     *storage.Store
}

func NewMovieService(movieRepo *repository.MovieRepository, store *storage.Store) *MovieService {
	return &MovieService{
		movieRepo: movieRepo,
		store:     store,
	}
}

// MovieInput carries the multipart fields of a movie create/update request,
// already parsed by the handler.
type MovieInput struct {
	Title       string
	Description string
	LanguageID  string
	GenreIDs    []string
	Duration    int
	ReleaseDate time.Time
	Certificate string
	Rating      float64
	TotalReview int
	ReviewIDs   []string
	Status      *bool // nil means the field was absent
	Image       *multipart.FileHeader
}

// CreateMovie stores the poster image first and only commits the record once
// the file write succeeded. A failed commit cleans the fresh file up again so
// no record ever references a path that was not written.
func (s *MovieService) CreateMovie(input MovieInput) (*models.Movie, error) {
	imagePath, err := s.store.Save(input.Image)
	if err != nil {
		return nil, err
	}

	movie := &models.Movie{
		Title:       input.Title,
		Description: input.Description,
		Duration:    input.Duration,
		ReleaseDate: input.ReleaseDate,
		Certificate: input.Certificate,
		Rating:      input.Rating,
		TotalReview: input.TotalReview,
		Status:      input.Status == nil || *input.Status,
		MovieImage:  imagePath,
	}
	if input.LanguageID != "" {
		movie.LanguageID = &input.LanguageID
	}

	genres, err := s.movieRepo.GetGenresByIDs(input.GenreIDs)
	if err != nil {
		_ = s.store.Remove(imagePath)
		return nil, err
	}
	movie.Genres = genres

	if err := s.movieRepo.CreateMovie(movie); err != nil {
		logger.Log.Error("Failed to create movie",
			zap.String("title", input.Title),
			zap.Error(err),
		)
		_ = s.store.Remove(imagePath)
		return nil, err
	}

	if err := s.movieRepo.AttachReviews(movie.ID, input.ReviewIDs); err != nil {
		logger.Log.Warn("Failed to attach reviews to movie",
			zap.String("movie_id", movie.ID),
			zap.Error(err),
		)
	}

	logger.Log.Info("Movie created",
		zap.String("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	return movie, nil
}

// UpdateMovie applies partial updates; when a new poster is uploaded the old
// file is deleted only after the record commit, so a mid-update failure never
// leaves the record pointing at a missing file.
func (s *MovieService) UpdateMovie(id string, input MovieInput) (*models.Movie, error) {
	movie, err := s.movieRepo.GetMovieByID(id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	if input.Title != "" {
		movie.Title = input.Title
	}
	if input.Description != "" {
		movie.Description = input.Description
	}
	if input.LanguageID != "" {
		movie.LanguageID = &input.LanguageID
	}
	if input.Duration > 0 {
		movie.Duration = input.Duration
	}
	if !input.ReleaseDate.IsZero() {
		movie.ReleaseDate = input.ReleaseDate
	}
	if input.Certificate != "" {
		movie.Certificate = input.Certificate
	}
	if input.Rating > 0 {
		movie.Rating = input.Rating
	}
	if input.TotalReview > 0 {
		movie.TotalReview = input.TotalReview
	}
	if input.Status != nil {
		movie.Status = *input.Status
	}

	oldImage := ""
	if input.Image != nil {
		newPath, err := s.store.Save(input.Image)
		if err != nil {
			return nil, err
		}
		oldImage = movie.MovieImage
		movie.MovieImage = newPath
	}

	if len(input.GenreIDs) > 0 {
		genres, err := s.movieRepo.GetGenresByIDs(input.GenreIDs)
		if err != nil {
			return nil, err
		}
		if err := s.movieRepo.SetGenres(movie, genres); err != nil {
			return nil, err
		}
	}

	if err := s.movieRepo.UpdateMovie(movie); err != nil {
		logger.Log.Error("Failed to update movie",
			zap.String("movie_id", id),
			zap.Error(err),
		)
		if input.Image != nil {
			_ = s.store.Remove(movie.MovieImage)
		}
		return nil, err
	}

	if oldImage != "" {
		if err := s.store.Remove(oldImage); err != nil {
			logger.Log.Warn("Failed to remove replaced movie image",
				zap.String("path", oldImage),
				zap.Error(err),
			)
		}
	}

	logger.Log.Info("Movie updated", zap.String("movie_id", id))

	return movie, nil
}

// DeleteMovie removes the record and then its poster file. Deleting an
// unknown id is not an error.
func (s *MovieService) DeleteMovie(id string) error {
	movie, err := s.movieRepo.GetMovieByID(id)
	if err != nil {
		return err
	}
	if movie == nil {
		return nil
	}

	if err := s.movieRepo.DeleteMovie(id); err != nil {
		logger.Log.Error("Failed to delete movie",
			zap.String("movie_id", id),
			zap.Error(err),
		)
		return err
	}

	if err := s.store.Remove(movie.MovieImage); err != nil {
		logger.Log.Warn("Failed to remove deleted movie image",
			zap.String("path", movie.MovieImage),
			zap.Error(err),
		)
	}

	logger.Log.Info("Movie deleted", zap.String("movie_id", id))

	return nil
}

func (s *MovieService) GetMovies() ([]*models.Movie, error) {
	return s.movieRepo.GetMovies()
}

func (s *MovieService) GetMovieByID(id string) (*models.Movie, error) {
	movie, err := s.movieRepo.GetMovieByID(id)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

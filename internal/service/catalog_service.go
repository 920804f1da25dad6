package service

import (
	"mime/multipart"

	"github.com/cinebook/backend/internal/models"
	"github.com/cinebook/backend/internal/repository"
	"github.com/cinebook/backend/internal/storage"
	"github.com/cinebook/backend/pkg/logger"
	"go.uber.org/zap"
)

// CatalogService covers the lookup entities: genres, languages and locations.
type CatalogService struct {
	catalogRepo *repository.CatalogRepository
	store       *storage.Store
}

func NewCatalogService(catalogRepo *repository.CatalogRepository, store *storage.Store) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		store:       store,
	}
}

func (s *CatalogService) CreateGenre(name string) (*models.Genre, error) {
	genre := &models.Genre{Name: name}
	if err := s.catalogRepo.CreateGenre(genre); err != nil {
		logger.Log.Error("Failed to create genre", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return genre, nil
}

func (s *CatalogService) GetGenres() ([]*models.Genre, error) {
	return s.catalogRepo.GetGenres()
}

func (s *CatalogService) GetGenreByID(id string) (*models.Genre, error) {
	return s.catalogRepo.GetGenreByID(id)
}

// DeleteGenre removes a genre; an unknown id is not an error.
func (s *CatalogService) DeleteGenre(id string) error {
	return s.catalogRepo.DeleteGenre(id)
}

func (s *CatalogService) CreateLanguage(name string) (*models.Language, error) {
	language := &models.Language{LanguageName: name}
	if err := s.catalogRepo.CreateLanguage(language); err != nil {
		logger.Log.Error("Failed to create language", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return language, nil
}

func (s *CatalogService) GetLanguages() ([]*models.Language, error) {
	return s.catalogRepo.GetLanguages()
}

func (s *CatalogService) GetLanguageByID(id string) (*models.Language, error) {
	language, err := s.catalogRepo.GetLanguageByID(id)
	if err != nil {
		return nil, err
	}
	if language == nil {
		return nil, ErrLanguageNotFound
	}
	return language, nil
}

func (s *CatalogService) DeleteLanguage(id string) error {
	return s.catalogRepo.DeleteLanguage(id)
}

// CreateLocation stores the optional city icon before the record commits.
func (s *CatalogService) CreateLocation(city string, icon *multipart.FileHeader) (*models.Location, error) {
	location := &models.Location{City: city}

	if icon != nil {
		iconPath, err := s.store.Save(icon)
		if err != nil {
			return nil, err
		}
		location.CityIcon = &iconPath
	}

	if err := s.catalogRepo.CreateLocation(location); err != nil {
		logger.Log.Error("Failed to create location", zap.String("city", city), zap.Error(err))
		if location.CityIcon != nil {
			_ = s.store.Remove(*location.CityIcon)
		}
		return nil, err
	}

	return location, nil
}

func (s *CatalogService) GetLocations() ([]*models.Location, error) {
	return s.catalogRepo.GetLocations()
}

func (s *CatalogService) GetLocationByID(id string) (*models.Location, error) {
	location, err := s.catalogRepo.GetLocationByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}
	return location, nil
}

// DeleteLocation removes the record and afterwards its icon file, if any.
// Deleting an unknown id is not an error.
func (s *CatalogService) DeleteLocation(id string) (*models.Location, error) {
	location, err := s.catalogRepo.GetLocationByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}

	if err := s.catalogRepo.DeleteLocation(id); err != nil {
		logger.Log.Error("Failed to delete location", zap.String("location_id", id), zap.Error(err))
		return nil, err
	}

	if location.CityIcon != nil {
		if err := s.store.Remove(*location.CityIcon); err != nil {
			logger.Log.Warn("Failed to remove deleted city icon",
				zap.String("path", *location.CityIcon),
				zap.Error(err),
			)
		}
	}

	return location, nil
}

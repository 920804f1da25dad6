package repository

import (
	"errors"

	"github.com/cinebook/backend/internal/models"
	"gorm.io/gorm"
)

// CatalogRepository covers the flat lookup entities: genres, languages and
// locations. They share the same CRUD surface.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) CreateGenre(genre *models.Genre) error {
	return r.db.Create(genre).Error
}

func (r *CatalogRepository) GetGenres() ([]*models.Genre, error) {
	var genres []*models.Genre
	if err := r.db.Order("created_at DESC").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}

func (r *CatalogRepository) GetGenreByID(id string) (*models.Genre, error) {
	var genre models.Genre
	err := r.db.Where("id = ?", id).First(&genre).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &genre, nil
}

func (r *CatalogRepository) DeleteGenre(id string) error {
	return r.db.Delete(&models.Genre{}, "id = ?", id).Error
}

func (r *CatalogRepository) CreateLanguage(language *models.Language) error {
	return r.db.Create(language).Error
}

func (r *CatalogRepository) GetLanguages() ([]*models.Language, error) {
	var languages []*models.Language
	if err := r.db.Order("created_at DESC").Find(&languages).Error; err != nil {
		return nil, err
	}
	return languages, nil
}

func (r *CatalogRepository) GetLanguageByID(id string) (*models.Language, error) {
	var language models.Language
	err := r.db.Where("id = ?", id).First(&language).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &language, nil
}

func (r *CatalogRepository) DeleteLanguage(id string) error {
	return r.db.Delete(&models.Language{}, "id = ?", id).Error
}

func (r *CatalogRepository) CreateLocation(location *models.Location) error {
	return r.db.Create(location).Error
}

func (r *CatalogRepository) GetLocations() ([]*models.Location, error) {
	var locations []*models.Location
	if err := r.db.Order("created_at DESC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *CatalogRepository) GetLocationByID(id string) (*models.Location, error) {
	var location models.Location
	err := r.db.Where("id = ?", id).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *CatalogRepository) DeleteLocation(id string) error {
	return r.db.Delete(&models.Location{}, "id = ?", id).Error
}

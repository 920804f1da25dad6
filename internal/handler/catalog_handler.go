package handler

import (
	"net/http"

	"github.com/cinebook/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the genre, language and location endpoints.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

type CreateGenreRequest struct {
	Name string `json:"name"`
}

type CreateLanguageRequest struct {
	LanguageName string `json:"LanguageName"`
}

func (h *CatalogHandler) GetGenres(c *gin.Context) {
	genres, err := h.catalogService.GetGenres()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Get Genres Successfully",
		"genres":  genres,
	})
}

func (h *CatalogHandler) CreateGenre(c *gin.Context) {
	var req CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Genres Name is required",
		})
		return
	}

	genre, err := h.catalogService.CreateGenre(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Genres Add Successfully",
		"genresData": genre,
	})
}

// GetGenreByID keeps the historical behavior for unknown ids: a success
// response with a null genre, not a 404.
func (h *CatalogHandler) GetGenreByID(c *gin.Context) {
	genre, err := h.catalogService.GetGenreByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Get Genres by Id Successfully",
		"genres":  genre,
	})
}

func (h *CatalogHandler) DeleteGenreByID(c *gin.Context) {
	if err := h.catalogService.DeleteGenre(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delete Genres Successfully",
	})
}

func (h *CatalogHandler) GetLanguages(c *gin.Context) {
	languages, err := h.catalogService.GetLanguages()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Get Languages Successfully",
		"languages": languages,
	})
}

func (h *CatalogHandler) CreateLanguage(c *gin.Context) {
	var req CreateLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.LanguageName == "" {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Language Name is required",
		})
		return
	}

	language, err := h.catalogService.CreateLanguage(req.LanguageName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "language Add Successfully",
		"languageData": language,
	})
}

func (h *CatalogHandler) GetLanguageByID(c *gin.Context) {
	language, err := h.catalogService.GetLanguageByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Get Language by Id Successfully",
		"language": language,
	})
}

func (h *CatalogHandler) DeleteLanguageByID(c *gin.Context) {
	if err := h.catalogService.DeleteLanguage(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "language Delete Successfully",
	})
}

func (h *CatalogHandler) GetLocations(c *gin.Context) {
	locations, err := h.catalogService.GetLocations()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Get Location Successfully",
		"locations": locations,
	})
}

// CreateLocation takes a multipart form: a required city name and an
// optional cityIcon image.
func (h *CatalogHandler) CreateLocation(c *gin.Context) {
	city := c.PostForm("city")
	if city == "" {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "City Name is required",
		})
		return
	}

	icon, _ := c.FormFile("cityIcon")

	location, err := h.catalogService.CreateLocation(city, icon)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Location Create Successfully",
		"LocationData": location,
	})
}

func (h *CatalogHandler) GetLocationByID(c *gin.Context) {
	location, err := h.catalogService.GetLocationByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Get Location Successfully",
		"location": location,
	})
}

// DeleteLocationByID returns the success shape even when the id does not
// exist; LocationData is null in that case.
func (h *CatalogHandler) DeleteLocationByID(c *gin.Context) {
	location, err := h.catalogService.DeleteLocation(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Delete Location Successfully",
		"LocationData": location,
	})
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/cinebook/backend/internal/service"
	"github.com/cinebook/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MovieHandler struct {
	movieService *service.MovieService
}

func NewMovieHandler(movieService *service.MovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

// CreateMovie handles the admin multipart create. The poster image is
// required; genres and review come in as JSON-encoded id arrays.
func (h *MovieHandler) CreateMovie(c *gin.Context) {
	file, err := c.FormFile("movie_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Movie image is required.",
		})
		return
	}

	input, err := movieInputFromForm(c)
	if err != nil {
		respondError(c, err)
		return
	}
	input.Image = file

	if input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Movie title is required.",
		})
		return
	}

	movie, err := h.movieService.CreateMovie(input)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Log.Info("Movie create request handled",
		zap.String("movie_id", movie.ID),
		zap.String("ip", c.ClientIP()),
	)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Movie created successfully",
		"movie":   movie,
	})
}

func (h *MovieHandler) GetMovies(c *gin.Context) {
	movies, err := h.movieService.GetMovies()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Get Movies Successfully",
		"movies":  movies,
	})
}

func (h *MovieHandler) GetMovieByID(c *gin.Context) {
	movie, err := h.movieService.GetMovieByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Get Movie Successfully",
		"movie":   movie,
	})
}

// UpdateMovieByID applies a partial multipart update; a new movie_image file
// replaces the stored poster.
func (h *MovieHandler) UpdateMovieByID(c *gin.Context) {
	input, err := movieInputFromForm(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if file, err := c.FormFile("movie_image"); err == nil {
		input.Image = file
	}

	movie, err := h.movieService.UpdateMovie(c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Movie updated successfully",
		"movie":   movie,
	})
}

func (h *MovieHandler) DeleteMovieByID(c *gin.Context) {
	if err := h.movieService.DeleteMovie(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delete Movie Successfully",
	})
}

// movieInputFromForm collects the multipart fields shared by create and
// update. Numeric fields arrive as strings; genres/review as JSON arrays.
func movieInputFromForm(c *gin.Context) (service.MovieInput, error) {
	input := service.MovieInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		LanguageID:  c.PostForm("language"),
		Certificate: c.PostForm("certificate"),
	}

	var err error
	if input.GenreIDs, err = parseIDArray(c.PostForm("genres")); err != nil {
		return input, service.NewValidationError("genres must be a JSON array of ids")
	}
	if input.ReviewIDs, err = parseIDArray(c.PostForm("review")); err != nil {
		return input, service.NewValidationError("review must be a JSON array of ids")
	}

	if v := c.PostForm("duration"); v != "" {
		input.Duration, _ = strconv.Atoi(v)
	}
	if v := c.PostForm("rating"); v != "" {
		input.Rating, _ = strconv.ParseFloat(v, 64)
	}
	if v := c.PostForm("total_review"); v != "" {
		input.TotalReview, _ = strconv.Atoi(v)
	}
	if v := c.PostForm("status"); v != "" {
		status := v == "true"
		input.Status = &status
	}
	if v := c.PostForm("releaseDate"); v != "" {
		input.ReleaseDate = parseReleaseDate(v)
	}

	return input, nil
}

// parseIDArray decodes a JSON-encoded string array.
func parseIDArray(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func parseReleaseDate(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

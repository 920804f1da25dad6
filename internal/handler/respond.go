package handler

import (
	"errors"
	"net/http"

	"github.com/cinebook/backend/internal/service"
	"github.com/cinebook/backend/internal/storage"
	"github.com/cinebook/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError is the single translation point from service errors to the
// HTTP contract. The status/key pairs mirror the public API as documented,
// quirks included, so clients keep working.
func respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusPaymentRequired, gin.H{"message": validationErr.Message})

	case errors.Is(err, storage.ErrUnsupportedType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrProfileNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})

	case errors.Is(err, service.ErrLanguageNotFound):
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})

	case errors.Is(err, service.ErrLocationNotFound),
		errors.Is(err, service.ErrReviewNotFound):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	case errors.Is(err, service.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	default:
		logger.Log.Error("Unhandled request error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
	}
}

package handler

import (
	"net/http"

	"github.com/cinebook/backend/internal/middleware"
	"github.com/cinebook/backend/internal/service"
	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

type CreateReviewRequest struct {
	MovieID    string `json:"movieId" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	ReviewText string `json:"reviewText" binding:"required"`
}

// CreateReview records a review for the authenticated user; the author id
// comes from the verified token, not the request body.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	review, err := h.reviewService.CreateReview(req.MovieID, middleware.UserID(c), req.Rating, req.ReviewText)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Review Add Successfully",
		"reviewData": review,
	})
}

func (h *ReviewHandler) GetReviewsByMovieID(c *gin.Context) {
	reviews, err := h.reviewService.GetReviewsByMovieID(c.Param("movieId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Get Movie Review Successfully.",
		"review":  reviews,
	})
}

func (h *ReviewHandler) DeleteReviewByID(c *gin.Context) {
	if err := h.reviewService.DeleteReview(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Review Delete Successfully.",
	})
}

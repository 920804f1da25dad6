package handler

import (
	"net/http"

	"github.com/cinebook/backend/internal/service"
	"github.com/cinebook/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GetAPI is the root liveness endpoint.
func (h *AuthHandler) GetAPI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Get Api",
	})
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest

	// A missing or non-string password is indistinguishable from any other
	// bind failure here; all of them get the invalid-password response.
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Sign-up request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusPaymentRequired, gin.H{
			"message": "invalid Password",
		})
		return
	}

	user, token, err := h.authService.SignUp(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User Registration Successfully",
		"user":    user,
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Login request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successfully",
		"token":   token,
	})
}

// UpdateProfile applies partial profile updates from a multipart form; the
// optional profilePicture file replaces the previous one.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	input := service.UpdateProfileInput{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	if file, err := c.FormFile("profilePicture"); err == nil {
		input.Picture = file
	}

	if err := h.authService.UpdateProfile(c.Param("id"), input); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Profile Update Successfully",
	})
}

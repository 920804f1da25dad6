package router

import (
	"github.com/cinebook/backend/internal/config"
	"github.com/cinebook/backend/internal/handler"
	"github.com/cinebook/backend/internal/middleware"
	"github.com/cinebook/backend/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Register wires middleware and the full route surface onto a gin engine.
// GET list endpoints are public; mutating catalog endpoints and get-by-id
// lookups are admin-gated; reviews and profile updates require an
// authenticated user.
func Register(
	engine *gin.Engine,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	movieHandler *handler.MovieHandler,
	catalogHandler *handler.CatalogHandler,
	reviewHandler *handler.ReviewHandler,
	rateLimiter *middleware.RateLimiter,
) {
	engine.Use(cors.Default())
	engine.Use(middleware.SecurityHeadersMiddleware())
	engine.Use(middleware.HSTSMiddleware(cfg.IsProduction()))

	// Stored attachments are served back under the same paths records carry.
	engine.Static("/uploads", cfg.UploadDir)

	engine.GET("/", authHandler.GetAPI)

	// Credential endpoints, optionally rate limited.
	auth := engine.Group("/")
	if rateLimiter != nil {
		auth.Use(rateLimiter.Middleware())
	}
	auth.POST("/signup", authHandler.SignUp)
	auth.POST("/login", authHandler.Login)

	// Public catalog reads
	engine.GET("/getMovies", movieHandler.GetMovies)
	engine.GET("/getGenres", catalogHandler.GetGenres)
	engine.GET("/getLanguages", catalogHandler.GetLanguages)
	engine.GET("/getLocation", catalogHandler.GetLocations)
	engine.GET("/getReviewByMovieId/:movieId", reviewHandler.GetReviewsByMovieID)

	// Any authenticated user
	authed := engine.Group("/", middleware.RequireRole(cfg.JWTSecret))
	authed.PUT("/updateProfile/:id", authHandler.UpdateProfile)
	authed.POST("/createReview", reviewHandler.CreateReview)

	// Admin only
	admin := engine.Group("/", middleware.RequireRole(cfg.JWTSecret, models.RoleAdmin))
	{
		admin.POST("/createMovie", movieHandler.CreateMovie)
		admin.GET("/getMovieById/:id", movieHandler.GetMovieByID)
		admin.PUT("/updateMovieById/:id", movieHandler.UpdateMovieByID)
		admin.DELETE("/deleteMovieById/:id", movieHandler.DeleteMovieByID)

		admin.POST("/createGenres", catalogHandler.CreateGenre)
		admin.GET("/getGenresById/:id", catalogHandler.GetGenreByID)
		admin.DELETE("/deleteGenresById/:id", catalogHandler.DeleteGenreByID)

		admin.POST("/createLanguage", catalogHandler.CreateLanguage)
		admin.GET("/getLanguageById/:id", catalogHandler.GetLanguageByID)
		admin.DELETE("/deleteLanguageById/:id", catalogHandler.DeleteLanguageByID)

		admin.POST("/createLocation", catalogHandler.CreateLocation)
		admin.GET("/getLocationById/:id", catalogHandler.GetLocationByID)
		admin.DELETE("/deleteLocationById/:id", catalogHandler.DeleteLocationByID)

		admin.DELETE("/deleteReviewById/:id", reviewHandler.DeleteReviewByID)
	}
}

package main

import (
	"log"

	"github.com/cinebook/backend/internal/config"
	"github.com/cinebook/backend/internal/database"
	"github.com/cinebook/backend/internal/handler"
	"github.com/cinebook/backend/internal/middleware"
	"github.com/cinebook/backend/internal/repository"
	"github.com/cinebook/backend/internal/router"
	"github.com/cinebook/backend/internal/service"
	"github.com/cinebook/backend/internal/storage"
	"github.com/cinebook/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	log.Println("Config loaded successfully")

	if err := logger.Init(!cfg.IsProduction()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.Connect(cfg)
	database.Migrate()

	uploadStore, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	// Rate limiting is only active when a Redis is configured.
	var rateLimiter *middleware.RateLimiter
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Invalid REDIS_URL: %v", err)
		}
		rateLimiter = middleware.NewRateLimiter(redis.NewClient(opt), middleware.RateLimiterConfig{
			MaxRequests: cfg.RateLimitMaxRequests,
			Window:      cfg.RateLimitWindow,
		})
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	movieRepo := repository.NewMovieRepository(database.DB)
	catalogRepo := repository.NewCatalogRepository(database.DB)
	reviewRepo := repository.NewReviewRepository(database.DB)

	// Initialize services
	authService := service.NewAuthService(userRepo, uploadStore, cfg.JWTSecret, cfg.JWTExpiry)
	movieService := service.NewMovieService(movieRepo, uploadStore)
	catalogService := service.NewCatalogService(catalogRepo, uploadStore)
	reviewService := service.NewReviewService(reviewRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	movieHandler := handler.NewMovieHandler(movieService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	router.Register(engine, cfg, authHandler, movieHandler, catalogHandler, reviewHandler, rateLimiter)

	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := engine.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"moviezone/database"
	"moviezone/internal/cache"
	"moviezone/internal/config"
	"moviezone/internal/http-api/handler"
	"moviezone/internal/http-api/middleware"
	"moviezone/internal/http-api/repository"
	"moviezone/internal/http-api/service"
	"moviezone/internal/mail"
	"moviezone/internal/sentiment"
)

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// 2. Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	// 3. Redis cache, optional. The API works without it, category
	// counts are just recomputed on every request.
	var store cache.Store
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	redisStore, err := cache.NewRedisStore(ctx, cfg.RedisURL, cfg.RedisPassword)
	cancel()
	if err != nil {
		logger.Warn("redis unavailable, category caching disabled", "error", err)
	} else {
		store = redisStore
	}

	// 4. Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	resetRepo := repository.NewPasswordResetRepository(db)
	movieRepo := repository.NewMovieRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// 5. Services
	mailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	scorer := sentiment.NewScorerFromConfig(cfg, logger)

	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	resetService := service.NewPasswordResetService(userRepo, resetRepo, refreshTokenRepo, mailer, cfg, logger)
	movieService := service.NewMovieService(movieRepo, store, cfg, logger)
	wishlistService := service.NewWishlistService(wishlistRepo, movieRepo)
	commentService := service.NewCommentService(commentRepo, movieRepo)
	reviewService := service.NewReviewService(reviewRepo, movieRepo, scorer)

	// 6. Handlers
	authHandler := handler.NewAuthHandler(authService, resetService, cfg)
	movieHandler := handler.NewMovieHandler(movieService, authService)
	wishlistHandler := handler.NewWishlistHandler(wishlistService)
	commentHandler := handler.NewCommentHandler(commentService, authService)
	reviewHandler := handler.NewReviewHandler(reviewService, authService)

	// 7. Setup Gin
	if cfg.GoEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	api := r.Group("/api")

	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	authGroup := api.Group("/auth", authLimiter.Middleware())
	authHandler.RegisterRoutes(authGroup)

	api.GET("/user", middleware.AuthMiddleware(authService), authHandler.Profile)

	movieHandler.RegisterRoutes(api.Group("/movies"))
	commentHandler.RegisterRoutes(api.Group("/comments"))
	reviewHandler.RegisterRoutes(api.Group("/reviews"))
	wishlistHandler.RegisterRoutes(api.Group("/wishlist", middleware.AuthMiddleware(authService)))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"letterbox/internal/cache"
	"letterbox/internal/config"
	"letterbox/internal/http-api/handler"
	"letterbox/internal/http-api/middleware"
	"letterbox/internal/http-api/repository"
	"letterbox/internal/http-api/service"
	"letterbox/internal/supabase"
	"letterbox/internal/tmdb"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// Outbound clients
	store := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseServiceKey)
	gotrue := supabase.NewAuthClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
	catalog := tmdb.NewClient(cfg.TMDBAPIURL, cfg.TMDBAPIKey, cfg.TMDBTimeout)

	pages, err := cache.New(cfg.RedisURL, cfg.CacheTTL, logger)
	if err != nil {
		log.Fatalf("could not connect to redis: %v", err)
	}
	defer pages.Close()

	if !cfg.HasServiceRole() {
		logger.Warn("no service role key configured; aggregation reads and profile provisioning run under caller tokens only")
	}

	// Repositories
	ratingRepo := repository.NewRatingRepository(store)
	watchlistRepo := repository.NewWatchlistRepository(store)
	profileRepo := repository.NewProfileRepository(store)
	listRepo := repository.NewListRepository(store)

	// Services
	authService := service.NewAuthService(gotrue, profileRepo, cfg.SupabaseJWTSecret, logger)
	movieService := service.NewMovieService(catalog, pages, ratingRepo, watchlistRepo, logger)
	ratingService := service.NewRatingService(ratingRepo, catalog, logger)
	watchlistService := service.NewWatchlistService(watchlistRepo, logger)
	profileService := service.NewProfileService(profileRepo, cfg.HasServiceRole(), logger)
	summaryService := service.NewSummaryService(ratingRepo, watchlistRepo, catalog, cfg.HasServiceRole(), logger)
	listService := service.NewListService(listRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	movieHandler := handler.NewMovieHandler(movieService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	watchlistHandler := handler.NewWatchlistHandler(watchlistService)
	summaryHandler := handler.NewSummaryHandler(summaryService)
	profileHandler := handler.NewProfileHandler(profileService)
	listHandler := handler.NewListHandler(listService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "letterbox-api"})
	})

	requireAuth := middleware.RequireAuth(authService)

	auth := r.Group("/auth")
	auth.Use(middleware.RateLimit(float64(cfg.AuthRateLimit), cfg.AuthRateBurst))
	authProtected := r.Group("/auth")
	authProtected.Use(requireAuth)
	authHandler.RegisterRoutes(auth, authProtected)

	movies := r.Group("/movies")
	moviesOptional := r.Group("/movies")
	moviesOptional.Use(middleware.OptionalAuth(authService))
	movieHandler.RegisterRoutes(movies, moviesOptional)

	moviesProtected := r.Group("/movies")
	moviesProtected.Use(requireAuth)
	ratingHandler.RegisterRoutes(moviesProtected)
	watchlistHandler.RegisterRoutes(moviesProtected)
	summaryHandler.RegisterRoutes(moviesProtected)
	listHandler.RegisterRoutes(moviesProtected)

	profile := r.Group("/profile")
	profile.Use(requireAuth)
	profileHandler.RegisterRoutes(profile)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting server", "addr", addr, "env", cfg.GoEnv)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
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

package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/reeltaste/reeltaste-engine/pkg/auth"
	"github.com/reeltaste/reeltaste-engine/pkg/config"
	"github.com/reeltaste/reeltaste-engine/pkg/database"
	"github.com/reeltaste/reeltaste-engine/pkg/handlers"
	"github.com/reeltaste/reeltaste-engine/pkg/llm"
	"github.com/reeltaste/reeltaste-engine/pkg/logging"
	"github.com/reeltaste/reeltaste-engine/pkg/middleware"
	"github.com/reeltaste/reeltaste-engine/pkg/repositories"
	"github.com/reeltaste/reeltaste-engine/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("base_url", cfg.BaseURL),
		zap.String("database", cfg.Database.Host),
		zap.String("llm_provider", cfg.LLM.Provider),
		zap.String("llm_model", cfg.LLM.Model))

	ctx := context.Background()

	db, err := database.NewConnection(ctx, &database.Config{
		URL:            cfg.Database.ConnectionString(),
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migrationDB, err := sql.Open("pgx", cfg.Database.ConnectionString())
	if err != nil {
		logger.Fatal("failed to open migration connection", zap.Error(err))
	}
	if err := database.RunMigrations(migrationDB, cfg.MigrationsPath, logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	migrationDB.Close()

	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
		logger.Info("redis cache enabled", zap.String("host", cfg.Redis.Host))
	}

	auth.InitSessionStore(cfg.SessionSecret, auth.DeriveCookieSettings(cfg.BaseURL, cfg.CookieDomain))

	llmClient, err := llm.NewFromConfig(&cfg.LLM, logger)
	if err != nil {
		logger.Fatal("failed to create completion client", zap.Error(err))
	}

	userRepo := repositories.NewUserRepository(db)
	genreRepo := repositories.NewGenreRepository(db)
	moodRepo := repositories.NewMoodRepository(db)
	actorRepo := repositories.NewActorRepository(db)
	directorRepo := repositories.NewDirectorRepository(db)
	favouriteRepo := repositories.NewFavouriteRepository(db)
	historyRepo := repositories.NewHistoryRepository(db)
	rejectedRepo := repositories.NewRejectedRepository(db)
	watchlistRepo := repositories.NewWatchlistRepository(db)
	recLogRepo := repositories.NewRecommendationLogRepository(db)

	authService := services.NewAuthService(userRepo, logger)
	profileService := services.NewProfileService(
		userRepo, genreRepo, moodRepo, actorRepo, directorRepo,
		favouriteRepo, historyRepo, rejectedRepo, watchlistRepo, logger)
	recService := services.NewRecommendationService(profileService, recLogRepo, llmClient, redisClient, logger)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewAuthHandler(authService, logger).RegisterRoutes(mux)
	handlers.NewUsersHandler(authService, profileService, logger).RegisterRoutes(mux)
	handlers.NewPreferencesHandler(profileService, logger).RegisterRoutes(mux)
	handlers.NewFavouritesHandler(profileService, logger).RegisterRoutes(mux)
	handlers.NewHistoryHandler(profileService, logger).RegisterRoutes(mux)
	handlers.NewRejectedHandler(profileService, logger).RegisterRoutes(mux)
	handlers.NewWatchlistHandler(profileService, logger).RegisterRoutes(mux)
	handlers.NewRecommendationsHandler(recService, logger).RegisterRoutes(mux)

	// Serve static UI files; API routes take precedence.
	mux.Handle("/", http.FileServer(http.Dir(cfg.UIDir)))

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("starting reeltaste-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, middleware.RequestLogger(logger)(mux)); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

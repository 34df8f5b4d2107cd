package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/learnmate/coordinator/internal/cache"
	"github.com/learnmate/coordinator/internal/clients/knowledge"
	"github.com/learnmate/coordinator/internal/clients/progress"
	"github.com/learnmate/coordinator/internal/clients/wikipedia"
	"github.com/learnmate/coordinator/internal/config"
	"github.com/learnmate/coordinator/internal/handlers"
	"github.com/learnmate/coordinator/internal/repositories"
	"github.com/learnmate/coordinator/internal/repositories/postgres"
	"github.com/learnmate/coordinator/internal/services"
	"github.com/learnmate/coordinator/internal/utils"
	"github.com/learnmate/coordinator/internal/validator"
	"github.com/learnmate/coordinator/pkg"
)

const cacheSweepInterval = 10 * time.Minute

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Exit(1)
	}

	var logger utils.Logger
	if cfg.Environment == "production" {
		logger = utils.NewDefaultLogger()
	} else {
		logger = utils.NewDevelopmentLogger()
	}

	logger.Info("Starting coordinator service",
		"port", cfg.Port,
		"environment", cfg.Environment)

	cacheService, stopSweep := buildCache(cfg, logger)
	defer stopSweep()

	catalogRepo := buildCatalogRepository(cfg, logger)
	lessonRepo := repositories.NewStaticLessonRepository()
	videoRepo := repositories.NewMemoryVideoRepository()
	moderationRepo := repositories.NewMemoryModerationRepository()

	publisher, err := cfg.Events.CreateEventPublisher(utils.ToSlogLogger(logger))
	if err != nil {
		logger.LogError(err, "Failed to create event publisher")
		os.Exit(1)
	}
	defer publisher.Close()

	wikiClient := wikipedia.NewClient(logger)
	progressClient := progress.NewClient(cfg.ProgressAPIURL, logger)
	knowledgeClient := knowledge.NewClient(logger)

	generator := services.NewQuizGenerator()
	quizService := services.NewQuizService(catalogRepo, lessonRepo, wikiClient, cacheService, publisher, generator, logger)
	gradingService := services.NewGradingService(lessonRepo, logger)
	exportService := services.NewExportService(quizService)
	insightsService := services.NewInsightsService(catalogRepo, knowledgeClient, logger)
	sessionService := services.NewSessionService(lessonRepo)
	coachService := services.NewCoachService()

	v := validator.New()

	handlerManager := handlers.NewHandlerManager(
		handlers.NewQuizHandler(quizService, gradingService, exportService, v, logger),
		handlers.NewCatalogHandler(catalogRepo, insightsService, logger),
		handlers.NewLessonHandler(lessonRepo, sessionService, progressClient, publisher, logger),
		handlers.NewSessionHandler(sessionService, logger),
		handlers.NewVideoHandler(videoRepo, moderationRepo, publisher, v, "uploads", logger),
		handlers.NewModerationHandler(moderationRepo, publisher, v, logger),
		handlers.NewMessageHandler(coachService, v, logger),
	)

	router := handlerManager.SetupRouter(cfg, logger)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.LogError(err, "HTTP server failed")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down coordinator service")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.LogError(err, "Graceful shutdown failed")
	}
}

// buildCache prefers Redis when REDIS_URL is set and falls back to the
// in-memory store with a background expiry sweep.
func buildCache(cfg *config.Config, logger utils.Logger) (cache.Service, func()) {
	if cfg.RedisURL != "" {
		client, err := pkg.NewRedisClient(cfg)
		if err != nil {
			logger.LogError(err, "Redis unavailable, falling back to in-memory cache")
		} else {
			logger.Info("Using Redis cache backend")
			return cache.NewRedisCache(client, logger), func() { client.Close() }
		}
	}

	store := cache.NewMemoryStore()
	stop := store.StartSweep(cacheSweepInterval)
	logger.Info("Using in-memory cache backend")
	return store, stop
}

// buildCatalogRepository prefers Postgres when DATABASE_URL is set and
// falls back to the seeded in-memory catalog.
func buildCatalogRepository(cfg *config.Config, logger utils.Logger) repositories.CatalogRepository {
	if cfg.DatabaseURL != "" {
		db, err := pkg.InitDatabase(cfg)
		if err != nil {
			logger.LogError(err, "Database unavailable, falling back to in-memory catalog")
		} else {
			repo, err := postgres.NewCatalogRepository(db)
			if err != nil {
				logger.LogError(err, "Catalog migration failed, falling back to in-memory catalog")
			} else {
				logger.Info("Using Postgres catalog repository")
				return repo
			}
		}
	}

	logger.Info("Using in-memory catalog repository")
	return repositories.NewMemoryCatalogRepository()
}

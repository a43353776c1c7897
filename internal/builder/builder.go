package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/sitegen-backend/internal/api"
	analyticsapi "github.com/futig/sitegen-backend/internal/api/analytics"
	generationapi "github.com/futig/sitegen-backend/internal/api/generation"
	"github.com/futig/sitegen-backend/internal/api/middleware"
	"github.com/futig/sitegen-backend/internal/config"
	"github.com/futig/sitegen-backend/internal/integration/imagesearch"
	"github.com/futig/sitegen-backend/internal/integration/textgen"
	"github.com/futig/sitegen-backend/internal/pkg/postprocess"
	"github.com/futig/sitegen-backend/internal/repository"
	"github.com/futig/sitegen-backend/internal/usecase/analytics"
	"github.com/futig/sitegen-backend/internal/usecase/generation"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Setup database connection
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	// Run database migrations
	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	eventRepo := repository.NewEventPostgres(db)
	feedbackRepo := repository.NewFeedbackPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	var textGenerator generation.TextGenerator
	var imageSearcher postprocess.Searcher

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		textGenerator = textgen.NewMockConnector(logger)
		imageSearcher = imagesearch.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		textGenerator = textgen.NewConnector(cfg.TextGenCfg, logger)

		// A missing image token disables image resolution rather than the
		// whole service: bundles keep their placeholder directives.
		if cfg.ImageSearchCfg.Token == "" {
			logger.Warn("IMAGE_TOKEN is empty, image resolution disabled")
		} else {
			imageSearcher = imagesearch.NewConnector(cfg.ImageSearchCfg, logger)
		}
	}

	// Initialize use cases
	generationUC := generation.NewUsecase(
		textGenerator,
		imageSearcher,
		&cfg.TextGenCfg.Retry,
		logger,
	)

	analyticsUC := analytics.NewUsecase(
		eventRepo,
		feedbackRepo,
		logger,
	)
	logger.Info("Use cases initialized")

	// Setup API handlers
	generationHandler := generationapi.NewHandler(generationUC)
	analyticsHandler := analyticsapi.NewHandler(analyticsUC)
	logger.Info("API handlers initialized")

	// Setup router
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitCfg)
	router := api.SetupRouter(generationHandler, analyticsHandler, rateLimiter, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 200 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: logger,
	}, nil
}

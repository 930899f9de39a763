package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dino24-Max/English-Assessment-sub000/internal/cache"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/config"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/events"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/handlers"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/questionbank"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/repositories/postgres"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/scoring"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/services"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/utils"
	"github.com/Dino24-Max/English-Assessment-sub000/internal/validator"
	"github.com/Dino24-Max/English-Assessment-sub000/pkg"
)

// expirySweepInterval is how often overdue attempts are finalized.
const expirySweepInterval = time.Minute

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := utils.NewLogger(cfg.Environment)
	slogLogger := utils.ToSlogLogger(logger)

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := pkg.Migrate(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	redisClient, err := pkg.NewRedisClient(cfg)
	if err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	cacheService := cache.NewRedisCache(redisClient, slogLogger)

	publisher, err := cfg.Events.CreateEventPublisher(slogLogger)
	if err != nil {
		logger.Error("Failed to create event publisher, falling back to mock", "error", err)
		publisher = events.NewMockEventPublisher(slogLogger)
	}
	defer publisher.Close()

	bank := questionbank.New()
	if err := bank.Load(); err != nil {
		logger.Error("Question bank failed validation", "error", err)
		os.Exit(1)
	}

	engine := scoring.NewEngine()
	aggregator := scoring.NewAggregator(scoring.Thresholds{
		TotalThreshold:    cfg.Scoring.TotalThreshold,
		SafetyThreshold:   cfg.Scoring.SafetyThreshold,
		SpeakingMinPoints: cfg.Scoring.SpeakingMinPoints,
	})

	attemptRepo := postgres.NewAttemptPostgreSQL(db)
	responseRepo := postgres.NewResponsePostgreSQL(db)
	crewRepo := postgres.NewCrewPostgreSQL(db)

	v := validator.New()

	attemptService := services.NewAttemptService(
		attemptRepo, responseRepo, crewRepo,
		bank, engine, aggregator,
		publisher, cacheService, slogLogger, v,
		cfg.AttemptDuration,
	)
	crewService := services.NewCrewService(crewRepo, slogLogger, v)
	exportService := services.NewExportService(attemptRepo, slogLogger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(utils.LoggerMiddleware(logger), gin.Recovery())

	handlerManager := handlers.NewHandlerManager(
		attemptService, crewService, exportService,
		bank, engine, v, logger,
	)
	handlerManager.SetupRoutes(router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go runExpirySweep(ctx, attemptService, logger)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting assessment server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

// runExpirySweep periodically finalizes attempts whose time ran out.
func runExpirySweep(ctx context.Context, attempts services.AttemptService, logger utils.Logger) {
	ticker := time.NewTicker(expirySweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			expired, err := attempts.ExpireOverdue(ctx)
			if err != nil {
				logger.Error("Expiry sweep failed", "error", err)
				continue
			}
			if expired > 0 {
				logger.Info("Expired overdue attempts", "count", expired)
			}
		}
	}
}

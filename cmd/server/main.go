package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/tradedesk/internal/adapter/http"
	"github.com/iho/tradedesk/internal/adapter/http/handler"
	memoryRepo "github.com/iho/tradedesk/internal/adapter/repository/memory"
	postgresRepo "github.com/iho/tradedesk/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/tradedesk/internal/adapter/repository/redis"
	"github.com/iho/tradedesk/internal/domain"
	"github.com/iho/tradedesk/internal/infrastructure/config"
	"github.com/iho/tradedesk/internal/infrastructure/logger"
	"github.com/iho/tradedesk/internal/infrastructure/metrics"
	"github.com/iho/tradedesk/internal/infrastructure/postgres"
	"github.com/iho/tradedesk/internal/infrastructure/redis"
	"github.com/iho/tradedesk/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger
	zerolog.DefaultContextLogger = &appLogger

	ctx := context.Background()

	// Select storage backend for the trade directory and history ledger
	var (
		directory    usecase.TradeDirectory
		ledger       domain.Ledger
		healthChecks = map[string]handler.DependencyCheck{}
	)

	switch cfg.StorageBackend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer pool.Close()

		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}

		directory = postgresRepo.NewTradeDirectory(pool)
		ledger = postgresRepo.NewLedger(pool)
		healthChecks["postgres"] = pool.Ping
		log.Info().Msg("using postgres storage")
	case "memory":
		directory = memoryRepo.NewTradeDirectory()
		ledger = memoryRepo.NewLedger()
		log.Info().Msg("using in-memory storage")
	default:
		log.Fatal().Str("backend", cfg.StorageBackend).Msg("unknown storage backend")
	}

	// Optional Redis-backed idempotency
	var idempotencyStore usecase.IdempotencyStore
	if cfg.RedisURL != "" {
		redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()

		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		healthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
		log.Info().Msg("idempotency checking enabled")
	}

	// Initialize use case and handlers
	m := metrics.New()
	idGen := memoryRepo.NewUUIDGenerator()
	tradeUC := usecase.NewTradeUseCase(directory, ledger, idGen, m)

	tradeHandler := handler.NewTradeHandler(tradeUC)
	historyHandler := handler.NewHistoryHandler(tradeUC)
	healthHandler := handler.NewHealthHandler(healthChecks)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TradeHandler:     tradeHandler,
		HistoryHandler:   historyHandler,
		HealthHandler:    healthHandler,
		Logger:           appLogger,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

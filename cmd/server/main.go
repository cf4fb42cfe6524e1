package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/veloz/fondos/internal/adapter/http"
	"github.com/veloz/fondos/internal/adapter/http/handler"
	postgresRepo "github.com/veloz/fondos/internal/adapter/repository/postgres"
	redisRepo "github.com/veloz/fondos/internal/adapter/repository/redis"
	"github.com/veloz/fondos/internal/infrastructure/config"
	"github.com/veloz/fondos/internal/infrastructure/metrics"
	"github.com/veloz/fondos/internal/infrastructure/postgres"
	"github.com/veloz/fondos/internal/infrastructure/redis"
	"github.com/veloz/fondos/internal/usecase"
)

func main() {
	// .env is optional, envs win
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg)

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Apply schema migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	movementRepo := postgresRepo.NewMovementRepository(pool)
	summaryRepo := postgresRepo.NewSummaryRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(accountRepo)
	movementUC := usecase.NewMovementUseCase(txManager, accountRepo, movementRepo, retrier)
	transferUC := usecase.NewTransferUseCase(txManager, accountRepo, movementRepo, retrier)
	summaryUC := usecase.NewSummaryUseCase(summaryRepo)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:   handler.NewAccountHandler(accountUC, m),
		MovementHandler:  handler.NewMovementHandler(movementUC, m),
		TransferHandler:  handler.NewTransferHandler(transferUC, m),
		SummaryHandler:   handler.NewSummaryHandler(summaryUC),
		HealthHandler:    handler.NewHealthHandler(pool, redisClient),
		Logger:           log.Logger,
		Metrics:          m,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
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

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

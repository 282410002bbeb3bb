package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/gestion/ledger/internal/adapter/http"
	"github.com/gestion/ledger/internal/adapter/http/handler"
	"github.com/gestion/ledger/internal/adapter/http/middleware"
	postgresRepo "github.com/gestion/ledger/internal/adapter/repository/postgres"
	redisRepo "github.com/gestion/ledger/internal/adapter/repository/redis"
	"github.com/gestion/ledger/internal/infrastructure/config"
	"github.com/gestion/ledger/internal/infrastructure/eventpublisher"
	"github.com/gestion/ledger/internal/infrastructure/logger"
	"github.com/gestion/ledger/internal/infrastructure/metrics"
	"github.com/gestion/ledger/internal/infrastructure/postgres"
	"github.com/gestion/ledger/internal/infrastructure/redis"
	"github.com/gestion/ledger/internal/infrastructure/sweeper"
	"github.com/gestion/ledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	// Apply migrations
	if err := postgres.RunMigrations(appLogger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	appMetrics := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	partyRepo := postgresRepo.NewPartyRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	saleRepo := postgresRepo.NewSaleRepository(pool)
	purchaseRepo := postgresRepo.NewPurchaseRepository(pool)
	paymentRepo := postgresRepo.NewPaymentRepository(pool)
	checkRepo := postgresRepo.NewCheckRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(appLogger)

	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Deployments without an event consumer can turn the outbox off; the
	// null repository keeps the write path identical.
	var outboxRepo usecase.OutboxRepository = postgresRepo.NewOutboxRepository(pool)
	if !cfg.OutboxEnabled {
		outboxRepo = postgresRepo.NewNullOutboxRepository()
	}

	// Initialize use cases
	ledgerUC := usecase.NewLedgerUseCase(txManager, partyRepo, entryRepo, outboxRepo, idGen, retrier, cache)
	resolver := usecase.NewResolver(partyRepo)
	movementUC := usecase.NewMovementUseCase(ledgerUC, resolver, saleRepo, purchaseRepo, paymentRepo, checkRepo, idGen)
	partyUC := usecase.NewPartyUseCase(partyRepo, idGen)
	archiveUC := usecase.NewArchiveUseCase(saleRepo, purchaseRepo, outboxRepo, txManager, idGen, cfg.RetentionPeriod)
	reconciliationUC := usecase.NewReconciliationUseCase(partyRepo, entryRepo, ledgerRepo)

	// Initialize handlers
	partyHandler := handler.NewPartyHandler(partyUC, ledgerUC, appMetrics)
	movementHandler := handler.NewMovementHandler(movementUC, appMetrics)
	entryHandler := handler.NewEntryHandler(ledgerUC)
	archiveHandler := handler.NewArchiveHandler(archiveUC)
	ledgerHandler := handler.NewLedgerHandler(reconciliationUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		PartyHandler:     partyHandler,
		MovementHandler:  movementHandler,
		EntryHandler:     entryHandler,
		ArchiveHandler:   archiveHandler,
		LedgerHandler:    ledgerHandler,
		HealthHandler:    healthHandler,
		Logging:          middleware.NewLoggingMiddleware(appLogger),
		Metrics:          middleware.NewMetricsMiddleware(appMetrics),
		IdempotencyStore: idempotencyStore,
	})

	// Start background workers
	if cfg.OutboxEnabled {
		publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
			OutboxRepo: outboxRepo,
			Publisher:  eventpublisher.NewLogPublisher(appLogger),
			Logger:     appLogger,
			Metrics:    appMetrics,
			BatchSize:  cfg.OutboxBatchSize,
			Interval:   cfg.OutboxInterval,
		})
		go func() {
			if err := publisher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				appLogger.Error().Err(err).Msg("event publisher stopped")
			}
		}()
	}

	if cfg.SweepEnabled {
		sw := sweeper.New(sweeper.Config{
			Archive:  archiveUC,
			Logger:   appLogger,
			Metrics:  appMetrics,
			Interval: cfg.SweepInterval,
		})
		go func() {
			if err := sw.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				appLogger.Error().Err(err).Msg("archival sweeper stopped")
			}
		}()
	}

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
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown; background workers stop via the signal context.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	appLogger.Info().Msg("server stopped")
}

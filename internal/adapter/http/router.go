package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gestion/ledger/internal/adapter/http/handler"
	"github.com/gestion/ledger/internal/adapter/http/middleware"
	"github.com/gestion/ledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	PartyHandler     *handler.PartyHandler
	MovementHandler  *handler.MovementHandler
	EntryHandler     *handler.EntryHandler
	ArchiveHandler   *handler.ArchiveHandler
	LedgerHandler    *handler.LedgerHandler
	HealthHandler    *handler.HealthHandler
	Logging          *middleware.LoggingMiddleware
	Metrics          *middleware.MetricsMiddleware
	RateLimiter      *middleware.RateLimiter
	IdempotencyStore usecase.IdempotencyStore
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)

	if cfg.Logging != nil {
		r.Use(cfg.Logging.Wrap)
	}
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Wrap)
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Parties
		r.Route("/parties", func(r chi.Router) {
			r.Post("/", cfg.PartyHandler.Create)
			r.Get("/", cfg.PartyHandler.List)
			r.Get("/{id}", cfg.PartyHandler.Get)
			r.Get("/{id}/balance", cfg.PartyHandler.GetBalance)
			r.Get("/{id}/reconciliation", cfg.LedgerHandler.ReconcileParty)
		})

		// Movements
		r.Post("/sales", cfg.MovementHandler.CreateSale)
		r.Post("/purchases", cfg.MovementHandler.CreatePurchase)
		r.Post("/payments", cfg.MovementHandler.CreatePayment)
		r.Post("/checks", cfg.MovementHandler.CreateCheck)
		r.Post("/adjustments", cfg.MovementHandler.CreateAdjustment)

		// Ledger reads
		r.Get("/movimientos", cfg.EntryHandler.List)
		r.Get("/saldos", cfg.PartyHandler.ListBalances)
		r.Get("/ledger/consistency", cfg.LedgerHandler.CheckConsistency)

		// Archival
		r.Post("/archive", cfg.ArchiveHandler.Sweep)
	})

	return r
}

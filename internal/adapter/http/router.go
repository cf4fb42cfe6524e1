package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/veloz/fondos/internal/adapter/http/handler"
	"github.com/veloz/fondos/internal/adapter/http/middleware"
	"github.com/veloz/fondos/internal/infrastructure/metrics"
	"github.com/veloz/fondos/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler   *handler.AccountHandler
	MovementHandler  *handler.MovementHandler
	TransferHandler  *handler.TransferHandler
	SummaryHandler   *handler.SummaryHandler
	HealthHandler    *handler.HealthHandler
	Logger           zerolog.Logger
	Metrics          *metrics.Metrics
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Accounts
		r.Route("/cuentas", func(r chi.Router) {
			r.Post("/", cfg.AccountHandler.Create)
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
			r.Get("/{id}/movimientos", cfg.MovementHandler.ListByAccount)
		})

		// Movements
		r.Route("/movimientos", func(r chi.Router) {
			r.Post("/", cfg.MovementHandler.Create)
			r.Get("/", cfg.MovementHandler.List)
		})

		// Transfers
		r.Post("/transferencias", cfg.TransferHandler.Create)

		// Summaries
		r.Route("/resumen", func(r chi.Router) {
			r.Get("/mensual", cfg.SummaryHandler.Monthly)
			r.Get("/cuentas", cfg.SummaryHandler.ByAccount)
		})

		// Ledger consistency
		r.Get("/ledger/consistencia", cfg.SummaryHandler.Consistency)
	})

	return r
}

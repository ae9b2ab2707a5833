package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/tradedesk/internal/adapter/http/handler"
	"github.com/iho/tradedesk/internal/adapter/http/middleware"
	"github.com/iho/tradedesk/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	TradeHandler     *handler.TradeHandler
	HistoryHandler   *handler.HistoryHandler
	HealthHandler    *handler.HealthHandler
	Logger           zerolog.Logger
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(chimiddleware.Recoverer)

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Trades
		r.Route("/trades", func(r chi.Router) {
			r.Post("/", cfg.TradeHandler.Submit)
			r.Get("/{id}", cfg.TradeHandler.Get)
			r.Post("/{id}/accept", cfg.TradeHandler.Accept)
			r.Post("/{id}/update", cfg.TradeHandler.Update)
			r.Post("/{id}/approve", cfg.TradeHandler.Approve)
			r.Post("/{id}/execute", cfg.TradeHandler.Execute)
			r.Post("/{id}/book", cfg.TradeHandler.Book)
			r.Post("/{id}/cancel", cfg.TradeHandler.Cancel)
		})

		// History ledger: count and positional retrieval only
		r.Route("/history", func(r chi.Router) {
			r.Get("/count", cfg.HistoryHandler.Count)
			r.Get("/{index}", cfg.HistoryHandler.Get)
		})
	})

	return r
}

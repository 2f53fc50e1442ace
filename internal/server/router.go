package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/review-radar/internal/config"
	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware and API routes.
// mcpHandler may be nil when the MCP tool is served over stdio.
func NewRouter(cfg *config.Config, reporter core.ReviewReporter, mcpHandler http.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Configure middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		reviewsHandler := handler.NewReviewsHandler(reporter, cfg.Review.DefaultLimit, logger)
		r.Get("/reviews", reviewsHandler.Handle)
	})

	if mcpHandler != nil {
		r.Handle("/mcp", mcpHandler)
	}

	return r
}

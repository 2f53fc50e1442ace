// Package handler provides HTTP handlers for the review-radar application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sevigo/review-radar/internal/core"
)

// ReviewsHandler serves the rendered review queue.
type ReviewsHandler struct {
	reporter     core.ReviewReporter
	defaultLimit int
	logger       *slog.Logger
}

// NewReviewsHandler creates a handler that falls back to defaultLimit when the
// request does not carry a limit.
func NewReviewsHandler(reporter core.ReviewReporter, defaultLimit int, logger *slog.Logger) *ReviewsHandler {
	return &ReviewsHandler{
		reporter:     reporter,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// Handle writes the review queue as Markdown. GitHub failures are part of the
// body and still answer 200, matching what the MCP tool returns.
func (h *ReviewsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Debug("rejecting invalid limit", "limit", raw, "error", err)
			http.Error(w, "limit must be an integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	report := h.reporter.Report(r.Context(), limit)

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report))
}

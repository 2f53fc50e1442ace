package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sevigo/review-radar/internal/config"
)

type staticReporter string

func (s staticReporter) Report(_ context.Context, _ int) string { return string(s) }

func TestNewRouter(t *testing.T) {
	cfg := &config.Config{Review: config.ReviewConfig{DefaultLimit: 10}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		mcp        http.Handler
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "health", method: http.MethodGet, target: "/health", wantStatus: http.StatusOK, wantBody: "OK"},
		{name: "reviews", method: http.MethodGet, target: "/api/v1/reviews", wantStatus: http.StatusOK, wantBody: "queue"},
		{name: "reviews rejects POST", method: http.MethodPost, target: "/api/v1/reviews", wantStatus: http.StatusMethodNotAllowed},
		{name: "mcp mounted", mcp: mcpHandler, method: http.MethodPost, target: "/mcp", wantStatus: http.StatusTeapot},
		{name: "mcp absent on stdio", method: http.MethodPost, target: "/mcp", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(cfg, staticReporter("queue"), tt.mcp, logger)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

// Package app initializes and orchestrates the main components of the review-radar application.
// It wires together the configuration, the review queue and the transports serving it.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sevigo/review-radar/internal/config"
	"github.com/sevigo/review-radar/internal/reviewqueue"
	"github.com/sevigo/review-radar/internal/server"
	"github.com/sevigo/review-radar/internal/toolserver"
)

// App holds the main application components.
type App struct {
	Reviews *reviewqueue.Selector

	cfg    *config.Config
	logger *slog.Logger
	tools  *toolserver.ToolServer
	server *server.Server

	stdin  io.Reader
	stdout io.Writer
}

// NewApp sets up the application with all its dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger, reviews *reviewqueue.Selector, tools *toolserver.ToolServer, httpServer *server.Server) *App {
	logger.Info("initializing review-radar",
		"identity", cfg.GitHub.Username,
		"transport", cfg.Server.Transport,
		"default_limit", cfg.Review.DefaultLimit,
		"concurrency", cfg.Review.Concurrency)

	return &App{
		Reviews: reviews,
		cfg:     cfg,
		logger:  logger,
		tools:   tools,
		server:  httpServer,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
	}
}

// Config returns the configuration the application was built with.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Start serves the MCP tool over the configured transport and blocks until the
// transport stops. The stdio transport stops when stdin is closed or ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	a.logger.Info("starting review-radar", "transport", a.cfg.Server.Transport)

	switch a.cfg.Server.Transport {
	case config.TransportHTTP:
		if err := a.server.Start(); err != nil {
			a.logger.Error("failed to start HTTP server", "error", err)
			return err
		}
		return nil
	case config.TransportStdio:
		if err := a.tools.ServeStdio(ctx, a.stdin, a.stdout); err != nil {
			return fmt.Errorf("stdio transport failed: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported transport: %s", a.cfg.Server.Transport)
	}
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.logger.Info("shutting down review-radar")

	if a.cfg.Server.Transport == config.TransportHTTP {
		if err := a.server.Stop(); err != nil {
			a.logger.Error("error during HTTP server shutdown", "error", err)
			return err
		}
	}

	a.logger.Info("review-radar stopped successfully")
	return nil
}

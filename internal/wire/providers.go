package wire

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/review-radar/internal/app"
	"github.com/sevigo/review-radar/internal/config"
	"github.com/sevigo/review-radar/internal/core"
	"github.com/sevigo/review-radar/internal/github"
	"github.com/sevigo/review-radar/internal/logger"
	"github.com/sevigo/review-radar/internal/reviewqueue"
	"github.com/sevigo/review-radar/internal/server"
	"github.com/sevigo/review-radar/internal/toolserver"
)

// AppSet provides every component of the application.
var AppSet = wire.NewSet(
	app.NewApp,
	config.LoadConfig,
	reviewqueue.NewSelector,
	wire.Bind(new(core.ReviewReporter), new(*reviewqueue.Selector)),
	toolserver.New,
	provideLoggerConfig,
	provideSlogLogger,
	provideGitHubClient,
	provideHTTPServer,
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideSlogLogger(loggerConfig logger.Config) *slog.Logger {
	l := logger.NewLogger(loggerConfig, nil)
	slog.SetDefault(l)
	return l
}

func provideGitHubClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (github.Client, error) {
	client, err := github.NewPATClient(ctx, cfg.GitHub.Token, cfg.GitHub.BaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	return client, nil
}

// provideHTTPServer mounts the MCP endpoint only when MCP is served over HTTP.
// The review queue API is available either way.
func provideHTTPServer(cfg *config.Config, reporter core.ReviewReporter, tools *toolserver.ToolServer, logger *slog.Logger) *server.Server {
	if cfg.Server.Transport == config.TransportHTTP {
		return server.NewServer(cfg, reporter, tools.HTTPHandler(), logger)
	}
	return server.NewServer(cfg, reporter, nil, logger)
}

// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"

	"github.com/sevigo/review-radar/internal/app"
	"github.com/sevigo/review-radar/internal/config"
	"github.com/sevigo/review-radar/internal/reviewqueue"
	"github.com/sevigo/review-radar/internal/toolserver"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	loggerConfig := provideLoggerConfig(cfg)
	slogLogger := provideSlogLogger(loggerConfig)

	// GitHub
	client, err := provideGitHubClient(ctx, cfg, slogLogger)
	if err != nil {
		return nil, nil, err
	}

	// Review queue and transports
	selector := reviewqueue.NewSelector(cfg, client, slogLogger)
	toolServer := toolserver.New(cfg, selector, slogLogger)
	httpServer := provideHTTPServer(cfg, selector, toolServer, slogLogger)

	appApp := app.NewApp(cfg, slogLogger, selector, toolServer, httpServer)
	return appApp, func() {}, nil
}

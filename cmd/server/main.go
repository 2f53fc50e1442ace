package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sevigo/review-radar/internal/wire"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application failed to run", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app, cleanup, err := wire.InitializeApp(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer cleanup()

	slog.Info("starting review-radar application")

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start(ctx)
	}()

	// Wait for shutdown signal or for the transport to end on its own
	var startErr error
	select {
	case <-ctx.Done():
		slog.Info("received shutdown signal")
	case startErr = <-errCh:
		if startErr != nil {
			slog.Error("transport error", "error", startErr)
		} else {
			slog.Info("transport closed, shutting down")
		}
	}

	if err := app.Stop(); err != nil {
		slog.Error("failed to stop application", "error", err)
		return fmt.Errorf("failed to stop application: %w", err)
	}
	return startErr
}

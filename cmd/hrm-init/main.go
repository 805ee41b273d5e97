// Package main provides the HRM system initializer entry point.
// It writes the system settings into the environment, checks that the
// optional dependency is available and exits 0 or 1 accordingly.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/fairyhunter13/hrm-system/internal/adapter/observability"
	"github.com/fairyhunter13/hrm-system/internal/app"
	"github.com/fairyhunter13/hrm-system/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("error", err))
		return 1
	}

	// Setup logging
	logger := observability.SetupLogger(cfg, observability.NewRunID())
	slog.SetDefault(logger)

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownTracer(ctx)
		}
	}()

	return app.Run(context.Background(), cfg, os.Stdout)
}

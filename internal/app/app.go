// Package app wires the initializer from runtime settings and runs it.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fairyhunter13/hrm-system/internal/adapter/observability"
	"github.com/fairyhunter13/hrm-system/internal/adapter/probe"
	"github.com/fairyhunter13/hrm-system/internal/bootstrap"
	"github.com/fairyhunter13/hrm-system/internal/config"
)

// NewInitializer builds an Initializer writing the default system settings to
// the process environment and probing with the kind selected in cfg.
func NewInitializer(cfg config.Config, out io.Writer, metrics *observability.InitMetrics) (bootstrap.Initializer, error) {
	p, err := probe.New(cfg.DependencyProbe)
	if err != nil {
		return bootstrap.Initializer{}, fmt.Errorf("op=app.NewInitializer: %w", err)
	}
	s := bootstrap.NewInitializer(config.DefaultEnvironment(), cfg.Dependency, bootstrap.ProcessEnv{}, p, out)
	s.Metrics = metrics
	return s, nil
}

// Run performs one initialization and returns the process exit code.
// Metrics are flushed to the configured textfile whatever the outcome.
func Run(ctx context.Context, cfg config.Config, out io.Writer) int {
	var metrics *observability.InitMetrics
	if cfg.MetricsEnabled() {
		metrics = observability.NewInitMetrics()
	}

	s, err := NewInitializer(cfg, out, metrics)
	if err != nil {
		slog.Error("initializer setup failed", slog.Any("error", err))
		return 1
	}

	slog.Debug("initializing hrm system",
		slog.String("dependency", cfg.Dependency),
		slog.String("probe", cfg.DependencyProbe))
	_, err = s.Initialize(ctx)

	if werr := metrics.WriteTextfile(cfg.MetricsTextfile); werr != nil {
		slog.Warn("metrics textfile write failed", slog.String("path", cfg.MetricsTextfile), slog.Any("error", werr))
	}
	return bootstrap.ExitCode(err)
}

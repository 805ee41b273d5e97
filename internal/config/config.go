// Package config defines configuration parsing and helpers.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"

	"github.com/fairyhunter13/hrm-system/internal/domain"
)

// Probe kinds accepted by HRM_DEPENDENCY_PROBE.
const (
	ProbeModule     = "module"
	ProbeExecutable = "executable"
)

// Config holds the runtime settings of the initializer parsed from environment variables.
// These steer how initialization runs; the system settings it writes live in Environment.
type Config struct {
	Dependency      string `env:"HRM_DEPENDENCY" envDefault:"some_dependency" validate:"required"`
	DependencyProbe string `env:"HRM_DEPENDENCY_PROBE" envDefault:"module" validate:"oneof=module executable"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	OTLPEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	OTELServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"hrm-system" validate:"required"`
	// MetricsTextfile is where init metrics are written in the Prometheus
	// text format, for a node_exporter textfile collector. Empty disables it.
	MetricsTextfile string `env:"METRICS_TEXTFILE" envDefault:""`
}

var vld = validator.New()

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	cfg.DependencyProbe = strings.ToLower(strings.TrimSpace(cfg.DependencyProbe))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings against their declared constraints.
func (c Config) Validate() error {
	if err := vld.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidArgument, err)
	}
	return nil
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// TracingEnabled reports whether an OTLP endpoint is configured.
func (c Config) TracingEnabled() bool { return c.OTLPEndpoint != "" }

// MetricsEnabled reports whether init metrics should be written to a textfile.
func (c Config) MetricsEnabled() bool { return c.MetricsTextfile != "" }

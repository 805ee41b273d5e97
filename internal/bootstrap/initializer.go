// Package bootstrap implements the HRM system initializer: it writes the
// system settings into the process environment, probes the optional
// dependency once and reports the result on the console.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/fairyhunter13/hrm-system/internal/adapter/observability"
	"github.com/fairyhunter13/hrm-system/internal/config"
	"github.com/fairyhunter13/hrm-system/internal/domain"
	"github.com/fairyhunter13/hrm-system/pkg/textx"
)

// SuccessMessage is printed when the dependency resolves.
const SuccessMessage = "HRM system initialized successfully."

//go:generate mockery --name=EnvWriter --with-expecter --filename=env_writer_mock.go
//go:generate mockery --name=DependencyProbe --with-expecter --filename=dependency_probe_mock.go

// EnvWriter stores one key/value pair of environment configuration.
type EnvWriter interface {
	Setenv(key, value string) error
}

// DependencyProbe reports whether the named dependency can be resolved.
type DependencyProbe interface {
	IsDependencyAvailable(ctx context.Context, name string) bool
}

// ProcessEnv writes to the process environment.
type ProcessEnv struct{}

// Setenv implements EnvWriter with os.Setenv.
func (ProcessEnv) Setenv(key, value string) error { return os.Setenv(key, value) }

// Initializer runs the startup sequence.
type Initializer struct {
	Env        config.Environment
	Dependency string
	Writer     EnvWriter
	Probe      DependencyProbe
	Out        io.Writer
	Metrics    *observability.InitMetrics
	Now        func() time.Time
}

// NewInitializer builds an Initializer. A nil writer falls back to the
// process environment and a nil out to stdout.
func NewInitializer(env config.Environment, dependency string, w EnvWriter, p DependencyProbe, out io.Writer) Initializer {
	if w == nil {
		w = ProcessEnv{}
	}
	if out == nil {
		out = os.Stdout
	}
	return Initializer{Env: env, Dependency: dependency, Writer: w, Probe: p, Out: out, Now: time.Now}
}

// MissingDependencyMessage is the line printed when name cannot be resolved.
func MissingDependencyMessage(name string) string {
	return fmt.Sprintf("Error: %s is not installed.", textx.SanitizeLine(name))
}

// Initialize writes the system settings, then probes the dependency exactly
// once and prints one status line. The settings are written before the probe
// whatever its outcome, and the returned Environment reflects what was written.
// A missing dependency yields an error wrapping domain.ErrMissingDependency.
func (s Initializer) Initialize(ctx context.Context) (config.Environment, error) {
	tracer := otel.Tracer("bootstrap.initializer")
	ctx, span := tracer.Start(ctx, "bootstrap.Initialize")
	defer span.End()
	span.SetAttributes(
		attribute.String("dependency.name", s.Dependency),
		attribute.String("hrm.system_env", s.Env.SystemEnv),
	)

	env, err := s.initialize(ctx)

	outcome := domain.OutcomeOf(err)
	span.SetAttributes(attribute.String("init.outcome", string(outcome)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(outcome))
	}
	s.Metrics.RecordOutcome(outcome, s.now())
	return env, err
}

func (s Initializer) initialize(ctx context.Context) (config.Environment, error) {
	for _, v := range s.Env.Vars() {
		if err := s.Writer.Setenv(v.Key, v.Value); err != nil {
			slog.Error("environment write failed", slog.String("key", v.Key), slog.Any("error", err))
			return config.Environment{}, fmt.Errorf("op=bootstrap.Initialize: set %s: %w", v.Key, err)
		}
		slog.Debug("environment set", slog.String("key", v.Key), slog.String("value", v.Value))
	}

	start := s.now()
	available := s.Probe != nil && s.Probe.IsDependencyAvailable(ctx, s.Dependency)
	s.Metrics.ObserveProbe(s.now().Sub(start))

	if !available {
		_, _ = fmt.Fprintln(s.Out, MissingDependencyMessage(s.Dependency))
		slog.Error("dependency not available", slog.String("dependency", s.Dependency))
		return s.Env, fmt.Errorf("op=bootstrap.Initialize: %w: %s", domain.ErrMissingDependency, s.Dependency)
	}

	_, _ = fmt.Fprintln(s.Out, SuccessMessage)
	slog.Info("hrm system initialized",
		slog.String("dependency", s.Dependency),
		slog.String("system_env", s.Env.SystemEnv),
		slog.String("system_db", s.Env.SystemDB))
	return s.Env, nil
}

func (s Initializer) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// ExitCode maps the result of Initialize to a process exit status:
// 0 on success, 1 on a missing dependency or any other failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

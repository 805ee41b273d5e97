package observability

import (
	"io"
	"log/slog"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/fairyhunter13/hrm-system/internal/config"
)

// SetupLogger configures a JSON slog logger with service and run fields.
// Logs go to stderr; stdout is reserved for the initializer's status line.
func SetupLogger(cfg config.Config, runID string) *slog.Logger {
	return NewLogger(os.Stderr, cfg, runID)
}

// NewLogger is SetupLogger with an explicit destination.
func NewLogger(w io.Writer, cfg config.Config, runID string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	h := slog.NewJSONHandler(w, opts)
	logger := slog.New(h).With(
		slog.String("service", cfg.OTELServiceName),
		slog.String("env", config.DefaultSystemEnv),
		slog.String("run_id", runID),
	)
	return logger
}

var (
	ulidMu      sync.Mutex
	ulidEntropy = ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0) //nolint:gosec // Weak random is sufficient for ULID entropy.
)

// NewRunID returns a ULID identifying one initializer run.
func NewRunID() string {
	ulidMu.Lock()
	defer ulidMu.Unlock()
	id, err := ulid.New(ulid.Timestamp(time.Now()), ulidEntropy)
	if err != nil {
		return ulid.Make().String()
	}
	return id.String()
}

package probe

import (
	"context"
	"fmt"

	"github.com/fairyhunter13/hrm-system/internal/config"
	"github.com/fairyhunter13/hrm-system/internal/domain"
)

// Probe is implemented by every dependency probe in this package.
type Probe interface {
	IsDependencyAvailable(ctx context.Context, name string) bool
}

// New returns the probe registered under kind.
func New(kind string) (Probe, error) {
	switch kind {
	case config.ProbeModule:
		return NewModuleProbe(), nil
	case config.ProbeExecutable:
		return NewExecutableProbe(), nil
	default:
		return nil, fmt.Errorf("op=probe.New: %w: unknown probe kind %q", domain.ErrInvalidArgument, kind)
	}
}

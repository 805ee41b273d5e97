package probe

import (
	"context"
	"os/exec"
	"strings"
)

// ExecutableProbe checks whether a program is resolvable on PATH.
type ExecutableProbe struct {
	lookPath func(file string) (string, error)
}

// NewExecutableProbe returns a probe backed by exec.LookPath.
func NewExecutableProbe() *ExecutableProbe {
	return &ExecutableProbe{lookPath: exec.LookPath}
}

// IsDependencyAvailable reports whether name resolves to an executable file.
func (p *ExecutableProbe) IsDependencyAvailable(ctx context.Context, name string) bool {
	if ctx.Err() != nil {
		return false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	_, err := p.lookPath(name)
	return err == nil
}

package probe

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutableProbe_LookPath(t *testing.T) {
	var looked []string
	p := &ExecutableProbe{lookPath: func(file string) (string, error) {
		looked = append(looked, file)
		if file == "some_dependency" {
			return "/usr/local/bin/some_dependency", nil
		}
		return "", exec.ErrNotFound
	}}

	assert.True(t, p.IsDependencyAvailable(context.Background(), " some_dependency "))
	assert.False(t, p.IsDependencyAvailable(context.Background(), "missing"))
	assert.False(t, p.IsDependencyAvailable(context.Background(), ""))
	assert.Equal(t, []string{"some_dependency", "missing"}, looked)
}

func TestExecutableProbe_CancelledContext(t *testing.T) {
	p := &ExecutableProbe{lookPath: func(string) (string, error) {
		return "", errors.New("must not be called")
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, p.IsDependencyAvailable(ctx, "some_dependency"))
}

func TestExecutableProbe_OnPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a unix executable bit")
	}
	dir := t.TempDir()
	bin := filepath.Join(dir, "some_dependency")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	t.Setenv("PATH", dir)

	p := NewExecutableProbe()
	assert.True(t, p.IsDependencyAvailable(context.Background(), "some_dependency"))
	assert.False(t, p.IsDependencyAvailable(context.Background(), "other_dependency"))
}

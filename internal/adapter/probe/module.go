package probe

import (
	"context"
	"runtime/debug"

	"github.com/fairyhunter13/hrm-system/pkg/textx"
)

// ModuleProbe checks the module list recorded in the binary's build info.
type ModuleProbe struct {
	readBuildInfo func() (*debug.BuildInfo, bool)
}

// NewModuleProbe returns a probe reading the running binary's build info.
func NewModuleProbe() *ModuleProbe {
	return &ModuleProbe{readBuildInfo: debug.ReadBuildInfo}
}

// IsDependencyAvailable reports whether a module matching name is linked into the binary.
// A module matches on its full path or on the name it is imported by (the last
// path element, skipping a /vN major version), with hyphens and underscores
// treated alike. A bare major version such as v2 never matches.
func (p *ModuleProbe) IsDependencyAvailable(ctx context.Context, name string) bool {
	if ctx.Err() != nil {
		return false
	}
	want := textx.NormalizeName(name)
	if want == "" || textx.IsMajorVersion(want) {
		return false
	}
	info, ok := p.readBuildInfo()
	if !ok || info == nil {
		return false
	}
	for _, dep := range info.Deps {
		if dep == nil {
			continue
		}
		if matches(dep.Path, want) {
			return true
		}
		// a replacement pointing at another module also satisfies the name
		if dep.Replace != nil && !isLocalPath(dep.Replace.Path) && matches(dep.Replace.Path, want) {
			return true
		}
	}
	return false
}

func matches(path, want string) bool {
	if path == "" {
		return false
	}
	return textx.NormalizeName(path) == want || textx.NormalizeName(textx.ModuleBaseName(path)) == want
}

func isLocalPath(p string) bool {
	return len(p) > 0 && (p[0] == '.' || p[0] == '/')
}

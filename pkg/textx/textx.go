// Package textx provides small text utilities used across the project.
package textx

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	majorVersion = regexp.MustCompile(`^v[0-9]+$`)
	gopkgVersion = regexp.MustCompile(`\.v[0-9]+$`)
)

// SanitizeLine removes every control character (C0 and C1) and trims spaces,
// so the result is safe to embed in a single terminal line.
func SanitizeLine(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// NormalizeName folds a dependency name for comparison: lower case, with
// hyphens treated as underscores.
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "-", "_")
}

// IsMajorVersion reports whether s is a Go major version suffix such as v2.
func IsMajorVersion(s string) bool {
	return majorVersion.MatchString(s)
}

// LastSegment returns the part of a slash separated path after the final slash.
func LastSegment(p string) string {
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}

// ModuleBaseName returns the name a module is imported by: the last path
// element with a /vN major version element or a gopkg.in .vN suffix removed.
func ModuleBaseName(path string) string {
	p := strings.TrimRight(path, "/")
	if i := strings.LastIndexByte(p, '/'); i >= 0 && IsMajorVersion(p[i+1:]) {
		p = p[:i]
	}
	return gopkgVersion.ReplaceAllString(LastSegment(p), "")
}

// Package textx contains tests for the text utilities.
package textx

import "testing"

func TestSanitizeLine(t *testing.T) {
	in := " some\x00_dep\nend\x7fency\t "
	got := SanitizeLine(in)
	if got != "some_dependency" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestSanitizeLine_C1Controls(t *testing.T) {
	in := "some_dependency\u009b31m\u0085"
	got := SanitizeLine(in)
	if got != "some_dependency31m" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"some_dependency":  "some_dependency",
		"Some-Dependency":  "some_dependency",
		" some-dependency": "some_dependency",
		"yaml.v3":          "yaml.v3",
	}
	for in, want := range cases {
		if got := NormalizeName(in); got != want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLastSegment(t *testing.T) {
	cases := map[string]string{
		"github.com/acme/some-dependency":  "some-dependency",
		"github.com/acme/some-dependency/": "some-dependency",
		"some_dependency":                  "some_dependency",
		"":                                 "",
	}
	for in, want := range cases {
		if got := LastSegment(in); got != want {
			t.Fatalf("LastSegment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestModuleBaseName(t *testing.T) {
	cases := map[string]string{
		"github.com/oklog/ulid/v2":        "ulid",
		"github.com/caarlos0/env/v10":     "env",
		"github.com/acme/some-dependency": "some-dependency",
		"gopkg.in/yaml.v3":                "yaml",
		"github.com/acme/v2tools":         "v2tools",
		"some_dependency":                 "some_dependency",
	}
	for in, want := range cases {
		if got := ModuleBaseName(in); got != want {
			t.Fatalf("ModuleBaseName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsMajorVersion(t *testing.T) {
	for _, s := range []string{"v2", "v10"} {
		if !IsMajorVersion(s) {
			t.Fatalf("IsMajorVersion(%q) = false", s)
		}
	}
	for _, s := range []string{"v", "v2tools", "ulid", "2"} {
		if IsMajorVersion(s) {
			t.Fatalf("IsMajorVersion(%q) = true", s)
		}
	}
}

// Package probe answers whether a named external dependency can be resolved.
//
// Two probes are provided. The module probe inspects the build info of the
// running binary and reports whether a Go module of that name was linked in.
// The executable probe reports whether a program of that name is on PATH.
// Both are single shot: they never retry and never invoke the dependency.
package probe

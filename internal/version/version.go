// Package version exposes the build's version string, set at build
// time via ldflags with a module build-info fallback.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is set via -ldflags "-X ...version.Version=v1.2.3".
	Version = "dev"
	// Commit is the git commit hash the binary was built from.
	Commit = ""
	// BuildTime is the build timestamp.
	BuildTime = ""
)

// String returns the version for display. When no ldflags version was
// injected it falls back to the module version recorded by the Go
// toolchain (useful for go install builds).
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}

// Detailed returns the version plus commit and build time when known.
func Detailed() string {
	s := String()
	if Commit != "" {
		short := Commit
		if len(short) > 7 {
			short = short[:7]
		}
		s = fmt.Sprintf("%s (commit %s)", s, short)
	}
	if BuildTime != "" {
		s = fmt.Sprintf("%s built %s", s, BuildTime)
	}
	return s
}

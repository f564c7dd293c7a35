// ============================================================================
// wstring - Small-footprint mutable byte strings
// ============================================================================
//
// Package:     version
// Description: Version information for the library and the wstr command
// Author:      msto63
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Library is the version of the core packages
	Library = "0.1.0"

	// CLI is the version of the wstr command
	CLI = "0.1.0"
)

// Set at build time via -ldflags
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "wstr", "cli":
		return CLI
	default:
		return Library
	}
}

// Info describes a build
type Info struct {
	Library   string
	CLI       string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Current returns the build information of the running binary
func Current() Info {
	return Info{
		Library:   Library,
		CLI:       CLI,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

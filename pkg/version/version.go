// Package version reports the nmstatus build, injected with -ldflags
// "-X github.com/carverauto/nmstatus/pkg/version.version=...".
package version

import "fmt"

// These variables are set via ldflags during build
//
//nolint:gochecknoglobals // These are intentionally global for ldflags injection
var (
	version = "dev"
	buildID = "dev"
)

const program = "nmstatus"

// GetVersion returns the current version
func GetVersion() string {
	return version
}

// GetBuildID returns the current build ID
func GetBuildID() string {
	return buildID
}

// GetFullVersion returns the program name, version and build ID.
func GetFullVersion() string {
	return fmt.Sprintf("%s %s (build: %s)", program, version, buildID)
}

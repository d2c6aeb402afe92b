// Package version holds the chlog version information.
// This is a separate package to avoid import cycles - it has no dependencies
// and can be safely imported from any package.
package version

import "fmt"

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// String formats the full version line shown by the version command.
func String() string {
	return fmt.Sprintf("chlog %s (commit %s, built %s)", Version, Commit, BuildDate)
}

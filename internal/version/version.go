package version

import "fmt"

// Set via -ldflags at release time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the version line printed by --version.
func String() string {
	return fmt.Sprintf("docindex %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

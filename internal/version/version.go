package version

import "fmt"

// Version and GitCommit are set at build time with -ldflags.
var (
	Version   = "0.1.0"
	GitCommit = ""
)

// FullVersion returns the version with the commit it was built from, when known.
func FullVersion() string {
	if GitCommit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}

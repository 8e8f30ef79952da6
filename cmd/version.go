// Package cmd contains build-time variables injected via ldflags.
package cmd

import "fmt"

// Build-time variables set via ldflags:
//
//	go build -ldflags "-X github.com/thoreinstein/extbuild/cmd.Version=v1.2.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// Short returns the one-line version string used by --version.
func Short() string {
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, Date)
}

//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary     = "extbuild"
	mainPkg    = "./cmd/extbuild"
	versionPkg = "github.com/thoreinstein/extbuild/cmd"
)

// Default target when mage runs without arguments.
var Default = Build

func ldflags() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	commit, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	if commit == "" {
		commit = "none"
	}
	date, _ := sh.Output("date", "-u", "+%Y-%m-%dT%H:%M:%SZ")

	return fmt.Sprintf("-s -w -X %[1]s.Version=%[2]s -X %[1]s.Commit=%[3]s -X %[1]s.Date=%[4]s",
		versionPkg, version, commit, date)
}

// Build compiles the extbuild binary into bin/.
func Build() error {
	mg.Deps(Tidy)
	return sh.RunV("go", "build", "-ldflags", ldflags(), "-o", filepath.Join("bin", binary), mainPkg)
}

// Test runs the unit tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Lint runs go vet.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Tidy syncs go.mod and go.sum.
func Tidy() error {
	return sh.Run("go", "mod", "tidy")
}

// Check runs lint and tests.
func Check() {
	mg.SerialDeps(Lint, Test)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm("bin")
}

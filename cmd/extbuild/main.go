// Package main is the entry point for the extbuild CLI.
package main

import (
	"os"

	"github.com/thoreinstein/extbuild/cmd/extbuild/commands"
)

func main() {
	err := commands.Execute()
	os.Exit(commands.Report(os.Stderr, err))
}

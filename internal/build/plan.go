package build

import (
	"github.com/thoreinstein/extbuild/internal/install"
	"github.com/thoreinstein/extbuild/internal/platform"
	"github.com/thoreinstein/extbuild/internal/runner"
	"github.com/thoreinstein/extbuild/internal/toolchain"
)

// Proto preprocessing and the Rust FFI crate are part of the valkey-glide
// source tree and run before phpize on POSIX hosts.
const (
	protoScript = "utils/remove_optional_from_proto.py"
	ffiDir      = "valkey-glide/ffi"
)

// Plan returns the ordered build commands for ext on p. Unsupported
// platforms have no plan.
func Plan(p platform.Platform, ext string) []runner.CommandSpec {
	switch p {
	case platform.MacOS, platform.Linux:
		return runner.Commands(
			"python3 "+protoScript,
			"cd "+ffiDir,
			"cargo build --release",
			"cd ../../",
			"phpize",
			"./configure --enable-"+ext,
			"make clean",
			"make",
		)
	case platform.Windows:
		return runner.Commands(
			"phpize",
			"configure --enable-"+ext,
			"nmake clean",
			"nmake",
		)
	default:
		return nil
	}
}

// PlanView is a serialisable description of what a run would do.
type PlanView struct {
	Platform     string                  `json:"platform" yaml:"platform"`
	Extension    string                  `json:"extension" yaml:"extension"`
	PackageRoot  string                  `json:"package_root" yaml:"package_root"`
	Requirements []toolchain.Requirement `json:"requirements" yaml:"requirements"`
	Commands     []string                `json:"commands" yaml:"commands"`
	Artifacts    []string                `json:"artifacts" yaml:"artifacts"`
	Strategies   []string                `json:"install_strategies" yaml:"install_strategies"`
}

// Describe builds the PlanView for ext on p rooted at root.
func Describe(p platform.Platform, ext, root, elevationCommand string) PlanView {
	specs := Plan(p, ext)
	commands := make([]string, len(specs))
	for i, s := range specs {
		commands[i] = s.String()
	}

	view := PlanView{
		Platform:     p.String(),
		Extension:    ext,
		PackageRoot:  root,
		Requirements: toolchain.Requirements(p),
		Commands:     commands,
	}
	if p.Supported() {
		view.Artifacts = install.ExpectedPaths(p, root, ext)
		view.Strategies = install.NewInstaller(install.Config{
			Platform:         p,
			ElevationCommand: elevationCommand,
		}).StrategyNames()
	}
	return view
}

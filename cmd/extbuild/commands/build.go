package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/extbuild/internal/build"
	"github.com/thoreinstein/extbuild/internal/config"
	exterrors "github.com/thoreinstein/extbuild/internal/errors"
	"github.com/thoreinstein/extbuild/internal/install"
	"github.com/thoreinstein/extbuild/internal/paths"
	"github.com/thoreinstein/extbuild/internal/phpenv"
	"github.com/thoreinstein/extbuild/internal/platform"
	"github.com/thoreinstein/extbuild/internal/runner"
	"github.com/thoreinstein/extbuild/internal/toolchain"
)

// newBuildDeps wires the real collaborators. Tests replace it.
var newBuildDeps = defaultBuildDeps

func defaultBuildDeps(c *config.Config, out io.Writer) build.Deps {
	host := platform.Current()

	return build.Deps{
		Detect:  platform.Current,
		Checker: toolchain.NewChecker(toolchain.NewLocator(host)),
		Runner: runner.New(runner.NewShellExecutor(host),
			runner.WithTailLines(c.OutputTailLines),
			runner.WithProgressLines(progressLines(c, verbosity)),
		),
		NewInstaller: installerFactory(c),
		Runtime:      newRuntime(c),
		Out:          out,
	}
}

// progressLines widens the echo after each successful command to the
// failure tail length when -v is given.
func progressLines(c *config.Config, verbosity int) int {
	if verbosity > 0 && c.OutputTailLines > c.ProgressLines {
		return c.OutputTailLines
	}
	return c.ProgressLines
}

func newRuntime(c *config.Config) *phpenv.Runtime {
	rt := phpenv.New(c.PHPBinary, c.PHPConfigBinary, nil)
	rt.DefaultExtensionDir = c.ExtensionDir
	return rt
}

func installerFactory(c *config.Config) build.InstallerFactory {
	return func(bctx build.Context, extDir string) build.Installer {
		return install.NewInstaller(install.Config{
			Platform:         bctx.Platform,
			PackageRoot:      bctx.PackageRoot,
			ExtensionName:    bctx.ExtensionName,
			ExtensionDir:     extDir,
			UserDir:          paths.UserExtensionDir(bctx.Platform, nil),
			ElevationCommand: c.ElevationCommand,
		})
	}
}

// runBuild is the root command: one full build-and-install run.
func runBuild(cmd *cobra.Command, _ []string) error {
	c := loadedConfig()

	root, err := paths.ResolvePackageRoot(c.PackageRoot)
	if err != nil {
		return exterrors.NewFailure(err, "run extbuild from the extension source tree or set package_root")
	}

	orch := build.New(c.ExtensionName, root, newBuildDeps(c, cmd.OutOrStdout()))
	outcome := orch.Run(cmd.Context())
	if outcome.State == build.StateFailed {
		// The orchestrator has already printed the error and hints.
		return exterrors.NewReported(outcome.Err)
	}
	return nil
}

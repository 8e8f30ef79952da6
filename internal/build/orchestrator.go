package build

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	exterrors "github.com/thoreinstein/extbuild/internal/errors"
	"github.com/thoreinstein/extbuild/internal/install"
	"github.com/thoreinstein/extbuild/internal/instructions"
	"github.com/thoreinstein/extbuild/internal/logging"
	"github.com/thoreinstein/extbuild/internal/phpenv"
	"github.com/thoreinstein/extbuild/internal/platform"
	"github.com/thoreinstein/extbuild/internal/runner"
	"github.com/thoreinstein/extbuild/internal/toolchain"
)

// Context is the read-only description of one run.
type Context struct {
	Platform       platform.Platform
	PackageRoot    string
	RuntimeVersion string
	ExtensionName  string
}

// Verifier checks the build toolchain.
type Verifier interface {
	Verify(ctx context.Context, p platform.Platform) error
	Advisories(ctx context.Context, p platform.Platform) []toolchain.Advisory
}

// CommandRunner executes the build plan.
type CommandRunner interface {
	Run(ctx context.Context, specs []runner.CommandSpec, root string) error
}

// Installer places the built artifact.
type Installer interface {
	Install(ctx context.Context) (*install.Placement, error)
}

// Runtime answers questions about the host PHP.
type Runtime interface {
	Version(ctx context.Context) (string, error)
	ExtensionLoaded(ctx context.Context, name string) (bool, error)
	ExtensionDir(ctx context.Context) (string, phpenv.DirSource)
}

// InstallerFactory builds the Installer once the extension directory is
// known.
type InstallerFactory func(bctx Context, extensionDir string) Installer

// Deps are the collaborators an Orchestrator delegates to.
type Deps struct {
	Detect       func() platform.Platform
	Checker      Verifier
	Runner       CommandRunner
	NewInstaller InstallerFactory
	Runtime      Runtime
	// Out receives user-facing text. Nil means os.Stdout.
	Out io.Writer
}

// Outcome is the result of Run.
type Outcome struct {
	// State is StateDone or StateFailed.
	State State
	// FailedAt is the state that failed; meaningful only when State is
	// StateFailed.
	FailedAt State
	Context  Context
	// AlreadyLoaded is true when the run stopped at Init because PHP
	// already loads the extension.
	AlreadyLoaded bool
	Placement     *install.Placement
	Err           error
}

// ExitCode maps the outcome to a process exit code.
func (o *Outcome) ExitCode() int {
	if o.State == StateDone {
		return exterrors.ExitSuccess
	}
	return exterrors.ExitFailure
}

// Orchestrator runs the build state machine once.
type Orchestrator struct {
	ext  string
	root string
	deps Deps
	out  io.Writer

	state State
}

// New creates an Orchestrator for extension ext rooted at packageRoot.
func New(ext, packageRoot string, deps Deps) *Orchestrator {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}
	if deps.Detect == nil {
		deps.Detect = platform.Current
	}
	return &Orchestrator{ext: ext, root: packageRoot, deps: deps, out: out, state: StateInit}
}

// State returns the current state.
func (o *Orchestrator) State() State {
	return o.state
}

func (o *Orchestrator) enter(ctx context.Context, s State) {
	logging.FromContext(ctx).Debug("state transition", "from", o.state.String(), "to", s.String())
	o.state = s
}

// Run executes one build. Every failure is written to Out followed by a
// troubleshooting block and returned in the Outcome.
func (o *Orchestrator) Run(ctx context.Context) *Outcome {
	logger := logging.FromContext(ctx)
	outcome := &Outcome{Context: Context{PackageRoot: o.root, ExtensionName: o.ext}}

	if loaded, err := o.deps.Runtime.ExtensionLoaded(ctx, o.ext); err != nil {
		logger.Debug("extension check failed", "error", err)
	} else if loaded {
		fmt.Fprintf(o.out, "Extension %s is already loaded.\n", o.ext)
		o.enter(ctx, StateDone)
		outcome.State = StateDone
		outcome.AlreadyLoaded = true
		return outcome
	}

	o.enter(ctx, StateDetecting)
	p := o.deps.Detect()
	version, err := o.deps.Runtime.Version(ctx)
	if err != nil {
		logger.Debug("PHP version unavailable", "error", err)
		version = "unknown"
	}
	outcome.Context.Platform = p
	outcome.Context.RuntimeVersion = version
	bctx := outcome.Context

	fmt.Fprintf(o.out, "Building %s extension for %s (PHP %s)...\n", o.ext, p, version)
	if !p.Supported() {
		return o.fail(ctx, outcome, errors.Wrapf(exterrors.ErrUnsupportedPlatform, "%s", p))
	}
	logger.Info(fmt.Sprintf("Building for %s...", p.DisplayName()))

	o.enter(ctx, StateCheckingTools)
	if err := o.deps.Checker.Verify(ctx, p); err != nil {
		return o.fail(ctx, outcome, err)
	}
	toolchain.Report(ctx, o.deps.Checker.Advisories(ctx, p))

	o.enter(ctx, StateBuilding)
	if err := o.deps.Runner.Run(ctx, Plan(p, o.ext), o.root); err != nil {
		return o.fail(ctx, outcome, err)
	}

	o.enter(ctx, StateInstalling)
	extDir, source := o.deps.Runtime.ExtensionDir(ctx)
	logger.Debug("extension directory", "dir", extDir, "source", string(source))

	placement, err := o.deps.NewInstaller(bctx, extDir).Install(ctx)
	if err != nil {
		return o.fail(ctx, outcome, err)
	}
	outcome.Placement = placement

	o.enter(ctx, StateDone)
	outcome.State = StateDone
	fmt.Fprintf(o.out, "Extension %s built and installed successfully!\n", o.ext)

	needsDir := ""
	if placement.NeedsConfig {
		needsDir = placement.Dir
	}
	if err := instructions.PostInstallWithDir(o.out, p, o.ext, needsDir); err != nil {
		logger.Warn("could not render post-install instructions", "error", err)
	}
	return outcome
}

// fail records err, prints it with the troubleshooting block and moves to
// StateFailed. The platform is detected again rather than taken from the
// run context.
func (o *Orchestrator) fail(ctx context.Context, outcome *Outcome, err error) *Outcome {
	logger := logging.FromContext(ctx)

	outcome.FailedAt = o.state
	outcome.Err = err
	outcome.State = StateFailed
	o.enter(ctx, StateFailed)

	fmt.Fprintf(o.out, "Build failed: %s\n", err)

	var cmdErr *runner.CommandFailure
	if errors.As(err, &cmdErr) {
		for _, line := range cmdErr.Tail {
			fmt.Fprintln(o.out, line)
		}
	}

	if err := instructions.Troubleshooting(o.out, o.deps.Detect()); err != nil {
		logger.Warn("could not render troubleshooting hints", "error", err)
	}
	return outcome
}

package install

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/extbuild/internal/logging"
	"github.com/thoreinstein/extbuild/internal/paths"
	"github.com/thoreinstein/extbuild/pkg/fileutil"
)

// Strategy names.
const (
	StrategyDirect   = "direct-copy"
	StrategyElevated = "elevated-copy"
	StrategyUser     = "user-fallback"
)

// Placement describes where an artifact was installed.
type Placement struct {
	// Path is the installed module file.
	Path string `json:"path" yaml:"path"`
	// Dir is the directory holding Path.
	Dir string `json:"dir" yaml:"dir"`
	// Strategy is the name of the strategy that succeeded.
	Strategy string `json:"strategy" yaml:"strategy"`
	// NeedsConfig is true when Dir is not PHP's configured extension
	// directory and php.ini must point extension_dir at it.
	NeedsConfig bool `json:"needs_config" yaml:"needs_config"`
}

// Strategy is one attempt to place the artifact.
type Strategy interface {
	// Name identifies the strategy in logs and failures.
	Name() string
	// Dir returns the directory the strategy targets.
	Dir() string
	// Attempt copies artifact into Dir.
	Attempt(ctx context.Context, artifact string) (*Placement, error)
}

// ErrNoExtensionDir is returned by DirectCopy when PHP reported no
// extension directory.
var ErrNoExtensionDir = errors.New("extension directory unknown")

// DirectCopy copies into PHP's extension directory with the caller's
// privileges. It does not create the directory.
type DirectCopy struct {
	ExtensionDir string
}

var _ Strategy = (*DirectCopy)(nil)

// Name implements Strategy.
func (s *DirectCopy) Name() string { return StrategyDirect }

// Dir implements Strategy.
func (s *DirectCopy) Dir() string { return s.ExtensionDir }

// Attempt implements Strategy.
func (s *DirectCopy) Attempt(_ context.Context, artifact string) (*Placement, error) {
	if s.ExtensionDir == "" {
		return nil, ErrNoExtensionDir
	}
	target := filepath.Join(s.ExtensionDir, filepath.Base(artifact))
	if err := fileutil.AtomicCopyFile(artifact, target, 0); err != nil {
		return nil, errors.Wrapf(err, "copying to %s", target)
	}
	return &Placement{Path: target, Dir: s.ExtensionDir, Strategy: StrategyDirect}, nil
}

// Elevator runs a command with raised privileges.
type Elevator interface {
	// Elevate runs argv through the privilege wrapper and returns its exit
	// code. err is reserved for a wrapper that could not be started.
	Elevate(ctx context.Context, argv ...string) (exitCode int, err error)
}

// CommandElevator prefixes argv with a wrapper such as sudo. The terminal
// stays attached so the wrapper can prompt for a password.
type CommandElevator struct {
	Command string
}

var _ Elevator = (*CommandElevator)(nil)

// Elevate implements Elevator.
func (e *CommandElevator) Elevate(ctx context.Context, argv ...string) (int, error) {
	cmd := exec.CommandContext(ctx, e.Command, argv...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, errors.Wrapf(err, "starting %s", e.Command)
}

// ElevationDeclinedError reports that the privilege wrapper ran but the
// copy did not succeed, typically because the password prompt was refused.
type ElevationDeclinedError struct {
	Command  string
	ExitCode int
}

// Error implements error.
func (e *ElevationDeclinedError) Error() string {
	return fmt.Sprintf("%s declined or failed (exit code %d)", e.Command, e.ExitCode)
}

// ElevatedCopy re-attempts the copy into PHP's extension directory through
// a privilege wrapper.
type ElevatedCopy struct {
	ExtensionDir string
	// Command is the wrapper name shown in logs, for example "sudo".
	Command  string
	Elevator Elevator
}

var _ Strategy = (*ElevatedCopy)(nil)

// Name implements Strategy.
func (s *ElevatedCopy) Name() string { return StrategyElevated }

// Dir implements Strategy.
func (s *ElevatedCopy) Dir() string { return s.ExtensionDir }

// Attempt implements Strategy.
func (s *ElevatedCopy) Attempt(ctx context.Context, artifact string) (*Placement, error) {
	if s.ExtensionDir == "" {
		return nil, ErrNoExtensionDir
	}
	target := filepath.Join(s.ExtensionDir, filepath.Base(artifact))

	logging.FromContext(ctx).Info(fmt.Sprintf("Trying with %s: %s cp %s %s", s.Command, s.Command, artifact, target))

	code, err := s.Elevator.Elevate(ctx, "cp", artifact, target)
	if err != nil {
		return nil, err
	}
	if code != 0 {
		return nil, &ElevationDeclinedError{Command: s.Command, ExitCode: code}
	}
	return &Placement{Path: target, Dir: s.ExtensionDir, Strategy: StrategyElevated}, nil
}

// UserFallback copies into a per-user directory, creating it if needed.
type UserFallback struct {
	UserDir string
}

var _ Strategy = (*UserFallback)(nil)

// Name implements Strategy.
func (s *UserFallback) Name() string { return StrategyUser }

// Dir implements Strategy.
func (s *UserFallback) Dir() string { return s.UserDir }

// Attempt implements Strategy.
func (s *UserFallback) Attempt(_ context.Context, artifact string) (*Placement, error) {
	if err := paths.EnsureDir(s.UserDir, paths.UserExtensionDirPerm); err != nil {
		return nil, err
	}
	target := filepath.Join(s.UserDir, filepath.Base(artifact))
	if err := fileutil.AtomicCopyFile(artifact, target, 0); err != nil {
		return nil, errors.Wrapf(err, "copying to %s", target)
	}
	return &Placement{Path: target, Dir: s.UserDir, Strategy: StrategyUser, NeedsConfig: true}, nil
}

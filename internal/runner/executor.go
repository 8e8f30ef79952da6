package runner

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/extbuild/internal/platform"
)

// Executor runs a single command line in dir.
//
// A command that starts and exits non-zero is not an error: the exit code is
// returned with a nil error. err is reserved for commands that could not be
// started at all.
type Executor interface {
	Execute(ctx context.Context, command, dir string) (exitCode int, output []byte, err error)
}

// ShellExecutor runs commands through the platform shell and captures
// stdout and stderr into one buffer.
type ShellExecutor struct {
	// Shell is the interpreter, "sh" or "cmd".
	Shell string
	// Flag introduces the command string, "-c" or "/C".
	Flag string
}

var _ Executor = (*ShellExecutor)(nil)

// NewShellExecutor returns the shell used for build commands on p.
func NewShellExecutor(p platform.Platform) *ShellExecutor {
	if p == platform.Windows {
		return &ShellExecutor{Shell: "cmd", Flag: "/C"}
	}
	return &ShellExecutor{Shell: "sh", Flag: "-c"}
}

// Execute implements Executor.
func (e *ShellExecutor) Execute(ctx context.Context, command, dir string) (int, []byte, error) {
	cmd := exec.CommandContext(ctx, e.Shell, e.Flag, command)
	cmd.Dir = dir
	setCommandLine(cmd, e.Shell, e.Flag, command)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if err == nil {
		return 0, out.Bytes(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code == 0 {
			// Killed by a signal; ExitCode reports -1 there, but guard anyway.
			code = -1
		}
		return code, out.Bytes(), nil
	}

	return -1, out.Bytes(), errors.Wrapf(err, "starting %s", e.Shell)
}

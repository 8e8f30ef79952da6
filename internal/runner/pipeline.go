package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	exterrors "github.com/thoreinstein/extbuild/internal/errors"
	"github.com/thoreinstein/extbuild/internal/logging"
	"github.com/thoreinstein/extbuild/internal/paths"
)

// Default output limits.
const (
	DefaultTailLines     = 20
	DefaultProgressLines = 3
)

// CommandFailure reports the command that stopped a pipeline.
type CommandFailure struct {
	Command  string
	Dir      string
	ExitCode int
	// Tail holds the trailing lines of combined output.
	Tail []string
	// Err is set when the command could not be started.
	Err error
}

// Error implements error.
func (f *CommandFailure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("Build failed at: %s: %v", f.Command, f.Err)
	}
	return "Build failed at: " + f.Command
}

// Unwrap exposes exterrors.ErrCommandFailed and the start error, if any.
func (f *CommandFailure) Unwrap() []error {
	if f.Err != nil {
		return []error{exterrors.ErrCommandFailed, f.Err}
	}
	return []error{exterrors.ErrCommandFailed}
}

// Pipeline runs command sequences with fail-fast semantics.
type Pipeline struct {
	exec          Executor
	tailLines     int
	progressLines int
	observe       func(CommandResult)
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTailLines sets how many output lines a CommandFailure keeps.
func WithTailLines(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.tailLines = n
		}
	}
}

// WithProgressLines sets how many trailing output lines are logged after
// each successful command. Zero disables progress output.
func WithProgressLines(n int) Option {
	return func(p *Pipeline) {
		if n >= 0 {
			p.progressLines = n
		}
	}
}

// WithObserver registers fn to receive every executed command's result.
func WithObserver(fn func(CommandResult)) Option {
	return func(p *Pipeline) {
		p.observe = fn
	}
}

// New creates a Pipeline that executes commands with exec.
func New(exec Executor, opts ...Option) *Pipeline {
	p := &Pipeline{
		exec:          exec,
		tailLines:     DefaultTailLines,
		progressLines: DefaultProgressLines,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes specs in order starting in root. It returns nil only when
// every command exits zero; otherwise it returns a *CommandFailure for the
// first failing command and nothing after it runs.
func (p *Pipeline) Run(ctx context.Context, specs []CommandSpec, root string) error {
	logger := logging.FromContext(ctx)
	wd := root

	for _, spec := range specs {
		if target, ok := spec.Chdir(); ok {
			next, err := changeDir(wd, target)
			if err != nil {
				return &CommandFailure{
					Command:  spec.Command,
					Dir:      wd,
					ExitCode: 1,
					Tail:     []string{err.Error()},
				}
			}
			logger.Debug("changing directory", "from", wd, "to", next)
			wd = next
			continue
		}

		dir := wd
		if spec.Dir != "" {
			dir = resolve(wd, spec.Dir)
		}

		logger.Info("Running: " + spec.Command)
		logger.Debug("command directory", "dir", dir)

		code, output, err := p.exec.Execute(ctx, spec.Command, dir)
		result := CommandResult{Spec: spec, Dir: dir, ExitCode: code, Output: output}
		if p.observe != nil {
			p.observe(result)
		}

		for _, line := range result.Lines() {
			logger.Log(ctx, logging.LevelTrace, line, "command", spec.Command)
		}

		if err != nil || code != 0 {
			logger.Error("Command failed: "+spec.Command, "exit_code", code)
			return &CommandFailure{
				Command:  spec.Command,
				Dir:      dir,
				ExitCode: code,
				Tail:     result.Tail(p.tailLines),
				Err:      err,
			}
		}

		for _, line := range result.Progress(p.progressLines) {
			logger.Info("  " + strings.TrimRight(line, " \t"))
		}
	}

	return nil
}

func resolve(wd, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(wd, dir)
}

// changeDir applies a cd pseudo-step. A bare "cd" is a no-op, matching the
// shell builtin on Windows; it never means $HOME here.
func changeDir(wd, target string) (string, error) {
	if target == "" {
		return wd, nil
	}
	next := resolve(wd, target)
	info, err := os.Stat(next)
	if err != nil {
		return "", errors.Wrapf(err, "cd %s", target)
	}
	if !info.IsDir() {
		return "", errors.Wrapf(paths.ErrNotDirectory, "cd %s", target)
	}
	return next, nil
}

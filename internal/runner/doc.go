// Package runner executes an ordered sequence of external build commands.
//
// A [Pipeline] runs each [CommandSpec] synchronously through an [Executor]
// and stops at the first non-zero exit, returning a [*CommandFailure] that
// carries the failing command and the tail of its combined output. Commands
// of the form "cd <dir>" are not executed: they move the run's working
// directory for the commands that follow. That directory starts at the root
// passed to [Pipeline.Run] and is discarded when Run returns.
//
//	p := runner.New(runner.NewShellExecutor(platform.Linux))
//	err := p.Run(ctx, runner.Commands(
//	    "cd valkey-glide/ffi",
//	    "cargo build --release",
//	    "cd ../../",
//	    "phpize",
//	), root)
package runner

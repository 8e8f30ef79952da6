// Package logging provides structured logging for the extbuild CLI using slog.
//
// Build progress ("Running: cargo build --release", install targets,
// advisories) is emitted through the logger carried on the context, so every
// component logs the same way regardless of whether it runs under the CLI or
// a test.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Info("building", "platform", "linux")
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	ctx := logging.NewContext(t.Context(), logging.ForTest(t))
package logging

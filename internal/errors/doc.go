// Package errors provides error handling conventions for the extbuild CLI.
//
// The package defines the sentinel errors that make up the build failure
// taxonomy, an ExitError type for CLI exit code handling, and exit code
// constants.
//
// # Sentinel Errors
//
// Every component returns a typed error that unwraps to one of the
// sentinels, so callers can branch on the failure class with [errors.Is]:
//
//	if errors.Is(err, exterrors.ErrMissingTool) {
//	    // a required build tool is not on PATH
//	}
//
// The typed errors themselves (for example toolchain.MissingToolError) live
// next to the component that produces them and are reachable with
// [errors.As].
//
// # Exit Codes
//
// The build either succeeds (ExitSuccess) or fails (ExitFailure). There is no
// partial-success code.
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := exterrors.NewFailure(exterrors.ErrInvalidConfig, "Check extbuild.yaml")
//	var exitErr *exterrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors

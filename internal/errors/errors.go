package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates the build and install completed.
	ExitSuccess = 0

	// ExitFailure indicates any failure. The troubleshooting block has
	// already been printed when this code is returned.
	ExitFailure = 1
)

// Sentinel errors for the build failure taxonomy.
var (
	// ErrUnsupportedPlatform indicates the host OS is not macOS, Linux/BSD or Windows.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrMissingTool indicates a required build tool could not be resolved on PATH.
	ErrMissingTool = errors.New("required tool not found")

	// ErrCommandFailed indicates a build command exited non-zero.
	ErrCommandFailed = errors.New("build command failed")

	// ErrArtifactNotFound indicates the build succeeded but produced no artifact
	// at any expected location.
	ErrArtifactNotFound = errors.New("built extension not found")

	// ErrInstallFailed indicates every installation strategy failed.
	ErrInstallFailed = errors.New("failed to install extension")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ExitError wraps an error with an exit code and optional suggestion for the CLI.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string

	// Reported is set once the error has already been rendered to the user,
	// so the entry point does not print it a second time.
	Reported bool
}

// NewExitError creates an ExitError with the given underlying error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewFailure creates an ExitError with ExitFailure code and a suggestion.
func NewFailure(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitFailure,
		Suggestion: suggestion,
	}
}

// NewReported creates an ExitError for a failure whose diagnostics were
// already written to the user.
func NewReported(err error) *ExitError {
	return &ExitError{
		Err:      err,
		Code:     ExitFailure,
		Reported: true,
	}
}

// NewConfigError creates an ExitError with ExitFailure code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        fmt.Errorf("%w: %w", ErrInvalidConfig, err),
		Code:       ExitFailure,
		Suggestion: "Check extbuild.yaml and EXTBUILD_* environment variables",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code for err. A nil error maps to
// ExitSuccess; an error without an ExitError in its chain maps to ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

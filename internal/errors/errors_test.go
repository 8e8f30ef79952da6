package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrMissingTool, ExitFailure),
			want: "required tool not found",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(fmt.Errorf("checking tools: %w", ErrMissingTool), ExitFailure),
			want: "checking tools: required tool not found",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitFailure),
			want: "exit code 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	tests := []struct {
		name       string
		err        *ExitError
		wantTarget error
		wantIs     bool
	}{
		{
			name:       "unwrap to sentinel error",
			err:        NewExitError(ErrArtifactNotFound, ExitFailure),
			wantTarget: ErrArtifactNotFound,
			wantIs:     true,
		},
		{
			name:       "unwrap through wrapped error",
			err:        NewReported(fmt.Errorf("installing: %w", ErrInstallFailed)),
			wantTarget: ErrInstallFailed,
			wantIs:     true,
		},
		{
			name:       "no match for different sentinel",
			err:        NewExitError(ErrCommandFailed, ExitFailure),
			wantTarget: ErrMissingTool,
			wantIs:     false,
		},
		{
			name:       "nil underlying error",
			err:        NewExitError(nil, ExitFailure),
			wantTarget: ErrUnsupportedPlatform,
			wantIs:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.wantTarget); got != tt.wantIs {
				t.Errorf("errors.Is() = %v, want %v", got, tt.wantIs)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "plain error", err: errors.New("boom"), want: ExitFailure},
		{name: "exit error", err: NewExitError(ErrMissingTool, 3), want: 3},
		{name: "wrapped exit error", err: fmt.Errorf("run: %w", NewReported(ErrCommandFailed)), want: ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewConstructors(t *testing.T) {
	t.Run("NewFailure", func(t *testing.T) {
		err := errors.New("oops")
		e := NewFailure(err, "try this")
		if e.Code != ExitFailure {
			t.Errorf("Code = %d, want %d", e.Code, ExitFailure)
		}
		if e.Suggestion != "try this" {
			t.Errorf("Suggestion = %q, want 'try this'", e.Suggestion)
		}
		if e.Reported {
			t.Error("Reported = true, want false")
		}
	})

	t.Run("NewReported", func(t *testing.T) {
		e := NewReported(ErrInstallFailed)
		if !e.Reported {
			t.Error("Reported = false, want true")
		}
		if e.Code != ExitFailure {
			t.Errorf("Code = %d, want %d", e.Code, ExitFailure)
		}
	})

	t.Run("NewConfigError", func(t *testing.T) {
		e := NewConfigError(errors.New("bad key"))
		if !errors.Is(e, ErrInvalidConfig) {
			t.Error("NewConfigError should mark the error as ErrInvalidConfig")
		}
		if e.Suggestion == "" {
			t.Error("Suggestion should not be empty")
		}
	})
}

func TestExitCodeConstants(t *testing.T) {
	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitFailure != 1 {
		t.Errorf("ExitFailure = %d, want 1", ExitFailure)
	}
}

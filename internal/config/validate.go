package config

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Validation errors for configuration fields.
var (
	// ErrEmptyValue indicates a required field is empty.
	ErrEmptyValue = errors.New("must not be empty")

	// ErrInvalidExtensionName indicates the extension name is not a valid
	// module name.
	ErrInvalidExtensionName = errors.New("invalid extension name")

	// ErrOutOfRange indicates a numeric field is outside its allowed range.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

var extensionNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if !extensionNamePattern.MatchString(cfg.ExtensionName) {
		errs = append(errs, &FieldError{
			Field: "extension_name",
			Value: cfg.ExtensionName,
			Err:   ErrInvalidExtensionName,
		})
	}

	if strings.TrimSpace(cfg.PHPBinary) == "" {
		errs = append(errs, &FieldError{Field: "php_binary", Err: ErrEmptyValue})
	}
	if strings.TrimSpace(cfg.PHPConfigBinary) == "" {
		errs = append(errs, &FieldError{Field: "php_config_binary", Err: ErrEmptyValue})
	}

	if cfg.OutputTailLines < 1 {
		errs = append(errs, &FieldError{Field: "output_tail_lines", Value: strconv.Itoa(cfg.OutputTailLines), Err: ErrOutOfRange})
	}
	if cfg.ProgressLines < 0 {
		errs = append(errs, &FieldError{Field: "progress_lines", Value: strconv.Itoa(cfg.ProgressLines), Err: ErrOutOfRange})
	}

	// Empty paths are valid (they mean "use default")
	if cfg.PackageRoot != "" {
		if err := validatePath(cfg.PackageRoot); err != nil {
			errs = append(errs, &FieldError{Field: "package_root", Value: cfg.PackageRoot, Err: err})
		}
	}
	if cfg.ExtensionDir != "" {
		if err := validatePath(cfg.ExtensionDir); err != nil {
			errs = append(errs, &FieldError{Field: "extension_dir", Value: cfg.ExtensionDir, Err: err})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// FieldError represents an error for a specific config field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return e.Field + ": " + e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

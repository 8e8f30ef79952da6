// Package commands implements the CLI commands for extbuild.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/extbuild/cmd"
	"github.com/thoreinstein/extbuild/internal/config"
	exterrors "github.com/thoreinstein/extbuild/internal/errors"
	"github.com/thoreinstein/extbuild/internal/logging"
)

// debugEnv raises verbosity when -v is not given: "1"/"true" for debug,
// "2" for trace.
const debugEnv = "EXTBUILD_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// cfg is the loaded configuration; configLoadErr holds any error from
// loading it.
var (
	cfg           *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./extbuild.yaml, then the XDG config directory)")

	rootCmd.Version = cmd.Short()
	rootCmd.SetVersionTemplate("extbuild version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "extbuild",
	Short: "Build and install the valkey-glide PHP extension",
	Long: `extbuild builds the valkey-glide native PHP extension from source and
installs it where PHP can load it.

It detects the host platform, verifies the build toolchain, runs the
platform's build commands in order and copies the resulting module into
PHP's extension directory. When that directory is not writable it retries
with sudo on Linux and finally falls back to ~/.php/extensions.

Run it from the root of the extension source tree, or set package_root.`,
	Example: `  # Build and install from the current directory
  extbuild

  # Show what would run on this machine
  extbuild plan

  # Check the toolchain without building
  extbuild doctor`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	RunE: runBuild,
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return exterrors.NewFailure(errors.New("cannot use --quiet and --verbose together"), "pass only one of -q and -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case logging.FormatText:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	default:
		return exterrors.NewFailure(
			errors.Wrapf(exterrors.ErrInvalidConfig, "unknown log format %q", logFormat),
			"use --log-format text or --log-format json")
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return exterrors.NewFailure(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces a config load failure for every command except help
// and version.
func checkConfig(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}
	if configLoadErr != nil {
		return exterrors.NewConfigError(configLoadErr)
	}
	if path := config.FileUsed(); path != "" {
		logging.FromContext(cmd.Context()).Debug("loaded config", "path", path)
	}
	return nil
}

// loadedConfig returns the loaded config, or defaults when loading was
// skipped.
func loadedConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Report prints err unless it was already reported and returns the exit
// code for it.
func Report(w io.Writer, err error) int {
	if err == nil {
		return exterrors.ExitSuccess
	}

	var exitErr *exterrors.ExitError
	if !errors.As(err, &exitErr) || !exitErr.Reported {
		fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), err)
		if exitErr != nil && exitErr.Suggestion != "" {
			fmt.Fprintf(w, "  %s\n", exitErr.Suggestion)
		}
	}
	return exterrors.ExitCode(err)
}

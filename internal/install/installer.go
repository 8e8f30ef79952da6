package install

import (
	"context"
	"fmt"
	"strings"

	exterrors "github.com/thoreinstein/extbuild/internal/errors"
	"github.com/thoreinstein/extbuild/internal/logging"
	"github.com/thoreinstein/extbuild/internal/platform"
)

// Attempt records one failed strategy.
type Attempt struct {
	Strategy string
	Dir      string
	Err      error
}

// InstallFailure reports that every strategy failed.
type InstallFailure struct {
	Attempts []Attempt
}

// Error implements error.
func (e *InstallFailure) Error() string {
	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = fmt.Sprintf("%s: %v", a.Strategy, a.Err)
	}
	return "Failed to install extension (" + strings.Join(parts, "; ") + ")"
}

// Unwrap lets errors.Is match exterrors.ErrInstallFailed.
func (e *InstallFailure) Unwrap() error {
	return exterrors.ErrInstallFailed
}

// Config describes one installation.
type Config struct {
	Platform      platform.Platform
	PackageRoot   string
	ExtensionName string
	// ExtensionDir is PHP's extension directory; empty when unknown.
	ExtensionDir string
	// UserDir is the per-user fallback directory.
	UserDir string
	// ElevationCommand names the privilege wrapper, for example "sudo".
	ElevationCommand string
	// Elevator runs the wrapper. Nil uses a CommandElevator.
	Elevator Elevator
}

// Strategies returns the ordered strategy list for cfg.Platform.
func Strategies(cfg Config) []Strategy {
	strategies := []Strategy{&DirectCopy{ExtensionDir: cfg.ExtensionDir}}

	if cfg.Platform == platform.Linux && cfg.ElevationCommand != "" {
		elevator := cfg.Elevator
		if elevator == nil {
			elevator = &CommandElevator{Command: cfg.ElevationCommand}
		}
		strategies = append(strategies, &ElevatedCopy{
			ExtensionDir: cfg.ExtensionDir,
			Command:      cfg.ElevationCommand,
			Elevator:     elevator,
		})
	}

	return append(strategies, &UserFallback{UserDir: cfg.UserDir})
}

// Installer places the built artifact using an ordered strategy list.
type Installer struct {
	cfg        Config
	strategies []Strategy
}

// NewInstaller creates an Installer. When strategies is empty the default
// list for cfg.Platform is used.
func NewInstaller(cfg Config, strategies ...Strategy) *Installer {
	if len(strategies) == 0 {
		strategies = Strategies(cfg)
	}
	return &Installer{cfg: cfg, strategies: strategies}
}

// StrategyNames returns the configured strategy names in order.
func (i *Installer) StrategyNames() []string {
	names := make([]string, len(i.strategies))
	for idx, s := range i.strategies {
		names[idx] = s.Name()
	}
	return names
}

// Install locates the artifact and tries each strategy in order. The first
// success wins and later strategies are not attempted.
func (i *Installer) Install(ctx context.Context) (*Placement, error) {
	logger := logging.FromContext(ctx)

	artifact, err := Locate(i.cfg.Platform, i.cfg.PackageRoot, i.cfg.ExtensionName)
	if err != nil {
		return nil, err
	}
	logger.Debug("found artifact", "path", artifact)

	failure := &InstallFailure{}
	for _, s := range i.strategies {
		placement, err := s.Attempt(ctx, artifact)
		if err != nil {
			logger.Debug("install strategy failed", "strategy", s.Name(), "dir", s.Dir(), "error", err)
			failure.Attempts = append(failure.Attempts, Attempt{Strategy: s.Name(), Dir: s.Dir(), Err: err})
			continue
		}

		i.report(ctx, placement)
		return placement, nil
	}

	return nil, failure
}

func (i *Installer) report(ctx context.Context, p *Placement) {
	logger := logging.FromContext(ctx)

	if p.NeedsConfig {
		logger.Info("Extension installed to user directory: " + p.Path)
		logger.Info(fmt.Sprintf(`Add 'extension_dir="%s"' to your php.ini`, p.Dir))
	} else {
		logger.Info("Extension installed to: " + p.Path)
	}

	if i.cfg.Platform == platform.MacOS && sipProtected(i.cfg.ExtensionDir) {
		logger.Warn("macOS System Integrity Protection may prevent installation to system directories.")
		logger.Warn("Consider using Homebrew PHP or installing to user directory.")
	}
}

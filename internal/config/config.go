package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/thoreinstein/extbuild/internal/paths"
)

// Config file naming and environment binding.
const (
	FileName  = "extbuild"
	EnvPrefix = "EXTBUILD"

	// ConfigDirEnv overrides the XDG config directory search path.
	ConfigDirEnv = "EXTBUILD_CONFIG_DIR"
)

// Default values.
const (
	DefaultExtensionName    = "valkey-glide"
	DefaultPHPBinary        = "php"
	DefaultPHPConfigBinary  = "php-config"
	DefaultElevationCommand = "sudo"
	DefaultOutputTailLines  = 20
	DefaultProgressLines    = 3
)

// Config is the extbuild configuration.
type Config struct {
	// ExtensionName is the PHP extension being built.
	ExtensionName string `mapstructure:"extension_name" yaml:"extension_name" json:"extension_name"`

	// PackageRoot is the extension source tree. Empty means the working
	// directory.
	PackageRoot string `mapstructure:"package_root" yaml:"package_root" json:"package_root"`

	PHPBinary       string `mapstructure:"php_binary" yaml:"php_binary" json:"php_binary"`
	PHPConfigBinary string `mapstructure:"php_config_binary" yaml:"php_config_binary" json:"php_config_binary"`

	// ElevationCommand wraps the Linux elevated copy. Empty disables it.
	ElevationCommand string `mapstructure:"elevation_command" yaml:"elevation_command" json:"elevation_command"`

	// ExtensionDir is used when PHP cannot report its extension directory.
	ExtensionDir string `mapstructure:"extension_dir" yaml:"extension_dir" json:"extension_dir"`

	// OutputTailLines is how much output a failed command reports.
	OutputTailLines int `mapstructure:"output_tail_lines" yaml:"output_tail_lines" json:"output_tail_lines"`

	// ProgressLines is how many trailing lines a successful command echoes.
	ProgressLines int `mapstructure:"progress_lines" yaml:"progress_lines" json:"progress_lines"`
}

// Init resets Viper and registers search paths, environment binding and
// defaults. Call it once at startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName(FileName)
	viper.SetConfigType("yaml")

	// Search paths, in order of precedence
	viper.AddConfigPath(".")
	viper.AddConfigPath(configDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("extension_name", DefaultExtensionName)
	viper.SetDefault("package_root", "")
	viper.SetDefault("php_binary", DefaultPHPBinary)
	viper.SetDefault("php_config_binary", DefaultPHPConfigBinary)
	viper.SetDefault("elevation_command", DefaultElevationCommand)
	viper.SetDefault("extension_dir", "")
	viper.SetDefault("output_tail_lines", DefaultOutputTailLines)
	viper.SetDefault("progress_lines", DefaultProgressLines)
}

func configDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return paths.ConfigDir()
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		ExtensionName:    DefaultExtensionName,
		PHPBinary:        DefaultPHPBinary,
		PHPConfigBinary:  DefaultPHPConfigBinary,
		ElevationCommand: DefaultElevationCommand,
		OutputTailLines:  DefaultOutputTailLines,
		ProgressLines:    DefaultProgressLines,
	}
}

// Load reads and validates the configuration. When path is empty the search
// paths are used and a missing file is not an error.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit search found nothing; defaults apply.
		case errors.As(err, &notFound), os.IsNotExist(errors.UnwrapAll(err)):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// FileUsed returns the config file Viper loaded, or "" when defaults and
// environment alone were used.
func FileUsed() string {
	return viper.ConfigFileUsed()
}

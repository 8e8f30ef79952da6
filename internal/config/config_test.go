package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// isolate points the config search away from the user's real files.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(ConfigDirEnv, dir)
	t.Chdir(t.TempDir())
	return dir
}

func TestInit(t *testing.T) {
	isolate(t)
	Init()

	if got := viper.GetString("extension_name"); got != DefaultExtensionName {
		t.Errorf("extension_name default = %q, want %q", got, DefaultExtensionName)
	}
	if got := viper.GetInt("output_tail_lines"); got != DefaultOutputTailLines {
		t.Errorf("output_tail_lines default = %d, want %d", got, DefaultOutputTailLines)
	}
	if got := viper.GetString("elevation_command"); got != "sudo" {
		t.Errorf("elevation_command default = %q, want sudo", got)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolate(t)
	Init()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
	if FileUsed() != "" {
		t.Errorf("FileUsed() = %q, want empty", FileUsed())
	}
}

func TestLoad_WithConfigFile(t *testing.T) {
	isolate(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "extbuild.yaml")
	content := []byte("php_binary: /opt/php/bin/php\noutput_tail_lines: 40\nelevation_command: doas\n")
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		t.Fatal(err)
	}

	Init()

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.PHPBinary != "/opt/php/bin/php" {
		t.Errorf("PHPBinary = %q, want /opt/php/bin/php", cfg.PHPBinary)
	}
	if cfg.OutputTailLines != 40 {
		t.Errorf("OutputTailLines = %d, want 40", cfg.OutputTailLines)
	}
	if cfg.ElevationCommand != "doas" {
		t.Errorf("ElevationCommand = %q, want doas", cfg.ElevationCommand)
	}
	if cfg.ExtensionName != DefaultExtensionName {
		t.Errorf("ExtensionName = %q, want default", cfg.ExtensionName)
	}
}

func TestLoad_SearchesConfigDir(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "extbuild.yaml"), []byte("progress_lines: 0\n"), 0600); err != nil {
		t.Fatal(err)
	}

	Init()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ProgressLines != 0 {
		t.Errorf("ProgressLines = %d, want 0", cfg.ProgressLines)
	}
	if FileUsed() != filepath.Join(dir, "extbuild.yaml") {
		t.Errorf("FileUsed() = %q", FileUsed())
	}
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	isolate(t)
	t.Setenv("EXTBUILD_EXTENSION_DIR", "/usr/local/lib/php/extensions")
	t.Setenv("EXTBUILD_ELEVATION_COMMAND", "")

	Init()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.ExtensionDir != "/usr/local/lib/php/extensions" {
		t.Errorf("ExtensionDir = %q", cfg.ExtensionDir)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	isolate(t)
	Init()

	_, err := Load("/non/existent/path/extbuild.yaml")
	if err == nil {
		t.Error("Load() with non-existent explicit path should error")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
		field   string
	}{
		{
			name:    "bad extension name",
			content: "extension_name: \"valkey glide\"\n",
			wantErr: ErrInvalidExtensionName,
			field:   "extension_name",
		},
		{
			name:    "empty php binary",
			content: "php_binary: \"\"\n",
			wantErr: ErrEmptyValue,
			field:   "php_binary",
		},
		{
			name:    "zero tail lines",
			content: "output_tail_lines: 0\n",
			wantErr: ErrOutOfRange,
			field:   "output_tail_lines",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			Init()

			configPath := filepath.Join(t.TempDir(), "extbuild.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			_, err := Load(configPath)
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if !strings.HasPrefix(err.Error(), "validating config: "+tt.field) {
				t.Errorf("Load() error = %q, want prefix %q", err, "validating config: "+tt.field)
			}
		})
	}
}

func TestInit_ClearsPreviousState(t *testing.T) {
	dirB := isolate(t)

	fileA := filepath.Join(t.TempDir(), "a.yaml")
	if err := os.WriteFile(fileA, []byte("php_binary: php-a\n"), 0600); err != nil {
		t.Fatal(err)
	}

	Init()
	if _, err := Load(fileA); err != nil {
		t.Fatalf("first Load failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dirB, "extbuild.yaml"), []byte("php_binary: php-b\n"), 0600); err != nil {
		t.Fatal(err)
	}

	// Re-initialising must forget the explicit file from the first load.
	Init()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if cfg.PHPBinary != "php-b" {
		t.Errorf("PHPBinary = %q, want php-b (still using %s?)", cfg.PHPBinary, viper.ConfigFileUsed())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"underscored name", func(c *Config) { c.ExtensionName = "valkey_glide" }, nil},
		{"empty name", func(c *Config) { c.ExtensionName = "" }, ErrInvalidExtensionName},
		{"path in name", func(c *Config) { c.ExtensionName = "../x" }, ErrInvalidExtensionName},
		{"empty php-config", func(c *Config) { c.PHPConfigBinary = " " }, ErrEmptyValue},
		{"negative progress", func(c *Config) { c.ProgressLines = -1 }, ErrOutOfRange},
		{"null byte root", func(c *Config) { c.PackageRoot = "/src\x00" }, ErrInvalidPath},
		{"dot extension dir", func(c *Config) { c.ExtensionDir = "./" }, ErrInvalidPath},
		{"empty elevation", func(c *Config) { c.ElevationCommand = "" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := Validate(cfg)
			if tt.wantErr == nil {
				if len(errs) != 0 {
					t.Errorf("Validate() = %v, want no errors", errs)
				}
				return
			}
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if !errors.Is(errs[0], tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", errs[0], tt.wantErr)
			}
		})
	}
}

func TestValidate_Nil(t *testing.T) {
	if errs := Validate(nil); len(errs) != 1 {
		t.Errorf("Validate(nil) = %v, want one error", errs)
	}
}

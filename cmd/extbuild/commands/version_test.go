package commands

import (
	"runtime"
	"strings"
	"testing"

	"github.com/thoreinstein/extbuild/cmd"
)

func TestVersionCommand_OutputFormat(t *testing.T) {
	output, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	tests := []struct {
		name     string
		contains string
	}{
		{"version header", "extbuild version " + cmd.Version},
		{"commit field", "commit:   " + cmd.Commit},
		{"built field", "built:    " + cmd.Date},
		{"go field", "go:       " + runtime.Version()},
		{"platform field", "platform: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(output, tt.contains) {
				t.Errorf("version output missing %q\nGot:\n%s", tt.contains, output)
			}
		})
	}
}

func TestVersionCommand_IgnoresBadConfig(t *testing.T) {
	isolateConfig(t)
	if err := writeFile("extbuild.yaml", "extension_name: \"\"\n"); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("version should not fail on a bad config: %v", err)
	}
}

func TestVersionCommand_CommandMetadata(t *testing.T) {
	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}
	if versionCmd.Short == "" {
		t.Error("versionCmd.Short should not be empty")
	}
}

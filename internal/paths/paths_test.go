package paths

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/extbuild/internal/platform"
)

func fakeEnv(vars map[string]string) Env {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestHomeVar(t *testing.T) {
	tests := []struct {
		p    platform.Platform
		want string
	}{
		{platform.MacOS, "HOME"},
		{platform.Linux, "HOME"},
		{platform.Windows, "USERPROFILE"},
	}
	for _, tt := range tests {
		if got := HomeVar(tt.p); got != tt.want {
			t.Errorf("HomeVar(%s) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestUserExtensionDir(t *testing.T) {
	tests := []struct {
		name string
		p    platform.Platform
		env  map[string]string
		want string
	}{
		{
			name: "linux home",
			p:    platform.Linux,
			env:  map[string]string{"HOME": "/home/dev"},
			want: filepath.Join("/home/dev", ".php", "extensions"),
		},
		{
			name: "linux unset home",
			p:    platform.Linux,
			env:  map[string]string{},
			want: filepath.Join("/tmp", ".php", "extensions"),
		},
		{
			name: "linux empty home",
			p:    platform.Linux,
			env:  map[string]string{"HOME": ""},
			want: filepath.Join("/tmp", ".php", "extensions"),
		},
		{
			name: "windows userprofile",
			p:    platform.Windows,
			env:  map[string]string{"USERPROFILE": `C:\Users\dev`, "HOME": "/ignored"},
			want: `C:\Users\dev\.php\extensions`,
		},
		{
			name: "windows default",
			p:    platform.Windows,
			env:  map[string]string{},
			want: `C:\temp\.php\extensions`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserExtensionDir(tt.p, fakeEnv(tt.env)); got != tt.want {
				t.Errorf("UserExtensionDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJoin_Windows(t *testing.T) {
	got := Join(platform.Windows, `C:\php\ext\`, "valkey-glide.dll")
	if got != `C:\php\ext\valkey-glide.dll` {
		t.Errorf("Join() = %q", got)
	}
}

func TestEnsureDir(t *testing.T) {
	root := t.TempDir()

	t.Run("creates nested", func(t *testing.T) {
		dir := filepath.Join(root, "a", "b")
		if err := EnsureDir(dir, UserExtensionDirPerm); err != nil {
			t.Fatalf("EnsureDir() error = %v", err)
		}
		if !DirExists(dir) {
			t.Error("directory was not created")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		if err := EnsureDir(root, UserExtensionDirPerm); err != nil {
			t.Errorf("EnsureDir() on existing dir error = %v", err)
		}
	})

	t.Run("file in the way", func(t *testing.T) {
		file := filepath.Join(root, "file")
		if err := os.WriteFile(file, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		err := EnsureDir(file, UserExtensionDirPerm)
		if !errors.Is(err, ErrNotDirectory) {
			t.Errorf("EnsureDir() error = %v, want ErrNotDirectory", err)
		}
	})
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.so")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(file) {
		t.Error("FileExists(file) = false")
	}
	if FileExists(dir) {
		t.Error("FileExists(dir) = true")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true")
	}
	if FileExists("") {
		t.Error(`FileExists("") = true`)
	}
}

func TestConfigDir(t *testing.T) {
	if got := ConfigDir(); !strings.HasSuffix(got, AppName) {
		t.Errorf("ConfigDir() = %q, want suffix %q", got, AppName)
	}
}

func TestResolvePackageRoot(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	got, err := ResolvePackageRoot("")
	if err != nil || got != wd {
		t.Errorf(`ResolvePackageRoot("") = %q, %v; want %q`, got, err, wd)
	}

	dir := t.TempDir()
	got, err = ResolvePackageRoot(dir)
	if err != nil || got != dir {
		t.Errorf("ResolvePackageRoot(%q) = %q, %v", dir, got, err)
	}

	if _, err := ResolvePackageRoot(filepath.Join(dir, "missing")); !errors.Is(err, ErrNotDirectory) {
		t.Errorf("ResolvePackageRoot(missing) error = %v, want ErrNotDirectory", err)
	}
}

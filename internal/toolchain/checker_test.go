package toolchain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	exterrors "github.com/thoreinstein/extbuild/internal/errors"
	"github.com/thoreinstein/extbuild/internal/logging"
	"github.com/thoreinstein/extbuild/internal/platform"
	"github.com/thoreinstein/extbuild/internal/toolchain"
	"github.com/thoreinstein/extbuild/internal/toolchain/mocks"
)

var _ toolchain.Locator = (*mocks.Locator)(nil)

func names(reqs []toolchain.Requirement) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.Name
	}
	return out
}

func TestRequirements(t *testing.T) {
	tests := []struct {
		p    platform.Platform
		want []string
	}{
		{platform.MacOS, []string{"python3", "cargo", "phpize", "php-config", "make", "clang"}},
		{platform.Linux, []string{"python3", "cargo", "phpize", "php-config", "make", "gcc"}},
		{platform.Windows, []string{"phpize", "nmake"}},
		{platform.Unknown, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, names(toolchain.Requirements(tt.p)))
		})
	}
}

func TestRequirements_ReturnsCopy(t *testing.T) {
	reqs := toolchain.Requirements(platform.Linux)
	reqs[0].Name = "mutated"
	assert.Equal(t, "python3", toolchain.Requirements(platform.Linux)[0].Name)
}

func TestVerify_AllPresent(t *testing.T) {
	ctx := logging.NewContext(t.Context(), logging.ForTest(t))
	loc := mocks.NewLocator(t)
	loc.Present(names(toolchain.Requirements(platform.Linux))...)

	require.NoError(t, toolchain.NewChecker(loc).Verify(ctx, platform.Linux))
}

func TestVerify_StopsAtFirstMissing(t *testing.T) {
	ctx := t.Context()
	loc := mocks.NewLocator(t)
	loc.On("Locate", mock.Anything, "python3").Return("/usr/bin/python3", nil).Once()
	loc.On("Locate", mock.Anything, "cargo").Return("", toolchain.ErrNotFound).Once()

	err := toolchain.NewChecker(loc).Verify(ctx, platform.Linux)

	var missing *toolchain.MissingToolError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "cargo", missing.Name)
	assert.Equal(t, "Cargo (Rust build tools)", missing.Purpose)
	assert.True(t, errors.Is(err, exterrors.ErrMissingTool))
	assert.Equal(t, "Required tool 'cargo' not found. Cargo (Rust build tools)", err.Error())

	// Later requirements are never looked up.
	loc.AssertNotCalled(t, "Locate", mock.Anything, "phpize")
	loc.AssertNotCalled(t, "Locate", mock.Anything, "gcc")
}

func TestVerify_WindowsMissingNmake(t *testing.T) {
	loc := mocks.NewLocator(t)
	loc.Present("phpize").Absent(toolchain.ErrNotFound, "nmake")

	err := toolchain.NewChecker(loc).Verify(t.Context(), platform.Windows)

	var missing *toolchain.MissingToolError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "nmake", missing.Name)
	assert.Contains(t, missing.Purpose, "Visual Studio")
}

func TestVerify_UnsupportedPlatform(t *testing.T) {
	loc := mocks.NewLocator(t)
	err := toolchain.NewChecker(loc).Verify(t.Context(), platform.Unknown)
	assert.True(t, errors.Is(err, exterrors.ErrUnsupportedPlatform))
}

func TestAdvisories(t *testing.T) {
	tests := []struct {
		name       string
		p          platform.Platform
		xcode      bool
		phpConfig  string
		wantCount  int
		wantWarn   bool
		wantSubstr string
	}{
		{name: "linux has none", p: platform.Linux, wantCount: 0},
		{name: "windows has none", p: platform.Windows, wantCount: 0},
		{name: "macos no xcode", p: platform.MacOS, xcode: false, phpConfig: "/usr/bin/php-config", wantCount: 1, wantWarn: true, wantSubstr: "Xcode"},
		{name: "macos homebrew", p: platform.MacOS, xcode: true, phpConfig: "/opt/homebrew/bin/php-config", wantCount: 1, wantSubstr: "Homebrew"},
		{name: "macos clean", p: platform.MacOS, xcode: true, phpConfig: "/usr/bin/php-config", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := mocks.NewLocator(t)
			if tt.p == platform.MacOS {
				loc.On("Locate", mock.Anything, "php-config").Return(tt.phpConfig, nil)
			}
			c := toolchain.NewChecker(loc, toolchain.WithDirExists(func(string) bool { return tt.xcode }))

			got := c.Advisories(t.Context(), tt.p)
			require.Len(t, got, tt.wantCount)
			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantWarn, got[0].Warning)
				assert.Contains(t, got[0].Message, tt.wantSubstr)
			}
		})
	}
}

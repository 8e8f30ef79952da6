package platform

import (
	"errors"
	"runtime"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		family string
		osName string
		want   Platform
	}{
		{name: "darwin", family: "Darwin", osName: "Darwin", want: MacOS},
		{name: "darwin lower", family: "darwin", osName: "", want: MacOS},
		{name: "linux", family: "Linux", osName: "Linux", want: Linux},
		{name: "linux upper", family: "LINUX", osName: "", want: Linux},
		{name: "windows", family: "Windows", osName: "WINNT", want: Windows},
		{name: "freebsd by os name", family: "unix", osName: "FreeBSD", want: Linux},
		{name: "openbsd go name", family: "openbsd", osName: "openbsd", want: Linux},
		{name: "netbsd mixed case", family: "BSD-ish", osName: "NetBSD", want: Linux},
		{name: "solaris", family: "Solaris", osName: "SunOS", want: Unknown},
		{name: "empty", family: "", osName: "", want: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.family, tt.osName); got != tt.want {
				t.Errorf("Detect(%q, %q) = %q, want %q", tt.family, tt.osName, got, tt.want)
			}
		})
	}
}

func TestCurrent(t *testing.T) {
	got := Current()
	if got != Detect(runtime.GOOS, runtime.GOOS) {
		t.Errorf("Current() = %q, inconsistent with Detect(runtime.GOOS)", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Platform
		wantErr bool
	}{
		{input: "macos", want: MacOS},
		{input: "Darwin", want: MacOS},
		{input: " linux ", want: Linux},
		{input: "WINDOWS", want: Windows},
		{input: "unknown", want: Unknown, wantErr: true},
		{input: "", want: Unknown, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidPlatformName) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidPlatformName", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPlatformPredicates(t *testing.T) {
	for _, p := range All() {
		if !p.Supported() {
			t.Errorf("%s.Supported() = false", p)
		}
	}
	if Unknown.Supported() {
		t.Error("Unknown.Supported() = true")
	}
	if !MacOS.POSIX() || !Linux.POSIX() || Windows.POSIX() {
		t.Error("POSIX() classification is wrong")
	}
	if Windows.DisplayName() != "Windows" {
		t.Errorf("Windows.DisplayName() = %q", Windows.DisplayName())
	}
}

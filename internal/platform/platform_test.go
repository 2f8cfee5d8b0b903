package platform

import (
	"runtime"
	"testing"
)

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		os     string
		vendor string
		want   Extension
	}{
		{"windows", "pc", ExtDLL},
		{"windows", "apple", ExtDLL},
		{"macos", "apple", ExtDylib},
		{"ios", "apple", ExtDylib},
		{"linux", "unknown", ExtSO},
		{"freebsd", "", ExtSO},
		{"", "", ExtSO},
	}

	for _, tt := range tests {
		if got := ExtensionFor(tt.os, tt.vendor); got != tt.want {
			t.Errorf("ExtensionFor(%q, %q) = %q, want %q", tt.os, tt.vendor, got, tt.want)
		}
	}
}

func TestSystemExtension(t *testing.T) {
	tests := []struct {
		goos string
		want Extension
	}{
		{"linux", ExtSO},
		{"darwin", ExtDylib},
		{"windows", ExtDLL},
		{"openbsd", ExtSO},
	}

	for _, tt := range tests {
		if got := (System{GOOS: tt.goos}).Extension(); got != tt.want {
			t.Errorf("System{%q}.Extension() = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestSupportsSymlink(t *testing.T) {
	if !(System{GOOS: "linux"}).SupportsSymlink() {
		t.Error("linux should support symlinks")
	}
	if !(System{GOOS: "darwin"}).SupportsSymlink() {
		t.Error("darwin should support symlinks")
	}
	if (System{GOOS: "windows"}).SupportsSymlink() {
		t.Error("windows staging should not use symlinks")
	}
}

func TestStagingSupported(t *testing.T) {
	tests := []struct {
		goos string
		want bool
	}{
		{"linux", true},
		{"darwin", true},
		{"windows", true},
		{"js", false},
		{"wasip1", false},
		{"plan9", false},
	}

	for _, tt := range tests {
		if got := (System{GOOS: tt.goos}).StagingSupported(); got != tt.want {
			t.Errorf("System{%q}.StagingSupported() = %v, want %v", tt.goos, got, tt.want)
		}
	}
}

func TestHost(t *testing.T) {
	if got := Host().GOOS; got != runtime.GOOS {
		t.Errorf("Host().GOOS = %q, want %q", got, runtime.GOOS)
	}
}

func TestExtensionDotted(t *testing.T) {
	if got := ExtDylib.Dotted(); got != ".dylib" {
		t.Errorf("Dotted() = %q, want %q", got, ".dylib")
	}
}

package platform

import (
	"runtime"
)

// Extension is a shared library file extension, without the leading dot.
type Extension string

// The closed set of shared library extensions.
const (
	ExtSO    Extension = "so"
	ExtDylib Extension = "dylib"
	ExtDLL   Extension = "dll"
)

// String returns the extension without a leading dot.
func (e Extension) String() string { return string(e) }

// Dotted returns the extension as filepath.Ext reports it (".so").
func (e Extension) Dotted() string { return "." + string(e) }

// Capabilities describes what the staging host can do.
type Capabilities interface {
	// SupportsSymlink reports whether staging should try a symlink before copying.
	SupportsSymlink() bool
	// ExtensionFor maps a target OS and vendor to a library extension.
	ExtensionFor(os, vendor string) Extension
}

// ExtensionFor applies the fixed rule: Windows → dll, Apple vendor → dylib,
// anything else → so.
func ExtensionFor(os, vendor string) Extension {
	switch {
	case os == "windows":
		return ExtDLL
	case vendor == "apple":
		return ExtDylib
	default:
		return ExtSO
	}
}

// unixOS lists the GOOS values that have native symlinks.
var unixOS = map[string]bool{
	"aix":       true,
	"android":   true,
	"darwin":    true,
	"dragonfly": true,
	"freebsd":   true,
	"hurd":      true,
	"illumos":   true,
	"ios":       true,
	"linux":     true,
	"netbsd":    true,
	"openbsd":   true,
	"solaris":   true,
}

// System is the Capabilities of a concrete GOOS.
type System struct {
	GOOS string
}

// Host returns the capabilities of the running system.
func Host() System {
	return System{GOOS: runtime.GOOS}
}

// SupportsSymlink is true on Unix hosts only. Windows symlinks need developer
// mode and are not used for staging.
func (s System) SupportsSymlink() bool {
	return unixOS[s.GOOS]
}

// ExtensionFor implements Capabilities.
func (s System) ExtensionFor(os, vendor string) Extension {
	return ExtensionFor(os, vendor)
}

// Vendor returns the target vendor of the system, "apple" for Darwin and iOS
// and "unknown" otherwise.
func (s System) Vendor() string {
	if s.GOOS == "darwin" || s.GOOS == "ios" {
		return "apple"
	}
	return "unknown"
}

// Extension returns the library extension for the system itself.
func (s System) Extension() Extension {
	return ExtensionFor(s.GOOS, s.Vendor())
}

// StagingSupported reports whether the system is Unix or Windows. Staging is
// a no-op elsewhere.
func (s System) StagingSupported() bool {
	return unixOS[s.GOOS] || s.GOOS == "windows"
}

// IsWindows returns true if the system is Windows.
func (s System) IsWindows() bool {
	return s.GOOS == "windows"
}

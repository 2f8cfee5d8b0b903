package toolchain

import "strings"

// Triple is a parsed target triple such as x86_64-unknown-linux-gnu.
type Triple struct {
	Raw    string
	Arch   string
	Vendor string
	OS     string
	Env    string
}

// knownVendors are the vendor components that appear in Rust target names.
// Triples like x86_64-linux-android omit the vendor entirely.
var knownVendors = map[string]bool{
	"unknown":   true,
	"pc":        true,
	"apple":     true,
	"nvidia":    true,
	"uwp":       true,
	"win7":      true,
	"wrs":       true,
	"sun":       true,
	"fortanix":  true,
	"espressif": true,
	"kmc":       true,
	"nintendo":  true,
	"sony":      true,
	"unikraft":  true,
	"openwrt":   true,
	"ibm":       true,
	"risc0":     true,
}

// ParseTriple splits a target triple. Darwin is reported as "macos" to match
// the compiler's target_os cfg.
func ParseTriple(s string) Triple {
	parts := strings.Split(s, "-")
	t := Triple{Raw: s, Arch: parts[0], Vendor: "unknown"}
	rest := parts[1:]

	if len(rest) > 0 && knownVendors[rest[0]] {
		t.Vendor = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 {
		t.OS = rest[0]
		if t.OS == "darwin" {
			t.OS = "macos"
		}
	}
	if len(rest) > 1 {
		t.Env = strings.Join(rest[1:], "-")
	}
	return t
}

package toolchain

import (
	"strings"
	"unicode/utf8"

	"github.com/rtstage/rtstage/internal/platform"
)

// FlagSeparator splits CARGO_ENCODED_RUSTFLAGS into arguments.
const FlagSeparator = "\x1f"

// SplitEncodedFlags splits an encoded flag string on FlagSeparator, dropping
// empty segments.
func SplitEncodedFlags(encoded string) []string {
	var flags []string
	for _, f := range strings.Split(encoded, FlagSeparator) {
		if f != "" {
			flags = append(flags, f)
		}
	}
	return flags
}

// ParseQueryOutput parses the stdout of
// `rustc --print=target-libdir --print=cfg`. The first line is the library
// directory; the remaining cfg lines select the extension.
func ParseQueryOutput(out []byte) (Location, error) {
	if !utf8.Valid(out) {
		return Location{}, &QueryUTF8Error{Offset: invalidUTF8Offset(out)}
	}

	lines := splitLines(string(out))
	if len(lines) == 0 || lines[0] == "" {
		return Location{}, ErrNoLibDir
	}

	return Location{
		Dir:      lines[0],
		Ext:      extensionFromCfg(lines[1:]),
		Strategy: StrategyQuery,
	}, nil
}

// extensionFromCfg scans cfg lines until the first predicate that decides
// the extension. An explicit Linux target stops the scan with "so".
func extensionFromCfg(lines []string) platform.Extension {
	for _, line := range lines {
		key, value, ok := parseCfgLine(line)
		if !ok {
			continue
		}
		switch {
		case key == "target_os" && value == "linux":
			return platform.ExtSO
		case key == "target_vendor" && value == "apple":
			return platform.ExtensionFor("", value)
		case key == "target_os" && value == "windows":
			return platform.ExtensionFor(value, "")
		}
	}
	return platform.ExtSO
}

// parseCfgLine splits a `key="value"` predicate. Bare keys such as `unix`
// are reported with ok=false.
func parseCfgLine(line string) (key, value string, ok bool) {
	key, quoted, found := strings.Cut(line, "=")
	if !found || len(quoted) < 2 || quoted[0] != '"' || quoted[len(quoted)-1] != '"' {
		return "", "", false
	}
	return key, quoted[1 : len(quoted)-1], true
}

// splitLines splits on "\n", strips a trailing "\r" from each line and
// drops the empty element after a final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}

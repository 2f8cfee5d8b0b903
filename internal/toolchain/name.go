package toolchain

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Release channels of a rustup toolchain name.
const (
	ChannelStable  = "stable"
	ChannelBeta    = "beta"
	ChannelNightly = "nightly"
	ChannelVersion = "version"
	ChannelCustom  = "custom"
)

// Name is a parsed rustup toolchain name, e.g.
// nightly-2024-05-01-x86_64-unknown-linux-gnu or 1.79.0-aarch64-apple-darwin.
type Name struct {
	Raw     string
	Channel string
	// Version is set for version-pinned toolchains.
	Version *semver.Version
	// Date is set for dated nightly and beta toolchains (YYYY-MM-DD).
	Date string
	Host Triple
}

var datePrefix = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})(?:-|$)`)

// ParseName parses a rustup toolchain name. Names that do not follow the
// channel[-date][-host] layout are reported as ChannelCustom.
func ParseName(s string) Name {
	n := Name{Raw: s, Channel: ChannelCustom}

	channel, rest, _ := strings.Cut(s, "-")
	switch channel {
	case ChannelStable, ChannelBeta, ChannelNightly:
		n.Channel = channel
	default:
		v, err := semver.NewVersion(channel)
		if err != nil {
			return n
		}
		n.Channel = ChannelVersion
		n.Version = v
	}

	if n.Channel != ChannelVersion {
		if m := datePrefix.FindStringSubmatch(rest); m != nil {
			n.Date = m[1]
			rest = strings.TrimPrefix(rest[len(m[1]):], "-")
		}
	}
	if rest != "" {
		n.Host = ParseTriple(rest)
	}
	return n
}

// String formats the name for display.
func (n Name) String() string {
	var b strings.Builder
	b.WriteString(n.Channel)
	if n.Version != nil {
		b.WriteString(" " + n.Version.String())
	}
	if n.Date != "" {
		b.WriteString(" " + n.Date)
	}
	if n.Host.Raw != "" {
		b.WriteString(" (" + n.Host.Raw + ")")
	}
	return b.String()
}

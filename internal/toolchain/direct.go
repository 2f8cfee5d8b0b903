package toolchain

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rtstage/rtstage/internal/config"
	"github.com/rtstage/rtstage/internal/platform"
)

// DirectLocator finds the libraries under
// RUSTUP_HOME/toolchains/RUSTUP_TOOLCHAIN, probing lib/ and bin/.
type DirectLocator struct {
	// System is the host; zero value means platform.Host().
	System platform.System
	Log    zerolog.Logger
}

// Reads implements Locator.
func (d *DirectLocator) Reads() []string {
	return []string{config.EnvRustupHome, config.EnvRustupToolchain, config.EnvTarget}
}

// Locate returns the first existing library directory of the toolchain.
// Windows keeps its DLLs in bin/, so bin/ is probed first there. The
// extension follows TARGET when set and the host otherwise.
func (d *DirectLocator) Locate(_ context.Context, env config.Context) (Location, error) {
	home, err := env.Require(config.EnvRustupHome)
	if err != nil {
		return Location{}, err
	}
	toolchain, err := env.Require(config.EnvRustupToolchain)
	if err != nil {
		return Location{}, err
	}

	sys := d.System
	if sys.GOOS == "" {
		sys = platform.Host()
	}
	ext := sys.Extension()
	if target, ok := env.Lookup(config.EnvTarget); ok {
		t := ParseTriple(target)
		ext = sys.ExtensionFor(t.OS, t.Vendor)
	}

	name := ParseName(toolchain)
	d.Log.Debug().Str("toolchain", name.String()).Str("ext", ext.String()).Msg("resolving toolchain directory")

	root := filepath.Join(home, "toolchains", toolchain)
	subdirs := []string{"lib", "bin"}
	if ext == platform.ExtDLL {
		subdirs = []string{"bin", "lib"}
	}

	var tried []string
	for _, sub := range subdirs {
		dir := filepath.Join(root, sub)
		tried = append(tried, dir)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return Location{Dir: dir, Ext: ext, Strategy: StrategyDirect}, nil
		}
		d.Log.Debug().Str("dir", dir).Msg("not a directory")
	}
	return Location{}, &NoToolchainDirError{Paths: tried}
}

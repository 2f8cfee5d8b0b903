package stage

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rtstage/rtstage/internal/config"
	"github.com/rtstage/rtstage/internal/platform"
	"github.com/rtstage/rtstage/internal/toolchain"
)

// Result describes a completed run.
type Result struct {
	// Skipped is set when the host is neither Unix nor Windows.
	Skipped  bool
	Dest     string
	Location toolchain.Location
	Staged   []Staged
}

// Pipeline runs destination resolution, location and staging in order.
type Pipeline struct {
	Locator toolchain.Locator
	Stager  *Stager
	// Host gates the run; zero value means platform.Host().
	Host platform.System
	Log  zerolog.Logger
}

// Run stages the runtime library for env. Any error aborts the run.
func (p *Pipeline) Run(ctx context.Context, env config.Context) (*Result, error) {
	host := p.Host
	if host.GOOS == "" {
		host = platform.Host()
	}
	if !host.StagingSupported() {
		p.Log.Debug().Str("os", host.GOOS).Msg("staging not supported on this host, skipping")
		return &Result{Skipped: true}, nil
	}

	outDir, err := env.Require(config.EnvOutDir)
	if err != nil {
		return nil, err
	}
	dest, err := ResolveDestination(outDir)
	if err != nil {
		return nil, err
	}
	p.Log.Debug().Str("dest", dest).Msg("resolved destination")

	loc, err := p.Locator.Locate(ctx, env)
	if err != nil {
		return nil, err
	}
	p.Log.Debug().Str("dir", loc.Dir).Str("ext", loc.Ext.String()).Str("strategy", loc.Strategy).Msg("resolved library directory")

	staged, err := p.Stager.StageDir(loc.Dir, loc.Ext, dest)
	if err != nil {
		return nil, err
	}
	return &Result{Dest: dest, Location: loc, Staged: staged}, nil
}

// RerunDirectives returns the cargo directives that make the build script
// rerun when any variable the run depends on changes.
func RerunDirectives(loc toolchain.Locator) []string {
	reads := append([]string{config.EnvOutDir}, loc.Reads()...)
	directives := make([]string, 0, len(reads))
	for _, key := range reads {
		directives = append(directives, "cargo::rerun-if-env-changed="+key)
	}
	return directives
}

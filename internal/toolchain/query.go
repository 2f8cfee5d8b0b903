package toolchain

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
	"github.com/rtstage/rtstage/internal/config"
)

// QueryLocator asks the compiler for its target library directory and cfg.
type QueryLocator struct {
	// Stderr receives the compiler's stderr; defaults to os.Stderr.
	Stderr io.Writer
	Log    zerolog.Logger
}

// Reads implements Locator.
func (q *QueryLocator) Reads() []string {
	return []string{config.EnvRustc, config.EnvTarget, config.EnvEncodedRustflags}
}

// Locate runs the compiler query for TARGET, forwarding CARGO_ENCODED_RUSTFLAGS.
func (q *QueryLocator) Locate(ctx context.Context, env config.Context) (Location, error) {
	rustc, err := env.Require(config.EnvRustc)
	if err != nil {
		return Location{}, err
	}
	target, err := env.Require(config.EnvTarget)
	if err != nil {
		return Location{}, err
	}

	var flags []string
	if encoded, ok := env.Lookup(config.EnvEncodedRustflags); ok {
		flags = SplitEncodedFlags(encoded)
	}

	stderr := q.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	q.Log.Debug().Str("rustc", rustc).Str("target", target).Strs("flags", flags).Msg("querying compiler")

	out, err := RunQuery(ctx, rustc, target, flags, stderr)
	if err != nil {
		return Location{}, err
	}

	loc, err := ParseQueryOutput(out)
	if err != nil {
		return Location{}, err
	}
	q.Log.Debug().Str("dir", loc.Dir).Str("ext", loc.Ext.String()).Msg("compiler query resolved")
	return loc, nil
}

// QueryArgs returns the compiler arguments for a library directory query.
func QueryArgs(target string, flags []string) []string {
	args := []string{"--print=target-libdir", "--print=cfg", "--target", target}
	return append(args, flags...)
}

// RunQuery runs the compiler with QueryArgs and returns its stdout. Stdin is
// empty and stderr goes to the given writer.
func RunQuery(ctx context.Context, rustc, target string, flags []string, stderr io.Writer) ([]byte, error) {
	cmd := exec.CommandContext(ctx, rustc, QueryArgs(target, flags)...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &QueryExitError{
				Compiler: rustc,
				Code:     exitErr.ExitCode(),
				Status:   exitErr.ProcessState.String(),
			}
		}
		return nil, &QueryRunError{Compiler: rustc, Err: err}
	}
	return stdout.Bytes(), nil
}

package toolchain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoLibDir is returned when the compiler query prints no library directory.
var ErrNoLibDir = errors.New("query for `target-libdir` did not return any output")

// QueryRunError reports that the compiler could not be started.
type QueryRunError struct {
	Compiler string
	Err      error
}

func (e *QueryRunError) Error() string {
	return fmt.Sprintf("could not run `target-libdir` and `cfg` query with %s: %v", e.Compiler, e.Err)
}

func (e *QueryRunError) Unwrap() error { return e.Err }

// QueryExitError reports a compiler query that exited unsuccessfully.
type QueryExitError struct {
	Compiler string
	// Code is the exit code, or -1 when the compiler was killed by a signal.
	Code int
	// Status is the process state as the OS reports it, e.g. "exit status 1"
	// or "signal: killed".
	Status string
}

func (e *QueryExitError) Error() string {
	return fmt.Sprintf("query for `target-libdir` and `cfg` with %s returned %s", e.Compiler, e.Status)
}

// QueryUTF8Error reports compiler output that is not valid UTF-8.
type QueryUTF8Error struct {
	Offset int
}

func (e *QueryUTF8Error) Error() string {
	return fmt.Sprintf("query for `target-libdir` and `cfg` returned non-UTF-8 data at byte %d", e.Offset)
}

// NoToolchainDirError reports that none of the toolchain library
// directories exist.
type NoToolchainDirError struct {
	Paths []string
}

func (e *NoToolchainDirError) Error() string {
	return fmt.Sprintf("no toolchain library directory found (tried %s)", strings.Join(e.Paths, ", "))
}

// UnknownStrategyError reports an unrecognized locator strategy.
type UnknownStrategyError struct {
	Name string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown strategy %q: supported strategies are %q, %q and %q",
		e.Name, StrategyAuto, StrategyQuery, StrategyDirect)
}

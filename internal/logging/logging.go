// Package logging builds the zerolog logger used for staging diagnostics.
// A successful run logs nothing at the default level.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w. The level is warn, or debug
// when verbose is set.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	}
	return zerolog.New(out).Level(level)
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// Package logging builds the zerolog logger the CLI uses. Output goes to
// stderr so generated queries on stdout pipes stay clean.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a console logger. verbose selects debug level, otherwise
// info. A nil out defaults to stderr.
func New(verbose bool, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	if out == nil {
		out = os.Stderr
	}
	cw := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
	}

	return zerolog.New(cw).
		Level(level).
		With().
		Timestamp().
		Logger()
}

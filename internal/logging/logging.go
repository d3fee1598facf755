package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New constructs the service logger. Production logs JSON to stdout;
// dev gets the console writer. An unparseable level falls back to info.
func New(level string, production bool) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil {
		lvl = parsed
	}

	output := io.Writer(os.Stdout)
	if !production {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	return zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "sharing-backend").
		Logger()
}

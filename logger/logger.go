package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/sygmaprotocol/sygma-core/observability"
)

const CONSOLE_FORMAT = "console"

// ConfigureLogger sets the global logger level and output. Any format other
// than console writes JSON lines.
func ConfigureLogger(level zerolog.Level, format string, out io.Writer) {
	if format == CONSOLE_FORMAT {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	observability.ConfigureLogger(level, out)
}

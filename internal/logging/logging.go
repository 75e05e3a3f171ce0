package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds a process logger writing to out. Format "console" gives human-readable output,
// anything else gives JSON lines.
func New(out io.Writer, level string, format string) (zerolog.Logger, error) {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level \"%v\": %w", level, err)
	}

	writer := out
	if format == "console" {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(writer).With().Timestamp().Logger().Level(parsedLevel), nil
}

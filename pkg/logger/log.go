// Package logger builds the zerolog loggers used by the addrnames command.
package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Format selects how log records are rendered.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// New returns a logger that writes records at or above level to w.  An
// empty level means info.
func New(w io.Writer, format Format, level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		var err error
		lvl, err = zerolog.ParseLevel(level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("bad log level %q: %w", level, err)
		}
	}

	switch format {
	case FormatJSON, "":
	case FormatConsole:
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", format)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

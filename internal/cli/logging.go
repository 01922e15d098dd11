package cli

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger writing to w at the given level.
// An empty or unknown level falls back to warn.
func newLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}).Level(lvl).With().Timestamp().Logger()
}

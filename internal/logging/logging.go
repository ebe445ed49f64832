// Package logging configures the global zerolog logger for the CLI and
// hands out per-component child loggers.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger. Verbosity maps to levels: negative is
// errors only (quiet), 0 warnings, 1 info, 2 and above debug.
func Setup(verbosity int, noColor bool) {
	switch {
	case verbosity < 0:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case verbosity == 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case verbosity == 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}

	log.Logger = zerolog.New(console).With().Timestamp().Logger()
}

// GetLogger returns a child logger tagged with a component name.
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

package cliconfig

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// Logger returns the package logger.
func Logger() zerolog.Logger {
	return logger
}

// SetQuiet raises the log level to error when quiet is true. The report on
// stdout is unaffected.
func SetQuiet(quiet bool) {
	if quiet {
		logger = logger.Level(zerolog.ErrorLevel)
	}
}

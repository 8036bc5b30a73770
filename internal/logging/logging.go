// Package logging configures the structured logger shared by the service's
// collaborators (internal/tour, internal/api) and the core solver.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds a console-writer zerolog.Logger at the given level ("debug",
// "info", "warn", "error"; unrecognised values fall back to "info").
// Grounded on the pack's github.com/rs/zerolog usage
// (cryptofunk/pkg/backtest/optimization.go, EEC289Q/pkg/solve.go).
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

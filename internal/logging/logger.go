package logging

import (
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global logger to write human-readable lines to w
// (stderr in production; stdout carries the JSON result) at the given level:
// debug, info, warn or error (default: info). Every event carries a fresh
// run_id so lines from one invocation can be correlated.
//
// It returns the run id.
func Init(w io.Writer, level string) string {
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	runID := uuid.New().String()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		With().
		Timestamp().
		Str("run_id", runID).
		Logger()

	return runID
}

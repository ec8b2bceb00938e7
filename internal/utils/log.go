package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

const DefaultLogLevel = zerolog.InfoLevel

var (
	// LogLevel is assigned in cmd/*/main.go before ConfigureLogger runs.
	LogLevel zerolog.Level
	// LogJSON is not bound to any flag and stays false unless set in code;
	// false gives a human-readable console writer instead of structured
	// JSON lines.
	LogJSON bool
)

// ConfigureLogger sets up the process-wide zerolog logger used for
// bootstrap/lifecycle messages (signal handling, startup/shutdown). Request
// and component-level logging inside the Coordinator and Log Service goes
// through pingcap/log + zap instead (spec's AMBIENT STACK dual-logging
// split, grounded on the teacher's own dual use of both libraries).
func ConfigureLogger() {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Stack().Logger()

	if !LogJSON {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.StampMicro,
		})
	}
	zerolog.SetGlobalLevel(LogLevel)
}

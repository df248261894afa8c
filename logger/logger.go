package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

var (
	log     zerolog.Logger
	noColor bool
)

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339

	log = newProcessLogger(zerolog.ErrorLevel)
}

func newProcessLogger(level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// GetLogger returns the shared process logger.
func GetLogger() *zerolog.Logger {
	return &log
}

func SetLogLevel(verboseCount int) {
	var level zerolog.Level
	switch {
	case verboseCount == 1:
		level = zerolog.WarnLevel
	case verboseCount == 2:
		level = zerolog.InfoLevel
	case verboseCount == 3:
		level = zerolog.DebugLevel
	case verboseCount >= 4:
		level = zerolog.TraceLevel
	default:
		level = zerolog.ErrorLevel
	}
	log = log.Level(level)
}

// SetNoColor rebuilds the process logger with ANSI colors disabled or enabled,
// keeping its current level.
func SetNoColor(disabled bool) {
	noColor = disabled
	log = newProcessLogger(log.GetLevel())
}

// ForTest returns a logger whose lines are reported through t.Log, so the
// test runner decides when they are shown.
func ForTest(t zerolog.TestingLog) zerolog.Logger {
	output := zerolog.NewConsoleWriter(
		zerolog.ConsoleTestWriter(t),
		func(w *zerolog.ConsoleWriter) {
			w.NoColor = true
			w.TimeFormat = time.RFC3339
		},
	)

	return zerolog.New(output).
		Level(zerolog.TraceLevel).
		With().
		Timestamp().
		Logger()
}

// Diagnostic attaches a single info-level message to the running test.
func Diagnostic(t zerolog.TestingLog, msg string) {
	t.Helper()
	l := ForTest(t)
	l.Info().Msg(msg)
}

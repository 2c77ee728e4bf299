// Package logger configures the application's structured logging.
//
// It uses zerolog for all output. In the local environment logs are written
// in a human-friendly console format; everywhere else they are JSON. The
// package also adapts zerolog levels for the pgx tracelog integration so SQL
// query logging follows the application log level.
package logger

import (
	"os"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// New creates the application logger for the given environment.
func New(env string) *zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var logger zerolog.Logger
	if env == "local" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().
			Level(zerolog.DebugLevel)
	} else {
		logger = zerolog.New(os.Stderr).
			With().Timestamp().Logger().
			Level(zerolog.InfoLevel)
	}

	return &logger
}

// NewPgxLogger creates the logger handed to the pgx tracelog adapter. It is
// separate from the main logger so query logging can carry its own tag.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("component", "pgx").Logger().
		Level(level)
}

// GetPgxTraceLogLevel converts a zerolog level into the tracelog level used
// by pgx query logging. Trace/debug enable full statement logging; anything
// quieter only surfaces query errors.
func GetPgxTraceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}

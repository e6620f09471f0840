// Package logger adapts structured loggers to the auth.Logger interface.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	auth "github.com/staffdesk/go-auth"
)

// ZeroLogger implements auth.Logger on top of zerolog.
type ZeroLogger struct {
	log zerolog.Logger
}

var _ auth.Logger = (*ZeroLogger)(nil)

// New wraps an existing zerolog.Logger.
func New(log zerolog.Logger) *ZeroLogger {
	return &ZeroLogger{log: log}
}

// NewConsole returns a human-readable logger writing to w, stderr when nil.
func NewConsole(w io.Writer) *ZeroLogger {
	if w == nil {
		w = os.Stderr
	}
	return &ZeroLogger{
		log: zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger(),
	}
}

func (z *ZeroLogger) Debug(format string, args ...any) {
	z.log.Debug().Msgf(format, args...)
}

func (z *ZeroLogger) Info(format string, args ...any) {
	z.log.Info().Msgf(format, args...)
}

func (z *ZeroLogger) Warn(format string, args ...any) {
	z.log.Warn().Msgf(format, args...)
}

func (z *ZeroLogger) Error(format string, args ...any) {
	z.log.Error().Msgf(format, args...)
}

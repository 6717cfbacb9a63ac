package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the application-wide logger type, aliased to zerolog.Logger.
// This allows other packages to depend only on boxpro/internal/logger instead of importing zerolog directly.
type Logger = zerolog.Logger

// Init initializes the logger with the given level and format. Format is
// "json" or "console".
func Init(level, format string) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var output io.Writer = os.Stdout
	if strings.ToLower(strings.TrimSpace(format)) != "json" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "2006-01-02 15:04:05",
		}
	}

	// Set log level, defaulting to InfoLevel if parsing fails.
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
		log.Warn().Str("log_level_in", level).Msg("Invalid log level, defaulting to 'info'")
	}
	zerolog.SetGlobalLevel(lvl)

	log.Logger = log.Output(output).Level(lvl)

	log.Info().
		Str("level", zerolog.GlobalLevel().String()).
		Str("format", format).
		Msg("Logger initialized")
}

// Get returns a pointer to the configured logger instance
func Get() *zerolog.Logger {
	return &log.Logger
}

// SetOutput changes the destination for log output.
// This is useful for redirecting logs to a file or a buffer during testing.
func SetOutput(w io.Writer) {
	log.Logger = log.Output(w)
}

// Event is an alias for zerolog.Event to allow building log entries without importing zerolog.
type Event = zerolog.Event

// HTTPEvent logs HTTP request events with standardized fields.
func HTTPEvent(method, path string, status int, durationMs float64) *zerolog.Event {
	return log.Info().
		Str("event_category", "http").
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Float64("duration_ms", durationMs)
}

// HTTPError logs HTTP error events.
func HTTPError(method, path string, status int, err error) *zerolog.Event {
	return log.Error().
		Str("event_category", "http").
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Err(err)
}

// PanicEvent logs panic recovery events.
func PanicEvent(err interface{}, stack string) *zerolog.Event {
	return log.Error().
		Str("event_category", "panic").
		Interface("error", err).
		Str("stack", stack)
}

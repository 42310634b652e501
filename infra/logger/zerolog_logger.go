package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts rs/zerolog to the core Logger interface. Solve runs
// emit their summaries as field maps through Debugw, so the adapter passes
// maps to zerolog intact instead of flattening them into the message.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger builds the adapter for one component. APP_ENV=dev switches
// to a human-readable console writer and defaults to debug level so engine
// traces show up while iterating; anywhere else the output is JSON at info.
// LOG_LEVEL overrides the level in either environment.
func NewZerologLogger(component string) Logger {
	dev := strings.EqualFold(os.Getenv("APP_ENV"), "dev")

	level := zerolog.InfoLevel
	if dev {
		level = zerolog.DebugLevel
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			level = parsed
		}
	}

	var out io.Writer = os.Stdout
	if dev {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	z := zerolog.New(out).Level(level).With().
		Timestamp().
		Str("service", "dayplanner").
		Str("component", component).
		Logger()
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}

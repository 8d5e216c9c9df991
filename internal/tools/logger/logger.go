package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const DefaultLevel = zerolog.InfoLevel

// New creates the root logger writing to stdout. Unknown or empty levels fall back to info.
func New(level string) *zerolog.Logger {
	return NewWithWriter(os.Stdout, level)
}

func NewWithWriter(w io.Writer, level string) *zerolog.Logger {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = DefaultLevel
	}

	log := zerolog.New(w).
		Level(parsed).
		With().
		Timestamp().
		Logger()

	return &log
}

package logger

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/camelinx/morse_tree/internal/config"
)

// New builds a zerolog logger writing to w according to cfg.
func New(w io.Writer, cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logger: %w", err)
	}

	out := w
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

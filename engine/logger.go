package engine

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"ebiten-korin/config"
)

// NewLogger creates a leveled logger writing to stderr and to every extra
// writer. Extra writers always receive JSON lines.
func NewLogger(cfg config.Config, extra ...io.Writer) zerolog.Logger {
	var out io.Writer = os.Stderr
	if cfg.PrettyLog {
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}
	if len(extra) > 0 {
		out = zerolog.MultiLevelWriter(append([]io.Writer{out}, extra...)...)
	}

	return zerolog.New(out).
		Level(cfg.Level()).
		With().
		Timestamp().
		Logger()
}

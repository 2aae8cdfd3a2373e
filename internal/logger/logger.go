// ABOUTME: Structured logging setup on log/slog.
// ABOUTME: Text to stderr by default; FERRO_DEBUG enables debug level.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Init configures and returns the process logger, also installed as the
// slog default.
func Init() *slog.Logger {
	return InitWithWriter(os.Stderr)
}

// InitWithWriter is Init with an explicit sink, for tests.
func InitWithWriter(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("FERRO_DEBUG") != "" {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	return log
}

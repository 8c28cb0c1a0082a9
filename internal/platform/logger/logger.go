package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. Level defaults to Info;
// set CITATOR_LOG_LEVEL=debug to see per-resolver fetch detail.
func New() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("CITATOR_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

package logger

import (
	"log/slog"
	"os"
)

// New creates a preconfigured slog.Logger. The level can be adjusted
// through the LOG_LEVEL environment variable.
func New() *slog.Logger {
	level := slog.LevelInfo
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(v)); err == nil {
			level = parsed
		}
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

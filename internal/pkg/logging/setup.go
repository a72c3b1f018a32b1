package logging

import (
	"log/slog"
	"os"

	"github.com/frcpath/zebraview/internal/pkg/config"
)

// Setup installs a text handler at the configured level as the default
// logger, tagged with the service name. An unknown level falls back to info.
func Setup(cfg *config.LoggingConfig, serviceName string) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler).With("service", serviceName)
	slog.SetDefault(logger)
	return logger
}

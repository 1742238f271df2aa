package config

import (
	"io"
	"log/slog"

	"adpilot/internal/config/configs"
)

// NewLogger builds the process logger. Every record carries the env
// attribute.
func NewLogger(w io.Writer, cfg configs.Logger, env string) *slog.Logger {
	return slog.New(cfg.Handler(w)).With(slog.String("env", env))
}

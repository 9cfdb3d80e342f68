package app

import (
	"log/slog"
	"os"

	"yard-console/internal/config"
	"yard-console/internal/logx"
)

// NewLogger builds the JSON slog-backed logger at cfg.LogLevel.
func NewLogger(cfg *config.Config) (logx.Logger, error) {
	level, err := logx.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	return logx.NewSlogAdapter(base).With(logx.String("service", "yard-console")), nil
}

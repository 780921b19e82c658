package middleware

import (
	"log/slog"

	"portal/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// NewAccessLogger returns the slog-echo access log middleware. Health checks
// and metric scrapes are not logged. Debug mode adds request headers.
func NewAccessLogger(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	return slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:      slog.LevelInfo,
		ClientErrorLevel:  slog.LevelWarn,
		ServerErrorLevel:  slog.LevelError,
		WithRequestID:     true,
		WithUserAgent:     cfg.Env.Debug,
		WithRequestHeader: cfg.Env.Debug,
		Filters: []slogecho.Filter{
			slogecho.IgnorePath("/health", "/metrics"),
		},
	})
}

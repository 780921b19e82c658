// Package context carries request-scoped values (request id and the enriched
// logger) from the echo layer down into usecases through context.Context.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is echoed back on every response, including webhook acks.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the id assigned by the request id middleware. Handlers
// mounted without the middleware (tests) get a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores id on the echo context and on the request context.
func SetRequestID(c echo.Context, id string) {
	c.Set(string(KeyRequestID), id)
	setRequestContext(c, context.WithValue(c.Request().Context(), KeyRequestID, id))
}

// GetLogger returns the request-scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to the
// component's own logger for background work such as refresh-all.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// EnrichLogger appends attrs to the request-scoped logger so that usecase logs
// carry who the request acts for (session subject, device id, gateway). It is
// a no-op when no request logger has been installed.
func EnrichLogger(c echo.Context, attrs ...any) {
	ctx := c.Request().Context()
	logger := GetLogger(ctx)
	if logger == nil || len(attrs) == 0 {
		return
	}
	setRequestContext(c, WithLogger(ctx, logger.With(attrs...)))
}

func setRequestContext(c echo.Context, ctx context.Context) {
	c.SetRequest(c.Request().WithContext(ctx))
}

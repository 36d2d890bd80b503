// Package context carries per-request values (request id, scoped logger,
// signed-in email) between the middleware, the handlers and the response
// envelope.
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

	// HeaderXRequestID is echoed back on every response.
	HeaderXRequestID = "X-Request-Id"
)

// NewRequestID returns a fresh request id.
func NewRequestID() string {
	return uuid.New().String()
}

// BindRequestID stores the id on the echo context, the response header and
// the request context, together with a logger tagged with it.
func BindRequestID(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(string(KeyRequestID), requestID)
	c.Response().Header().Set(HeaderXRequestID, requestID)

	ctx := context.WithValue(c.Request().Context(), KeyRequestID, requestID)
	ctx = context.WithValue(ctx, KeyLogger, logger.With(slog.String("request_id", requestID)))
	c.SetRequest(c.Request().WithContext(ctx))
}

// RequestID returns the id bound to the request, or "" outside the
// request id middleware.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return RequestIDFromContext(c.Request().Context())
}

// RequestIDFromContext is RequestID for code that only holds the context.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// LoggerOrDefault returns the request-scoped logger, or fallback.
func LoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return fallback
}

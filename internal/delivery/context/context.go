// Package context carries request-scoped values (request id, caller id and
// the request logger) between delivery and use case layers.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from and echoed on every HTTP exchange.
const HeaderXRequestID = echo.HeaderXRequestID

// echoRequestIDKey is the echo.Context key; it mirrors the request context value
// so handlers rendering a response do not need to reach into the request.
const echoRequestIDKey = "request_id"

type (
	requestIDKey struct{}
	userIDKey    struct{}
	loggerKey    struct{}
)

// GetRequestID returns the id assigned by the request id middleware, or "".
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns the request id carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetUserIDFromContext returns the authenticated caller's user id, or "".
func GetUserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)

	return id
}

// WithUserID returns a copy of ctx carrying the caller's user id. The request
// logger, when present, is enriched with a user_id attribute.
func WithUserID(ctx context.Context, userID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey{}, userID)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID)))
	}

	return ctx
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey{}).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

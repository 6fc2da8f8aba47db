package middleware

import (
	"context"
	"log/slog"

	deliverycontext "zeneasy/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// quietPaths are probed constantly and only logged when they fail.
var quietPaths = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// AccessLog writes one line per request through the request scoped logger.
// Successful requests go to debug unless verbose is set.
func AccessLog(logger *slog.Logger, verbose bool) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		// Render errors before logging so the status is the one the client sees.
		HandleError:     true,
		LogMethod:       true,
		LogURIPath:      true,
		LogRoutePath:    true,
		LogStatus:       true,
		LogLatency:      true,
		LogRemoteIP:     true,
		LogUserAgent:    true,
		LogResponseSize: true,
		LogError:        true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			level := accessLevel(v.Status, v.URIPath, verbose)
			if level == nil {
				return nil
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URIPath),
				slog.String("route", v.RoutePath),
				slog.Int("status", v.Status),
				slog.Int64("bytes_out", v.ResponseSize),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
				slog.String("user_agent", v.UserAgent),
			}
			if query := c.Request().URL.RawQuery; query != "" {
				attrs = append(attrs, slog.String("query", query))
			}
			if v.Error != nil {
				attrs = append(attrs, slog.Any("error", v.Error))
			}

			ctx := c.Request().Context()
			deliverycontext.GetLoggerOrDefault(ctx, logger).LogAttrs(context.WithoutCancel(ctx), *level, "HTTP Request", attrs...)

			return nil
		},
	})
}

// accessLevel returns nil when the request should not be logged.
func accessLevel(status int, path string, verbose bool) *slog.Level {
	level := slog.LevelDebug
	if verbose {
		level = slog.LevelInfo
	}

	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	case quietPaths[path]:
		return nil
	}

	return &level
}

package middleware

import (
	"log/slog"

	deliverycontext "zeneasy/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// maxRequestIDLength bounds client supplied ids before they reach logs and events.
const maxRequestIDLength = 128

// RequestID tags every request with an id and a logger carrying it. A client
// supplied X-Request-ID is kept unless it is oversized.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	tag := echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, requestID string) {
			deliverycontext.SetRequestID(c, requestID)

			ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("request_id", requestID)))
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		tagged := tag(next)

		return func(c echo.Context) error {
			header := c.Request().Header
			if len(header.Get(deliverycontext.HeaderXRequestID)) > maxRequestIDLength {
				header.Del(deliverycontext.HeaderXRequestID)
			}

			return tagged(c)
		}
	}
}

package response

import (
	"net/http"

	deliverycontext "zeneasy/internal/delivery/context"
	domainerrors "zeneasy/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Envelope is the body of every API response. Errors carry a nil Data.
type Envelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
	Code       string `json:"code,omitempty"`      // Machine-readable error code, e.g. "VALIDATION_FAILED"
	RequestID  string `json:"requestId,omitempty"` // Request tracking ID
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Envelope{
		Success:    true,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
		RequestID:  deliverycontext.GetRequestID(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, Envelope{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Data:       nil,
		Code:       errorCode,
		RequestID:  deliverycontext.GetRequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message)
}

// TooManyRequests returns a 429 error
func TooManyRequests(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusTooManyRequests, errorCode, message)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message)
}

// HandleAppError renders client errors directly. Server side failures go to
// the centralized error handler so they get logged.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
	}

	return errors.WithStack(err)
}

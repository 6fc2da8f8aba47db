// Package handler contains the HTTP handlers of the API server.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"zeneasy/internal/delivery/api/response"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// pageFromQuery reads offset and limit. Missing or malformed values fall back to the use case defaults.
func pageFromQuery(c echo.Context) usecase.Page {
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return usecase.Page{Offset: offset, Limit: limit}
}

// paramUUID parses a path parameter as a UUID.
func paramUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return id, nil
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WrapMessage("dates must be YYYY-MM-DD or RFC 3339")
	}

	return t, nil
}

// bindAndValidate binds the request into req and runs struct validation.
// The returned error is rendered as a 400 by the centralized error handler.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}

// listPayload is the data of paged responses.
type listPayload struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
}

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zeneasy/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_DomainCounters(t *testing.T) {
	recorder := New()

	recorder.OTPIssued(service.OutcomeSuccess)
	recorder.OTPIssued(service.OutcomeFailure)
	recorder.OTPValidated(service.OutcomeBlocked)
	recorder.LinkCompleted("rent", service.OutcomeSuccess)
	recorder.RatingAppended()
	recorder.RatingAppended()
	recorder.PushesSent(3, 1)

	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.otpIssued.WithLabelValues(service.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.otpValidated.WithLabelValues(service.OutcomeBlocked)))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.linksCompleted.WithLabelValues("rent", service.OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.ratingsAppended))
	assert.Equal(t, 3.0, testutil.ToFloat64(recorder.pushesSent.WithLabelValues(service.OutcomeSuccess)))
}

func TestRecorder_MiddlewareAndHandler(t *testing.T) {
	recorder := New()

	e := echo.New()
	e.Use(recorder.Middleware())
	e.GET("/rents/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Param("id"))
	})
	e.GET("/metrics", echo.WrapHandler(recorder.Handler()))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rents/"+id, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.httpRequestsTotal.WithLabelValues(http.MethodGet, "/rents/:id", "200")))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "zeneasy_http_requests_total"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestIDFromContext(ctx))

	ctx = WithRequestID(ctx, "req-42")
	assert.Equal(t, "req-42", GetRequestIDFromContext(ctx))

	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	c := echo.New().NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "req-42", GetRequestID(c))

	SetRequestID(c, "req-43")
	assert.Equal(t, "req-43", GetRequestID(c))
}

func TestWithUserIDEnrichesLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), base)
	ctx = WithUserID(ctx, "user-1")

	assert.Equal(t, "user-1", GetUserIDFromContext(ctx))
	GetLoggerOrDefault(ctx, nil).Info("hello")
	assert.Contains(t, buf.String(), "user_id=user-1")
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()

	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetUserIDFromContext(WithUserID(context.Background(), "")))
}

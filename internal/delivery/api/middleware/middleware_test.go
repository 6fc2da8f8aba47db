package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zeneasy/config"
	"zeneasy/internal/delivery/api/response"
	"zeneasy/internal/domain/constants"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/service"
	mockSvc "zeneasy/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()

	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(m *mockSvc.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "MISSING_TOKEN",
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID.String()}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokens)
			}
			mw := NewAuthMiddleware(tokens)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c, rec := newContext(req)

			var seen uuid.UUID
			err := mw.Authenticate(func(c echo.Context) error {
				seen, _ = GetUserID(c)

				return okHandler(c)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode(t, rec).Code)
			} else {
				assert.Equal(t, userID, seen)
			}
		})
	}
}

func TestAuthMiddleware_Roles(t *testing.T) {
	mw := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	userClaims := &service.Claims{UserID: uuid.NewString()}
	adminClaims := &service.Claims{Role: constants.ClaimRoleAdmin}

	tests := []struct {
		name       string
		claims     *service.Claims
		guard      echo.MiddlewareFunc
		wantStatus int
	}{
		{name: "admin route with user token", claims: userClaims, guard: mw.RequireAdmin, wantStatus: http.StatusForbidden},
		{name: "admin route with admin token", claims: adminClaims, guard: mw.RequireAdmin, wantStatus: http.StatusNoContent},
		{name: "user route with admin token", claims: adminClaims, guard: mw.RequireUser, wantStatus: http.StatusForbidden},
		{name: "user route with user token", claims: userClaims, guard: mw.RequireUser, wantStatus: http.StatusNoContent},
		{name: "user route with malformed subject", claims: &service.Claims{UserID: "42"}, guard: mw.RequireUser, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
			c.Set(claimsKey, tt.claims)

			require.NoError(t, tt.guard(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetActor(t *testing.T) {
	userID := uuid.New()

	c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, uuid.Nil, GetActor(c).UserID)
	assert.False(t, GetActor(c).IsAdmin)

	c.Set(claimsKey, &service.Claims{UserID: userID.String()})
	assert.Equal(t, userID, GetActor(c).UserID)
	assert.False(t, GetActor(c).IsAdmin)

	c.Set(claimsKey, &service.Claims{Role: constants.ClaimRoleAdmin})
	assert.True(t, GetActor(c).IsAdmin)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimitRule{RPS: 1, Burst: 2})
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = ip + ":5555"
		c, rec := newContext(req)
		require.NoError(t, limiter.Handle(okHandler)(c))

		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, hit("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, hit("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1"))

	// Buckets are per client.
	assert.Equal(t, http.StatusNoContent, hit("10.0.0.2"))

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, hit("10.0.0.1"))
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimitRule{RPS: 1, Burst: 1, TTL: time.Minute})
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.allow("a"))
	assert.True(t, limiter.allow("b"))
	assert.Len(t, limiter.visitors, 2)

	now = now.Add(2 * time.Minute)
	assert.True(t, limiter.allow("c"))
	assert.Len(t, limiter.visitors, 1)
}

func TestRateLimiter_Disabled(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimitRule{})

	for range 5 {
		c, rec := newContext(httptest.NewRequest(http.MethodPost, "/", nil))
		require.NoError(t, limiter.Handle(okHandler)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
	assert.Empty(t, limiter.visitors)
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "wrapped app error",
			err:         errors.Wrap(domainerrors.ErrUserNotFound.WrapMessage("lookup"), "handler"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "USER_NOT_FOUND",
			wantMessage: "User not found",
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusBadRequest, "email: is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "BAD_REQUEST",
			wantMessage: "email: is required",
		},
		{
			name:        "route not found",
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantMessage: "Not Found",
		},
		{
			name:        "body too large",
			err:         echo.NewHTTPError(http.StatusRequestEntityTooLarge),
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantCode:    "REQUEST_ENTITY_TOO_LARGE",
			wantMessage: "Request Entity Too Large",
		},
		{
			name:        "unknown error is hidden",
			err:         errors.New("pq: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

			mw.HandleHTTPError(tt.err, c)

			env := decode(t, rec)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantStatus, env.StatusCode)
			assert.Equal(t, tt.wantCode, env.Code)
			assert.Equal(t, tt.wantMessage, env.Message)
			assert.Nil(t, env.Data)
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, c.String(http.StatusOK, "done"))

	mw.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

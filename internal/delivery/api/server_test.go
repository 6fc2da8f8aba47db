package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"zeneasy/config"
	apimiddleware "zeneasy/internal/delivery/api/middleware"
	"zeneasy/internal/delivery/api/router"
	"zeneasy/internal/delivery/api/router/handler"
	"zeneasy/internal/domain/entity"
	"zeneasy/internal/domain/service"
	"zeneasy/internal/infra/auth"
	"zeneasy/internal/infra/metrics"
	"zeneasy/internal/infra/otpguard"
	mockRepo "zeneasy/internal/mocks/repository"
	mockSvc "zeneasy/internal/mocks/service"
	"zeneasy/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testStack wires the real use cases behind the echo server. Users live in an
// in-memory repository; every other collaborator is a mock.
type testStack struct {
	echo   *echo.Echo
	users  *mockRepo.FakeUserRepository
	tokens service.TokenService
	emails chan *service.Email
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	cfg := &config.Config{
		Auth:    &config.AuthConfig{TokenTTL: time.Hour},
		OTP:     &config.OTPConfig{},
		Rating:  &config.RatingConfig{},
		Storage: &config.StorageConfig{MaxUploadSize: 1 << 20},
		Metrics: &config.MetricsConfig{Enabled: true},
	}
	cfg.SecretKey.Access = "test-secret"
	cfg.HTTP.MaxRequestBodySize = "1M"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	stack := &testStack{
		users:  mockRepo.NewFakeUserRepository(),
		tokens: tokens,
		emails: make(chan *service.Email, 4),
	}

	mailer := mockSvc.NewMockEmailSender(t)
	mailer.EXPECT().
		Send(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, email *service.Email) error {
			stack.emails <- email

			return nil
		}).
		Maybe()

	recorder := metrics.New()
	publisher := mockSvc.NewMockEventPublisher(t)
	rentRepo := mockRepo.NewMockRentRepository(t)
	serviceRepo := mockRepo.NewMockServiceProfileRepository(t)
	linkRepo := mockRepo.NewMockOwnerLinkRepository(t)

	userUC := impl.NewUserService(impl.UserServiceParams{UserRepo: stack.users, Logger: logger})
	otpUC := impl.NewOTPService(impl.OTPServiceParams{
		UserRepo:     stack.users,
		Generator:    auth.NewOTPGenerator(),
		EmailSender:  mailer,
		Limiter:      otpguard.NewUnlimitedLimiter(),
		TokenService: tokens,
		Metrics:      recorder,
		Config:       cfg,
		Logger:       logger,
	})
	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:      stack.users,
		TokenService:  tokens,
		Authenticator: mockSvc.NewMockAdminAuthenticator(t),
		Logger:        logger,
	})
	linkerUC := impl.NewLinkerService(impl.LinkerServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		Publisher: publisher,
		Metrics:   recorder,
		Logger:    logger,
	})
	rentUC := impl.NewRentService(impl.RentServiceParams{
		RentRepo: rentRepo,
		LinkRepo: linkRepo,
		QRCode:   mockSvc.NewMockQRCodeService(t),
		Logger:   logger,
	})
	serviceUC := impl.NewServiceProfileService(impl.ServiceProfileServiceParams{
		ServiceRepo: serviceRepo,
		LinkRepo:    linkRepo,
		Publisher:   publisher,
		Logger:      logger,
	})
	ratingUC := impl.NewRatingService(impl.RatingServiceParams{
		ServiceRepo: serviceRepo,
		Publisher:   publisher,
		Metrics:     recorder,
		Config:      cfg,
		Logger:      logger,
	})

	stack.echo = NewEcho(ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: recorder,
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Logger: logger}),
			UserHandler: handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, OTPUC: otpUC, Logger: logger}),
			RentHandler: handler.NewRentHandler(handler.RentHandlerParams{LinkerUC: linkerUC, RentUC: rentUC, Logger: logger}),
			ServiceHandler: handler.NewServiceHandler(handler.ServiceHandlerParams{
				LinkerUC: linkerUC, ServiceUC: serviceUC, RatingUC: ratingUC, Logger: logger,
			}),
			FeedbackHandler: handler.NewFeedbackHandler(impl.NewFeedbackService(mockRepo.NewMockFeedbackRepository(t), logger)),
			UploadHandler: handler.NewUploadHandler(handler.UploadHandlerParams{
				UploadUC: impl.NewUploadService(impl.UploadServiceParams{Storage: mockSvc.NewMockObjectStorage(t), Config: cfg, Logger: logger}),
				Logger:   logger,
			}),
			DeviceHandler: handler.NewDeviceHandler(impl.NewDeviceService(mockRepo.NewMockDeviceRepository(t))),
			AdminHandler: handler.NewAdminHandler(handler.AdminHandlerParams{
				UserUC: userUC, ServiceUC: serviceUC, RentUC: rentUC, Logger: logger,
			}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(tokens),
			Metrics:        recorder,
			Config:         cfg,
		},
	})

	return stack
}

type envelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Code       string          `json:"code"`
}

func (s *testStack) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func (s *testStack) register(t *testing.T, email string) uuid.UUID {
	t.Helper()

	rec, env := s.do(t, http.MethodPost, "/api/v1/users", "", map[string]any{
		"name":        "Karim Hossain",
		"address":     map[string]string{"street": "House 12, Road 5", "city": "Dhaka", "postalCode": "1209"},
		"phoneNumber": "+8801711000000",
		"email":       email,
		"dateOfBirth": "1994-03-21",
		"gender":      "Male",
		"nationality": "Bangladeshi",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var user entity.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.False(t, user.IsVerified)

	return user.ID
}

var emailCodePattern = regexp.MustCompile(`verification code is (\d{6})\.`)

func TestServer_OTPFlow(t *testing.T) {
	stack := newTestStack(t)

	userID := stack.register(t, "karim@example.com")
	base := "/api/v1/users/" + userID.String()

	// Unverified users cannot get a session token yet.
	rec, env := stack.do(t, http.MethodPost, "/api/v1/auth/token", "", map[string]string{"email": "karim@example.com"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, env.Success)

	rec, _ = stack.do(t, http.MethodPost, base+"/otp", "", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var email *service.Email
	select {
	case email = <-stack.emails:
	default:
		t.Fatal("no verification email was sent")
	}
	assert.Equal(t, "karim@example.com", email.To)

	match := emailCodePattern.FindStringSubmatch(email.Text)
	require.Len(t, match, 2, email.Text)
	code := match[1]
	assert.Equal(t, stack.users.StoredOTP(userID), code)

	rec, env = stack.do(t, http.MethodPost, base+"/otp/verify", "", map[string]string{"otp": code})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, env.Success)

	var verified struct {
		Token string      `json:"token"`
		User  entity.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &verified))
	assert.True(t, verified.User.IsVerified)

	claims, err := stack.tokens.ValidateToken(verified.Token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)

	// The code is single use.
	rec, env = stack.do(t, http.MethodPost, base+"/otp/verify", "", map[string]string{"otp": code})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "OTP_INVALID", env.Code)

	rec, _ = stack.do(t, http.MethodPost, "/api/v1/auth/token", "", map[string]string{"email": "karim@example.com"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_VerifyWithoutIssuedCode(t *testing.T) {
	stack := newTestStack(t)

	userID := stack.register(t, "nabila@example.com")

	rec, env := stack.do(t, http.MethodPost, "/api/v1/users/"+userID.String()+"/otp/verify", "", map[string]string{"otp": "000000"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "OTP_INVALID", env.Code)
}

func TestServer_AdminRoutes(t *testing.T) {
	stack := newTestStack(t)

	userID := stack.register(t, "rahim@example.com")
	userToken, err := stack.tokens.IssueUserToken(userID.String())
	require.NoError(t, err)
	adminToken, err := stack.tokens.IssueAdminToken()
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		status int
	}{
		{name: "no token", status: http.StatusUnauthorized},
		{name: "garbage token", token: "not-a-jwt", status: http.StatusUnauthorized},
		{name: "user token", token: userToken, status: http.StatusForbidden},
		{name: "admin token", token: adminToken, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := stack.do(t, http.MethodGet, "/api/v1/admin/users", tt.token, nil)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.status, env.StatusCode)
		})
	}
}

func TestServer_UpdateUserOwnership(t *testing.T) {
	stack := newTestStack(t)

	owner := stack.register(t, "owner@example.com")
	other := stack.register(t, "other@example.com")

	otherToken, err := stack.tokens.IssueUserToken(other.String())
	require.NoError(t, err)
	ownerToken, err := stack.tokens.IssueUserToken(owner.String())
	require.NoError(t, err)

	rec, _ := stack.do(t, http.MethodPut, "/api/v1/users/"+owner.String(), otherToken, map[string]string{"name": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env := stack.do(t, http.MethodPut, "/api/v1/users/"+owner.String(), ownerToken, map[string]string{"name": "Karim Uddin"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var user entity.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "Karim Uddin", user.Name)
}

func TestServer_ValidationAndNotFound(t *testing.T) {
	stack := newTestStack(t)

	rec, env := stack.do(t, http.MethodPost, "/api/v1/users", "", map[string]string{"name": "No Email"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "null", string(env.Data))

	rec, _ = stack.do(t, http.MethodGet, "/api/v1/users/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = stack.do(t, http.MethodGet, "/api/v1/users/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_HealthAndMetrics(t *testing.T) {
	stack := newTestStack(t)

	rec, env := stack.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsRec := httptest.NewRecorder()
	stack.echo.ServeHTTP(metricsRec, req)
	assert.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), "zeneasy_http_requests_total")
}

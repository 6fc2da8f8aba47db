package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"zeneasy/config"
	"zeneasy/internal/domain/constants"
	"zeneasy/internal/domain/entity"
	"zeneasy/internal/domain/service"
	"zeneasy/internal/infra/metrics"
	"zeneasy/internal/infra/pubsub"
	mockRepo "zeneasy/internal/mocks/repository"
	mockSvc "zeneasy/internal/mocks/service"
	"zeneasy/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushFixture struct {
	handler *PushHandler
	devices *mockRepo.MockDeviceRepository
	push    *mockSvc.MockNotificationService
}

func newPushFixture(t *testing.T) *pushFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	devices := mockRepo.NewMockDeviceRepository(t)
	push := mockSvc.NewMockNotificationService(t)

	notificationUC := impl.NewNotificationService(impl.NotificationServiceParams{
		DeviceRepo:      devices,
		NotificationSvc: push,
		Metrics:         metrics.New(),
		Logger:          logger,
	})

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}

	return &pushFixture{
		handler: NewPushHandler(PushHandlerParams{
			Config:    cfg,
			Processor: NewEventProcessor(notificationUC, logger),
			Logger:    logger,
		}),
		devices: devices,
		push:    push,
	}
}

func (f *pushFixture) post(t *testing.T, body string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, f.handler.HandlePush(c))

	return rec.Code
}

func envelopeFor(t *testing.T, event *service.DomainEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = map[string]string{"request_id": "req-1"}

	payload, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(payload)
}

func newEvent(ownerID string) *service.DomainEvent {
	return &service.DomainEvent{
		ID:          uuid.NewString(),
		Type:        "service.rated",
		AggregateID: uuid.NewString(),
		OwnerID:     ownerID,
		Title:       "New rating",
		Body:        "Your service received a 5 star rating",
	}
}

func TestPushHandler_Delivered(t *testing.T) {
	f := newPushFixture(t)
	ownerID := uuid.New()

	f.devices.EXPECT().ListActiveByUser(mock.Anything, ownerID).Return([]*entity.UserDevice{
		{ID: uuid.New(), UserID: ownerID, FCMToken: "tok-a"},
		{ID: uuid.New(), UserID: ownerID, FCMToken: "tok-b"},
	}, nil)
	f.push.EXPECT().
		SendMulticast(mock.Anything, []string{"tok-a", "tok-b"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Title == "New rating" && msg.Data["event_type"] == "service.rated"
		})).
		Return(&service.PushResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"tok-b"}}, nil)
	f.devices.EXPECT().DeactivateByTokens(mock.Anything, []string{"tok-b"}).Return(int64(1), nil)

	assert.Equal(t, http.StatusOK, f.post(t, envelopeFor(t, newEvent(ownerID.String()))))
}

func TestPushHandler_TransientFailureRequestsRedelivery(t *testing.T) {
	f := newPushFixture(t)
	ownerID := uuid.New()

	f.devices.EXPECT().ListActiveByUser(mock.Anything, ownerID).Return(nil, errors.New("connection reset"))

	assert.Equal(t, http.StatusServiceUnavailable, f.post(t, envelopeFor(t, newEvent(ownerID.String()))))
}

func TestPushHandler_PermanentFailures(t *testing.T) {
	f := newPushFixture(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "invalid json envelope", body: "{", want: http.StatusBadRequest},
		{name: "data is not base64", body: `{"message":{"data":"%%%"}}`, want: http.StatusBadRequest},
		{
			name: "data is not an event",
			body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("hello")) + `"}}`,
			want: http.StatusBadRequest,
		},
		{name: "event without owner", body: envelopeFor(t, newEvent("")), want: http.StatusBadRequest},
		{name: "owner is not a uuid", body: envelopeFor(t, newEvent("owner-7")), want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.post(t, tt.body))
		})
	}
}

func TestPushHandler_VerifiesTokenForGoogleOutsideDevelop(t *testing.T) {
	pubsubConfig := func(provider, env string) *config.Config {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
		cfg.Env.Env = env

		return cfg
	}

	tests := []struct {
		name string
		cfg  *config.Config
		want bool
	}{
		{name: "no pubsub", cfg: &config.Config{}},
		{name: "local provider", cfg: pubsubConfig(constants.PubSubProviderLocal, "production")},
		{name: "google in develop", cfg: pubsubConfig(constants.PubSubProviderGoogle, constants.EnvDevelop)},
		{name: "google in production", cfg: pubsubConfig(constants.PubSubProviderGoogle, "production"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewPushHandler(PushHandlerParams{Config: tt.cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
			assert.Equal(t, tt.want, h.verifyPushAuth)
		})
	}
}

func TestPushHandler_RejectsMissingPushToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, PushAudience: "https://worker.example.com/push"}}
	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEventProcessor_Consume(t *testing.T) {
	f := newPushFixture(t)
	ownerID := uuid.New()

	f.devices.EXPECT().ListActiveByUser(mock.Anything, ownerID).Return(nil, errors.New("timeout"))

	body, err := json.Marshal(newEvent(ownerID.String()))
	require.NoError(t, err)

	err = f.handler.processor.Consume(context.Background(), body)
	require.Error(t, err)
	assert.True(t, isRetryable(err))

	err = f.handler.processor.Consume(context.Background(), []byte("not json"))
	require.ErrorIs(t, err, ErrMalformedEvent)
	assert.False(t, isRetryable(err))
}

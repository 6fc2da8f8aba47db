package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zeneasy/config"
	"zeneasy/internal/domain/constants"
	"zeneasy/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.DomainEvent {
	return &service.DomainEvent{
		ID:          "0192f0c4-0000-7000-8000-000000000001",
		Type:        constants.EventRatingAppended,
		RequestID:   "req-123",
		AggregateID: "0192f0c4-0000-7000-8000-0000000000aa",
		OwnerID:     "0192f0c4-0000-7000-8000-0000000000bb",
		Title:       "New rating",
		Body:        "A client rated your service 5/5",
		OccurredAt:  time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, event.ID, received.Message.MessageID)
	assert.Equal(t, constants.EventRatingAppended, received.Message.Attributes["event_type"])
	assert.Equal(t, event.OwnerID, received.Message.Attributes["owner_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.DomainEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.Publish(context.Background(), newTestEvent())
	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		want    any
		wantErr bool
	}{
		{
			name: "not configured",
			cfg:  &config.Config{},
			want: &noopPublisher{},
		},
		{
			name: "local",
			cfg:  &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
			want: &localHTTPPublisher{},
		},
		{
			name:    "local without endpoint",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
			wantErr: true,
		},
		{
			name:    "google without project",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "events"}},
			wantErr: true,
		},
		{
			name:    "rabbitmq without url",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderRabbitMQ}},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     &config.Config{PubSub: &config.PubSubConfig{Provider: "kafka"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: tt.cfg,
				Logger: newDiscardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, publisher)
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: newDiscardLogger()}

	assert.NoError(t, publisher.Publish(context.Background(), newTestEvent()))
	assert.NoError(t, publisher.Close())
}

func TestTopologyFromConfig(t *testing.T) {
	topology := topologyFromConfig(&config.RabbitMQConfig{})
	assert.Equal(t, rabbitTopology{exchange: defaultExchange, queue: defaultQueue, routingKey: defaultRoutingKey}, topology)

	topology = topologyFromConfig(&config.RabbitMQConfig{Exchange: "x", Queue: "q", RoutingKey: "k"})
	assert.Equal(t, rabbitTopology{exchange: "x", queue: "q", routingKey: "k"}, topology)
}

func TestEventAttributes(t *testing.T) {
	event := newTestEvent()
	event.RequestID = ""

	attributes := eventAttributes(event)
	assert.Equal(t, event.ID, attributes["event_id"])
	assert.NotContains(t, attributes, "request_id")
}

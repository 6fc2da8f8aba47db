package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "zeneasy/internal/delivery/context"
	"zeneasy/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/zeneasy-events"
	localPushTimeout  = 30 * time.Second
)

// PushMessage is the Pub/Sub push envelope accepted by the worker.
type PushMessage struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

// PushedMessage is the message inside a push envelope. Data is base64.
type PushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// NewPushMessage wraps an event the way Pub/Sub push delivery does.
func NewPushMessage(event *service.DomainEvent, subscription string) (*PushMessage, error) {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return nil, err
	}

	return &PushMessage{
		Message: PushedMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  attributes,
			MessageID:   event.ID,
			PublishTime: time.Now().UTC().Format(time.RFC3339),
		},
		Subscription: subscription,
	}, nil
}

// localHTTPPublisher POSTs push envelopes straight to the worker, for
// development without a broker.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
	}
}

func (p *localHTTPPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	msg, err := NewPushMessage(event, localSubscription)
	if err != nil {
		return err
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to push event %s", event.ID)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("worker rejected event %s with status %d", event.ID, resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Event pushed to worker",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}

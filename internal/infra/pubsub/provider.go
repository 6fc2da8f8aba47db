package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"zeneasy/config"
	"zeneasy/internal/domain/constants"
	"zeneasy/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type publisherFactory func(params PublisherParams) (service.EventPublisher, error)

var factories = map[string]publisherFactory{
	constants.PubSubProviderLocal: func(params PublisherParams) (service.EventPublisher, error) {
		endpoint := params.Config.PubSub.LocalEndpoint
		if endpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}

		return NewLocalHTTPPublisher(endpoint, params.Logger), nil
	},
	constants.PubSubProviderGoogle: func(params PublisherParams) (service.EventPublisher, error) {
		cfg := params.Config.PubSub
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, params.Logger)
	},
	constants.PubSubProviderRabbitMQ: func(params PublisherParams) (service.EventPublisher, error) {
		rmq := params.Config.RabbitMQ
		if rmq == nil || rmq.URL == "" {
			return nil, errors.New("rabbitmq.url is required for the rabbitmq provider")
		}

		return NewRabbitMQPublisher(rmq, params.Logger)
	},
}

// NewEventPublisher selects the transport named by pubsub.provider. Without a
// provider events are dropped after a debug log.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, events will be dropped")

		return &noopPublisher{logger: params.Logger}, nil
	}

	build, ok := factories[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	publisher, err := build(params)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Event publisher ready", slog.String("provider", cfg.Provider))

	params.Lc.Append(fx.StopHook(func() error {
		return publisher.Close()
	}))

	return publisher, nil
}

type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) Publish(ctx context.Context, event *service.DomainEvent) error {
	p.logger.DebugContext(ctx, "Event dropped, no publisher configured",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// encodeEvent returns the JSON body and the attributes every transport carries.
func encodeEvent(event *service.DomainEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to encode event")
	}

	return data, eventAttributes(event), nil
}

func eventAttributes(event *service.DomainEvent) map[string]string {
	attributes := map[string]string{
		"event_id":   event.ID,
		"event_type": event.Type,
		"owner_id":   event.OwnerID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

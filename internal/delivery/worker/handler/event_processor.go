package handler

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "zeneasy/internal/delivery/context"
	"zeneasy/internal/domain/service"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMalformedEvent is returned for payloads that can never be processed.
var ErrMalformedEvent = errors.New("malformed domain event")

// EventProcessor decodes a domain event and hands it to the notification use case.
// It is shared by the push endpoint and the queue consumer.
type EventProcessor struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewEventProcessor is the constructor for EventProcessor.
func NewEventProcessor(notificationUC usecase.NotificationUsecase, logger *slog.Logger) *EventProcessor {
	return &EventProcessor{
		notificationUC: notificationUC,
		logger:         logger,
	}
}

// Process handles one JSON encoded event. requestID takes priority over the
// id carried by the event itself.
func (p *EventProcessor) Process(ctx context.Context, body []byte, requestID string) error {
	var event service.DomainEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return errors.Wrap(ErrMalformedEvent, err.Error())
	}
	if event.OwnerID == "" {
		return errors.Wrap(ErrMalformedEvent, "missing owner id")
	}

	requestID = resolveRequestID(ctx, requestID, &event)
	reqLogger := p.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	result, err := p.notificationUC.Dispatch(ctx, &event)
	if err != nil {
		return err
	}

	reqLogger.Info("[Worker] Event processed",
		slog.String("event_id", event.ID),
		slog.String("event_type", event.Type),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("deactivated", result.Deactivated),
	)

	return nil
}

// Consume adapts Process to the queue consumer's handler signature.
func (p *EventProcessor) Consume(ctx context.Context, body []byte) error {
	return p.Process(ctx, body, "")
}

func resolveRequestID(ctx context.Context, requestID string, event *service.DomainEvent) string {
	if requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if id := deliverycontext.GetRequestIDFromContext(ctx); id != "" {
		return id
	}

	return uuid.New().String()
}

// isRetryable reports whether err asks for redelivery.
func isRetryable(err error) bool {
	var retryable interface{ Retryable() bool }

	return errors.As(err, &retryable) && retryable.Retryable()
}

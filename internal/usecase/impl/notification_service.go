package impl

import (
	"context"
	"log/slog"

	deliverycontext "zeneasy/internal/delivery/context"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/domain/service"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// transientError marks a failure worth redelivering the event for.
type transientError struct {
	err error
}

func (e *transientError) Error() string   { return e.err.Error() }
func (e *transientError) Unwrap() error   { return e.err }
func (e *transientError) Retryable() bool { return true }

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	metrics         service.MetricsRecorder
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for the notification dispatcher, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Metrics         service.MetricsRecorder
	Logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		metrics:         params.Metrics,
		logger:          params.Logger,
	}
}

// Dispatch pushes the event to every active device of its owner and
// deactivates devices whose tokens the provider rejected.
func (s *notificationService) Dispatch(ctx context.Context, event *service.DomainEvent) (*usecase.DispatchResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("eventID", event.ID),
		slog.String("eventType", event.Type),
	)

	ownerID, err := uuid.Parse(event.OwnerID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("event owner id is not a uuid")
	}

	devices, err := s.deviceRepo.ListActiveByUser(ctx, ownerID)
	if err != nil {
		return nil, &transientError{err: errors.Wrap(err, "failed to load owner devices")}
	}

	result := &usecase.DispatchResult{Devices: len(devices)}
	if len(devices) == 0 {
		logger.Debug("Owner has no active devices, skipping push", slog.Any("ownerID", ownerID))

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	push, err := s.notificationSvc.SendMulticast(ctx, tokens, &service.PushMessage{
		Title: event.Title,
		Body:  event.Body,
		Data: map[string]string{
			"event_id":     event.ID,
			"event_type":   event.Type,
			"aggregate_id": event.AggregateID,
		},
	})
	if err != nil {
		return nil, &transientError{err: errors.Wrap(err, "failed to send push notification")}
	}

	result.Sent = push.SuccessCount
	result.Failed = push.FailureCount
	s.metrics.PushesSent(push.SuccessCount, push.FailureCount)

	if len(push.InvalidTokens) > 0 {
		deactivated, err := s.deviceRepo.DeactivateByTokens(ctx, push.InvalidTokens)
		if err != nil {
			// Delivery already happened; a retry would push twice.
			logger.Error("Failed to deactivate invalid devices", slog.Int("count", len(push.InvalidTokens)), slog.Any("error", err))
		}
		result.Deactivated = int(deactivated)
	}

	logger.Info("Push notification dispatched",
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("deactivated", result.Deactivated),
	)

	return result, nil
}

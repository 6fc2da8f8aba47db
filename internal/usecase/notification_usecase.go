package usecase

import (
	"context"

	"zeneasy/internal/domain/service"
)

// DispatchResult summarizes the push delivery of one event.
type DispatchResult struct {
	Devices     int
	Sent        int
	Failed      int
	Deactivated int
}

// NotificationUsecase turns domain events into push notifications for the owner's devices.
type NotificationUsecase interface {
	Dispatch(ctx context.Context, event *service.DomainEvent) (*DispatchResult, error)
}

// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "zeneasy/internal/delivery/context"
	"zeneasy/internal/domain/service"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// normalizePage clamps a page window to sane bounds.
func normalizePage(page usecase.Page) usecase.Page {
	if page.Offset < 0 {
		page.Offset = 0
	}
	if page.Limit <= 0 {
		page.Limit = defaultPageLimit
	}
	if page.Limit > maxPageLimit {
		page.Limit = maxPageLimit
	}

	return page
}

// publishEvent publishes best effort: a failure is logged and never returned.
func publishEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.DomainEvent) {
	if publisher == nil {
		return
	}

	event.ID = uuid.New().String()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = time.Now().UTC()

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish domain event",
			slog.String("type", event.Type),
			slog.String("aggregateID", event.AggregateID),
			slog.Any("error", err),
		)
	}
}

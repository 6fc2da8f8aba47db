package service

import (
	"context"
	"time"
)

// DomainEvent is published after a state change that should reach the owner's devices.
type DomainEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	RequestID   string    `json:"requestId,omitempty"` // For distributed tracing
	AggregateID string    `json:"aggregateId"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends the event for async processing
	Publish(ctx context.Context, event *DomainEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

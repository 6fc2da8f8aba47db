package repository

import (
	"context"

	"zeneasy/internal/domain/entity"
)

// FeedbackRepository defines persistence operations for site feedback.
type FeedbackRepository interface {
	// Create persists a new feedback entry.
	Create(ctx context.Context, feedback *entity.FeedbackEntry) error

	// List returns feedback entries, newest first.
	List(ctx context.Context, offset, limit int) ([]*entity.FeedbackEntry, int64, error)
}

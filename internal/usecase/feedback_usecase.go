package usecase

import (
	"context"

	"zeneasy/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedbackList is one page of feedback entries.
type FeedbackList struct {
	Entries []*entity.FeedbackEntry
	Total   int64
}

// FeedbackUsecase records and lists site feedback.
type FeedbackUsecase interface {
	Submit(ctx context.Context, userID uuid.UUID, text string, rating int) (*entity.FeedbackEntry, error)
	List(ctx context.Context, page Page) (*FeedbackList, error)
}

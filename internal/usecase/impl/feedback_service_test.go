package impl

import (
	"context"
	"testing"

	"zeneasy/internal/domain/entity"
	domainerrors "zeneasy/internal/domain/errors"
	mockRepo "zeneasy/internal/mocks/repository"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFeedbackService_Submit(t *testing.T) {
	repo := mockRepo.NewMockFeedbackRepository(t)
	srv := NewFeedbackService(repo, newDiscardLogger())

	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(entry *entity.FeedbackEntry) bool {
			return entry.UserID == userID && entry.Text == "Great app" && entry.Rating == 5
		})).
		Return(nil)

	entry, err := srv.Submit(ctx, userID, "  Great app ", 5)
	require.NoError(t, err)
	assert.Equal(t, "Great app", entry.Text)
}

func TestFeedbackService_Submit_EmptyText(t *testing.T) {
	srv := NewFeedbackService(mockRepo.NewMockFeedbackRepository(t), newDiscardLogger())

	_, err := srv.Submit(context.Background(), uuid.New(), "  ", 4)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFeedbackService_List_DefaultPage(t *testing.T) {
	repo := mockRepo.NewMockFeedbackRepository(t)
	srv := NewFeedbackService(repo, newDiscardLogger())

	ctx := context.Background()
	entries := []*entity.FeedbackEntry{{ID: uuid.New()}}

	repo.EXPECT().List(ctx, 0, defaultPageLimit).Return(entries, int64(1), nil)

	list, err := srv.List(ctx, usecase.Page{})
	require.NoError(t, err)
	assert.Equal(t, entries, list.Entries)
	assert.Equal(t, int64(1), list.Total)
}

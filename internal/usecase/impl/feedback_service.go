package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "zeneasy/internal/delivery/context"
	"zeneasy/internal/domain/entity"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	logger       *slog.Logger
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, logger *slog.Logger) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// Submit records site feedback from a user.
func (srv *feedbackService) Submit(ctx context.Context, userID uuid.UUID, text string, rating int) (*entity.FeedbackEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("feedback text is required")
	}

	entry := &entity.FeedbackEntry{
		UserID: userID,
		Text:   text,
		Rating: rating,
	}

	if err := srv.feedbackRepo.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to store feedback")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Feedback stored", slog.Any("feedbackID", entry.ID))

	return entry, nil
}

// List returns one page of feedback, newest first.
func (srv *feedbackService) List(ctx context.Context, page usecase.Page) (*usecase.FeedbackList, error) {
	page = normalizePage(page)

	entries, total, err := srv.feedbackRepo.List(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return &usecase.FeedbackList{Entries: entries, Total: total}, nil
}

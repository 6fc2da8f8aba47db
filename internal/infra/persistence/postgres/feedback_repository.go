package postgres

import (
	"context"

	"zeneasy/internal/domain/entity"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

// Create persists a new feedback entry.
func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.FeedbackEntry) error {
	feedbackM := &model.FeedbackModel{
		ID:     feedback.ID,
		UserID: feedback.UserID,
		Text:   feedback.Text,
		Rating: feedback.Rating,
	}

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("feedback rating must be between 0 and 5")
		}

		return domainerrors.NewDatabaseError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt

	return nil
}

// List returns feedback entries, newest first.
func (repo *feedbackRepository) List(ctx context.Context, offset, limit int) ([]*entity.FeedbackEntry, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.FeedbackModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count feedback")
	}

	var feedbackModels []*model.FeedbackModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&feedbackModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list feedback")
	}

	entries := make([]*entity.FeedbackEntry, 0, len(feedbackModels))
	for _, feedbackM := range feedbackModels {
		entries = append(entries, &entity.FeedbackEntry{
			ID:        feedbackM.ID,
			UserID:    feedbackM.UserID,
			Text:      feedbackM.Text,
			Rating:    feedbackM.Rating,
			CreatedAt: feedbackM.CreatedAt,
		})
	}

	return entries, total, nil
}

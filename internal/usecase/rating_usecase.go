package usecase

import (
	"context"

	"zeneasy/internal/domain/entity"

	"github.com/google/uuid"
)

// RatingInput is one client's score for a service profile.
type RatingInput struct {
	ClientID uuid.UUID
	Rating   int
	Feedback string
}

// RatingUsecase appends ratings and derives their average.
type RatingUsecase interface {
	// AppendRating stores the rating and returns the updated summary.
	AppendRating(ctx context.Context, profileID uuid.UUID, input *RatingInput) (*entity.RatingSummary, error)

	// Summary returns the average and count of the profile's ratings.
	Summary(ctx context.Context, profileID uuid.UUID) (*entity.RatingSummary, error)
}

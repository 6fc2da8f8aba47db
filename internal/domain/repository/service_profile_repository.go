package repository

import (
	"context"

	"zeneasy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrServiceNotFound is returned when a service profile is not found.
	ErrServiceNotFound = errors.New("service profile not found")
	// ErrRatingOutOfRange is returned when the storage rejects a rating value.
	ErrRatingOutOfRange = errors.New("rating out of range")
)

// ServiceProfileRepository defines persistence operations for service profiles and their ratings.
type ServiceProfileRepository interface {
	// Create persists a new profile and fills its generated fields.
	Create(ctx context.Context, profile *entity.ServiceProfile) error

	// FindByID retrieves a profile with its ratings in insertion order.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceProfile, error)

	// FindByIDs retrieves profiles in the order of ids, skipping missing ones.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.ServiceProfile, error)

	// List returns profiles matching the filter, newest first.
	List(ctx context.Context, filter entity.ServiceFilter, offset, limit int) ([]*entity.ServiceProfile, int64, error)

	// UpdateApproval sets the moderation state.
	UpdateApproval(ctx context.Context, id uuid.UUID, state entity.ApprovalState) error

	// UpdateStatus sets the active/inactive status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error

	// Delete hard-deletes a profile and its ratings.
	Delete(ctx context.Context, id uuid.UUID) error

	// AppendRating appends a rating entry to the profile.
	AppendRating(ctx context.Context, profileID uuid.UUID, rating *entity.Rating) error

	// HasRatingFrom reports whether the client already rated the profile.
	HasRatingFrom(ctx context.Context, profileID, clientID uuid.UUID) (bool, error)
}

package repository

import (
	"context"

	"zeneasy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRentNotFound is returned when a rent listing is not found.
var ErrRentNotFound = errors.New("rent listing not found")

// RentRepository defines persistence operations for rent listings.
type RentRepository interface {
	// Create persists a new listing and fills its generated fields.
	Create(ctx context.Context, rent *entity.RentListing) error

	// FindByID retrieves a listing by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RentListing, error)

	// FindByIDs retrieves listings in the order of ids, skipping missing ones.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.RentListing, error)

	// List returns listings matching the filter, newest first.
	List(ctx context.Context, filter entity.RentFilter, offset, limit int) ([]*entity.RentListing, int64, error)

	// UpdateStatus sets the availability status of a listing.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RentStatus) error

	// Delete hard-deletes a listing.
	Delete(ctx context.Context, id uuid.UUID) error
}

package repository

import (
	"context"

	"zeneasy/internal/domain/entity"

	"github.com/google/uuid"
)

// OwnerLinkRepository maintains the owner -> child id index.
// Only the referential linker appends to it.
type OwnerLinkRepository interface {
	// Append adds childID at the end of the owner's list of the given kind.
	Append(ctx context.Context, ownerID uuid.UUID, kind entity.OwnerLinkKind, childID uuid.UUID) error

	// ChildIDs returns the owner's child ids of the given kind in append order.
	ChildIDs(ctx context.Context, ownerID uuid.UUID, kind entity.OwnerLinkKind) ([]uuid.UUID, error)
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// OwnerLinkKind names the child collection an ownership link belongs to.
type OwnerLinkKind string

const (
	// OwnerLinkRent backs User.RentPosts.
	OwnerLinkRent OwnerLinkKind = "rent"
	// OwnerLinkService backs User.ProfessionalProfiles.
	OwnerLinkService OwnerLinkKind = "service"
)

// String returns the string representation of the OwnerLinkKind.
func (k OwnerLinkKind) String() string {
	return string(k)
}

// IsValid checks if the OwnerLinkKind is a valid value.
func (k OwnerLinkKind) IsValid() bool {
	return k == OwnerLinkRent || k == OwnerLinkService
}

// OwnerLink is one entry of the owner -> child index.
type OwnerLink struct {
	OwnerID   uuid.UUID
	Kind      OwnerLinkKind
	ChildID   uuid.UUID
	Position  int
	CreatedAt time.Time
}

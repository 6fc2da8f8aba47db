package usecase

import (
	"context"

	"zeneasy/internal/domain/entity"

	"github.com/google/uuid"
)

// GeoQuery restricts listings to a circle around a point.
type GeoQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// RentQuery selects rent listings.
type RentQuery struct {
	Filter entity.RentFilter
	Near   *GeoQuery
	Page   Page
}

// RentResult is one listing, with its distance when a GeoQuery was used.
type RentResult struct {
	Rent       *entity.RentListing
	DistanceKm *float64
}

// RentList is one page of listings.
type RentList struct {
	Rents []*RentResult
	Total int64
}

// RentUsecase reads and moderates rent listings.
type RentUsecase interface {
	GetRent(ctx context.Context, id uuid.UUID) (*entity.RentListing, error)
	ListRents(ctx context.Context, query *RentQuery) (*RentList, error)
	ListUserRents(ctx context.Context, userID uuid.UUID) ([]*entity.RentListing, error)
	UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, status entity.RentStatus) (*entity.RentListing, error)
	DeleteRent(ctx context.Context, actor Actor, id uuid.UUID) error

	// RentQRCode renders a PNG share code for the listing.
	RentQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}

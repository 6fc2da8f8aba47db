package usecase

import (
	"context"
	"time"

	"zeneasy/internal/domain/entity"

	"github.com/google/uuid"
)

// RentInput is the payload of a new rent listing.
type RentInput struct {
	Category         entity.RentCategory
	RentStartDate    time.Time
	Images           []string
	PaymentFrequency entity.PaymentFrequency
	Details          string
	Cost             float64
	AddressLine      string
	City             string
	PostalCode       string
	ContactInfo      string
	Latitude         *float64
	Longitude        *float64
}

// ServiceInput is the payload of a new service profile.
type ServiceInput struct {
	Category      entity.ServiceCategory
	ContactNumber string
	AddressLine   string
	ServiceAreas  []string
	Description   string
	MinimumPrice  float64
	MaximumPrice  float64
	AvailableDays []string
	AvailableTime entity.AvailableTime
	CoverImage    string
	Certificate   string
}

// RentLinkOutput is a created listing together with its updated owner.
type RentLinkOutput struct {
	Rent  *entity.RentListing
	Owner *entity.User
}

// ServiceLinkOutput is a created profile together with its updated owner.
type ServiceLinkOutput struct {
	Service *entity.ServiceProfile
	Owner   *entity.User
}

// LinkerUsecase creates child records and links them into their owner's lists.
// A missing owner leaves no child behind.
type LinkerUsecase interface {
	LinkRentListing(ctx context.Context, ownerID uuid.UUID, input *RentInput) (*RentLinkOutput, error)
	LinkServiceProfile(ctx context.Context, ownerID uuid.UUID, input *ServiceInput) (*ServiceLinkOutput, error)
}

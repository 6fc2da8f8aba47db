package entity

import (
	"time"

	"github.com/google/uuid"
)

// RentCategory is the kind of property offered by a rent listing.
type RentCategory string

const (
	RentCategoryFamilyHouse  RentCategory = "Family House"
	RentCategoryBachelorMess RentCategory = "Bachelor Mess"
	RentCategoryOffice       RentCategory = "Office"
	RentCategorySublet       RentCategory = "Sublet"
	RentCategoryShop         RentCategory = "Shop"
	RentCategoryGarage       RentCategory = "Garage"
)

// IsValid checks if the RentCategory is a valid value.
func (c RentCategory) IsValid() bool {
	switch c {
	case RentCategoryFamilyHouse, RentCategoryBachelorMess, RentCategoryOffice,
		RentCategorySublet, RentCategoryShop, RentCategoryGarage:
		return true
	default:
		return false
	}
}

// PaymentFrequency is how often rent is due.
type PaymentFrequency string

const (
	PaymentMonthly   PaymentFrequency = "Monthly"
	PaymentQuarterly PaymentFrequency = "Quarterly"
	PaymentYearly    PaymentFrequency = "Yearly"
)

// IsValid checks if the PaymentFrequency is a valid value.
func (f PaymentFrequency) IsValid() bool {
	switch f {
	case PaymentMonthly, PaymentQuarterly, PaymentYearly:
		return true
	default:
		return false
	}
}

// RentStatus tells whether a listing is still available.
type RentStatus string

const (
	RentStatusActive RentStatus = "Active"
	RentStatusBooked RentStatus = "Booked"
)

// IsValid checks if the RentStatus is a valid value.
func (s RentStatus) IsValid() bool {
	return s == RentStatusActive || s == RentStatusBooked
}

// RentListing is a property offered for rent by a user.
type RentListing struct {
	ID               uuid.UUID        `json:"id"`
	OwnerID          uuid.UUID        `json:"ownerId"`
	Category         RentCategory     `json:"category"`
	RentStartDate    time.Time        `json:"rentStartDate"`
	Images           []string         `json:"images"`
	PaymentFrequency PaymentFrequency `json:"paymentFrequency"`
	Details          string           `json:"details"`
	Cost             float64          `json:"cost"`
	AddressLine      string           `json:"address"`
	City             string           `json:"city"`
	PostalCode       string           `json:"postalCode"`
	ContactInfo      string           `json:"contactInfo"`
	Status           RentStatus       `json:"status"`
	Latitude         *float64         `json:"latitude,omitempty"`
	Longitude        *float64         `json:"longitude,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// HasLocation reports whether the listing carries coordinates.
func (r *RentListing) HasLocation() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// RentFilter narrows rent listing queries. Zero values are ignored.
type RentFilter struct {
	Category RentCategory
	City     string
	Status   RentStatus
	// Within keeps only located listings inside the box.
	Within *GeoBounds
}

// GeoBounds is a latitude/longitude box in degrees. MinLng greater than
// MaxLng means the box crosses the antimeridian.
type GeoBounds struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

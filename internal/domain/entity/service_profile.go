package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ServiceCategory is the kind of professional service offered.
type ServiceCategory string

const (
	ServiceCategoryMaid        ServiceCategory = "Maid"
	ServiceCategoryTutor       ServiceCategory = "Tutor"
	ServiceCategoryElectrician ServiceCategory = "Electrician"
	ServiceCategoryPlumber     ServiceCategory = "Plumber"
	ServiceCategoryCarpenter   ServiceCategory = "Carpenter"
	ServiceCategoryPainter     ServiceCategory = "Painter"
	ServiceCategoryDriver      ServiceCategory = "Driver"
)

// IsValid checks if the ServiceCategory is a valid value.
func (c ServiceCategory) IsValid() bool {
	switch c {
	case ServiceCategoryMaid, ServiceCategoryTutor, ServiceCategoryElectrician, ServiceCategoryPlumber,
		ServiceCategoryCarpenter, ServiceCategoryPainter, ServiceCategoryDriver:
		return true
	default:
		return false
	}
}

// AvailableTime is the part of the day a provider works.
type AvailableTime string

const (
	AvailableDay    AvailableTime = "day"
	AvailableNight  AvailableTime = "night"
	AvailableAlways AvailableTime = "always"
)

// IsValid checks if the AvailableTime is a valid value.
func (a AvailableTime) IsValid() bool {
	switch a {
	case AvailableDay, AvailableNight, AvailableAlways:
		return true
	default:
		return false
	}
}

// ApprovalState is the admin moderation gate of a service profile.
type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
	ApprovalRejected ApprovalState = "reject"
)

// IsValid checks if the ApprovalState is a valid value.
func (a ApprovalState) IsValid() bool {
	switch a {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}

// Rating is one client's score for a service profile.
type Rating struct {
	ClientID  uuid.UUID `json:"clientId"`
	Rating    int       `json:"rating"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"createdAt"`
}

// ServiceProfile is a professional service offered by a user.
type ServiceProfile struct {
	ID            uuid.UUID       `json:"id"`
	ProviderID    uuid.UUID       `json:"providerId"`
	Category      ServiceCategory `json:"category"`
	ContactNumber string          `json:"contactNumber"`
	AddressLine   string          `json:"address"`
	ServiceAreas  []string        `json:"serviceAreas"`
	Description   string          `json:"description"`
	MinimumPrice  float64         `json:"minimumPrice"`
	MaximumPrice  float64         `json:"maximumPrice"`
	AvailableDays []string        `json:"availableDays"`
	AvailableTime AvailableTime   `json:"availableTime"`
	CoverImage    string          `json:"coverImage,omitempty"`
	Certificate   string          `json:"certificate,omitempty"`
	Status        AccountStatus   `json:"status"`
	IsApproved    ApprovalState   `json:"isApproved"`
	Ratings       []Rating        `json:"ratings"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// IsPubliclyListed reports whether the profile may appear in public listings.
func (s *ServiceProfile) IsPubliclyListed() bool {
	return s.IsApproved == ApprovalApproved && s.Status == StatusActive
}

// RatingSummary is the derived view of a profile's ratings.
// Count distinguishes "unrated" from a genuine zero average.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// AverageRating returns sum/N rounded half-up to one decimal, or 0 when
// there are no ratings.
func AverageRating(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}

	return math.Floor(float64(sum)*10/float64(len(ratings))+0.5) / 10
}

// Summary computes the RatingSummary of the profile.
func (s *ServiceProfile) Summary() RatingSummary {
	return RatingSummary{
		Average: AverageRating(s.Ratings),
		Count:   len(s.Ratings),
	}
}

// ServiceFilter narrows service profile queries. Zero values are ignored.
type ServiceFilter struct {
	Category   ServiceCategory
	Approval   ApprovalState
	Status     AccountStatus
	ProviderID uuid.UUID
}

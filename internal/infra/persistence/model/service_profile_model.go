package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ServiceProfileModel mirrors the 'service_profiles' table.
type ServiceProfileModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProviderID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	Category      string         `gorm:"type:varchar(30);not null"`
	ContactNumber string         `gorm:"type:varchar(30);not null"`
	AddressLine   string         `gorm:"column:address;type:varchar(255);not null"`
	ServiceAreas  pq.StringArray `gorm:"type:text[]"`
	Description   string         `gorm:"type:text"`
	MinimumPrice  float64        `gorm:"type:numeric(12,2)"`
	MaximumPrice  float64        `gorm:"type:numeric(12,2)"`
	AvailableDays pq.StringArray `gorm:"type:text[]"`
	AvailableTime string         `gorm:"type:varchar(10);not null"`
	CoverImage    string         `gorm:"type:text"`
	Certificate   string         `gorm:"type:text"`
	Status        string         `gorm:"type:varchar(10);not null;default:active"`
	IsApproved    string         `gorm:"type:varchar(10);not null;default:pending"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Ratings []ServiceRatingModel `gorm:"foreignKey:ServiceProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceProfileModel) TableName() string {
	return "service_profiles"
}

// ServiceRatingModel mirrors the 'service_ratings' table. The storage CHECK
// constraint keeps Rating within 0..5.
type ServiceRatingModel struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	ServiceProfileID uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientID         uuid.UUID `gorm:"type:uuid;not null"`
	Rating           int       `gorm:"not null;check:rating >= 0 AND rating <= 5"`
	Feedback         string    `gorm:"type:text"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceRatingModel) TableName() string {
	return "service_ratings"
}

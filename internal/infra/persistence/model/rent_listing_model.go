package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RentListingModel mirrors the 'rent_listings' table.
type RentListingModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	Category         string         `gorm:"type:varchar(30);not null"`
	RentStartDate    time.Time      `gorm:"type:date;not null"`
	Images           pq.StringArray `gorm:"type:text[]"`
	PaymentFrequency string         `gorm:"type:varchar(20);not null"`
	Details          string         `gorm:"type:text"`
	Cost             float64        `gorm:"type:numeric(12,2);not null"`
	AddressLine      string         `gorm:"column:address;type:varchar(255);not null"`
	City             string         `gorm:"type:varchar(100);not null;index"`
	PostalCode       string         `gorm:"type:varchar(20)"`
	ContactInfo      string         `gorm:"type:varchar(255);not null"`
	Status           string         `gorm:"type:varchar(10);not null;default:Active"`
	Latitude         *float64
	Longitude        *float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RentListingModel) TableName() string {
	return "rent_listings"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name              string    `gorm:"type:varchar(100);not null"`
	AddressStreet     string    `gorm:"type:varchar(255)"`
	AddressCity       string    `gorm:"type:varchar(100)"`
	AddressPostalCode string    `gorm:"type:varchar(20)"`
	PhoneNumber       string    `gorm:"type:varchar(30)"`
	Email             string    `gorm:"type:varchar(255);not null;index"`
	DateOfBirth       time.Time `gorm:"type:date"`
	Gender            string    `gorm:"type:varchar(10);not null"`
	Nationality       string    `gorm:"type:varchar(100)"`
	Occupation        string    `gorm:"type:varchar(100)"`
	ProfileImage      string    `gorm:"type:text"`
	NID               string    `gorm:"column:nid;type:varchar(50)"`
	OTP               string    `gorm:"column:otp;type:varchar(6);not null;default:''"`
	OTPIssuedAt       *time.Time
	IsVerified        bool   `gorm:"not null;default:false"`
	Status            string `gorm:"type:varchar(10);not null;default:active"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

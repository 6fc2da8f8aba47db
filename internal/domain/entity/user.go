// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Gender is the self-declared gender of a user.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// AccountStatus is the moderation status shared by users and service profiles.
type AccountStatus string

const (
	StatusActive   AccountStatus = "active"
	StatusInactive AccountStatus = "inactive"
)

// IsValid checks if the AccountStatus is a valid value.
func (s AccountStatus) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// IsActive reports whether the status is active.
func (s AccountStatus) IsActive() bool {
	return s == StatusActive
}

// Address is a postal address embedded in a user record.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// User is a registered marketplace account.
// RentPosts and ProfessionalProfiles are read from the ownership index and
// are never written through the user record itself.
type User struct {
	ID                   uuid.UUID     `json:"id"`
	Name                 string        `json:"name"`
	Address              Address       `json:"address"`
	PhoneNumber          string        `json:"phoneNumber"`
	Email                string        `json:"email"`
	DateOfBirth          time.Time     `json:"dateOfBirth"`
	Gender               Gender        `json:"gender"`
	Nationality          string        `json:"nationality"`
	Occupation           string        `json:"occupation,omitempty"`
	ProfileImage         string        `json:"profileImage,omitempty"`
	NID                  string        `json:"nid,omitempty"`
	OTP                  string        `json:"-"`
	OTPIssuedAt          *time.Time    `json:"-"`
	IsVerified           bool          `json:"isVerified"`
	Status               AccountStatus `json:"status"`
	ProfessionalProfiles []uuid.UUID   `json:"professionalProfiles"`
	RentPosts            []uuid.UUID   `json:"rentPosts"`
	CreatedAt            time.Time     `json:"createdAt"`
	UpdatedAt            time.Time     `json:"updatedAt"`
}

// UserDetails holds the user-editable subset of a User.
// Nil fields are left unchanged.
type UserDetails struct {
	Name         *string
	Address      *Address
	PhoneNumber  *string
	DateOfBirth  *time.Time
	Gender       *Gender
	Nationality  *string
	Occupation   *string
	ProfileImage *string
	NID          *string
}

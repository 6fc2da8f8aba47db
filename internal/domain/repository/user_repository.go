// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"zeneasy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrOTPMismatch is returned when a conditional OTP consume matched no row.
var ErrOTPMismatch = errors.New("otp mismatch")

// UserRepository defines the standard operations for user persistence.
// Returned users carry RentPosts and ProfessionalProfiles populated from the ownership index.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves the oldest user registered with the email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns users ordered by creation time, newest first.
	List(ctx context.Context, offset, limit int) ([]*entity.User, int64, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateDetails applies the non-nil fields of details.
	UpdateDetails(ctx context.Context, id uuid.UUID, details *entity.UserDetails) error

	// UpdateStatus sets the account status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error

	// SetOTP overwrites the stored code and its issue time.
	SetOTP(ctx context.Context, id uuid.UUID, code string, issuedAt time.Time) error

	// ConsumeOTP clears the stored code and marks the user verified in a single
	// conditional update. It returns ErrOTPMismatch when the stored code is empty
	// or differs from code.
	ConsumeOTP(ctx context.Context, id uuid.UUID, code string) error

	// ClearExpiredOTPs clears codes issued before the cutoff and returns how many were cleared.
	ClearExpiredOTPs(ctx context.Context, cutoff time.Time) (int64, error)

	// Delete hard-deletes the user. Owned children and links are left in place.
	Delete(ctx context.Context, id uuid.UUID) error
}

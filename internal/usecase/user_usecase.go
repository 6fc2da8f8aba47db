// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"zeneasy/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name         string
	Address      entity.Address
	PhoneNumber  string
	Email        string
	DateOfBirth  time.Time
	Gender       entity.Gender
	Nationality  string
	Occupation   string
	ProfileImage string
	NID          string
}

// Page is an offset/limit window over a listing.
type Page struct {
	Offset int
	Limit  int
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// CanModify reports whether the actor may change a record owned by ownerID.
func (a Actor) CanModify(ownerID uuid.UUID) bool {
	return a.IsAdmin || (a.UserID != uuid.Nil && a.UserID == ownerID)
}

// --- Output DTOs ---

// UserList is one page of users.
type UserList struct {
	Users []*entity.User
	Total int64
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// Register creates an unverified, active user.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// GetUser returns the user with its ownership lists.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateUser applies details to the user. Only the user itself may do so.
	UpdateUser(ctx context.Context, actor Actor, id uuid.UUID, details *entity.UserDetails) (*entity.User, error)

	// ListUsers returns one page of users, newest first.
	ListUsers(ctx context.Context, page Page) (*UserList, error)

	// UpdateStatus activates or deactivates a user.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) (*entity.User, error)

	// DeleteUser hard-deletes a user. Owned listings and profiles remain.
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

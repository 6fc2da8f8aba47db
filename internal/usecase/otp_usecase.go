package usecase

import (
	"context"

	"zeneasy/internal/domain/entity"

	"github.com/google/uuid"
)

// VerifyOutput is returned by a successful code validation.
type VerifyOutput struct {
	User  *entity.User
	Token string
}

// OTPUsecase issues and validates one-time email verification codes.
type OTPUsecase interface {
	// Generate stores a fresh code for the user and emails it. The code is never returned.
	Generate(ctx context.Context, userID uuid.UUID) error

	// Validate consumes the stored code when it matches exactly and marks the user verified.
	Validate(ctx context.Context, userID uuid.UUID, code string) (*VerifyOutput, error)

	// SweepExpired clears codes older than the configured TTL.
	SweepExpired(ctx context.Context) (int64, error)
}

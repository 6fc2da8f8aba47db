package usecase

import (
	"context"

	"zeneasy/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRegistration is what a client reports about itself when it opts in to push.
type DeviceRegistration struct {
	FCMToken string
	DeviceID string
	Platform string
}

// DeviceUsecase is the push device registry of a user.
type DeviceUsecase interface {
	// Register binds the token to the user's device, reactivating it if needed.
	Register(ctx context.Context, userID uuid.UUID, reg DeviceRegistration) (*entity.UserDevice, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	// Deactivate stops pushes to a device; only its owner may do so.
	Deactivate(ctx context.Context, userID, deviceID uuid.UUID) error
}

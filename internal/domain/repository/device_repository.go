package repository

import (
	"context"

	"zeneasy/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when no device matches the lookup.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository stores the push targets of each user. A device is keyed by
// (UserID, DeviceID) and a push token is active for at most one device.
type DeviceRepository interface {
	// Upsert registers the device or, when the user already registered the
	// same DeviceID, refreshes its token and platform and reactivates it.
	// Other devices holding the same token are deactivated. device is filled
	// with the stored row.
	Upsert(ctx context.Context, device *entity.UserDevice) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// ListActiveByUser returns the user's active devices, newest first.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// Deactivate stops pushes to one device.
	Deactivate(ctx context.Context, id uuid.UUID) error

	// DeactivateByTokens deactivates every active device holding one of tokens
	// and reports how many were changed.
	DeactivateByTokens(ctx context.Context, tokens []string) (int64, error)
}

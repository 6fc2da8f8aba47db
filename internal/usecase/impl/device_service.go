package impl

import (
	"context"
	"log/slog"

	deliverycontext "zeneasy/internal/delivery/context"
	"zeneasy/internal/domain/entity"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates the push device registry.
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// Register binds a push token to the caller's device. Registering the same
// device again refreshes its token and reactivates it.
func (s *deviceService) Register(ctx context.Context, userID uuid.UUID, info usecase.DeviceRegistration) (*entity.UserDevice, error) {
	if !validPlatform(info.Platform) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("platform must be ios, android or web")
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: info.FCMToken,
		DeviceID: info.DeviceID,
		Platform: info.Platform,
		IsActive: true,
	}
	if err := s.deviceRepo.Upsert(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).Info("Device registered",
		slog.String("device_id", device.ID.String()),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

func (s *deviceService) ListActive(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

func (s *deviceService) Deactivate(ctx context.Context, userID, deviceID uuid.UUID) error {
	device, err := s.deviceRepo.FindByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound.WrapMessage("device not found")
		}

		return errors.Wrap(err, "failed to load device")
	}

	if device.UserID != userID {
		return domainerrors.ErrNotResourceOwner.WrapMessage("device belongs to another user")
	}

	if err := s.deviceRepo.Deactivate(ctx, deviceID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrDeviceNotFound.WrapMessage("device not found")
		}

		return errors.Wrap(err, "failed to deactivate device")
	}

	return nil
}

func validPlatform(platform string) bool {
	switch platform {
	case entity.PlatformIOS, entity.PlatformAndroid, entity.PlatformWeb:
		return true
	}

	return false
}

package postgres

import (
	"context"
	"time"

	"zeneasy/internal/domain/entity"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.UserDevice) error {
	now := time.Now()
	deviceM := &model.UserDeviceModel{
		UserID:   device.UserID,
		DeviceID: device.DeviceID,
		FCMToken: device.FCMToken,
		Platform: device.Platform,
		IsActive: true,
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// A reinstalled app or a second account on the same phone reuses the token.
		if err := tx.Model(&model.UserDeviceModel{}).
			Where("fcm_token = ? AND is_active AND NOT (user_id = ? AND device_id = ?)", device.FCMToken, device.UserID, device.DeviceID).
			Updates(map[string]any{"is_active": false, "updated_at": now}).Error; err != nil {
			return errors.Wrap(err, "failed to release push token")
		}

		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"fcm_token":  device.FCMToken,
				"platform":   device.Platform,
				"is_active":  true,
				"updated_at": now,
			}),
		}).Create(deviceM).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ? AND device_id = ?", device.UserID, device.DeviceID).
			First(deviceM).Error
	})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("device owner does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unsupported device platform")
		}

		return domainerrors.NewDatabaseError(err, "failed to register device")
	}

	*device = *toDeviceDomain(deviceM)

	return nil
}

func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return toDeviceDomain(&deviceM), nil
}

func (repo *deviceRepository) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active", userID).
		Order("updated_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.UserDevice, len(deviceModels))
	for i, deviceM := range deviceModels {
		devices[i] = toDeviceDomain(deviceM)
	}

	return devices, nil
}

func (repo *deviceRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ? AND is_active", tokens).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate devices by token")
	}

	return result.RowsAffected, nil
}

func toDeviceDomain(m *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        m.ID,
		UserID:    m.UserID,
		FCMToken:  m.FCMToken,
		DeviceID:  m.DeviceID,
		Platform:  m.Platform,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

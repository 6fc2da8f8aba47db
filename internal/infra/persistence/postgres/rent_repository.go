package postgres

import (
	"context"

	"zeneasy/internal/domain/entity"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rentRepository implements the repository.RentRepository interface.
type rentRepository struct {
	db *gorm.DB
}

// NewRentRepository is the constructor for rentRepository.
func NewRentRepository(db *gorm.DB) repository.RentRepository {
	return &rentRepository{
		db: db,
	}
}

// Create persists a new listing and fills its generated fields.
func (repo *rentRepository) Create(ctx context.Context, rent *entity.RentListing) error {
	rentM := fromRentDomain(rent)

	if err := repo.db.WithContext(ctx).Create(rentM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required rent information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rent field out of allowed values")
		}

		return domainerrors.NewDatabaseError(err, "failed to create rent listing")
	}

	rent.ID = rentM.ID
	rent.Status = entity.RentStatus(rentM.Status)
	rent.CreatedAt = rentM.CreatedAt
	rent.UpdatedAt = rentM.UpdatedAt

	return nil
}

// FindByID retrieves a listing by its ID.
func (repo *rentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RentListing, error) {
	var rentM model.RentListingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRentNotFound
		}

		return nil, errors.Wrap(err, "failed to find rent listing by id")
	}

	return toRentDomain(&rentM), nil
}

// FindByIDs retrieves listings in the order of ids, skipping missing ones.
func (repo *rentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.RentListing, error) {
	if len(ids) == 0 {
		return []*entity.RentListing{}, nil
	}

	var rentModels []*model.RentListingModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rent listings by ids")
	}

	byID := make(map[uuid.UUID]*model.RentListingModel, len(rentModels))
	for _, rentM := range rentModels {
		byID[rentM.ID] = rentM
	}

	rents := make([]*entity.RentListing, 0, len(rentModels))
	for _, id := range ids {
		if rentM, ok := byID[id]; ok {
			rents = append(rents, toRentDomain(rentM))
		}
	}

	return rents, nil
}

// List returns listings matching the filter, newest first.
func (repo *rentRepository) List(ctx context.Context, filter entity.RentFilter, offset, limit int) ([]*entity.RentListing, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.RentListingModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.City != "" {
		query = query.Where("LOWER(city) = LOWER(?)", filter.City)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if box := filter.Within; box != nil {
		query = query.Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat)
		if box.MinLng <= box.MaxLng {
			query = query.Where("longitude BETWEEN ? AND ?", box.MinLng, box.MaxLng)
		} else {
			query = query.Where("(longitude >= ? OR longitude <= ?)", box.MinLng, box.MaxLng)
		}
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count rent listings")
	}

	var rentModels []*model.RentListingModel
	if err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rentModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list rent listings")
	}

	rents := make([]*entity.RentListing, 0, len(rentModels))
	for _, rentM := range rentModels {
		rents = append(rents, toRentDomain(rentM))
	}

	return rents, total, nil
}

// UpdateStatus sets the availability status of a listing.
func (repo *rentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RentListingModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update rent status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRentNotFound
	}

	return nil
}

// Delete hard-deletes a listing.
func (repo *rentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RentListingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete rent listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRentDomain converts a GORM RentListingModel to a domain RentListing entity.
func toRentDomain(data *model.RentListingModel) *entity.RentListing {
	if data == nil {
		return nil
	}

	return &entity.RentListing{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		Category:         entity.RentCategory(data.Category),
		RentStartDate:    data.RentStartDate,
		Images:           nonNilStrings(data.Images),
		PaymentFrequency: entity.PaymentFrequency(data.PaymentFrequency),
		Details:          data.Details,
		Cost:             data.Cost,
		AddressLine:      data.AddressLine,
		City:             data.City,
		PostalCode:       data.PostalCode,
		ContactInfo:      data.ContactInfo,
		Status:           entity.RentStatus(data.Status),
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromRentDomain converts a domain RentListing entity to a GORM RentListingModel.
func fromRentDomain(data *entity.RentListing) *model.RentListingModel {
	if data == nil {
		return nil
	}

	status := string(data.Status)
	if status == "" {
		status = string(entity.RentStatusActive)
	}

	return &model.RentListingModel{
		ID:               data.ID,
		OwnerID:          data.OwnerID,
		Category:         string(data.Category),
		RentStartDate:    data.RentStartDate,
		Images:           pq.StringArray(data.Images),
		PaymentFrequency: string(data.PaymentFrequency),
		Details:          data.Details,
		Cost:             data.Cost,
		AddressLine:      data.AddressLine,
		City:             data.City,
		PostalCode:       data.PostalCode,
		ContactInfo:      data.ContactInfo,
		Status:           status,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

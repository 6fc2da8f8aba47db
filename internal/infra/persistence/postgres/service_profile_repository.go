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

// serviceProfileRepository implements the repository.ServiceProfileRepository interface.
type serviceProfileRepository struct {
	db *gorm.DB
}

// NewServiceProfileRepository is the constructor for serviceProfileRepository.
func NewServiceProfileRepository(db *gorm.DB) repository.ServiceProfileRepository {
	return &serviceProfileRepository{
		db: db,
	}
}

// Create persists a new profile and fills its generated fields.
func (repo *serviceProfileRepository) Create(ctx context.Context, profile *entity.ServiceProfile) error {
	profileM := fromServiceProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Omit("Ratings").Create(profileM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required service information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("service field out of allowed values")
		}

		return domainerrors.NewDatabaseError(err, "failed to create service profile")
	}

	profile.ID = profileM.ID
	profile.Status = entity.AccountStatus(profileM.Status)
	profile.IsApproved = entity.ApprovalState(profileM.IsApproved)
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt
	if profile.Ratings == nil {
		profile.Ratings = []entity.Rating{}
	}

	return nil
}

// FindByID retrieves a profile with its ratings in insertion order.
func (repo *serviceProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceProfile, error) {
	var profileM model.ServiceProfileModel

	if err := repo.withRatings(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service profile by id")
	}

	return toServiceProfileDomain(&profileM), nil
}

// FindByIDs retrieves profiles in the order of ids, skipping missing ones.
func (repo *serviceProfileRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.ServiceProfile, error) {
	if len(ids) == 0 {
		return []*entity.ServiceProfile{}, nil
	}

	var profileModels []*model.ServiceProfileModel
	if err := repo.withRatings(ctx).
		Where("id IN ?", ids).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find service profiles by ids")
	}

	byID := make(map[uuid.UUID]*model.ServiceProfileModel, len(profileModels))
	for _, profileM := range profileModels {
		byID[profileM.ID] = profileM
	}

	profiles := make([]*entity.ServiceProfile, 0, len(profileModels))
	for _, id := range ids {
		if profileM, ok := byID[id]; ok {
			profiles = append(profiles, toServiceProfileDomain(profileM))
		}
	}

	return profiles, nil
}

// List returns profiles matching the filter, newest first.
func (repo *serviceProfileRepository) List(ctx context.Context, filter entity.ServiceFilter, offset, limit int) ([]*entity.ServiceProfile, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ServiceProfileModel{})
	if filter.Category != "" {
		query = query.Where("category = ?", string(filter.Category))
	}
	if filter.Approval != "" {
		query = query.Where("is_approved = ?", string(filter.Approval))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.ProviderID != uuid.Nil {
		query = query.Where("provider_id = ?", filter.ProviderID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count service profiles")
	}

	var profileModels []*model.ServiceProfileModel
	if err := query.Session(&gorm.Session{}).
		Preload("Ratings", orderRatings).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&profileModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list service profiles")
	}

	profiles := make([]*entity.ServiceProfile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toServiceProfileDomain(profileM))
	}

	return profiles, total, nil
}

// UpdateApproval sets the moderation state.
func (repo *serviceProfileRepository) UpdateApproval(ctx context.Context, id uuid.UUID, state entity.ApprovalState) error {
	return repo.updateColumn(ctx, id, "is_approved", string(state))
}

// UpdateStatus sets the active/inactive status.
func (repo *serviceProfileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error {
	return repo.updateColumn(ctx, id, "status", string(status))
}

// Delete hard-deletes a profile. Ratings are removed by the cascading foreign key.
func (repo *serviceProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ServiceProfileModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete service profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// AppendRating appends a rating entry to the profile.
// The storage range check surfaces as ErrRatingOutOfRange.
func (repo *serviceProfileRepository) AppendRating(ctx context.Context, profileID uuid.UUID, rating *entity.Rating) error {
	ratingM := &model.ServiceRatingModel{
		ServiceProfileID: profileID,
		ClientID:         rating.ClientID,
		Rating:           rating.Rating,
		Feedback:         rating.Feedback,
	}

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return repository.ErrRatingOutOfRange
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrServiceNotFound
		}

		return errors.Wrap(err, "failed to append rating")
	}

	rating.CreatedAt = ratingM.CreatedAt

	return nil
}

// HasRatingFrom reports whether the client already rated the profile.
func (repo *serviceProfileRepository) HasRatingFrom(ctx context.Context, profileID, clientID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceRatingModel{}).
		Where("service_profile_id = ? AND client_id = ?", profileID, clientID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check existing rating")
	}

	return count > 0, nil
}

func (repo *serviceProfileRepository) withRatings(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Ratings", orderRatings)
}

func (repo *serviceProfileRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceProfileModel{}).
		Where("id = ?", id).
		Update(column, value)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update service profile %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

func orderRatings(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// --- Mapper Functions ---

// toServiceProfileDomain converts a GORM ServiceProfileModel to a domain ServiceProfile entity.
func toServiceProfileDomain(data *model.ServiceProfileModel) *entity.ServiceProfile {
	if data == nil {
		return nil
	}

	ratings := make([]entity.Rating, 0, len(data.Ratings))
	for _, ratingM := range data.Ratings {
		ratings = append(ratings, entity.Rating{
			ClientID:  ratingM.ClientID,
			Rating:    ratingM.Rating,
			Feedback:  ratingM.Feedback,
			CreatedAt: ratingM.CreatedAt,
		})
	}

	return &entity.ServiceProfile{
		ID:            data.ID,
		ProviderID:    data.ProviderID,
		Category:      entity.ServiceCategory(data.Category),
		ContactNumber: data.ContactNumber,
		AddressLine:   data.AddressLine,
		ServiceAreas:  nonNilStrings(data.ServiceAreas),
		Description:   data.Description,
		MinimumPrice:  data.MinimumPrice,
		MaximumPrice:  data.MaximumPrice,
		AvailableDays: nonNilStrings(data.AvailableDays),
		AvailableTime: entity.AvailableTime(data.AvailableTime),
		CoverImage:    data.CoverImage,
		Certificate:   data.Certificate,
		Status:        entity.AccountStatus(data.Status),
		IsApproved:    entity.ApprovalState(data.IsApproved),
		Ratings:       ratings,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromServiceProfileDomain converts a domain ServiceProfile entity to a GORM ServiceProfileModel.
// Ratings are written through AppendRating only.
func fromServiceProfileDomain(data *entity.ServiceProfile) *model.ServiceProfileModel {
	if data == nil {
		return nil
	}

	status := string(data.Status)
	if status == "" {
		status = string(entity.StatusActive)
	}
	approval := string(data.IsApproved)
	if approval == "" {
		approval = string(entity.ApprovalPending)
	}

	return &model.ServiceProfileModel{
		ID:            data.ID,
		ProviderID:    data.ProviderID,
		Category:      string(data.Category),
		ContactNumber: data.ContactNumber,
		AddressLine:   data.AddressLine,
		ServiceAreas:  pq.StringArray(data.ServiceAreas),
		Description:   data.Description,
		MinimumPrice:  data.MinimumPrice,
		MaximumPrice:  data.MaximumPrice,
		AvailableDays: pq.StringArray(data.AvailableDays),
		AvailableTime: string(data.AvailableTime),
		CoverImage:    data.CoverImage,
		Certificate:   data.Certificate,
		Status:        status,
		IsApproved:    approval,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func nonNilStrings(values pq.StringArray) []string {
	if values == nil {
		return []string{}
	}

	return []string(values)
}

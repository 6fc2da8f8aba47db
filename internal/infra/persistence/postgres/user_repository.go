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
	"gorm.io/plugin/dbresolver"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by ID from the primary, so a code set or
// consumed a moment ago is always visible.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return repo.withLinks(ctx, toUserDomain(&userM))
}

// FindByEmail retrieves the oldest user registered with the email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ?", email).
		Order("created_at ASC").
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return repo.withLinks(ctx, toUserDomain(&userM))
}

// List returns a page of users, newest first, with the total count.
func (repo *userRepository) List(ctx context.Context, offset, limit int) ([]*entity.User, int64, error) {
	var (
		userModels []*model.UserModel
		total      int64
	)

	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	ownerIDs := make([]uuid.UUID, 0, len(userModels))
	for _, userM := range userModels {
		ownerIDs = append(ownerIDs, userM.ID)
	}

	links, err := loadOwnerLinks(ctx, repo.db, ownerIDs)
	if err != nil {
		return nil, 0, err
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		user := toUserDomain(userM)
		links[user.ID].applyTo(user)
		users = append(users, user)
	}

	return users, total, nil
}

// Create persists a new user entity and fills its generated fields.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("user field out of allowed values")
		}

		return domainerrors.NewDatabaseError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.Status = entity.AccountStatus(userM.Status)
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	user.RentPosts = []uuid.UUID{}
	user.ProfessionalProfiles = []uuid.UUID{}

	return nil
}

// UpdateDetails applies the non-nil fields of details.
func (repo *userRepository) UpdateDetails(ctx context.Context, id uuid.UUID, details *entity.UserDetails) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(detailsToColumns(details))

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("user field out of allowed values")
		}

		return domainerrors.NewDatabaseError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateStatus sets the account status.
func (repo *userRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error {
	return repo.updateColumns(ctx, id, map[string]any{"status": string(status)}, "failed to update user status")
}

// SetOTP overwrites the stored code and its issue time.
func (repo *userRepository) SetOTP(ctx context.Context, id uuid.UUID, code string, issuedAt time.Time) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"otp":           code,
		"otp_issued_at": issuedAt,
	}, "failed to store otp")
}

// ConsumeOTP clears the code and marks the user verified only when the stored
// code is non-empty and equal to code. Comparison and clear happen in one statement.
func (repo *userRepository) ConsumeOTP(ctx context.Context, id uuid.UUID, code string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND otp = ? AND otp <> ''", id, code).
		Updates(map[string]any{
			"otp":         "",
			"is_verified": true,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to consume otp")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOTPMismatch
	}

	return nil
}

// ClearExpiredOTPs clears codes issued before the cutoff.
func (repo *userRepository) ClearExpiredOTPs(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("otp <> '' AND otp_issued_at < ?", cutoff).
		Update("otp", "")

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear expired otps")
	}

	return result.RowsAffected, nil
}

// Delete hard-deletes the user. Owned children and links are left in place.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any, msg string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		return errors.Wrap(result.Error, msg)
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) withLinks(ctx context.Context, user *entity.User) (*entity.User, error) {
	links, err := loadOwnerLinks(ctx, repo.db.Clauses(dbresolver.Write), []uuid.UUID{user.ID})
	if err != nil {
		return nil, err
	}

	links[user.ID].applyTo(user)

	return user, nil
}

func detailsToColumns(details *entity.UserDetails) map[string]any {
	columns := make(map[string]any)
	if details == nil {
		return columns
	}

	if details.Name != nil {
		columns["name"] = *details.Name
	}
	if details.Address != nil {
		columns["address_street"] = details.Address.Street
		columns["address_city"] = details.Address.City
		columns["address_postal_code"] = details.Address.PostalCode
	}
	if details.PhoneNumber != nil {
		columns["phone_number"] = *details.PhoneNumber
	}
	if details.DateOfBirth != nil {
		columns["date_of_birth"] = *details.DateOfBirth
	}
	if details.Gender != nil {
		columns["gender"] = string(*details.Gender)
	}
	if details.Nationality != nil {
		columns["nationality"] = *details.Nationality
	}
	if details.Occupation != nil {
		columns["occupation"] = *details.Occupation
	}
	if details.ProfileImage != nil {
		columns["profile_image"] = *details.ProfileImage
	}
	if details.NID != nil {
		columns["nid"] = *details.NID
	}

	return columns
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:   data.ID,
		Name: data.Name,
		Address: entity.Address{
			Street:     data.AddressStreet,
			City:       data.AddressCity,
			PostalCode: data.AddressPostalCode,
		},
		PhoneNumber:          data.PhoneNumber,
		Email:                data.Email,
		DateOfBirth:          data.DateOfBirth,
		Gender:               entity.Gender(data.Gender),
		Nationality:          data.Nationality,
		Occupation:           data.Occupation,
		ProfileImage:         data.ProfileImage,
		NID:                  data.NID,
		OTP:                  data.OTP,
		OTPIssuedAt:          data.OTPIssuedAt,
		IsVerified:           data.IsVerified,
		Status:               entity.AccountStatus(data.Status),
		ProfessionalProfiles: []uuid.UUID{},
		RentPosts:            []uuid.UUID{},
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
// Ownership lists are not part of the user row.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	status := string(data.Status)
	if status == "" {
		status = string(entity.StatusActive)
	}

	return &model.UserModel{
		ID:                data.ID,
		Name:              data.Name,
		AddressStreet:     data.Address.Street,
		AddressCity:       data.Address.City,
		AddressPostalCode: data.Address.PostalCode,
		PhoneNumber:       data.PhoneNumber,
		Email:             data.Email,
		DateOfBirth:       data.DateOfBirth,
		Gender:            string(data.Gender),
		Nationality:       data.Nationality,
		Occupation:        data.Occupation,
		ProfileImage:      data.ProfileImage,
		NID:               data.NID,
		OTP:               data.OTP,
		OTPIssuedAt:       data.OTPIssuedAt,
		IsVerified:        data.IsVerified,
		Status:            status,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

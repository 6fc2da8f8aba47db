package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "zeneasy/internal/delivery/context"
	"zeneasy/internal/domain/entity"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an unverified, active user. Email is not required to be unique.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	if !input.Gender.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("gender must be Male or Female")
	}

	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Address:      input.Address,
		PhoneNumber:  input.PhoneNumber,
		Email:        strings.TrimSpace(input.Email),
		DateOfBirth:  input.DateOfBirth,
		Gender:       input.Gender,
		Nationality:  input.Nationality,
		Occupation:   input.Occupation,
		ProfileImage: input.ProfileImage,
		NID:          input.NID,
		IsVerified:   false,
		Status:       entity.StatusActive,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to register user", slog.String("email", user.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", user.ID))

	return user, nil
}

// GetUser returns the user with its ownership lists.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserError(err, "failed to find user")
	}

	return user, nil
}

// UpdateUser applies details when the actor is the user itself.
func (srv *userService) UpdateUser(ctx context.Context, actor usecase.Actor, id uuid.UUID, details *entity.UserDetails) (*entity.User, error) {
	if actor.UserID != id {
		return nil, domainerrors.ErrNotResourceOwner.WrapMessage("users may only update their own profile")
	}

	if details.Gender != nil && !details.Gender.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("gender must be Male or Female")
	}

	if err := srv.userRepo.UpdateDetails(ctx, id, details); err != nil {
		return nil, mapUserError(err, "failed to update user")
	}

	return srv.GetUser(ctx, id)
}

// ListUsers returns one page of users, newest first.
func (srv *userService) ListUsers(ctx context.Context, page usecase.Page) (*usecase.UserList, error) {
	page = normalizePage(page)

	users, total, err := srv.userRepo.List(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.UserList{Users: users, Total: total}, nil
}

// UpdateStatus activates or deactivates a user.
func (srv *userService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) (*entity.User, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("status must be active or inactive")
	}

	if err := srv.userRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, mapUserError(err, "failed to update user status")
	}

	srv.log(ctx).Info("User status changed", slog.Any("userID", id), slog.String("status", string(status)))

	return srv.GetUser(ctx, id)
}

// DeleteUser hard-deletes a user. Owned listings and profiles remain.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return mapUserError(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}

func mapUserError(err error, msg string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound.WrapMessage(msg)
	}

	return errors.Wrap(err, msg)
}

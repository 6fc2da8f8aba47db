package impl

import (
	"context"
	"testing"

	"zeneasy/internal/domain/entity"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	mockRepo "zeneasy/internal/mocks/repository"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.RegisterUserInput
		mock    func(fx userServiceFixtures)
		wantErr error
	}{
		{
			name: "creates an unverified active user",
			input: &usecase.RegisterUserInput{
				Name:   "  Rahim Uddin ",
				Email:  "rahim@example.com ",
				Gender: entity.GenderMale,
			},
			mock: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().
					Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
						return u.Name == "Rahim Uddin" &&
							u.Email == "rahim@example.com" &&
							!u.IsVerified &&
							u.Status == entity.StatusActive
					})).
					RunAndReturn(func(_ context.Context, u *entity.User) error {
						u.ID = uuid.New()

						return nil
					})
			},
		},
		{
			name:    "rejects unknown gender",
			input:   &usecase.RegisterUserInput{Name: "X", Email: "x@example.com", Gender: "Other"},
			mock:    func(userServiceFixtures) {},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "surfaces repository failure",
			input: &usecase.RegisterUserInput{Name: "X", Email: "x@example.com", Gender: entity.GenderFemale},
			mock: func(fx userServiceFixtures) {
				fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))
			},
			wantErr: errors.New("failed to create user: db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			tt.mock(fx)

			user, err := fx.service.Register(context.Background(), tt.input)

			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, user.ID)
			case errors.Is(tt.wantErr, domainerrors.ErrValidationFailed):
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			default:
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUser(t *testing.T) {
	id := uuid.New()
	name := "New Name"

	t.Run("self update reloads the user", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		details := &entity.UserDetails{Name: &name}

		fx.userRepo.EXPECT().UpdateDetails(ctx, id, details).Return(nil)
		fx.userRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id, Name: name}, nil)

		user, err := fx.service.UpdateUser(ctx, usecase.Actor{UserID: id}, id, details)
		require.NoError(t, err)
		assert.Equal(t, name, user.Name)
	})

	t.Run("another user is rejected", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UpdateUser(context.Background(), usecase.Actor{UserID: uuid.New()}, id, &entity.UserDetails{Name: &name})
		assert.ErrorIs(t, err, domainerrors.ErrNotResourceOwner)
	})

	t.Run("invalid gender is rejected", func(t *testing.T) {
		fx := createTestUserService(t)
		gender := entity.Gender("Unknown")

		_, err := fx.service.UpdateUser(context.Background(), usecase.Actor{UserID: id}, id, &entity.UserDetails{Gender: &gender})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestUserService_ListUsers_ClampsPage(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	users := []*entity.User{{ID: uuid.New()}}

	fx.userRepo.EXPECT().List(ctx, 0, maxPageLimit).Return(users, int64(1), nil)

	list, err := fx.service.ListUsers(ctx, usecase.Page{Offset: -5, Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
	assert.Len(t, list.Users, 1)
}

func TestUserService_UpdateStatus(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().UpdateStatus(ctx, id, entity.StatusInactive).Return(nil)
	fx.userRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id, Status: entity.StatusInactive}, nil)

	user, err := fx.service.UpdateStatus(ctx, id, entity.StatusInactive)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInactive, user.Status)

	_, err = fx.service.UpdateStatus(ctx, id, "banned")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.userRepo.EXPECT().Delete(ctx, id).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

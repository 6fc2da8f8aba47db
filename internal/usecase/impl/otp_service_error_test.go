package impl

import (
	"context"
	"testing"

	"zeneasy/internal/domain/entity"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/domain/service"
	mockRepo "zeneasy/internal/mocks/repository"
	mockSvc "zeneasy/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOTPService_Generate_UserNotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	fx := createTestOTPService(t, userRepo, metrics)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	metrics.EXPECT().OTPIssued(service.OutcomeFailure).Return()

	err := fx.service.Generate(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestOTPService_Generate_EmailFailureKeepsCode(t *testing.T) {
	repo := mockRepo.NewFakeUserRepository()
	fx := createTestOTPService(t, repo, nopMetrics{})
	permissiveLimiter(fx.limiter)

	ctx := context.Background()
	user := registerFakeUser(t, repo)

	fx.generator.EXPECT().Generate().Return("314159", nil)
	fx.emailSender.EXPECT().Send(ctx, mock.Anything).Return(errors.New("smtp: connection refused"))

	err := fx.service.Generate(ctx, user.ID)
	assert.ErrorIs(t, err, domainerrors.ErrEmailDeliveryFailed)
	assert.Equal(t, "314159", repo.StoredOTP(user.ID))
}

func TestOTPService_Generate_GeneratorFailure(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	fx := createTestOTPService(t, userRepo, nopMetrics{})

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.generator.EXPECT().Generate().Return("", errors.New("entropy exhausted"))

	err := fx.service.Generate(ctx, user.ID)
	assert.Error(t, err)
}

func TestOTPService_Validate_Blocked(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	fx := createTestOTPService(t, userRepo, metrics)

	ctx := context.Background()
	userID := uuid.New()

	fx.limiter.EXPECT().Blocked(ctx, userID.String()).Return(true, nil)
	metrics.EXPECT().OTPValidated(service.OutcomeBlocked).Return()

	_, err := fx.service.Validate(ctx, userID, "123456")
	assert.ErrorIs(t, err, domainerrors.ErrOTPAttemptsExceeded)
}

func TestOTPService_Validate_UserNotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	fx := createTestOTPService(t, userRepo, nopMetrics{})

	ctx := context.Background()
	userID := uuid.New()

	fx.limiter.EXPECT().Blocked(ctx, userID.String()).Return(false, nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Validate(ctx, userID, "123456")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestOTPService_Validate_LimiterError(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	fx := createTestOTPService(t, userRepo, nopMetrics{})

	ctx := context.Background()
	userID := uuid.New()

	fx.limiter.EXPECT().Blocked(ctx, userID.String()).Return(false, errors.New("redis down"))

	_, err := fx.service.Validate(ctx, userID, "123456")
	assert.Error(t, err)
}

package impl

import (
	"context"
	"testing"

	"zeneasy/internal/domain/constants"
	"zeneasy/internal/domain/entity"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/domain/service"
	mockRepo "zeneasy/internal/mocks/repository"
	mockSvc "zeneasy/internal/mocks/service"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceProfileFixtures struct {
	service     usecase.ServiceUsecase
	serviceRepo *mockRepo.MockServiceProfileRepository
	linkRepo    *mockRepo.MockOwnerLinkRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestServiceProfileService(t *testing.T) serviceProfileFixtures {
	fixtures := serviceProfileFixtures{
		serviceRepo: mockRepo.NewMockServiceProfileRepository(t),
		linkRepo:    mockRepo.NewMockOwnerLinkRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	fixtures.service = NewServiceProfileService(ServiceProfileServiceParams{
		ServiceRepo: fixtures.serviceRepo,
		LinkRepo:    fixtures.linkRepo,
		Publisher:   fixtures.publisher,
		Logger:      newDiscardLogger(),
	})

	return fixtures
}

func TestServiceProfileService_ListPublic_OnlyApprovedActive(t *testing.T) {
	fx := createTestServiceProfileService(t)

	ctx := context.Background()
	want := entity.ServiceFilter{
		Category: entity.ServiceCategoryPlumber,
		Approval: entity.ApprovalApproved,
		Status:   entity.StatusActive,
	}

	fx.serviceRepo.EXPECT().List(ctx, want, 20, 10).Return([]*entity.ServiceProfile{}, int64(0), nil)

	list, err := fx.service.ListPublic(ctx, entity.ServiceCategoryPlumber, usecase.Page{Offset: 20, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, list.Services)
}

func TestServiceProfileService_ListAll_RejectsUnknownApproval(t *testing.T) {
	fx := createTestServiceProfileService(t)

	_, err := fx.service.ListAll(context.Background(), entity.ServiceFilter{Approval: "maybe"}, usecase.Page{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestServiceProfileService_UpdateApproval_PublishesModeration(t *testing.T) {
	fx := createTestServiceProfileService(t)

	ctx := context.Background()
	profile := &entity.ServiceProfile{
		ID:         uuid.New(),
		ProviderID: uuid.New(),
		Category:   entity.ServiceCategoryMaid,
		IsApproved: entity.ApprovalApproved,
	}

	fx.serviceRepo.EXPECT().UpdateApproval(ctx, profile.ID, entity.ApprovalApproved).Return(nil)
	fx.serviceRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == constants.EventServiceModerated && event.OwnerID == profile.ProviderID.String()
		})).
		Return(nil)

	updated, err := fx.service.UpdateApproval(ctx, profile.ID, entity.ApprovalApproved)
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalApproved, updated.IsApproved)
}

func TestServiceProfileService_UpdateApproval_NotFound(t *testing.T) {
	fx := createTestServiceProfileService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.serviceRepo.EXPECT().UpdateApproval(ctx, id, entity.ApprovalRejected).Return(repository.ErrServiceNotFound)

	_, err := fx.service.UpdateApproval(ctx, id, entity.ApprovalRejected)
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestServiceProfileService_ListUserServices_NoLinks(t *testing.T) {
	fx := createTestServiceProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.linkRepo.EXPECT().ChildIDs(ctx, userID, entity.OwnerLinkService).Return(nil, nil)

	profiles, err := fx.service.ListUserServices(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

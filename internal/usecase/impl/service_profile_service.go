package impl

import (
	"context"
	"log/slog"

	deliverycontext "zeneasy/internal/delivery/context"
	"zeneasy/internal/domain/constants"
	"zeneasy/internal/domain/entity"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/domain/service"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type serviceProfileService struct {
	serviceRepo repository.ServiceProfileRepository
	linkRepo    repository.OwnerLinkRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// ServiceProfileServiceParams holds dependencies for the service profile service, injected by Fx.
type ServiceProfileServiceParams struct {
	fx.In

	ServiceRepo repository.ServiceProfileRepository
	LinkRepo    repository.OwnerLinkRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewServiceProfileService is the constructor for serviceProfileService.
func NewServiceProfileService(params ServiceProfileServiceParams) usecase.ServiceUsecase {
	return &serviceProfileService{
		serviceRepo: params.ServiceRepo,
		linkRepo:    params.LinkRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *serviceProfileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetService returns one profile with its ratings.
func (srv *serviceProfileService) GetService(ctx context.Context, id uuid.UUID) (*entity.ServiceProfile, error) {
	profile, err := srv.serviceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapServiceError(err, "failed to find service profile")
	}

	return profile, nil
}

// ListPublic returns approved, active profiles only.
func (srv *serviceProfileService) ListPublic(ctx context.Context, category entity.ServiceCategory, page usecase.Page) (*usecase.ServiceList, error) {
	return srv.ListAll(ctx, entity.ServiceFilter{
		Category: category,
		Approval: entity.ApprovalApproved,
		Status:   entity.StatusActive,
	}, page)
}

// ListAll returns profiles matching the filter regardless of moderation state.
func (srv *serviceProfileService) ListAll(ctx context.Context, filter entity.ServiceFilter, page usecase.Page) (*usecase.ServiceList, error) {
	if filter.Approval != "" && !filter.Approval.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown approval state")
	}

	page = normalizePage(page)

	profiles, total, err := srv.serviceRepo.List(ctx, filter, page.Offset, page.Limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list service profiles")
	}

	return &usecase.ServiceList{Services: profiles, Total: total}, nil
}

// ListUserServices returns the provider's profiles in the order they were linked.
func (srv *serviceProfileService) ListUserServices(ctx context.Context, userID uuid.UUID) ([]*entity.ServiceProfile, error) {
	ids, err := srv.linkRepo.ChildIDs(ctx, userID, entity.OwnerLinkService)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load owner service links")
	}

	if len(ids) == 0 {
		return []*entity.ServiceProfile{}, nil
	}

	profiles, err := srv.serviceRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load owner service profiles")
	}

	return profiles, nil
}

// UpdateApproval moderates a profile and notifies its provider.
func (srv *serviceProfileService) UpdateApproval(ctx context.Context, id uuid.UUID, state entity.ApprovalState) (*entity.ServiceProfile, error) {
	if !state.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("approval must be pending, approved or reject")
	}

	if err := srv.serviceRepo.UpdateApproval(ctx, id, state); err != nil {
		return nil, mapServiceError(err, "failed to update approval")
	}

	profile, err := srv.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Service profile moderated", slog.Any("serviceID", id), slog.String("approval", string(state)))

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.DomainEvent{
		Type:        constants.EventServiceModerated,
		AggregateID: profile.ID.String(),
		OwnerID:     profile.ProviderID.String(),
		Title:       "Service review update",
		Body:        "Your " + string(profile.Category) + " service is now " + string(state) + ".",
	})

	return profile, nil
}

// DeleteService removes a profile and its ratings. The provider's list is left untouched.
func (srv *serviceProfileService) DeleteService(ctx context.Context, id uuid.UUID) error {
	if err := srv.serviceRepo.Delete(ctx, id); err != nil {
		return mapServiceError(err, "failed to delete service profile")
	}

	srv.log(ctx).Info("Service profile deleted", slog.Any("serviceID", id))

	return nil
}

func mapServiceError(err error, msg string) error {
	if errors.Is(err, repository.ErrServiceNotFound) {
		return domainerrors.ErrServiceNotFound.WrapMessage(msg)
	}

	return errors.Wrap(err, msg)
}

package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "zeneasy/internal/delivery/context"
	"zeneasy/internal/domain/constants"
	"zeneasy/internal/domain/entity"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/domain/service"
	"zeneasy/internal/errors"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// linkerService creates children and links them into their owner's lists.
type linkerService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// LinkerServiceParams holds dependencies for the linker, injected by Fx.
type LinkerServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewLinkerService is the constructor for linkerService.
func NewLinkerService(params LinkerServiceParams) usecase.LinkerUsecase {
	return &linkerService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *linkerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LinkRentListing creates the listing, then links it to the owner. When the
// owner does not exist the listing is deleted again and ErrOwnerNotFound is returned.
func (srv *linkerService) LinkRentListing(ctx context.Context, ownerID uuid.UUID, input *usecase.RentInput) (*usecase.RentLinkOutput, error) {
	if err := validateRentInput(input); err != nil {
		return nil, err
	}

	rent := &entity.RentListing{
		OwnerID:          ownerID,
		Category:         input.Category,
		RentStartDate:    input.RentStartDate,
		Images:           input.Images,
		PaymentFrequency: input.PaymentFrequency,
		Details:          input.Details,
		Cost:             input.Cost,
		AddressLine:      input.AddressLine,
		City:             strings.TrimSpace(input.City),
		PostalCode:       input.PostalCode,
		ContactInfo:      input.ContactInfo,
		Status:           entity.RentStatusActive,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
	}

	var owner *entity.User
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		rentRepo := factory.NewRentRepository()

		if err := rentRepo.Create(ctx, rent); err != nil {
			return errors.Wrap(err, "failed to create rent listing")
		}

		var err error
		owner, err = srv.linkChild(ctx, factory, ownerID, entity.OwnerLinkRent, rent.ID, func() error {
			return rentRepo.Delete(ctx, rent.ID)
		})

		return err
	})
	if err != nil {
		srv.metrics.LinkCompleted(entity.OwnerLinkRent.String(), service.OutcomeFailure)
		srv.log(ctx).Warn("Rent listing was not linked", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.LinkCompleted(entity.OwnerLinkRent.String(), service.OutcomeSuccess)
	srv.log(ctx).Info("Rent listing linked", slog.Any("ownerID", ownerID), slog.Any("rentID", rent.ID))

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.DomainEvent{
		Type:        constants.EventRentCreated,
		AggregateID: rent.ID.String(),
		OwnerID:     ownerID.String(),
		Title:       "Listing published",
		Body:        "Your " + string(rent.Category) + " listing in " + rent.City + " is live.",
	})

	return &usecase.RentLinkOutput{Rent: rent, Owner: owner}, nil
}

// LinkServiceProfile mirrors LinkRentListing for service profiles.
func (srv *linkerService) LinkServiceProfile(ctx context.Context, ownerID uuid.UUID, input *usecase.ServiceInput) (*usecase.ServiceLinkOutput, error) {
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	profile := &entity.ServiceProfile{
		ProviderID:    ownerID,
		Category:      input.Category,
		ContactNumber: input.ContactNumber,
		AddressLine:   input.AddressLine,
		ServiceAreas:  input.ServiceAreas,
		Description:   input.Description,
		MinimumPrice:  input.MinimumPrice,
		MaximumPrice:  input.MaximumPrice,
		AvailableDays: input.AvailableDays,
		AvailableTime: input.AvailableTime,
		CoverImage:    input.CoverImage,
		Certificate:   input.Certificate,
		Status:        entity.StatusActive,
		IsApproved:    entity.ApprovalPending,
		Ratings:       []entity.Rating{},
	}

	var owner *entity.User
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		serviceRepo := factory.NewServiceProfileRepository()

		if err := serviceRepo.Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create service profile")
		}

		var err error
		owner, err = srv.linkChild(ctx, factory, ownerID, entity.OwnerLinkService, profile.ID, func() error {
			return serviceRepo.Delete(ctx, profile.ID)
		})

		return err
	})
	if err != nil {
		srv.metrics.LinkCompleted(entity.OwnerLinkService.String(), service.OutcomeFailure)
		srv.log(ctx).Warn("Service profile was not linked", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.LinkCompleted(entity.OwnerLinkService.String(), service.OutcomeSuccess)
	srv.log(ctx).Info("Service profile linked", slog.Any("ownerID", ownerID), slog.Any("serviceID", profile.ID))

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.DomainEvent{
		Type:        constants.EventServiceCreated,
		AggregateID: profile.ID.String(),
		OwnerID:     ownerID.String(),
		Title:       "Service submitted",
		Body:        "Your " + string(profile.Category) + " service is awaiting approval.",
	})

	return &usecase.ServiceLinkOutput{Service: profile, Owner: owner}, nil
}

// linkChild checks the owner exists and appends childID to its list. A missing
// owner runs compensate before failing.
func (srv *linkerService) linkChild(
	ctx context.Context,
	factory repository.RepositoryFactory,
	ownerID uuid.UUID,
	kind entity.OwnerLinkKind,
	childID uuid.UUID,
	compensate func() error,
) (*entity.User, error) {
	userRepo := factory.NewUserRepository()

	_, err := userRepo.FindByID(ctx, ownerID)
	if errors.Is(err, repository.ErrUserNotFound) {
		if cerr := compensate(); cerr != nil {
			srv.log(ctx).Error("Compensating delete failed", slog.String("kind", kind.String()), slog.Any("childID", childID), slog.Any("error", cerr))

			return nil, errors.Join(domainerrors.ErrOwnerNotFound, cerr)
		}

		return nil, domainerrors.ErrOwnerNotFound.WrapMessage("owner " + ownerID.String() + " does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up owner")
	}

	if err := factory.NewOwnerLinkRepository().Append(ctx, ownerID, kind, childID); err != nil {
		return nil, errors.Wrap(err, "failed to link child to owner")
	}

	owner, err := userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload owner")
	}

	return owner, nil
}

func validateRentInput(input *usecase.RentInput) error {
	switch {
	case !input.Category.IsValid():
		return domainerrors.ErrValidationFailed.WrapMessage("unknown rent category")
	case !input.PaymentFrequency.IsValid():
		return domainerrors.ErrValidationFailed.WrapMessage("unknown payment frequency")
	case input.Cost < 0:
		return domainerrors.ErrValidationFailed.WrapMessage("cost must not be negative")
	case (input.Latitude == nil) != (input.Longitude == nil):
		return domainerrors.ErrValidationFailed.WrapMessage("latitude and longitude must be given together")
	}

	return nil
}

func validateServiceInput(input *usecase.ServiceInput) error {
	switch {
	case !input.Category.IsValid():
		return domainerrors.ErrValidationFailed.WrapMessage("unknown service category")
	case !input.AvailableTime.IsValid():
		return domainerrors.ErrValidationFailed.WrapMessage("available time must be day, night or always")
	case strings.TrimSpace(input.Certificate) == "":
		return domainerrors.ErrValidationFailed.WrapMessage("a certificate is required to offer a service")
	}

	return nil
}

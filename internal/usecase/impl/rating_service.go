package impl

import (
	"context"
	"fmt"
	"log/slog"

	"zeneasy/config"
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

type ratingService struct {
	serviceRepo    repository.ServiceProfileRepository
	publisher      service.EventPublisher
	metrics        service.MetricsRecorder
	dedupPerClient bool
	logger         *slog.Logger
}

// RatingServiceParams holds dependencies for the rating service, injected by Fx.
type RatingServiceParams struct {
	fx.In

	ServiceRepo repository.ServiceProfileRepository
	Publisher   service.EventPublisher
	Metrics     service.MetricsRecorder
	Config      *config.Config
	Logger      *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	srv := &ratingService{
		serviceRepo: params.ServiceRepo,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}

	if params.Config.Rating != nil {
		srv.dedupPerClient = params.Config.Rating.DedupPerClient
	}

	return srv
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AppendRating appends the rating to an existing profile. The value range is
// enforced by storage, not here.
func (srv *ratingService) AppendRating(ctx context.Context, profileID uuid.UUID, input *usecase.RatingInput) (*entity.RatingSummary, error) {
	profile, err := srv.serviceRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, mapServiceError(err, "cannot rate unknown service profile")
	}

	if srv.dedupPerClient {
		rated, err := srv.serviceRepo.HasRatingFrom(ctx, profileID, input.ClientID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check previous ratings")
		}
		if rated {
			return nil, domainerrors.ErrRatingDuplicate.WrapMessage("one rating per client")
		}
	}

	rating := &entity.Rating{
		ClientID: input.ClientID,
		Rating:   input.Rating,
		Feedback: input.Feedback,
	}

	if err := srv.serviceRepo.AppendRating(ctx, profileID, rating); err != nil {
		if errors.Is(err, repository.ErrRatingOutOfRange) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 0 and 5")
		}

		return nil, mapServiceError(err, "failed to append rating")
	}

	srv.metrics.RatingAppended()

	summary := entity.RatingSummary{
		Average: entity.AverageRating(append(profile.Ratings, *rating)),
		Count:   len(profile.Ratings) + 1,
	}

	srv.log(ctx).Info("Rating appended",
		slog.Any("serviceID", profileID),
		slog.Int("rating", rating.Rating),
		slog.Float64("average", summary.Average),
	)

	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.DomainEvent{
		Type:        constants.EventRatingAppended,
		AggregateID: profileID.String(),
		OwnerID:     profile.ProviderID.String(),
		Title:       "New rating",
		Body:        fmt.Sprintf("Your %s service received %d/5.", profile.Category, rating.Rating),
	})

	return &summary, nil
}

// Summary returns the average and count of the profile's ratings.
func (srv *ratingService) Summary(ctx context.Context, profileID uuid.UUID) (*entity.RatingSummary, error) {
	profile, err := srv.serviceRepo.FindByID(ctx, profileID)
	if err != nil {
		return nil, mapServiceError(err, "failed to load ratings")
	}

	summary := profile.Summary()

	return &summary, nil
}

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

type ratingServiceFixtures struct {
	service     usecase.RatingUsecase
	serviceRepo *mockRepo.MockServiceProfileRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestRatingService(t *testing.T, dedup bool) ratingServiceFixtures {
	cfg := newTestConfig()
	cfg.Rating.DedupPerClient = dedup

	fixtures := ratingServiceFixtures{
		serviceRepo: mockRepo.NewMockServiceProfileRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	fixtures.service = NewRatingService(RatingServiceParams{
		ServiceRepo: fixtures.serviceRepo,
		Publisher:   fixtures.publisher,
		Metrics:     nopMetrics{},
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})

	return fixtures
}

func ratingsOf(values ...int) []entity.Rating {
	ratings := make([]entity.Rating, 0, len(values))
	for _, v := range values {
		ratings = append(ratings, entity.Rating{ClientID: uuid.New(), Rating: v})
	}

	return ratings
}

func TestRatingService_Summary(t *testing.T) {
	tests := []struct {
		name    string
		ratings []entity.Rating
		want    entity.RatingSummary
	}{
		{name: "no ratings", ratings: nil, want: entity.RatingSummary{Average: 0, Count: 0}},
		{name: "five ratings", ratings: ratingsOf(5, 5, 5, 4, 3), want: entity.RatingSummary{Average: 4.4, Count: 5}},
		{name: "half rounds up", ratings: ratingsOf(4, 5, 5, 5), want: entity.RatingSummary{Average: 4.8, Count: 4}},
		{name: "genuine zero", ratings: ratingsOf(0, 0), want: entity.RatingSummary{Average: 0, Count: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRatingService(t, false)
			ctx := context.Background()
			id := uuid.New()

			fx.serviceRepo.EXPECT().FindByID(ctx, id).Return(&entity.ServiceProfile{ID: id, Ratings: tt.ratings}, nil)

			summary, err := fx.service.Summary(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *summary)
		})
	}
}

func TestRatingService_AppendRating_Success(t *testing.T) {
	fx := createTestRatingService(t, false)

	ctx := context.Background()
	providerID := uuid.New()
	profile := &entity.ServiceProfile{
		ID:         uuid.New(),
		ProviderID: providerID,
		Category:   entity.ServiceCategoryTutor,
		Ratings:    ratingsOf(5, 5, 5, 4),
	}
	clientID := uuid.New()

	fx.serviceRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.serviceRepo.EXPECT().
		AppendRating(ctx, profile.ID, mock.MatchedBy(func(r *entity.Rating) bool {
			return r.ClientID == clientID && r.Rating == 3 && r.Feedback == "late"
		})).
		Return(nil)
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Type == constants.EventRatingAppended && event.OwnerID == providerID.String()
		})).
		Return(nil)

	summary, err := fx.service.AppendRating(ctx, profile.ID, &usecase.RatingInput{ClientID: clientID, Rating: 3, Feedback: "late"})
	require.NoError(t, err)
	assert.Equal(t, entity.RatingSummary{Average: 4.4, Count: 5}, *summary)
}

func TestRatingService_AppendRating_OutOfRange(t *testing.T) {
	fx := createTestRatingService(t, false)

	ctx := context.Background()
	id := uuid.New()

	fx.serviceRepo.EXPECT().FindByID(ctx, id).Return(&entity.ServiceProfile{ID: id}, nil)
	fx.serviceRepo.EXPECT().AppendRating(ctx, id, mock.Anything).Return(repository.ErrRatingOutOfRange)

	_, err := fx.service.AppendRating(ctx, id, &usecase.RatingInput{ClientID: uuid.New(), Rating: 6})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRatingService_AppendRating_ProfileMissing(t *testing.T) {
	fx := createTestRatingService(t, false)

	ctx := context.Background()
	id := uuid.New()

	fx.serviceRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrServiceNotFound)

	_, err := fx.service.AppendRating(ctx, id, &usecase.RatingInput{ClientID: uuid.New(), Rating: 4})
	assert.ErrorIs(t, err, domainerrors.ErrServiceNotFound)
}

func TestRatingService_AppendRating_Dedup(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	clientID := uuid.New()

	t.Run("enabled rejects a second rating", func(t *testing.T) {
		fx := createTestRatingService(t, true)

		fx.serviceRepo.EXPECT().FindByID(ctx, id).Return(&entity.ServiceProfile{ID: id}, nil)
		fx.serviceRepo.EXPECT().HasRatingFrom(ctx, id, clientID).Return(true, nil)

		_, err := fx.service.AppendRating(ctx, id, &usecase.RatingInput{ClientID: clientID, Rating: 4})
		assert.ErrorIs(t, err, domainerrors.ErrRatingDuplicate)
	})

	t.Run("disabled never checks", func(t *testing.T) {
		fx := createTestRatingService(t, false)

		fx.serviceRepo.EXPECT().FindByID(ctx, id).Return(&entity.ServiceProfile{ID: id, Ratings: ratingsOf(4)}, nil)
		fx.serviceRepo.EXPECT().AppendRating(ctx, id, mock.Anything).Return(nil)
		fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

		summary, err := fx.service.AppendRating(ctx, id, &usecase.RatingInput{ClientID: clientID, Rating: 4})
		require.NoError(t, err)
		assert.Equal(t, 2, summary.Count)
		fx.serviceRepo.AssertNotCalled(t, "HasRatingFrom", mock.Anything, mock.Anything, mock.Anything)
	})
}

package impl

import (
	"context"
	"testing"

	"zeneasy/internal/domain/entity"
	domainerrors "zeneasy/internal/domain/errors"
	"zeneasy/internal/domain/repository"
	mockRepo "zeneasy/internal/mocks/repository"
	mockSvc "zeneasy/internal/mocks/service"
	"zeneasy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rentServiceFixtures struct {
	service  usecase.RentUsecase
	rentRepo *mockRepo.MockRentRepository
	linkRepo *mockRepo.MockOwnerLinkRepository
	qrCode   *mockSvc.MockQRCodeService
}

func createTestRentService(t *testing.T) rentServiceFixtures {
	fixtures := rentServiceFixtures{
		rentRepo: mockRepo.NewMockRentRepository(t),
		linkRepo: mockRepo.NewMockOwnerLinkRepository(t),
		qrCode:   mockSvc.NewMockQRCodeService(t),
	}

	fixtures.service = NewRentService(RentServiceParams{
		RentRepo: fixtures.rentRepo,
		LinkRepo: fixtures.linkRepo,
		QRCode:   fixtures.qrCode,
		Logger:   newDiscardLogger(),
	})

	return fixtures
}

func locatedRent(lat, lng float64) *entity.RentListing {
	return &entity.RentListing{ID: uuid.New(), Latitude: &lat, Longitude: &lng}
}

func TestRentService_ListRents_Plain(t *testing.T) {
	fx := createTestRentService(t)

	ctx := context.Background()
	filter := entity.RentFilter{City: "Dhaka"}
	rents := []*entity.RentListing{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.rentRepo.EXPECT().List(ctx, filter, 0, defaultPageLimit).Return(rents, int64(7), nil)

	list, err := fx.service.ListRents(ctx, &usecase.RentQuery{Filter: filter})
	require.NoError(t, err)
	assert.Equal(t, int64(7), list.Total)
	require.Len(t, list.Rents, 2)
	assert.Nil(t, list.Rents[0].DistanceKm)
}

func TestRentService_ListRents_Nearby(t *testing.T) {
	fx := createTestRentService(t)

	ctx := context.Background()
	// Distances from Dhanmondi: Motijheel about 4.6 km, Gulshan about 6.2 km, Chattogram over 200 km.
	gulshan := locatedRent(23.7925, 90.4078)
	motijheel := locatedRent(23.7330, 90.4172)
	chattogram := locatedRent(22.3569, 91.7832)
	unlocated := &entity.RentListing{ID: uuid.New()}

	near := &usecase.GeoQuery{Latitude: 23.7461, Longitude: 90.3742, RadiusKm: 15}

	fx.rentRepo.EXPECT().
		List(ctx, entity.RentFilter{Within: searchBounds(near)}, 0, nearbyScanLimit).
		Return([]*entity.RentListing{gulshan, chattogram, unlocated, motijheel}, int64(4), nil)

	list, err := fx.service.ListRents(ctx, &usecase.RentQuery{Near: near})
	require.NoError(t, err)

	assert.Equal(t, int64(2), list.Total)
	require.Len(t, list.Rents, 2)
	assert.Equal(t, motijheel.ID, list.Rents[0].Rent.ID)
	assert.Equal(t, gulshan.ID, list.Rents[1].Rent.ID)
	assert.Less(t, *list.Rents[0].DistanceKm, *list.Rents[1].DistanceKm)
}

func TestSearchBounds(t *testing.T) {
	tests := []struct {
		name      string
		near      *usecase.GeoQuery
		crossing  bool
		wholeGlobe bool
	}{
		{name: "dhaka", near: &usecase.GeoQuery{Latitude: 23.7461, Longitude: 90.3742, RadiusKm: 15}},
		{name: "antimeridian", near: &usecase.GeoQuery{Latitude: -17.7, Longitude: 179.9, RadiusKm: 50}, crossing: true},
		{name: "huge radius", near: &usecase.GeoQuery{Latitude: 10, Longitude: 10, RadiusKm: 15000}, wholeGlobe: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := searchBounds(tt.near)
			require.NotNil(t, box)

			assert.LessOrEqual(t, box.MinLat, tt.near.Latitude)
			assert.GreaterOrEqual(t, box.MaxLat, tt.near.Latitude)

			if tt.wholeGlobe {
				assert.Equal(t, entity.GeoBounds{MinLat: -90, MaxLat: 90, MinLng: -180, MaxLng: 180}, *box)
				return
			}

			// The box spans at least the radius in latitude.
			assert.InDelta(t, tt.near.RadiusKm/111.2, tt.near.Latitude-box.MinLat, 0.01)

			if tt.crossing {
				assert.Greater(t, box.MinLng, box.MaxLng)
				return
			}
			assert.Less(t, box.MinLng, tt.near.Longitude)
			assert.Greater(t, box.MaxLng, tt.near.Longitude)
		})
	}
}

func TestRentService_ListRents_NearbyRejectsRadius(t *testing.T) {
	fx := createTestRentService(t)

	_, err := fx.service.ListRents(context.Background(), &usecase.RentQuery{
		Near: &usecase.GeoQuery{Latitude: 23.7, Longitude: 90.4},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRentService_ListUserRents_LinkOrder(t *testing.T) {
	fx := createTestRentService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	first, second := uuid.New(), uuid.New()

	fx.linkRepo.EXPECT().ChildIDs(ctx, ownerID, entity.OwnerLinkRent).Return([]uuid.UUID{first, second}, nil)
	fx.rentRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{first, second}).
		Return([]*entity.RentListing{{ID: first}, {ID: second}}, nil)

	rents, err := fx.service.ListUserRents(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, rents, 2)
	assert.Equal(t, first, rents[0].ID)
}

func TestRentService_UpdateStatus_Permissions(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name    string
		actor   usecase.Actor
		wantErr error
	}{
		{name: "owner", actor: usecase.Actor{UserID: ownerID}},
		{name: "admin", actor: usecase.Actor{IsAdmin: true}},
		{name: "stranger", actor: usecase.Actor{UserID: uuid.New()}, wantErr: domainerrors.ErrNotResourceOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRentService(t)
			ctx := context.Background()
			rent := &entity.RentListing{ID: uuid.New(), OwnerID: ownerID, Status: entity.RentStatusActive}

			fx.rentRepo.EXPECT().FindByID(ctx, rent.ID).Return(rent, nil)
			if tt.wantErr == nil {
				fx.rentRepo.EXPECT().UpdateStatus(ctx, rent.ID, entity.RentStatusBooked).Return(nil)
			}

			updated, err := fx.service.UpdateStatus(ctx, tt.actor, rent.ID, entity.RentStatusBooked)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, entity.RentStatusBooked, updated.Status)
		})
	}
}

func TestRentService_DeleteRent_NotFound(t *testing.T) {
	fx := createTestRentService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.rentRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRentNotFound)

	err := fx.service.DeleteRent(ctx, usecase.Actor{IsAdmin: true}, id)
	assert.ErrorIs(t, err, domainerrors.ErrRentNotFound)
}

func TestRentService_RentQRCode(t *testing.T) {
	fx := createTestRentService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.rentRepo.EXPECT().FindByID(ctx, id).Return(&entity.RentListing{ID: id}, nil)
	fx.qrCode.EXPECT().GenerateRentQR(id).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.RentQRCode(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"zeneasy/internal/domain/entity"
	"zeneasy/internal/domain/repository"
	"zeneasy/internal/infra/persistence/migrations"
	"zeneasy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("zeneasy"),
		tcpostgres.WithUsername("zeneasy"),
		tcpostgres.WithPassword("zeneasy"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, migrations.Up(sqlDB))

	return db
}

func newTestUser(email string) *entity.User {
	return &entity.User{
		Name:        "Rahim",
		Email:       email,
		Gender:      entity.GenderMale,
		DateOfBirth: time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC),
		Nationality: "Bangladeshi",
	}
}

func newTestRent(ownerID uuid.UUID) *entity.RentListing {
	return &entity.RentListing{
		OwnerID:          ownerID,
		Category:         entity.RentCategoryFamilyHouse,
		RentStartDate:    time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		Images:           []string{"https://img.example.com/a.jpg"},
		PaymentFrequency: entity.PaymentMonthly,
		Cost:             15000,
		AddressLine:      "House 12, Road 3",
		City:             "Dhaka",
		ContactInfo:      "01700000000",
	}
}

func TestUserRepository_OTPLifecycle(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := newTestUser("otp@example.com")
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, entity.StatusActive, user.Status)

	// Consuming without an issued code never succeeds.
	assert.ErrorIs(t, repo.ConsumeOTP(ctx, user.ID, ""), repository.ErrOTPMismatch)

	require.NoError(t, repo.SetOTP(ctx, user.ID, "012345", time.Now()))
	assert.ErrorIs(t, repo.ConsumeOTP(ctx, user.ID, "999999"), repository.ErrOTPMismatch)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "012345", found.OTP)
	assert.False(t, found.IsVerified)

	require.NoError(t, repo.ConsumeOTP(ctx, user.ID, "012345"))
	assert.ErrorIs(t, repo.ConsumeOTP(ctx, user.ID, "012345"), repository.ErrOTPMismatch)

	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, found.OTP)
	assert.True(t, found.IsVerified)
}

func TestUserRepository_ClearExpiredOTPs(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	stale := newTestUser("stale@example.com")
	fresh := newTestUser("fresh@example.com")
	require.NoError(t, repo.Create(ctx, stale))
	require.NoError(t, repo.Create(ctx, fresh))

	now := time.Now()
	require.NoError(t, repo.SetOTP(ctx, stale.ID, "111111", now.Add(-time.Hour)))
	require.NoError(t, repo.SetOTP(ctx, fresh.ID, "222222", now))

	cleared, err := repo.ClearExpiredOTPs(ctx, now.Add(-10*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), cleared)

	assert.ErrorIs(t, repo.ConsumeOTP(ctx, stale.ID, "111111"), repository.ErrOTPMismatch)
	assert.NoError(t, repo.ConsumeOTP(ctx, fresh.ID, "222222"))
}

func TestUserRepository_FindByEmailReturnsOldest(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	first := newTestUser("shared@example.com")
	require.NoError(t, repo.Create(ctx, first))
	second := newTestUser("shared@example.com")
	require.NoError(t, repo.Create(ctx, second))

	found, err := repo.FindByEmail(ctx, "shared@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_LinksInAppendOrder(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	txManager := NewTransactionManager(db)

	owner := newTestUser("owner@example.com")
	require.NoError(t, users.Create(ctx, owner))

	var created []uuid.UUID
	for range 3 {
		err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			rent := newTestRent(owner.ID)
			if err := factory.NewRentRepository().Create(ctx, rent); err != nil {
				return err
			}
			created = append(created, rent.ID)

			return factory.NewOwnerLinkRepository().Append(ctx, owner.ID, entity.OwnerLinkRent, rent.ID)
		})
		require.NoError(t, err)
	}

	found, err := users.FindByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found.RentPosts)
	assert.Empty(t, found.ProfessionalProfiles)
}

func TestTransactionManager_RollbackLeavesNoChild(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	txManager := NewTransactionManager(db)

	var childID uuid.UUID
	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		rent := newTestRent(uuid.New())
		if err := factory.NewRentRepository().Create(ctx, rent); err != nil {
			return err
		}
		childID = rent.ID

		_, err := factory.NewUserRepository().FindByID(ctx, rent.OwnerID)

		return err
	})
	require.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = NewRentRepository(db).FindByID(ctx, childID)
	assert.ErrorIs(t, err, repository.ErrRentNotFound)
}

func TestServiceProfileRepository_Ratings(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewServiceProfileRepository(db)

	profile := &entity.ServiceProfile{
		ProviderID:    uuid.New(),
		Category:      entity.ServiceCategoryTutor,
		ContactNumber: "01800000000",
		AddressLine:   "Mirpur 10",
		ServiceAreas:  []string{"Mirpur", "Pallabi"},
		AvailableDays: []string{"Sat", "Sun"},
		AvailableTime: entity.AvailableDay,
	}
	require.NoError(t, repo.Create(ctx, profile))
	assert.Equal(t, entity.ApprovalPending, profile.IsApproved)

	clientA := uuid.New()
	require.NoError(t, repo.AppendRating(ctx, profile.ID, &entity.Rating{ClientID: clientA, Rating: 4}))
	require.NoError(t, repo.AppendRating(ctx, profile.ID, &entity.Rating{ClientID: uuid.New(), Rating: 5}))
	assert.ErrorIs(t, repo.AppendRating(ctx, profile.ID, &entity.Rating{ClientID: uuid.New(), Rating: 9}), repository.ErrRatingOutOfRange)
	assert.ErrorIs(t, repo.AppendRating(ctx, uuid.New(), &entity.Rating{ClientID: uuid.New(), Rating: 3}), repository.ErrServiceNotFound)

	found, err := repo.FindByID(ctx, profile.ID)
	require.NoError(t, err)
	require.Len(t, found.Ratings, 2)
	assert.Equal(t, 4, found.Ratings[0].Rating)
	assert.Equal(t, entity.RatingSummary{Average: 4.5, Count: 2}, found.Summary())
	assert.Equal(t, []string{"Mirpur", "Pallabi"}, found.ServiceAreas)

	rated, err := repo.HasRatingFrom(ctx, profile.ID, clientA)
	require.NoError(t, err)
	assert.True(t, rated)
}

func TestDeviceRepository_UpsertMovesToken(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(db)
	devices := NewDeviceRepository(db)

	alice := newTestUser("alice@example.com")
	bob := newTestUser("bob@example.com")
	require.NoError(t, users.Create(ctx, alice))
	require.NoError(t, users.Create(ctx, bob))

	first := &entity.UserDevice{UserID: alice.ID, DeviceID: "phone", FCMToken: "tok-1", Platform: entity.PlatformAndroid}
	require.NoError(t, devices.Upsert(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.ID)

	// Same device again keeps the row and refreshes the token.
	again := &entity.UserDevice{UserID: alice.ID, DeviceID: "phone", FCMToken: "tok-2", Platform: entity.PlatformAndroid}
	require.NoError(t, devices.Upsert(ctx, again))
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "tok-2", again.FCMToken)

	// Another account signs in on the same phone.
	moved := &entity.UserDevice{UserID: bob.ID, DeviceID: "phone", FCMToken: "tok-2", Platform: entity.PlatformAndroid}
	require.NoError(t, devices.Upsert(ctx, moved))

	aliceDevices, err := devices.ListActiveByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, aliceDevices)

	bobDevices, err := devices.ListActiveByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, bobDevices, 1)

	n, err := devices.DeactivateByTokens(ctx, []string{"tok-2", "unknown"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.ErrorIs(t, devices.Deactivate(ctx, uuid.New()), repository.ErrDeviceNotFound)

	_, err = devices.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestRentRepository_ListWithinSkipsUnlocated(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewRentRepository(db)

	lat, lng := 23.7330, 90.4172
	located := newTestRent(uuid.New())
	located.Latitude, located.Longitude = &lat, &lng
	require.NoError(t, repo.Create(ctx, located))

	newer := make([]*model.RentListingModel, 0, 2100)
	for i := range 2100 {
		rentM := fromRentDomain(newTestRent(uuid.New()))
		rentM.ID = uuid.New()
		rentM.Status = string(entity.RentStatusActive)
		rentM.CreatedAt = time.Now().Add(time.Duration(i+1) * time.Minute)
		newer = append(newer, rentM)
	}
	require.NoError(t, db.WithContext(ctx).CreateInBatches(newer, 500).Error)

	box := &entity.GeoBounds{MinLat: 23.6, MaxLat: 23.9, MinLng: 90.3, MaxLng: 90.5}
	rents, total, err := repo.List(ctx, entity.RentFilter{Within: box}, 0, 2000)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rents, 1)
	assert.Equal(t, located.ID, rents[0].ID)

	crossing := &entity.GeoBounds{MinLat: 23.6, MaxLat: 23.9, MinLng: 179.5, MaxLng: -179.5}
	_, total, err = repo.List(ctx, entity.RentFilter{Within: crossing}, 0, 2000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

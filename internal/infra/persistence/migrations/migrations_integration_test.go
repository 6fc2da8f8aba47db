//go:build integration

package migrations

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("zeneasy"),
		postgres.WithUsername("zeneasy"),
		postgres.WithPassword("zeneasy"),
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

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestUpCreatesSchema(t *testing.T) {
	db := startPostgres(t)

	require.NoError(t, Up(db))
	// A second run is a no-op.
	require.NoError(t, Up(db))

	for _, table := range []string{"users", "rent_listings", "service_profiles", "service_ratings", "owner_links", "feedback_entries", "user_devices"} {
		var exists bool
		err := db.QueryRow(`SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)`, table).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s should exist", table)
	}

	version, dirty, err := Version(db)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
}

func TestDownDropsSchema(t *testing.T) {
	db := startPostgres(t)

	require.NoError(t, Up(db))
	require.NoError(t, Down(db, 1))

	var exists bool
	err := db.QueryRow(`SELECT EXISTS (
		SELECT 1 FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name = 'users'
	)`).Scan(&exists)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRatingCheckConstraint(t *testing.T) {
	db := startPostgres(t)
	require.NoError(t, Up(db))

	var profileID string
	err := db.QueryRow(`INSERT INTO service_profiles (provider_id, category, contact_number, address, available_time)
		VALUES (uuid_generate_v7(), 'Maid', '01700000000', 'Road 1', 'day') RETURNING id`).Scan(&profileID)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO service_ratings (service_profile_id, client_id, rating) VALUES ($1, uuid_generate_v7(), 6)`, profileID)
	assert.Error(t, err)

	_, err = db.Exec(`INSERT INTO service_ratings (service_profile_id, client_id, rating) VALUES ($1, uuid_generate_v7(), 5)`, profileID)
	assert.NoError(t, err)
}

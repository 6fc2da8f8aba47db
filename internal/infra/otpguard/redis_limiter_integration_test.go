//go:build integration

package otpguard

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestRedisLimiter(t *testing.T) {
	ctx := context.Background()
	client := startRedis(t)
	limiter := NewRedisLimiter(client, 2, time.Minute)

	blocked, err := limiter.Blocked(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, blocked)

	count, err := limiter.RecordFailure(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	ttl, err := client.TTL(ctx, keyPrefix+"user-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	_, err = limiter.RecordFailure(ctx, "user-1")
	require.NoError(t, err)

	blocked, err = limiter.Blocked(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, blocked)

	require.NoError(t, limiter.Reset(ctx, "user-1"))

	blocked, err = limiter.Blocked(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestRedisLimiter_WindowStartsAtFirstFailure(t *testing.T) {
	ctx := context.Background()
	client := startRedis(t)
	limiter := NewRedisLimiter(client, 5, time.Minute)

	for range 3 {
		_, err := limiter.RecordFailure(ctx, "user-2")
		require.NoError(t, err)
	}

	ttl, err := client.TTL(ctx, keyPrefix+"user-2").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	count, err := client.Get(ctx, keyPrefix+"user-2").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	// Once the window lapses the next failure starts a fresh one.
	require.NoError(t, client.PExpire(ctx, keyPrefix+"user-2", time.Millisecond).Err())
	require.Eventually(t, func() bool {
		return client.Exists(ctx, keyPrefix+"user-2").Val() == 0
	}, time.Second, 10*time.Millisecond)

	count, err = limiter.RecordFailure(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	ttl, err = client.TTL(ctx, keyPrefix+"user-2").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

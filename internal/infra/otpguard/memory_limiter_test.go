package otpguard

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"zeneasy/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(3, 10*time.Minute).(*memoryLimiter)
	limiter.now = func() time.Time { return now }

	for i := int64(1); i <= 3; i++ {
		blocked, err := limiter.Blocked(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, blocked)

		count, err := limiter.RecordFailure(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}

	blocked, err := limiter.Blocked(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, blocked)

	// Other keys are independent.
	blocked, err = limiter.Blocked(ctx, "user-2")
	require.NoError(t, err)
	assert.False(t, blocked)

	// The window expires.
	now = now.Add(10 * time.Minute)
	blocked, err = limiter.Blocked(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestMemoryLimiter_Reset(t *testing.T) {
	ctx := context.Background()
	limiter := NewMemoryLimiter(1, time.Minute)

	_, err := limiter.RecordFailure(ctx, "user-1")
	require.NoError(t, err)

	blocked, err := limiter.Blocked(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, blocked)

	require.NoError(t, limiter.Reset(ctx, "user-1"))

	blocked, err = limiter.Blocked(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestUnlimitedLimiter(t *testing.T) {
	ctx := context.Background()
	limiter := NewUnlimitedLimiter()

	for range 100 {
		_, err := limiter.RecordFailure(ctx, "user-1")
		require.NoError(t, err)
	}

	blocked, err := limiter.Blocked(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestNewAttemptLimiter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		cfg  *config.Config
		want any
	}{
		{
			name: "no otp policy",
			cfg:  &config.Config{},
			want: unlimitedLimiter{},
		},
		{
			name: "zero attempts is unlimited",
			cfg:  &config.Config{OTP: &config.OTPConfig{MaxAttempts: 0}},
			want: unlimitedLimiter{},
		},
		{
			name: "memory without redis",
			cfg:  &config.Config{OTP: &config.OTPConfig{MaxAttempts: 5}},
			want: &memoryLimiter{},
		},
		{
			name: "redis when configured",
			cfg: &config.Config{
				OTP:   &config.OTPConfig{MaxAttempts: 5, LockoutWindow: time.Minute},
				Redis: &config.RedisConfig{Addr: "localhost:6379"},
			},
			want: &redisLimiter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter, err := NewAttemptLimiter(Params{
				Lifecycle: fxtest.NewLifecycle(t),
				Config:    tt.cfg,
				Logger:    logger,
			})
			require.NoError(t, err)
			assert.IsType(t, tt.want, limiter)
		})
	}
}

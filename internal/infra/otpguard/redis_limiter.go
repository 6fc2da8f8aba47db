// Package otpguard counts failed one-time code attempts.
package otpguard

import (
	"context"
	"strconv"
	"time"

	"zeneasy/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:attempts:"

// redisLimiter implements service.AttemptLimiter with a counter per key that
// expires a fixed window after the first failure. Counts are shared by every API replica.
type redisLimiter struct {
	client      redis.Cmdable
	maxAttempts int64
	window      time.Duration
}

// NewRedisLimiter is the constructor for redisLimiter.
func NewRedisLimiter(client redis.Cmdable, maxAttempts int, window time.Duration) service.AttemptLimiter {
	return &redisLimiter{
		client:      client,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

// Blocked reports whether the key has reached the attempt limit.
func (l *redisLimiter) Blocked(ctx context.Context, key string) (bool, error) {
	val, err := l.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to read attempt counter")
	}

	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, errors.Wrap(err, "malformed attempt counter")
	}

	return count >= l.maxAttempts, nil
}

// RecordFailure counts one failed attempt. The window starts at the first failure.
// The counter is created with its expiry and incremented in one transaction, so
// a key never exists without a TTL.
func (l *redisLimiter) RecordFailure(ctx context.Context, key string) (int64, error) {
	var incr *redis.IntCmd

	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, keyPrefix+key, 0, l.window)
		incr = pipe.Incr(ctx, keyPrefix+key)

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to increment attempt counter")
	}

	return incr.Val(), nil
}

// Reset forgets every attempt recorded for the key.
func (l *redisLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to reset attempt counter")
	}

	return nil
}

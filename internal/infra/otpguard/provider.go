package otpguard

import (
	"context"
	"log/slog"
	"time"

	"zeneasy/config"
	"zeneasy/internal/domain/lifecycle"
	"zeneasy/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultLockoutWindow = 15 * time.Minute

// Params defines the dependencies for the attempt limiter
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewAttemptLimiter selects the limiter for the configured OTP policy:
// unlimited when maxAttempts is not positive, Redis when an address is set,
// in-process memory otherwise.
func NewAttemptLimiter(params Params) (service.AttemptLimiter, error) {
	otpCfg := params.Config.OTP
	if otpCfg == nil || otpCfg.MaxAttempts <= 0 {
		params.Logger.Info("OTP attempt limit disabled")

		return NewUnlimitedLimiter(), nil
	}

	window := otpCfg.LockoutWindow
	if window <= 0 {
		window = defaultLockoutWindow
	}

	redisCfg := params.Config.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		params.Logger.Warn("Redis not configured, OTP attempts are counted per instance",
			slog.Int("maxAttempts", otpCfg.MaxAttempts),
			slog.Duration("window", window),
		)

		return NewMemoryLimiter(otpCfg.MaxAttempts, window), nil
	}

	client := NewRedisClient(redisCfg)
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Using Redis OTP attempt limiter",
		slog.String("addr", redisCfg.Addr),
		slog.Int("maxAttempts", otpCfg.MaxAttempts),
		slog.Duration("window", window),
	)

	return NewRedisLimiter(client, otpCfg.MaxAttempts, window), nil
}

// NewRedisClient builds a go-redis client from configuration.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
}

package bootstrap

import (
	"context"
	"log/slog"

	"barbershop-booking/internal/handler/middleware"
	"barbershop-booking/internal/infra/ratelimit"
	"barbershop-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewLimiter,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if !cfg.Redis.Enabled() {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				// The limiter decides per request whether to fail open.
				slog.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}

// NewLimiter returns a nil Limiter, which disables throttling, when Redis is not configured.
func NewLimiter(rdb *redis.Client, cfg config.Config) middleware.Limiter {
	if rdb == nil {
		return nil
	}
	slog.Info("rate limiting enabled (redis)", "limit", cfg.Redis.RateLimit, "window", cfg.Redis.RateLimitWindow.String())
	return ratelimit.NewFixedWindow(rdb, cfg.Redis.RateLimit, cfg.Redis.RateLimitWindow, "rl:booking")
}

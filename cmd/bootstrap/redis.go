package bootstrap

import (
	"context"
	"log/slog"

	"parking-reservation/internal/infra/ratelimit"
	"parking-reservation/internal/pkg/clock"
	"parking-reservation/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewLimiter,
	),
)

// NewRedisClient provides a nil client when REDIS_URL is empty.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	rdb, cleanup, err := ratelimit.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return rdb, nil
}

// NewLimiter falls back to per-process counters when Redis is not configured.
func NewLimiter(rdb *redis.Client, clk clock.Clock) ratelimit.Limiter {
	if rdb == nil {
		slog.Info("rate limiting uses in-memory counters: REDIS_URL not set")
		return ratelimit.NewMemoryLimiter(clk)
	}
	return ratelimit.NewRedisLimiter(rdb, clk)
}

package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parking-reservation/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil without error when no URL is configured.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	if cfg.URL == "" {
		return nil, func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	cleanup := func() {
		slog.Info("closing redis client")
		if err := rdb.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
	return rdb, cleanup, nil
}

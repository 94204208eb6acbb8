package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"parking-reservation/internal/pkg/clock"

	"github.com/redis/go-redis/v9"
)

type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter counts hits per key in fixed windows aligned to the epoch.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error)
}

func windowBounds(now time.Time, window time.Duration) (int64, time.Time) {
	slot := now.UnixNano() / int64(window)
	return slot, time.Unix(0, (slot+1)*int64(window))
}

func decide(count int64, limit int, now, end time.Time) Decision {
	if count > int64(limit) {
		return Decision{Allowed: false, RetryAfter: end.Sub(now)}
	}
	return Decision{Allowed: true, Remaining: limit - int(count)}
}

type counter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisLimiter shares counters across API instances.
type RedisLimiter struct {
	rdb    counter
	clock  clock.Clock
	prefix string
}

func NewRedisLimiter(rdb *redis.Client, clk clock.Clock) *RedisLimiter {
	return newRedisLimiter(rdb, clk)
}

func newRedisLimiter(rdb counter, clk clock.Clock) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, clock: clk, prefix: "ratelimit"}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (Decision, error) {
	now := l.clock.Now()
	slot, end := windowBounds(now, window)
	k := fmt.Sprintf("%s:%s:%d", l.prefix, key, slot)

	count, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to increment %s: %w", k, err)
	}
	if count == 1 {
		// the key outlives its window a little so late INCRs never resurrect it
		if err := l.rdb.ExpireNX(ctx, k, window+time.Second).Err(); err != nil {
			slog.Warn("failed to set rate limit expiry", "key", k, "error", err.Error())
		}
	}
	return decide(count, limit, now, end), nil
}

// MemoryLimiter is the single-instance fallback used when Redis is not configured.
type MemoryLimiter struct {
	mu      sync.Mutex
	clock   clock.Clock
	buckets map[string]memoryBucket
}

type memoryBucket struct {
	slot  int64
	count int64
}

func NewMemoryLimiter(clk clock.Clock) *MemoryLimiter {
	return &MemoryLimiter{clock: clk, buckets: make(map[string]memoryBucket)}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (Decision, error) {
	now := l.clock.Now()
	slot, end := windowBounds(now, window)

	l.mu.Lock()
	defer l.mu.Unlock()

	b := l.buckets[key]
	if b.slot != slot {
		b = memoryBucket{slot: slot}
	}
	b.count++
	l.buckets[key] = b

	if len(l.buckets) > 10000 {
		for k, v := range l.buckets {
			if v.slot < slot {
				delete(l.buckets, k)
			}
		}
	}
	return decide(b.count, limit, now, end), nil
}

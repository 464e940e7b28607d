package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Limiter implements a fixed-window request counter backed by Redis.
// Each client key gets an INCR per request; the first increment in a
// window sets the key's expiry to the window length.
type Limiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	log    zerolog.Logger
}

func NewLimiter(client *redis.Client, limit int, window time.Duration, log zerolog.Logger) *Limiter {
	return &Limiter{
		client: client,
		limit:  int64(limit),
		window: window,
		log:    log,
	}
}

// Allow reports whether the caller identified by key may proceed.
// Redis failures fail open: a broken limiter must not take the
// gateway down with it.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		l.log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, allowing request")
		return true
	}

	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			l.log.Warn().Err(err).Str("key", key).Msg("rate limiter expire failed")
		}
	}

	return count <= l.limit
}

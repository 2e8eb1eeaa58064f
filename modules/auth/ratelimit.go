package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRateLimited is returned when a login key has exhausted its attempts.
var ErrRateLimited = errors.New("too many login attempts, try again later")

// Limiter bounds login attempts per key. Allow reports whether one more
// attempt may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter is a fixed-window counter: the first attempt in a window
// creates a counting key with the window TTL, later attempts increment it
// until the limit is reached.
type RedisLimiter struct {
	client   *redis.Client
	limit    int64
	window   time.Duration
	keyspace string
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:   client,
		limit:    int64(limit),
		window:   window,
		keyspace: "login_attempts",
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s", l.keyspace, key)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	return count <= l.limit, nil
}

// NoopLimiter never limits. Used when Redis is not configured and in tests.
type NoopLimiter struct{}

func (NoopLimiter) Allow(context.Context, string) (bool, error) { return true, nil }

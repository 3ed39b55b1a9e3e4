package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "login:"

type redisLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewRedis(client *redis.Client, maxAttempts int, window time.Duration) LoginLimiter {
	return &redisLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow increments the counter and sets its expiry in one transaction.
// ExpireNX runs on every call, so a counter that somehow lost its TTL gets
// one back instead of locking the username out for good.
func (l *redisLimiter) Allow(ctx context.Context, username string) error {
	key := keyPrefix + username

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}

	if incr.Val() > int64(l.maxAttempts) {
		return ErrTooManyAttempts
	}
	return nil
}

func (l *redisLimiter) Reset(ctx context.Context, username string) error {
	err := l.client.Del(ctx, keyPrefix+username).Err()
	if err != nil {
		return fmt.Errorf("failed to reset attempts: %w", err)
	}
	return nil
}

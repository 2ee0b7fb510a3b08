package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxAttempts = 5
	defaultLockout     = 15 * time.Minute
)

// LoginLimiter counts failed logins per username in Redis.
// Key format: login:fail:<username>
//
// The counter expires lockout after the first failure of a window, so a
// blocked user is let back in once the key is gone.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int64
	lockout     time.Duration
}

// NewLoginLimiter creates a LoginLimiter. Non-positive settings fall back to
// 5 attempts per 15 minutes.
func NewLoginLimiter(client *redis.Client, maxAttempts int, lockout time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if lockout <= 0 {
		lockout = defaultLockout
	}
	return &LoginLimiter{client: client, maxAttempts: int64(maxAttempts), lockout: lockout}
}

// Blocked reports whether username has used up its failed attempts.
func (l *LoginLimiter) Blocked(ctx context.Context, username string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(username)).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("login limiter check: %w", err)
	}
	return n >= l.maxAttempts, nil
}

// RecordFailure increments the failure counter, starting the expiry window on
// the first failure.
func (l *LoginLimiter) RecordFailure(ctx context.Context, username string) error {
	key := l.key(username)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("login limiter incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.lockout).Err(); err != nil {
			return fmt.Errorf("login limiter expire: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, username string) error {
	if err := l.client.Del(ctx, l.key(username)).Err(); err != nil {
		return fmt.Errorf("login limiter reset: %w", err)
	}
	return nil
}

func (l *LoginLimiter) key(username string) string {
	return "login:fail:" + username
}

package utils

import (
	"context" // Context for Redis operations
	"strings" // Username normalisation
	"time"    // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// LoginThrottle counts failed logins per username in Redis
type LoginThrottle struct {
	rdb         *redis.Client
	maxAttempts int64
	window      time.Duration
}

// NewLoginThrottle returns nil when rdb is nil, which disables throttling
func NewLoginThrottle(rdb *redis.Client, maxAttempts int, window time.Duration) *LoginThrottle {
	if rdb == nil || maxAttempts <= 0 {
		return nil
	}
	return &LoginThrottle{rdb: rdb, maxAttempts: int64(maxAttempts), window: window}
}

func throttleKey(username string) string {
	return "login:fail:" + strings.ToLower(strings.TrimSpace(username))
}

// Blocked reports whether the username is locked out and for how long
func (t *LoginThrottle) Blocked(ctx context.Context, username string) (bool, time.Duration, error) {
	if t == nil {
		return false, 0, nil
	}
	key := throttleKey(username)
	n, err := t.rdb.Get(ctx, key).Int64()
	if err == redis.Nil {
		return false, 0, nil // No failures recorded
	} else if err != nil {
		return false, 0, err
	}
	if n < t.maxAttempts {
		return false, 0, nil
	}
	ttl, err := t.rdb.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = t.window
	}
	return true, ttl, nil
}

// Fail records a failed attempt; the window starts at the first failure
func (t *LoginThrottle) Fail(ctx context.Context, username string) error {
	if t == nil {
		return nil
	}
	key := throttleKey(username)
	pipe := t.rdb.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, t.window)
	_, err := pipe.Exec(ctx)
	return err
}

// Reset clears the failure counter after a successful login
func (t *LoginThrottle) Reset(ctx context.Context, username string) error {
	if t == nil {
		return nil
	}
	return t.rdb.Del(ctx, throttleKey(username)).Err()
}

package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LoginLimiter throttles repeated failed logins per username using a redis
// counter with expiry. A nil client disables throttling; redis outages fail
// open so login availability never depends on the cache.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int
	lockout     time.Duration
	logger      *zap.Logger
}

// NewLoginLimiter builds the limiter.
func NewLoginLimiter(client *redis.Client, maxAttempts int, lockout time.Duration, logger *zap.Logger) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if lockout <= 0 {
		lockout = 15 * time.Minute
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, lockout: lockout, logger: logger}
}

func (l *LoginLimiter) key(username string) string {
	return "login:failures:" + username
}

// Blocked reports whether the username has exhausted its attempts.
func (l *LoginLimiter) Blocked(ctx context.Context, username string) bool {
	if l == nil || l.client == nil {
		return false
	}
	count, err := l.client.Get(ctx, l.key(username)).Int()
	if err != nil {
		if err != redis.Nil {
			l.logger.Warn("login limiter read failed", zap.Error(err))
		}
		return false
	}
	return count >= l.maxAttempts
}

// RecordFailure bumps the failure counter and refreshes the lockout window.
func (l *LoginLimiter) RecordFailure(ctx context.Context, username string) {
	if l == nil || l.client == nil {
		return
	}
	key := l.key(username)
	if err := l.client.Incr(ctx, key).Err(); err != nil {
		l.logger.Warn("login limiter incr failed", zap.Error(err))
		return
	}
	_ = l.client.Expire(ctx, key, l.lockout).Err()
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, username string) {
	if l == nil || l.client == nil {
		return
	}
	_ = l.client.Del(ctx, l.key(username)).Err()
}

// Package ratelimit limits scans per client across API replicas
package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/logger"
)

const (
	defaultKeyPrefix = "ratelimit:scan:"
	// maxLocalKeys bounds the fallback limiters kept in memory, the set is reset once exceeded
	maxLocalKeys = 10000
)

// Config holds the scan rate limit
type Config struct {
	// PerMinute is the number of scans a key may make per minute, 0 disables limiting
	PerMinute int
	// KeyPrefix namespaces the Redis keys
	KeyPrefix string
	// LocalFallback limits per process while Redis is failing instead of allowing every request
	LocalFallback bool
}

// Decision is the outcome of a rate limit check
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter defines the interface for keyed rate limiting
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one request for key. It never fails: Redis errors allow the request
	// unless local fallback is enabled.
	Allow(ctx context.Context, key string) Decision
}

type limiter struct {
	config      Config
	distributed adapter.RedisRateLimiter
	limit       redis_rate.Limit

	mu    sync.Mutex
	local map[string]*rate.Limiter

	// degraded is set while Redis errors, used to log transitions once
	degraded atomic.Bool
}

// NewLimiter creates a limiter. A nil distributed limiter or zero rate allows every request.
func NewLimiter(cfg Config, distributed adapter.RedisRateLimiter) Limiter {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = defaultKeyPrefix
	}
	return &limiter{
		config:      cfg,
		distributed: distributed,
		limit:       redis_rate.PerMinute(cfg.PerMinute),
		local:       make(map[string]*rate.Limiter),
	}
}

// Allow consumes one request for key
func (l *limiter) Allow(ctx context.Context, key string) Decision {
	if l.config.PerMinute <= 0 || l.distributed == nil {
		return Decision{Allowed: true}
	}

	res, err := l.distributed.Allow(ctx, l.config.KeyPrefix+key, l.limit)
	if err != nil {
		if l.degraded.CompareAndSwap(false, true) {
			logger.WarnCtx(ctx, "Redis rate limiter unavailable",
				zap.Bool("localFallback", l.config.LocalFallback),
				zap.Error(err))
		}
		if l.config.LocalFallback {
			return l.allowLocal(key)
		}
		return Decision{Allowed: true}
	}

	if l.degraded.CompareAndSwap(true, false) {
		logger.InfoCtx(ctx, "Redis rate limiter restored")
	}

	return Decision{
		Allowed:    res.Allowed > 0,
		Remaining:  res.Remaining,
		RetryAfter: res.RetryAfter,
	}
}

// allowLocal applies the limit per process
func (l *limiter) allowLocal(key string) Decision {
	l.mu.Lock()
	lim, ok := l.local[key]
	if !ok {
		if len(l.local) >= maxLocalKeys {
			l.local = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.config.PerMinute)), l.config.PerMinute)
		l.local[key] = lim
	}
	l.mu.Unlock()

	r := lim.Reserve()
	if delay := r.Delay(); delay > 0 {
		r.Cancel()
		return Decision{Allowed: false, RetryAfter: delay}
	}
	return Decision{Allowed: true, Remaining: int(lim.Tokens())}
}

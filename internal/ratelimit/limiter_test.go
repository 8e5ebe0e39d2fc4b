package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/mocks"
	"github.com/partyqr/qr-router/internal/ratelimit"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestLimiter_Distributed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisLimiter := mocks.NewMockRedisRateLimiter(ctrl)
	l := ratelimit.NewLimiter(ratelimit.Config{PerMinute: 2}, redisLimiter)
	ctx := context.Background()

	gomock.InOrder(
		redisLimiter.EXPECT().
			Allow(gomock.Any(), "ratelimit:scan:1.2.3.4", redis_rate.PerMinute(2)).
			Return(&redis_rate.Result{Allowed: 1, Remaining: 1}, nil),
		redisLimiter.EXPECT().
			Allow(gomock.Any(), "ratelimit:scan:1.2.3.4", redis_rate.PerMinute(2)).
			Return(&redis_rate.Result{Allowed: 0, Remaining: 0, RetryAfter: 30 * time.Second}, nil),
	)

	first := l.Allow(ctx, "1.2.3.4")
	assert.True(t, first.Allowed)
	assert.Equal(t, 1, first.Remaining)

	second := l.Allow(ctx, "1.2.3.4")
	assert.False(t, second.Allowed)
	assert.Equal(t, 30*time.Second, second.RetryAfter)
}

func TestLimiter_FailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisLimiter := mocks.NewMockRedisRateLimiter(ctrl)
	redisLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(5)

	l := ratelimit.NewLimiter(ratelimit.Config{PerMinute: 1}, redisLimiter)
	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow(context.Background(), "1.2.3.4").Allowed)
	}
}

func TestLimiter_LocalFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisLimiter := mocks.NewMockRedisRateLimiter(ctrl)
	redisLimiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused")).
		AnyTimes()

	l := ratelimit.NewLimiter(ratelimit.Config{PerMinute: 2, LocalFallback: true}, redisLimiter)
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "a").Allowed)
	assert.True(t, l.Allow(ctx, "a").Allowed)
	denied := l.Allow(ctx, "a")
	assert.False(t, denied.Allowed)
	assert.Greater(t, denied.RetryAfter, time.Duration(0))

	// Keys are limited independently
	assert.True(t, l.Allow(ctx, "b").Allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := ratelimit.NewLimiter(ratelimit.Config{PerMinute: 0}, mocks.NewMockRedisRateLimiter(ctrl))
	assert.True(t, l.Allow(context.Background(), "a").Allowed)

	l = ratelimit.NewLimiter(ratelimit.Config{PerMinute: 10}, nil)
	assert.True(t, l.Allow(context.Background(), "a").Allowed)
}

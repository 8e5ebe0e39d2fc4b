package sweeper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/fulfillment"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/store"
	"github.com/partyqr/qr-router/internal/store/schema"
)

// FulfillmentRetrySweeperConfig holds configuration for the fulfillment retry sweeper
type FulfillmentRetrySweeperConfig struct {
	Interval       time.Duration // Time to sleep between sweep cycles
	BatchSize      int           // Orders to redispatch per cycle
	WorkerPoolSize int           // Concurrent dispatches
	RetryAfter     time.Duration // Only pick orders untouched for longer than this
	// DispatchRetries bounds the retries of a single dispatch within a cycle
	DispatchRetries uint64
}

type fulfillmentRetrySweeper struct {
	*loop
	config     *FulfillmentRetrySweeperConfig
	store      store.Store
	dispatcher fulfillment.Dispatcher
	clock      adapter.Clock
}

// NewFulfillmentRetrySweeper creates a sweeper that redispatches failed and stale pending print orders
func NewFulfillmentRetrySweeper(
	config *FulfillmentRetrySweeperConfig,
	st store.Store,
	dispatcher fulfillment.Dispatcher,
	clock adapter.Clock,
) Sweeper {
	s := &fulfillmentRetrySweeper{
		config:     config,
		store:      st,
		dispatcher: dispatcher,
		clock:      clock,
	}
	s.loop = newLoop("fulfillment-retry-sweeper", config.Interval, clock, s.runSweepCycle)
	return s
}

// runSweepCycle runs a single sweep cycle
func (s *fulfillmentRetrySweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	orders, err := s.store.GetOrdersForFulfillmentRetry(ctx, startTime.Add(-s.config.RetryAfter), s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to get orders for fulfillment retry: %w", err)
	}
	if len(orders) == 0 {
		logger.DebugCtx(ctx, "No orders need fulfillment retry")
		return nil
	}

	logger.InfoCtx(ctx, "Found orders to redispatch", zap.Int("count", len(orders)))

	var dispatched, failed atomic.Int32

	pool := pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(len(orders)),
		pond.WithContext(ctx),
	)
	for _, order := range orders {
		pool.Submit(func() {
			if err := s.dispatchWithRetry(ctx, order); err != nil {
				failed.Add(1)
				logger.ErrorCtx(ctx, err, logger.OrderID(order.ID))
				return
			}
			dispatched.Add(1)
		})
	}
	pool.StopAndWait()

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("total", len(orders)),
		zap.Int32("dispatched", dispatched.Load()),
		zap.Int32("failed", failed.Load()),
	)

	return nil
}

// dispatchWithRetry redispatches an order with exponential backoff
func (s *fulfillmentRetrySweeper) dispatchWithRetry(ctx context.Context, order schema.Order) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 30 * time.Second
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	attempts := 0
	operation := func() error {
		attempts++
		return s.dispatcher.Dispatch(ctx, order.ID)
	}
	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "Print order dispatch failed, retrying",
			logger.OrderID(order.ID),
			zap.Error(err),
			zap.Int("attempt", attempts),
			zap.Duration("next_retry_in", next),
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(b, s.config.DispatchRetries), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return fmt.Errorf("failed to redispatch order %s after %d attempts: %w", order.ID, attempts, err)
	}

	logger.InfoCtx(ctx, "Print order redispatched",
		logger.OrderID(order.ID),
		zap.String("previousStatus", string(order.FulfillmentStatus)))
	return nil
}

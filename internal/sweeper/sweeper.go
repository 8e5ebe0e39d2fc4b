package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/logger"
)

// Sweeper defines the interface for sweeper implementations
// Sweepers are long-running background tasks that perform periodic maintenance
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start begins the sweeper's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the sweeper
	// This should wait for any in-progress work to complete
	Stop(ctx context.Context) error

	// Name returns the sweeper's name for logging and identification
	Name() string
}

// loop runs a sweep cycle, then sleeps for interval, until stopped
type loop struct {
	name      string
	interval  time.Duration
	clock     adapter.Clock
	cycle     func(ctx context.Context) error
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

func newLoop(name string, interval time.Duration, clock adapter.Clock, cycle func(ctx context.Context) error) *loop {
	return &loop{
		name:      name,
		interval:  interval,
		clock:     clock,
		cycle:     cycle,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (l *loop) Name() string {
	return l.name
}

// Start runs sweep cycles until the context is canceled or Stop is called
func (l *loop) Start(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return fmt.Errorf("%s already running", l.name)
	}
	defer func() {
		l.running.Store(false)
		close(l.stoppedCh)
	}()

	log := logger.FromContext(ctx).With(zap.String("sweeper", l.name))
	log.Info("Starting sweeper", zap.Duration("interval", l.interval))

	for {
		select {
		case <-ctx.Done():
			log.Info("Sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-l.stopChan:
			log.Info("Sweeper stop requested")
			return nil
		default:
		}

		if err := l.cycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err, zap.String("sweeper", l.name))
		}

		l.sleep(ctx, l.interval)
	}
}

// Stop signals the loop and waits for the running cycle to finish
func (l *loop) Stop(ctx context.Context) error {
	if !l.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping sweeper", zap.String("sweeper", l.name))
	close(l.stopChan)

	select {
	case <-l.stoppedCh:
		logger.InfoCtx(ctx, "Sweeper stopped gracefully", zap.String("sweeper", l.name))
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Sweeper stop interrupted by context timeout", zap.String("sweeper", l.name))
		return ctx.Err()
	}
}

// sleep waits for d, returning early on context cancellation or a stop signal
func (l *loop) sleep(ctx context.Context, d time.Duration) {
	select {
	case <-l.clock.After(d):
	case <-ctx.Done():
	case <-l.stopChan:
	}
}

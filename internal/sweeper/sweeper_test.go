package sweeper_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partyqr/qr-router/internal/domain"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/mocks"
	"github.com/partyqr/qr-router/internal/store/schema"
	"github.com/partyqr/qr-router/internal/sweeper"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// expectTicks makes clock.After fire shortly so Stop can interleave with cycles
func expectTicks(clock *mocks.MockClock, now time.Time) {
	clock.EXPECT().Now().Return(now).AnyTimes()
	clock.EXPECT().Since(now).Return(time.Second).AnyTimes()
	clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		go func() {
			time.Sleep(50 * time.Millisecond)
			ch <- time.Now()
		}()
		return ch
	}).AnyTimes()
}

// runFor starts s and stops it after d
func runFor(t *testing.T, s sweeper.Sweeper, d time.Duration) {
	t.Helper()
	ctx := context.Background()
	go func() {
		time.Sleep(d)
		_ = s.Stop(ctx)
	}()
	require.NoError(t, s.Start(ctx))
}

func TestFulfillmentRetrySweeper_Name(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := sweeper.NewFulfillmentRetrySweeper(&sweeper.FulfillmentRetrySweeperConfig{},
		mocks.NewMockStore(ctrl), mocks.NewMockDispatcher(ctrl), mocks.NewMockClock(ctrl))
	assert.Equal(t, "fulfillment-retry-sweeper", s.Name())
}

func TestFulfillmentRetrySweeper_Redispatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	dispatcher := mocks.NewMockDispatcher(ctrl)
	clock := mocks.NewMockClock(ctrl)
	now := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	expectTicks(clock, now)

	s := sweeper.NewFulfillmentRetrySweeper(&sweeper.FulfillmentRetrySweeperConfig{
		Interval:       time.Minute,
		BatchSize:      10,
		WorkerPoolSize: 2,
		RetryAfter:     15 * time.Minute,
	}, st, dispatcher, clock)

	orders := []schema.Order{
		{ID: "ord-1", FulfillmentStatus: domain.FulfillmentStatusFailed},
		{ID: "ord-2", FulfillmentStatus: domain.FulfillmentStatusPending},
	}
	gomock.InOrder(
		st.EXPECT().
			GetOrdersForFulfillmentRetry(gomock.Any(), now.Add(-15*time.Minute), 10).
			Return(orders, nil).
			Times(1),
		st.EXPECT().
			GetOrdersForFulfillmentRetry(gomock.Any(), now.Add(-15*time.Minute), 10).
			Return(nil, nil).
			MinTimes(1),
	)
	dispatcher.EXPECT().Dispatch(gomock.Any(), "ord-1").Return(nil)
	dispatcher.EXPECT().Dispatch(gomock.Any(), "ord-2").Return(errors.New("temporal unavailable"))

	runFor(t, s, 200*time.Millisecond)
}

func TestFulfillmentRetrySweeper_StoreErrorKeepsRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	now := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	expectTicks(clock, now)

	s := sweeper.NewFulfillmentRetrySweeper(&sweeper.FulfillmentRetrySweeperConfig{
		Interval:       time.Minute,
		BatchSize:      10,
		WorkerPoolSize: 1,
	}, st, mocks.NewMockDispatcher(ctrl), clock)

	st.EXPECT().
		GetOrdersForFulfillmentRetry(gomock.Any(), now, 10).
		Return(nil, errors.New("db down")).
		MinTimes(2)

	runFor(t, s, 200*time.Millisecond)
}

func TestExpirySweeper_ExpiresDueEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := mocks.NewMockEventRegistry(ctrl)
	clock := mocks.NewMockClock(ctrl)
	now := time.Date(2024, 1, 10, 0, 0, 1, 0, time.UTC)
	expectTicks(clock, now)

	s := sweeper.NewExpirySweeper(&sweeper.ExpirySweeperConfig{Interval: time.Minute}, events, clock)
	assert.Equal(t, "expiry-sweeper", s.Name())

	gomock.InOrder(
		events.EXPECT().ExpireDue(gomock.Any(), now).Return(int64(3), nil).Times(1),
		events.EXPECT().ExpireDue(gomock.Any(), now).Return(int64(0), errors.New("db down")).Times(1),
		events.EXPECT().ExpireDue(gomock.Any(), now).Return(int64(0), nil).AnyTimes(),
	)

	runFor(t, s, 250*time.Millisecond)
}

func TestSweeper_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := mocks.NewMockEventRegistry(ctrl)
	clock := mocks.NewMockClock(ctrl)
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now).AnyTimes()
	var never <-chan time.Time = make(chan time.Time)
	clock.EXPECT().After(gomock.Any()).Return(never).AnyTimes()
	events.EXPECT().ExpireDue(gomock.Any(), now).Return(int64(0), nil).AnyTimes()

	s := sweeper.NewExpirySweeper(&sweeper.ExpirySweeperConfig{Interval: time.Hour}, events, clock)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	assert.Error(t, s.Start(ctx), "a running sweeper cannot be started twice")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}

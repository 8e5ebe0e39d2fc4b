package sweeper

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/partyqr/qr-router/internal/adapter"
	"github.com/partyqr/qr-router/internal/logger"
	"github.com/partyqr/qr-router/internal/registry"
)

// ExpirySweeperConfig holds configuration for the event expiry sweeper
type ExpirySweeperConfig struct {
	Interval time.Duration
}

type expirySweeper struct {
	*loop
	events registry.EventRegistry
	clock  adapter.Clock
}

// NewExpirySweeper creates a sweeper that persists the expired status of events past their expiry.
// Routing computes expiry on read, so the sweeper only keeps stored status in line with it.
func NewExpirySweeper(config *ExpirySweeperConfig, events registry.EventRegistry, clock adapter.Clock) Sweeper {
	s := &expirySweeper{events: events, clock: clock}
	s.loop = newLoop("expiry-sweeper", config.Interval, clock, s.runSweepCycle)
	return s
}

func (s *expirySweeper) runSweepCycle(ctx context.Context) error {
	expired, err := s.events.ExpireDue(ctx, s.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to expire due events: %w", err)
	}
	if expired > 0 {
		logger.InfoCtx(ctx, "Expired events", zap.Int64("count", expired))
	}
	return nil
}

package ledger

import (
	"context"
	"time"

	"timeledger/internal/logging"
)

// DefaultAccrualInterval is the recommended cadence for periodic interest
// accrual.
const DefaultAccrualInterval = time.Minute

// AccrualScheduler drives periodic interest accrual on a store. A single
// goroutine owns the ticker, so accrual runs never overlap.
type AccrualScheduler struct {
	store    *Store
	clock    Clock
	interval time.Duration
}

// NewAccrualScheduler creates a scheduler for the store. A non-positive
// interval falls back to the default.
func NewAccrualScheduler(store *Store, clock Clock, interval time.Duration) *AccrualScheduler {
	if interval <= 0 {
		interval = DefaultAccrualInterval
	}
	return &AccrualScheduler{
		store:    store,
		clock:    clock,
		interval: interval,
	}
}

// Run accrues interest once immediately, then on every tick until the
// context is cancelled.
func (s *AccrualScheduler) Run(ctx context.Context) {
	s.store.AccrueInterest(s.clock.Now())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Debugln("accrual scheduler stopped")
			return
		case <-ticker.C:
			s.store.AccrueInterest(s.clock.Now())
		}
	}
}

package services

import (
	"context"
	"log"
	"time"
)

// ResetTarget is what the scheduler drives each tick. It inspects the
// mission sets and replaces any whose reset time has elapsed.
type ResetTarget interface {
	RunResetCycle(ctx context.Context, now time.Time)
}

// ResetScheduler periodically sweeps mission sets for expired cycles. It
// only talks to the store's replace/load operations; progression state is
// never touched from here.
type ResetScheduler struct {
	target   ResetTarget
	interval time.Duration
}

func NewResetScheduler(target ResetTarget, interval time.Duration) *ResetScheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ResetScheduler{target: target, interval: interval}
}

// Start runs the sweep loop until ctx is cancelled.
func (s *ResetScheduler) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		log.Printf("reset scheduler started (interval %s)", s.interval)
		for {
			select {
			case <-ctx.Done():
				log.Println("reset scheduler stopped")
				return
			case now := <-ticker.C:
				s.target.RunResetCycle(ctx, now)
			}
		}
	}()
}

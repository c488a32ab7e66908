package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingTarget struct {
	cycles atomic.Int64
}

func (c *countingTarget) RunResetCycle(ctx context.Context, now time.Time) {
	c.cycles.Add(1)
}

func TestSchedulerRunsCycles(t *testing.T) {
	target := &countingTarget{}
	scheduler := NewResetScheduler(target, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	deadline := time.After(2 * time.Second)
	for target.cycles.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("scheduler ran %d cycles, want at least 2", target.cycles.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	// No more cycles after cancellation settles.
	time.Sleep(50 * time.Millisecond)
	after := target.cycles.Load()
	time.Sleep(50 * time.Millisecond)
	if target.cycles.Load() != after {
		t.Error("scheduler kept running after cancellation")
	}
}

func TestSchedulerDefaultInterval(t *testing.T) {
	scheduler := NewResetScheduler(&countingTarget{}, 0)
	if scheduler.interval != time.Minute {
		t.Errorf("interval = %s, want 1m", scheduler.interval)
	}
}

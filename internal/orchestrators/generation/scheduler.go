package generation

import (
	"context"
	"runtime"
)

// StepScheduler yields every Interval steps by releasing the goroutine's
// scheduling quantum. It is the default scheduler.
type StepScheduler struct {
	Interval int
}

// NewStepScheduler returns a scheduler that yields every interval steps.
func NewStepScheduler(interval int) *StepScheduler {
	return &StepScheduler{Interval: interval}
}

// ShouldYield implements Scheduler.
func (s *StepScheduler) ShouldYield(steps int) bool {
	return s.Interval > 0 && steps%s.Interval == 0
}

// Yield implements Scheduler.
func (s *StepScheduler) Yield(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	runtime.Gosched()
	return nil
}

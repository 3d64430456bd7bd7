package loop

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// TickSchedule hands out tick durations for a fixed rate. One second does
// not divide evenly at most rates, so single ticks differ by a nanosecond
// while the running total stays exact: tps ticks always sum to one second.
type TickSchedule struct {
	tps int64
	n   int64
}

// NewTickSchedule creates a schedule for tps ticks per second. A
// non-positive rate falls back to 60.
func NewTickSchedule(tps int) *TickSchedule {
	if tps <= 0 {
		tps = 60
	}
	return &TickSchedule{tps: int64(tps)}
}

// Next returns the duration of the next tick.
func (s *TickSchedule) Next() time.Duration {
	prev := s.elapsed()
	s.n++
	return s.elapsed() - prev
}

// Rate returns the ticks per second.
func (s *TickSchedule) Rate() int {
	return int(s.tps)
}

func (s *TickSchedule) elapsed() time.Duration {
	sec, rem := s.n/s.tps, s.n%s.tps
	return time.Duration(sec)*time.Second + time.Duration(rem*int64(time.Second)/s.tps)
}

// RateClock blocks so that at most one tick per period passes.
type RateClock struct {
	*TickSchedule
	limiter *rate.Limiter
}

// NewRateClock creates a clock running at tps ticks per second.
func NewRateClock(tps int) *RateClock {
	sched := NewTickSchedule(tps)
	return &RateClock{
		TickSchedule: sched,
		limiter:      rate.NewLimiter(rate.Limit(sched.Rate()), 1),
	}
}

// Wait blocks until the next tick or ctx is done. When the next tick
// falls past ctx's deadline it sleeps out the deadline and returns
// ctx.Err(), so callers see the same error as for any other expiry.
func (c *RateClock) Wait(ctx context.Context) error {
	err := c.limiter.Wait(ctx)
	if err == nil {
		return nil
	}
	if _, ok := ctx.Deadline(); ok && ctx.Err() == nil {
		<-ctx.Done()
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// FixedClock never blocks. Ticks still carry their full duration, so a run
// is deterministic and as fast as the CPU allows.
type FixedClock struct {
	*TickSchedule
}

// NewFixedClock creates a non-blocking clock at tps ticks per second.
func NewFixedClock(tps int) FixedClock {
	return FixedClock{TickSchedule: NewTickSchedule(tps)}
}

// Wait returns immediately unless ctx is done.
func (c FixedClock) Wait(ctx context.Context) error {
	return ctx.Err()
}

package core

import "time"

// FrameLimiter keeps consecutive frames at least one period apart.
type FrameLimiter struct {
	period time.Duration
	last   time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameLimiter constructs a limiter whose first frame is measured from now.
func NewFrameLimiter(period time.Duration) *FrameLimiter {
	return NewFrameLimiterWithClock(period, time.Now, time.Sleep)
}

// NewFrameLimiterWithClock is NewFrameLimiter with an injected clock.
func NewFrameLimiterWithClock(period time.Duration, now func() time.Time, sleep func(time.Duration)) *FrameLimiter {
	if period < 0 {
		period = 0
	}
	return &FrameLimiter{period: period, last: now(), now: now, sleep: sleep}
}

// Wait measures the time since the previous call and blocks for whatever is
// left of the period. The timestamp is taken before sleeping so the next
// delta reflects tick-to-tick spacing. It returns the measured delta.
func (f *FrameLimiter) Wait() time.Duration {
	now := f.now()
	delta := now.Sub(f.last)
	f.last = now
	if delta < f.period {
		f.sleep(f.period - delta)
	}
	return delta
}

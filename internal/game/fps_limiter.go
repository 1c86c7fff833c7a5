package game

import (
	"time"
)

// Sleeping stops this far before the deadline; the rest is spun
const spinWindow = 200 * time.Microsecond

// FPSLimiter paces the frame loop to a fixed rate. VSync usually does this
// already; the limiter covers uncapped swap intervals.
type FPSLimiter struct {
	frame time.Duration
	next  time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFPSLimiter creates a limiter for limit frames per second; 0 disables it
func NewFPSLimiter(limit int) *FPSLimiter {
	f := &FPSLimiter{now: time.Now, sleep: time.Sleep}
	f.SetLimit(limit)
	return f
}

// SetLimit changes the rate and restarts the schedule
func (f *FPSLimiter) SetLimit(limit int) {
	f.frame = 0
	if limit > 0 {
		f.frame = time.Second / time.Duration(limit)
	}
	f.next = time.Time{}
}

// Wait blocks until the current frame's slot has passed. It sleeps for most
// of the gap and spins through the final spinWindow.
func (f *FPSLimiter) Wait() {
	if f.frame <= 0 {
		return
	}

	if f.next.IsZero() {
		f.next = f.now().Add(f.frame)
	} else {
		f.next = f.next.Add(f.frame)
	}

	for remaining := f.next.Sub(f.now()); remaining > 0; remaining = f.next.Sub(f.now()) {
		if remaining > spinWindow {
			f.sleep(remaining - spinWindow)
		}
	}

	// More than a frame behind after a hitch: start over instead of
	// rushing through the missed slots
	if late := f.now().Sub(f.next); late > f.frame {
		f.next = f.now().Add(f.frame)
	}
}

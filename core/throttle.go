package core

import "time"

// Throttle admits at most one sample per interval. Rejected samples are
// coalesced: only the most recent one is kept for Flush.
type Throttle struct {
	interval time.Duration
	now      func() time.Time
	last     time.Time
	primed   bool
	pending  Point
	hasPend  bool
}

func NewThrottle(interval time.Duration, now func() time.Time) *Throttle {
	if now == nil {
		now = time.Now
	}
	return &Throttle{interval: interval, now: now}
}

// Admit reports whether p should be resolved now. A rejected p replaces any
// earlier pending sample.
func (t *Throttle) Admit(p Point) bool {
	ts := t.now()
	if t.primed && t.interval > 0 && ts.Sub(t.last) < t.interval {
		t.pending = p
		t.hasPend = true
		return false
	}
	t.last = ts
	t.primed = true
	t.hasPend = false
	return true
}

// Flush returns the last dropped sample, if any, and clears it.
func (t *Throttle) Flush() (Point, bool) {
	p, ok := t.pending, t.hasPend
	t.pending = Point{}
	t.hasPend = false
	return p, ok
}

// Reset forgets timing and pending state, so the next sample is admitted.
func (t *Throttle) Reset() {
	t.primed = false
	t.hasPend = false
	t.pending = Point{}
}

package core

import "time"

type TweenPhase int

const (
	TweenIdle TweenPhase = iota
	TweenOut
	TweenIn
)

func (p TweenPhase) String() string {
	switch p {
	case TweenOut:
		return "out"
	case TweenIn:
		return "in"
	default:
		return "idle"
	}
}

// Tween drives the two-phase field switch: fade the ring out, flip the
// active field, fade it back in. Every Start bumps the generation; frames
// from an older generation are stale and must be dropped by the caller.
type Tween struct {
	phase    TweenPhase
	gen      uint64
	duration time.Duration
	from     float64
	value    float64
	start    time.Time
	target   Field
}

func NewTween(duration time.Duration) *Tween {
	return &Tween{duration: duration, value: 1}
}

func (t *Tween) Phase() TweenPhase  { return t.phase }
func (t *Tween) Generation() uint64 { return t.gen }
func (t *Tween) Value() float64     { return t.value }
func (t *Tween) Target() Field      { return t.target }

// Scale is the ring scale for the current value: 1.2 hidden, 1 shown.
func (t *Tween) Scale() float64 {
	return 1.2 - 0.2*t.value
}

// Start begins or retargets a switch to field. It reports false when
// nothing needs to animate.
func (t *Tween) Start(active, field Field, now time.Time) bool {
	switch t.phase {
	case TweenIdle:
		if field == active {
			return false
		}
	case TweenOut:
		// keep fading from where we are, towards the new target
	case TweenIn:
		if field == active {
			// already flipped to the requested field; let the fade-in finish
			return false
		}
	}
	t.gen++
	t.phase = TweenOut
	t.from = t.value
	t.start = now
	t.target = field
	return true
}

// Step advances the tween to now. flip is true exactly once per switch, on
// the frame where the ring is fully hidden and the active field must change.
// done is true once the tween is idle again.
func (t *Tween) Step(now time.Time) (flip, done bool) {
	if t.phase == TweenIdle {
		return false, true
	}
	p := t.progress(now)
	switch t.phase {
	case TweenOut:
		t.value = t.from * (1 - p)
		if p >= 1 {
			t.value = 0
			t.phase = TweenIn
			t.from = 0
			t.start = now
			return true, false
		}
	case TweenIn:
		t.value = t.from + (1-t.from)*p
		if p >= 1 {
			t.value = 1
			t.phase = TweenIdle
			return false, true
		}
	}
	return false, false
}

func (t *Tween) progress(now time.Time) float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.start)) / float64(t.duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

package core

import "time"

type GestureState int

const (
	GestureIdle GestureState = iota
	GestureDragging
)

func (s GestureState) String() string {
	if s == GestureDragging {
		return "dragging"
	}
	return "idle"
}

// Gesture tracks one pointer drag over the face. Each method returns the
// points that must be resolved against the active tick set, in order.
type Gesture struct {
	state    GestureState
	throttle *Throttle
}

func NewGesture(interval time.Duration, now func() time.Time) *Gesture {
	return &Gesture{throttle: NewThrottle(interval, now)}
}

func (g *Gesture) State() GestureState { return g.state }

// Press starts a drag when p is on the surface. The press position is
// resolved at once so a tap selects.
func (g *Gesture) Press(face Face, p Point) (Point, bool) {
	if !face.Contains(p) {
		return Point{}, false
	}
	g.state = GestureDragging
	g.throttle.Reset()
	g.throttle.Admit(p)
	return p, true
}

// Move resolves p if the throttle admits it. Moves outside a drag are ignored.
func (g *Gesture) Move(p Point) (Point, bool) {
	if g.state != GestureDragging {
		return Point{}, false
	}
	if !g.throttle.Admit(p) {
		return Point{}, false
	}
	return p, true
}

// Release ends the drag. The returned bool reports whether a drag was in
// progress; the point, when ok, is the last sample the throttle dropped.
func (g *Gesture) Release(p Point, hasPos bool) (ended bool, last Point, ok bool) {
	if g.state != GestureDragging {
		return false, Point{}, false
	}
	g.state = GestureIdle
	last, ok = g.throttle.Flush()
	if hasPos {
		last, ok = p, true
	}
	return true, last, ok
}

// Cancel drops the drag without committing pending samples.
func (g *Gesture) Cancel() {
	g.state = GestureIdle
	g.throttle.Reset()
}

package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestThrottleDropsInsideInterval(t *testing.T) {
	clk := newFakeClock()
	th := NewThrottle(30*time.Millisecond, clk.Now)

	if !th.Admit(Point{X: 1}) {
		t.Fatalf("first sample must be admitted")
	}
	clk.Advance(10 * time.Millisecond)
	if th.Admit(Point{X: 2}) {
		t.Fatalf("sample inside interval admitted")
	}
	clk.Advance(5 * time.Millisecond)
	if th.Admit(Point{X: 3}) {
		t.Fatalf("sample inside interval admitted")
	}
	p, ok := th.Flush()
	if !ok || p.X != 3 {
		t.Fatalf("Flush() = %+v, %v; want latest dropped sample", p, ok)
	}
	if _, ok := th.Flush(); ok {
		t.Fatalf("Flush must clear the pending sample")
	}
	clk.Advance(30 * time.Millisecond)
	if !th.Admit(Point{X: 4}) {
		t.Fatalf("sample after interval must be admitted")
	}
}

func TestThrottleZeroIntervalAdmitsAll(t *testing.T) {
	clk := newFakeClock()
	th := NewThrottle(0, clk.Now)
	for i := 0; i < 5; i++ {
		if !th.Admit(Point{X: float64(i)}) {
			t.Fatalf("sample %d dropped with zero interval", i)
		}
	}
}

func TestGestureStates(t *testing.T) {
	clk := newFakeClock()
	face := Layout(29, 30, 14, 11, 1)
	g := NewGesture(30*time.Millisecond, clk.Now)

	if _, ok := g.Move(face.Center); ok {
		t.Fatalf("move while idle must be ignored")
	}
	if _, ok := g.Press(face, Point{X: 0, Y: 0}); ok {
		t.Fatalf("press outside the surface must be ignored")
	}
	if g.State() != GestureIdle {
		t.Fatalf("state = %s, want idle", g.State())
	}

	pos, ok := g.Press(face, face.Center)
	if !ok || pos != face.Center || g.State() != GestureDragging {
		t.Fatalf("press on surface: pos=%+v ok=%v state=%s", pos, ok, g.State())
	}
	if _, ok := g.Move(Point{X: 15, Y: 10}); ok {
		t.Fatalf("move right after press must be throttled")
	}

	ended, last, ok := g.Release(Point{}, false)
	if !ended || !ok || last != (Point{X: 15, Y: 10}) {
		t.Fatalf("release: ended=%v last=%+v ok=%v", ended, last, ok)
	}
	if g.State() != GestureIdle {
		t.Fatalf("state after release = %s, want idle", g.State())
	}
	if ended, _, _ := g.Release(Point{}, true); ended {
		t.Fatalf("second release must not end a drag")
	}
}

func TestGestureReleasePositionWins(t *testing.T) {
	clk := newFakeClock()
	face := Layout(29, 30, 14, 11, 1)
	g := NewGesture(30*time.Millisecond, clk.Now)
	g.Press(face, face.Center)
	g.Move(Point{X: 20, Y: 20})
	_, last, ok := g.Release(Point{X: 5, Y: 5}, true)
	if !ok || last != (Point{X: 5, Y: 5}) {
		t.Fatalf("release resolved %+v, want release position", last)
	}
}

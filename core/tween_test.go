package core

import (
	"testing"
	"time"
)

func TestTweenTwoPhases(t *testing.T) {
	clk := newFakeClock()
	tw := NewTween(200 * time.Millisecond)

	if tw.Start(FieldHour, FieldHour, clk.Now()) {
		t.Fatalf("switch to the active field must be a no-op")
	}
	if !tw.Start(FieldHour, FieldMinute, clk.Now()) {
		t.Fatalf("switch to minute must start")
	}
	if tw.Phase() != TweenOut || tw.Generation() != 1 {
		t.Fatalf("phase=%s gen=%d after start", tw.Phase(), tw.Generation())
	}

	clk.Advance(100 * time.Millisecond)
	flip, done := tw.Step(clk.Now())
	if flip || done || !near(tw.Value(), 0.5) {
		t.Fatalf("mid fade-out: flip=%v done=%v value=%v", flip, done, tw.Value())
	}

	clk.Advance(100 * time.Millisecond)
	flip, done = tw.Step(clk.Now())
	if !flip || done || tw.Value() != 0 || tw.Phase() != TweenIn {
		t.Fatalf("end of fade-out: flip=%v done=%v value=%v phase=%s", flip, done, tw.Value(), tw.Phase())
	}
	if !near(tw.Scale(), 1.2) {
		t.Fatalf("hidden scale = %v, want 1.2", tw.Scale())
	}

	clk.Advance(50 * time.Millisecond)
	flip, done = tw.Step(clk.Now())
	if flip || done || !near(tw.Value(), 0.25) {
		t.Fatalf("fade-in: flip=%v done=%v value=%v", flip, done, tw.Value())
	}

	clk.Advance(150 * time.Millisecond)
	flip, done = tw.Step(clk.Now())
	if flip || !done || tw.Value() != 1 || tw.Phase() != TweenIdle {
		t.Fatalf("end: flip=%v done=%v value=%v phase=%s", flip, done, tw.Value(), tw.Phase())
	}
}

func TestTweenRetargetDuringFadeOut(t *testing.T) {
	clk := newFakeClock()
	tw := NewTween(200 * time.Millisecond)
	tw.Start(FieldHour, FieldMinute, clk.Now())
	clk.Advance(100 * time.Millisecond)
	tw.Step(clk.Now())

	if !tw.Start(FieldHour, FieldHour, clk.Now()) {
		t.Fatalf("retarget during fade-out must start a new generation")
	}
	if tw.Generation() != 2 || tw.Target() != FieldHour {
		t.Fatalf("gen=%d target=%s", tw.Generation(), tw.Target())
	}
	clk.Advance(100 * time.Millisecond)
	tw.Step(clk.Now())
	if !near(tw.Value(), 0.25) {
		t.Fatalf("fade continues from current value: got %v, want 0.25", tw.Value())
	}
}

func TestTweenReverseDuringFadeIn(t *testing.T) {
	clk := newFakeClock()
	tw := NewTween(200 * time.Millisecond)
	tw.Start(FieldHour, FieldMinute, clk.Now())
	clk.Advance(200 * time.Millisecond)
	tw.Step(clk.Now()) // flip, now on minute
	clk.Advance(100 * time.Millisecond)
	tw.Step(clk.Now())

	if tw.Start(FieldMinute, FieldMinute, clk.Now()) {
		t.Fatalf("switch to the field fading in must be a no-op")
	}
	if !tw.Start(FieldMinute, FieldHour, clk.Now()) {
		t.Fatalf("switch back during fade-in must start")
	}
	if tw.Phase() != TweenOut || !near(tw.Value(), 0.5) {
		t.Fatalf("phase=%s value=%v", tw.Phase(), tw.Value())
	}
}

func TestTweenZeroDuration(t *testing.T) {
	clk := newFakeClock()
	tw := NewTween(0)
	tw.Start(FieldHour, FieldMinute, clk.Now())
	flip, done := tw.Step(clk.Now())
	if !flip || done {
		t.Fatalf("first step: flip=%v done=%v", flip, done)
	}
	flip, done = tw.Step(clk.Now())
	if flip || !done {
		t.Fatalf("second step: flip=%v done=%v", flip, done)
	}
}

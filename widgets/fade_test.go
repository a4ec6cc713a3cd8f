package widgets

import "testing"

func TestFadeEndpoints(t *testing.T) {
	if got := Fade("#ffffff", "#000000", 1); got != "#ffffff" {
		t.Fatalf("opacity 1 = %s", got)
	}
	if got := Fade("#ffffff", "#000000", 0); got != "#000000" {
		t.Fatalf("opacity 0 = %s", got)
	}
}

func TestFadeBlends(t *testing.T) {
	got := Fade("#ffffff", "#000000", 0.5)
	if got == "#ffffff" || got == "#000000" || len(got) != 7 {
		t.Fatalf("half fade = %s, want an intermediate hex colour", got)
	}
}

func TestFadeNonHexSnaps(t *testing.T) {
	if got := Fade("241", "#000000", 0.7); got != "241" {
		t.Fatalf("snap high = %s", got)
	}
	if got := Fade("241", "#000000", 0.3); got != "#000000" {
		t.Fatalf("snap low = %s", got)
	}
}

func TestColorsWithDefaults(t *testing.T) {
	c := Colors{ClockActive: "#123456"}.WithDefaults()
	if c.ClockActive != "#123456" {
		t.Fatalf("override lost: %s", c.ClockActive)
	}
	if c.ClockBackground != DefaultColors().ClockBackground {
		t.Fatalf("default not applied: %s", c.ClockBackground)
	}
}

func TestInset(t *testing.T) {
	st := NewStyles(DefaultColors()).Container.Padding(1, 2)
	x, y := Inset(st)
	if x != 2 || y != 1 {
		t.Fatalf("Inset = %d,%d want 2,1", x, y)
	}
}

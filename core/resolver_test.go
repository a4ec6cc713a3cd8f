package core

import (
	"math/rand"
	"testing"
)

func TestNearestReturnsStoredIndex(t *testing.T) {
	face := Layout(29, 30, 14, 11, 1)
	for _, points := range [][]ClockPoint{face.Hours, face.Minutes} {
		for i, p := range points {
			if got := Nearest(points, p.Pos); got != i {
				t.Fatalf("Nearest(points[%d]) = %d", i, got)
			}
		}
	}
}

func TestNearestAlwaysInRange(t *testing.T) {
	face := Layout(29, 30, 14, 11, 5)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		p := Point{X: rng.Float64()*200 - 100, Y: rng.Float64()*200 - 100}
		for _, points := range [][]ClockPoint{face.Hours, face.Minutes} {
			got := Nearest(points, p)
			if got < 0 || got >= len(points) {
				t.Fatalf("Nearest(%+v) = %d, out of [0,%d)", p, got, len(points))
			}
		}
	}
}

func TestNearestTieKeepsFirst(t *testing.T) {
	points := []ClockPoint{
		{Value: 1, Pos: Point{X: -1, Y: 0}},
		{Value: 2, Pos: Point{X: 1, Y: 0}},
	}
	if got := Nearest(points, Point{}); got != 0 {
		t.Fatalf("tie resolved to %d, want 0", got)
	}
}

func TestNearestEmpty(t *testing.T) {
	if got := Nearest(nil, Point{}); got != -1 {
		t.Fatalf("Nearest(nil) = %d, want -1", got)
	}
}

func TestCellRoundTrip(t *testing.T) {
	for col := 0; col < 10; col++ {
		for row := 0; row < 10; row++ {
			c, r := CellOf(CellCenter(col, row, 2), 2)
			if c != col || r != row {
				t.Fatalf("(%d,%d) round-tripped to (%d,%d)", col, row, c, r)
			}
		}
	}
}

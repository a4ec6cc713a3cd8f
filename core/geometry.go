package core

import "math"

// Point is a position in the surface's logical space. One unit is the width
// of a terminal column; rows are CellAspect units tall.
type Point struct {
	X float64
	Y float64
}

// ClockPoint is one selectable tick on the face.
type ClockPoint struct {
	Label int
	Value int
	Angle float64 // radians, 0 at 3 o'clock, -π/2 at 12 o'clock
	Pos   Point
}

// Face is the laid-out geometry for one surface size. It is rebuilt on
// every size change and never mutated afterwards.
type Face struct {
	Width        float64
	Height       float64
	Center       Point
	Radius       float64
	NumberRadius float64
	Hours        []ClockPoint
	Minutes      []ClockPoint
}

// HourValues lists hour labels in face order, 12 first.
func HourValues() []int {
	out := make([]int, 0, 12)
	out = append(out, 12)
	for h := 1; h <= 11; h++ {
		out = append(out, h)
	}
	return out
}

// MinuteValues lists minute values in face order for the given granularity.
func MinuteValues(step int) []int {
	if step <= 0 {
		step = 1
	}
	out := make([]int, 0, 60/step)
	for m := 0; m < 60; m += step {
		out = append(out, m)
	}
	return out
}

// Layout places hour and minute ticks evenly around a circle centred in a
// width x height surface. It is pure: identical input gives identical output.
func Layout(width, height, radius, numberRadius float64, minuteStep int) Face {
	center := Point{X: width / 2, Y: height / 2}
	return Face{
		Width:        width,
		Height:       height,
		Center:       center,
		Radius:       radius,
		NumberRadius: numberRadius,
		Hours:        ring(center, numberRadius, HourValues()),
		Minutes:      ring(center, numberRadius, MinuteValues(minuteStep)),
	}
}

func ring(center Point, r float64, values []int) []ClockPoint {
	n := len(values)
	out := make([]ClockPoint, n)
	for i, v := range values {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		out[i] = ClockPoint{
			Label: v,
			Value: v,
			Angle: angle,
			Pos: Point{
				X: center.X + r*math.Cos(angle),
				Y: center.Y + r*math.Sin(angle),
			},
		}
	}
	return out
}

// Points returns the tick set for a field.
func (f Face) Points(field Field) []ClockPoint {
	if field == FieldMinute {
		return f.Minutes
	}
	return f.Hours
}

// Contains reports whether p lies on the circular surface.
func (f Face) Contains(p Point) bool {
	return distance(p, f.Center) <= f.Radius
}

// IndexOf returns the tick index holding value, or -1.
func IndexOf(points []ClockPoint, value int) int {
	for i, p := range points {
		if p.Value == value {
			return i
		}
	}
	return -1
}

// AngleDegrees is the clockwise angle from 12 o'clock of tick i out of n.
func AngleDegrees(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(i) * 360 / float64(n)
}

// PointAt returns the position at radius r along the given angle.
func PointAt(center Point, r, angle float64) Point {
	return Point{X: center.X + r*math.Cos(angle), Y: center.Y + r*math.Sin(angle)}
}

func distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

package core

import "math"

// Nearest returns the index of the tick closest to p by Euclidean distance.
// Ties keep the first tick in face order. It returns -1 for an empty set.
func Nearest(points []ClockPoint, p Point) int {
	best := -1
	bestDist := math.Inf(1)
	for i, pt := range points {
		d := distance(pt.Pos, p)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// CellCenter maps a local cell (column, row) to the logical point at its
// centre.
func CellCenter(col, row int, aspect float64) Point {
	return Point{X: float64(col) + 0.5, Y: (float64(row) + 0.5) * aspect}
}

// CellOf maps a logical point back to the cell containing it.
func CellOf(p Point, aspect float64) (col, row int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y / aspect))
}

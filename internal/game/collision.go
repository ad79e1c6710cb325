package game

import (
	"math"
	"math/rand"
)

// Position represents a 2D coordinate in arena space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(dx*dx + dy*dy)
}

// Overlaps reports whether the box at (x, y) with size (w, h) intersects o.
func (o Obstacle) Overlaps(x, y, w, h float64) bool {
	return x+w > o.X && x < o.X+o.W && y+h > o.Y && y < o.Y+o.H
}

// Center returns the midpoint of the obstacle rectangle.
func (o Obstacle) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// Constrain clamps v into [lo, hi].
func Constrain(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InContactRange reports whether two centered entities of the given sizes touch.
func InContactRange(x1, y1, size1, x2, y2, size2 float64) bool {
	return Distance(x1, y1, x2, y2) < (size1+size2)/2
}

// randRange returns a uniform value in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randAngle returns a uniform heading in [0, 2π).
func randAngle(rng *rand.Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

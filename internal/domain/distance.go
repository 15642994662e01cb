package domain

import "math"

type DistanceFunc func(a, b Position) float64

// EuclideanDistance is the straight-line distance between two positions.
func EuclideanDistance(a, b Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

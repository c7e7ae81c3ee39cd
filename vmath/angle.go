package vmath

import "math"

// TwoPi is a full turn in radians
const TwoPi = 2 * math.Pi

// WrapAngle maps an angle into [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// Mod of a tiny negative can round up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// AngleDiff returns the signed shortest difference a−b in (−π, π]
func AngleDiff(a, b float64) float64 {
	d := WrapAngle(a - b)
	if d > math.Pi {
		d -= TwoPi
	}
	return d
}

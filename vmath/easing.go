package vmath

import "math"

// EaseInOutCubic maps t∈[0,1] to an S-curve, t is clamped first
func EaseInOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

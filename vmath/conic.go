package vmath

import "math"

// ConicRadius returns the focal radius of an ellipse at true anomaly theta
// r(θ) = a(1−e²)/(1+e·cosθ), a is the semi-major axis, 0 ≤ e < 1
func ConicRadius(a, e, theta float64) float64 {
	return a * (1 - e*e) / (1 + e*math.Cos(theta))
}

// ConicPoint returns the position on the orbit in the XZ plane
func ConicPoint(a, e, theta float64) Vec3F {
	r := ConicRadius(a, e, theta)
	s, c := math.Sincos(theta)
	return Vec3F{X: r * c, Z: r * s}
}

// ConicPath samples a closed orbit with segments+1 points, first == last
func ConicPath(a, e float64, segments int) []Vec3F {
	if segments < 1 {
		segments = 1
	}
	pts := make([]Vec3F, segments+1)
	for i := 0; i <= segments; i++ {
		theta := float64(i) / float64(segments) * 2 * math.Pi
		pts[i] = ConicPoint(a, e, theta)
	}
	return pts
}

// CirclePoint returns (cos·d, 0, sin·d)
func CirclePoint(angle, distance float64) Vec3F {
	s, c := math.Sincos(angle)
	return Vec3F{X: c * distance, Z: s * distance}
}

package vmath

import "math"

// Spherical holds polar coordinates around the origin
// Phi is measured from +Y, Theta is the azimuth around Y starting at +Z
type Spherical struct {
	Radius, Phi, Theta float64
}

// SphericalFromV3F converts a cartesian point to spherical coordinates
func SphericalFromV3F(v Vec3F) Spherical {
	r := V3FMag(v)
	if r == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius: r,
		Theta:  math.Atan2(v.X, v.Z),
		Phi:    math.Acos(Clamp(v.Y/r, -1, 1)),
	}
}

// V3F converts back to cartesian coordinates
func (s Spherical) V3F() Vec3F {
	sinPhi := math.Sin(s.Phi) * s.Radius
	return Vec3F{
		X: sinPhi * math.Sin(s.Theta),
		Y: math.Cos(s.Phi) * s.Radius,
		Z: sinPhi * math.Cos(s.Theta),
	}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

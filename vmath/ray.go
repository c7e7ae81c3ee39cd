package vmath

import "math"

// Ray is a half-line, Dir is unit length
type Ray struct {
	Origin Vec3F
	Dir    Vec3F
}

// At returns the point at parameter t
func (r Ray) At(t float64) Vec3F {
	return V3FAdd(r.Origin, V3FScale(r.Dir, t))
}

// IntersectSphere returns the nearest non-negative t, ok=false on miss
func (r Ray) IntersectSphere(center Vec3F, radius float64) (float64, bool) {
	oc := V3FSub(r.Origin, center)
	b := V3FDot(oc, r.Dir)
	c := V3FMagSq(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectHorizontalPlane intersects the plane y = height
func (r Ray) IntersectHorizontalPlane(height float64) (float64, bool) {
	if math.Abs(r.Dir.Y) < 1e-12 {
		return 0, false
	}
	t := (height - r.Origin.Y) / r.Dir.Y
	if t < 0 {
		return 0, false
	}
	return t, true
}

// DistanceToSegment returns the closest distance between the ray and segment ab
// and the ray parameter at the closest approach
func (r Ray) DistanceToSegment(a, b Vec3F) (dist, t float64) {
	// Closest points between two lines, segment parameter clamped to [0,1]
	seg := V3FSub(b, a)
	w := V3FSub(r.Origin, a)
	segLenSq := V3FMagSq(seg)
	dd := V3FDot(r.Dir, seg)
	dw := V3FDot(r.Dir, w)
	sw := V3FDot(seg, w)

	denom := segLenSq - dd*dd
	var s float64
	if denom > 1e-12 {
		s = (sw - dd*dw) / denom
	}
	s = Clamp(s, 0, 1)
	if segLenSq == 0 {
		s = 0
	}

	p := V3FAdd(a, V3FScale(seg, s))
	t = V3FDot(V3FSub(p, r.Origin), r.Dir)
	if t < 0 {
		t = 0
	}
	return V3FDist(r.At(t), p), t
}

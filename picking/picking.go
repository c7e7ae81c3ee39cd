// Package picking resolves pointer positions to scene entities.
package picking

import (
	"math"

	"github.com/lixenwraith/cosmos/camera"
	"github.com/lixenwraith/cosmos/scene"
	"github.com/lixenwraith/cosmos/vmath"
)

// LineThreshold is how close a ray must pass to an orbit polyline to hit it
const LineThreshold = 1.0

// HitKind classifies a pick result
type HitKind uint8

const (
	HitNone HitKind = iota
	HitStar
	HitPlanet
	HitMoon
	HitAsteroid
	HitRing
	HitOrbit
)

var hitNames = [...]string{
	HitNone:     "none",
	HitStar:     "star",
	HitPlanet:   "planet",
	HitMoon:     "moon",
	HitAsteroid: "asteroid",
	HitRing:     "ring",
	HitOrbit:    "orbit",
}

func (k HitKind) String() string {
	if int(k) < len(hitNames) {
		return hitNames[k]
	}
	return "unknown"
}

// Hit is the nearest entity under a pick ray
// Body is set for planet, moon, ring and orbit hits and names the owning planet
type Hit struct {
	Kind     HitKind
	Body     *scene.OrbitingBody
	Distance float64
}

// Focusable reports whether the hit should trigger a camera focus
// Only planets qualify, the star, moons, rings, asteroids and orbit lines do not
func (h Hit) Focusable() bool {
	return h.Kind == HitPlanet && h.Body != nil
}

// PixelToNDC maps a raster position to normalized device coordinates, y up
func PixelToNDC(px, py, width, height float64) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return px/width*2 - 1, -(py/height)*2 + 1
}

// Pick casts a ray through ndcX,ndcY and returns the nearest hit
func Pick(cam *camera.Camera, s *scene.Scene, ndcX, ndcY float64) Hit {
	ray := cam.Ray(ndcX, ndcY)
	best := Hit{Kind: HitNone, Distance: math.Inf(1)}

	consider := func(kind HitKind, body *scene.OrbitingBody, t float64) {
		if t < best.Distance {
			best = Hit{Kind: kind, Body: body, Distance: t}
		}
	}

	if s.Star != nil {
		if t, ok := ray.IntersectSphere(vmath.V3FZero, s.Star.Spec.Radius); ok {
			consider(HitStar, nil, t)
		}
	}

	for _, b := range s.Bodies {
		if t, ok := ray.IntersectSphere(b.Position, b.Spec.Radius); ok {
			consider(HitPlanet, b, t)
		}
		if b.Rings != nil {
			if t, ok := intersectRing(ray, b.Position, b.Rings); ok {
				consider(HitRing, b, t)
			}
		}
	}

	for _, m := range s.Moons {
		if t, ok := ray.IntersectSphere(m.WorldPosition(), m.Radius); ok {
			consider(HitMoon, m.Parent, t)
		}
	}

	for _, a := range s.Asteroids {
		if t, ok := ray.IntersectSphere(a.Position, a.Radius); ok {
			consider(HitAsteroid, nil, t)
		}
	}

	for _, o := range s.Orbits {
		if !o.Visible {
			continue
		}
		for i := 1; i < len(o.Points); i++ {
			d, t := ray.DistanceToSegment(o.Points[i-1], o.Points[i])
			if d <= LineThreshold && t > 0 {
				consider(HitOrbit, o.Body, t)
			}
		}
	}

	if best.Kind == HitNone {
		best.Distance = 0
	}
	return best
}

// intersectRing hits the annulus lying in the horizontal plane through center
func intersectRing(ray vmath.Ray, center vmath.Vec3F, r *scene.Ring) (float64, bool) {
	t, ok := ray.IntersectHorizontalPlane(center.Y)
	if !ok {
		return 0, false
	}
	p := ray.At(t)
	d := math.Hypot(p.X-center.X, p.Z-center.Z)
	if d < r.Inner || d > r.Outer {
		return 0, false
	}
	return t, true
}

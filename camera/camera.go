// Package camera implements the perspective camera and the pointer-driven controller around it.
package camera

import (
	"math"

	"github.com/lixenwraith/cosmos/vmath"
)

// Camera is a right-handed perspective camera with +Y up
// Projection follows the common GL convention: NDC x,y in [-1,1], z >= 1 is behind the eye or past Far
type Camera struct {
	Position vmath.Vec3F
	Target   vmath.Vec3F
	FOV      float64 // vertical, degrees
	Aspect   float64 // width / height
	Near     float64
	Far      float64
}

// Basis returns the orthonormal right, up, forward vectors
// A forward vector parallel to world up falls back to +X as right
func (c *Camera) Basis() (right, up, forward vmath.Vec3F) {
	forward = vmath.V3FNormalize(vmath.V3FSub(c.Target, c.Position))
	if forward == vmath.V3FZero {
		forward = vmath.Vec3F{Z: -1}
	}
	right = vmath.V3FCross(forward, vmath.V3FUp)
	if vmath.V3FMagSq(right) < 1e-12 {
		right = vmath.Vec3F{X: 1}
	}
	right = vmath.V3FNormalize(right)
	up = vmath.V3FCross(right, forward)
	return right, up, forward
}

// tanHalf is tan(FOV/2)
func (c *Camera) tanHalf() float64 {
	return math.Tan(c.FOV * math.Pi / 360)
}

// ViewDepth returns the distance of p along the view direction, negative when behind
func (c *Camera) ViewDepth(p vmath.Vec3F) float64 {
	pr := c.Projector()
	return pr.Depth(p)
}

// Project maps a world point to normalized device coordinates
func (c *Camera) Project(p vmath.Vec3F) vmath.Vec3F {
	pr := c.Projector()
	return pr.Project(p)
}

// ProjectedRadius returns the approximate NDC-height radius of a sphere at view depth
func (c *Camera) ProjectedRadius(radius, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return radius / (depth * c.tanHalf())
}

// Ray returns the world-space ray through NDC point x,y
func (c *Camera) Ray(ndcX, ndcY float64) vmath.Ray {
	pr := c.Projector()
	return pr.Ray(ndcX, ndcY)
}

// SetViewport updates the aspect ratio, zero or negative dimensions are ignored
func (c *Camera) SetViewport(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	c.Aspect = float64(width) / float64(height)
	return true
}

// LookAt aims the camera at t
func (c *Camera) LookAt(t vmath.Vec3F) {
	c.Target = t
}

// Distance returns the distance from the scene origin
func (c *Camera) Distance() float64 {
	return vmath.V3FMag(c.Position)
}

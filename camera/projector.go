package camera

import (
	"math"

	"github.com/lixenwraith/cosmos/vmath"
)

// Projector is a per-frame snapshot of a Camera with the basis precomputed
// The basis is derived once per frame
type Projector struct {
	Position           vmath.Vec3F
	Right, Up, Forward vmath.Vec3F
	tanHalf, aspect    float64
	f, zA, zB          float64
	Near, Far          float64
}

// Projector captures the current camera state
func (c *Camera) Projector() Projector {
	right, up, forward := c.Basis()
	th := c.tanHalf()
	n, fr := c.Near, c.Far
	return Projector{
		Position: c.Position,
		Right:    right,
		Up:       up,
		Forward:  forward,
		tanHalf:  th,
		aspect:   c.Aspect,
		f:        1 / th,
		zA:       (fr + n) / (fr - n),
		zB:       2 * fr * n / (fr - n),
		Near:     n,
		Far:      fr,
	}
}

// Depth returns the distance of p along the view direction
func (p *Projector) Depth(v vmath.Vec3F) float64 {
	return vmath.V3FDot(vmath.V3FSub(v, p.Position), p.Forward)
}

// Project maps a world point to NDC, Z >= 1 means not visible
func (p *Projector) Project(v vmath.Vec3F) vmath.Vec3F {
	d := vmath.V3FSub(v, p.Position)
	zc := vmath.V3FDot(d, p.Forward)
	if zc == 0 {
		return vmath.Vec3F{Z: math.Inf(1)}
	}
	return vmath.Vec3F{
		X: vmath.V3FDot(d, p.Right) * p.f / (p.aspect * zc),
		Y: vmath.V3FDot(d, p.Up) * p.f / zc,
		Z: p.zA - p.zB/zc,
	}
}

// ProjectedRadius returns a sphere's radius in NDC height units at view depth
func (p *Projector) ProjectedRadius(radius, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return radius / (depth * p.tanHalf)
}

// Ray returns the world-space ray through NDC x,y
func (p *Projector) Ray(ndcX, ndcY float64) vmath.Ray {
	dir := vmath.V3FAdd(p.Forward, vmath.V3FAdd(
		vmath.V3FScale(p.Right, ndcX*p.tanHalf*p.aspect),
		vmath.V3FScale(p.Up, ndcY*p.tanHalf),
	))
	return vmath.Ray{Origin: p.Position, Dir: vmath.V3FNormalize(dir)}
}

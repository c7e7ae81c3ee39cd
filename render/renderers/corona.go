package renderers

import (
	"math"

	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/sim"
	"github.com/lixenwraith/cosmos/vmath"
)

// CoronaRenderer adds the pulsing halo shell around the star
// The far side of the shell is drawn so the star itself occludes the center
type CoronaRenderer struct {
	sc *sim.Context
}

// NewCoronaRenderer creates the halo layer
func NewCoronaRenderer(sc *sim.Context) *CoronaRenderer {
	return &CoronaRenderer{sc: sc}
}

// RenderCanvas implements render.CanvasRenderer
func (r *CoronaRenderer) RenderCanvas(_ render.RenderContext, canvas *render.Canvas) {
	s := r.sc.Scene()
	if s == nil || s.Star == nil || s.Star.Corona.Radius <= 0 {
		return
	}
	f, ok := newFrame(r.sc, canvas)
	if !ok {
		return
	}
	corona := s.Star.Corona
	b, _, ok := f.sphereBox(vmath.V3FZero, corona.Radius)
	if !ok {
		return
	}

	inv := 1 / corona.Radius
	for y := b.y0; y <= b.y1; y++ {
		for x := b.x0; x <= b.x1; x++ {
			ray := f.pixelRay(x, y)
			tFar, hit := farIntersection(ray, vmath.V3FZero, corona.Radius)
			if !hit {
				continue
			}
			p := ray.At(tFar)
			n := vmath.V3FScale(p, inv)
			// View space +Z points at the eye
			viewDot := -vmath.V3FDot(n, f.proj.Forward)
			alpha := corona.Alpha(viewDot)
			if alpha <= 0 {
				continue
			}
			canvas.Plot(x, y, f.proj.Depth(p), corona.Color, render.BlendAdd, alpha)
		}
	}
}

// farIntersection returns the exit parameter of a ray through a sphere
func farIntersection(ray vmath.Ray, center vmath.Vec3F, radius float64) (float64, bool) {
	oc := vmath.V3FSub(ray.Origin, center)
	b := vmath.V3FDot(oc, ray.Dir)
	c := vmath.V3FMagSq(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	t := -b + math.Sqrt(disc)
	return t, t >= 0
}

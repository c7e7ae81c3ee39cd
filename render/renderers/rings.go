package renderers

import (
	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/sim"
)

// RingsRenderer draws translucent annuli in each ringed body's equatorial plane
type RingsRenderer struct {
	sc *sim.Context
}

// NewRingsRenderer creates the ring layer
func NewRingsRenderer(sc *sim.Context) *RingsRenderer {
	return &RingsRenderer{sc: sc}
}

// RenderCanvas implements render.CanvasRenderer
func (r *RingsRenderer) RenderCanvas(_ render.RenderContext, canvas *render.Canvas) {
	s := r.sc.Scene()
	if s == nil {
		return
	}
	f, ok := newFrame(r.sc, canvas)
	if !ok {
		return
	}

	for _, body := range s.Bodies {
		ring := body.Rings
		if ring == nil {
			continue
		}
		inner, outer := ring.Inner, ring.Outer
		b, _, ok := f.sphereBox(body.Position, outer)
		if !ok {
			continue
		}
		innerSq, outerSq := inner*inner, outer*outer

		for y := b.y0; y <= b.y1; y++ {
			for x := b.x0; x <= b.x1; x++ {
				ray := f.pixelRay(x, y)
				t, hit := ray.IntersectHorizontalPlane(body.Position.Y)
				if !hit {
					continue
				}
				p := ray.At(t)
				dx, dz := p.X-body.Position.X, p.Z-body.Position.Z
				d := dx*dx + dz*dz
				if d < innerSq || d > outerSq {
					continue
				}
				canvas.Plot(x, y, f.proj.Depth(p), ring.Color, render.BlendAlpha, ring.Opacity)
			}
		}
	}
}

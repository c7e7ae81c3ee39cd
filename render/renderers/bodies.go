package renderers

import (
	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/sim"
	"github.com/lixenwraith/cosmos/vmath"
)

// BodiesRenderer rasterizes the star, planets and moons
// The star is unlit, everything else takes Lambert shading from the active lighting rig
type BodiesRenderer struct {
	sc     *sim.Context
	pixels int
}

// NewBodiesRenderer creates the body layer
func NewBodiesRenderer(sc *sim.Context) *BodiesRenderer {
	return &BodiesRenderer{sc: sc}
}

// Pixels returns how many pixels the last frame wrote
func (r *BodiesRenderer) Pixels() int {
	return r.pixels
}

// RenderCanvas implements render.CanvasRenderer
func (r *BodiesRenderer) RenderCanvas(_ render.RenderContext, canvas *render.Canvas) {
	r.pixels = 0
	s := r.sc.Scene()
	if s == nil {
		return
	}
	f, ok := newFrame(r.sc, canvas)
	if !ok {
		return
	}
	rig := r.sc.Lighting()

	if s.Star != nil {
		r.pixels += rasterSphere(&f, canvas, sphere{
			center: vmath.V3FZero,
			radius: s.Star.Spec.Radius,
			tex:    s.Star.Texture,
			color:  render.Hex(s.Star.Spec.Color),
			spin:   s.Star.Spin,
		}, &rig)
	}

	for _, b := range s.Bodies {
		r.pixels += rasterSphere(&f, canvas, sphere{
			center: b.Position,
			radius: b.Spec.Radius,
			tex:    b.Texture,
			color:  render.Hex(b.Spec.Color),
			spin:   b.Spin,
			lit:    true,
		}, &rig)
	}

	for _, m := range s.Moons {
		r.pixels += rasterSphere(&f, canvas, sphere{
			center: m.WorldPosition(),
			radius: m.Radius,
			color:  m.Color,
			lit:    true,
		}, &rig)
	}
}

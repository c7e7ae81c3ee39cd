package renderers

import (
	"math"

	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/sim"
	"github.com/lixenwraith/cosmos/vmath"
)

// orbitOpacity is the polyline alpha over the background
const orbitOpacity = 0.3

// OrbitsRenderer draws each visible orbit as a translucent polyline
type OrbitsRenderer struct {
	sc *sim.Context
}

// NewOrbitsRenderer creates the orbit layer
func NewOrbitsRenderer(sc *sim.Context) *OrbitsRenderer {
	return &OrbitsRenderer{sc: sc}
}

// IsVisible implements render.VisibilityToggle
func (r *OrbitsRenderer) IsVisible() bool {
	return r.sc.Toggles().OrbitsVisible
}

// RenderCanvas implements render.CanvasRenderer
func (r *OrbitsRenderer) RenderCanvas(_ render.RenderContext, canvas *render.Canvas) {
	s := r.sc.Scene()
	if s == nil {
		return
	}
	f, ok := newFrame(r.sc, canvas)
	if !ok {
		return
	}
	limit := 4 * (f.w + f.h)

	for _, path := range s.Orbits {
		if !path.Visible || len(path.Points) < 2 {
			continue
		}
		px, py, pd, pok := f.toPixel(path.Points[0])
		for _, pt := range path.Points[1:] {
			x, y, d, ok := f.toPixel(pt)
			if ok && pok && math.Abs(x-px)+math.Abs(y-py) < limit && !offscreen(&f, px, py, x, y) {
				r.segment(canvas, px, py, pd, x, y, d)
			}
			px, py, pd, pok = x, y, d, ok
		}
	}
}

// segment plots one polyline edge, skipping its first pixel which the previous edge owns
func (r *OrbitsRenderer) segment(canvas *render.Canvas, x0, y0, d0, x1, y1, d1 float64) {
	first := true
	vmath.Traverse(x0, y0, x1, y1, func(x, y int, t float64) bool {
		if first {
			first = false
			return true
		}
		canvas.Plot(x, y, d0+(d1-d0)*t, render.RgbOrbit, render.BlendAlpha, orbitOpacity)
		return true
	})
}

// offscreen reports whether both endpoints lie beyond the same raster edge
func offscreen(f *frame, x0, y0, x1, y1 float64) bool {
	return (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) ||
		(x0 >= f.w && x1 >= f.w) || (y0 >= f.h && y1 >= f.h)
}

package renderers

import (
	"math"

	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/sim"
	"github.com/lixenwraith/cosmos/vmath"
)

// StarfieldRenderer plots the background point cloud at the far plane
type StarfieldRenderer struct {
	sc *sim.Context
}

// NewStarfieldRenderer creates the background layer
func NewStarfieldRenderer(sc *sim.Context) *StarfieldRenderer {
	return &StarfieldRenderer{sc: sc}
}

// RenderCanvas implements render.CanvasRenderer
func (r *StarfieldRenderer) RenderCanvas(_ render.RenderContext, canvas *render.Canvas) {
	s := r.sc.Scene()
	if s == nil {
		return
	}
	f, ok := newFrame(r.sc, canvas)
	if !ok {
		return
	}
	field := &s.Starfield
	for _, p := range field.Points {
		x, y, _, ok := f.toPixel(vmath.V3FRotateY(p, field.Rotation))
		if !ok {
			continue
		}
		canvas.Plot(int(math.Floor(x)), int(math.Floor(y)), f.proj.Far, field.Color, render.BlendAlpha, field.Opacity)
	}
}

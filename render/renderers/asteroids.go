package renderers

import (
	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/sim"
)

// AsteroidsRenderer draws the belt, mostly as single lit pixels
type AsteroidsRenderer struct {
	sc *sim.Context
}

// NewAsteroidsRenderer creates the belt layer
func NewAsteroidsRenderer(sc *sim.Context) *AsteroidsRenderer {
	return &AsteroidsRenderer{sc: sc}
}

// RenderCanvas implements render.CanvasRenderer
func (r *AsteroidsRenderer) RenderCanvas(_ render.RenderContext, canvas *render.Canvas) {
	s := r.sc.Scene()
	if s == nil || len(s.Asteroids) == 0 {
		return
	}
	f, ok := newFrame(r.sc, canvas)
	if !ok {
		return
	}
	rig := r.sc.Lighting()
	for _, a := range s.Asteroids {
		rasterSphere(&f, canvas, sphere{
			center: a.Position,
			radius: a.Radius,
			color:  render.RgbAsteroid,
			lit:    true,
		}, &rig)
	}
}

package renderers

import (
	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/sim"
)

// LabelsRenderer writes planet names next to their projected positions
type LabelsRenderer struct {
	sc *sim.Context
}

// NewLabelsRenderer creates the label layer
func NewLabelsRenderer(sc *sim.Context) *LabelsRenderer {
	return &LabelsRenderer{sc: sc}
}

// IsVisible implements render.VisibilityToggle
func (r *LabelsRenderer) IsVisible() bool {
	return r.sc.Toggles().LabelsVisible
}

// Render implements render.SystemRenderer
func (r *LabelsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, l := range r.sc.Labels() {
		if l.X < 0 || l.Y < 0 {
			continue
		}
		col, row := ctx.PixelToCell(int(l.X), int(l.Y))
		if row >= ctx.ViewRows || col+1 >= ctx.Width {
			continue
		}
		buf.SetTextFg(col+1, row, l.Name, render.RgbLabel)
	}
}

package renderers

import (
	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/sim"
)

// Register adds every cosmos layer to the orchestrator in draw order
// The HUD is skipped when withHUD is false
func Register(o *render.RenderOrchestrator, sc *sim.Context, hint HintFunc, status StatusFunc, withHUD bool) {
	o.Register(NewStarfieldRenderer(sc), render.PriorityBackground)
	o.Register(NewOrbitsRenderer(sc), render.PriorityOrbits)
	o.Register(NewBodiesRenderer(sc), render.PriorityBodies)
	o.Register(NewRingsRenderer(sc), render.PriorityRings)
	o.Register(NewAsteroidsRenderer(sc), render.PriorityBelt)
	o.Register(NewCoronaRenderer(sc), render.PriorityHalo)
	o.Register(NewLabelsRenderer(sc), render.PriorityLabels)
	o.Register(NewInfoPanelRenderer(sc), render.PriorityPanel)
	if withHUD {
		o.Register(NewHUDRenderer(sc, hint, status), render.PriorityUI)
	}
	o.Register(NewLoadingRenderer(sc), render.PriorityOverlay)
}

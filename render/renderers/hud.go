package renderers

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/scene"
	"github.com/lixenwraith/cosmos/sim"
)

// HUDRows is the height of the bottom bar: affordances and stats
const HUDRows = 2

// HintFunc returns the key name bound to a command, empty when unbound
type HintFunc func(sim.Command) string

// StatusFunc returns a transient status message for now
type StatusFunc func(now time.Time) string

// HUDRenderer draws the affordance bar and the stats line below the raster
type HUDRenderer struct {
	sc     *sim.Context
	hint   HintFunc
	status StatusFunc

	// FPS tracking
	frameCount    int
	lastFpsUpdate time.Time
	currentFps    int
}

// NewHUDRenderer creates the bottom bar; hint and status may be nil
func NewHUDRenderer(sc *sim.Context, hint HintFunc, status StatusFunc) *HUDRenderer {
	return &HUDRenderer{sc: sc, hint: hint, status: status}
}

// FPS returns the last measured frame rate
func (h *HUDRenderer) FPS() int {
	return h.currentFps
}

func (h *HUDRenderer) trackFPS(now time.Time) {
	if h.lastFpsUpdate.IsZero() {
		h.lastFpsUpdate = now
		return
	}
	h.frameCount++
	if elapsed := now.Sub(h.lastFpsUpdate); elapsed >= time.Second {
		h.currentFps = int(float64(h.frameCount) / elapsed.Seconds())
		h.frameCount = 0
		h.lastFpsUpdate = now
	}
}

// Render implements render.SystemRenderer
func (h *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	h.trackFPS(ctx.Now)

	rows := ctx.Height - ctx.ViewRows
	if rows <= 0 {
		return
	}
	barY := ctx.ViewRows
	for y := barY; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			buf.SetWithBg(x, y, ' ', render.RgbHudText, render.RgbHudBg)
		}
	}

	x := 1
	for _, a := range h.sc.Affordances() {
		if h.hint != nil {
			if key := h.hint(a.Command); key != "" {
				x = buf.SetText(x, barY, "["+key+"]", render.RgbHudKey, render.RgbHudBg) + 1
			}
		}
		x = buf.SetText(x, barY, a.Label, render.RgbHudText, render.RgbHudBg) + 2
	}

	if rows < 2 {
		return
	}
	statY := barY + 1

	if h.status != nil {
		if msg := h.status(ctx.Now); msg != "" {
			buf.SetText(1, statY, msg, render.RgbHudKey, render.RgbHudBg)
		}
	}

	cam := h.sc.Camera()
	focus := "free"
	if b, ok := cam.Focused().(*scene.OrbitingBody); ok && b != nil {
		focus = b.Spec.Name
	}
	stats := fmt.Sprintf("%s  dist %.1f  tick %d  %d fps", focus, cam.Distance(), h.sc.Ticks(), h.currentFps)
	sx := ctx.Width - utf8.RuneCountInString(stats) - 1
	if sx < 0 {
		sx = 0
	}
	buf.SetText(sx, statY, stats, render.RgbHudStat, render.RgbHudBg)
}

package renderers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/sim"
)

const progressWidth = 24

// LoadingRenderer shows texture progress until the scene is ready
type LoadingRenderer struct {
	sc *sim.Context
}

// NewLoadingRenderer creates the loading overlay
func NewLoadingRenderer(sc *sim.Context) *LoadingRenderer {
	return &LoadingRenderer{sc: sc}
}

// IsVisible implements render.VisibilityToggle
func (r *LoadingRenderer) IsVisible() bool {
	return !r.sc.Ready()
}

// Render implements render.SystemRenderer
func (r *LoadingRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	done, total := r.sc.LoadingProgress()
	text := "Loading textures..."
	filled := 0
	if total > 0 {
		text = fmt.Sprintf("Loading textures %d/%d", done, total)
		filled = done * progressWidth / total
	}
	bar := "[" + strings.Repeat("█", filled) + strings.Repeat("·", progressWidth-filled) + "]"

	y := ctx.ViewRows / 2
	buf.SetText(centered(ctx.Width, text), y, text, render.RgbLoading, render.RgbSpace)
	buf.SetText(centered(ctx.Width, bar), y+1, bar, render.RgbLoading, render.RgbSpace)
}

func centered(width int, s string) int {
	return max(0, (width-utf8.RuneCountInString(s))/2)
}

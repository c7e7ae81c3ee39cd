package renderers

import (
	"unicode/utf8"

	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/sim"
)

// InfoPanelRenderer draws the clicked body's facts in a box at the top right
type InfoPanelRenderer struct {
	sc *sim.Context
}

// NewInfoPanelRenderer creates the info panel layer
func NewInfoPanelRenderer(sc *sim.Context) *InfoPanelRenderer {
	return &InfoPanelRenderer{sc: sc}
}

// Render implements render.SystemRenderer
func (r *InfoPanelRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	panel := r.sc.Info()
	if !panel.Visible(ctx.Now) {
		return
	}
	info, _ := panel.Current()
	lines := info.Lines()

	width := utf8.RuneCountInString(info.Name)
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	width += 4
	height := len(lines) + 4 // border, title, separator, border

	x := ctx.Width - width - 1
	y := 1
	if x < 0 {
		x = 0
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			buf.SetWithBg(x+col, y+row, ' ', render.RgbPanelText, render.RgbPanelBg)
		}
	}
	drawBox(buf, x, y, width, height)
	buf.SetText(x+2, y+1, info.Name, render.RgbPanelTitle, render.RgbPanelBg)
	for col := 1; col < width-1; col++ {
		buf.SetWithBg(x+col, y+2, '─', render.RgbPanelBorder, render.RgbPanelBg)
	}
	for i, l := range lines {
		buf.SetText(x+2, y+3+i, l, render.RgbPanelText, render.RgbPanelBg)
	}
}

// drawBox outlines a rectangle with box-drawing characters
func drawBox(buf *render.RenderBuffer, x, y, w, h int) {
	fg, bg := render.RgbPanelBorder, render.RgbPanelBg
	buf.SetWithBg(x, y, '╭', fg, bg)
	buf.SetWithBg(x+w-1, y, '╮', fg, bg)
	buf.SetWithBg(x, y+h-1, '╰', fg, bg)
	buf.SetWithBg(x+w-1, y+h-1, '╯', fg, bg)
	for i := 1; i < w-1; i++ {
		buf.SetWithBg(x+i, y, '─', fg, bg)
		buf.SetWithBg(x+i, y+h-1, '─', fg, bg)
	}
	for i := 1; i < h-1; i++ {
		buf.SetWithBg(x, y+i, '│', fg, bg)
		buf.SetWithBg(x+w-1, y+i, '│', fg, bg)
	}
}

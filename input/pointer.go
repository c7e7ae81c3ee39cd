package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cosmos/camera"
	"github.com/lixenwraith/cosmos/picking"
)

// DefaultClickSlop is the cell distance a press may travel and still count as a click
const DefaultClickSlop = 1

// PointerTarget receives translated pointer gestures
// Drag coordinates are in pointer pixels, click coordinates are raster pixels
type PointerTarget interface {
	PointerDown(x, y float64, b camera.Button)
	PointerMove(x, y float64)
	PointerUp()
	Wheel(delta float64)
	Click(px, py float64, now time.Time) picking.Hit
}

// PointerConfig sizes a terminal cell in pointer pixels
type PointerConfig struct {
	CellWidthPx  float64
	CellHeightPx float64
	ClickSlop    int
}

// DefaultPointerConfig approximates a typical 8x16 terminal font
func DefaultPointerConfig() PointerConfig {
	return PointerConfig{CellWidthPx: 8, CellHeightPx: 16, ClickSlop: DefaultClickSlop}
}

// Pointer turns tcell mouse reports into press/drag/release/click gestures
// tcell reports button state, not transitions, so the pressed button is tracked here
type Pointer struct {
	target   PointerTarget
	cfg      PointerConfig
	viewRows int

	pressed      camera.Button
	downX, downY int
	moved        bool
	lastHit      picking.Hit
}

// NewPointer creates a translator; viewRows limits clicks to the raster area
func NewPointer(target PointerTarget, cfg PointerConfig, viewRows int) *Pointer {
	if cfg.CellWidthPx <= 0 {
		cfg.CellWidthPx = 1
	}
	if cfg.CellHeightPx <= 0 {
		cfg.CellHeightPx = 1
	}
	return &Pointer{target: target, cfg: cfg, viewRows: viewRows}
}

// SetViewRows updates the clickable row count after a resize
func (p *Pointer) SetViewRows(rows int) {
	p.viewRows = rows
}

// Pressed returns the currently held button
func (p *Pointer) Pressed() camera.Button {
	return p.pressed
}

// LastHit returns the result of the most recent click
func (p *Pointer) LastHit() picking.Hit {
	return p.lastHit
}

func buttonFor(mask tcell.ButtonMask) camera.Button {
	switch {
	case mask&tcell.Button1 != 0:
		return camera.ButtonPrimary
	case mask&tcell.Button2 != 0:
		return camera.ButtonSecondary
	case mask&tcell.Button3 != 0:
		return camera.ButtonMiddle
	}
	return camera.ButtonNone
}

func (p *Pointer) px(x, y int) (float64, float64) {
	return float64(x) * p.cfg.CellWidthPx, float64(y) * p.cfg.CellHeightPx
}

// Handle processes one mouse event
func (p *Pointer) Handle(ev *tcell.EventMouse, now time.Time) {
	x, y := ev.Position()
	mask := ev.Buttons()

	switch {
	case mask&tcell.WheelUp != 0:
		p.target.Wheel(-1)
		return
	case mask&tcell.WheelDown != 0:
		p.target.Wheel(1)
		return
	}

	btn := buttonFor(mask)
	switch {
	case p.pressed == camera.ButtonNone && btn != camera.ButtonNone:
		p.pressed = btn
		p.downX, p.downY = x, y
		p.moved = false
		px, py := p.px(x, y)
		p.target.PointerDown(px, py, btn)

	case p.pressed != camera.ButtonNone && btn != camera.ButtonNone:
		if abs(x-p.downX) > p.cfg.ClickSlop || abs(y-p.downY) > p.cfg.ClickSlop {
			p.moved = true
		}
		px, py := p.px(x, y)
		p.target.PointerMove(px, py)

	case p.pressed != camera.ButtonNone:
		released := p.pressed
		p.pressed = camera.ButtonNone
		p.target.PointerUp()
		if released == camera.ButtonPrimary && !p.moved && p.downY < p.viewRows {
			// Cell (x, y) covers raster rows 2y and 2y+1
			p.lastHit = p.target.Click(float64(p.downX)+0.5, float64(2*p.downY)+1, now)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package render

import (
	"time"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Now       time.Time
	DeltaTime float64
	Frame     uint64

	// Terminal dimensions in cells
	Width  int
	Height int

	// Raster dimensions in pixels, Width x ViewRows*2
	PixelWidth  int
	PixelHeight int

	// Rows available to the scene, the remainder is the HUD bar
	ViewRows int
}

// NewRenderContext derives raster dimensions from the terminal size
// hudRows are reserved at the bottom and excluded from the raster
func NewRenderContext(now time.Time, dt float64, frame uint64, width, height, hudRows int) RenderContext {
	view := height - hudRows
	if view < 0 {
		view = 0
	}
	return RenderContext{
		Now:         now,
		DeltaTime:   dt,
		Frame:       frame,
		Width:       width,
		Height:      height,
		PixelWidth:  width,
		PixelHeight: view * 2,
		ViewRows:    view,
	}
}

// PixelToCell maps raster pixel coordinates to the owning cell
func (rc RenderContext) PixelToCell(px, py int) (int, int) {
	return px, py / 2
}

package render

import (
	"github.com/gdamore/tcell/v2"
)

type rendererEntry struct {
	renderer any
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
// Canvas layers rasterize first, the raster is resolved into cells, then cell layers overlay it
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	canvas    *Canvas
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator for the given screen
// The screen may be nil for offscreen rendering in tests
func NewRenderOrchestrator(screen tcell.Screen, width, height int) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(width, height),
		canvas:    NewCanvas(width, 0),
		renderers: make([]rendererEntry, 0, 16),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
// r must implement SystemRenderer, CanvasRenderer or both
func (o *RenderOrchestrator) Register(r any, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Buffer exposes the cell buffer of the last frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// Canvas exposes the pixel raster of the last frame
func (o *RenderOrchestrator) Canvas() *Canvas {
	return o.canvas
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	if o.screen != nil {
		o.screen.Sync()
	}
}

func visible(r any) bool {
	if vt, ok := r.(VisibilityToggle); ok {
		return vt.IsVisible()
	}
	return true
}

// RenderFrame executes the render pipeline: clear, rasterize, resolve, overlay, flush, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	if w, h := o.buffer.Size(); w != ctx.Width || h != ctx.Height {
		o.buffer.Resize(ctx.Width, ctx.Height)
	}
	if w, h := o.canvas.Size(); w != ctx.PixelWidth || h != ctx.PixelHeight {
		o.canvas.Resize(ctx.Width, ctx.ViewRows)
	}

	o.buffer.Clear()
	o.canvas.Clear()

	for _, entry := range o.renderers {
		if cr, ok := entry.renderer.(CanvasRenderer); ok && visible(entry.renderer) {
			cr.RenderCanvas(ctx, o.canvas)
		}
	}

	o.canvas.Resolve(o.buffer)

	for _, entry := range o.renderers {
		if sr, ok := entry.renderer.(SystemRenderer); ok && visible(entry.renderer) {
			sr.Render(ctx, o.buffer)
		}
	}

	if o.screen != nil {
		o.buffer.FlushToScreen(o.screen)
		o.screen.Show()
	}
}

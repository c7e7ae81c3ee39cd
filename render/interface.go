package render

// SystemRenderer is implemented by layers that draw text or cells
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// CanvasRenderer is implemented by layers that draw into the pixel raster
type CanvasRenderer interface {
	RenderCanvas(ctx RenderContext, canvas *Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

package render

import (
	"math"
)

// Canvas is a pixel raster with a depth buffer
// Two vertically stacked pixels map onto one terminal cell via HalfBlock
type Canvas struct {
	width  int
	height int
	pixels []RGB
	depth  []float64
}

// NewCanvas creates a canvas sized for a cell grid of cols x rows
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize sets the pixel raster to cols x 2*rows
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	w, h := cols, rows*2
	size := w * h
	if cap(c.pixels) < size {
		c.pixels = make([]RGB, size)
		c.depth = make([]float64, size)
	} else {
		c.pixels = c.pixels[:size]
		c.depth = c.depth[:size]
	}
	c.width, c.height = w, h
	c.Clear()
}

// Size returns pixel dimensions
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear fills with the space background and resets depth to infinity
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = RgbSpace
		c.depth[i] = math.Inf(1)
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Plot composites a pixel when depth is nearer than the stored depth
// Only opaque replace writes depth, translucent layers test without occluding
func (c *Canvas) Plot(x, y int, depth float64, rgb RGB, mode BlendMode, alpha float64) bool {
	if !c.inBounds(x, y) {
		return false
	}
	idx := y*c.width + x
	if depth >= c.depth[idx] {
		return false
	}
	c.pixels[idx] = mode.apply(c.pixels[idx], rgb, alpha)
	if uint8(mode)&0x0F == opReplace {
		c.depth[idx] = depth
	}
	return true
}

// PlotNoDepth composites a pixel ignoring the depth buffer
func (c *Canvas) PlotNoDepth(x, y int, rgb RGB, mode BlendMode, alpha float64) {
	if !c.inBounds(x, y) {
		return
	}
	idx := y*c.width + x
	c.pixels[idx] = mode.apply(c.pixels[idx], rgb, alpha)
}

// Pixel returns the color at x,y
func (c *Canvas) Pixel(x, y int) RGB {
	if !c.inBounds(x, y) {
		return RGBBlack
	}
	return c.pixels[y*c.width+x]
}

// Depth returns the stored depth at x,y, +Inf when empty or out of bounds
func (c *Canvas) Depth(x, y int) float64 {
	if !c.inBounds(x, y) {
		return math.Inf(1)
	}
	return c.depth[y*c.width+x]
}

// Resolve packs pixel pairs into half-block cells of buf
func (c *Canvas) Resolve(buf *RenderBuffer) {
	rows := c.height / 2
	for row := 0; row < rows; row++ {
		top := (row * 2) * c.width
		bottom := top + c.width
		for x := 0; x < c.width; x++ {
			buf.SetWithBg(x, row, HalfBlock, c.pixels[top+x], c.pixels[bottom+x])
		}
	}
}

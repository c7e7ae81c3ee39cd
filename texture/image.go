// Package texture synthesizes procedural surface textures for the catalog bodies.
// Drawing is authored on a 512 pixel canvas and scaled to the requested size.
package texture

import (
	"image"
	"image/color"
	"math"

	"github.com/lixenwraith/cosmos/render"
)

// authoredSize is the canvas size all drawing coordinates are expressed in
const authoredSize = 512

// MaxSize caps synthesized texture edges
const MaxSize = 2 * authoredSize

// Image is a square RGB texture with wrap-around sampling
type Image struct {
	size int
	pix  []render.RGB
}

// NewImage allocates a size x size texture, size < 1 is treated as 1
func NewImage(size int) *Image {
	if size < 1 {
		size = 1
	}
	return &Image{size: size, pix: make([]render.RGB, size*size)}
}

// Size returns the edge length in pixels
func (m *Image) Size() int {
	return m.size
}

// At returns the texel at x,y, coordinates wrap
func (m *Image) At(x, y int) render.RGB {
	x = wrapIndex(x, m.size)
	y = wrapIndex(y, m.size)
	return m.pix[y*m.size+x]
}

// Set writes the texel at x,y, out of range writes are dropped
func (m *Image) Set(x, y int, c render.RGB) {
	if x < 0 || y < 0 || x >= m.size || y >= m.size {
		return
	}
	m.pix[y*m.size+x] = c
}

// Sample returns the nearest texel for texture coordinates u,v
// Both axes repeat, u=0 is the left edge and v=0 the top edge
func (m *Image) Sample(u, v float64) render.RGB {
	x := int(math.Floor(u * float64(m.size)))
	y := int(math.Floor(v * float64(m.size)))
	return m.At(x, y)
}

// RGBA converts to a standard library image for encoding
func (m *Image) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.size, m.size))
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			c := m.pix[y*m.size+x]
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

// Mean returns the average color, used for distant bodies smaller than a pixel
func (m *Image) Mean() render.RGB {
	var r, g, b int
	for _, c := range m.pix {
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
	}
	n := len(m.pix)
	return render.RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}

func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

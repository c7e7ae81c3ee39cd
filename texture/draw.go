package texture

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/cosmos/render"
)

// painter draws source-over shapes in authored coordinates onto an Image
type painter struct {
	img   *Image
	scale float64
}

func newPainter(img *Image) *painter {
	return &painter{img: img, scale: float64(img.size) / authoredSize}
}

// mustHex parses a #rrggbb literal, bad literals are programmer errors
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// toRGB converts a colorful color, clamping out-of-gamut values
func toRGB(c colorful.Color) render.RGB {
	r, g, b := c.Clamped().RGB255()
	return render.RGB{R: r, G: g, B: b}
}

// fill paints every texel
func (p *painter) fill(c colorful.Color) {
	rgb := toRGB(c)
	for i := range p.img.pix {
		p.img.pix[i] = rgb
	}
}

// rect composites an axis aligned rectangle, texels whose center is inside are covered
func (p *painter) rect(x, y, w, h float64, c colorful.Color, alpha float64) {
	x0 := int(math.Round(x * p.scale))
	y0 := int(math.Round(y * p.scale))
	x1 := int(math.Round((x + w) * p.scale))
	y1 := int(math.Round((y + h) * p.scale))
	rgb := toRGB(c)
	for py := max(y0, 0); py < min(y1, p.img.size); py++ {
		for px := max(x0, 0); px < min(x1, p.img.size); px++ {
			p.blend(px, py, rgb, alpha)
		}
	}
}

// circle composites a filled disc
func (p *painter) circle(cx, cy, radius float64, c colorful.Color, alpha float64) {
	cx *= p.scale
	cy *= p.scale
	radius *= p.scale
	rgb := toRGB(c)
	r2 := radius * radius

	x0 := max(int(math.Floor(cx-radius)), 0)
	x1 := min(int(math.Ceil(cx+radius)), p.img.size-1)
	y0 := max(int(math.Floor(cy-radius)), 0)
	y1 := min(int(math.Ceil(cy+radius)), p.img.size-1)

	for py := y0; py <= y1; py++ {
		dy := float64(py) + 0.5 - cy
		for px := x0; px <= x1; px++ {
			dx := float64(px) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				p.blend(px, py, rgb, alpha)
			}
		}
	}
}

func (p *painter) blend(x, y int, c render.RGB, alpha float64) {
	idx := y*p.img.size + x
	p.img.pix[idx] = render.Blend(p.img.pix[idx], c, alpha)
}

// gradientStop is one color stop of a radial gradient
type gradientStop struct {
	offset float64
	color  colorful.Color
}

// radial fills the whole image with a radial gradient centered on the image
// Offsets beyond the last stop take its color
func (p *painter) radial(stops []gradientStop) {
	size := float64(p.img.size)
	center := size / 2
	radius := size / 2
	for py := 0; py < p.img.size; py++ {
		dy := float64(py) + 0.5 - center
		for px := 0; px < p.img.size; px++ {
			dx := float64(px) + 0.5 - center
			t := math.Sqrt(dx*dx+dy*dy) / radius
			p.img.pix[py*p.img.size+px] = toRGB(gradientAt(stops, t))
		}
	}
}

func gradientAt(stops []gradientStop, t float64) colorful.Color {
	if t <= stops[0].offset {
		return stops[0].color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].offset {
			a, b := stops[i-1], stops[i]
			k := (t - a.offset) / (b.offset - a.offset)
			return a.color.BlendRgb(b.color, k)
		}
	}
	return stops[len(stops)-1].color
}

package texture

import (
	"math/rand/v2"

	"github.com/lixenwraith/cosmos/render"
)

var sunStops = []gradientStop{
	{0, mustHex("#ffffff")},
	{0.1, mustHex("#ffff00")},
	{0.3, mustHex("#ffaa00")},
	{0.6, mustHex("#ff5500")},
	{1, mustHex("#ff0000")},
}

// sunNoise is the maximum per-texel perturbation
const sunNoise = 30

// Sun renders the star texture: a white-hot radial gradient with warm noise
func Sun(size int, rng *rand.Rand) *Image {
	img := NewImage(size)
	newPainter(img).radial(sunStops)

	for i, c := range img.pix {
		n := rng.Float64() * sunNoise
		img.pix[i] = render.RGB{
			R: clampChannel(float64(c.R) + n),
			G: clampChannel(float64(c.G) - n/2),
			B: clampChannel(float64(c.B) - n),
		}
	}
	return img
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

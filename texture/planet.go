package texture

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/cosmos/catalog"
)

// baseColors are the flat fills under each planet's detail layer
var baseColors = map[catalog.BodyID]colorful.Color{
	catalog.Mercury: mustHex("#8c8c8c"),
	catalog.Venus:   mustHex("#e6b87e"),
	catalog.Earth:   mustHex("#2a6bbe"),
	catalog.Mars:    mustHex("#cc6a4a"),
	catalog.Jupiter: mustHex("#d8ca9d"),
	catalog.Saturn:  mustHex("#e3d8b0"),
	catalog.Uranus:  mustHex("#a6d1e6"),
	catalog.Neptune: mustHex("#3d5aa8"),
}

var fallbackBase = colorful.Color{R: 1, G: 1, B: 1}

// decorator paints surface detail over the base fill
type decorator func(p *painter, rng *rand.Rand)

// decorators selects detail by body, anything absent gets the generic speckle
var decorators = map[catalog.BodyID]decorator{
	catalog.Earth:   earthDetails,
	catalog.Jupiter: jupiterDetails,
	catalog.Mars:    marsDetails,
	catalog.Venus:   venusDetails,
}

// BaseColor returns the flat fill used for id
func BaseColor(id catalog.BodyID) colorful.Color {
	if c, ok := baseColors[id]; ok {
		return c
	}
	return fallbackBase
}

// Planet renders a planet texture for id
func Planet(id catalog.BodyID, size int, rng *rand.Rand) *Image {
	img := NewImage(size)
	p := newPainter(img)
	p.fill(BaseColor(id))

	decorate, ok := decorators[id]
	if !ok {
		decorate = genericDetails
	}
	decorate(p, rng)
	return img
}

func earthDetails(p *painter, _ *rand.Rand) {
	land := mustHex("#2d5f2d")
	p.circle(150, 200, 60, land, 1)
	p.circle(350, 300, 40, land, 1)
	p.circle(400, 150, 50, land, 1)

	cloud := colorful.Color{R: 1, G: 1, B: 1}
	p.circle(200, 100, 30, cloud, 0.7)
	p.circle(300, 400, 25, cloud, 0.7)
}

func jupiterDetails(p *painter, rng *rand.Rand) {
	for i := 0; i < 10; i++ {
		y := float64(i * 50)
		height := 30 + rng.Float64()*20
		hue := 40 + rng.Float64()*10
		lightness := (50 + rng.Float64()*20) / 100
		p.rect(0, y, authoredSize, height, colorful.Hsl(hue, 0.7, lightness), 1)
	}

	// Great spot
	p.circle(400, 256, 40, mustHex("#b85c5c"), 1)
}

func marsDetails(p *painter, rng *rand.Rand) {
	spot := rgb255(100, 40, 20)
	for i := 0; i < 100; i++ {
		x := rng.Float64() * authoredSize
		y := rng.Float64() * authoredSize
		radius := 5 + rng.Float64()*15
		alpha := 0.3 + rng.Float64()*0.4
		p.circle(x, y, radius, spot, alpha)
	}
}

func venusDetails(p *painter, rng *rand.Rand) {
	cloud := rgb255(230, 200, 150)
	for i := 0; i < 50; i++ {
		x := rng.Float64() * authoredSize
		y := rng.Float64() * authoredSize
		radius := 10 + rng.Float64()*30
		alpha := 0.2 + rng.Float64()*0.3
		p.circle(x, y, radius, cloud, alpha)
	}
}

func genericDetails(p *painter, rng *rand.Rand) {
	for i := 0; i < 30; i++ {
		x := rng.Float64() * authoredSize
		y := rng.Float64() * authoredSize
		radius := 5 + rng.Float64()*20
		brightness := 30 + rng.Float64()*40
		alpha := 0.2 + rng.Float64()*0.4
		gray := brightness / 255
		p.circle(x, y, radius, colorful.Color{R: gray, G: gray, B: gray}, alpha)
	}
}

func rgb255(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

package scene

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/cosmos/catalog"
	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/texture"
	"github.com/lixenwraith/cosmos/vmath"
)

var (
	// ErrMissingTexture means Build ran before every texture was ready
	ErrMissingTexture = errors.New("missing texture")
	// ErrCentralBody means the spec list does not have exactly one central body
	ErrCentralBody = errors.New("expected exactly one central body")
)

// Params tunes decorative scene generation
type Params struct {
	StarCount   int
	StarSpread  float64 // cube edge length
	StarOpacity float64

	OrbitSegments int

	RingInner   float64 // multiples of body radius
	RingOuter   float64
	RingColor   render.RGB
	RingOpacity float64

	MoonHost     catalog.BodyID
	MoonRadius   float64 // multiple of host radius
	MoonDistance float64 // multiple of host radius
	MoonSpeed    float64
	MoonColor    render.RGB

	AsteroidCount    int
	BeltInner        float64
	BeltOuter        float64
	BeltHeight       float64 // total vertical spread
	AsteroidSpeedMin float64
	AsteroidSpeedMax float64
	AsteroidRadius   float64

	CoronaScale float64
}

// DefaultParams returns the stock scene layout
func DefaultParams() Params {
	return Params{
		StarCount:   15000,
		StarSpread:  3000,
		StarOpacity: 0.8,

		OrbitSegments: 128,

		RingInner:   1.5,
		RingOuter:   2.5,
		RingColor:   render.Hex(0xffdd99),
		RingOpacity: 0.7,

		MoonHost:     catalog.Earth,
		MoonRadius:   0.3,
		MoonDistance: 2,
		MoonSpeed:    0.05,
		MoonColor:    render.Hex(0xaaaaaa),

		AsteroidCount:    500,
		BeltInner:        100,
		BeltOuter:        120,
		BeltHeight:       10,
		AsteroidSpeedMin: 0.001,
		AsteroidSpeedMax: 0.002,
		AsteroidRadius:   0.2,

		CoronaScale: 1.3,
	}
}

// Build assembles the scene once textures are ready
func Build(specs []catalog.BodySpec, textures texture.Set, p Params, rng *rand.Rand) (*Scene, error) {
	central := 0
	for _, spec := range specs {
		if spec.IsCentral() {
			central++
		}
		if textures[spec.ID] == nil {
			return nil, fmt.Errorf("build scene: %w for %s", ErrMissingTexture, spec.Name)
		}
	}
	if central != 1 {
		return nil, fmt.Errorf("build scene: %w, got %d", ErrCentralBody, central)
	}

	s := &Scene{
		Starfield: buildStarfield(p, rng),
	}

	for _, spec := range specs {
		if spec.IsCentral() {
			s.Star = &Star{
				Spec:    spec,
				Texture: textures[spec.ID],
				Corona: Corona{
					Radius: spec.Radius * p.CoronaScale,
					Color:  render.RgbCorona,
				},
			}
			continue
		}

		body := &OrbitingBody{
			Spec:     spec,
			Angle:    rng.Float64() * vmath.TwoPi,
			Position: vmath.ConicPoint(spec.Distance, spec.Eccentricity, 0),
			Texture:  textures[spec.ID],
		}

		s.Orbits = append(s.Orbits, &OrbitPath{
			Body:    body,
			Points:  vmath.ConicPath(spec.Distance, spec.Eccentricity, p.OrbitSegments),
			Visible: true,
		})

		if spec.HasRings {
			body.Rings = &Ring{
				Inner:   spec.Radius * p.RingInner,
				Outer:   spec.Radius * p.RingOuter,
				Color:   p.RingColor,
				Opacity: p.RingOpacity,
			}
		}

		if spec.ID == p.MoonHost {
			moon := &Moon{
				Parent:   body,
				Angle:    rng.Float64() * vmath.TwoPi,
				Distance: spec.Radius * p.MoonDistance,
				Speed:    p.MoonSpeed,
				Radius:   spec.Radius * p.MoonRadius,
				Color:    p.MoonColor,
			}
			moon.Local = vmath.Vec3F{X: moon.Distance}
			body.Moon = moon
			s.Moons = append(s.Moons, moon)
		}

		s.Bodies = append(s.Bodies, body)
	}

	s.Asteroids = buildBelt(p, rng)
	return s, nil
}

func buildStarfield(p Params, rng *rand.Rand) Starfield {
	pts := make([]vmath.Vec3F, p.StarCount)
	for i := range pts {
		pts[i] = vmath.Vec3F{
			X: (rng.Float64() - 0.5) * p.StarSpread,
			Y: (rng.Float64() - 0.5) * p.StarSpread,
			Z: (rng.Float64() - 0.5) * p.StarSpread,
		}
	}
	return Starfield{Points: pts, Color: render.RgbStar, Opacity: p.StarOpacity}
}

func buildBelt(p Params, rng *rand.Rand) []*Asteroid {
	belt := make([]*Asteroid, p.AsteroidCount)
	for i := range belt {
		angle := rng.Float64() * vmath.TwoPi
		distance := p.BeltInner + rng.Float64()*(p.BeltOuter-p.BeltInner)
		height := (rng.Float64() - 0.5) * p.BeltHeight
		a := &Asteroid{
			Angle:    angle,
			Distance: distance,
			Height:   height,
			Speed:    p.AsteroidSpeedMin + rng.Float64()*(p.AsteroidSpeedMax-p.AsteroidSpeedMin),
			Radius:   p.AsteroidRadius,
		}
		a.Position = vmath.CirclePoint(angle, distance)
		a.Position.Y = height
		belt[i] = a
	}
	return belt
}

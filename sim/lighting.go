package sim

import (
	"math"

	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/vmath"
)

// PointLight is an omnidirectional light with linear falloff to zero at Range
type PointLight struct {
	Position  vmath.Vec3F
	Intensity float64
	Range     float64
}

// DirectionalLight shines from Direction toward the origin
type DirectionalLight struct {
	Direction vmath.Vec3F // unit vector pointing at the light
	Intensity float64
}

// LightingRig is the active set of lights
type LightingRig struct {
	Realistic   bool
	Point       PointLight
	Ambient     render.RGB
	Directional *DirectionalLight
}

// RealisticRig lights planets from the star only, with a faint ambient floor
func RealisticRig() LightingRig {
	return LightingRig{
		Realistic: true,
		Point:     PointLight{Intensity: 2, Range: 2000},
		Ambient:   render.Hex(0x111111),
	}
}

// EnhancedRig adds ambient and a fixed directional fill for readability
func EnhancedRig() LightingRig {
	return LightingRig{
		Point:   PointLight{Intensity: 1.5, Range: 2000},
		Ambient: render.Hex(0x333333),
		Directional: &DirectionalLight{
			Direction: vmath.V3FNormalize(vmath.Vec3F{X: 50, Y: 50, Z: 50}),
			Intensity: 0.3,
		},
	}
}

// Illuminance returns the Lambert light factor at point p with unit normal n
// The result may exceed 1, callers clamp when modulating color
func (r LightingRig) Illuminance(p, n vmath.Vec3F) float64 {
	total := float64(r.Ambient.R) / 255

	toLight := vmath.V3FSub(r.Point.Position, p)
	d := vmath.V3FMag(toLight)
	if d > 0 {
		atten := 1.0
		if r.Point.Range > 0 {
			atten = math.Max(0, 1-d/r.Point.Range)
		}
		lambert := math.Max(0, vmath.V3FDot(n, vmath.V3FScale(toLight, 1/d)))
		total += r.Point.Intensity * atten * lambert
	}

	if r.Directional != nil {
		total += r.Directional.Intensity * math.Max(0, vmath.V3FDot(n, r.Directional.Direction))
	}
	return total
}

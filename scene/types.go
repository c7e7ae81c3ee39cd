// Package scene holds the long-lived simulated entities and the builder that creates them.
package scene

import (
	"math"

	"github.com/lixenwraith/cosmos/catalog"
	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/texture"
	"github.com/lixenwraith/cosmos/vmath"
)

// OrbitingBody is a planet moving along its conic orbit
type OrbitingBody struct {
	Spec     catalog.BodySpec
	Angle    float64 // orbital angle, radians
	Spin     float64 // axial rotation, radians
	Position vmath.Vec3F
	Texture  *texture.Image
	Rings    *Ring
	Moon     *Moon
}

// FocusPoint returns the current position for camera tracking
func (b *OrbitingBody) FocusPoint() vmath.Vec3F {
	return b.Position
}

// Ring is a flat annulus in the parent's XZ plane
type Ring struct {
	Inner   float64
	Outer   float64
	Color   render.RGB
	Opacity float64
}

// Moon orbits its parent in the parent's frame
// Only the parent translation applies, parent spin does not carry the moon
type Moon struct {
	Parent   *OrbitingBody
	Angle    float64
	Distance float64
	Speed    float64
	Radius   float64
	Color    render.RGB
	Local    vmath.Vec3F
}

// WorldPosition returns the moon's position in scene coordinates
func (m *Moon) WorldPosition() vmath.Vec3F {
	return vmath.V3FAdd(m.Parent.Position, m.Local)
}

// Asteroid is one belt member, height oscillates with angle
type Asteroid struct {
	Angle    float64
	Distance float64
	Height   float64
	Speed    float64
	Radius   float64
	Position vmath.Vec3F
}

// Corona is the additive halo shell around the star
type Corona struct {
	Radius float64
	Time   float64
	Color  render.RGB
}

// Alpha returns halo opacity for a shell normal whose view-space z component is viewDot
// Pulses with Time, result is clamped to [0,1]
func (c Corona) Alpha(viewDot float64) float64 {
	d := 0.7 - viewDot
	intensity := d * d * (0.8 + 0.2*math.Sin(5*c.Time))
	return vmath.Clamp(intensity*0.5, 0, 1)
}

// Star is the fixed central body
type Star struct {
	Spec    catalog.BodySpec
	Spin    float64
	Texture *texture.Image
	Corona  Corona
}

// OrbitPath is the precomputed closed polyline of one orbit
type OrbitPath struct {
	Body    *OrbitingBody
	Points  []vmath.Vec3F
	Visible bool
}

// Starfield is the static background point cloud, rotated slowly about Y
type Starfield struct {
	Points   []vmath.Vec3F
	Rotation float64
	Color    render.RGB
	Opacity  float64
}

// Scene owns every entity, only Build creates them
type Scene struct {
	Star      *Star
	Bodies    []*OrbitingBody
	Moons     []*Moon
	Asteroids []*Asteroid
	Orbits    []*OrbitPath
	Starfield Starfield
}

// Body returns the orbiting body for id, nil for the star or unknown ids
func (s *Scene) Body(id catalog.BodyID) *OrbitingBody {
	for _, b := range s.Bodies {
		if b.Spec.ID == id {
			return b
		}
	}
	return nil
}

// Visibility shows or hides every orbit path
func (s *Scene) Visibility(orbitsVisible bool) {
	for _, o := range s.Orbits {
		o.Visible = orbitsVisible
	}
}

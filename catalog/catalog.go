// Package catalog is the static registry of simulated celestial bodies.
// Values are render-space constants with an astronomical flavor, not ephemerides.
package catalog

import (
	"math"
	"strings"
)

// BodyID identifies a registry entry
type BodyID uint8

const (
	Sun BodyID = iota
	Mercury
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune

	// BodyCount is the number of registry entries
	BodyCount
)

var bodyNames = [BodyCount]string{
	Sun:     "Sun",
	Mercury: "Mercury",
	Venus:   "Venus",
	Earth:   "Earth",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
}

// String returns the display name
func (id BodyID) String() string {
	if id >= BodyCount {
		return "Unknown"
	}
	return bodyNames[id]
}

// BodySpec holds the immutable physical and visual parameters of one body
type BodySpec struct {
	ID   BodyID
	Name string

	Radius   float64 // render-space units
	Distance float64 // semi-major axis, render-space units

	Speed     float64 // orbital radians per tick
	SpinSpeed float64 // axial radians per tick

	Color        uint32 // 0xRRGGBB flat tint
	HasRings     bool
	Eccentricity float64
}

// IsCentral reports whether the body is the fixed central star
func (s BodySpec) IsCentral() bool {
	return s.Distance == 0 && s.Speed == 0
}

// OrbitalPeriod returns ticks per revolution, 0 for the star
func (s BodySpec) OrbitalPeriod() float64 {
	if s.Speed == 0 {
		return 0
	}
	return 2 * math.Pi / s.Speed
}

var registry = [BodyCount]BodySpec{
	{ID: Sun, Radius: 20, Distance: 0, Speed: 0, SpinSpeed: 0.005, Color: 0xffaa33},
	{ID: Mercury, Radius: 0.8, Distance: 35, Speed: 0.01, SpinSpeed: 0.004, Color: 0xaaaaaa, Eccentricity: 0.205},
	{ID: Venus, Radius: 1.5, Distance: 50, Speed: 0.007, SpinSpeed: 0.002, Color: 0xffcc99, Eccentricity: 0.007},
	{ID: Earth, Radius: 1.6, Distance: 70, Speed: 0.005, SpinSpeed: 0.01, Color: 0x2233ff, Eccentricity: 0.017},
	{ID: Mars, Radius: 1.2, Distance: 90, Speed: 0.004, SpinSpeed: 0.008, Color: 0xff6600, Eccentricity: 0.094},
	{ID: Jupiter, Radius: 4, Distance: 130, Speed: 0.002, SpinSpeed: 0.02, Color: 0xffaa77, Eccentricity: 0.049},
	{ID: Saturn, Radius: 3.5, Distance: 170, Speed: 0.0015, SpinSpeed: 0.018, Color: 0xffdd99, HasRings: true, Eccentricity: 0.057},
	{ID: Uranus, Radius: 2.5, Distance: 200, Speed: 0.001, SpinSpeed: 0.015, Color: 0x99ddff, Eccentricity: 0.046},
	{ID: Neptune, Radius: 2.4, Distance: 230, Speed: 0.0008, SpinSpeed: 0.016, Color: 0x3366ff, Eccentricity: 0.011},
}

func init() {
	for i := range registry {
		registry[i].Name = registry[i].ID.String()
	}
}

// Bodies returns the registry in order: star first, then planets outward
// The slice is a fresh copy, callers may keep or modify it
func Bodies() []BodySpec {
	out := make([]BodySpec, BodyCount)
	copy(out, registry[:])
	return out
}

// Get returns the spec for id
func Get(id BodyID) (BodySpec, bool) {
	if id >= BodyCount {
		return BodySpec{}, false
	}
	return registry[id], true
}

// Lookup finds a body by case-insensitive name
func Lookup(name string) (BodySpec, bool) {
	for _, s := range registry {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return BodySpec{}, false
}

// Central returns the central star
func Central() BodySpec {
	return registry[Sun]
}

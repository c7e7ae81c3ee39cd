// Package orbit advances the scene by one simulation tick.
package orbit

import (
	"math"

	"github.com/lixenwraith/cosmos/scene"
	"github.com/lixenwraith/cosmos/vmath"
)

// DefaultWrapEvery is how many ticks pass between angle normalizations
const DefaultWrapEvery = 1024

// Engine integrates angular motion, it holds no pause state
// Callers skip Tick while rotation is disabled
type Engine struct {
	wrapEvery uint64
	ticks     uint64
}

// NewEngine creates an engine, wrapEvery 0 selects the default
func NewEngine(wrapEvery uint64) *Engine {
	if wrapEvery == 0 {
		wrapEvery = DefaultWrapEvery
	}
	return &Engine{wrapEvery: wrapEvery}
}

// Ticks returns the number of ticks applied
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Tick advances every body, moon, asteroid and the star spin by one step
func (e *Engine) Tick(s *scene.Scene) {
	e.ticks++
	wrap := e.ticks%e.wrapEvery == 0

	if s.Star != nil {
		s.Star.Spin += s.Star.Spec.SpinSpeed
		if wrap {
			s.Star.Spin = vmath.WrapAngle(s.Star.Spin)
		}
	}

	for _, b := range s.Bodies {
		b.Angle += b.Spec.Speed
		b.Spin += b.Spec.SpinSpeed
		if wrap {
			b.Angle = vmath.WrapAngle(b.Angle)
			b.Spin = vmath.WrapAngle(b.Spin)
		}
		b.Position = vmath.ConicPoint(b.Spec.Distance, b.Spec.Eccentricity, b.Angle)
	}

	for _, m := range s.Moons {
		m.Angle += m.Speed
		if wrap {
			m.Angle = vmath.WrapAngle(m.Angle)
		}
		m.Local = vmath.CirclePoint(m.Angle, m.Distance)
	}

	for _, a := range s.Asteroids {
		a.Angle += a.Speed
		if wrap {
			a.Angle = vmath.WrapAngle(a.Angle)
		}
		a.Position = vmath.CirclePoint(a.Angle, a.Distance)
		a.Position.Y = a.Height + math.Sin(3*a.Angle)*2
	}
}

// Advance applies n ticks
func (e *Engine) Advance(s *scene.Scene, n int) {
	for i := 0; i < n; i++ {
		e.Tick(s)
	}
}

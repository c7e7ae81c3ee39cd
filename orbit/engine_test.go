package orbit

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/cosmos/catalog"
	"github.com/lixenwraith/cosmos/scene"
	"github.com/lixenwraith/cosmos/texture"
	"github.com/lixenwraith/cosmos/vmath"
)

func newScene(t *testing.T) *scene.Scene {
	t.Helper()
	specs := catalog.Bodies()
	set := make(texture.Set)
	for _, s := range specs {
		set[s.ID] = texture.NewImage(1)
	}
	p := scene.DefaultParams()
	p.StarCount = 10
	s, err := scene.Build(specs, set, p, rand.New(rand.NewPCG(3, 4)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

// angleClose compares angles modulo 2π
func angleClose(a, b, eps float64) bool {
	return math.Abs(vmath.AngleDiff(a, b)) <= eps
}

func TestAngleAfterNTicks(t *testing.T) {
	s := newScene(t)
	initial := make([]float64, len(s.Bodies))
	for i, b := range s.Bodies {
		initial[i] = b.Angle
	}

	e := NewEngine(0)
	const n = 5000
	e.Advance(s, n)

	if e.Ticks() != n {
		t.Errorf("ticks = %d, want %d", e.Ticks(), n)
	}
	for i, b := range s.Bodies {
		want := math.Mod(initial[i]+n*b.Spec.Speed, vmath.TwoPi)
		if !angleClose(b.Angle, want, 1e-6) {
			t.Errorf("%s angle %f, want %f", b.Spec.Name, b.Angle, want)
		}
		// Wrapped at tick 4096, so the magnitude stays small
		if b.Angle > 2*vmath.TwoPi {
			t.Errorf("%s angle %f not wrapped", b.Spec.Name, b.Angle)
		}
	}
}

func TestPositionFollowsConic(t *testing.T) {
	s := newScene(t)
	e := NewEngine(0)
	e.Tick(s)

	for _, b := range s.Bodies {
		r := math.Hypot(b.Position.X, b.Position.Z)
		want := vmath.ConicRadius(b.Spec.Distance, b.Spec.Eccentricity, b.Angle)
		if math.Abs(r-want) > 1e-9 {
			t.Errorf("%s radius %f, want %f", b.Spec.Name, r, want)
		}
		if b.Position.Y != 0 {
			t.Errorf("%s left the orbital plane", b.Spec.Name)
		}
		lo := b.Spec.Distance * (1 - b.Spec.Eccentricity)
		hi := b.Spec.Distance * (1 + b.Spec.Eccentricity)
		if r < lo-1e-9 || r > hi+1e-9 {
			t.Errorf("%s radius %f outside [%f,%f]", b.Spec.Name, r, lo, hi)
		}
	}
}

func TestMercuryPeriapsisApoapsis(t *testing.T) {
	s := newScene(t)
	mercury := s.Body(catalog.Mercury)
	e := NewEngine(0)

	// Step to just before θ=0, the next tick lands on it
	mercury.Angle = -mercury.Spec.Speed
	e.Tick(s)
	if r := vmath.V3FMag(mercury.Position); math.Abs(r-35*(1-0.205)) > 1e-9 {
		t.Errorf("periapsis r = %f, want %f", r, 35*(1-0.205))
	}

	mercury.Angle = math.Pi - mercury.Spec.Speed
	e.Tick(s)
	if r := vmath.V3FMag(mercury.Position); math.Abs(r-35*(1+0.205)) > 1e-9 {
		t.Errorf("apoapsis r = %f, want %f", r, 35*(1+0.205))
	}
}

func TestMoonAndAsteroids(t *testing.T) {
	s := newScene(t)
	e := NewEngine(0)
	moon := s.Moons[0]
	a0 := moon.Angle
	e.Tick(s)

	if math.Abs(moon.Angle-(a0+0.05)) > 1e-12 {
		t.Errorf("moon angle = %f", moon.Angle)
	}
	if math.Abs(vmath.V3FMag(moon.Local)-moon.Distance) > 1e-9 {
		t.Errorf("moon local offset %v not at distance %f", moon.Local, moon.Distance)
	}

	for _, a := range s.Asteroids {
		want := a.Height + math.Sin(3*a.Angle)*2
		if math.Abs(a.Position.Y-want) > 1e-9 {
			t.Fatalf("asteroid y = %f, want %f", a.Position.Y, want)
		}
		if math.Abs(math.Hypot(a.Position.X, a.Position.Z)-a.Distance) > 1e-9 {
			t.Fatal("asteroid left its circle")
		}
	}
}

func TestStarSpin(t *testing.T) {
	s := newScene(t)
	e := NewEngine(0)
	e.Advance(s, 10)
	if math.Abs(s.Star.Spin-0.05) > 1e-12 {
		t.Errorf("star spin = %f, want 0.05", s.Star.Spin)
	}
}

func TestEarthFullOrbit(t *testing.T) {
	s := newScene(t)
	earth := s.Body(catalog.Earth)
	start := earth.Angle

	e := NewEngine(0)
	e.Advance(s, 1)
	pos := earth.Position
	period := int(math.Round(earth.Spec.OrbitalPeriod()))
	if period != 1257 {
		t.Fatalf("earth period = %d ticks, want 1257", period)
	}
	e.Advance(s, period)

	if !angleClose(earth.Angle, start+earth.Spec.Speed, earth.Spec.Speed) {
		t.Errorf("earth angle %f after one period, want within a step of %f", vmath.WrapAngle(earth.Angle), vmath.WrapAngle(start+earth.Spec.Speed))
	}
	step := earth.Spec.Distance * earth.Spec.Speed * 2
	if d := vmath.V3FMag(vmath.V3FSub(earth.Position, pos)); d > step {
		t.Errorf("earth %.4f units from where it was one period ago", d)
	}
}

package scene

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/cosmos/catalog"
	"github.com/lixenwraith/cosmos/texture"
	"github.com/lixenwraith/cosmos/vmath"
)

func stubTextures(specs []catalog.BodySpec) texture.Set {
	set := make(texture.Set, len(specs))
	for _, s := range specs {
		set[s.ID] = texture.NewImage(1)
	}
	return set
}

func buildDefault(t *testing.T) *Scene {
	t.Helper()
	specs := catalog.Bodies()
	s, err := Build(specs, stubTextures(specs), DefaultParams(), rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func TestBuildCounts(t *testing.T) {
	s := buildDefault(t)

	if s.Star == nil || s.Star.Spec.ID != catalog.Sun {
		t.Fatal("star missing")
	}
	if len(s.Bodies) != 8 {
		t.Errorf("bodies = %d, want 8", len(s.Bodies))
	}
	if len(s.Orbits) != 8 {
		t.Errorf("orbits = %d, want 8", len(s.Orbits))
	}
	if len(s.Moons) != 1 {
		t.Errorf("moons = %d, want 1", len(s.Moons))
	}
	if len(s.Asteroids) != 500 {
		t.Errorf("asteroids = %d, want 500", len(s.Asteroids))
	}
	if len(s.Starfield.Points) != 15000 {
		t.Errorf("stars = %d, want 15000", len(s.Starfield.Points))
	}
	if s.Starfield.Opacity != 0.8 {
		t.Errorf("starfield opacity = %f", s.Starfield.Opacity)
	}
}

func TestBuildBodies(t *testing.T) {
	s := buildDefault(t)

	for _, b := range s.Bodies {
		if b.Angle < 0 || b.Angle >= vmath.TwoPi {
			t.Errorf("%s start angle %f outside [0,2π)", b.Spec.Name, b.Angle)
		}
		// Instantiated at θ=0, the start angle applies on the first tick
		want := vmath.ConicPoint(b.Spec.Distance, b.Spec.Eccentricity, 0)
		if !vmath.V3FApproxEqual(b.Position, want, 1e-9) {
			t.Errorf("%s position %v, want %v", b.Spec.Name, b.Position, want)
		}
		if (b.Rings != nil) != (b.Spec.ID == catalog.Saturn) {
			t.Errorf("%s rings = %v", b.Spec.Name, b.Rings != nil)
		}
		if (b.Moon != nil) != (b.Spec.ID == catalog.Earth) {
			t.Errorf("%s moon = %v", b.Spec.Name, b.Moon != nil)
		}
	}

	saturn := s.Body(catalog.Saturn)
	if saturn.Rings.Inner != 3.5*1.5 || saturn.Rings.Outer != 3.5*2.5 || saturn.Rings.Opacity != 0.7 {
		t.Errorf("saturn rings = %+v", saturn.Rings)
	}

	earth := s.Body(catalog.Earth)
	m := earth.Moon
	if math.Abs(m.Radius-0.48) > 1e-9 || math.Abs(m.Distance-3.2) > 1e-9 || m.Speed != 0.05 {
		t.Errorf("moon = %+v", m)
	}
	if m.Parent != earth {
		t.Error("moon parent mismatch")
	}
	if got := m.WorldPosition(); !vmath.V3FApproxEqual(got, vmath.V3FAdd(earth.Position, vmath.Vec3F{X: 3.2}), 1e-9) {
		t.Errorf("moon world position = %v", got)
	}

	if s.Body(catalog.Sun) != nil {
		t.Error("Body(Sun) should be nil, the star is not an orbiting body")
	}
}

func TestOrbitPaths(t *testing.T) {
	s := buildDefault(t)
	for _, o := range s.Orbits {
		if len(o.Points) != 129 {
			t.Fatalf("%s: %d points, want 129", o.Body.Spec.Name, len(o.Points))
		}
		if !vmath.V3FApproxEqual(o.Points[0], o.Points[128], 1e-9) {
			t.Errorf("%s: orbit not closed", o.Body.Spec.Name)
		}
		if !o.Visible {
			t.Errorf("%s: orbit hidden by default", o.Body.Spec.Name)
		}
	}

	s.Visibility(false)
	for _, o := range s.Orbits {
		if o.Visible {
			t.Fatal("Visibility(false) left an orbit visible")
		}
	}
}

func TestAsteroidBelt(t *testing.T) {
	s := buildDefault(t)
	for i, a := range s.Asteroids {
		if a.Distance < 100 || a.Distance > 120 {
			t.Errorf("asteroid %d distance %f outside [100,120]", i, a.Distance)
		}
		if a.Height < -5 || a.Height > 5 {
			t.Errorf("asteroid %d height %f outside [-5,5]", i, a.Height)
		}
		if a.Speed < 0.001 || a.Speed > 0.002 {
			t.Errorf("asteroid %d speed %f outside [0.001,0.002]", i, a.Speed)
		}
		if a.Position.Y != a.Height {
			t.Errorf("asteroid %d not placed at its height", i)
		}
	}
}

func TestStarfieldBounds(t *testing.T) {
	s := buildDefault(t)
	for _, p := range s.Starfield.Points {
		if math.Abs(p.X) > 1500 || math.Abs(p.Y) > 1500 || math.Abs(p.Z) > 1500 {
			t.Fatalf("star %v outside cube", p)
		}
	}
}

func TestBuildDeterministicUnderSeed(t *testing.T) {
	a := buildDefault(t)
	b := buildDefault(t)
	for i := range a.Bodies {
		if a.Bodies[i].Angle != b.Bodies[i].Angle {
			t.Fatal("start angles differ under identical seed")
		}
	}
}

func TestBuildErrors(t *testing.T) {
	specs := catalog.Bodies()
	tex := stubTextures(specs)
	delete(tex, catalog.Mars)

	_, err := Build(specs, tex, DefaultParams(), rand.New(rand.NewPCG(1, 1)))
	if !errors.Is(err, ErrMissingTexture) {
		t.Errorf("err = %v, want ErrMissingTexture", err)
	}

	planets := specs[1:]
	_, err = Build(planets, stubTextures(planets), DefaultParams(), rand.New(rand.NewPCG(1, 1)))
	if !errors.Is(err, ErrCentralBody) {
		t.Errorf("err = %v, want ErrCentralBody", err)
	}
}

func TestCoronaAlpha(t *testing.T) {
	c := Corona{Radius: 26}

	// At Time 0 the pulse factor is 0.8
	if got := c.Alpha(0); math.Abs(got-0.49*0.8*0.5) > 1e-9 {
		t.Errorf("Alpha(0) = %f", got)
	}
	if got := c.Alpha(-1); got != 1 {
		t.Errorf("Alpha(-1) = %f, want clamped 1", got)
	}
	if got := c.Alpha(0.7); got != 0 {
		t.Errorf("Alpha(0.7) = %f, want 0", got)
	}

	c.Time = math.Pi / 10 // sin(5t) = 1
	if got := c.Alpha(0); math.Abs(got-0.49*0.5) > 1e-9 {
		t.Errorf("peak pulse Alpha(0) = %f", got)
	}
}

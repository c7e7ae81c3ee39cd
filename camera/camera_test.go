package camera

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/cosmos/vmath"
)

func newTestController() *Controller {
	return NewController(DefaultParams(), 2)
}

type point vmath.Vec3F

func (p *point) FocusPoint() vmath.Vec3F { return vmath.Vec3F(*p) }

func TestProjectCenterAndBehind(t *testing.T) {
	c := newTestController().Camera()

	ndc := c.Project(vmath.V3FZero)
	if math.Abs(ndc.X) > 1e-9 || math.Abs(ndc.Y) > 1e-9 {
		t.Errorf("target projects to %v, want screen center", ndc)
	}
	if ndc.Z >= 1 || ndc.Z <= -1 {
		t.Errorf("target depth %f outside (-1,1)", ndc.Z)
	}

	behind := vmath.V3FAdd(c.Position, vmath.V3FSub(c.Position, c.Target))
	if z := c.Project(behind).Z; z < 1 {
		t.Errorf("point behind camera has z = %f, want >= 1", z)
	}

	// Points above the target project upward
	if c.Project(vmath.Vec3F{Y: 10}).Y <= 0 {
		t.Error("+Y should project to positive NDC y")
	}
	if c.Project(vmath.Vec3F{X: 10}).X <= 0 {
		t.Error("+X should project to positive NDC x from the home view")
	}
}

func TestRayRoundTrip(t *testing.T) {
	c := newTestController().Camera()

	r := c.Ray(0, 0)
	_, _, forward := c.Basis()
	if !vmath.V3FApproxEqual(r.Dir, forward, 1e-9) {
		t.Errorf("center ray %v, want forward %v", r.Dir, forward)
	}

	// A point along an off-center ray projects back to the same NDC
	r = c.Ray(0.4, -0.3)
	ndc := c.Project(r.At(120))
	if math.Abs(ndc.X-0.4) > 1e-9 || math.Abs(ndc.Y+0.3) > 1e-9 {
		t.Errorf("round trip NDC = (%f,%f), want (0.4,-0.3)", ndc.X, ndc.Y)
	}
}

func TestSetViewportIgnoresZero(t *testing.T) {
	c := newTestController()
	if c.SetViewport(0, 10) || c.SetViewport(10, 0) {
		t.Error("zero dimension accepted")
	}
	if c.Camera().Aspect != 2 {
		t.Errorf("aspect changed to %f", c.Camera().Aspect)
	}
	if !c.SetViewport(160, 40) || c.Camera().Aspect != 4 {
		t.Errorf("aspect = %f, want 4", c.Camera().Aspect)
	}
}

func TestWheelZoom(t *testing.T) {
	c := newTestController()
	c.cam.Position = vmath.Vec3F{Z: 200}

	c.Wheel(1)
	if d := c.Distance(); math.Abs(d-220) > 1e-9 {
		t.Errorf("zoom out from 200 = %f, want 220", d)
	}

	c.cam.Position = vmath.Vec3F{Z: 480}
	c.Wheel(1)
	if d := c.Distance(); math.Abs(d-500) > 1e-9 {
		t.Errorf("zoom out from 480 = %f, want clamped 500", d)
	}

	c.cam.Position = vmath.Vec3F{Z: 31}
	c.Wheel(-1)
	if d := c.Distance(); math.Abs(d-30) > 1e-9 {
		t.Errorf("zoom in from 31 = %f, want clamped 30", d)
	}

	// Direction is preserved
	c.cam.Position = vmath.Vec3F{X: 30, Y: 40}
	c.Wheel(-1)
	dir := vmath.V3FNormalize(c.cam.Position)
	if !vmath.V3FApproxEqual(dir, vmath.Vec3F{X: 0.6, Y: 0.8}, 1e-9) {
		t.Errorf("zoom changed direction to %v", dir)
	}
	if c.State() != StateIdle {
		t.Errorf("state = %s after wheel", c.State())
	}
}

func TestRotateDrag(t *testing.T) {
	c := newTestController()
	d0 := c.Distance()

	c.PointerDown(10, 10, ButtonPrimary)
	if c.State() != StateDragging || c.Button() != ButtonPrimary {
		t.Fatalf("state = %s button = %d", c.State(), c.Button())
	}
	c.PointerMove(60, 10)

	if math.Abs(c.Distance()-d0) > 1e-9 {
		t.Errorf("rotation changed distance %f -> %f", d0, c.Distance())
	}
	s := vmath.SphericalFromV3F(c.cam.Position)
	if math.Abs(vmath.AngleDiff(s.Theta, -0.5)) > 1e-9 {
		t.Errorf("theta = %f, want -0.5", s.Theta)
	}
	if c.cam.Target != vmath.V3FZero {
		t.Errorf("target = %v, want origin", c.cam.Target)
	}

	// Large vertical drag clamps phi
	c.PointerMove(60, 10000)
	s = vmath.SphericalFromV3F(c.cam.Position)
	if math.Abs(s.Phi-phiMargin) > 1e-9 {
		t.Errorf("phi = %f, want clamped %f", s.Phi, phiMargin)
	}
	c.PointerMove(60, -10000)
	s = vmath.SphericalFromV3F(c.cam.Position)
	if math.Abs(s.Phi-(math.Pi-phiMargin)) > 1e-9 {
		t.Errorf("phi = %f, want clamped %f", s.Phi, math.Pi-phiMargin)
	}

	c.PointerUp()
	if c.State() != StateIdle {
		t.Errorf("state = %s after pointer up", c.State())
	}
}

func TestPanDrag(t *testing.T) {
	c := newTestController()
	c.PointerDown(0, 0, ButtonSecondary)
	c.PointerMove(10, 4)

	want := vmath.Vec3F{X: -5, Y: 52, Z: 200}
	if !vmath.V3FApproxEqual(c.cam.Position, want, 1e-9) {
		t.Errorf("pan position = %v, want %v", c.cam.Position, want)
	}

	// Panning far away is clamped
	c.PointerMove(10, 10000)
	if c.Distance() > 500+1e-9 {
		t.Errorf("pan distance %f exceeds max", c.Distance())
	}
}

func TestMoveWithoutDragIgnored(t *testing.T) {
	c := newTestController()
	before := c.cam.Position
	c.PointerMove(100, 100)
	if c.cam.Position != before {
		t.Error("idle pointer move changed the camera")
	}
}

func TestFocusAnimation(t *testing.T) {
	c := newTestController()
	start := c.cam.Position
	body := &point{X: 70}
	t0 := time.Unix(100, 0)

	c.Focus(body, t0)
	if c.State() != StateAnimating {
		t.Fatalf("state = %s, want animating", c.State())
	}

	want := vmath.Vec3F{X: 55, Y: 5}
	if got := c.FocusTarget(vmath.Vec3F{X: 70}); !vmath.V3FApproxEqual(got, want, 1e-9) {
		t.Errorf("focus target = %v, want %v", got, want)
	}

	// Wheel does not interrupt the flight
	c.Wheel(1)
	c.Update(t0)
	if !vmath.V3FApproxEqual(c.cam.Position, start, 1e-9) {
		t.Errorf("position at t0 = %v, want start", c.cam.Position)
	}

	half := t0.Add(500 * time.Millisecond)
	if p := c.Progress(half); math.Abs(p-0.5) > 1e-9 {
		t.Errorf("progress = %f, want 0.5", p)
	}
	c.Update(half)
	mid := vmath.V3FLerp(start, want, 0.5)
	if !vmath.V3FApproxEqual(c.cam.Position, mid, 1e-9) {
		t.Errorf("midpoint = %v, want %v", c.cam.Position, mid)
	}

	// Target follows the moving body
	*body = point{X: 0, Z: 70}
	c.Update(t0.Add(2 * time.Second))
	if c.State() != StateIdle {
		t.Errorf("state = %s after duration", c.State())
	}
	if !vmath.V3FApproxEqual(c.cam.Position, want, 1e-9) {
		t.Errorf("final = %v, want %v", c.cam.Position, want)
	}
	if c.cam.Target != (vmath.Vec3F{Z: 70}) {
		t.Errorf("target = %v, want body position", c.cam.Target)
	}
}

func TestFocusEndNotClamped(t *testing.T) {
	c := newTestController()
	body := &point{X: 30}
	t0 := time.Unix(0, 0)
	c.Focus(body, t0)
	c.Update(t0.Add(time.Second))

	if d := c.Distance(); d >= 30 {
		t.Errorf("focus end distance %f, expected inside min distance", d)
	}

	// The next wheel step clamps back into range
	c.Wheel(-1)
	if d := c.Distance(); math.Abs(d-30) > 1e-9 {
		t.Errorf("wheel after focus = %f, want 30", d)
	}
}

func TestDragCancelsAnimation(t *testing.T) {
	c := newTestController()
	t0 := time.Unix(0, 0)
	c.Focus(&point{X: 100}, t0)
	c.Update(t0.Add(300 * time.Millisecond))

	c.PointerDown(0, 0, ButtonPrimary)
	if c.State() != StateDragging {
		t.Fatalf("state = %s, want dragging", c.State())
	}
	pos := c.cam.Position
	c.Update(t0.Add(time.Second))
	if c.cam.Position != pos {
		t.Error("canceled animation kept moving the camera")
	}
}

func TestReset(t *testing.T) {
	c := newTestController()
	c.Focus(&point{X: 100}, time.Unix(0, 0))
	c.Reset()

	if c.State() != StateIdle {
		t.Errorf("state = %s", c.State())
	}
	if c.cam.Position != DefaultParams().Home || c.cam.Target != vmath.V3FZero {
		t.Errorf("reset camera = %+v", c.cam)
	}
	if p := c.Progress(time.Unix(0, 0)); p != 1 {
		t.Errorf("progress after reset = %f", p)
	}
}

func TestStateString(t *testing.T) {
	if StateAnimating.String() != "animating" || State(9).String() != "unknown" {
		t.Error("unexpected state names")
	}
}

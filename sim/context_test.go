package sim

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/cosmos/camera"
	"github.com/lixenwraith/cosmos/catalog"
	"github.com/lixenwraith/cosmos/picking"
	"github.com/lixenwraith/cosmos/scene"
	"github.com/lixenwraith/cosmos/texture"
	"github.com/lixenwraith/cosmos/vmath"
)

var t0 = time.Unix(1000, 0)

type recorder struct {
	commands []Command
	focused  []string
	frames   int
}

func (r *recorder) OnCommand(cmd Command)   { r.commands = append(r.commands, cmd) }
func (r *recorder) OnFocus(name string)     { r.focused = append(r.focused, name) }
func (r *recorder) OnFrame(_ time.Duration) { r.frames++ }

func buildScene(t *testing.T) *scene.Scene {
	t.Helper()
	specs := catalog.Bodies()
	set := make(texture.Set)
	for _, s := range specs {
		set[s.ID] = texture.NewImage(1)
	}
	p := scene.DefaultParams()
	p.StarCount = 10
	p.AsteroidCount = 40
	s, err := scene.Build(specs, set, p, rand.New(rand.NewPCG(9, 9)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func newReadyContext(t *testing.T) (*Context, *recorder) {
	t.Helper()
	opts := DefaultOptions()
	opts.Clock = func() time.Time { return t0 }
	c := NewContext(opts)
	c.SetScene(buildScene(t))
	c.Resize(200, 100)
	rec := &recorder{}
	c.AddObserver(rec)
	return c, rec
}

func TestFrameBeforeReady(t *testing.T) {
	c := NewContext(DefaultOptions())
	c.SetLoadingProgress(3, 9)
	c.Frame(t0)

	if c.Ready() {
		t.Fatal("context ready without scene")
	}
	if done, total := c.LoadingProgress(); done != 3 || total != 9 {
		t.Errorf("progress = %d/%d", done, total)
	}
	snap := c.Snapshot()
	if snap.Ready || snap.Frame != 1 || len(snap.Bodies) != 0 {
		t.Errorf("snapshot = %+v", snap)
	}
	if hit := c.Click(10, 10, t0); hit.Kind != picking.HitNone {
		t.Errorf("click while loading = %s", hit.Kind)
	}
}

func TestFrameAdvances(t *testing.T) {
	c, rec := newReadyContext(t)
	s := c.Scene()
	earth := s.Body(catalog.Earth)
	a0 := earth.Angle

	c.Frame(t0)
	c.Frame(t0.Add(16 * time.Millisecond))

	if math.Abs(s.Star.Corona.Time-0.02) > 1e-12 {
		t.Errorf("corona time = %f, want 0.02", s.Star.Corona.Time)
	}
	if math.Abs(s.Starfield.Rotation-0.0002) > 1e-12 {
		t.Errorf("starfield rotation = %f", s.Starfield.Rotation)
	}
	if math.Abs(earth.Angle-(a0+0.01)) > 1e-12 {
		t.Errorf("earth angle = %f, want %f", earth.Angle, a0+0.01)
	}
	if c.Ticks() != 2 || c.Frames() != 2 || rec.frames != 2 {
		t.Errorf("ticks=%d frames=%d observed=%d", c.Ticks(), c.Frames(), rec.frames)
	}

	snap := c.Snapshot()
	if !snap.Ready || len(snap.Bodies) != 8 || snap.Frame != 2 {
		t.Errorf("snapshot ready=%v bodies=%d frame=%d", snap.Ready, len(snap.Bodies), snap.Frame)
	}
}

func TestPausedFrameLeavesBodies(t *testing.T) {
	c, _ := newReadyContext(t)
	c.Frame(t0)
	if got := c.Execute(ToggleRotation); got != "Resume Rotation" {
		t.Errorf("label = %q", got)
	}
	s := c.Scene()
	if len(s.Moons) == 0 || len(s.Asteroids) == 0 {
		t.Fatalf("fixture has %d moons and %d asteroids", len(s.Moons), len(s.Asteroids))
	}

	angles := make([]float64, len(s.Bodies))
	positions := make([]vmath.Vec3F, len(s.Bodies))
	for i, b := range s.Bodies {
		angles[i] = b.Angle
		positions[i] = b.Position
	}
	moons := make([]vmath.Vec3F, len(s.Moons))
	for i, m := range s.Moons {
		moons[i] = m.Local
	}
	rocks := make([]vmath.Vec3F, len(s.Asteroids))
	for i, a := range s.Asteroids {
		rocks[i] = a.Position
	}
	spin := s.Star.Spin
	ticks := c.Ticks()

	for i := 0; i < 10; i++ {
		c.Frame(t0.Add(time.Duration(i) * 16 * time.Millisecond))
	}
	for i, b := range s.Bodies {
		if b.Angle != angles[i] || b.Position != positions[i] {
			t.Fatalf("%s moved while paused", b.Spec.Name)
		}
	}
	for i, m := range s.Moons {
		if m.Local != moons[i] {
			t.Fatalf("moon %d moved while paused", i)
		}
	}
	for i, a := range s.Asteroids {
		if a.Position != rocks[i] {
			t.Fatalf("asteroid %d moved while paused", i)
		}
	}
	if s.Star.Spin != spin {
		t.Error("star spun while paused")
	}
	if c.Ticks() != ticks {
		t.Errorf("ticks = %d while paused, want %d", c.Ticks(), ticks)
	}
	if s.Star.Corona.Time == 0 {
		t.Error("corona should animate while paused")
	}

	if got := c.Execute(ToggleRotation); got != "Pause Rotation" {
		t.Errorf("label = %q", got)
	}
	c.Frame(t0)
	if s.Asteroids[0].Position == rocks[0] {
		t.Error("asteroid did not move after resume")
	}
}

func TestLabels(t *testing.T) {
	c, _ := newReadyContext(t)
	c.Execute(ToggleRotation)

	s := c.Scene()
	earth := s.Body(catalog.Earth)
	earth.Position = vmath.V3FZero
	mars := s.Body(catalog.Mars)
	mars.Position = vmath.Vec3F{Y: 50, Z: 400} // behind the home camera

	c.Frame(t0)

	var sawEarth bool
	for _, l := range c.Labels() {
		if l.Name == "Mars" {
			t.Error("label for body behind the camera")
		}
		if l.Name == "Earth" {
			sawEarth = true
			if math.Abs(l.X-100) > 1e-6 || math.Abs(l.Y-50) > 1e-6 {
				t.Errorf("earth label at (%f,%f), want center", l.X, l.Y)
			}
		}
	}
	if !sawEarth {
		t.Fatal("earth label missing")
	}
	if want := bodiesInFront(c); len(c.Labels()) != want {
		t.Errorf("labels = %d, want %d bodies in front of the camera", len(c.Labels()), want)
	}

	if got := c.Execute(ToggleLabels); got != "Show Labels" {
		t.Errorf("label = %q", got)
	}
	if len(c.Labels()) != 0 {
		t.Error("labels not cleared eagerly")
	}
	c.Frame(t0)
	if len(c.Labels()) != 0 {
		t.Error("labels recomputed while hidden")
	}
	if got := c.Execute(ToggleLabels); got != "Hide Labels" {
		t.Errorf("label = %q", got)
	}
}

func bodiesInFront(c *Context) int {
	cam := c.Camera().Camera()
	n := 0
	for _, b := range c.Scene().Bodies {
		if cam.Project(b.Position).Z < 1 {
			n++
		}
	}
	return n
}

func TestLabelCountMatchesVisibleBodies(t *testing.T) {
	c, _ := newReadyContext(t)
	for i := 0; i < 3; i++ {
		c.Frame(t0.Add(time.Duration(i) * time.Second))
		want := bodiesInFront(c)
		if want == 0 {
			t.Fatal("no body in front of the home camera")
		}
		if got := len(c.Labels()); got != want {
			t.Errorf("frame %d: %d labels, want %d", i, got, want)
		}
	}

	// Turn the camera around so part of the system falls behind it
	c.Execute(ToggleRotation)
	c.Camera().Camera().Position = vmath.Vec3F{X: 100, Y: 5}
	c.Camera().Camera().LookAt(vmath.Vec3F{X: 300, Y: 5})
	c.Frame(t0.Add(5 * time.Second))
	want := bodiesInFront(c)
	if want == len(c.Scene().Bodies) {
		t.Fatal("expected some bodies behind the camera")
	}
	if got := len(c.Labels()); got != want {
		t.Errorf("%d labels, want %d", got, want)
	}
}

func TestToggleOrbitsAndLighting(t *testing.T) {
	c, rec := newReadyContext(t)

	if got := c.Execute(ToggleOrbits); got != "Show Orbits" {
		t.Errorf("label = %q", got)
	}
	for _, o := range c.Scene().Orbits {
		if o.Visible {
			t.Fatal("orbit visible after hide")
		}
	}
	if got := c.Execute(ToggleOrbits); got != "Hide Orbits" {
		t.Errorf("label = %q", got)
	}

	if !c.Lighting().Realistic {
		t.Error("default lighting should be realistic")
	}
	if got := c.Execute(ToggleLighting); got != "Realistic Lighting" {
		t.Errorf("label = %q", got)
	}
	if rig := c.Lighting(); rig.Realistic || rig.Directional == nil {
		t.Errorf("expected enhanced rig, got %+v", rig)
	}
	if got := c.Execute(ToggleLighting); got != "Enhanced Lighting" {
		t.Errorf("label = %q", got)
	}

	if len(rec.commands) != 4 || rec.commands[0] != ToggleOrbits {
		t.Errorf("observed commands = %v", rec.commands)
	}
	if got := c.Execute(CmdNone); got != "" || len(rec.commands) != 4 {
		t.Error("CmdNone should be ignored")
	}
}

func TestAffordances(t *testing.T) {
	c, _ := newReadyContext(t)
	want := []string{"Reset View", "Hide Orbits", "Hide Labels", "Pause Rotation", "Enhanced Lighting"}
	got := c.Affordances()
	if len(got) != len(want) {
		t.Fatalf("affordances = %v", got)
	}
	for i := range want {
		if got[i].Label != want[i] {
			t.Errorf("affordance %d = %q, want %q", i, got[i].Label, want[i])
		}
	}
}

func TestClickPlanetFocuses(t *testing.T) {
	c, rec := newReadyContext(t)
	c.Execute(ToggleRotation)
	c.Execute(ToggleOrbits)

	earth := c.Scene().Body(catalog.Earth)
	earth.Position = vmath.Vec3F{Y: 25, Z: 100} // on the home view axis, in front of the star

	hit := c.Click(100, 50, t0)
	if hit.Kind != picking.HitPlanet || hit.Body != earth {
		t.Fatalf("hit = %s", hit.Kind)
	}
	if c.Camera().State() != camera.StateAnimating {
		t.Errorf("camera state = %s", c.Camera().State())
	}
	if !c.Info().Visible(t0) {
		t.Error("info panel not shown")
	}
	if info, _ := c.Info().Current(); info.Name != "Earth" {
		t.Errorf("info = %+v", info)
	}
	if len(rec.focused) != 1 || rec.focused[0] != "Earth" {
		t.Errorf("focus events = %v", rec.focused)
	}

	c.Frame(t0.Add(2 * time.Second))
	if c.Snapshot().Focused != "Earth" {
		t.Errorf("snapshot focused = %q", c.Snapshot().Focused)
	}
}

func TestClickMarsFocuses(t *testing.T) {
	c, rec := newReadyContext(t)
	c.Execute(ToggleRotation)
	c.Execute(ToggleOrbits)

	mars := c.Scene().Body(catalog.Mars)
	mars.Position = vmath.Vec3F{X: 90}
	home := c.Camera().Camera()
	home.Position = vmath.Vec3F{X: 90, Y: 10, Z: 60}
	home.LookAt(mars.Position)

	hit := c.Click(100, 50, t0)
	if hit.Kind != picking.HitPlanet || hit.Body != mars {
		t.Fatalf("hit = %s", hit.Kind)
	}
	info, ok := c.Info().Current()
	if !ok || info.Name != "Mars" || info.DistanceText != "Distance from Sun: 90 million km" {
		t.Errorf("info = %+v", info)
	}
	if len(rec.focused) != 1 || rec.focused[0] != "Mars" {
		t.Errorf("focus events = %v", rec.focused)
	}

	c.Frame(t0.Add(2 * time.Second))
	want := vmath.Vec3F{X: 75, Y: 5}
	if got := c.Camera().Camera().Position; !vmath.V3FApproxEqual(got, want, 1e-9) {
		t.Errorf("camera at %v, want %v", got, want)
	}
	if d := vmath.V3FMag(vmath.V3FSub(want, mars.Position)); math.Abs(d-math.Hypot(15, 5)) > 1e-9 {
		t.Errorf("standoff = %f", d)
	}
	if c.Camera().Camera().Target != mars.Position {
		t.Errorf("camera aims at %v", c.Camera().Camera().Target)
	}
	if c.Camera().State() != camera.StateIdle {
		t.Errorf("state = %s after animation", c.Camera().State())
	}
}

func TestClickStarIsNoop(t *testing.T) {
	c, rec := newReadyContext(t)
	c.Execute(ToggleOrbits)

	hit := c.Click(100, 50, t0)
	if hit.Kind != picking.HitStar {
		t.Fatalf("hit = %s, want star", hit.Kind)
	}
	if c.Camera().State() != camera.StateIdle {
		t.Errorf("camera state = %s", c.Camera().State())
	}
	if c.Info().Visible(t0) {
		t.Error("info shown for star")
	}
	if len(rec.focused) != 0 {
		t.Error("focus event for star")
	}
}

func TestFocusCycling(t *testing.T) {
	c, rec := newReadyContext(t)

	if got := c.Execute(FocusPrev); got != "Previous Planet" {
		t.Errorf("label = %q", got)
	}
	c.Execute(FocusNext)
	c.Execute(FocusNext)

	want := []string{"Neptune", "Mercury", "Venus"}
	if len(rec.focused) != len(want) {
		t.Fatalf("focused = %v", rec.focused)
	}
	for i := range want {
		if rec.focused[i] != want[i] {
			t.Errorf("focused = %v, want %v", rec.focused, want)
			break
		}
	}
}

func TestZoomResetQuit(t *testing.T) {
	c, _ := newReadyContext(t)
	d := c.Camera().Distance()

	c.Execute(ZoomOut)
	if math.Abs(c.Camera().Distance()-d*1.1) > 1e-9 {
		t.Errorf("zoom out distance = %f", c.Camera().Distance())
	}
	c.Execute(ZoomIn)
	c.Execute(ZoomIn)
	if c.Camera().Distance() >= d {
		t.Error("zoom in did not approach")
	}

	if got := c.Execute(ResetView); got != "Reset View" {
		t.Errorf("label = %q", got)
	}
	if math.Abs(c.Camera().Distance()-d) > 1e-9 {
		t.Error("reset did not restore home distance")
	}

	if c.QuitRequested() {
		t.Fatal("quit before command")
	}
	c.Execute(Quit)
	if !c.QuitRequested() {
		t.Error("quit not recorded")
	}
}

func TestPointerForwarding(t *testing.T) {
	c, _ := newReadyContext(t)
	d := c.Camera().Distance()

	c.PointerDown(0, 0, camera.ButtonPrimary)
	c.PointerMove(30, 0)
	c.PointerUp()
	if c.Camera().State() != camera.StateIdle {
		t.Errorf("state = %s", c.Camera().State())
	}
	if math.Abs(c.Camera().Distance()-d) > 1e-9 {
		t.Error("rotation changed distance")
	}

	c.Wheel(1)
	if math.Abs(c.Camera().Distance()-d*1.1) > 1e-9 {
		t.Errorf("wheel distance = %f", c.Camera().Distance())
	}
}

func TestResizeIgnoresZero(t *testing.T) {
	c, _ := newReadyContext(t)
	if c.Resize(0, 40) {
		t.Error("zero width accepted")
	}
	if w, h := c.Viewport(); w != 200 || h != 100 {
		t.Errorf("viewport = %dx%d", w, h)
	}
}

func TestParseCommand(t *testing.T) {
	for _, cmd := range Commands() {
		got, ok := ParseCommand(cmd.String())
		if !ok || got != cmd {
			t.Errorf("ParseCommand(%q) = %v %v", cmd.String(), got, ok)
		}
	}
	if _, ok := ParseCommand("none"); ok {
		t.Error("none should not parse")
	}
	if _, ok := ParseCommand("warp"); ok {
		t.Error("unknown name parsed")
	}
}

func TestIlluminance(t *testing.T) {
	p := vmath.Vec3F{X: 100}
	facing := vmath.Vec3F{X: -1}
	away := vmath.Vec3F{X: 1}

	real := RealisticRig()
	want := 17.0/255 + 2*(1-100.0/2000)
	if got := real.Illuminance(p, facing); math.Abs(got-want) > 1e-9 {
		t.Errorf("realistic facing = %f, want %f", got, want)
	}
	if got := real.Illuminance(p, away); math.Abs(got-17.0/255) > 1e-9 {
		t.Errorf("realistic dark side = %f, want ambient", got)
	}

	enh := EnhancedRig()
	// Faces away from the star and is edge-on to the directional fill
	shadowed := vmath.V3FNormalize(vmath.Vec3F{X: 1, Z: -1})
	if got := enh.Illuminance(p, shadowed); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("enhanced ambient-only = %f, want 0.2", got)
	}

	far := vmath.Vec3F{X: 2500}
	if got := real.Illuminance(far, facing); math.Abs(got-17.0/255) > 1e-9 {
		t.Errorf("beyond range = %f, want ambient", got)
	}
}

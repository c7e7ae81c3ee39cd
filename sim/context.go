// Package sim owns the simulation context: the scene, camera, toggles and per-frame update.
// A Context is driven by a single goroutine; other goroutines read published snapshots.
package sim

import (
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cosmos/camera"
	"github.com/lixenwraith/cosmos/orbit"
	"github.com/lixenwraith/cosmos/picking"
	"github.com/lixenwraith/cosmos/scene"
)

// Options configures a Context
type Options struct {
	Camera        camera.Params
	Toggles       Toggles
	InfoDuration  time.Duration
	WrapEvery     uint64
	CoronaStep    float64 // corona time advance per frame
	StarfieldStep float64 // starfield Y rotation per frame, radians
	Clock         func() time.Time
	Logger        *slog.Logger
}

// DefaultOptions returns stock behavior
func DefaultOptions() Options {
	return Options{
		Camera:        camera.DefaultParams(),
		Toggles:       DefaultToggles(),
		InfoDuration:  picking.DefaultInfoDuration,
		WrapEvery:     orbit.DefaultWrapEvery,
		CoronaStep:    0.01,
		StarfieldStep: 0.0001,
	}
}

// Label is a body name anchored at raster pixel coordinates
type Label struct {
	Name string
	X, Y float64
}

// Context is the explicit simulation context
type Context struct {
	opts   Options
	logger *slog.Logger
	clock  func() time.Time

	scene   *scene.Scene
	engine  *orbit.Engine
	cam     *camera.Controller
	info    *picking.InfoPanel
	toggles Toggles
	labels  []Label

	width  int // raster pixels
	height int

	observers []Observer

	frames    uint64
	lastFrame time.Time
	focus     int // index into scene bodies, -1 before any focus
	quit      bool

	loadDone  atomic.Int32
	loadTotal atomic.Int32
	snapshot  atomic.Pointer[Snapshot]
}

// NewContext creates a context without a scene, Ready reports false until SetScene
func NewContext(opts Options) *Context {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	c := &Context{
		opts:    opts,
		logger:  logger,
		clock:   clock,
		engine:  orbit.NewEngine(opts.WrapEvery),
		cam:     camera.NewController(opts.Camera, 1),
		info:    picking.NewInfoPanel(opts.InfoDuration),
		toggles: opts.Toggles,
		focus:   -1,
	}
	c.snapshot.Store(&Snapshot{Toggles: c.toggles})
	return c
}

// AddObserver registers an event observer
func (c *Context) AddObserver(o Observer) {
	c.observers = append(c.observers, o)
}

// SetLoadingProgress records texture progress, safe from any goroutine
func (c *Context) SetLoadingProgress(done, total int) {
	c.loadTotal.Store(int32(total))
	c.loadDone.Store(int32(done))
}

// LoadingProgress returns finished and total texture counts
func (c *Context) LoadingProgress() (int, int) {
	return int(c.loadDone.Load()), int(c.loadTotal.Load())
}

// SetScene installs the built scene and applies current toggles to it
func (c *Context) SetScene(s *scene.Scene) {
	c.scene = s
	s.Visibility(c.toggles.OrbitsVisible)
	c.logger.Info("scene ready",
		"bodies", len(s.Bodies),
		"asteroids", len(s.Asteroids),
		"stars", len(s.Starfield.Points))
}

// Ready reports whether the scene has been built
func (c *Context) Ready() bool {
	return c.scene != nil
}

// Scene returns the scene, nil while loading
func (c *Context) Scene() *scene.Scene {
	return c.scene
}

// Camera returns the camera controller
func (c *Context) Camera() *camera.Controller {
	return c.cam
}

// Toggles returns the current switches
func (c *Context) Toggles() Toggles {
	return c.toggles
}

// Labels returns the labels computed by the last frame
func (c *Context) Labels() []Label {
	return c.labels
}

// Info returns the info panel
func (c *Context) Info() *picking.InfoPanel {
	return c.info
}

// Frames returns the number of simulated frames
func (c *Context) Frames() uint64 {
	return c.frames
}

// Ticks returns the number of kinematic ticks applied
func (c *Context) Ticks() uint64 {
	return c.engine.Ticks()
}

// Viewport returns the raster size in pixels
func (c *Context) Viewport() (int, int) {
	return c.width, c.height
}

// QuitRequested reports whether Quit was executed
func (c *Context) QuitRequested() bool {
	return c.quit
}

// Lighting returns the rig selected by the lighting toggle
func (c *Context) Lighting() LightingRig {
	if c.toggles.RealisticLighting {
		return RealisticRig()
	}
	return EnhancedRig()
}

// Resize sets the raster size, zero dimensions are ignored
func (c *Context) Resize(width, height int) bool {
	if !c.cam.SetViewport(width, height) {
		return false
	}
	c.width, c.height = width, height
	return true
}

// Frame advances one display refresh
func (c *Context) Frame(now time.Time) {
	var interval time.Duration
	if !c.lastFrame.IsZero() {
		interval = now.Sub(c.lastFrame)
	}
	c.lastFrame = now

	if c.scene != nil {
		c.scene.Star.Corona.Time += c.opts.CoronaStep
		c.scene.Starfield.Rotation += c.opts.StarfieldStep

		if c.toggles.Rotation {
			c.engine.Tick(c.scene)
		}
		c.cam.Update(now)

		if c.toggles.LabelsVisible {
			c.updateLabels()
		} else {
			c.labels = c.labels[:0]
		}
	}

	c.frames++
	c.publish(now)

	for _, o := range c.observers {
		o.OnFrame(interval)
	}
}

// updateLabels projects each planet, skipping those behind the camera
func (c *Context) updateLabels() {
	c.labels = c.labels[:0]
	if c.width <= 0 || c.height <= 0 {
		return
	}
	cam := c.cam.Camera()
	w, h := float64(c.width), float64(c.height)
	for _, b := range c.scene.Bodies {
		ndc := cam.Project(b.Position)
		if ndc.Z >= 1 {
			continue
		}
		c.labels = append(c.labels, Label{
			Name: b.Spec.Name,
			X:    (ndc.X*0.5 + 0.5) * w,
			Y:    (-ndc.Y*0.5 + 0.5) * h,
		})
	}
}

// Execute runs a command and returns the resulting affordance label
func (c *Context) Execute(cmd Command) string {
	switch cmd {
	case ToggleOrbits:
		c.toggles.OrbitsVisible = !c.toggles.OrbitsVisible
		if c.scene != nil {
			c.scene.Visibility(c.toggles.OrbitsVisible)
		}
	case ToggleLabels:
		c.toggles.LabelsVisible = !c.toggles.LabelsVisible
		if !c.toggles.LabelsVisible {
			c.labels = c.labels[:0]
		}
	case ToggleRotation:
		c.toggles.Rotation = !c.toggles.Rotation
	case ToggleLighting:
		c.toggles.RealisticLighting = !c.toggles.RealisticLighting
	case ResetView:
		c.cam.Reset()
	case FocusNext:
		c.cycleFocus(1)
	case FocusPrev:
		c.cycleFocus(-1)
	case ZoomIn:
		c.cam.Wheel(-1)
	case ZoomOut:
		c.cam.Wheel(1)
	case Quit:
		c.quit = true
	default:
		return ""
	}

	c.logger.Debug("command", "command", cmd.String(), "toggles", c.toggles)
	for _, o := range c.observers {
		o.OnCommand(cmd)
	}
	return c.toggles.label(cmd)
}

// Affordances returns the control bar entries with labels for the current state
func (c *Context) Affordances() []Affordance {
	cmds := []Command{ResetView, ToggleOrbits, ToggleLabels, ToggleRotation, ToggleLighting}
	out := make([]Affordance, len(cmds))
	for i, cmd := range cmds {
		out[i] = Affordance{Command: cmd, Label: c.toggles.label(cmd)}
	}
	return out
}

func (c *Context) cycleFocus(step int) {
	if c.scene == nil || len(c.scene.Bodies) == 0 {
		return
	}
	n := len(c.scene.Bodies)
	next := c.focus + step
	if c.focus < 0 && step < 0 {
		next = n - 1
	}
	next = ((next % n) + n) % n
	c.focusOn(next, c.clock())
}

func (c *Context) focusOn(index int, now time.Time) {
	body := c.scene.Bodies[index]
	c.focus = index
	c.cam.Focus(body, now)
	c.info.Show(picking.InfoFor(body.Spec), now)
	c.logger.Debug("focus", "body", body.Spec.Name)
	for _, o := range c.observers {
		o.OnFocus(body.Spec.Name)
	}
}

// PointerDown forwards a button press in pointer pixel units
func (c *Context) PointerDown(x, y float64, b camera.Button) {
	c.cam.PointerDown(x, y, b)
}

// PointerMove forwards pointer motion
func (c *Context) PointerMove(x, y float64) {
	c.cam.PointerMove(x, y)
}

// PointerUp forwards a button release
func (c *Context) PointerUp() {
	c.cam.PointerUp()
}

// Wheel forwards a wheel step
func (c *Context) Wheel(delta float64) {
	c.cam.Wheel(delta)
}

// Click picks at raster pixel px,py and focuses a planet when one is hit
func (c *Context) Click(px, py float64, now time.Time) picking.Hit {
	if c.scene == nil || c.width <= 0 || c.height <= 0 {
		return picking.Hit{}
	}
	x, y := picking.PixelToNDC(px, py, float64(c.width), float64(c.height))
	hit := picking.Pick(c.cam.Camera(), c.scene, x, y)
	if !hit.Focusable() {
		return hit
	}
	for i, b := range c.scene.Bodies {
		if b == hit.Body {
			c.focusOn(i, now)
			break
		}
	}
	return hit
}

// publish stores an immutable snapshot for concurrent readers
func (c *Context) publish(now time.Time) {
	cam := c.cam.Camera()
	snap := &Snapshot{
		Frame:   c.frames,
		Time:    now,
		Ready:   c.scene != nil,
		Toggles: c.toggles,
		Camera: CameraState{
			Position: triple(cam.Position),
			Target:   triple(cam.Target),
			Distance: cam.Distance(),
			State:    c.cam.State().String(),
		},
	}
	if c.scene != nil {
		snap.Bodies = make([]BodyState, 0, len(c.scene.Bodies))
		for _, b := range c.scene.Bodies {
			snap.Bodies = append(snap.Bodies, BodyState{
				Name:     b.Spec.Name,
				Position: triple(b.Position),
				Angle:    b.Angle,
			})
		}
		if c.focus >= 0 {
			snap.Focused = c.scene.Bodies[c.focus].Spec.Name
		}
	}
	c.snapshot.Store(snap)
}

// Snapshot returns the last published state, safe from any goroutine
func (c *Context) Snapshot() *Snapshot {
	return c.snapshot.Load()
}

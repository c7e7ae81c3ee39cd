package camera

import (
	"math"
	"time"

	"github.com/lixenwraith/cosmos/vmath"
)

// State is the controller mode
type State uint8

const (
	StateIdle State = iota
	StateDragging
	StateAnimating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateAnimating:
		return "animating"
	}
	return "unknown"
}

// Button identifies the pointer button that started a drag
type Button uint8

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// Focusable is anything the camera can fly to
// The point is read every update so a moving body stays framed
type Focusable interface {
	FocusPoint() vmath.Vec3F
}

// Params configures controller response
type Params struct {
	MinDistance float64
	MaxDistance float64

	RotateSpeed float64 // radians per pointer pixel
	PanSpeed    float64 // units per pointer pixel
	ZoomIn      float64 // distance factor for a negative wheel step
	ZoomOut     float64 // distance factor for a positive wheel step

	FocusStandoff float64
	FocusLift     float64
	FocusDuration time.Duration

	Home vmath.Vec3F

	FOV  float64
	Near float64
	Far  float64
}

// DefaultParams returns the stock camera behavior
func DefaultParams() Params {
	return Params{
		MinDistance:   30,
		MaxDistance:   500,
		RotateSpeed:   0.01,
		PanSpeed:      0.5,
		ZoomIn:        0.9,
		ZoomOut:       1.1,
		FocusStandoff: 15,
		FocusLift:     5,
		FocusDuration: time.Second,
		Home:          vmath.Vec3F{X: 0, Y: 50, Z: 200},
		FOV:           60,
		Near:          0.1,
		Far:           10000,
	}
}

// phiMargin keeps the orbit camera off the poles
const phiMargin = 0.1

type animation struct {
	from   vmath.Vec3F
	to     vmath.Vec3F
	start  time.Time
	target Focusable
}

// Controller is the camera state machine: Idle, Dragging(button), Animating
type Controller struct {
	cam    Camera
	params Params

	state  State
	button Button
	lastX  float64
	lastY  float64

	anim animation
}

// NewController creates a controller at the home position looking at the origin
func NewController(p Params, aspect float64) *Controller {
	if aspect <= 0 {
		aspect = 1
	}
	c := &Controller{
		cam: Camera{
			FOV:    p.FOV,
			Aspect: aspect,
			Near:   p.Near,
			Far:    p.Far,
		},
		params: p,
	}
	c.Reset()
	return c
}

// Camera exposes the controlled camera for projection and picking
func (c *Controller) Camera() *Camera {
	return &c.cam
}

// State returns the current mode
func (c *Controller) State() State {
	return c.state
}

// Button returns the dragging button, ButtonNone outside Dragging
func (c *Controller) Button() Button {
	return c.button
}

// Distance returns the camera distance from the origin
func (c *Controller) Distance() float64 {
	return c.cam.Distance()
}

// Focused returns the body of the current or last animation
func (c *Controller) Focused() Focusable {
	return c.anim.target
}

// clampDistance rescales the camera position into [MinDistance, MaxDistance] along its direction
func (c *Controller) clampDistance() {
	d := vmath.V3FMag(c.cam.Position)
	if d == 0 {
		c.cam.Position = vmath.V3FScale(vmath.V3FNormalize(c.params.Home), c.params.MinDistance)
		return
	}
	clamped := vmath.Clamp(d, c.params.MinDistance, c.params.MaxDistance)
	if clamped != d {
		c.cam.Position = vmath.V3FScale(c.cam.Position, clamped/d)
	}
}

// PointerDown starts a drag, an in-flight animation is abandoned where it stands
func (c *Controller) PointerDown(x, y float64, b Button) {
	c.state = StateDragging
	c.button = b
	c.lastX, c.lastY = x, y
}

// PointerMove rotates (primary) or pans (secondary) by the pointer delta
func (c *Controller) PointerMove(x, y float64) {
	if c.state != StateDragging {
		return
	}
	dx := x - c.lastX
	dy := y - c.lastY
	c.lastX, c.lastY = x, y

	switch c.button {
	case ButtonPrimary:
		s := vmath.SphericalFromV3F(c.cam.Position)
		s.Theta -= dx * c.params.RotateSpeed
		s.Phi -= dy * c.params.RotateSpeed
		s.Phi = vmath.Clamp(s.Phi, phiMargin, math.Pi-phiMargin)
		c.cam.Position = s.V3F()
	case ButtonSecondary:
		c.cam.Position.X -= dx * c.params.PanSpeed
		c.cam.Position.Y += dy * c.params.PanSpeed
	default:
		return
	}
	c.clampDistance()
	c.cam.LookAt(vmath.V3FZero)
}

// PointerUp ends a drag
func (c *Controller) PointerUp() {
	if c.state == StateDragging {
		c.state = StateIdle
	}
	c.button = ButtonNone
}

// Wheel zooms along the current direction, positive delta moves away
// Ignored while animating
func (c *Controller) Wheel(delta float64) {
	if c.state == StateAnimating || delta == 0 {
		return
	}
	factor := c.params.ZoomIn
	if delta > 0 {
		factor = c.params.ZoomOut
	}

	d := vmath.V3FMag(c.cam.Position)
	next := vmath.Clamp(d*factor, c.params.MinDistance, c.params.MaxDistance)
	if d == 0 {
		c.cam.Position = vmath.V3FScale(vmath.V3FNormalize(c.params.Home), next)
	} else {
		c.cam.Position = vmath.V3FScale(c.cam.Position, next/d)
	}
	c.cam.LookAt(vmath.V3FZero)
}

// FocusTarget returns where the camera ends up when focusing on point p
// Standing off toward the origin and lifted, the end position is not distance clamped
func (c *Controller) FocusTarget(p vmath.Vec3F) vmath.Vec3F {
	dir := vmath.V3FNormalize(p)
	to := vmath.V3FSub(p, vmath.V3FScale(dir, c.params.FocusStandoff))
	to.Y += c.params.FocusLift
	return to
}

// Focus starts an eased flight toward body, restarting any running animation
func (c *Controller) Focus(body Focusable, now time.Time) {
	c.anim = animation{
		from:   c.cam.Position,
		to:     c.FocusTarget(body.FocusPoint()),
		start:  now,
		target: body,
	}
	c.state = StateAnimating
	c.button = ButtonNone
}

// Progress returns linear animation progress in [0,1], 1 when not animating
func (c *Controller) Progress(now time.Time) float64 {
	if c.state != StateAnimating {
		return 1
	}
	if c.params.FocusDuration <= 0 {
		return 1
	}
	p := float64(now.Sub(c.anim.start)) / float64(c.params.FocusDuration)
	return vmath.Clamp(p, 0, 1)
}

// Update advances an animation, the camera keeps aiming at the body's current position
func (c *Controller) Update(now time.Time) {
	if c.state != StateAnimating {
		return
	}
	progress := c.Progress(now)
	eased := vmath.EaseInOutCubic(progress)
	c.cam.Position = vmath.V3FLerp(c.anim.from, c.anim.to, eased)
	c.cam.LookAt(c.anim.target.FocusPoint())
	if progress >= 1 {
		c.state = StateIdle
	}
}

// Reset snaps to the home position aiming at the origin
func (c *Controller) Reset() {
	c.cam.Position = c.params.Home
	c.cam.LookAt(vmath.V3FZero)
	c.state = StateIdle
	c.button = ButtonNone
	c.anim = animation{}
}

// SetViewport forwards a viewport change, zero dimensions are ignored
func (c *Controller) SetViewport(width, height int) bool {
	return c.cam.SetViewport(width, height)
}

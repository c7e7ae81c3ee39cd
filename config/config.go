// Package config loads cosmos.toml onto built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/cosmos/camera"
	"github.com/lixenwraith/cosmos/catalog"
	"github.com/lixenwraith/cosmos/orbit"
	"github.com/lixenwraith/cosmos/picking"
	"github.com/lixenwraith/cosmos/scene"
	"github.com/lixenwraith/cosmos/sim"
	"github.com/lixenwraith/cosmos/texture"
)

// DefaultPath is read when --config is not given and the file exists
const DefaultPath = "cosmos.toml"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Color modes accepted by display.color
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

type Display struct {
	FPS          int     `toml:"fps"`
	Color        string  `toml:"color"`
	HUD          bool    `toml:"hud"`
	CellWidthPx  float64 `toml:"cell_width_px"`
	CellHeightPx float64 `toml:"cell_height_px"`
}

type Camera struct {
	MinDistance   float64       `toml:"min_distance"`
	MaxDistance   float64       `toml:"max_distance"`
	RotateSpeed   float64       `toml:"rotate_speed"`
	PanSpeed      float64       `toml:"pan_speed"`
	ZoomIn        float64       `toml:"zoom_in"`
	ZoomOut       float64       `toml:"zoom_out"`
	FocusDuration time.Duration `toml:"focus_duration"`
	FOV           float64       `toml:"fov"`
}

type Simulation struct {
	Seed         uint64        `toml:"seed"`
	WrapEvery    uint64        `toml:"wrap_every"`
	InfoDuration time.Duration `toml:"info_duration"`
	Rotation     bool          `toml:"rotation"`
	Orbits       bool          `toml:"orbits"`
	Labels       bool          `toml:"labels"`
}

type Texture struct {
	Size int `toml:"size"`
}

type Scene struct {
	Stars         int     `toml:"stars"`
	OrbitSegments int     `toml:"orbit_segments"`
	Asteroids     int     `toml:"asteroids"`
	BeltInner     float64 `toml:"belt_inner"`
	BeltOuter     float64 `toml:"belt_outer"`
	Moon          bool    `toml:"moon"`
}

type Lighting struct {
	Realistic bool `toml:"realistic"`
}

type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // linear master gain, 0..1
}

type Telemetry struct {
	MetricsAddr string  `toml:"metrics_addr"`
	StreamRate  float64 `toml:"stream_rate"` // snapshots per second per client
	MaxClients  int     `toml:"max_clients"`
}

type Log struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Config mirrors cosmos.toml
type Config struct {
	Display    Display           `toml:"display"`
	Camera     Camera            `toml:"camera"`
	Simulation Simulation        `toml:"simulation"`
	Texture    Texture           `toml:"texture"`
	Scene      Scene             `toml:"scene"`
	Lighting   Lighting          `toml:"lighting"`
	Audio      Audio             `toml:"audio"`
	Telemetry  Telemetry         `toml:"telemetry"`
	Log        Log               `toml:"log"`
	Keys       map[string]string `toml:"keys"`
}

// Default returns the stock configuration
func Default() Config {
	cp := camera.DefaultParams()
	sp := scene.DefaultParams()
	return Config{
		Display: Display{
			FPS:          30,
			Color:        ColorAuto,
			HUD:          true,
			CellWidthPx:  8,
			CellHeightPx: 16,
		},
		Camera: Camera{
			MinDistance:   cp.MinDistance,
			MaxDistance:   cp.MaxDistance,
			RotateSpeed:   cp.RotateSpeed,
			PanSpeed:      cp.PanSpeed,
			ZoomIn:        cp.ZoomIn,
			ZoomOut:       cp.ZoomOut,
			FocusDuration: cp.FocusDuration,
			FOV:           cp.FOV,
		},
		Simulation: Simulation{
			Seed:         1,
			WrapEvery:    orbit.DefaultWrapEvery,
			InfoDuration: picking.DefaultInfoDuration,
			Rotation:     true,
			Orbits:       true,
			Labels:       true,
		},
		Texture: Texture{Size: 128},
		Scene: Scene{
			Stars:         sp.StarCount,
			OrbitSegments: sp.OrbitSegments,
			Asteroids:     sp.AsteroidCount,
			BeltInner:     sp.BeltInner,
			BeltOuter:     sp.BeltOuter,
			Moon:          true,
		},
		Lighting: Lighting{Realistic: true},
		Audio:    Audio{Enabled: true, Volume: 0.8},
		Telemetry: Telemetry{
			StreamRate: 5,
			MaxClients: 8,
		},
		Log: Log{Path: "logs/cosmos.log"},
	}
}

// Load decodes path onto Default and validates the result
// A missing DefaultPath is not an error, any other missing file is
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: %w: unknown key %q", path, ErrInvalid, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks ranges and cross-field constraints
func (c Config) Validate() error {
	switch {
	case c.Display.FPS <= 0:
		return invalid("display.fps must be positive, got %d", c.Display.FPS)
	case c.Display.CellWidthPx <= 0 || c.Display.CellHeightPx <= 0:
		return invalid("display cell size must be positive")
	case c.Camera.MinDistance <= 0:
		return invalid("camera.min_distance must be positive, got %g", c.Camera.MinDistance)
	case c.Camera.MaxDistance <= c.Camera.MinDistance:
		return invalid("camera.max_distance %g must exceed min_distance %g", c.Camera.MaxDistance, c.Camera.MinDistance)
	case !(c.Camera.ZoomIn > 0 && c.Camera.ZoomIn < 1 && c.Camera.ZoomOut > 1):
		return invalid("camera zoom factors need 0 < zoom_in < 1 < zoom_out, got %g/%g", c.Camera.ZoomIn, c.Camera.ZoomOut)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return invalid("camera.fov out of range: %g", c.Camera.FOV)
	case c.Camera.FocusDuration < 0:
		return invalid("camera.focus_duration is negative")
	case c.Texture.Size < 16:
		return invalid("texture.size must be at least 16, got %d", c.Texture.Size)
	case c.Scene.Stars < 0 || c.Scene.Asteroids < 0 || c.Scene.OrbitSegments < 0:
		return invalid("scene counts must not be negative")
	case c.Scene.BeltInner >= c.Scene.BeltOuter:
		return invalid("scene.belt_inner %g must be below belt_outer %g", c.Scene.BeltInner, c.Scene.BeltOuter)
	case c.Simulation.InfoDuration < 0:
		return invalid("simulation.info_duration is negative")
	case c.Telemetry.StreamRate <= 0:
		return invalid("telemetry.stream_rate must be positive")
	case c.Telemetry.MaxClients < 1:
		return invalid("telemetry.max_clients must be at least 1")
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return invalid("audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	switch c.Display.Color {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return invalid("display.color %q (want auto, truecolor or 256)", c.Display.Color)
	}
	return nil
}

// FrameInterval is the ticker period for display.fps
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Display.FPS)
}

// CameraParams overlays the [camera] section on the controller defaults
func (c Config) CameraParams() camera.Params {
	p := camera.DefaultParams()
	p.MinDistance = c.Camera.MinDistance
	p.MaxDistance = c.Camera.MaxDistance
	p.RotateSpeed = c.Camera.RotateSpeed
	p.PanSpeed = c.Camera.PanSpeed
	p.ZoomIn = c.Camera.ZoomIn
	p.ZoomOut = c.Camera.ZoomOut
	p.FocusDuration = c.Camera.FocusDuration
	p.FOV = c.Camera.FOV
	return p
}

// SceneParams overlays the [scene] section on the builder defaults
func (c Config) SceneParams() scene.Params {
	p := scene.DefaultParams()
	p.StarCount = c.Scene.Stars
	p.OrbitSegments = c.Scene.OrbitSegments
	p.AsteroidCount = c.Scene.Asteroids
	p.BeltInner = c.Scene.BeltInner
	p.BeltOuter = c.Scene.BeltOuter
	if !c.Scene.Moon {
		p.MoonHost = catalog.BodyCount
	}
	return p
}

// SimOptions builds context options from [simulation], [lighting] and [camera]
func (c Config) SimOptions() sim.Options {
	o := sim.DefaultOptions()
	o.Camera = c.CameraParams()
	o.WrapEvery = c.Simulation.WrapEvery
	o.InfoDuration = c.Simulation.InfoDuration
	o.Toggles = sim.Toggles{
		Rotation:          c.Simulation.Rotation,
		RealisticLighting: c.Lighting.Realistic,
		OrbitsVisible:     c.Simulation.Orbits,
		LabelsVisible:     c.Simulation.Labels,
	}
	return o
}

// TextureSize returns the synthesized texture edge in pixels
func (c Config) TextureSize() int {
	if c.Texture.Size > texture.MaxSize {
		return texture.MaxSize
	}
	return c.Texture.Size
}

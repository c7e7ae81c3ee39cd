package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cosmos/audio"
	"github.com/lixenwraith/cosmos/catalog"
	"github.com/lixenwraith/cosmos/config"
	"github.com/lixenwraith/cosmos/core"
	"github.com/lixenwraith/cosmos/input"
	"github.com/lixenwraith/cosmos/render"
	"github.com/lixenwraith/cosmos/render/renderers"
	"github.com/lixenwraith/cosmos/scene"
	"github.com/lixenwraith/cosmos/service"
	"github.com/lixenwraith/cosmos/sim"
	"github.com/lixenwraith/cosmos/telemetry"
	"github.com/lixenwraith/cosmos/texture"
)

// sceneStream separates the scene RNG from the texture streams under the same seed
const sceneStream = 0x5eed5ce4e

type loadResult struct {
	textures texture.Set
	err      error
}

// app wires the simulation context to a screen, services and the texture loader
type app struct {
	cfg    config.Config
	logger *slog.Logger
	screen tcell.Screen

	sc           *sim.Context
	dispatcher   *input.Dispatcher
	orchestrator *render.RenderOrchestrator
	metrics      *telemetry.Metrics
	sound        *audio.Service
	server       *telemetry.Server
	hub          *service.Hub

	hudRows   int
	loaded    chan loadResult
	lastFrame time.Time
}

// newApp builds every component; screen may be nil for headless use
// A nil audio output selects the system speaker
func newApp(cfg config.Config, screen tcell.Screen, logger *slog.Logger, out audio.Output) (*app, error) {
	km, err := input.ParseKeymap(cfg.Keys)
	if err != nil {
		return nil, err
	}

	opts := cfg.SimOptions()
	opts.Logger = logger.With("component", "sim")
	sc := sim.NewContext(opts)

	a := &app{
		cfg:     cfg,
		logger:  logger,
		screen:  screen,
		sc:      sc,
		metrics: telemetry.NewMetrics(),
		hub:     service.NewHub(),
		loaded:  make(chan loadResult, 1),
	}
	if cfg.Display.HUD {
		a.hudRows = renderers.HUDRows
	}

	pcfg := input.PointerConfig{
		CellWidthPx:  cfg.Display.CellWidthPx,
		CellHeightPx: cfg.Display.CellHeightPx,
		ClickSlop:    input.DefaultClickSlop,
	}
	a.dispatcher = input.NewDispatcher(km, sc, pcfg, a.hudRows)

	cols, rows := 80, 24
	if screen != nil {
		cols, rows = screen.Size()
	}
	a.orchestrator = render.NewRenderOrchestrator(screen, cols, rows)
	renderers.Register(a.orchestrator, sc, km.Hint, a.dispatcher.Status, cfg.Display.HUD)
	a.dispatcher.Resize(cols, rows)

	a.sound = audio.NewService(out, logger.With("component", "audio"))
	a.server = telemetry.NewServer(sc, a.metrics, logger.With("component", "telemetry"))
	for _, svc := range []service.Service{a.sound, a.server} {
		if err := a.hub.Register(svc); err != nil {
			return nil, err
		}
	}

	sc.AddObserver(a.metrics)
	sc.AddObserver(a.sound)
	return a, nil
}

// startServices initializes optional services, a failure leaves them off
func (a *app) startServices() {
	args := map[string][]any{
		"audio":     {!a.cfg.Audio.Enabled, a.cfg.Audio.Volume},
		"telemetry": {a.cfg.Telemetry.MetricsAddr, a.cfg.Telemetry.StreamRate, a.cfg.Telemetry.MaxClients},
	}
	if err := a.hub.InitAll(args); err != nil {
		a.logger.Warn("services disabled", "error", err)
		return
	}
	if err := a.hub.StartAll(); err != nil {
		a.logger.Warn("services disabled", "error", err)
		return
	}
	a.logger.Info("services started", "order", a.hub.Order(), "audio", a.sound.Enabled(), "telemetry", a.server.Addr())
}

// loadTextures synthesizes textures off the main goroutine
func (a *app) loadTextures(ctx context.Context) {
	specs := catalog.Bodies()
	size := a.cfg.TextureSize()
	seed := a.cfg.Simulation.Seed
	a.sc.SetLoadingProgress(0, len(specs))
	core.Go(func() {
		start := time.Now()
		set, err := texture.LoadAll(ctx, specs, size, seed, a.sc.SetLoadingProgress)
		if err == nil {
			a.logger.Info("textures ready", "count", len(set), "size", size, "elapsed", time.Since(start))
		}
		a.loaded <- loadResult{textures: set, err: err}
	})
}

// installScene builds the scene from loaded textures on the main goroutine
func (a *app) installScene(res loadResult) error {
	if res.err != nil {
		return fmt.Errorf("textures: %w", res.err)
	}
	seed := a.cfg.Simulation.Seed
	rng := rand.New(rand.NewPCG(seed, seed^sceneStream))
	s, err := scene.Build(catalog.Bodies(), res.textures, a.cfg.SceneParams(), rng)
	if err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	a.sc.SetScene(s)
	return nil
}

// handleEvent applies one terminal event, true requests exit
func (a *app) handleEvent(ev tcell.Event, now time.Time) bool {
	quit := a.dispatcher.Handle(ev, now)
	if rs, ok := ev.(*tcell.EventResize); ok {
		cols, rows := rs.Size()
		a.orchestrator.Resize(cols, rows)
	}
	return quit || a.sc.QuitRequested()
}

// frame advances the simulation and renders one frame
func (a *app) frame(now time.Time) {
	var dt float64
	if !a.lastFrame.IsZero() {
		dt = now.Sub(a.lastFrame).Seconds()
	}
	a.lastFrame = now

	a.sc.Frame(now)

	cols, rows := a.orchestrator.Buffer().Size()
	if a.screen != nil {
		cols, rows = a.screen.Size()
	}
	a.orchestrator.RenderFrame(render.NewRenderContext(now, dt, a.sc.Frames(), cols, rows, a.hudRows))
}

// run drives the main loop until quit, context cancellation or a load failure
func (a *app) run(ctx context.Context, events <-chan tcell.Event) error {
	loadCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.loadTextures(loadCtx)

	ticker := time.NewTicker(a.cfg.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.handleEvent(ev, time.Now()) {
				a.logger.Info("quit", "frames", a.sc.Frames(), "ticks", a.sc.Ticks())
				return nil
			}

		case res := <-a.loaded:
			if err := a.installScene(res); err != nil {
				if errors.Is(err, texture.ErrCanceled) {
					return nil
				}
				return err
			}

		case now := <-ticker.C:
			a.frame(now)
			if a.sc.QuitRequested() {
				return nil
			}
		}
	}
}

// close stops services
func (a *app) close() {
	if err := a.hub.StopAll(); err != nil {
		a.logger.Warn("service stop", "error", err)
	}
}

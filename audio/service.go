package audio

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cosmos/sim"
)

// Service wraps SoundManager as a hub service and a simulation observer
// A missing audio backend disables it instead of failing startup
type Service struct {
	manager  *SoundManager
	output   Output
	logger   *slog.Logger
	disabled atomic.Bool
}

// NewService creates an audio service, nil output selects the speaker
func NewService(output Output, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{output: output, logger: logger}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: bool muted, args[1]: float64 master volume in [0,1]
func (s *Service) Init(args ...any) error {
	muted := false
	volume := 1.0
	if len(args) > 0 {
		if m, ok := args[0].(bool); ok {
			muted = m
		}
	}
	if len(args) > 1 {
		if v, ok := args[1].(float64); ok {
			volume = v
		}
	}
	if muted || volume <= 0 {
		s.disabled.Store(true)
		return nil
	}
	s.manager = NewSoundManager(s.output, volume)
	return nil
}

// Start implements service.Service, opens the device or disables the service
func (s *Service) Start() error {
	if s.disabled.Load() || s.manager == nil {
		return nil
	}
	if err := s.manager.Initialize(); err != nil {
		s.logger.Warn("audio unavailable", "error", err)
		s.disabled.Store(true)
		s.manager = nil
	}
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	if s.manager != nil {
		s.manager.Cleanup()
	}
	return nil
}

// Enabled reports whether cues will sound
func (s *Service) Enabled() bool {
	return !s.disabled.Load() && s.manager != nil && s.manager.Initialized()
}

// Manager returns the sound manager, nil when disabled
func (s *Service) Manager() *SoundManager {
	if s.disabled.Load() {
		return nil
	}
	return s.manager
}

// OnCommand implements sim.Observer
func (s *Service) OnCommand(cmd sim.Command) {
	if !s.Enabled() {
		return
	}
	switch cmd {
	case sim.ToggleOrbits, sim.ToggleLabels, sim.ToggleRotation, sim.ToggleLighting, sim.ResetView:
		s.manager.PlayToggle()
	}
}

// OnFocus implements sim.Observer
func (s *Service) OnFocus(string) {
	if !s.Enabled() {
		return
	}
	s.manager.PlayFocus()
	s.manager.PlayInfo()
}

// OnFrame implements sim.Observer
func (s *Service) OnFrame(time.Duration) {}

package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
	bufferSize = 100 * time.Millisecond

	// Same cue retriggered inside this window is dropped
	retriggerGap = 60 * time.Millisecond
)

// Output opens the playback device and attaches the mixer to it
type Output func(rate beep.SampleRate, bufferSamples int, mixer beep.Streamer) error

// SpeakerOutput plays through the system speaker
func SpeakerOutput(rate beep.SampleRate, bufferSamples int, mixer beep.Streamer) error {
	if err := speaker.Init(rate, bufferSamples); err != nil {
		return err
	}
	speaker.Play(mixer)
	return nil
}

// SoundManager mixes cue one-shots into a single output stream
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	output      Output
	volume      float64
	lastPlayed  [cueCount]time.Time
	clock       func() time.Time
	initialized bool
}

// NewSoundManager creates a manager, nil output selects the speaker
func NewSoundManager(output Output, volume float64) *SoundManager {
	if output == nil {
		output = SpeakerOutput
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		output: output,
		volume: volume,
		clock:  time.Now,
	}
}

// Initialize opens the output device once
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := sm.output(sampleRate, sampleRate.N(bufferSize), sm.mixer); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Initialized reports whether output is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup drops pending sounds and stops accepting new ones
// beep has no speaker close, an empty mixer keeps the device silent
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues a cue, returns false when it was dropped
func (sm *SoundManager) Play(c Cue) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || c >= cueCount || sm.volume <= 0 {
		return false
	}
	now := sm.clock()
	if now.Sub(sm.lastPlayed[c]) < retriggerGap {
		return false
	}
	sm.lastPlayed[c] = now

	speaker.Lock()
	sm.mixer.Add(NewCue(c, sampleRate, sm.volume))
	speaker.Unlock()
	return true
}

// Pending returns the number of cues still sounding
func (sm *SoundManager) Pending() int {
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}

// PlayFocus plays the camera flight whoosh
func (sm *SoundManager) PlayFocus() { sm.Play(CueFocus) }

// PlayInfo plays the info panel bell
func (sm *SoundManager) PlayInfo() { sm.Play(CueInfo) }

// PlayToggle plays the switch click
func (sm *SoundManager) PlayToggle() { sm.Play(CueToggle) }

package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Cue identifies a sound effect
type Cue uint8

const (
	CueFocus Cue = iota
	CueInfo
	CueToggle
	cueCount
)

var cueNames = [cueCount]string{"focus", "info", "toggle"}

func (c Cue) String() string {
	if c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// Cue timing
const (
	focusDuration = 450 * time.Millisecond
	focusAttack   = 120 * time.Millisecond
	focusRelease  = 300 * time.Millisecond

	infoDuration        = 600 * time.Millisecond
	infoAttack          = 5 * time.Millisecond
	infoFundamentalRel  = 550 * time.Millisecond
	infoOvertoneRelease = 300 * time.Millisecond

	toggleDuration = 40 * time.Millisecond
	toggleAttack   = 2 * time.Millisecond
	toggleRelease  = 30 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, freqEnd != freq sweeps linearly across the duration
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to freqEnd
func NewSweep(freq, freqEnd float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		freqEnd:  freqEnd,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewPCG(uint64(freq), uint64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + (o.freqEnd-o.freq)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack, flat sustain and linear release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly, zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// focusSound is a filtered noise whoosh over a falling tone, played while the camera flies
func focusSound(rate beep.SampleRate) beep.Streamer {
	noise := NewEnvelope(NewOscillator(0, focusDuration, WaveNoise, rate), focusDuration, focusAttack, focusRelease, rate)
	glide := NewEnvelope(NewSweep(320, 110, focusDuration, WaveSine, rate), focusDuration, focusAttack, focusRelease, rate)
	return beep.Mix(newVolume(noise, 0.25), newVolume(glide, 0.5))
}

// infoSound is a two-partial bell for the info panel
func infoSound(rate beep.SampleRate) beep.Streamer {
	fund := NewEnvelope(NewOscillator(880, infoDuration, WaveSine, rate), infoDuration, infoAttack, infoFundamentalRel, rate)
	over := NewEnvelope(NewOscillator(1760, infoDuration, WaveSine, rate), infoDuration, infoAttack, infoOvertoneRelease, rate)
	return beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
}

// toggleSound is a short square click
func toggleSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(1200, toggleDuration, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, toggleDuration, toggleAttack, toggleRelease, rate), 0.3)
}

// NewCue builds the streamer for c at the given master volume
func NewCue(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueFocus:
		s = focusSound(rate)
	case CueInfo:
		s = infoSound(rate)
	case CueToggle:
		s = toggleSound(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}

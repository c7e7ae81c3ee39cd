package picking

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/lixenwraith/cosmos/catalog"
)

// DefaultInfoDuration is how long the info panel stays up
const DefaultInfoDuration = 5 * time.Second

// Info is the text shown for a selected body
type Info struct {
	Name         string
	DistanceText string
	PeriodText   string
}

// Lines returns the non-empty body lines
func (i Info) Lines() []string {
	lines := make([]string, 0, 2)
	if i.DistanceText != "" {
		lines = append(lines, i.DistanceText)
	}
	if i.PeriodText != "" {
		lines = append(lines, i.PeriodText)
	}
	return lines
}

// InfoFor builds the panel text for a body
func InfoFor(spec catalog.BodySpec) Info {
	if spec.IsCentral() {
		return Info{
			Name:         spec.Name,
			DistanceText: "Star at the center of our solar system",
		}
	}
	period := math.Floor(spec.OrbitalPeriod() + 0.5)
	return Info{
		Name:         spec.Name,
		DistanceText: fmt.Sprintf("Distance from Sun: %s million km", strconv.FormatFloat(spec.Distance, 'f', -1, 64)),
		PeriodText:   fmt.Sprintf("Orbital period: %d days", int64(period)),
	}
}

// InfoPanel holds the last shown info and hides it after a fixed duration
type InfoPanel struct {
	duration time.Duration
	info     Info
	shownAt  time.Time
	shown    bool
}

// NewInfoPanel creates a hidden panel, duration <= 0 selects the default
func NewInfoPanel(duration time.Duration) *InfoPanel {
	if duration <= 0 {
		duration = DefaultInfoDuration
	}
	return &InfoPanel{duration: duration}
}

// Show displays info and restarts the hide timer
func (p *InfoPanel) Show(info Info, now time.Time) {
	p.info = info
	p.shownAt = now
	p.shown = true
}

// Visible reports whether the panel is up at now
func (p *InfoPanel) Visible(now time.Time) bool {
	return p.shown && now.Sub(p.shownAt) < p.duration
}

// Current returns the last shown info
func (p *InfoPanel) Current() (Info, bool) {
	return p.info, p.shown
}

// Remaining returns time left before auto-hide
func (p *InfoPanel) Remaining(now time.Time) time.Duration {
	if !p.Visible(now) {
		return 0
	}
	return p.duration - now.Sub(p.shownAt)
}

// Hide dismisses the panel immediately
func (p *InfoPanel) Hide() {
	p.shown = false
}

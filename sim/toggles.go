package sim

// Toggles are the user-controlled simulation switches
type Toggles struct {
	Rotation          bool `json:"rotation"`
	RealisticLighting bool `json:"realistic_lighting"`
	OrbitsVisible     bool `json:"orbits_visible"`
	LabelsVisible     bool `json:"labels_visible"`
}

// DefaultToggles starts with everything on
func DefaultToggles() Toggles {
	return Toggles{
		Rotation:          true,
		RealisticLighting: true,
		OrbitsVisible:     true,
		LabelsVisible:     true,
	}
}

// label returns the affordance text for cmd given the current state
// Each label names the action a press would perform next
func (t Toggles) label(cmd Command) string {
	switch cmd {
	case ToggleOrbits:
		if t.OrbitsVisible {
			return "Hide Orbits"
		}
		return "Show Orbits"
	case ToggleLabels:
		if t.LabelsVisible {
			return "Hide Labels"
		}
		return "Show Labels"
	case ToggleRotation:
		if t.Rotation {
			return "Pause Rotation"
		}
		return "Resume Rotation"
	case ToggleLighting:
		if t.RealisticLighting {
			return "Enhanced Lighting"
		}
		return "Realistic Lighting"
	case ResetView:
		return "Reset View"
	case FocusNext:
		return "Next Planet"
	case FocusPrev:
		return "Previous Planet"
	case ZoomIn:
		return "Zoom In"
	case ZoomOut:
		return "Zoom Out"
	case Quit:
		return "Quit"
	}
	return ""
}

package sim

// Command is a discrete user action
type Command uint8

const (
	CmdNone Command = iota
	ToggleOrbits
	ToggleLabels
	ToggleRotation
	ToggleLighting
	ResetView
	FocusNext
	FocusPrev
	ZoomIn
	ZoomOut
	Quit

	commandCount
)

// commandNames are the action names used by key bindings and metrics labels
var commandNames = [commandCount]string{
	CmdNone:        "none",
	ToggleOrbits:   "toggle_orbits",
	ToggleLabels:   "toggle_labels",
	ToggleRotation: "toggle_rotation",
	ToggleLighting: "toggle_lighting",
	ResetView:      "reset_view",
	FocusNext:      "focus_next",
	FocusPrev:      "focus_prev",
	ZoomIn:         "zoom_in",
	ZoomOut:        "zoom_out",
	Quit:           "quit",
}

func (c Command) String() string {
	if c >= commandCount {
		return "unknown"
	}
	return commandNames[c]
}

// ParseCommand resolves an action name
func ParseCommand(name string) (Command, bool) {
	for i := Command(1); i < commandCount; i++ {
		if commandNames[i] == name {
			return i, true
		}
	}
	return CmdNone, false
}

// Commands lists every bindable command in display order
func Commands() []Command {
	out := make([]Command, 0, commandCount-1)
	for i := Command(1); i < commandCount; i++ {
		out = append(out, i)
	}
	return out
}

// Affordance is one entry of the control bar
type Affordance struct {
	Command Command
	Label   string
}

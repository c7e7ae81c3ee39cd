// Package input translates terminal events into simulation commands and pointer gestures.
package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cosmos/sim"
)

var (
	// ErrUnknownAction is returned for action names that do not map to a command
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidKey is returned for key names that are neither a single character nor a known alias
	ErrInvalidKey = errors.New("invalid key")
)

// unbindAction removes a default binding
const unbindAction = "none"

// Key identifies a terminal key, Code is tcell.KeyRune for printable keys
type Key struct {
	Code tcell.Key
	Rune rune
}

// RuneKey returns the Key for a printable character
func RuneKey(r rune) Key {
	return Key{Code: tcell.KeyRune, Rune: r}
}

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Named special keys
var specialKeys = map[string]tcell.Key{
	"tab":     tcell.KeyTab,
	"backtab": tcell.KeyBacktab,
	"esc":     tcell.KeyEscape,
	"enter":   tcell.KeyEnter,
	"up":      tcell.KeyUp,
	"down":    tcell.KeyDown,
	"left":    tcell.KeyLeft,
	"right":   tcell.KeyRight,
	"pgup":    tcell.KeyPgUp,
	"pgdn":    tcell.KeyPgDn,
	"home":    tcell.KeyHome,
	"ctrl+c":  tcell.KeyCtrlC,
}

// String returns the binding name of k
func (k Key) String() string {
	if k.Code == tcell.KeyRune {
		for name, r := range runeAliases {
			if r == k.Rune {
				return name
			}
		}
		return string(k.Rune)
	}
	for name, code := range specialKeys {
		if code == k.Code {
			return name
		}
	}
	return fmt.Sprintf("key(%d)", k.Code)
}

// ParseKey resolves a binding name: a single character, a rune alias or a special key name
func ParseKey(s string) (Key, error) {
	lower := strings.ToLower(s)
	if r, ok := runeAliases[lower]; ok {
		return RuneKey(r), nil
	}
	if code, ok := specialKeys[lower]; ok {
		return Key{Code: code}, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return RuneKey(runes[0]), nil
	}
	return Key{}, fmt.Errorf("%w: %q (expected single character or key name)", ErrInvalidKey, s)
}

// resolveAction converts an action name to a command
func resolveAction(name string) (sim.Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == unbindAction {
		return sim.CmdNone, nil
	}
	cmd, ok := sim.ParseCommand(name)
	if !ok {
		return sim.CmdNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return cmd, nil
}

// Keymap binds keys to commands
type Keymap map[Key]sim.Command

// DefaultKeymap returns the stock bindings
func DefaultKeymap() Keymap {
	return Keymap{
		RuneKey('o'):                sim.ToggleOrbits,
		RuneKey('l'):                sim.ToggleLabels,
		RuneKey(' '):                sim.ToggleRotation,
		RuneKey('p'):                sim.ToggleRotation,
		RuneKey('g'):                sim.ToggleLighting,
		RuneKey('r'):                sim.ResetView,
		Key{Code: tcell.KeyTab}:     sim.FocusNext,
		Key{Code: tcell.KeyBacktab}: sim.FocusPrev,
		RuneKey('n'):                sim.FocusNext,
		RuneKey('N'):                sim.FocusPrev,
		RuneKey('+'):                sim.ZoomIn,
		RuneKey('='):                sim.ZoomIn,
		RuneKey('-'):                sim.ZoomOut,
		Key{Code: tcell.KeyUp}:      sim.ZoomIn,
		Key{Code: tcell.KeyDown}:    sim.ZoomOut,
		RuneKey('q'):                sim.Quit,
		Key{Code: tcell.KeyEscape}:  sim.Quit,
		Key{Code: tcell.KeyCtrlC}:   sim.Quit,
	}
}

// ParseKeymap applies key name → action name overrides on top of the defaults
// The action "none" removes a default binding
func ParseKeymap(bindings map[string]string) (Keymap, error) {
	km := DefaultKeymap()
	for keyName, action := range bindings {
		k, err := ParseKey(keyName)
		if err != nil {
			return nil, fmt.Errorf("[keys] %w", err)
		}
		cmd, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyName, err)
		}
		if cmd == sim.CmdNone {
			delete(km, k)
			continue
		}
		km[k] = cmd
	}
	return km, nil
}

// Lookup returns the command bound to a key event
func (km Keymap) Lookup(ev *tcell.EventKey) (sim.Command, bool) {
	k := Key{Code: ev.Key()}
	if ev.Key() == tcell.KeyRune {
		k.Rune = ev.Rune()
	}
	cmd, ok := km[k]
	return cmd, ok
}

// Hint returns the shortest key name bound to cmd for display, empty when unbound
func (km Keymap) Hint(cmd sim.Command) string {
	names := make([]string, 0, 2)
	for k, c := range km {
		if c == cmd {
			names = append(names, k.String())
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) < len(names[j])
		}
		return names[i] < names[j]
	})
	return names[0]
}

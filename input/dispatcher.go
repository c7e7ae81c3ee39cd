package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cosmos/sim"
)

// statusTTL is how long a command label stays on the status line
const statusTTL = 2 * time.Second

// Target is the simulation surface driven by terminal input
type Target interface {
	PointerTarget
	Execute(cmd sim.Command) string
	Resize(width, height int) bool
}

// Dispatcher routes tcell events to a Target
type Dispatcher struct {
	keymap  Keymap
	target  Target
	pointer *Pointer
	hudRows int

	mu         sync.Mutex
	status     string
	statusTime time.Time
}

// NewDispatcher creates a dispatcher; hudRows terminal rows at the bottom are excluded from the raster
func NewDispatcher(km Keymap, target Target, cfg PointerConfig, hudRows int) *Dispatcher {
	if km == nil {
		km = DefaultKeymap()
	}
	return &Dispatcher{
		keymap:  km,
		target:  target,
		pointer: NewPointer(target, cfg, 0),
		hudRows: hudRows,
	}
}

// Keymap returns the active bindings
func (d *Dispatcher) Keymap() Keymap {
	return d.keymap
}

// Pointer returns the mouse translator
func (d *Dispatcher) Pointer() *Pointer {
	return d.pointer
}

// Handle processes one event and reports whether the application should quit
func (d *Dispatcher) Handle(ev tcell.Event, now time.Time) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		cmd, ok := d.keymap.Lookup(e)
		if !ok {
			return false
		}
		if label := d.target.Execute(cmd); label != "" {
			d.setStatus(label, now)
		}
		return cmd == sim.Quit

	case *tcell.EventMouse:
		d.pointer.Handle(e, now)

	case *tcell.EventResize:
		cols, rows := e.Size()
		d.Resize(cols, rows)
	}
	return false
}

// Resize applies a terminal size in cells
func (d *Dispatcher) Resize(cols, rows int) {
	viewRows := rows - d.hudRows
	if viewRows < 1 {
		viewRows = 1
	}
	d.pointer.SetViewRows(viewRows)
	d.target.Resize(cols, viewRows*2)
}

func (d *Dispatcher) setStatus(s string, now time.Time) {
	d.mu.Lock()
	d.status = s
	d.statusTime = now
	d.mu.Unlock()
}

// Status returns the last command label while it is fresh
func (d *Dispatcher) Status(now time.Time) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.status == "" || now.Sub(d.statusTime) > statusTTL {
		return ""
	}
	return d.status
}

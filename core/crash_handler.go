// Package core holds process-wide crash handling shared by every goroutine.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Terminal escape sequences written when no restore hook is registered
var emergencyReset = []string{
	"\x1b[?1003l", // mouse motion off
	"\x1b[?1002l", // mouse drag off
	"\x1b[?1000l", // mouse click off
	"\x1b[?1006l", // SGR mouse off
	"\x1b[?25h",   // cursor show
	"\x1b[?1049l", // alt screen exit
	"\x1b[0m",
	"\x1b[?7h", // autowrap on
}

var (
	crashMu   sync.Mutex
	restore   func()
	crashOut  io.Writer = os.Stderr
	resetOut  io.Writer = os.Stdout
	crashExit           = os.Exit
	crashOnce sync.Once
)

// SetRestoreHook registers the terminal cleanup run before the crash report
// Pass nil after the screen is finalized to fall back to raw escape sequences
func SetRestoreHook(fn func()) {
	crashMu.Lock()
	restore = fn
	crashMu.Unlock()
}

// EmergencyReset writes sequences that leave the terminal usable
func EmergencyReset(w io.Writer) {
	for _, seq := range emergencyReset {
		io.WriteString(w, seq)
	}
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

// HandleCrash restores the terminal, prints the panic and stack trace, then exits 1
// Concurrent crashes report once
func HandleCrash(r any) {
	if r == nil {
		return
	}
	crashOnce.Do(func() {
		crashMu.Lock()
		fn := restore
		crashMu.Unlock()

		if fn != nil {
			func() {
				defer func() { recover() }()
				fn()
			}()
		} else {
			EmergencyReset(resetOut)
		}

		fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())
		if f, ok := crashOut.(*os.File); ok {
			f.Sync()
		}
	})
	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

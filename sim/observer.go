package sim

import "time"

// Observer receives simulation events, implementations must not block
type Observer interface {
	OnCommand(cmd Command)
	OnFocus(name string)
	OnFrame(interval time.Duration)
}

// NopObserver ignores every event, embed it to implement a subset
type NopObserver struct{}

func (NopObserver) OnCommand(Command)     {}
func (NopObserver) OnFocus(string)        {}
func (NopObserver) OnFrame(time.Duration) {}

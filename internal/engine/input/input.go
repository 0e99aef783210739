// Package input turns SDL2 events into viewer actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies the actions the viewer reacts to.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventTogglePause
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Width  int
	Height int
}

// Bindings maps key scancodes to viewer actions.
type Bindings map[sdl.Scancode]EventType

// DefaultBindings quits on Escape and holds the clock on Space.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.SCANCODE_ESCAPE: EventQuit,
		sdl.SCANCODE_SPACE:  EventTogglePause,
	}
}

// Input collects the actions raised since the last Update.
type Input struct {
	bindings Bindings
	events   []Event
}

// New creates an input handler. A nil bindings map uses DefaultBindings.
func New(bindings Bindings) *Input {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Input{
		bindings: bindings,
		events:   make([]Event, 0, 16),
	}
}

// Update polls SDL events. It returns true once the viewer should quit,
// either from the window manager or from a bound quit key.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			// Held keys repeat; a pause toggle must fire once per press.
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			action, ok := i.bindings[e.Keysym.Scancode]
			if !ok {
				continue
			}
			i.events = append(i.events, Event{Type: action})
			if action == EventQuit {
				return true
			}
		}
	}

	return false
}

// Events returns the actions from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

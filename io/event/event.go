// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the core event vocabulary: the Event
// interface implemented by all event types, and the events concerning
// focus, timers and popups. Pointer events live in package pointer and
// keyboard events in package key.
package event

import (
	"github.com/lattice-ui/lattice/io/key"
	"github.com/lattice-ui/lattice/io/system"
)

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// FocusSource describes what triggered a focus change.
type FocusSource uint8

const (
	// SourceSynthetic covers programmatic focus changes.
	SourceSynthetic FocusSource = iota
	// SourceKey covers focus changes from keyboard navigation.
	SourceKey
	// SourcePointer covers focus changes from mouse or touch.
	SourcePointer
)

func (s FocusSource) String() string {
	switch s {
	case SourceSynthetic:
		return "Synthetic"
	case SourceKey:
		return "Key"
	case SourcePointer:
		return "Pointer"
	default:
		panic("unexpected FocusSource value")
	}
}

// NavFocus notifies a widget that it gained navigation focus.
type NavFocus struct {
	Source FocusSource
}

// LostNavFocus notifies a widget that it lost navigation focus.
type LostNavFocus struct{}

// SelFocus notifies a widget that it gained selection focus. A widget
// keeps its selection until LostSelFocus.
type SelFocus struct {
	Source FocusSource
}

// LostSelFocus notifies a widget that it lost selection focus. The
// widget should clear any visible selection.
type LostSelFocus struct{}

// KeyFocus notifies a widget that it gained keyboard input focus.
type KeyFocus struct{}

// LostKeyFocus notifies a widget that it lost keyboard input focus.
type LostKeyFocus struct{}

// ImeFocus instructs the widget to enable input method support. It is
// sent after KeyFocus when an input method was requested, and again
// when the input method configuration changes.
type ImeFocus struct{}

// LostImeFocus instructs the widget to disable input method support.
type LostImeFocus struct{}

// Hover notifies a widget that the mouse entered or left its area.
// Requires hover tracking to be enabled for the widget.
type Hover struct {
	Entered bool
}

// Timer is sent when a timer requested with the same handle expires.
type Timer struct {
	Handle TimerHandle
}

// PopupClosed is sent to a popup's parent when the popup closes.
type PopupClosed struct {
	Window system.WindowID
}

// Command carries a shortcut or synthetic command to a widget with
// focus. Code is the physical key which produced the command, if any;
// it allows binding a visual state change to the key's release.
type Command struct {
	Name key.Command
	Code key.Code
}

// TimerHandle identifies a timer within one widget. Handles carry a
// small non-negative payload chosen by the widget and a merge policy
// applied when a timer is re-requested before expiry: either the
// earliest or the latest deadline wins.
type TimerHandle struct {
	h int64
}

// NewTimer constructs a handle whose merge policy keeps the earliest
// deadline. The payload must be non-negative.
func NewTimer(payload int64) TimerHandle {
	if payload < 0 {
		panic("event: negative timer payload")
	}
	return TimerHandle{h: payload}
}

// NewTimerLatest constructs a handle whose merge policy keeps the
// latest deadline. The payload must be non-negative.
//
// Handles constructed by NewTimer and NewTimerLatest with equal
// payloads are distinct.
func NewTimerLatest(payload int64) TimerHandle {
	if payload < 0 {
		panic("event: negative timer payload")
	}
	return TimerHandle{h: -payload - 1}
}

// Payload returns the handle's payload value.
func (h TimerHandle) Payload() int64 {
	if h.h < 0 {
		return -h.h - 1
	}
	return h.h
}

// EarliestWins reports the handle's merge policy.
func (h TimerHandle) EarliestWins() bool {
	return h.h >= 0
}

func (NavFocus) ImplementsEvent()     {}
func (LostNavFocus) ImplementsEvent() {}
func (SelFocus) ImplementsEvent()     {}
func (LostSelFocus) ImplementsEvent() {}
func (KeyFocus) ImplementsEvent()     {}
func (LostKeyFocus) ImplementsEvent() {}
func (ImeFocus) ImplementsEvent()     {}
func (LostImeFocus) ImplementsEvent() {}
func (Hover) ImplementsEvent()        {}
func (Timer) ImplementsEvent()        {}
func (PopupClosed) ImplementsEvent()  {}
func (Command) ImplementsEvent()      {}

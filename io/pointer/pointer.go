// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements mouse and touch events.
package pointer

import (
	"strings"

	"github.com/lattice-ui/lattice/f32"
)

// PointerID identifies one pointer: always zero for the mouse, a
// platform-assigned value for each touch.
type PointerID uint64

// Press describes one pointer press: its source, position and, for
// mouse presses, the button held.
type Press struct {
	// Source is the input device.
	Source Source
	// PointerID identifies the pressed pointer.
	PointerID PointerID
	// Position of the pointer, in window coordinates.
	Position f32.Point
	// Button held, for mouse presses.
	Button Buttons
	// Repetitions counts successive presses of the same button on the
	// same target within the double-click interval: 1 for a single
	// click, 2 for a double click.
	Repetitions int
}

// IsTouch reports whether the press comes from a touchscreen.
func (p Press) IsTouch() bool {
	return p.Source == SourceTouch
}

// PressStart is sent to the widget under a new press, or to the owner
// of a grab on that pointer.
type PressStart struct {
	Press
}

// PressMove reports movement of a grabbed pointer. Sent only to the
// grab owner, for click and drag grabs.
type PressMove struct {
	Press
	// Delta is the movement since the previous report.
	Delta f32.Point
}

// PressEnd reports release of a grabbed pointer.
type PressEnd struct {
	Press
	// Success is false when the grab was cancelled: a click grab
	// released outside the start widget, a second mouse button pressed
	// during a grab, or a cancelled touch.
	Success bool
}

// CursorMove reports ungrabbed mouse movement over a widget which
// enabled cursor tracking.
type CursorMove struct {
	Press
}

// Pan reports the aggregate transform of a pan grab over one frame.
//
// The full transform of a point x is Alpha*x + Delta, with Alpha and x
// as complex numbers (see f32.Point.Complex). Alpha encodes rotation
// and scaling; modes other than full panning constrain it.
type Pan struct {
	Alpha complex64
	Delta f32.Point
}

// Scroll reports scroll input, from a mouse wheel or a touchpad.
type Scroll struct {
	Delta ScrollDelta
}

// ScrollDelta is a scroll distance, either in lines or in pixels
// depending on the input device.
type ScrollDelta struct {
	// Lines is set for line-based devices such as mouse wheels.
	Lines f32.Point
	// Pixels is set for pixel-based devices such as touchpads.
	Pixels f32.Point
}

// IsPixels reports whether the delta is pixel-based.
func (d ScrollDelta) IsPixels() bool {
	return d.Lines == (f32.Point{})
}

// GrabMode controls the events a press grab delivers.
type GrabMode uint8

const (
	// GrabClick delivers PressMove target updates and PressEnd.
	GrabClick GrabMode = iota
	// GrabDrag delivers PressMove with movement deltas and PressEnd.
	GrabDrag
	// PanTranslate delivers Pan events without scaling or rotation.
	PanTranslate
	// PanRotate delivers Pan events with rotation.
	PanRotate
	// PanScale delivers Pan events with scaling.
	PanScale
	// PanFull delivers Pan events with scaling and rotation.
	PanFull
)

// IsPan reports whether the mode delivers Pan events.
func (m GrabMode) IsPan() bool {
	return m >= PanTranslate
}

func (m GrabMode) String() string {
	switch m {
	case GrabClick:
		return "GrabClick"
	case GrabDrag:
		return "GrabDrag"
	case PanTranslate:
		return "PanTranslate"
	case PanRotate:
		return "PanRotate"
	case PanScale:
		return "PanScale"
	case PanFull:
		return "PanFull"
	default:
		panic("unexpected GrabMode value")
	}
}

// Source of a pointer event.
type Source uint8

const (
	// SourceMouse marks mouse generated events.
	SourceMouse Source = iota
	// SourceTouch marks touchscreen generated events.
	SourceTouch
)

// Buttons is a set of mouse buttons.
type Buttons uint8

const (
	// ButtonPrimary is the primary button, usually the left button for
	// a right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right
	// button for a right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle
	// button.
	ButtonTertiary
)

// Contain reports whether b contains all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}

func (s Source) String() string {
	switch s {
	case SourceMouse:
		return "Mouse"
	case SourceTouch:
		return "Touch"
	default:
		panic("unexpected Source value")
	}
}

// Cursor is the appearance of the mouse cursor.
type Cursor uint8

const (
	// CursorDefault is the default cursor.
	CursorDefault Cursor = iota
	// CursorNone hides the cursor.
	CursorNone
	// CursorText is for selecting and inserting text.
	CursorText
	// CursorPointer is for a link or button.
	CursorPointer
	// CursorCrosshair is for precise location.
	CursorCrosshair
	// CursorAllScroll is for indicating scrolling in all directions.
	CursorAllScroll
	// CursorGrab is for content that can be grabbed (dragged to be
	// moved).
	CursorGrab
	// CursorGrabbing is for content that is being grabbed.
	CursorGrabbing
	// CursorNotAllowed is shown when the requested action cannot be
	// carried out.
	CursorNotAllowed
	// CursorWait is shown when the program is busy.
	CursorWait
	// CursorColResize is for vertical resize.
	CursorColResize
	// CursorRowResize is for horizontal resize.
	CursorRowResize
	// CursorNSResize is for top-bottom resize.
	CursorNSResize
	// CursorEWResize is for left-right resize.
	CursorEWResize
	// CursorNESWResize is for top-right to bottom-left diagonal
	// resize.
	CursorNESWResize
	// CursorNWSEResize is for top-left to bottom-right diagonal
	// resize.
	CursorNWSEResize
)

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "Default"
	case CursorNone:
		return "None"
	case CursorText:
		return "Text"
	case CursorPointer:
		return "Pointer"
	case CursorCrosshair:
		return "Crosshair"
	case CursorAllScroll:
		return "AllScroll"
	case CursorGrab:
		return "Grab"
	case CursorGrabbing:
		return "Grabbing"
	case CursorNotAllowed:
		return "NotAllowed"
	case CursorWait:
		return "Wait"
	case CursorColResize:
		return "ColResize"
	case CursorRowResize:
		return "RowResize"
	case CursorNSResize:
		return "NSResize"
	case CursorEWResize:
		return "EWResize"
	case CursorNESWResize:
		return "NESWResize"
	case CursorNWSEResize:
		return "NWSEResize"
	default:
		panic("unexpected Cursor value")
	}
}

func (PressStart) ImplementsEvent() {}
func (PressMove) ImplementsEvent()  {}
func (PressEnd) ImplementsEvent()   {}
func (CursorMove) ImplementsEvent() {}
func (Pan) ImplementsEvent()        {}
func (Scroll) ImplementsEvent()     {}

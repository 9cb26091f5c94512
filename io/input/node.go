// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"github.com/lattice-ui/lattice/f32"
	"github.com/lattice-ui/lattice/id"
	"github.com/lattice-ui/lattice/io/event"
	"github.com/lattice-ui/lattice/io/key"
	"github.com/lattice-ui/lattice/io/message"
	"github.com/lattice-ui/lattice/io/pointer"
	"github.com/lattice-ui/lattice/io/system"
)

// Node is one widget in the retained tree.
//
// Rects and event positions are in window coordinates, except that a
// scrolling widget offsets its children by Translation; the router
// applies the offset to pointer positions during descent.
type Node interface {
	// ID is the widget's assigned identifier. Valid after configure.
	ID() id.ID

	// Rect is the widget's assigned area.
	Rect() f32.Rectangle

	// Translation is the offset applied to children, non-zero for
	// scrolled content.
	Translation() f32.Point

	// NumChildren is the number of child nodes.
	NumChildren() int

	// Child returns the child with the given ID path component, or
	// nil when out of range or detached.
	Child(index int) Node

	// Probe returns the deepest target under pos. It is only called
	// when pos is within Rect.
	Probe(pos f32.Point) id.ID

	// Navigable reports whether the widget accepts navigation focus.
	Navigable() bool

	// StealEvent is offered each event routed through the widget to
	// one of its descendants, before descent continues. Returning
	// true stops the descent; a stealer must not otherwise affect the
	// Context when it returns false.
	StealEvent(cx *Context, target id.ID, ev event.Event) bool

	// HandleEvent handles an event addressed to this widget,
	// returning true when the event was used.
	HandleEvent(cx *Context, ev event.Event) bool

	// HandleUnused is called, child-first, on ancestors of a target
	// which left an event unused.
	HandleUnused(cx *Context, ev event.Event) bool

	// HandleMessages is called, nearest ancestor first, after a
	// descendant pushed a message. Use Context.LastChild to identify
	// the subtree it came from.
	HandleMessages(cx *Context)

	// HandleScroll is called on ancestors after a descendant set a
	// scroll action.
	HandleScroll(cx *Context, scroll Scroll)

	// Update refreshes the widget from application data. The router
	// calls it over a subtree when an update is requested.
	Update(cx *Context)
}

// Window is the shell surface owning one widget tree. It provides the
// services widgets cannot: creating popup surfaces and forwarding
// state to the platform.
type Window interface {
	// ID identifies the window.
	ID() system.WindowID

	// AddPopup creates a surface for a popup and returns its
	// identifier.
	AddPopup(desc PopupDescriptor) system.WindowID

	// RemovePopup destroys a popup surface.
	RemovePopup(winID system.WindowID)

	// SetCursorIcon updates the mouse cursor.
	SetCursorIcon(icon pointer.Cursor)

	// SetImeCursorArea tells the input method where the text cursor
	// is, in window coordinates.
	SetImeCursorArea(rect f32.Rectangle)

	// EnableIme turns platform input method support on or off.
	EnableIme(enable bool, purpose key.ImePurpose)

	// Wake schedules an event-loop pass from another goroutine.
	Wake()
}

// AppData is top-level application state: the handler of last resort
// for messages no widget consumed.
type AppData interface {
	HandleMessages(messages *message.Stack) system.Action
}

// EmptyAppData implements AppData without handling anything.
type EmptyAppData struct{}

func (EmptyAppData) HandleMessages(*message.Stack) system.Action { return 0 }

// Scroll is the side channel for scroll requests, passed to ancestors
// of the widget that set it.
type Scroll struct {
	Kind ScrollKind
	// Offset is the scroll delta, for ScrollOffset.
	Offset f32.Point
	// Rect to make visible, for ScrollRect. Window coordinates.
	Rect f32.Rectangle
	// Kinetic carries residual velocity, for ScrollKinetic.
	Kinetic KineticStart
}

// ScrollKind describes a scroll request.
type ScrollKind uint8

const (
	// ScrollNone: no scroll action.
	ScrollNone ScrollKind = iota
	// ScrollScrolled: a descendant has scrolled; ancestors should not.
	ScrollScrolled
	// ScrollOffset requests scrolling by a delta.
	ScrollOffset
	// ScrollRect requests making a rect visible.
	ScrollRect
	// ScrollKinetic hands residual kinetic velocity to an ancestor.
	ScrollKinetic
)

// KineticStart carries velocity and sub-pixel remainder from one
// kinetic scroll model to another, when scrolling reaches the limit of
// an inner scroll region and an outer one takes over.
type KineticStart struct {
	Vel  f32.Point
	Rest f32.Point
}

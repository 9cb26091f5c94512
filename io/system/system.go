// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains types exchanged with the top-level program:
// window identifiers and the actions a window requires after event
// processing.
package system

import "strings"

// WindowID identifies a window, including popup surfaces.
//
// Identifiers are allocated by the shell; zero is never a valid window.
type WindowID uint32

// Action is a bitset of operations a window requires after event
// handling. Actions accumulate over an event batch and are taken by
// the shell in one step.
type Action uint32

const (
	// ActionRedraw requires a redraw of the window contents.
	ActionRedraw Action = 1 << iota
	// ActionRegionMoved indicates that a widget moved without resize,
	// for example due to scrolling. Implies ActionRedraw once taken.
	ActionRegionMoved
	// ActionSetRect requires repositioning of a widget subtree.
	ActionSetRect
	// ActionResize requires a new size allocation pass.
	ActionResize
	// ActionScrollbars requires scrollbar existence to be re-evaluated.
	ActionScrollbars
	// ActionUpdate requires a data update pass over the widget tree.
	ActionUpdate
	// ActionEventConfig indicates that event configuration changed.
	ActionEventConfig
	// ActionReconfigure requires a full reconfigure of the window,
	// re-assigning widget identifiers.
	ActionReconfigure
	// ActionClose requests closure of the window.
	ActionClose
	// ActionCloseAll requests closure of all windows, ending the
	// application.
	ActionCloseAll
)

// Contains reports whether all bits of b are set in a.
func (a Action) Contains(b Action) bool {
	return a&b == b
}

func (a Action) String() string {
	if a == 0 {
		return "Action()"
	}
	var b strings.Builder
	b.WriteString("Action(")
	first := true
	for bit := Action(1); bit != 0 && bit <= a; bit <<= 1 {
		if a&bit == 0 {
			continue
		}
		if !first {
			b.WriteByte('|')
		}
		first = false
		switch bit {
		case ActionRedraw:
			b.WriteString("Redraw")
		case ActionRegionMoved:
			b.WriteString("RegionMoved")
		case ActionSetRect:
			b.WriteString("SetRect")
		case ActionResize:
			b.WriteString("Resize")
		case ActionScrollbars:
			b.WriteString("Scrollbars")
		case ActionUpdate:
			b.WriteString("Update")
		case ActionEventConfig:
			b.WriteString("EventConfig")
		case ActionReconfigure:
			b.WriteString("Reconfigure")
		case ActionClose:
			b.WriteString("Close")
		case ActionCloseAll:
			b.WriteString("CloseAll")
		default:
			panic("unexpected Action bit")
		}
	}
	b.WriteByte(')')
	return b.String()
}

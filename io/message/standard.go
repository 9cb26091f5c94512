// SPDX-License-Identifier: Unlicense OR MIT

package message

import (
	"github.com/lattice-ui/lattice/f32"
	"github.com/lattice-ui/lattice/io/key"
)

// Standard messages understood by common widgets. They may be pushed
// by children or sent to widgets to trigger an action.

// Activate synthetically triggers a "click" action, for example to
// press a button or toggle a check box.
//
// Code is the key press which caused the message, if any. It allows a
// visual state change to be bound to the key's release.
type Activate struct {
	Code key.Code
}

// IncrementStep increments a value by one step.
type IncrementStep struct{}

// DecrementStep decrements a value by one step.
type DecrementStep struct{}

// SetValueF64 sets a numeric input value.
type SetValueF64 struct {
	Value float64
}

// SetValueText sets a text input value.
type SetValueText struct {
	Text string
}

// ReplaceSelectedText acts like typing or pasting: replace the
// selection or insert at the cursor position.
type ReplaceSelectedText struct {
	Text string
}

// SetIndex sets an index, for example the active page of a tab stack.
type SetIndex struct {
	Index int
}

// Select requests selection of the sender by a parent container
// supporting selection. The recipient uses the traversal's last-child
// record to determine the selection target.
type Select struct{}

// SetScrollOffset sets the scroll offset of a scrollable region.
type SetScrollOffset struct {
	Offset f32.Point
}

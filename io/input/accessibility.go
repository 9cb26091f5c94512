// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"github.com/lattice-ui/lattice/f32"
	"github.com/lattice-ui/lattice/id"
	"github.com/lattice-ui/lattice/io/event"
	"github.com/lattice-ui/lattice/io/key"
	"github.com/lattice-ui/lattice/io/message"
	"github.com/lattice-ui/lattice/io/pointer"
)

// AccessAction is an action requested by an assistive technology.
type AccessAction uint8

const (
	// AccessFocus moves navigation focus to the widget.
	AccessFocus AccessAction = iota
	// AccessBlur removes navigation focus.
	AccessBlur
	// AccessActivate triggers the widget's primary action.
	AccessActivate
	// AccessIncrement increments the widget's value by one step.
	AccessIncrement
	// AccessDecrement decrements the widget's value by one step.
	AccessDecrement
	// AccessSetValue sets the widget's value. Data is float64 or
	// string.
	AccessSetValue
	// AccessReplaceSelectedText replaces the text selection. Data is
	// string.
	AccessReplaceSelectedText
	// AccessScrollUp and the other directions scroll the widget's
	// region by one line.
	AccessScrollUp
	AccessScrollDown
	AccessScrollLeft
	AccessScrollRight
	// AccessScrollIntoView scrolls ancestors so the widget becomes
	// visible.
	AccessScrollIntoView
	// AccessSetScrollOffset sets a scroll region's offset. Data is
	// f32.Point.
	AccessSetScrollOffset
)

// ActionRequest is an accessibility action targeting a widget.
type ActionRequest struct {
	Target id.ID
	Action AccessAction
	// Data carries the action's parameter, when it has one.
	Data any
}

// HandleAccessRequest translates an accessibility request into the
// equivalent event or message.
func (cx *Context) HandleAccessRequest(req ActionRequest) {
	target := req.Target
	if !target.Valid() {
		return
	}
	switch req.Action {
	case AccessFocus:
		if focus := cx.navigableAncestor(target); focus.Valid() {
			cx.SetNavFocus(focus, event.SourceSynthetic)
		}
	case AccessBlur:
		if cx.navFocus == target {
			cx.ClearNavFocus()
		}
	case AccessActivate:
		cx.sendEvent(target, event.Command{Name: key.CommandActivate})
	case AccessIncrement:
		cx.Replay(target, message.IncrementStep{})
	case AccessDecrement:
		cx.Replay(target, message.DecrementStep{})
	case AccessSetValue:
		switch value := req.Data.(type) {
		case float64:
			cx.Replay(target, message.SetValueF64{Value: value})
		case string:
			cx.Replay(target, message.SetValueText{Text: value})
		}
	case AccessReplaceSelectedText:
		if text, ok := req.Data.(string); ok {
			cx.Replay(target, message.ReplaceSelectedText{Text: text})
		}
	case AccessScrollUp:
		cx.sendScrollLines(target, f32.Point{Y: 1})
	case AccessScrollDown:
		cx.sendScrollLines(target, f32.Point{Y: -1})
	case AccessScrollLeft:
		cx.sendScrollLines(target, f32.Point{X: 1})
	case AccessScrollRight:
		cx.sendScrollLines(target, f32.Point{X: -1})
	case AccessScrollIntoView:
		cx.ScrollIntoView(target)
	case AccessSetScrollOffset:
		if offset, ok := req.Data.(f32.Point); ok {
			cx.Replay(target, message.SetScrollOffset{Offset: offset})
		}
	}
}

func (cx *Context) sendScrollLines(target id.ID, lines f32.Point) {
	cx.sendEvent(target, pointer.Scroll{
		Delta: pointer.ScrollDelta{Lines: lines},
	})
}

// ScrollIntoView asks the ancestors of the widget to scroll it into
// the visible region.
func (cx *Context) ScrollIntoView(target id.ID) {
	if !target.Valid() || cx.root == nil {
		return
	}
	cx.scroll = Scroll{}
	cx.scrollRecurse(cx.root, target)
	cx.scroll = Scroll{}
}

func (cx *Context) scrollRecurse(node Node, target id.ID) {
	if node.ID() == target {
		cx.scroll = Scroll{Kind: ScrollRect, Rect: node.Rect()}
		return
	}
	index, ok := target.ChildIndexAfter(node.ID())
	if !ok {
		return
	}
	child := node.Child(int(index))
	if child == nil {
		return
	}
	cx.scrollRecurse(child, target)
	if cx.scroll.Kind == ScrollRect {
		cx.scroll.Rect = cx.scroll.Rect.Add(node.Translation())
		node.HandleScroll(cx, cx.scroll)
	}
}

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

// Context routes events through a widget tree. It wraps the window's
// State for one processing pass, adding the message stack and the
// per-send routing state.
//
// Widgets receive a Context in their handler methods and use it for
// all interaction with the event system.
type Context struct {
	*State

	root     Node
	appData  AppData
	messages message.Stack

	// per-send state
	lastChild int
	scroll    Scroll
}

// NewContext wraps the window state for an event processing pass over
// the tree rooted at root. Unhandled messages are offered to data.
func NewContext(state *State, root Node, data AppData) *Context {
	if data == nil {
		data = EmptyAppData{}
	}
	return &Context{State: state, root: root, appData: data, lastChild: -1}
}

// Push pushes a message to the stack. Messages not popped by an
// ancestor's HandleMessages are offered to the application data and
// then discarded with a warning.
func (cx *Context) Push(value any) {
	cx.messages.Push(message.New(value))
}

// PushErased is a lower level variant of Push.
func (cx *Context) PushErased(msg message.Erased) {
	cx.messages.Push(msg)
}

// Messages returns the message stack, for popping in HandleMessages.
func (cx *Context) Messages() *message.Stack {
	return &cx.messages
}

// LastChild returns the index of the child a message bubbled up from,
// or -1. Valid only within HandleMessages.
func (cx *Context) LastChild() int {
	return cx.lastChild
}

// SetScroll reports scrolling or a focus rect from the widget to its
// ancestors. Call from HandleEvent; ancestors observe the value in
// HandleScroll.
func (cx *Context) SetScroll(scroll Scroll) {
	cx.scroll = scroll
}

// sendEvent routes an event to the target widget: ancestors may steal
// it on the way down, and see unused events, scrolling and messages
// on the way back up. Events whose target lies in a disabled subtree
// are redirected to the disabled ancestor and not handled.
func (cx *Context) sendEvent(target id.ID, ev event.Event) bool {
	if !target.Valid() || cx.root == nil {
		return false
	}
	disabled := false
	if d, ok := cx.disabledAncestor(target); ok {
		target = d
		disabled = true
	}
	cx.messages.SetBase()
	cx.lastChild = -1
	cx.scroll = Scroll{}

	used := cx.sendRecurse(cx.root, target, ev, disabled)

	cx.offerUnhandled()
	cx.lastChild = -1
	cx.scroll = Scroll{}
	return used
}

func (cx *Context) sendRecurse(node Node, target id.ID, ev event.Event, disabled bool) bool {
	nid := node.ID()
	if nid == target {
		if disabled {
			return false
		}
		if _, ok := ev.(event.NavFocus); ok {
			// Scroll the newly focused widget into view.
			cx.scroll = Scroll{Kind: ScrollRect, Rect: node.Rect()}
			node.HandleEvent(cx, ev)
			return true
		}
		return node.HandleEvent(cx, ev)
	}

	if node.StealEvent(cx, target, ev) {
		return true
	}

	index, ok := target.ChildIndexAfter(nid)
	if !ok {
		return false
	}
	child := node.Child(int(index))
	if child == nil {
		return false
	}
	used := cx.sendRecurse(child, target, translateEvent(ev, node.Translation()), disabled)

	if cx.scroll.Kind != ScrollNone {
		if cx.scroll.Kind == ScrollRect {
			cx.scroll.Rect = cx.scroll.Rect.Add(node.Translation())
		}
		node.HandleScroll(cx, cx.scroll)
	}
	if !used {
		used = node.HandleUnused(cx, ev)
	} else if cx.messages.HasAny() {
		cx.lastChild = int(index)
		node.HandleMessages(cx)
	}
	return used
}

// translateEvent maps pointer positions into the coordinate space of
// a node's children.
func translateEvent(ev event.Event, offset f32.Point) event.Event {
	if offset == (f32.Point{}) {
		return ev
	}
	switch e := ev.(type) {
	case pointer.PressStart:
		e.Position = e.Position.Sub(offset)
		return e
	case pointer.PressMove:
		e.Position = e.Position.Sub(offset)
		return e
	case pointer.PressEnd:
		e.Position = e.Position.Sub(offset)
		return e
	case pointer.CursorMove:
		e.Position = e.Position.Sub(offset)
		return e
	}
	return ev
}

// sendMessage delivers a queued message. Command and ScrollDelta
// values become events; anything else is pushed to the stack in the
// target's name and replayed up the tree.
func (cx *Context) sendMessage(target id.ID, msg message.Erased) {
	if cmd, ok := message.Cast[key.Command](msg); ok {
		used := cx.sendEvent(target, event.Command{Name: cmd})
		if !used {
			switch cmd {
			case key.CommandClose:
				cx.PushAction(system.ActionClose)
			case key.CommandExit:
				cx.PushAction(system.ActionCloseAll)
			}
		}
		return
	}
	if delta, ok := message.Cast[pointer.ScrollDelta](msg); ok {
		cx.sendEvent(target, pointer.Scroll{Delta: delta})
		return
	}
	cx.replay(target, msg)
}

// Replay pushes a message as if the target widget had pushed it, and
// offers it to the target and its ancestors.
func (cx *Context) Replay(target id.ID, value any) {
	cx.replay(target, message.New(value))
}

func (cx *Context) replay(target id.ID, msg message.Erased) {
	if !target.Valid() || cx.root == nil {
		return
	}
	cx.messages.SetBase()
	cx.lastChild = -1
	cx.scroll = Scroll{}
	cx.messages.Push(msg)

	cx.replayRecurse(cx.root, target)

	cx.offerUnhandled()
	cx.lastChild = -1
	cx.scroll = Scroll{}
}

func (cx *Context) replayRecurse(node Node, target id.ID) {
	nid := node.ID()
	if nid == target {
		if cx.messages.HasAny() {
			cx.lastChild = -1
			node.HandleMessages(cx)
		}
		return
	}
	index, ok := target.ChildIndexAfter(nid)
	if !ok {
		return
	}
	child := node.Child(int(index))
	if child == nil {
		return
	}
	cx.replayRecurse(child, target)

	if cx.scroll.Kind != ScrollNone {
		if cx.scroll.Kind == ScrollRect {
			cx.scroll.Rect = cx.scroll.Rect.Add(node.Translation())
		}
		node.HandleScroll(cx, cx.scroll)
	}
	if cx.messages.HasAny() {
		cx.lastChild = int(index)
		node.HandleMessages(cx)
	}
}

// offerUnhandled passes messages left on the stack to the application
// data, then discards leftovers with a warning.
func (cx *Context) offerUnhandled() {
	if !cx.messages.HasAny() {
		return
	}
	cx.PushAction(cx.appData.HandleMessages(&cx.messages))
	cx.messages.Drain(nil)
}

// sendPopupFirst offers the event to the parents of open popups,
// topmost first, before the target. A popup whose parent does not use
// the event is closed. Presses within a popup's own subtree are
// delivered normally.
func (cx *Context) sendPopupFirst(target id.ID, ev event.Event) {
	for len(cx.popups) > 0 {
		p := cx.popups[len(cx.popups)-1]
		inPopup := target.Valid() &&
			(p.desc.ID == target || p.desc.ID.IsAncestorOf(target) ||
				p.desc.Parent == target || p.desc.Parent.IsAncestorOf(target))
		if inPopup {
			break
		}
		if cx.sendEvent(p.desc.Parent, ev) {
			return
		}
		cx.closePopupAt(len(cx.popups) - 1)
	}
	cx.sendEvent(target, ev)
}

// probe finds the widget under a window position, topmost popups
// first.
func (cx *Context) probe(pos f32.Point) id.ID {
	if cx.root == nil {
		return id.ID{}
	}
	for i := len(cx.popups) - 1; i >= 0; i-- {
		node := findNode(cx.root, cx.popups[i].desc.ID)
		if node != nil && node.Rect().Contains(pos) {
			return node.Probe(pos)
		}
	}
	if !cx.root.Rect().Contains(pos) {
		return id.ID{}
	}
	return cx.root.Probe(pos)
}

// setHover updates the hover target, notifying the old and new
// widgets.
func (cx *Context) setHover(target id.ID) {
	if cx.hover == target {
		return
	}
	old := cx.hover
	cx.hover = target
	cx.hoverIcon = pointer.CursorDefault
	if old.Valid() {
		cx.sendEvent(old, event.Hover{})
	}
	if target.Valid() {
		cx.sendEvent(target, event.Hover{Entered: true})
	}
	if cx.mouse.grab == nil {
		cx.updateCursorIcon()
	}
}

// FlushPending delivers accumulated per-frame work: popup close
// notifications, grab motion, pan aggregation, update passes, focus
// changes, queued sends and future results. It returns the actions
// the shell should take.
//
// Call once per frame, after delivering the frame's platform events.
func (cx *Context) FlushPending() system.Action {
	for len(cx.popupRemoved) > 0 {
		p := cx.popupRemoved[0]
		cx.popupRemoved = cx.popupRemoved[1:]
		cx.sendEvent(p.parent, event.PopupClosed{Window: p.winID})
	}

	cx.flushMouseGrabMotion()
	cx.flushTouchMotion()
	cx.flushPans()

	if u := cx.pendingUpdate; u != nil {
		cx.pendingUpdate = nil
		cx.updateRecurse(findNode(cx.root, u.target))
	}

	cx.commitNavFocus()
	cx.commitSelFocus()
	if cx.pendingNav.kind != pendingNavNone {
		// Selection focus implies navigation focus.
		cx.commitNavFocus()
	}

	for len(cx.sendQueue) > 0 {
		item := cx.sendQueue[0]
		cx.sendQueue = cx.sendQueue[1:]
		if item.ev != nil {
			if h, ok := item.ev.(event.Hover); ok && !h.Entered {
				cx.hoverIcon = pointer.CursorDefault
			}
			cx.sendEvent(item.target, item.ev)
		} else {
			cx.sendMessage(item.target, item.msg)
		}
	}

	// Future results may queue further work; they run last so that
	// results arriving during the flush wait for the next frame.
	cx.pollFutures()

	if cx.mouse.grab == nil {
		cx.updateCursorIcon()
	}
	return cx.TakeAction()
}

// Update runs an update pass over the whole tree immediately.
func (cx *Context) Update() {
	cx.pendingUpdate = nil
	cx.updateRecurse(cx.root)
}

func (cx *Context) updateRecurse(node Node) {
	if node == nil {
		return
	}
	node.Update(cx)
	for i := 0; i < node.NumChildren(); i++ {
		cx.updateRecurse(node.Child(i))
	}
}

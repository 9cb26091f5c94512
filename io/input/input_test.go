// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"time"

	"github.com/lattice-ui/lattice/f32"
	"github.com/lattice-ui/lattice/id"
	"github.com/lattice-ui/lattice/io/event"
	"github.com/lattice-ui/lattice/io/key"
	"github.com/lattice-ui/lattice/io/message"
	"github.com/lattice-ui/lattice/io/pointer"
	"github.com/lattice-ui/lattice/io/system"
	"github.com/lattice-ui/lattice/unit"
)

type testWindow struct {
	popupsAdded   []PopupDescriptor
	popupsRemoved []system.WindowID
	cursor        pointer.Cursor
	imeEnabled    bool
	imeArea       f32.Rectangle
	wakes         int
	nextPopup     system.WindowID
}

func (w *testWindow) ID() system.WindowID { return 1 }

func (w *testWindow) AddPopup(desc PopupDescriptor) system.WindowID {
	w.popupsAdded = append(w.popupsAdded, desc)
	w.nextPopup++
	return 100 + w.nextPopup
}

func (w *testWindow) RemovePopup(winID system.WindowID) {
	w.popupsRemoved = append(w.popupsRemoved, winID)
}

func (w *testWindow) SetCursorIcon(icon pointer.Cursor) { w.cursor = icon }

func (w *testWindow) SetImeCursorArea(rect f32.Rectangle) { w.imeArea = rect }

func (w *testWindow) EnableIme(enable bool, purpose key.ImePurpose) { w.imeEnabled = enable }

func (w *testWindow) Wake() { w.wakes++ }

// testNode records every call it receives. Handlers can be overridden
// per node.
type testNode struct {
	id       id.ID
	rect     f32.Rectangle
	trans    f32.Point
	nav      bool
	children []*testNode

	events  []event.Event
	unused  []event.Event
	scrolls []Scroll
	handled []message.Erased
	updates int

	useEvents  bool
	useUnused  bool
	onSteal    func(cx *Context, target id.ID, ev event.Event) bool
	onEvent    func(cx *Context, ev event.Event) bool
	onMessages func(cx *Context)
}

func (n *testNode) ID() id.ID              { return n.id }
func (n *testNode) Rect() f32.Rectangle    { return n.rect }
func (n *testNode) Translation() f32.Point { return n.trans }
func (n *testNode) NumChildren() int       { return len(n.children) }
func (n *testNode) Navigable() bool        { return n.nav }

func (n *testNode) Child(index int) Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

func (n *testNode) Probe(pos f32.Point) id.ID {
	p := pos.Sub(n.trans)
	for i := len(n.children) - 1; i >= 0; i-- {
		if c := n.children[i]; c.rect.Contains(p) {
			return c.Probe(p)
		}
	}
	return n.id
}

func (n *testNode) StealEvent(cx *Context, target id.ID, ev event.Event) bool {
	if n.onSteal != nil {
		return n.onSteal(cx, target, ev)
	}
	return false
}

func (n *testNode) HandleEvent(cx *Context, ev event.Event) bool {
	n.events = append(n.events, ev)
	if n.onEvent != nil {
		return n.onEvent(cx, ev)
	}
	return n.useEvents
}

func (n *testNode) HandleUnused(cx *Context, ev event.Event) bool {
	n.unused = append(n.unused, ev)
	return n.useUnused
}

func (n *testNode) HandleMessages(cx *Context) {
	if n.onMessages != nil {
		n.onMessages(cx)
		return
	}
}

func (n *testNode) HandleScroll(cx *Context, scroll Scroll) {
	n.scrolls = append(n.scrolls, scroll)
}

func (n *testNode) Update(cx *Context) { n.updates++ }

// addChild appends a child with the next path index.
func (n *testNode) addChild(rect f32.Rectangle, nav bool) *testNode {
	c := &testNode{
		id:   n.id.MakeChild(uint(len(n.children))),
		rect: rect,
		nav:  nav,
	}
	n.children = append(n.children, c)
	return c
}

// testTree is a small fixture:
//
//	root (0,0)-(100,100)
//	├── left (0,0)-(50,100), navigable
//	│   ├── a (0,0)-(50,50), navigable
//	│   └── b (0,50)-(50,100), navigable
//	└── right (50,0)-(100,100), navigable
type testTree struct {
	window *testWindow
	state  *State
	cx     *Context

	root, left, right, a, b *testNode
}

func newTestTree() *testTree {
	t := &testTree{window: &testWindow{}}
	t.root = &testNode{id: id.Root, rect: f32.Rect(0, 0, 100, 100)}
	t.left = t.root.addChild(f32.Rect(0, 0, 50, 100), true)
	t.right = t.root.addChild(f32.Rect(50, 0, 100, 100), true)
	t.a = t.left.addChild(f32.Rect(0, 0, 50, 50), true)
	t.b = t.left.addChild(f32.Rect(0, 50, 50, 100), true)

	t.state = NewState(t.window, Defaults(), unit.Metric{PxPerDp: 1})
	t.state.now = func() time.Time { return time.Unix(1000, 0) }
	t.cx = NewContext(t.state, t.root, nil)
	return t
}

// advance moves the fixture clock.
func (t *testTree) advance(d time.Duration) {
	now := t.state.now().Add(d)
	t.state.now = func() time.Time { return now }
}

func (t *testTree) flush() system.Action {
	return t.cx.FlushPending()
}

func eventTypes(events []event.Event) []string {
	var types []string
	for _, ev := range events {
		switch ev.(type) {
		case event.NavFocus:
			types = append(types, "NavFocus")
		case event.LostNavFocus:
			types = append(types, "LostNavFocus")
		case event.SelFocus:
			types = append(types, "SelFocus")
		case event.LostSelFocus:
			types = append(types, "LostSelFocus")
		case event.KeyFocus:
			types = append(types, "KeyFocus")
		case event.LostKeyFocus:
			types = append(types, "LostKeyFocus")
		case event.ImeFocus:
			types = append(types, "ImeFocus")
		case event.LostImeFocus:
			types = append(types, "LostImeFocus")
		case event.Hover:
			types = append(types, "Hover")
		case event.Command:
			types = append(types, "Command")
		case event.Timer:
			types = append(types, "Timer")
		case event.PopupClosed:
			types = append(types, "PopupClosed")
		case pointer.PressStart:
			types = append(types, "PressStart")
		case pointer.PressMove:
			types = append(types, "PressMove")
		case pointer.PressEnd:
			types = append(types, "PressEnd")
		case pointer.CursorMove:
			types = append(types, "CursorMove")
		case pointer.Pan:
			types = append(types, "Pan")
		case pointer.Scroll:
			types = append(types, "Scroll")
		case key.Event:
			types = append(types, "Key")
		default:
			types = append(types, "?")
		}
	}
	return types
}

func equalTypes(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"testing"

	"github.com/lattice-ui/lattice/f32"
	"github.com/lattice-ui/lattice/id"
	"github.com/lattice-ui/lattice/io/event"
	"github.com/lattice-ui/lattice/io/key"
	"github.com/lattice-ui/lattice/io/message"
	"github.com/lattice-ui/lattice/io/pointer"
	"github.com/lattice-ui/lattice/io/system"
)

func TestSendEventToTarget(t *testing.T) {
	tt := newTestTree()
	tt.a.useEvents = true

	used := tt.cx.sendEvent(tt.a.id, event.Command{Name: key.CommandActivate})
	if !used {
		t.Error("expected event to be used")
	}
	if len(tt.a.events) != 1 {
		t.Fatalf("expected 1 event at target, got %d", len(tt.a.events))
	}
	if len(tt.left.events) != 0 || len(tt.root.events) != 0 {
		t.Error("ancestors must not receive the event directly")
	}
	if len(tt.left.unused) != 0 || len(tt.root.unused) != 0 {
		t.Error("used events must not reach HandleUnused")
	}
}

func TestUnusedBubbles(t *testing.T) {
	tt := newTestTree()
	tt.left.useUnused = true

	used := tt.cx.sendEvent(tt.a.id, event.Command{Name: key.CommandEnter})
	if !used {
		t.Error("expected use through HandleUnused")
	}
	if len(tt.a.events) != 1 {
		t.Error("target must see the event first")
	}
	if len(tt.left.unused) != 1 {
		t.Error("nearest ancestor must see the unused event")
	}
	if len(tt.root.unused) != 0 {
		t.Error("bubbling must stop at the using ancestor")
	}
}

func TestStealEvent(t *testing.T) {
	tt := newTestTree()
	tt.root.onSteal = func(cx *Context, target id.ID, ev event.Event) bool {
		return target == tt.b.id
	}
	tt.b.useEvents = true

	if !tt.cx.sendEvent(tt.b.id, event.Command{Name: key.CommandEnter}) {
		t.Error("stolen events count as used")
	}
	if len(tt.b.events) != 0 {
		t.Error("the target must not see a stolen event")
	}

	// Other targets are unaffected.
	if !tt.cx.sendEvent(tt.a.id, event.Command{Name: key.CommandEnter}) {
		t.Error("expected delivery to a")
	}
	if len(tt.a.events) != 1 {
		t.Error("expected a to receive its event")
	}
}

func TestMessageBubbles(t *testing.T) {
	tt := newTestTree()
	tt.a.onEvent = func(cx *Context, ev event.Event) bool {
		cx.Push(message.Activate{})
		return true
	}
	var sawChild = -1
	tt.left.onMessages = func(cx *Context) {
		sawChild = cx.LastChild()
		if _, ok := message.Pop[message.Activate](cx.Messages()); !ok {
			t.Error("expected an Activate message")
		}
	}
	rootCalled := false
	tt.root.onMessages = func(cx *Context) { rootCalled = true }

	tt.cx.sendEvent(tt.a.id, event.Command{Name: key.CommandActivate})
	if sawChild != 0 {
		t.Errorf("expected LastChild 0, got %d", sawChild)
	}
	if rootCalled {
		t.Error("a popped message must not reach further ancestors")
	}
}

func TestUnhandledMessageToAppData(t *testing.T) {
	tt := newTestTree()
	var received []message.Erased
	tt.cx.appData = appDataFunc(func(stack *message.Stack) system.Action {
		for {
			msg, ok := stack.PopErased()
			if !ok {
				return system.ActionRedraw
			}
			received = append(received, msg)
		}
	})
	tt.a.onEvent = func(cx *Context, ev event.Event) bool {
		cx.Push(message.IncrementStep{})
		return true
	}

	tt.cx.sendEvent(tt.a.id, event.Command{Name: key.CommandActivate})
	if len(received) != 1 {
		t.Fatalf("expected the message to reach the app data, got %d", len(received))
	}
	if !message.Is[message.IncrementStep](received[0]) {
		t.Errorf("unexpected message %s", received[0])
	}
	if action := tt.state.TakeAction(); !action.Contains(system.ActionRedraw) {
		t.Error("expected the app data's action to be recorded")
	}
}

type appDataFunc func(*message.Stack) system.Action

func (f appDataFunc) HandleMessages(stack *message.Stack) system.Action { return f(stack) }

func TestDisabledRedirect(t *testing.T) {
	tt := newTestTree()
	tt.a.useEvents = true
	tt.state.SetDisabled(tt.left.id, true)

	used := tt.cx.sendEvent(tt.a.id, event.Command{Name: key.CommandActivate})
	if used {
		t.Error("events into a disabled subtree must go unused")
	}
	if len(tt.a.events) != 0 || len(tt.left.events) != 0 {
		t.Error("disabled widgets must not handle events")
	}
	if len(tt.root.unused) != 1 {
		t.Error("ancestors of the disabled subtree still see the unused event")
	}

	tt.state.SetDisabled(tt.left.id, false)
	if !tt.cx.sendEvent(tt.a.id, event.Command{Name: key.CommandActivate}) {
		t.Error("expected delivery after re-enabling")
	}
}

func TestTranslation(t *testing.T) {
	tt := newTestTree()
	tt.left.trans = f32.Point{X: 10, Y: 20}
	tt.a.useEvents = true

	tt.cx.sendEvent(tt.a.id, pointer.PressStart{Press: pointer.Press{
		Source:   pointer.SourceMouse,
		Position: f32.Point{X: 30, Y: 40},
		Button:   pointer.ButtonPrimary,
	}})
	if len(tt.a.events) != 1 {
		t.Fatal("expected delivery")
	}
	got := tt.a.events[0].(pointer.PressStart).Position
	want := f32.Point{X: 20, Y: 20}
	if got != want {
		t.Errorf("expected position %v after translation, got %v", want, got)
	}
}

func TestScrollBubbles(t *testing.T) {
	tt := newTestTree()
	tt.left.trans = f32.Point{X: 10, Y: 20}
	tt.a.onEvent = func(cx *Context, ev event.Event) bool {
		cx.SetScroll(Scroll{Kind: ScrollRect, Rect: f32.Rect(0, 0, 10, 10)})
		return true
	}

	tt.cx.sendEvent(tt.a.id, event.Command{Name: key.CommandActivate})
	if len(tt.left.scrolls) != 1 || len(tt.root.scrolls) != 1 {
		t.Fatalf("expected scroll at both ancestors, got %d and %d",
			len(tt.left.scrolls), len(tt.root.scrolls))
	}
	if got := tt.left.scrolls[0].Rect; got != f32.Rect(0, 0, 10, 10) {
		t.Errorf("unexpected rect at left: %v", got)
	}
	// The root sees the rect in its own coordinates.
	if got := tt.root.scrolls[0].Rect; got != f32.Rect(10, 20, 20, 30) {
		t.Errorf("unexpected rect at root: %v", got)
	}
}

func TestNavFocusScrollsIntoView(t *testing.T) {
	tt := newTestTree()
	tt.state.SetNavFocus(tt.b.id, event.SourceKey)
	tt.flush()

	if len(tt.left.scrolls) != 1 {
		t.Fatal("expected the focus rect to be reported to ancestors")
	}
	if got := tt.left.scrolls[0].Rect; got != tt.b.rect {
		t.Errorf("expected rect %v, got %v", tt.b.rect, got)
	}
}

func TestQueuedSend(t *testing.T) {
	tt := newTestTree()
	tt.a.useEvents = true

	tt.state.SendEvent(tt.a.id, event.Command{Name: key.CommandEnter})
	if len(tt.a.events) != 0 {
		t.Fatal("queued events must wait for the flush")
	}
	tt.flush()
	if !equalTypes(eventTypes(tt.a.events), []string{"Command"}) {
		t.Errorf("expected a queued Command, got %v", eventTypes(tt.a.events))
	}
}

func TestQueuedCommandMessage(t *testing.T) {
	tt := newTestTree()
	tt.a.useEvents = true

	// A Command value delivers as an event, not a message.
	tt.state.Send(tt.a.id, key.CommandActivate)
	tt.flush()
	if len(tt.a.events) != 1 {
		t.Fatal("expected one event")
	}
	cmd, ok := tt.a.events[0].(event.Command)
	if !ok || cmd.Name != key.CommandActivate {
		t.Errorf("expected an Activate command event, got %v", tt.a.events[0])
	}

	// A ScrollDelta value delivers as a Scroll event.
	tt.state.Send(tt.a.id, pointer.ScrollDelta{Lines: f32.Point{Y: -3}})
	tt.flush()
	if len(tt.a.events) != 2 {
		t.Fatal("expected a second event")
	}
	if _, ok := tt.a.events[1].(pointer.Scroll); !ok {
		t.Errorf("expected a Scroll event, got %v", tt.a.events[1])
	}
}

func TestUnusedCloseCommand(t *testing.T) {
	tt := newTestTree()
	tt.state.Send(tt.a.id, key.CommandClose)
	action := tt.flush()
	if !action.Contains(system.ActionClose) {
		t.Error("an unused Close command must request a window close")
	}
}

func TestReplay(t *testing.T) {
	tt := newTestTree()
	var got []int
	tt.left.onMessages = func(cx *Context) {
		got = append(got, cx.LastChild())
		// Leave the message for the root.
	}
	tt.root.onMessages = func(cx *Context) {
		got = append(got, cx.LastChild())
		message.Pop[message.SetIndex](cx.Messages())
	}

	tt.cx.Replay(tt.a.id, message.SetIndex{Index: 2})
	if len(got) != 2 || got[0] != 0 || got[1] != 0 {
		t.Errorf("expected the message to pass left then root with child indices [0 0], got %v", got)
	}
}

func TestRequestUpdateMerges(t *testing.T) {
	tt := newTestTree()
	tt.state.RequestUpdate(tt.a.id)
	tt.state.RequestUpdate(tt.b.id)
	tt.flush()

	if tt.a.updates != 1 || tt.b.updates != 1 {
		t.Error("both requested subtrees must update")
	}
	if tt.left.updates != 1 {
		t.Error("requests merge to the common ancestor")
	}
	if tt.root.updates != 0 || tt.right.updates != 0 {
		t.Error("the update must not extend beyond the common ancestor")
	}
}

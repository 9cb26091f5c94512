// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"testing"
	"time"

	"github.com/lattice-ui/lattice/io/event"
)

func timersAt(n *testNode) []event.Timer {
	var timers []event.Timer
	for _, ev := range n.events {
		if t, ok := ev.(event.Timer); ok {
			timers = append(timers, t)
		}
	}
	return timers
}

func TestTimerOrder(t *testing.T) {
	tt := newTestTree()
	tt.state.RequestTimer(tt.a.id, event.NewTimer(2), 50*time.Millisecond)
	tt.state.RequestTimer(tt.a.id, event.NewTimer(1), 20*time.Millisecond)

	wake, ok := tt.state.NextWake()
	if !ok || wake != tt.state.now().Add(20*time.Millisecond) {
		t.Fatalf("expected the soonest deadline, got %v", wake)
	}

	tt.advance(20 * time.Millisecond)
	tt.cx.UpdateTimers()
	if got := timersAt(tt.a); len(got) != 1 || got[0].Handle.Payload() != 1 {
		t.Fatalf("expected only the due timer to fire, got %v", got)
	}

	tt.advance(30 * time.Millisecond)
	tt.cx.UpdateTimers()
	if got := timersAt(tt.a); len(got) != 2 || got[1].Handle.Payload() != 2 {
		t.Fatalf("expected the second timer to fire, got %v", got)
	}
	if _, ok := tt.state.NextWake(); ok {
		t.Error("expected no pending timers")
	}
}

func TestTimerMergeEarliest(t *testing.T) {
	tt := newTestTree()
	h := event.NewTimer(1)
	tt.state.RequestTimer(tt.a.id, h, 50*time.Millisecond)
	tt.state.RequestTimer(tt.a.id, h, 20*time.Millisecond)

	tt.advance(20 * time.Millisecond)
	tt.cx.UpdateTimers()
	if got := timersAt(tt.a); len(got) != 1 {
		t.Fatalf("expected the merged timer at the earlier deadline, got %v", got)
	}
	tt.advance(time.Second)
	tt.cx.UpdateTimers()
	if got := timersAt(tt.a); len(got) != 1 {
		t.Error("expected a single delivery for merged requests")
	}
}

func TestTimerMergeLatest(t *testing.T) {
	tt := newTestTree()
	h := event.NewTimerLatest(1)
	tt.state.RequestTimer(tt.a.id, h, 20*time.Millisecond)
	tt.state.RequestTimer(tt.a.id, h, 50*time.Millisecond)

	tt.advance(20 * time.Millisecond)
	tt.cx.UpdateTimers()
	if got := timersAt(tt.a); len(got) != 0 {
		t.Fatal("expected the merge to push the deadline back")
	}
	tt.advance(30 * time.Millisecond)
	tt.cx.UpdateTimers()
	if got := timersAt(tt.a); len(got) != 1 {
		t.Errorf("expected delivery at the later deadline, got %v", got)
	}
}

func TestTimerHandlesDistinct(t *testing.T) {
	if event.NewTimer(1) == event.NewTimerLatest(1) {
		t.Error("expected distinct handles for distinct policies")
	}
	if event.NewTimerLatest(1).Payload() != 1 {
		t.Error("expected the payload to round-trip")
	}
}

func TestFrameTimer(t *testing.T) {
	tt := newTestTree()
	h := event.NewTimer(3)
	tt.state.RequestFrameTimer(tt.a.id, h)
	tt.state.RequestFrameTimer(tt.a.id, h)

	tt.cx.StartFrame()
	if got := timersAt(tt.a); len(got) != 1 || got[0].Handle != h {
		t.Fatalf("expected one merged frame timer, got %v", got)
	}

	// A request made while handling the timer waits for the next frame.
	tt.a.onEvent = func(cx *Context, ev event.Event) bool {
		if _, ok := ev.(event.Timer); ok {
			cx.RequestFrameTimer(tt.a.id, h)
			return true
		}
		return false
	}
	tt.state.RequestFrameTimer(tt.a.id, h)
	tt.cx.StartFrame()
	if got := timersAt(tt.a); len(got) != 2 {
		t.Fatalf("expected the re-request not to fire this frame, got %d", len(got))
	}
	tt.cx.StartFrame()
	if got := timersAt(tt.a); len(got) != 3 {
		t.Errorf("expected the re-request to fire next frame, got %d", len(got))
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/lattice-ui/lattice/id"
	"github.com/lattice-ui/lattice/io/event"
)

type timerEntry struct {
	when   time.Time
	target id.ID
	handle event.TimerHandle
}

type frameTimer struct {
	target id.ID
	handle event.TimerHandle
}

// RequestTimer schedules delivery of an event.Timer with the given
// handle to the widget after the delay.
//
// A pending request for the same widget and handle is merged according
// to the handle's policy: either the earliest or the latest deadline
// wins.
func (s *State) RequestTimer(target id.ID, handle event.TimerHandle, delay time.Duration) {
	when := s.now().Add(delay)
	for i := range s.timers {
		t := &s.timers[i]
		if t.target == target && t.handle == handle {
			if handle.EarliestWins() == when.Before(t.when) {
				t.when = when
				s.sortTimers()
			}
			return
		}
	}
	s.timers = append(s.timers, timerEntry{when: when, target: target, handle: handle})
	s.sortTimers()
}

// RequestFrameTimer schedules delivery of an event.Timer at the start
// of the next frame. Duplicate requests merge.
func (s *State) RequestFrameTimer(target id.ID, handle event.TimerHandle) {
	ft := frameTimer{target: target, handle: handle}
	for _, f := range s.frameTimers {
		if f == ft {
			return
		}
	}
	s.frameTimers = append(s.frameTimers, ft)
}

// NextWake returns the deadline of the soonest pending timer.
func (s *State) NextWake() (time.Time, bool) {
	if len(s.timers) == 0 {
		return time.Time{}, false
	}
	return s.timers[len(s.timers)-1].when, true
}

// Entries are kept reverse sorted by deadline so the soonest pops off
// the tail.
func (s *State) sortTimers() {
	slices.SortStableFunc(s.timers, func(a, b timerEntry) int {
		switch {
		case a.when.After(b.when):
			return -1
		case b.when.After(a.when):
			return 1
		default:
			return 0
		}
	})
}

// UpdateTimers dispatches an event.Timer to the target of every timer
// due at the current time.
func (cx *Context) UpdateTimers() {
	now := cx.now()
	for len(cx.timers) > 0 {
		last := len(cx.timers) - 1
		t := cx.timers[last]
		if t.when.After(now) {
			break
		}
		cx.timers = cx.timers[:last]
		cx.sendEvent(t.target, event.Timer{Handle: t.handle})
	}
}

// flushFrameTimers runs at the start of event processing for a frame.
// Timers requested during the flush run on the next frame.
func (cx *Context) flushFrameTimers() {
	timers := cx.frameTimers
	cx.frameTimers = nil
	for _, f := range timers {
		cx.sendEvent(f.target, event.Timer{Handle: f.handle})
	}
}

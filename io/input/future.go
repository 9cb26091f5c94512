// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lattice-ui/lattice/id"
	"github.com/lattice-ui/lattice/io/message"
)

// futures runs background work on behalf of widgets and queues the
// results for delivery on the UI thread.
type futures struct {
	window Window
	group  errgroup.Group

	mu   sync.Mutex
	done []futureResult
}

type futureResult struct {
	target id.ID
	msg    message.Erased
}

func (f *futures) init(window Window) {
	f.window = window
	f.group.SetLimit(16)
}

// Spawn runs fn on a background goroutine. Its result is sent to the
// widget as a message after the next wake, as if pushed by the widget
// itself. A nil result is dropped.
//
// The target is resolved at delivery: if the widget is gone by then,
// ancestors (and finally the application data) still see the message.
func (s *State) Spawn(target id.ID, fn func() any) {
	f := &s.fut
	f.group.Go(func() error {
		value := fn()
		if value == nil {
			return nil
		}
		f.mu.Lock()
		f.done = append(f.done, futureResult{target: target, msg: message.New(value)})
		f.mu.Unlock()
		f.window.Wake()
		return nil
	})
}

// pollFutures delivers finished background results. Results arriving
// during delivery wait for the next frame.
func (cx *Context) pollFutures() {
	f := &cx.fut
	f.mu.Lock()
	done := f.done
	f.done = nil
	f.mu.Unlock()
	for _, r := range done {
		cx.sendMessage(r.target, r.msg)
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"testing"
	"time"

	"github.com/lattice-ui/lattice/io/message"
)

func waitForResults(t *testing.T, s *State, n int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for {
		s.fut.mu.Lock()
		done := len(s.fut.done)
		s.fut.mu.Unlock()
		if done >= n {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d results", n)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSpawnDeliversResult(t *testing.T) {
	tt := newTestTree()
	var got []int
	tt.a.onMessages = func(cx *Context) {
		if msg, ok := message.Pop[message.SetIndex](cx.Messages()); ok {
			got = append(got, msg.Index)
		}
	}

	tt.state.Spawn(tt.a.id, func() any {
		return message.SetIndex{Index: 7}
	})
	waitForResults(t, tt.state, 1)
	tt.flush()

	if len(got) != 1 || got[0] != 7 {
		t.Errorf("expected the result to replay at the target, got %v", got)
	}
}

func TestSpawnDropsNil(t *testing.T) {
	tt := newTestTree()
	done := make(chan struct{})
	tt.state.Spawn(tt.a.id, func() any {
		defer close(done)
		return nil
	})
	<-done
	tt.state.fut.mu.Lock()
	pending := len(tt.state.fut.done)
	tt.state.fut.mu.Unlock()
	if pending != 0 {
		t.Error("expected nil results to be dropped")
	}
}

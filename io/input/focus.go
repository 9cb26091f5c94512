// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"github.com/lattice-ui/lattice/f32"
	"github.com/lattice-ui/lattice/id"
	"github.com/lattice-ui/lattice/io/event"
	"github.com/lattice-ui/lattice/io/key"
)

// Focus forms a chain: a widget with key focus also holds selection
// focus, and granting selection focus also grants navigation focus.
// IME focus requires key focus.

type pendingSelFocus struct {
	target     id.ID
	keyFocus   bool
	ime        bool
	imePurpose key.ImePurpose
	source     event.FocusSource
}

type pendingNavKind uint8

const (
	pendingNavNone pendingNavKind = iota
	pendingNavSet
	pendingNavNext
)

type pendingNavFocus struct {
	kind    pendingNavKind
	target  id.ID
	reverse bool
	source  event.FocusSource
}

// HasNavFocus reports whether the widget holds navigation focus.
func (s *State) HasNavFocus(target id.ID) bool {
	return target.Valid() && s.navFocus == target
}

// NavFocus returns the navigation focus target. Pending changes do
// not affect the result until they commit.
func (s *State) NavFocus() id.ID {
	return s.navFocus
}

// HasSelFocus reports whether the widget holds selection focus.
func (s *State) HasSelFocus(target id.ID) bool {
	return target.Valid() && s.selFocus == target
}

// HasKeyFocus reports whether the widget holds keyboard input focus,
// and whether input method support is active for it.
func (s *State) HasKeyFocus(target id.ID) (focus, ime bool) {
	focus = target.Valid() && s.selFocus == target && s.keyFocus
	return focus, focus && s.ime
}

func (s *State) keyFocusTarget() (id.ID, bool) {
	if s.keyFocus && s.selFocus.Valid() {
		return s.selFocus, true
	}
	return id.ID{}, false
}

// RequestSelFocus requests selection focus for the widget, committed
// after the current event pass. The last request of a pass wins.
func (s *State) RequestSelFocus(target id.ID, source event.FocusSource) {
	// A widget already holding key focus keeps it.
	keep := s.keyFocus && s.selFocus == target
	s.pendingSel = &pendingSelFocus{target: target, keyFocus: keep, source: source}
}

// RequestKeyFocus requests keyboard input focus, which includes
// selection focus, for the widget.
func (s *State) RequestKeyFocus(target id.ID, source event.FocusSource) {
	s.pendingSel = &pendingSelFocus{target: target, keyFocus: true, source: source}
}

// RequestImeFocus requests keyboard input focus with input method
// support.
func (s *State) RequestImeFocus(target id.ID, purpose key.ImePurpose, source event.FocusSource) {
	s.pendingSel = &pendingSelFocus{
		target:     target,
		keyFocus:   true,
		ime:        true,
		imePurpose: purpose,
		source:     source,
	}
}

// clearKeyFocus drops key focus without affecting selection focus,
// unless a pending request supersedes it.
func (s *State) clearKeyFocus() {
	if !s.keyFocus {
		return
	}
	if p := s.pendingSel; p != nil {
		if p.target == s.selFocus {
			p.keyFocus = false
			p.ime = false
		}
		return
	}
	s.pendingSel = &pendingSelFocus{target: s.selFocus, source: event.SourceSynthetic}
}

// clearSelFocusOn queues loss of selection focus when it is within the
// target subtree.
func (s *State) clearSelFocusOn(target id.ID) {
	if s.selFocus.Valid() && target.IsAncestorOf(s.selFocus) {
		if p := s.pendingSel; p == nil || (p.target.Valid() && target.IsAncestorOf(p.target)) {
			s.pendingSel = &pendingSelFocus{source: event.SourceSynthetic}
		}
	}
}

// clearNavFocusOn queues loss of navigation focus when it is within
// the target subtree.
func (s *State) clearNavFocusOn(target id.ID) {
	if s.navFocus.Valid() && target.IsAncestorOf(s.navFocus) {
		if s.pendingNav.kind == pendingNavSet && s.pendingNav.target == s.navFocus {
			s.pendingNav = pendingNavFocus{}
		}
		if s.pendingNav.kind == pendingNavNone {
			s.pendingNav = pendingNavFocus{kind: pendingNavSet, source: event.SourceSynthetic}
		}
	}
}

// stripFocus removes focus and hover from a subtree which became
// disabled or was removed.
func (s *State) stripFocus(target id.ID) {
	s.clearSelFocusOn(target)
	s.clearNavFocusOn(target)
	if s.hover.Valid() && target.IsAncestorOf(s.hover) {
		s.hover = id.ID{}
	}
	if s.navFallback.Valid() && target.IsAncestorOf(s.navFallback) {
		s.navFallback = id.ID{}
	}
}

// SetNavFocus sets navigation focus directly, without checking that
// the target is navigable. Committed after the current event pass.
func (s *State) SetNavFocus(target id.ID, source event.FocusSource) {
	s.pendingNav = pendingNavFocus{kind: pendingNavSet, target: target, source: source}
}

// ClearNavFocus removes navigation focus.
func (s *State) ClearNavFocus() {
	s.pendingNav = pendingNavFocus{kind: pendingNavSet, source: event.SourceSynthetic}
}

// NextNavFocus advances navigation focus to the next navigable widget
// from the given one, inclusive when it is valid. With an invalid
// from, the search continues from the current focus, or starts at the
// tree's beginning. Reverse searches backwards.
func (s *State) NextNavFocus(from id.ID, reverse bool, source event.FocusSource) {
	s.pendingNav = pendingNavFocus{
		kind:    pendingNavNext,
		target:  from,
		reverse: reverse,
		source:  source,
	}
}

// RegisterNavFallback sets the fallback recipient of command events.
// Commands with no focused recipient go to the fallback. The first
// registration per window wins.
func (s *State) RegisterNavFallback(target id.ID) {
	if !s.navFallback.Valid() {
		s.navFallback = target
	}
}

// SetImeCursorArea reports the text cursor area of the widget holding
// IME focus, so the platform can place candidate windows.
func (s *State) SetImeCursorArea(target id.ID, rect f32.Rectangle) {
	if focus, ime := s.HasKeyFocus(target); focus && ime {
		s.window.SetImeCursorArea(rect)
	}
}

// commitSelFocus applies a pending selection focus change, delivering
// loss notifications in the order IME, key, selection, and then the
// gain notifications.
func (cx *Context) commitSelFocus() {
	pending := cx.pendingSel
	if pending == nil {
		return
	}
	cx.pendingSel = nil

	if pending.target == cx.selFocus {
		target := pending.target
		if !target.Valid() {
			return
		}
		if cx.ime && !pending.ime {
			cx.ime = false
			cx.window.EnableIme(false, cx.imePurpose)
			cx.sendEvent(target, event.LostImeFocus{})
		}
		if cx.keyFocus && !pending.keyFocus {
			cx.keyFocus = false
			cx.sendEvent(target, event.LostKeyFocus{})
		}
		if pending.keyFocus && !cx.keyFocus {
			cx.keyFocus = true
			cx.sendEvent(target, event.KeyFocus{})
		}
		cx.applyIme(pending)
		return
	}

	if old := cx.selFocus; old.Valid() {
		if cx.ime {
			cx.ime = false
			cx.window.EnableIme(false, cx.imePurpose)
			cx.sendEvent(old, event.LostImeFocus{})
		}
		if cx.keyFocus {
			cx.sendEvent(old, event.LostKeyFocus{})
		}
		cx.sendEvent(old, event.LostSelFocus{})
	}

	cx.keyFocus = pending.keyFocus
	cx.selFocus = pending.target

	if target := pending.target; target.Valid() {
		// The widget usually already has nav focus, but anyway:
		cx.SetNavFocus(target, event.SourceSynthetic)

		cx.sendEvent(target, event.SelFocus{Source: pending.source})
		if pending.keyFocus {
			cx.sendEvent(target, event.KeyFocus{})
		}
		cx.applyIme(pending)
	}
}

func (cx *Context) applyIme(pending *pendingSelFocus) {
	target := pending.target
	if !target.Valid() {
		return
	}
	switch {
	case pending.ime && (!cx.ime || cx.imePurpose != pending.imePurpose):
		cx.ime = true
		cx.imePurpose = pending.imePurpose
		cx.window.EnableIme(true, pending.imePurpose)
		cx.sendEvent(target, event.ImeFocus{})
	case !pending.ime && cx.ime:
		cx.ime = false
		cx.window.EnableIme(false, cx.imePurpose)
		cx.sendEvent(target, event.LostImeFocus{})
	}
}

// commitNavFocus applies a pending navigation focus change.
func (cx *Context) commitNavFocus() {
	pending := cx.pendingNav
	cx.pendingNav = pendingNavFocus{}
	switch pending.kind {
	case pendingNavSet:
		cx.setNavFocus(pending.target, pending.source)
	case pendingNavNext:
		cx.nextNavFocus(pending.target, pending.reverse, pending.source)
	}
}

func (cx *Context) setNavFocus(target id.ID, source event.FocusSource) {
	if target == cx.navFocus || !cx.cfg.base.NavFocus {
		return
	}

	// Navigation focus moving away from the selection removes key
	// focus.
	if cx.selFocus.Valid() && cx.selFocus != target {
		cx.clearKeyFocus()
	}

	if old := cx.navFocus; old.Valid() {
		cx.navFocus = id.ID{}
		cx.Redraw()
		cx.sendEvent(old, event.LostNavFocus{})
	}

	cx.navFocus = target
	if target.Valid() {
		cx.Redraw()
		cx.sendEvent(target, event.NavFocus{Source: source})
	}
}

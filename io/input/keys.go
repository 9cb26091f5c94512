// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"github.com/lattice-ui/lattice/id"
	"github.com/lattice-ui/lattice/io/event"
	"github.com/lattice-ui/lattice/io/key"
)

// HandleKey processes a keyboard event from the shell. A widget with
// key focus sees the event first; otherwise, or when unused, the key
// is matched against command shortcuts and access keys.
func (cx *Context) HandleKey(ev key.Event) {
	ev.Modifiers = cx.modifiers

	if ev.State == key.Release {
		if _, held := cx.keyDepress[ev.Code]; held {
			delete(cx.keyDepress, ev.Code)
			cx.Redraw()
		}
		return
	}

	if target, ok := cx.keyFocusTarget(); ok {
		// Text with a control character or a non-shift modifier
		// held is a shortcut, not input.
		if ev.Text != "" {
			if cx.modifiers&^key.ModShift != 0 || isControl(ev.Text) {
				ev.Text = ""
			}
		}
		if cx.sendEvent(target, ev) {
			return
		}
	}
	cx.startKeyEvent(ev)
}

func isControl(text string) bool {
	for _, r := range text {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}

// HandleModifiers records a change of the held keyboard modifiers.
func (cx *Context) HandleModifiers(mods key.Modifiers) {
	cx.modifiers = mods
}

// DepressWithKey marks the widget as depressed until the key is
// released. Call when activating from a key press.
func (s *State) DepressWithKey(target id.ID, code key.Code) {
	if code == 0 || !target.Valid() {
		return
	}
	s.keyDepress[code] = target
	s.Redraw()
}

// startKeyEvent dispatches an unfocused key press: first as a command
// to the focus chain, then as an access key.
func (cx *Context) startKeyEvent(ev key.Event) {
	cmd, ok := key.CommandFromKey(ev.Name, cx.modifiers)
	if ok {
		if cx.dispatchCommand(cmd, ev.Code) {
			return
		}
		switch cmd {
		case key.CommandTab:
			cx.NextNavFocus(id.ID{}, cx.modifiers.Contain(key.ModShift), event.SourceKey)
		case key.CommandEscape:
			cx.closeTopPopup()
		}
		return
	}

	if target, found := cx.accessKeyTarget(ev.Name); found {
		if focus := cx.navigableAncestor(target); focus.Valid() {
			cx.SetNavFocus(focus, event.SourceKey)
		}
		cx.sendEvent(target, event.Command{Name: key.CommandActivate, Code: ev.Code})
	}
}

// dispatchCommand offers a command to potential recipients in order:
// the selection focus, the navigation focus, the topmost popup, and
// the navigation fallback.
func (cx *Context) dispatchCommand(cmd key.Command, code key.Code) bool {
	var targets []id.ID
	if cx.selFocus.Valid() && (cx.keyFocus || cmd.SuitableForSelFocus()) {
		targets = append(targets, cx.selFocus)
	}
	if cx.navFocus.Valid() && !cx.modifiers.Contain(key.ModAlt) {
		targets = append(targets, cx.navFocus)
	}
	if n := len(cx.popups); n > 0 {
		targets = append(targets, cx.popups[n-1].desc.ID)
	}
	if cx.navFallback.Valid() {
		targets = append(targets, cx.navFallback)
	}

	var tried []id.ID
next:
	for _, target := range targets {
		for _, t := range tried {
			if t == target {
				continue next
			}
		}
		tried = append(tried, target)
		if cx.sendEvent(target, event.Command{Name: cmd, Code: code}) {
			return true
		}
	}
	return false
}

// navigableAncestor returns the deepest widget on the path to target,
// inclusive, which accepts navigation focus.
func (cx *Context) navigableAncestor(target id.ID) id.ID {
	var found id.ID
	node := cx.root
	for node != nil {
		if node.Navigable() && !cx.IsDisabled(node.ID()) {
			found = node.ID()
		}
		if node.ID() == target {
			break
		}
		index, ok := target.ChildIndexAfter(node.ID())
		if !ok {
			break
		}
		node = node.Child(int(index))
	}
	return found
}

// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"github.com/lattice-ui/lattice/id"
	"github.com/lattice-ui/lattice/io/event"
)

// nextNavFocus advances navigation focus. When a sized popup is open,
// the search is restricted to the popup's subtree.
func (cx *Context) nextNavFocus(target id.ID, reverse bool, source event.FocusSource) {
	if !cx.cfg.base.NavFocus || (target.Valid() && target == cx.navFocus) {
		return
	}

	scope := cx.root
	if p := cx.topSizedPopup(); p.Valid() && p != scope.ID() {
		node := findNode(cx.root, p)
		if node == nil {
			return
		}
		scope = node
	}

	focus := target
	canMatchSelf := target.Valid()
	if !focus.Valid() {
		focus = cx.navFocus
	}

	// Restart from the beginning on failure, unless already
	// unanchored.
	next := cx.navNext(scope, focus, canMatchSelf, reverse)
	if !next.Valid() && focus.Valid() {
		next = cx.navNext(scope, id.ID{}, false, reverse)
	}

	cx.setNavFocus(next, source)
}

// navNext finds the next navigable widget from focus in depth-first
// pre-order, or the previous one in reverse. An invalid focus anchors
// the search at the start (or end) of the subtree. Disabled subtrees
// are skipped.
func (cx *Context) navNext(scope Node, focus id.ID, canMatchSelf, reverse bool) id.ID {
	var found id.ID
	cx.walkNavigable(scope, func(target id.ID) bool {
		if !reverse {
			switch {
			case !focus.Valid(),
				canMatchSelf && id.Compare(focus, target) <= 0,
				!canMatchSelf && id.Compare(focus, target) < 0:
				found = target
				return false
			}
			return true
		}
		// Reverse: remember the last candidate before focus; with an
		// invalid focus, the last one overall.
		switch {
		case !focus.Valid(),
			canMatchSelf && id.Compare(target, focus) <= 0,
			!canMatchSelf && id.Compare(target, focus) < 0:
			found = target
		}
		return true
	})
	return found
}

// walkNavigable visits navigable, enabled widgets of the subtree in
// depth-first pre-order. The visitor returns false to stop the walk.
func (cx *Context) walkNavigable(node Node, visit func(id.ID) bool) bool {
	if node == nil {
		return true
	}
	target := node.ID()
	if !target.Valid() || cx.IsDisabled(target) {
		return true
	}
	if node.Navigable() && !visit(target) {
		return false
	}
	for i := 0; i < node.NumChildren(); i++ {
		if !cx.walkNavigable(node.Child(i), visit) {
			return false
		}
	}
	return true
}

// findNode locates the node for target by structural descent from
// root. It returns nil when the path cannot be followed.
func findNode(root Node, target id.ID) Node {
	if !target.Valid() {
		return nil
	}
	node := root
	for node != nil && node.ID() != target {
		index, ok := target.ChildIndexAfter(node.ID())
		if !ok {
			return nil
		}
		node = node.Child(int(index))
	}
	return node
}

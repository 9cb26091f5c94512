// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"time"

	"golang.org/x/exp/slices"

	"github.com/lattice-ui/lattice/id"
	"github.com/lattice-ui/lattice/io/event"
	"github.com/lattice-ui/lattice/io/key"
	"github.com/lattice-ui/lattice/io/message"
	"github.com/lattice-ui/lattice/io/pointer"
	"github.com/lattice-ui/lattice/io/system"
	"github.com/lattice-ui/lattice/unit"
)

// State tracks input state for one window: focus, hover, grabs,
// popups, timers and pending work. It persists between events; a
// Context wraps it for the duration of an event-handling pass.
type State struct {
	cfg    WindowConfig
	window Window
	now    func() time.Time

	action   system.Action
	disabled []id.ID

	mouse mouseState
	touch touchState
	pans  []panGrab

	hover     id.ID
	hoverIcon pointer.Cursor
	sentIcon  pointer.Cursor

	navFallback id.ID
	navFocus    id.ID
	selFocus    id.ID
	keyFocus    bool
	ime         bool
	imePurpose  key.ImePurpose

	keyDepress   map[key.Code]id.ID
	accessLayers []accessLayer
	modifiers    key.Modifiers
	windowFocus  bool

	popups       []popupEntry
	popupRemoved []popupRemoved

	pendingSel    *pendingSelFocus
	pendingNav    pendingNavFocus
	pendingUpdate *pendingUpdate

	timers      []timerEntry
	frameTimers []frameTimer

	sendQueue []queuedItem
	fut       futures
}

type queuedItem struct {
	target id.ID
	// Exactly one of msg and ev is set.
	msg message.Erased
	ev  event.Event
}

type pendingUpdate struct {
	target id.ID
}

// NewState constructs the input state for a window.
func NewState(window Window, cfg Config, metric unit.Metric) *State {
	s := &State{
		cfg:        NewWindowConfig(cfg, metric),
		window:     window,
		now:        time.Now,
		keyDepress: make(map[key.Code]id.ID),
	}
	s.accessLayers = append(s.accessLayers, accessLayer{
		owner: id.Root,
		keys:  make(map[key.Name]id.ID),
	})
	s.fut.init(window)
	return s
}

// Config returns the window-scaled configuration.
func (s *State) Config() *WindowConfig {
	return &s.cfg
}

// Window returns the shell window.
func (s *State) Window() Window {
	return s.window
}

// PushAction records an action to take after event processing.
func (s *State) PushAction(action system.Action) {
	s.action |= action
}

// TakeAction returns and clears the accumulated actions. RegionMoved
// implies a redraw.
func (s *State) TakeAction() system.Action {
	action := s.action
	s.action = 0
	if action.Contains(system.ActionRegionMoved) {
		action |= system.ActionRedraw
	}
	return action
}

// Redraw requests a redraw of the window.
func (s *State) Redraw() {
	s.action |= system.ActionRedraw
}

// SetDisabled enables or disables a widget subtree. Events targeting a
// disabled subtree are redirected to the disabled ancestor; focus may
// not enter it.
func (s *State) SetDisabled(target id.ID, disabled bool) {
	if disabled {
		for _, d := range s.disabled {
			if d == target {
				return
			}
		}
		s.disabled = append(s.disabled, target)
		s.stripFocus(target)
		s.action |= system.ActionRedraw
	} else {
		for i, d := range s.disabled {
			if d == target {
				s.disabled = slices.Delete(s.disabled, i, i+1)
				s.action |= system.ActionRedraw
				return
			}
		}
	}
}

// IsDisabled reports whether the widget is within a disabled subtree.
func (s *State) IsDisabled(target id.ID) bool {
	for _, d := range s.disabled {
		if d.IsAncestorOf(target) {
			return true
		}
	}
	return false
}

// disabledAncestor returns the outermost disabled ancestor of target.
func (s *State) disabledAncestor(target id.ID) (id.ID, bool) {
	var found id.ID
	for _, d := range s.disabled {
		if d.IsAncestorOf(target) {
			if !found.Valid() || d.IsAncestorOf(found) {
				found = d
			}
		}
	}
	return found, found.Valid()
}

// IsDepressed reports whether the widget should be drawn depressed:
// it is the depress target of a grab or a held key.
func (s *State) IsDepressed(target id.ID) bool {
	if s.mouse.grab != nil && s.mouse.grab.depress == target {
		return true
	}
	for i := range s.touch.grabs {
		if s.touch.grabs[i].depress == target {
			return true
		}
	}
	for _, t := range s.keyDepress {
		if t == target {
			return true
		}
	}
	return false
}

// IsHovered reports whether the mouse is over the widget.
func (s *State) IsHovered(target id.ID) bool {
	return s.mouse.grab == nil && len(s.touch.grabs) == 0 &&
		s.hover.Valid() && target.IsAncestorOf(s.hover)
}

// HasHoverIcon reports whether the mouse hovers the widget and its
// icon would show.
func (s *State) HasHoverIcon(target id.ID) bool {
	return s.IsHovered(target)
}

// SetHoverIcon sets the cursor shown while the mouse hovers the
// calling widget. Call on event.Hover with Entered set.
func (s *State) SetHoverIcon(icon pointer.Cursor) {
	s.hoverIcon = icon
	if s.mouse.grab == nil {
		s.updateCursorIcon()
	}
}

func (s *State) updateCursorIcon() {
	icon := s.hoverIcon
	if g := s.mouse.grab; g != nil && g.hasCursor {
		icon = g.cursor
	}
	if icon != s.sentIcon {
		s.sentIcon = icon
		s.window.SetCursorIcon(icon)
	}
}

// Modifiers returns the currently held keyboard modifiers.
func (s *State) Modifiers() key.Modifiers {
	return s.modifiers
}

// HasWindowFocus reports whether the window has keyboard focus.
func (s *State) HasWindowFocus() bool {
	return s.windowFocus
}

// Send queues a message for delivery to the widget. The message is
// pushed to the stack as if by the widget and offered to its
// ancestors.
//
// Command and pointer.ScrollDelta values are special cased: they are
// delivered as event.Command and pointer.Scroll events instead.
func (s *State) Send(target id.ID, msg any) {
	s.SendErased(target, message.New(msg))
}

// SendErased is a lower level variant of Send.
func (s *State) SendErased(target id.ID, msg message.Erased) {
	s.sendQueue = append(s.sendQueue, queuedItem{target: target, msg: msg})
}

// SendEvent queues an event for delivery to the widget.
func (s *State) SendEvent(target id.ID, ev event.Event) {
	s.sendQueue = append(s.sendQueue, queuedItem{target: target, ev: ev})
}

// RequestUpdate schedules an update pass over a widget subtree. The
// requests of one batch merge to their common ancestor.
func (s *State) RequestUpdate(target id.ID) {
	if s.pendingUpdate != nil {
		target = s.pendingUpdate.target.CommonAncestor(target)
	}
	s.pendingUpdate = &pendingUpdate{target: target}
}

// FullUpdate schedules an update pass over the whole tree.
func (s *State) FullUpdate() {
	s.pendingUpdate = &pendingUpdate{target: id.Root}
}

// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"golang.org/x/exp/slices"

	"github.com/lattice-ui/lattice/id"
	"github.com/lattice-ui/lattice/io/event"
	"github.com/lattice-ui/lattice/io/system"
)

// PopupDescriptor describes an open popup: a subtree of the window
// layered over the rest.
type PopupDescriptor struct {
	// ID is the root of the popup subtree.
	ID id.ID
	// Parent is the widget which opened the popup. It receives a
	// PopupClosed event when the popup closes, and key events not
	// used by the popup.
	Parent id.ID
	// SetFocus grants the popup navigation focus when it opens; the
	// parent's focus is restored on close.
	SetFocus bool
}

type popupEntry struct {
	winID       system.WindowID
	desc        PopupDescriptor
	oldNavFocus id.ID
	// sized is set once the shell has laid the popup out; only a
	// sized popup restricts keyboard navigation to its subtree.
	sized bool
}

type popupRemoved struct {
	winID  system.WindowID
	parent id.ID
}

// OpenPopup opens a popup over the window. Popups stack: the last
// opened is topmost. Returns a handle used to close it.
func (s *State) OpenPopup(desc PopupDescriptor) system.WindowID {
	winID := s.window.AddPopup(desc)
	entry := popupEntry{
		winID:       winID,
		desc:        desc,
		oldNavFocus: s.navFocus,
	}
	s.popups = append(s.popups, entry)
	if desc.SetFocus {
		s.pendingNav = pendingNavFocus{kind: pendingNavNext, target: desc.ID}
	} else {
		// Keep existing focus unless it sits under another popup
		// which is no longer topmost.
		entry.oldNavFocus = id.ID{}
		s.popups[len(s.popups)-1] = entry
	}
	s.action |= system.ActionRegionMoved
	return winID
}

// ClosePopup closes the popup identified by the handle, if still open.
// The parent is notified through a PopupClosed event and the previous
// navigation focus is restored.
func (s *State) ClosePopup(winID system.WindowID) {
	for i, p := range s.popups {
		if p.winID == winID {
			s.closePopupAt(i)
			return
		}
	}
}

func (s *State) closePopupAt(i int) {
	p := s.popups[i]
	s.popups = slices.Delete(s.popups, i, i+1)
	s.popupRemoved = append(s.popupRemoved, popupRemoved{winID: p.winID, parent: p.desc.Parent})
	s.window.RemovePopup(p.winID)
	if p.oldNavFocus.Valid() {
		s.pendingNav = pendingNavFocus{
			kind:   pendingNavSet,
			target: p.oldNavFocus,
			source: event.SourceSynthetic,
		}
	}
	s.action |= system.ActionRegionMoved
}

// closeTopPopup closes the topmost popup, if any. Returns false when
// no popup is open.
func (s *State) closeTopPopup() bool {
	if len(s.popups) == 0 {
		return false
	}
	s.closePopupAt(len(s.popups) - 1)
	return true
}

// ClosePopupsExcept closes all popups whose subtree does not contain
// the target. Used when input lands outside the open menus.
func (s *State) ClosePopupsExcept(target id.ID) {
	for i := len(s.popups) - 1; i >= 0; i-- {
		p := s.popups[i]
		if target.Valid() && (p.desc.ID == target || p.desc.ID.IsAncestorOf(target)) {
			continue
		}
		s.closePopupAt(i)
	}
}

// closeAllPopups closes every open popup, topmost first.
func (s *State) closeAllPopups() {
	for len(s.popups) > 0 {
		s.closePopupAt(len(s.popups) - 1)
	}
}

// SetPopupSized marks a popup as laid out. Keyboard navigation is
// restricted to the topmost sized popup.
func (s *State) SetPopupSized(winID system.WindowID) {
	for i := range s.popups {
		if s.popups[i].winID == winID {
			s.popups[i].sized = true
			return
		}
	}
}

// topSizedPopup returns the root of the topmost sized popup, or an
// invalid ID when no sized popup is open.
func (s *State) topSizedPopup() id.ID {
	for i := len(s.popups) - 1; i >= 0; i-- {
		if s.popups[i].sized {
			return s.popups[i].desc.ID
		}
	}
	return id.ID{}
}

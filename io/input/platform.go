// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"time"

	"github.com/lattice-ui/lattice/f32"
	"github.com/lattice-ui/lattice/id"
	"github.com/lattice-ui/lattice/io/event"
	"github.com/lattice-ui/lattice/io/key"
	"github.com/lattice-ui/lattice/io/pointer"
	"github.com/lattice-ui/lattice/unit"
)

// doubleClickTimeout is the longest pause between clicks extending a
// multi-click chain.
const doubleClickTimeout = time.Second

// HandleMouseMove processes mouse motion in window coordinates.
// Motion under a grab accumulates and is delivered at the next flush.
func (cx *Context) HandleMouseMove(pos f32.Point) {
	delta := pos.Sub(cx.mouse.lastPos)
	cx.mouse.lastPos = pos
	// Motion breaks a double-click chain.
	cx.mouse.lastClickExpiry = 0

	target := cx.probe(pos)
	cx.setHover(target)

	if g := cx.mouse.grab; g != nil {
		if g.panIdx != noPan {
			if g.panIdx < len(cx.pans) && g.panPt < MaxPanGrabs {
				cx.pans[g.panIdx].coords[g.panPt][1] = pos
			}
			return
		}
		g.curID = target
		g.coord = pos
		g.delta = g.delta.Add(delta)
		if g.mode == pointer.GrabClick {
			depress := id.ID{}
			if g.curID == g.startID {
				depress = g.startID
			}
			if g.depress != depress {
				g.depress = depress
				cx.Redraw()
			}
		}
		return
	}

	// With a menu open, let it track the cursor for hover-open.
	if n := len(cx.popups); n > 0 {
		cx.sendEvent(cx.popups[n-1].desc.ID, pointer.CursorMove{
			Press: pointer.Press{Source: pointer.SourceMouse, Position: pos},
		})
	}
}

// HandleMouseLeave processes the cursor leaving the window.
func (cx *Context) HandleMouseLeave() {
	if cx.mouse.grab == nil {
		cx.setHover(id.ID{})
	}
}

// HandleMouseWheel processes scroll wheel input, delivered to the
// hovered widget.
func (cx *Context) HandleMouseWheel(delta pointer.ScrollDelta) {
	cx.flushMouseGrabMotion()
	cx.sendEvent(cx.hover, pointer.Scroll{Delta: delta})
}

// HandleMousePress processes a mouse button press. A press during a
// grab cancels the grab; otherwise the hovered widget receives
// PressStart, popup parents first.
func (cx *Context) HandleMousePress(button pointer.Buttons) {
	cx.flushMouseGrabMotion()

	now := cx.now().UnixNano()
	if button != cx.mouse.lastClickButton || cx.mouse.lastClickExpiry < now {
		cx.mouse.lastClickButton = button
		cx.mouse.lastClickReps = 0
	}
	cx.mouse.lastClickReps++
	cx.mouse.lastClickExpiry = now + int64(doubleClickTimeout)

	if cx.mouse.grab != nil {
		cx.removeMouseGrab(false)
		return
	}

	if cx.hover.Valid() && cx.cfg.MouseNavFocus() {
		if focus := cx.navigableAncestor(cx.hover); focus.Valid() {
			cx.SetNavFocus(focus, event.SourcePointer)
		}
	}
	cx.sendPopupFirst(cx.hover, pointer.PressStart{
		Press: pointer.Press{
			Source:      pointer.SourceMouse,
			Position:    cx.mouse.lastPos,
			Button:      button,
			Repetitions: cx.mouse.lastClickReps,
		},
	})
}

// HandleMouseRelease processes a mouse button release, completing a
// grab held with the same button.
func (cx *Context) HandleMouseRelease(button pointer.Buttons) {
	cx.flushMouseGrabMotion()
	if g := cx.mouse.grab; g != nil && g.button == button {
		cx.removeMouseGrab(true)
	}
}

// HandleTouchStart processes a new touch press.
func (cx *Context) HandleTouchStart(pid pointer.PointerID, pos f32.Point) {
	target := cx.probe(pos)
	if target.Valid() && cx.cfg.TouchNavFocus() {
		if focus := cx.navigableAncestor(target); focus.Valid() {
			cx.SetNavFocus(focus, event.SourcePointer)
		}
	}
	cx.sendPopupFirst(target, pointer.PressStart{
		Press: pointer.Press{
			Source:    pointer.SourceTouch,
			PointerID: pid,
			Position:  pos,
		},
	})
}

// HandleTouchMove processes touch motion. Motion of grabbed touches
// accumulates and is delivered at the next flush; ungrabbed touches
// are ignored.
func (cx *Context) HandleTouchMove(pid pointer.PointerID, pos f32.Point) {
	g := cx.touch.get(pid)
	if g == nil {
		return
	}
	if g.panIdx != noPan {
		if g.panIdx < len(cx.pans) && g.panPt < MaxPanGrabs {
			cx.pans[g.panIdx].coords[g.panPt][1] = pos
		}
		return
	}
	g.curID = cx.probe(pos)
	g.coord = pos
}

// HandleTouchEnd processes the end of a touch press. Cancelled
// presses (for example, stolen by the platform) end with success set
// to false.
func (cx *Context) HandleTouchEnd(pid pointer.PointerID, pos f32.Point, success bool) {
	cx.flushTouchMotion()
	g, ok := cx.touch.remove(pid)
	if !ok {
		return
	}
	if g.depress.Valid() {
		cx.Redraw()
	}
	if g.panIdx != noPan {
		cx.removePanGrab(g.panIdx, g.panPt)
		return
	}
	cx.sendEvent(g.startID, pointer.PressEnd{
		Press: pointer.Press{
			Source:    pointer.SourceTouch,
			PointerID: pid,
			Position:  pos,
		},
		Success: success,
	})
}

// HandleEdit delivers an input method edit to the widget with IME
// focus.
func (cx *Context) HandleEdit(ev key.EditEvent) {
	if target, ok := cx.keyFocusTarget(); ok && cx.ime {
		cx.sendEvent(target, ev)
	}
}

// HandleWindowFocus processes window focus changes. Focus loss
// releases held keys and closes open popups.
func (cx *Context) HandleWindowFocus(focus bool) {
	cx.windowFocus = focus
	if focus {
		return
	}
	cx.modifiers = 0
	if len(cx.keyDepress) > 0 {
		for code := range cx.keyDepress {
			delete(cx.keyDepress, code)
		}
		cx.Redraw()
	}
	cx.closeAllPopups()
}

// HandleScaleFactor updates the window's scale metric.
func (cx *Context) HandleScaleFactor(metric unit.Metric) {
	cx.cfg.SetMetric(metric)
}

// StartFrame runs the per-frame work due at the start of event
// processing: frame timers and due wall-clock timers.
func (cx *Context) StartFrame() {
	cx.flushFrameTimers()
	cx.UpdateTimers()
}

// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"golang.org/x/exp/slices"

	"github.com/lattice-ui/lattice/f32"
	"github.com/lattice-ui/lattice/id"
	"github.com/lattice-ui/lattice/io/pointer"
)

// MaxPanGrabs is the number of presses a pan gesture aggregates. More
// presses may join the grab but do not contribute coordinates.
const MaxPanGrabs = 2

const noPan = -1

type mouseGrab struct {
	button      pointer.Buttons
	repetitions int
	startID     id.ID
	curID       id.ID
	depress     id.ID
	coord       f32.Point
	delta       f32.Point
	mode        pointer.GrabMode
	panIdx      int
	panPt       int
	cursor      pointer.Cursor
	hasCursor   bool
}

type mouseState struct {
	lastPos f32.Point
	grab    *mouseGrab

	// Double-click chain. Any cursor motion between clicks breaks
	// the chain.
	lastClickButton pointer.Buttons
	lastClickReps   int
	lastClickExpiry int64 // unix nanoseconds, zero when expired
}

type touchGrab struct {
	pointerID pointer.PointerID
	startID   id.ID
	curID     id.ID
	depress   id.ID
	startPos  f32.Point
	coord     f32.Point
	lastMove  f32.Point
	mode      pointer.GrabMode
	panIdx    int
	panPt     int
}

type touchState struct {
	grabs []touchGrab
}

func (t *touchState) get(pid pointer.PointerID) *touchGrab {
	for i := range t.grabs {
		if t.grabs[i].pointerID == pid {
			return &t.grabs[i]
		}
	}
	return nil
}

func (t *touchState) remove(pid pointer.PointerID) (touchGrab, bool) {
	for i := range t.grabs {
		if t.grabs[i].pointerID == pid {
			g := t.grabs[i]
			t.grabs = slices.Delete(t.grabs, i, i+1)
			return g, true
		}
	}
	return touchGrab{}, false
}

// A panGrab aggregates the motion of one or two presses into pan
// events, sent once per frame.
type panGrab struct {
	target    id.ID
	mode      pointer.GrabMode
	fromTouch bool
	n         int
	// coords[i][0] is the position at the last flush, coords[i][1]
	// the current position.
	coords [MaxPanGrabs][2]f32.Point
}

// setPanOn adds a press to the pan grab on target, creating the grab
// if needed. A grab never mixes mouse and touch presses.
func (s *State) setPanOn(target id.ID, mode pointer.GrabMode, fromTouch bool, coord f32.Point) (grab, point int) {
	for i := range s.pans {
		g := &s.pans[i]
		if g.target != target {
			continue
		}
		if g.fromTouch != fromTouch {
			s.removePan(i)
			break
		}
		point = g.n
		if point < MaxPanGrabs {
			g.coords[point] = [2]f32.Point{coord, coord}
		}
		g.n++
		return i, point
	}
	g := panGrab{target: target, mode: mode, fromTouch: fromTouch, n: 1}
	g.coords[0] = [2]f32.Point{coord, coord}
	s.pans = append(s.pans, g)
	return len(s.pans) - 1, 0
}

func (s *State) removePan(index int) {
	s.pans = slices.Delete(s.pans, index, index+1)
	if g := s.mouse.grab; g != nil && g.panIdx != noPan && g.panIdx >= index {
		g.panIdx--
	}
	for i := range s.touch.grabs {
		if g := &s.touch.grabs[i]; g.panIdx != noPan && g.panIdx >= index {
			g.panIdx--
		}
	}
}

// removePanGrab removes one press from a pan grab, removing the grab
// itself when its last press ends.
func (s *State) removePanGrab(grab, point int) {
	if grab < 0 || grab >= len(s.pans) {
		return
	}
	g := &s.pans[grab]
	if g.n == 0 {
		return
	}
	g.n--
	if g.n == 0 {
		s.removePan(grab)
		return
	}
	for i := point; i < MaxPanGrabs-1; i++ {
		g.coords[i] = g.coords[i+1]
	}
	for i := range s.touch.grabs {
		if t := &s.touch.grabs[i]; t.panIdx == grab && t.panPt > point {
			t.panPt--
		}
	}
}

// A Grab configures a press grab before it takes effect. Constructed
// by Context.Grab; call Complete to start the grab.
type Grab struct {
	cx        *Context
	target    id.ID
	press     pointer.Press
	mode      pointer.GrabMode
	cursor    pointer.Cursor
	hasCursor bool
}

// Grab begins construction of a press grab: future motion of the
// press is reported to the widget as PressMove or Pan events until
// PressEnd, regardless of the pointer position.
//
// Usually called when handling PressStart.
func (cx *Context) Grab(target id.ID, press pointer.Press) Grab {
	return Grab{cx: cx, target: target, press: press, mode: pointer.GrabClick}
}

// WithMode sets the grab mode. The default is GrabClick.
func (g Grab) WithMode(mode pointer.GrabMode) Grab {
	g.mode = mode
	return g
}

// WithCursor sets the cursor icon shown for the duration of the grab.
func (g Grab) WithCursor(cursor pointer.Cursor) Grab {
	g.cursor = cursor
	g.hasCursor = true
	return g
}

// Complete starts the grab. Returns false when the press is already
// grabbed.
func (g Grab) Complete() bool {
	cx := g.cx
	switch g.press.Source {
	case pointer.SourceMouse:
		if cx.mouse.grab != nil {
			return false
		}
		grab := &mouseGrab{
			button:      g.press.Button,
			repetitions: g.press.Repetitions,
			startID:     g.target,
			curID:       g.target,
			depress:     g.target,
			coord:       g.press.Position,
			mode:        g.mode,
			panIdx:      noPan,
			cursor:      g.cursor,
			hasCursor:   g.hasCursor,
		}
		if g.mode.IsPan() {
			grab.panIdx, grab.panPt = cx.setPanOn(g.target, g.mode, false, g.press.Position)
		}
		cx.mouse.grab = grab
		if g.hasCursor {
			cx.window.SetCursorIcon(g.cursor)
			cx.sentIcon = g.cursor
		}
	case pointer.SourceTouch:
		if cx.touch.get(g.press.PointerID) != nil {
			return false
		}
		grab := touchGrab{
			pointerID: g.press.PointerID,
			startID:   g.target,
			curID:     g.target,
			depress:   g.target,
			startPos:  g.press.Position,
			coord:     g.press.Position,
			lastMove:  g.press.Position,
			mode:      g.mode,
			panIdx:    noPan,
		}
		if g.mode.IsPan() {
			grab.panIdx, grab.panPt = cx.setPanOn(g.target, g.mode, true, g.press.Position)
		}
		cx.touch.grabs = append(cx.touch.grabs, grab)
	default:
		return false
	}
	cx.Redraw()
	return true
}

// removeMouseGrab ends the mouse grab. For non-pan grabs the grabbing
// widget receives PressEnd; pan grabs end silently.
func (cx *Context) removeMouseGrab(success bool) {
	g := cx.mouse.grab
	if g == nil {
		return
	}
	cx.mouse.grab = nil
	cx.updateCursorIcon()
	if g.depress.Valid() {
		cx.Redraw()
	}
	if g.panIdx != noPan {
		cx.removePanGrab(g.panIdx, g.panPt)
		return
	}
	cx.flushMouseMove(g)
	cx.sendEvent(g.startID, pointer.PressEnd{
		Press: pointer.Press{
			Source:      pointer.SourceMouse,
			Position:    cx.mouse.lastPos,
			Button:      g.button,
			Repetitions: g.repetitions,
		},
		Success: success,
	})
}

// flushMouseMove sends accumulated mouse grab motion as one PressMove.
func (cx *Context) flushMouseMove(g *mouseGrab) {
	if g.panIdx != noPan || g.delta == (f32.Point{}) {
		return
	}
	delta := g.delta
	g.delta = f32.Point{}
	cx.sendEvent(g.startID, pointer.PressMove{
		Press: pointer.Press{
			Source:      pointer.SourceMouse,
			Position:    g.coord,
			Button:      g.button,
			Repetitions: g.repetitions,
		},
		Delta: delta,
	})
}

func (cx *Context) flushMouseGrabMotion() {
	if g := cx.mouse.grab; g != nil {
		cx.flushMouseMove(g)
	}
}

// flushTouchMotion updates depress state for click grabs and sends
// accumulated motion for drag grabs.
func (cx *Context) flushTouchMotion() {
	for i := range cx.touch.grabs {
		g := &cx.touch.grabs[i]
		switch {
		case g.mode == pointer.GrabClick:
			depress := id.ID{}
			if g.curID == g.startID {
				depress = g.startID
			}
			if g.depress != depress {
				g.depress = depress
				cx.Redraw()
			}
		case g.mode == pointer.GrabDrag && g.coord != g.lastMove:
			delta := g.coord.Sub(g.lastMove)
			g.lastMove = g.coord
			cx.sendEvent(g.startID, pointer.PressMove{
				Press: pointer.Press{
					Source:    pointer.SourceTouch,
					PointerID: g.pointerID,
					Position:  g.coord,
				},
				Delta: delta,
			})
		}
	}
}

// flushPans aggregates pan grab motion into Pan events, one per grab
// per frame.
func (cx *Context) flushPans() {
	for i := range cx.pans {
		g := &cx.pans[i]
		n := min(g.n, MaxPanGrabs)
		if n == 0 {
			continue
		}
		alpha := complex64(complex(1, 0))
		var delta f32.Point
		p1, q1 := g.coords[0][0], g.coords[0][1]
		if n == 1 || g.mode == pointer.PanTranslate {
			delta = q1.Sub(p1)
		} else {
			p2, q2 := g.coords[1][0], g.coords[1][1]
			pd := p2.Sub(p1).Complex()
			qd := q2.Sub(q1).Complex()
			if pd != 0 {
				switch g.mode {
				case pointer.PanFull:
					alpha = qd / pd
				case pointer.PanScale:
					ql, pl := q2.Sub(q1).Length(), p2.Sub(p1).Length()
					alpha = complex(ql/pl, 0)
				case pointer.PanRotate:
					if a := qd / pd; a != 0 {
						l := f32.PointFromComplex(a).Length()
						alpha = complex(real(a)/l, imag(a)/l)
					}
				}
			}
			// Mean of the per-press translations, with the scale
			// and rotation factored out.
			t1 := q1.Sub(mulComplex(alpha, p1))
			t2 := q2.Sub(mulComplex(alpha, p2))
			delta = t1.Add(t2).Mul(0.5)
		}
		for j := 0; j < n; j++ {
			g.coords[j][0] = g.coords[j][1]
		}
		if alpha != complex(1, 0) || delta != (f32.Point{}) {
			cx.sendEvent(g.target, pointer.Pan{Alpha: alpha, Delta: delta})
		}
	}
}

func mulComplex(a complex64, p f32.Point) f32.Point {
	return f32.PointFromComplex(a * p.Complex())
}

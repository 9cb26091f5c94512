// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures reduce low level press events to higher level actions such
as clicks and kinetic scrolling. Widgets own a gesture value and feed
it the events they receive.
*/
package gesture

import (
	"math"
	"time"

	"github.com/lattice-ui/lattice/f32"
	"github.com/lattice-ui/lattice/id"
	"github.com/lattice-ui/lattice/internal/fling"
	"github.com/lattice-ui/lattice/io/input"
	"github.com/lattice-ui/lattice/io/pointer"
)

// Click detects click gestures from press events.
type Click struct {
	state   ClickState
	source  pointer.Source
	pointer pointer.PointerID
}

type ClickState uint8

const (
	// StateNormal is the default click state.
	StateNormal ClickState = iota
	// StatePressed is the state while a press is held.
	StatePressed
)

// State reports the click state.
func (c *Click) State() ClickState {
	return c.state
}

// PressStart starts tracking a press. It grabs the press for the
// widget and reports whether the grab succeeded.
func (c *Click) PressStart(cx *input.Context, target id.ID, ev pointer.PressStart) bool {
	if c.state == StatePressed {
		return false
	}
	if !cx.Grab(target, ev.Press).Complete() {
		return false
	}
	c.state = StatePressed
	c.source = ev.Source
	c.pointer = ev.PointerID
	return true
}

// PressEnd finishes the gesture. It reports a completed click when
// the press ended successfully within the widget's area.
func (c *Click) PressEnd(ev pointer.PressEnd, rect f32.Rectangle) (clicked bool) {
	if c.state != StatePressed || ev.Source != c.source || ev.PointerID != c.pointer {
		return false
	}
	c.state = StateNormal
	return ev.Success && rect.Contains(ev.Position)
}

// Cancel resets the gesture.
func (c *Click) Cancel() {
	c.state = StateNormal
}

// Kinetic models scrolling with inertia: drags track the press
// directly and impart a velocity on release, which then decays over
// the following frames.
//
// The owning widget feeds presses in via PressStart, PressMove and
// PressEnd, requests a frame timer while IsActive, and applies the
// offsets returned by Step.
type Kinetic struct {
	x, y  fling.Extrapolation
	epoch time.Time

	vel      f32.Point
	rest     f32.Point
	last     time.Time
	lastMove time.Time
	grabbed  bool
}

// IsActive reports whether gliding is in progress.
func (k *Kinetic) IsActive() bool {
	return k.vel != f32.Point{}
}

func (k *Kinetic) sample(t time.Time, pos f32.Point) {
	if k.epoch.IsZero() {
		k.epoch = t
	}
	d := t.Sub(k.epoch)
	k.x.Sample(d, pos.X)
	k.y.Sample(d, pos.Y)
	k.lastMove = t
}

// PressStart starts velocity tracking for a drag. An active glide
// continues, slowed by the grab decay, until Stop.
func (k *Kinetic) PressStart(t time.Time, pos f32.Point) {
	k.x.Reset()
	k.y.Reset()
	k.sample(t, pos)
	k.grabbed = true
}

// PressMove records drag motion and returns the offset to scroll by.
func (k *Kinetic) PressMove(t time.Time, pos f32.Point, delta f32.Point) f32.Point {
	k.sample(t, pos)
	return delta
}

// PressEnd finishes a drag. When the press was still moving within
// timeout of release, its velocity carries over into a glide.
func (k *Kinetic) PressEnd(t time.Time, timeout time.Duration) (glide bool) {
	k.grabbed = false
	if t.Sub(k.lastMove) > timeout {
		return false
	}
	vel := f32.Point{
		X: k.x.Estimate().Velocity,
		Y: k.y.Estimate().Velocity,
	}
	if vel == (f32.Point{}) {
		return false
	}
	k.vel = k.vel.Add(vel)
	k.last = t
	k.rest = f32.Point{}
	return true
}

// Start begins a glide from handed-over velocity, for scroll regions
// receiving a ScrollKinetic action from a descendant.
func (k *Kinetic) Start(t time.Time, start input.KineticStart) {
	k.vel = k.vel.Add(start.Vel)
	k.rest = k.rest.Add(start.Rest)
	k.last = t
}

// Step advances the glide to time t under the configured decay and
// returns the whole-pixel offset to scroll by. Gliding stops when the
// velocity decays to zero.
func (k *Kinetic) Step(t time.Time, cfg *input.WindowConfig) f32.Point {
	if !k.IsActive() {
		return f32.Point{}
	}
	dur := float32(t.Sub(k.last).Seconds())
	if dur <= 0 {
		return f32.Point{}
	}
	k.last = t

	mul, sub := cfg.KineticDecay()
	if k.grabbed {
		// A held press slows gliding much faster.
		sub += cfg.KineticGrabSub()
	}
	vel := k.vel.Mul(float32(math.Pow(float64(mul), float64(dur))))
	vel.X = decaySub(vel.X, sub*dur)
	vel.Y = decaySub(vel.Y, sub*dur)
	k.vel = vel

	move := k.rest.Add(vel.Mul(dur))
	offset := f32.Point{
		X: float32(math.Trunc(float64(move.X))),
		Y: float32(math.Trunc(float64(move.Y))),
	}
	k.rest = move.Sub(offset)
	return offset
}

// StopWithResidual stops gliding, for example when the region hit its
// scroll limit, and returns a start value which transfers half of the
// remaining velocity to an enclosing region.
func (k *Kinetic) StopWithResidual() input.KineticStart {
	start := input.KineticStart{Vel: k.vel.Mul(0.5), Rest: k.rest}
	k.vel = f32.Point{}
	k.rest = f32.Point{}
	return start
}

// Stop halts gliding immediately.
func (k *Kinetic) Stop() {
	k.vel = f32.Point{}
	k.rest = f32.Point{}
}

func decaySub(v, sub float32) float32 {
	switch {
	case v > sub:
		return v - sub
	case v < -sub:
		return v + sub
	default:
		return 0
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

// Package message implements type-erased messages and the message
// stack used to pass values from child widgets to their ancestors.
package message

import (
	"fmt"
	"log"
)

// Erased is a type-erased message value. The zero value is empty.
type Erased struct {
	value any
	fmt   string
}

// New wraps a value for the message stack. The value's formatted form
// is captured for diagnostics.
func New(v any) Erased {
	return Erased{
		value: v,
		fmt:   fmt.Sprintf("%T(%+v)", v, v),
	}
}

// IsEmpty reports whether e holds no value.
func (e Erased) IsEmpty() bool {
	return e.value == nil
}

// Value returns the wrapped value.
func (e Erased) Value() any {
	return e.value
}

func (e Erased) String() string {
	return e.fmt
}

// Is reports whether the wrapped value has type T.
func Is[T any](e Erased) bool {
	_, ok := e.value.(T)
	return ok
}

// Cast returns the wrapped value if it has type T.
func Cast[T any](e Erased) (T, bool) {
	v, ok := e.value.(T)
	return v, ok
}

// Stack is a LIFO of erased messages.
//
// A base watermark sandboxes traversals: messages below the base are
// invisible to HasAny, Pop and Observe, so one stack serves several
// widget tree traversals without leaking messages between them.
type Stack struct {
	base    int
	opCount int
	stack   []Erased
}

// SetBase sets the watermark to the current length. Messages pushed
// earlier cannot be observed or removed until the base is reset.
func (s *Stack) SetBase() {
	s.base = len(s.stack)
}

// Reset clears the watermark and reports whether any messages remain
// on the stack.
func (s *Stack) Reset() bool {
	s.base = 0
	return len(s.stack) > 0
}

// HasAny reports whether messages are available above the base.
func (s *Stack) HasAny() bool {
	return len(s.stack) > s.base
}

// Push pushes a message. Prefer typed values over strings: handlers
// match messages by type.
func (s *Stack) Push(m Erased) {
	if m.IsEmpty() {
		return
	}
	s.opCount++
	s.stack = append(s.stack, m)
}

// OpCount counts stack operations. It never decreases; comparing
// counts detects whether any push or pop happened in between.
func (s *Stack) OpCount() int {
	return s.opCount
}

// Pop removes and returns the top message if it has type T.
func Pop[T any](s *Stack) (T, bool) {
	var zero T
	if !s.HasAny() {
		return zero, false
	}
	top := s.stack[len(s.stack)-1]
	v, ok := top.value.(T)
	if !ok {
		return zero, false
	}
	s.opCount++
	s.stack = s.stack[:len(s.stack)-1]
	return v, true
}

// Observe returns the top message without removing it, if it has
// type T.
func Observe[T any](s *Stack) (T, bool) {
	var zero T
	if !s.HasAny() {
		return zero, false
	}
	v, ok := s.stack[len(s.stack)-1].value.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// PopErased removes and returns the top message regardless of type.
func (s *Stack) PopErased() (Erased, bool) {
	if !s.HasAny() {
		return Erased{}, false
	}
	s.opCount++
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top, true
}

// Drain removes all messages, including those below the base, logging
// a warning for each one not matched by the quiet predicate. It is
// called at teardown; an unhandled message usually indicates a missing
// handler.
func (s *Stack) Drain(quiet func(Erased) bool) {
	for _, m := range s.stack {
		if quiet != nil && quiet(m) {
			continue
		}
		log.Printf("message: unhandled: %s", m)
	}
	s.base = 0
	s.stack = s.stack[:0]
}

// SPDX-License-Identifier: Unlicense OR MIT

/*
Package id implements structural widget identifiers.

An ID names a widget by its path from the window root: a sequence of
child indices. Identity is therefore positional; a widget re-created at
the same position has the same ID. IDs are cheap to copy, comparable
with == and usable as map keys.

The path is stored as a byte string: a leading marker byte followed by
each component in little-endian base-128 varint form. Because every
component encoding is self-delimiting, one valid ID's bytes are a
prefix of another's exactly when the first is an ancestor of (or equal
to) the second.
*/
package id

import (
	"strings"
)

// marker distinguishes the root ID from the invalid zero value.
const marker = "\x01"

// ID identifies a widget by its path from the window root.
//
// The zero value is invalid. All operations except Valid and comparison
// panic when called on an invalid ID.
type ID struct {
	p string
}

// Root is the identifier of a window's root widget.
var Root = ID{p: marker}

// Valid reports whether the ID names a widget path.
func (i ID) Valid() bool {
	return i.p != ""
}

// IsRoot reports whether the ID is the window root.
func (i ID) IsRoot() bool {
	return i.p == marker
}

func (i ID) check() {
	if !i.Valid() {
		panic("id: use of invalid ID")
	}
}

// MakeChild returns the ID of the receiver's child with the given index.
func (i ID) MakeChild(index uint) ID {
	i.check()
	var buf [10]byte
	n := 0
	for index >= 0x80 {
		buf[n] = byte(index) | 0x80
		index >>= 7
		n++
	}
	buf[n] = byte(index)
	return ID{p: i.p + string(buf[:n+1])}
}

// IsAncestorOf reports whether other is the receiver or one of its
// descendants.
func (i ID) IsAncestorOf(other ID) bool {
	i.check()
	other.check()
	return strings.HasPrefix(other.p, i.p)
}

// CommonAncestor returns the nearest ID which is an ancestor of both the
// receiver and other. The result is always valid since Root is an
// ancestor of every ID.
func (i ID) CommonAncestor(other ID) ID {
	i.check()
	other.check()
	a, b := i.p, other.p
	if len(b) < len(a) {
		a, b = b, a
	}
	// Advance through whole components while they match.
	end := len(marker)
	for pos := end; pos < len(a); {
		next := pos + varintLen(a[pos:])
		if a[pos:next] != b[pos:next] {
			break
		}
		pos = next
		end = pos
	}
	return ID{p: a[:end]}
}

// Path returns the decoded sequence of child indices from the root.
func (i ID) Path() []uint {
	i.check()
	var path []uint
	for p := i.p[len(marker):]; len(p) > 0; {
		v, n := varint(p)
		path = append(path, v)
		p = p[n:]
	}
	return path
}

// ChildIndexAfter returns the path component which continues the path
// from ancestor towards the receiver. It returns ok == false if
// ancestor is not a proper ancestor of the receiver.
func (i ID) ChildIndexAfter(ancestor ID) (index uint, ok bool) {
	i.check()
	ancestor.check()
	if len(ancestor.p) >= len(i.p) || !strings.HasPrefix(i.p, ancestor.p) {
		return 0, false
	}
	v, _ := varint(i.p[len(ancestor.p):])
	return v, true
}

// String formats the path for diagnostics, e.g. "#0/2/5". The invalid
// ID formats as "#INVALID".
func (i ID) String() string {
	if !i.Valid() {
		return "#INVALID"
	}
	var b strings.Builder
	b.WriteByte('#')
	if i.IsRoot() {
		return b.String()
	}
	first := true
	for p := i.p[len(marker):]; len(p) > 0; {
		v, n := varint(p)
		if !first {
			b.WriteByte('/')
		}
		first = false
		writeUint(&b, v)
		p = p[n:]
	}
	return b.String()
}

// Compare orders IDs lexicographically by path bytes. An ancestor
// always sorts before its descendants. Either argument may be invalid;
// the invalid ID sorts first.
func Compare(a, b ID) int {
	return strings.Compare(a.p, b.p)
}

func varint(p string) (v uint, n int) {
	var shift uint
	for {
		c := p[n]
		n++
		v |= uint(c&0x7f) << shift
		if c < 0x80 {
			return v, n
		}
		shift += 7
	}
}

func varintLen(p string) int {
	n := 1
	for p[n-1] >= 0x80 {
		n++
	}
	return n
}

func writeUint(b *strings.Builder, v uint) {
	if v >= 10 {
		writeUint(b, v/10)
	}
	b.WriteByte('0' + byte(v%10))
}

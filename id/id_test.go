// SPDX-License-Identifier: Unlicense OR MIT

package id

import (
	"testing"
)

func TestValid(t *testing.T) {
	var zero ID
	if zero.Valid() {
		t.Error("zero ID is valid")
	}
	if !Root.Valid() {
		t.Error("Root is invalid")
	}
	if !Root.IsRoot() {
		t.Error("Root is not root")
	}
	if Root.MakeChild(0).IsRoot() {
		t.Error("child of Root is root")
	}
}

func TestMakeChildPath(t *testing.T) {
	for _, path := range [][]uint{
		{},
		{0},
		{1, 2, 3},
		{0, 127, 128, 16383, 16384, 1 << 30},
	} {
		id := Root
		for _, idx := range path {
			id = id.MakeChild(idx)
		}
		got := id.Path()
		if len(got) != len(path) {
			t.Fatalf("Path() = %v, want %v", got, path)
		}
		for i := range path {
			if got[i] != path[i] {
				t.Fatalf("Path() = %v, want %v", got, path)
			}
		}
	}
}

func TestIsAncestorOf(t *testing.T) {
	a := Root.MakeChild(1)
	b := a.MakeChild(300)
	c := b.MakeChild(2)
	for _, tc := range []struct {
		anc, desc ID
		want      bool
	}{
		{Root, Root, true},
		{Root, c, true},
		{a, a, true},
		{a, b, true},
		{a, c, true},
		{b, a, false},
		{Root.MakeChild(2), b, false},
	} {
		if got := tc.anc.IsAncestorOf(tc.desc); got != tc.want {
			t.Errorf("%v.IsAncestorOf(%v) = %v, want %v", tc.anc, tc.desc, got, tc.want)
		}
	}
}

func TestCommonAncestor(t *testing.T) {
	a := Root.MakeChild(1).MakeChild(2)
	b := a.MakeChild(3).MakeChild(4)
	c := a.MakeChild(5)
	for _, tc := range []struct {
		x, y, want ID
	}{
		{b, c, a},
		{c, b, a},
		{b, b, b},
		{a, b, a},
		{Root.MakeChild(1), Root.MakeChild(2), Root},
		{Root, b, Root},
	} {
		if got := tc.x.CommonAncestor(tc.y); got != tc.want {
			t.Errorf("%v.CommonAncestor(%v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestCommonAncestorVarintBoundary(t *testing.T) {
	// 128 and 256 share their first encoded byte; the common ancestor
	// must not split a component.
	a := Root.MakeChild(128)
	b := Root.MakeChild(256)
	if got := a.CommonAncestor(b); got != Root {
		t.Errorf("CommonAncestor = %v, want root", got)
	}
}

func TestChildIndexAfter(t *testing.T) {
	a := Root.MakeChild(7)
	b := a.MakeChild(200)
	c := b.MakeChild(3)
	if idx, ok := c.ChildIndexAfter(a); !ok || idx != 200 {
		t.Errorf("ChildIndexAfter(a) = %d, %v; want 200, true", idx, ok)
	}
	if idx, ok := c.ChildIndexAfter(b); !ok || idx != 3 {
		t.Errorf("ChildIndexAfter(b) = %d, %v; want 3, true", idx, ok)
	}
	if idx, ok := c.ChildIndexAfter(Root); !ok || idx != 7 {
		t.Errorf("ChildIndexAfter(Root) = %d, %v; want 7, true", idx, ok)
	}
	if _, ok := c.ChildIndexAfter(c); ok {
		t.Error("ChildIndexAfter(self) succeeded")
	}
	if _, ok := a.ChildIndexAfter(b); ok {
		t.Error("ChildIndexAfter(descendant) succeeded")
	}
	if _, ok := c.ChildIndexAfter(Root.MakeChild(8)); ok {
		t.Error("ChildIndexAfter(non-ancestor) succeeded")
	}
}

func TestString(t *testing.T) {
	for _, tc := range []struct {
		id   ID
		want string
	}{
		{ID{}, "#INVALID"},
		{Root, "#"},
		{Root.MakeChild(0), "#0"},
		{Root.MakeChild(1).MakeChild(23).MakeChild(456), "#1/23/456"},
	} {
		if got := tc.id.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestCompare(t *testing.T) {
	a := Root.MakeChild(1)
	b := a.MakeChild(0)
	if Compare(a, b) >= 0 {
		t.Error("ancestor does not sort before descendant")
	}
	if Compare(b, b) != 0 {
		t.Error("Compare(b, b) != 0")
	}
	if Compare(ID{}, Root) >= 0 {
		t.Error("invalid does not sort first")
	}
}

func TestInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MakeChild on invalid ID did not panic")
		}
	}()
	var zero ID
	zero.MakeChild(0)
}

// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"math"
	"testing"
)

func TestComplexRoundTrip(t *testing.T) {
	p := Point{X: 3, Y: -4}
	if got := PointFromComplex(p.Complex()); got != p {
		t.Errorf("round trip = %v, want %v", got, p)
	}
}

func TestComplexRotation(t *testing.T) {
	// Multiplying by i rotates a quarter turn.
	p := PointFromComplex(Point{X: 1, Y: 0}.Complex() * complex(0, 1))
	if math.Abs(float64(p.X)) > 1e-6 || math.Abs(float64(p.Y-1)) > 1e-6 {
		t.Errorf("rotation = %v, want (0, 1)", p)
	}
}

func TestNorms(t *testing.T) {
	p := Point{X: -3, Y: 4}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.LInf(); got != 4 {
		t.Errorf("LInf = %v, want 4", got)
	}
}

func TestRectangle(t *testing.T) {
	r := Rectangle{Min: Point{0, 0}, Max: Point{10, 5}}
	if !r.Contains(Point{9, 4}) || r.Contains(Point{10, 4}) {
		t.Error("Contains is not half-open")
	}
	if r.Empty() {
		t.Error("non-empty rect reported empty")
	}
	moved := r.Add(Point{X: 2, Y: 3})
	if moved.Min != (Point{2, 3}) || moved.Max != (Point{12, 8}) {
		t.Errorf("Add = %v", moved)
	}
}

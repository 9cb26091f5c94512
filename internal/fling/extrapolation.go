// SPDX-License-Identifier: Unlicense OR MIT

// Package fling estimates pointer velocity from recent position
// samples, for handing a drag off to kinetic scrolling.
package fling

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Extrapolation fits a curve to recent position samples on one axis.
// The zero value is ready for use.
type Extrapolation struct {
	// samples in reverse chronological order.
	samples []sample
	lastT   time.Duration
	lastPos float32
}

type sample struct {
	t time.Duration
	v float32
}

type coefficients []float32

type matrix struct {
	rows, cols int
	data       []float32
}

// Estimate is the estimated velocity at the newest sample.
type Estimate struct {
	// Velocity in units per second.
	Velocity float32
	// Distance the fling would come to rest after, in units.
	Distance float32
}

const (
	// maxAge of samples to consider for the fit.
	maxAge = 100 * time.Millisecond
	// maxSamples to consider for the fit.
	maxSamples = 20
	// minVelocity for a fling to start, units per second.
	minVelocity = 100
)

// SampleDelta adds a position change at time t.
func (e *Extrapolation) SampleDelta(t time.Duration, delta float32) {
	val := delta + e.lastPos
	e.Sample(t, val)
}

// Sample adds an absolute position at time t. Samples must arrive in
// chronological order.
func (e *Extrapolation) Sample(t time.Duration, pos float32) {
	e.lastT = t
	e.lastPos = pos
	// Keep samples newest first.
	e.samples = append(e.samples, sample{})
	copy(e.samples[1:], e.samples)
	e.samples[0] = sample{t: t, v: pos}
	for len(e.samples) > maxSamples || t-e.samples[len(e.samples)-1].t > maxAge {
		e.samples = e.samples[:len(e.samples)-1]
	}
}

// Reset discards all samples.
func (e *Extrapolation) Reset() {
	e.samples = e.samples[:0]
	e.lastT = 0
	e.lastPos = 0
}

// Estimate fits a quadratic to the recent samples and evaluates its
// derivative at the newest sample. It returns the zero Estimate when
// there is not enough recent data or the motion is too slow to fling.
func (e *Extrapolation) Estimate() Estimate {
	if len(e.samples) < 3 {
		return Estimate{}
	}
	X := make([]float32, 0, len(e.samples))
	Y := make([]float32, 0, len(e.samples))
	for _, s := range e.samples {
		// Offset relative to the newest sample, in seconds.
		X = append(X, float32((s.t-e.lastT).Seconds()))
		Y = append(Y, s.v-e.lastPos)
	}
	coef, ok := polyFit(X, Y)
	if !ok {
		return Estimate{}
	}
	// Derivative of a0 + a1*x + a2*x^2 at x = 0.
	v := coef[1]
	if v > -minVelocity && v < minVelocity {
		return Estimate{}
	}
	return Estimate{
		Velocity: v,
		Distance: v * v / (2 * flingDeceleration) * sign(v),
	}
}

const flingDeceleration = 5000

func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

// polyFit computes the least squares fit of a degree 2 polynomial to
// the points (X, Y). It reports failure when the points do not
// determine a unique polynomial.
func polyFit(X, Y []float32) (coefficients, bool) {
	if len(X) != len(Y) || len(X) < 3 {
		return nil, false
	}
	// Vandermonde matrix with columns 1, x, x².
	V := newMatrix(len(X), 3)
	for i, x := range X {
		V.set(i, 0, 1)
		V.set(i, 1, x)
		V.set(i, 2, x*x)
	}
	Q, Rt, ok := decomposeQR(V)
	if !ok {
		return nil, false
	}
	// Solve R*coef = Qt*Y by back substitution, using Rt in place
	// of R.
	qty := make(coefficients, Q.cols)
	for j := 0; j < Q.cols; j++ {
		var dot float32
		for i := 0; i < Q.rows; i++ {
			dot += Q.get(i, j) * Y[i]
		}
		qty[j] = dot
	}
	coef := make(coefficients, Q.cols)
	for i := len(coef) - 1; i >= 0; i-- {
		v := qty[i]
		for j := i + 1; j < len(coef); j++ {
			v -= coef[j] * Rt.get(j, i)
		}
		coef[i] = v / Rt.get(i, i)
	}
	return coef, true
}

// decomposeQR computes the thin QR factorization of A with modified
// Gram-Schmidt: Q has orthonormal columns and R is upper triangular.
// The transpose of R is returned. It reports failure when A is rank
// deficient.
func decomposeQR(A *matrix) (Q, Rt *matrix, ok bool) {
	Q = newMatrix(A.rows, A.cols)
	Rt = newMatrix(A.cols, A.cols)
	for j := 0; j < A.cols; j++ {
		v := make([]float32, A.rows)
		for i := range v {
			v[i] = A.get(i, j)
		}
		for k := 0; k < j; k++ {
			var dot float32
			for i := range v {
				dot += Q.get(i, k) * v[i]
			}
			Rt.set(j, k, dot)
			for i := range v {
				v[i] -= dot * Q.get(i, k)
			}
		}
		var norm float64
		for _, x := range v {
			norm += float64(x) * float64(x)
		}
		n := float32(math.Sqrt(norm))
		if n == 0 {
			return nil, nil, false
		}
		Rt.set(j, j, n)
		for i := range v {
			Q.set(i, j, v[i]/n)
		}
	}
	return Q, Rt, true
}

func newMatrix(rows, cols int) *matrix {
	return &matrix{
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
	}
}

// Elements are stored column major.

func (m *matrix) get(i, j int) float32 {
	return m.data[j*m.rows+i]
}

func (m *matrix) set(i, j int, v float32) {
	m.data[j*m.rows+i] = v
}

func (m *matrix) transpose() *matrix {
	t := newMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			t.set(j, i, m.get(i, j))
		}
	}
	return t
}

func (m *matrix) mul(m2 *matrix) *matrix {
	r := newMatrix(m.rows, m2.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m2.cols; j++ {
			var v float32
			for k := 0; k < m.cols; k++ {
				v += m.get(i, k) * m2.get(k, j)
			}
			r.set(i, j, v)
		}
	}
	return r
}

func (m *matrix) approxEqual(m2 *matrix) bool {
	if m.rows != m2.rows || m.cols != m2.cols {
		return false
	}
	for i, v := range m.data {
		if d := v - m2.data[i]; d < -1e-3 || d > 1e-3 {
			return false
		}
	}
	return true
}

func (m *matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			b.WriteString(strconv.FormatFloat(float64(m.get(i, j)), 'g', 4, 32))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (c coefficients) approxEqual(c2 coefficients) bool {
	if len(c) != len(c2) {
		return false
	}
	for i, v := range c {
		if d := v - c2[i]; d < -1e-3 || d > 1e-3 {
			return false
		}
	}
	return true
}

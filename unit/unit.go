// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

To maintain a constant visual size across platforms and displays,
always use dps to define user interfaces. Only use pixels for derived
values.
*/
package unit

import "math"

// Dp is a length in device independent pixels. 1 dp has the same
// apparent size across platforms and display resolutions.
type Dp float32

// Metric converts device independent lengths to pixels for one window.
type Metric struct {
	// PxPerDp is the device-dependent size of one dp.
	PxPerDp float32
}

// Px converts a dp length to pixels, rounding to the nearest integer.
func (c Metric) Px(v Dp) int {
	s := c.PxPerDp
	if s == 0 {
		s = 1
	}
	return int(math.Round(float64(s) * float64(v)))
}

// PxF32 converts a dp length to fractional pixels.
func (c Metric) PxF32(v Dp) float32 {
	s := c.PxPerDp
	if s == 0 {
		s = 1
	}
	return s * float32(v)
}

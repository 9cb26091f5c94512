// SPDX-License-Identifier: Unlicense OR MIT

package unit

import "testing"

func TestMetric(t *testing.T) {
	m := Metric{PxPerDp: 2.5}
	if got := m.Px(2); got != 5 {
		t.Errorf("Px(2) = %d, want 5", got)
	}
	if got := m.Px(1); got != 3 {
		t.Errorf("Px(1) = %d, want 3", got)
	}
	if got := m.PxF32(1); got != 2.5 {
		t.Errorf("PxF32(1) = %v, want 2.5", got)
	}
}

func TestMetricZero(t *testing.T) {
	var m Metric
	if got := m.Px(7); got != 7 {
		t.Errorf("Px(7) = %d, want 7 with zero Metric", got)
	}
}

// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"testing"
)

func TestCubicEnds(t *testing.T) {
	if v := Cubic(2, 5, -3, 7, 0); v != 2 {
		t.Errorf("Cubic(t=0) = %v", v)
	}
	if v := Cubic(2, 5, -3, 7, 1); v != 7 {
		t.Errorf("Cubic(t=1) = %v", v)
	}
}

func TestCubicLinear(t *testing.T) {
	// tangents equal to the chord give a straight line
	for _, u := range []float32{0.25, 0.5, 0.75} {
		want := 10 * u
		if v := Cubic(0, 10, 10, 10, u); v-want > 1e-5 || want-v > 1e-5 {
			t.Errorf("Cubic(0,10,10,10,%v) = %v want %v", u, v, want)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		t, from, to, want float32
	}{
		{5, 0, 10, 5},
		{15, 0, 10, 5},
		{-5, 0, 10, 5},
		{25, 10, 20, 15},
		{3, 4, 4, 4},
	}
	for _, tc := range tests {
		if got := Wrap(tc.t, tc.from, tc.to); got != tc.want {
			t.Errorf("Wrap(%v,%v,%v) = %v want %v", tc.t, tc.from, tc.to, got, tc.want)
		}
	}
}

func TestSignificant(t *testing.T) {
	if Significant(1e-8) {
		t.Errorf("Significant(1e-8) = true")
	}
	if !Significant(-1e-3) {
		t.Errorf("Significant(-1e-3) = false")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		min, val, max, want float32
	}{
		{1, 0, 10, 1},
		{1, 100, 10, 10},
		{1, 5, 10, 5},
		{0, 255.5, 255, 255},
	}
	for _, tc := range tests {
		if got := Clamp(tc.min, tc.val, tc.max); got != tc.want {
			t.Errorf("Clamp(%v,%v,%v) = %v", tc.min, tc.val, tc.max, got)
		}
	}
	if got := Clamp[int16](-3, 7, 4); got != 4 {
		t.Errorf("Clamp[int16](-3,7,4) = %v", got)
	}
}

// SPDX-License-Identifier: GPL-2.0-or-later

package math

import (
	"github.com/chewxy/math32"
)

const (
	Pi    = math32.Pi
	TwoPi = 2 * math32.Pi
	// Epsilon is the magnitude below which a stored float counts as unset.
	Epsilon = 1e-8
)

// Number are the types Clamp accepts.
type Number interface {
	~int | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~float32 | ~float64
}

// Clamp limits val to [min,max].
func Clamp[K Number](min, val, max K) K {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Significant reports whether |x| is above Epsilon.
func Significant(x float32) bool {
	return math32.Abs(x) > Epsilon
}

// Cubic evaluates the hermite curve through a and b with the tangents p and q
// at t in [0,1].
func Cubic(a, p, q, b, t float32) float32 {
	t2 := t * t
	t3 := t2 * t
	x := 2*t3 - 3*t2 + 1
	y := -2*t3 + 3*t2
	z := t3 - 2*t2 + t
	w := t3 - t2
	return x*a + y*b + z*p + w*q
}

// Wrap maps t into [from,to). Empty ranges return from.
func Wrap(t, from, to float32) float32 {
	l := to - from
	if l <= 0 {
		return from
	}
	r := math32.Mod(t-from, l)
	if r < 0 {
		r += l
	}
	return from + r
}

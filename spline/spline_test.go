// SPDX-License-Identifier: GPL-2.0-or-later

package spline

import (
	"testing"

	"github.com/chewxy/math32"
)

const e = 1e-5

func eq(a, b float32) bool {
	return math32.Abs(a-b) <= e
}

var easeParams = []struct {
	from, to float32
}{
	{0, 0},
	{0.5, 0},
	{0, 0.5},
	{0.3, 0.3},
	{0.9, 0.8},
	{1, 0},
	{0, 1},
	{1, 1},
}

func TestEaseBoundaries(t *testing.T) {
	for _, tc := range easeParams {
		if s := Ease(0, 0, 10, tc.from, tc.to); !eq(s, 0) {
			t.Errorf("Ease(s=0, from=%v, to=%v) = %v", tc.from, tc.to, s)
		}
		if s := Ease(0, 10, 10, tc.from, tc.to); !eq(s, 1) {
			t.Errorf("Ease(s=1, from=%v, to=%v) = %v", tc.from, tc.to, s)
		}
	}
}

func TestEaseIdentity(t *testing.T) {
	for i := 0; i <= 20; i++ {
		fc := float32(i) / 2
		if s := Ease(0, fc, 10, 0, 0); s != fc/10 {
			t.Errorf("Ease(0,%v,10,0,0) = %v", fc, s)
		}
	}
}

func TestEaseMonotonic(t *testing.T) {
	for _, tc := range easeParams {
		prev := float32(-1)
		for i := 0; i <= 100; i++ {
			s := Ease(0, float32(i), 100, tc.from, tc.to)
			if s < prev-e {
				t.Errorf("Ease(from=%v, to=%v) not monotonic at %d: %v < %v", tc.from, tc.to, i, s, prev)
			}
			prev = s
		}
	}
}

func TestEaseSlowStart(t *testing.T) {
	if s := Ease(0, 1, 10, 0.5, 0); s >= 0.1 {
		t.Errorf("ease from should slow down the start, got %v", s)
	}
	if s := Ease(0, 9, 10, 0, 0.5); s <= 0.9 {
		t.Errorf("ease to should slow down the end, got %v", s)
	}
}

func TestWeightsCatmullRom(t *testing.T) {
	p := &Key{Frame: 0}
	c := &Key{Frame: 10}
	n := &Key{Frame: 20}
	ksm, ksp, kdm, kdp := Weights(p, nil, c, nil, n)
	for i, v := range []float32{ksm, ksp, kdm, kdp} {
		if !eq(v, 0.5) {
			t.Errorf("weight %d = %v want 0.5", i, v)
		}
	}
}

func TestWeightsTension(t *testing.T) {
	c := &Key{Frame: 10, Tens: 1}
	ksm, ksp, kdm, kdp := Weights(&Key{Frame: 0}, nil, c, nil, &Key{Frame: 20})
	if ksm != 0 || ksp != 0 || kdm != 0 || kdp != 0 {
		t.Errorf("full tension weights = %v %v %v %v", ksm, ksp, kdm, kdp)
	}
}

func TestWeightsSpacing(t *testing.T) {
	// a short incoming and long outgoing segment scale the tangents apart
	c := &Key{Frame: 10}
	ksm, _, kdm, _ := Weights(&Key{Frame: 8}, nil, c, nil, &Key{Frame: 30})
	if !(ksm < 0.5 && kdm > 0.5) {
		t.Errorf("uneven spacing weights ksm=%v kdm=%v", ksm, kdm)
	}
	// full continuity removes the spacing correction
	c.Cont = 1
	ksm, ksp, kdm, kdp := Weights(&Key{Frame: 8}, nil, c, nil, &Key{Frame: 30})
	if !eq(ksm, 0) || !eq(ksp, 1) || !eq(kdm, 1) || !eq(kdp, 0) {
		t.Errorf("continuity 1 weights = %v %v %v %v", ksm, ksp, kdm, kdp)
	}
}

func TestUpdateFlags(t *testing.T) {
	k := Key{Tens: 0.5, EaseFrom: 0.1}
	k.UpdateFlags()
	if k.Flags != USE_TENSION|USE_EASE_FROM {
		t.Errorf("flags = %x", k.Flags)
	}
}

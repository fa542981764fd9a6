// SPDX-License-Identifier: GPL-2.0-or-later

// Package spline holds the Kochanek-Bartels (TCB) weights and the ease
// remapping used by keyframe tracks.
package spline

import (
	"github.com/chewxy/math32"
)

// TCB key flags
const (
	USE_TENSION    = 0x0001
	USE_CONTINUITY = 0x0002
	USE_BIAS       = 0x0004
	USE_EASE_TO    = 0x0008
	USE_EASE_FROM  = 0x0010
)

// Key is the spline part of a keyframe.
type Key struct {
	Frame    int32
	Flags    uint16
	Tens     float32
	Cont     float32
	Bias     float32
	EaseTo   float32
	EaseFrom float32
}

// Ease remaps the position of fc between fp and fn. easeFrom slows the start
// of the segment, easeTo its end. With both zero the linear fraction is
// returned.
func Ease(fp, fc, fn, easeFrom, easeTo float32) float32 {
	step := (fc - fp) / (fn - fp)
	s := step
	sum := easeTo + easeFrom
	if sum == 0 {
		return s
	}
	if sum > 1 {
		easeTo /= sum
		easeFrom /= sum
	}
	a := 1 / (2 - (easeTo + easeFrom))
	switch {
	case step < easeFrom:
		s = a / easeFrom * step * step
	case easeTo > 0 && 1-easeTo <= step:
		step = 1 - step
		s = 1 - a/easeTo*step*step
	default:
		s = (2*step - easeFrom) * a
	}
	return s
}

// Weights returns the tangent weights of the segment around c. p and n are
// the neighbor keys and may be nil at the ends of a track. pc and nc override
// c for the frame spacing and default to c.
func Weights(p, pc, c, nc, n *Key) (ksm, ksp, kdm, kdp float32) {
	if pc == nil {
		pc = c
	}
	if nc == nil {
		nc = c
	}
	fp, fn := float32(1), float32(1)
	if p != nil && n != nil {
		dt := 0.5 * float32(pc.Frame-p.Frame+n.Frame-nc.Frame)
		if dt != 0 {
			fp = float32(pc.Frame-p.Frame) / dt
			fn = float32(n.Frame-nc.Frame) / dt
		}
		cc := math32.Abs(c.Cont)
		fp = fp + cc - cc*fp
		fn = fn + cc - cc*fn
	}
	cm := 1 - c.Cont
	tm := 0.5 * (1 - c.Tens)
	cp := 2 - cm
	bm := 1 - c.Bias
	bp := 2 - bm
	tmcm := tm * cm
	tmcp := tm * cp
	ksm = tmcm * bp * fp
	ksp = tmcp * bm * fp
	kdm = tmcp * bp * fn
	kdp = tmcm * bm * fn
	return
}

// UpdateFlags sets the flag bits for the non-zero spline parameters, so only
// those are written.
func (k *Key) UpdateFlags() {
	k.Flags = 0
	if k.Tens != 0 {
		k.Flags |= USE_TENSION
	}
	if k.Cont != 0 {
		k.Flags |= USE_CONTINUITY
	}
	if k.Bias != 0 {
		k.Flags |= USE_BIAS
	}
	if k.EaseTo != 0 {
		k.Flags |= USE_EASE_TO
	}
	if k.EaseFrom != 0 {
		k.Flags |= USE_EASE_FROM
	}
}

// SPDX-License-Identifier: GPL-2.0-or-later

// Package track implements the keyframe tracks of scene nodes.
//
// Keys are kept sorted by strictly increasing frame. Tangents are computed
// by Setup, which Read, Insert and Remove call. Code that edits Keys directly
// has to call Setup itself before evaluating.
package track

import (
	"slices"
	"sort"

	qmath "go3ds/math"
	"go3ds/spline"
	"go3ds/stream"
)

// track flags
const (
	REPEAT   = 0x0001
	SMOOTH   = 0x0002
	LOCK_X   = 0x0008
	LOCK_Y   = 0x0010
	LOCK_Z   = 0x0020
	UNLINK_X = 0x0100
	UNLINK_Y = 0x0200
	UNLINK_Z = 0x0400
)

type keyframe interface {
	tcb() *spline.Key
}

func readHeader(r *stream.Reader) (flags uint16, n uint32) {
	flags = r.ReadUint16()
	r.ReadUint32()
	r.ReadUint32()
	n = r.ReadUint32()
	return
}

func writeHeader(w *stream.Writer, flags uint16, n int) {
	w.WriteUint16(flags)
	w.WriteUint32(0)
	w.WriteUint32(0)
	w.WriteUint32(uint32(n))
}

func readKey(r *stream.Reader) spline.Key {
	var k spline.Key
	k.Frame = r.ReadInt32()
	k.Flags = r.ReadUint16()
	if k.Flags&spline.USE_TENSION != 0 {
		k.Tens = r.ReadFloat32()
	}
	if k.Flags&spline.USE_CONTINUITY != 0 {
		k.Cont = r.ReadFloat32()
	}
	if k.Flags&spline.USE_BIAS != 0 {
		k.Bias = r.ReadFloat32()
	}
	if k.Flags&spline.USE_EASE_TO != 0 {
		k.EaseTo = r.ReadFloat32()
	}
	if k.Flags&spline.USE_EASE_FROM != 0 {
		k.EaseFrom = r.ReadFloat32()
	}
	return k
}

func writeKey(w *stream.Writer, k spline.Key) {
	k.UpdateFlags()
	w.WriteInt32(k.Frame)
	w.WriteUint16(k.Flags)
	if k.Flags&spline.USE_TENSION != 0 {
		w.WriteFloat32(k.Tens)
	}
	if k.Flags&spline.USE_CONTINUITY != 0 {
		w.WriteFloat32(k.Cont)
	}
	if k.Flags&spline.USE_BIAS != 0 {
		w.WriteFloat32(k.Bias)
	}
	if k.Flags&spline.USE_EASE_TO != 0 {
		w.WriteFloat32(k.EaseTo)
	}
	if k.Flags&spline.USE_EASE_FROM != 0 {
		w.WriteFloat32(k.EaseFrom)
	}
}

func frame[K keyframe](k K) int32 {
	return k.tcb().Frame
}

// insert adds k in frame order, a key with the same frame is replaced.
func insert[K keyframe](keys []K, k K) []K {
	f := frame(k)
	i := sort.Search(len(keys), func(i int) bool { return frame(keys[i]) >= f })
	if i < len(keys) && frame(keys[i]) == f {
		keys[i] = k
		return keys
	}
	return slices.Insert(keys, i, k)
}

func remove[K keyframe](keys []K, f int32) ([]K, bool) {
	i := sort.Search(len(keys), func(i int) bool { return frame(keys[i]) >= f })
	if i == len(keys) || frame(keys[i]) != f {
		return keys, false
	}
	return slices.Delete(keys, i, i+1), true
}

// neighbors returns the indices of the keys around i, -1 if there is none.
// Smooth tracks wrap around, the returned spline keys then carry frames
// shifted by the track length so the spacing stays positive.
func neighbors[K keyframe](keys []K, i int, smooth bool) (p, n int, pk, nk *spline.Key) {
	p, n = i-1, i+1
	last := len(keys) - 1
	if p >= 0 {
		pk = keys[p].tcb()
	}
	if n <= last {
		nk = keys[n].tcb()
	}
	if !smooth || len(keys) < 3 {
		if n > last {
			n = -1
		}
		return
	}
	period := frame(keys[last]) - frame(keys[0])
	if p < 0 {
		p = last - 1
		k := *keys[p].tcb()
		k.Frame -= period
		pk = &k
	}
	if n > last {
		n = 1
		k := *keys[n].tcb()
		k.Frame += period
		nk = &k
	}
	return
}

// segment finds the keys around t. If ok is false t is outside of the keys
// and keys[i] is the boundary value. Otherwise t lies between keys[i] and
// keys[i+1] and u is the eased position in that segment.
func segment[K keyframe](keys []K, t float32, flags uint16) (i int, u float32, ok bool) {
	last := len(keys) - 1
	if last <= 0 {
		return 0, 0, false
	}
	first, end := float32(frame(keys[0])), float32(frame(keys[last]))
	if flags&REPEAT != 0 && (t < first || t > end) {
		t = qmath.Wrap(t, first, end)
	}
	if t <= first {
		return 0, 0, false
	}
	if t >= end {
		return last, 0, false
	}
	i = sort.Search(len(keys), func(i int) bool { return float32(frame(keys[i])) > t }) - 1
	a, b := keys[i].tcb(), keys[i+1].tcb()
	u = spline.Ease(float32(a.Frame), t, float32(b.Frame), a.EaseFrom, b.EaseTo)
	return i, u, true
}

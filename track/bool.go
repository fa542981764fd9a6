// SPDX-License-Identifier: GPL-2.0-or-later

package track

import (
	"sort"

	qmath "go3ds/math"
	"go3ds/spline"
	"go3ds/stream"
)

type BoolKey struct {
	spline.Key
}

func (k BoolKey) tcb() *spline.Key { return &k.Key }

// Bool is a switch that toggles at every key, starting out false. A
// single key switches it on for all times.
type Bool struct {
	Flags uint16
	Keys  []BoolKey
	// Default is returned if there are no keys.
	Default bool
}

func (t *Bool) Insert(k BoolKey) {
	t.Keys = insert(t.Keys, k)
}

func (t *Bool) Remove(frame int32) bool {
	var ok bool
	t.Keys, ok = remove(t.Keys, frame)
	return ok
}

func (t *Bool) Eval(at float32) bool {
	switch len(t.Keys) {
	case 0:
		return t.Default
	case 1:
		return true
	}
	if t.Flags&REPEAT != 0 && len(t.Keys) > 1 {
		first := float32(t.Keys[0].Frame)
		last := float32(t.Keys[len(t.Keys)-1].Frame)
		if at < first || at >= last {
			at = qmath.Wrap(at, first, last)
		}
	}
	n := sort.Search(len(t.Keys), func(i int) bool { return float32(t.Keys[i].Frame) > at })
	return n%2 == 1
}

func (t *Bool) Read(r *stream.Reader) error {
	flags, n := readHeader(r)
	t.Flags = flags
	t.Keys = nil
	for i := uint32(0); i < n && r.Err() == nil; i++ {
		t.Keys = insert(t.Keys, BoolKey{readKey(r)})
	}
	return r.Err()
}

func (t *Bool) Write(w *stream.Writer) error {
	writeHeader(w, t.Flags, len(t.Keys))
	for _, k := range t.Keys {
		writeKey(w, k.Key)
	}
	return w.Err()
}

// SPDX-License-Identifier: GPL-2.0-or-later

package track

import (
	"sort"

	qmath "go3ds/math"
	"go3ds/spline"
	"go3ds/stream"
)

// MorphKey names the mesh an object morphs into.
type MorphKey struct {
	spline.Key
	Name string
}

func (k MorphKey) tcb() *spline.Key { return &k.Key }

type Morph struct {
	Flags uint16
	Keys  []MorphKey
	// Default is returned if there are no keys.
	Default string
}

func (t *Morph) Insert(k MorphKey) {
	t.Keys = insert(t.Keys, k)
}

func (t *Morph) Remove(frame int32) bool {
	var ok bool
	t.Keys, ok = remove(t.Keys, frame)
	return ok
}

// Eval returns the target of the last key at or before at.
func (t *Morph) Eval(at float32) string {
	if len(t.Keys) == 0 {
		return t.Default
	}
	if t.Flags&REPEAT != 0 && len(t.Keys) > 1 {
		first := float32(t.Keys[0].Frame)
		last := float32(t.Keys[len(t.Keys)-1].Frame)
		if at < first || at > last {
			at = qmath.Wrap(at, first, last)
		}
	}
	i := sort.Search(len(t.Keys), func(i int) bool { return float32(t.Keys[i].Frame) > at }) - 1
	if i < 0 {
		i = 0
	}
	return t.Keys[i].Name
}

func (t *Morph) Read(r *stream.Reader) error {
	flags, n := readHeader(r)
	t.Flags = flags
	t.Keys = nil
	for i := uint32(0); i < n && r.Err() == nil; i++ {
		k := MorphKey{Key: readKey(r)}
		k.Name = r.ReadString(64)
		t.Keys = insert(t.Keys, k)
	}
	return r.Err()
}

func (t *Morph) Write(w *stream.Writer) error {
	writeHeader(w, t.Flags, len(t.Keys))
	for _, k := range t.Keys {
		writeKey(w, k.Key)
		w.WriteString(k.Name, 64)
	}
	return w.Err()
}

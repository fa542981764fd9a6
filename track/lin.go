// SPDX-License-Identifier: GPL-2.0-or-later

package track

import (
	qmath "go3ds/math"
	"go3ds/math/vec"
	"go3ds/spline"
	"go3ds/stream"
)

// Lin1Key is a key of a scalar track.
type Lin1Key struct {
	spline.Key
	Value  float32
	ds, dd float32
}

func (k Lin1Key) tcb() *spline.Key { return &k.Key }

// Lin1 animates a float like a field of view or a roll angle.
type Lin1 struct {
	Flags uint16
	Keys  []Lin1Key
	// Default is returned if there are no keys.
	Default float32
}

func (t *Lin1) Insert(k Lin1Key) {
	t.Keys = insert(t.Keys, k)
	t.Setup()
}

// Remove deletes the key at frame and reports whether there was one.
func (t *Lin1) Remove(frame int32) bool {
	var ok bool
	t.Keys, ok = remove(t.Keys, frame)
	t.Setup()
	return ok
}

func (t *Lin1) Setup() {
	smooth := t.Flags&SMOOTH != 0
	for i := range t.Keys {
		c := &t.Keys[i]
		p, n, pk, nk := neighbors(t.Keys, i, smooth)
		switch {
		case p < 0 && n < 0:
			c.ds, c.dd = 0, 0
		case p >= 0 && n >= 0:
			ksm, ksp, kdm, kdp := spline.Weights(pk, nil, &c.Key, nil, nk)
			np := c.Value - t.Keys[p].Value
			nn := t.Keys[n].Value - c.Value
			c.ds = ksm*np + ksp*nn
			c.dd = kdm*np + kdp*nn
		case p >= 0:
			np := c.Value - t.Keys[p].Value
			c.ds, c.dd = np, np
		default:
			nn := t.Keys[n].Value - c.Value
			c.ds, c.dd = nn, nn
		}
	}
}

// Eval returns the value at time at.
func (t *Lin1) Eval(at float32) float32 {
	if len(t.Keys) == 0 {
		return t.Default
	}
	i, u, ok := segment(t.Keys, at, t.Flags)
	if !ok {
		return t.Keys[i].Value
	}
	a, b := &t.Keys[i], &t.Keys[i+1]
	return qmath.Cubic(a.Value, a.dd, b.ds, b.Value, u)
}

func (t *Lin1) Read(r *stream.Reader) error {
	flags, n := readHeader(r)
	t.Flags = flags
	t.Keys = nil
	for i := uint32(0); i < n && r.Err() == nil; i++ {
		k := Lin1Key{Key: readKey(r)}
		k.Value = r.ReadFloat32()
		t.Keys = insert(t.Keys, k)
	}
	t.Setup()
	return r.Err()
}

func (t *Lin1) Write(w *stream.Writer) error {
	writeHeader(w, t.Flags, len(t.Keys))
	for _, k := range t.Keys {
		writeKey(w, k.Key)
		w.WriteFloat32(k.Value)
	}
	return w.Err()
}

// Lin3Key is a key of a vector track.
type Lin3Key struct {
	spline.Key
	Value  vec.Vec3
	ds, dd vec.Vec3
}

func (k Lin3Key) tcb() *spline.Key { return &k.Key }

// Lin3 animates a position, a scale or a color.
type Lin3 struct {
	Flags   uint16
	Keys    []Lin3Key
	Default vec.Vec3
}

func (t *Lin3) Insert(k Lin3Key) {
	t.Keys = insert(t.Keys, k)
	t.Setup()
}

func (t *Lin3) Remove(frame int32) bool {
	var ok bool
	t.Keys, ok = remove(t.Keys, frame)
	t.Setup()
	return ok
}

func (t *Lin3) Setup() {
	smooth := t.Flags&SMOOTH != 0
	for i := range t.Keys {
		c := &t.Keys[i]
		p, n, pk, nk := neighbors(t.Keys, i, smooth)
		switch {
		case p < 0 && n < 0:
			c.ds, c.dd = vec.Vec3{}, vec.Vec3{}
		case p >= 0 && n >= 0:
			ksm, ksp, kdm, kdp := spline.Weights(pk, nil, &c.Key, nil, nk)
			np := vec.Sub(c.Value, t.Keys[p].Value)
			nn := vec.Sub(t.Keys[n].Value, c.Value)
			c.ds = vec.Add(np.Scale(ksm), nn.Scale(ksp))
			c.dd = vec.Add(np.Scale(kdm), nn.Scale(kdp))
		case p >= 0:
			np := vec.Sub(c.Value, t.Keys[p].Value)
			c.ds, c.dd = np, np
		default:
			nn := vec.Sub(t.Keys[n].Value, c.Value)
			c.ds, c.dd = nn, nn
		}
	}
}

func (t *Lin3) Eval(at float32) vec.Vec3 {
	if len(t.Keys) == 0 {
		return t.Default
	}
	i, u, ok := segment(t.Keys, at, t.Flags)
	if !ok {
		return t.Keys[i].Value
	}
	a, b := &t.Keys[i], &t.Keys[i+1]
	return vec.Vec3{
		X: qmath.Cubic(a.Value.X, a.dd.X, b.ds.X, b.Value.X, u),
		Y: qmath.Cubic(a.Value.Y, a.dd.Y, b.ds.Y, b.Value.Y, u),
		Z: qmath.Cubic(a.Value.Z, a.dd.Z, b.ds.Z, b.Value.Z, u),
	}
}

func (t *Lin3) Read(r *stream.Reader) error {
	flags, n := readHeader(r)
	t.Flags = flags
	t.Keys = nil
	for i := uint32(0); i < n && r.Err() == nil; i++ {
		k := Lin3Key{Key: readKey(r)}
		k.Value = r.ReadVec3()
		t.Keys = insert(t.Keys, k)
	}
	t.Setup()
	return r.Err()
}

func (t *Lin3) Write(w *stream.Writer) error {
	writeHeader(w, t.Flags, len(t.Keys))
	for _, k := range t.Keys {
		writeKey(w, k.Key)
		w.WriteVec3(k.Value)
	}
	return w.Err()
}

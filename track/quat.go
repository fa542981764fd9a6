// SPDX-License-Identifier: GPL-2.0-or-later

package track

import (
	qmath "go3ds/math"
	"go3ds/math/quat"
	"go3ds/math/vec"
	"go3ds/spline"
	"go3ds/stream"
)

// QuatKey stores a rotation relative to the previous key.
type QuatKey struct {
	spline.Key
	Angle float32
	Axis  vec.Vec3

	q, ds, dd quat.Quat
}

func (k QuatKey) tcb() *spline.Key { return &k.Key }

// Q returns the absolute orientation at the key, valid after Setup.
func (k *QuatKey) Q() quat.Quat {
	return k.q
}

// Quat animates an orientation.
type Quat struct {
	Flags uint16
	Keys  []QuatKey
	// Default is returned if there are no keys, the zero value means
	// identity.
	Default quat.Quat
}

func (t *Quat) Insert(k QuatKey) {
	t.Keys = insert(t.Keys, k)
	t.Setup()
}

func (t *Quat) Remove(frame int32) bool {
	var ok bool
	t.Keys, ok = remove(t.Keys, frame)
	t.Setup()
	return ok
}

func (t *Quat) Setup() {
	for i := range t.Keys {
		k := &t.Keys[i]
		q := quat.AxisAngle(k.Axis, k.Angle)
		if i > 0 {
			q = quat.Mul(q, t.Keys[i-1].q)
		}
		k.q = q
	}
	smooth := t.Flags&SMOOTH != 0
	for i := range t.Keys {
		c := &t.Keys[i]
		p, n, pk, nk := neighbors(t.Keys, i, smooth)
		if p < 0 || n < 0 {
			c.ds, c.dd = c.q, c.q
			continue
		}
		qp := t.logTo(p, c.q, false)
		qn := t.logTo(n, c.q, true)
		ksm, ksp, kdm, kdp := spline.Weights(pk, nil, &c.Key, nil, nk)
		qa := quat.Add(qp.Scale(kdm), qn.Scale(kdp-1)).Scale(0.5)
		qb := quat.Add(qp.Scale(1-ksm), qn.Scale(-ksp)).Scale(0.5)
		c.dd = quat.Mul(c.q, qa.Exp())
		c.ds = quat.Mul(c.q, qb.Exp())
	}
}

// logTo returns the log of the rotation between key i and c, taken from c
// to the key if next is set and from the key to c otherwise. Keys spinning
// by a full turn contribute no tangent.
func (t *Quat) logTo(i int, c quat.Quat, next bool) quat.Quat {
	k := &t.Keys[i]
	if k.Angle > qmath.TwoPi-qmath.Epsilon {
		return quat.Quat{}
	}
	q := k.q
	if quat.Dot(q, c) < 0 {
		q = q.Neg()
	}
	if next {
		return quat.LnDif(c, q)
	}
	return quat.LnDif(q, c)
}

func (t *Quat) Eval(at float32) quat.Quat {
	if len(t.Keys) == 0 {
		if t.Default == (quat.Quat{}) {
			return quat.Identity()
		}
		return t.Default
	}
	i, u, ok := segment(t.Keys, at, t.Flags)
	if !ok {
		return t.Keys[i].q
	}
	a, b := &t.Keys[i], &t.Keys[i+1]
	return quat.Squad(a.q, a.dd, b.ds, b.q, u)
}

func (t *Quat) Read(r *stream.Reader) error {
	flags, n := readHeader(r)
	t.Flags = flags
	t.Keys = nil
	for i := uint32(0); i < n && r.Err() == nil; i++ {
		k := QuatKey{Key: readKey(r)}
		k.Angle = r.ReadFloat32()
		k.Axis = r.ReadVec3()
		t.Keys = insert(t.Keys, k)
	}
	t.Setup()
	return r.Err()
}

func (t *Quat) Write(w *stream.Writer) error {
	writeHeader(w, t.Flags, len(t.Keys))
	for _, k := range t.Keys {
		writeKey(w, k.Key)
		w.WriteFloat32(k.Angle)
		w.WriteVec3(k.Axis)
	}
	return w.Err()
}

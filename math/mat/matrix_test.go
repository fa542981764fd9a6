// SPDX-License-Identifier: GPL-2.0-or-later

package mat

import (
	"testing"

	"github.com/chewxy/math32"

	"go3ds/math/quat"
	"go3ds/math/vec"
)

const (
	e = 1e-5
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if !Near(m, Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}, 0) {
		t.Errorf("Identity broken: %v", m)
	}
}

func TestTranslate(t *testing.T) {
	m := Identity()
	m.Translate(vec.Vec3{X: 2, Y: 3, Z: 5})
	if !Near(m, Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{2, 3, 5, 1},
	}, e) {
		t.Errorf("Identity.Translate(2,3,5) = %v", m)
	}
}

func TestScale(t *testing.T) {
	m := Identity()
	m.Scale(vec.Vec3{X: 2, Y: 3, Z: 5})
	if !Near(m, Matrix{
		{2, 0, 0, 0},
		{0, 3, 0, 0},
		{0, 0, 5, 0},
		{0, 0, 0, 1},
	}, e) {
		t.Errorf("Identity.Scale(2,3,5) = %v", m)
	}
}

func TestRotateZ(t *testing.T) {
	m := Identity()
	m.RotateAxis(vec.Vec3{Z: 1}, math32.Pi/2)
	p := m.TransformPoint(vec.Vec3{X: 1})
	if !vec.Near(p, vec.Vec3{Y: -1}, e) {
		t.Errorf("RotateZ(90) * (1,0,0) = %v", p)
	}
}

func TestComposition(t *testing.T) {
	// scale first, then translate
	m := Identity()
	m.Translate(vec.Vec3{X: 1, Y: 2, Z: 3})
	m.Scale(vec.Vec3{X: 2, Y: 3, Z: 4})
	p := m.TransformPoint(vec.Vec3{X: 1, Y: 1, Z: 1})
	if !vec.Near(p, vec.Vec3{X: 3, Y: 5, Z: 7}, e) {
		t.Errorf("T*S * (1,1,1) = %v", p)
	}
	parent := Identity()
	parent.Translate(vec.Vec3{X: 10})
	w := Mul(m, parent)
	p = w.TransformPoint(vec.Vec3{X: 1, Y: 1, Z: 1})
	if !vec.Near(p, vec.Vec3{X: 13, Y: 5, Z: 7}, e) {
		t.Errorf("child in parent * (1,1,1) = %v", p)
	}
}

func TestQuatRoundTrip(t *testing.T) {
	tests := []quat.Quat{
		quat.Identity(),
		quat.AxisAngle(vec.Vec3{X: 1}, 0.3),
		quat.AxisAngle(vec.Vec3{Y: 1}, 3.1),
		quat.AxisAngle(vec.Vec3{Z: 1}, -2.9),
		quat.AxisAngle(vec.Vec3{X: 1, Y: 2, Z: 3}, 1.7),
		quat.AxisAngle(vec.Vec3{X: -1, Y: 0.2, Z: 0.1}, 3.0),
	}
	for i, q := range tests {
		r := FromQuat(q).Quat()
		if !quat.SameRotation(q, r, e) {
			t.Errorf("Testcase %d. got: %v, want %v", i, r, q)
		}
	}
}

func TestInv(t *testing.T) {
	m := Identity()
	m.Translate(vec.Vec3{X: 1, Y: -2, Z: 3})
	m.Rotate(quat.AxisAngle(vec.Vec3{X: 1, Y: 1}, 0.8))
	m.Scale(vec.Vec3{X: 2, Y: 2, Z: 0.5})
	inv, ok := m.Inv()
	if !ok {
		t.Fatalf("Inv reported a singular matrix")
	}
	if r := Mul(m, inv); !Near(r, Identity(), e) {
		t.Errorf("m*inv(m) = %v", r)
	}
	if _, ok := (Matrix{}).Inv(); ok {
		t.Errorf("Inv(0) should fail")
	}
}

func TestDet3(t *testing.T) {
	m := Identity()
	m.Scale(vec.Vec3{X: -1, Y: 2, Z: 3})
	if d := m.Det3(); math32.Abs(d+6) > e {
		t.Errorf("Det3 = %v want -6", d)
	}
}

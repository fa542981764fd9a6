// SPDX-License-Identifier: GPL-2.0-or-later

package quat

import (
	"testing"

	"github.com/chewxy/math32"

	"go3ds/math/vec"
)

const e = 1e-5

func TestAxisAngleDegenerate(t *testing.T) {
	if q := AxisAngle(vec.Vec3{}, 1); q != Identity() {
		t.Errorf("AxisAngle(0, 1) = %v", q)
	}
}

func TestAxisAngleRoundTrip(t *testing.T) {
	axis := vec.Vec3{X: 1, Y: 2, Z: 2}
	q := AxisAngle(axis, 1.2)
	if l := q.Length(); math32.Abs(l-1) > e {
		t.Errorf("AxisAngle length = %v", l)
	}
	a, angle := q.AxisAngleOf()
	back := AxisAngle(a, angle)
	if !SameRotation(q, back, e) {
		t.Errorf("AxisAngleOf round trip: %v != %v", q, back)
	}
}

func TestMulIdentity(t *testing.T) {
	q := AxisAngle(vec.Vec3{Z: 1}, 0.7)
	if r := Mul(q, Identity()); !Near(r, q, e) {
		t.Errorf("Mul(q, I) = %v", r)
	}
	if r := Mul(q, q.Inv()); !Near(r, Identity(), e) {
		t.Errorf("Mul(q, Inv(q)) = %v", r)
	}
}

func TestInvDegenerate(t *testing.T) {
	if r := (Quat{}).Inv(); r != Identity() {
		t.Errorf("Inv(0) = %v", r)
	}
	if r := (Quat{}).Normalize(); r != Identity() {
		t.Errorf("Normalize(0) = %v", r)
	}
}

func TestLnExp(t *testing.T) {
	tests := []Quat{
		Identity(),
		AxisAngle(vec.Vec3{X: 1}, 0.5),
		AxisAngle(vec.Vec3{X: 1, Y: -1, Z: 3}, 2.5),
		{1e-10, 0, 0, 1},
	}
	for _, q := range tests {
		if r := q.Ln().Exp(); !Near(r, q, e) {
			t.Errorf("Exp(Ln(%v)) = %v", q, r)
		}
	}
	if l := Identity().Ln(); l != (Quat{}) {
		t.Errorf("Ln(I) = %v", l)
	}
}

func TestLnDif(t *testing.T) {
	a := AxisAngle(vec.Vec3{Y: 1}, 0.3)
	b := AxisAngle(vec.Vec3{Y: 1}, 0.9)
	d := LnDif(a, b).Exp()
	if r := Mul(a, d); !Near(r, b, e) {
		t.Errorf("a*exp(LnDif(a,b)) = %v want %v", r, b)
	}
}

func TestSlerpEnds(t *testing.T) {
	a := AxisAngle(vec.Vec3{Z: 1}, 0.2)
	b := AxisAngle(vec.Vec3{X: 1, Z: 1}, 1.4)
	if r := Slerp(a, b, 0); !Near(r, a, e) {
		t.Errorf("Slerp(a,b,0) = %v want %v", r, a)
	}
	if r := Slerp(a, b, 1); !Near(r, b, e) {
		t.Errorf("Slerp(a,b,1) = %v want %v", r, b)
	}
	if r := Slerp(a, a, 0.5); !Near(r, a, e) {
		t.Errorf("Slerp(a,a,0.5) = %v", r)
	}
}

func TestSlerpShortArc(t *testing.T) {
	a := Identity()
	b := AxisAngle(vec.Vec3{Z: 1}, 1).Neg()
	prev := float32(-1)
	for i := 0; i <= 10; i++ {
		r := Slerp(a, b, float32(i)/10)
		// angle away from a grows monotonically and never exceeds 1 rad
		d := math32.Abs(Dot(a, r))
		angle := 2 * math32.Acos(math32.Min(d, 1))
		if angle < prev-e {
			t.Errorf("Slerp step %d went backwards: %v < %v", i, angle, prev)
		}
		if angle > 1+e {
			t.Errorf("Slerp step %d took the long arc: %v", i, angle)
		}
		prev = angle
	}
}

func TestSquadEnds(t *testing.T) {
	a := AxisAngle(vec.Vec3{Z: 1}, 0.2)
	b := AxisAngle(vec.Vec3{Z: 1}, 1.0)
	p := AxisAngle(vec.Vec3{Z: 1}, 0.4)
	q := AxisAngle(vec.Vec3{Z: 1}, 0.8)
	if r := Squad(a, p, q, b, 0); !Near(r, a, e) {
		t.Errorf("Squad(t=0) = %v", r)
	}
	if r := Squad(a, p, q, b, 1); !Near(r, b, e) {
		t.Errorf("Squad(t=1) = %v", r)
	}
	// controls on the geodesic keep squad on it
	mid := Squad(a, a, b, b, 0.5)
	if want := Slerp(a, b, 0.5); !Near(mid, want, e) {
		t.Errorf("Squad(a,a,b,b,0.5) = %v want %v", mid, want)
	}
}

// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"testing"
)

var (
	NULL = Vec3{}
)

func TestBasics(t *testing.T) {
	v := Vec3{1, 2, 3}
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Errorf("Vector construction is not obvious")
	}
	if VFromA(v.Array()) != v {
		t.Errorf("VFromA(Array()) changed %v", v)
	}
}

func TestLength(t *testing.T) {
	if NULL.Length() != 0 {
		t.Errorf("Null vector has not 0 length")
	}
	for _, v := range []Vec3{{2, 2, 1}, {2, 1, 2}, {1, 2, 2}} {
		if v.Length() != 3 {
			t.Errorf("%v Length is not 3", v)
		}
	}
}

func TestAdd(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := Add(NULL, v); v != got {
		t.Errorf("Adding a null vector changed the vector")
	}
	got := Add(v, v)
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("Add(%v,%v) = %v want %v", v, v, got, want)
	}
}

func TestSub(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got := Sub(v, v); got != NULL {
		t.Errorf("Sub(%v,%v) = %v want %v", v, v, got, NULL)
	}
	v2 := Vec3{9, 7, 5}
	got := Sub(v2, v)
	want := Vec3{8, 5, 2}
	if got != want {
		t.Errorf("Sub(%v,%v) = %v want %v", v2, v, got, want)
	}
}

func TestScale(t *testing.T) {
	v := Vec3{1, 2, 3}
	if got, want := v.Scale(2), (Vec3{2, 4, 6}); got != want {
		t.Errorf("%v.Scale(2) = %v want %v", v, got, want)
	}
	if got, want := v.Neg(), (Vec3{-1, -2, -3}); got != want {
		t.Errorf("%v.Neg() = %v want %v", v, got, want)
	}
}

func TestNormalize(t *testing.T) {
	if got := NULL.Normalize(); got != NULL {
		t.Errorf("NULL.Normalize() = %v", got)
	}
	v := Vec3{0, 3, 4}
	if got := v.Normalize(); !Near(got, Vec3{0, 0.6, 0.8}, 1e-6) {
		t.Errorf("%v.Normalize() = %v", v, got)
	}
}

func TestDotCross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if d := Dot(x, y); d != 0 {
		t.Errorf("Dot(x,y) = %v", d)
	}
	if c := Cross(x, y); c != (Vec3{0, 0, 1}) {
		t.Errorf("Cross(x,y) = %v", c)
	}
}

func TestEqual(t *testing.T) {
	v1 := Vec3{2, 3, 4}
	v2 := Vec3{4, 3, 2}
	if !Equal(v1, v1) {
		t.Errorf("Vectors are not considered equal to them self")
	}
	if Equal(v1, v2) {
		t.Errorf("Vectors %v and %v are considered equal", v1, v2)
	}
	if !Near(v1, Vec3{2, 3, 4.000001}, 1e-5) {
		t.Errorf("Near within epsilon failed")
	}
}

func TestBounds(t *testing.T) {
	min, max := Bounds([]Vec3{{1, -2, 3}, {-1, 5, 0}, {0, 0, 9}})
	if min != (Vec3{-1, -2, 0}) || max != (Vec3{1, 5, 9}) {
		t.Errorf("Bounds = %v %v", min, max)
	}
	min, max = Bounds(nil)
	if min != NULL || max != NULL {
		t.Errorf("Bounds(nil) = %v %v", min, max)
	}
}

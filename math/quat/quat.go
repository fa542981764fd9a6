// SPDX-License-Identifier: GPL-2.0-or-later

// Package quat implements quaternions in x, y, z, w order.
package quat

import (
	"github.com/chewxy/math32"

	"go3ds/math/vec"
)

const eps = 1e-8

type Quat struct {
	X, Y, Z, W float32
}

func Identity() Quat {
	return Quat{0, 0, 0, 1}
}

// AxisAngle returns the rotation by angle radians around axis. A degenerate
// axis yields the identity.
func AxisAngle(axis vec.Vec3, angle float32) Quat {
	l := axis.Length()
	if l < eps {
		return Identity()
	}
	om := -0.5 * angle
	s, c := math32.Sincos(om)
	s /= l
	return Quat{s * axis.X, s * axis.Y, s * axis.Z, c}
}

// AxisAngleOf is the inverse of AxisAngle, the identity maps to a zero axis.
func (q Quat) AxisAngleOf() (vec.Vec3, float32) {
	q = q.Normalize()
	s := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if s < eps {
		return vec.Vec3{}, 0
	}
	om := math32.Atan2(s, q.W)
	return vec.Vec3{X: q.X / s, Y: q.Y / s, Z: q.Z / s}, -2 * om
}

func (q Quat) Neg() Quat {
	return Quat{-q.X, -q.Y, -q.Z, -q.W}
}

func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

func (q Quat) Scale(s float32) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

func Add(a, b Quat) Quat {
	return Quat{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Mul returns the hamilton product a*b.
func Mul(a, b Quat) Quat {
	return Quat{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y + a.Y*b.W + a.Z*b.X - a.X*b.Z,
		Z: a.W*b.Z + a.Z*b.W + a.X*b.Y - a.Y*b.X,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

func Dot(a, b Quat) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func (q Quat) SquaredLength() float32 {
	return Dot(q, q)
}

func (q Quat) Length() float32 {
	return math32.Sqrt(Dot(q, q))
}

// Normalize returns q with unit length, degenerate quaternions normalize to
// the identity.
func (q Quat) Normalize() Quat {
	l := q.Length()
	if l < eps {
		return Identity()
	}
	return q.Scale(1 / l)
}

// Inv returns the multiplicative inverse.
func (q Quat) Inv() Quat {
	l := q.SquaredLength()
	if l < eps {
		return Identity()
	}
	return q.Conjugate().Scale(1 / l)
}

// Ln returns the logarithm of a unit quaternion. Angles below eps give a zero
// vector part.
func (q Quat) Ln() Quat {
	s := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	om := math32.Atan2(s, q.W)
	var t float32
	if s >= eps {
		t = om / s
	}
	return Quat{q.X * t, q.Y * t, q.Z * t, 0}
}

// Exp is the inverse of Ln.
func (q Quat) Exp() Quat {
	om := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	sinom := float32(1)
	if om >= eps {
		sinom = math32.Sin(om) / om
	}
	return Quat{q.X * sinom, q.Y * sinom, q.Z * sinom, math32.Cos(om)}
}

// LnDif returns ln(inv(a)*b).
func LnDif(a, b Quat) Quat {
	return Mul(a.Inv(), b).Ln()
}

// Slerp interpolates between a and b along the shorter arc.
func Slerp(a, b Quat, t float32) Quat {
	l := Dot(a, b)
	if l < 0 {
		b = b.Neg()
		l = -l
	}
	if l > 1 {
		l = 1
	}
	om := math32.Acos(l)
	sinom := math32.Sin(om)
	var sp, sq float32
	if sinom > eps {
		sp = math32.Sin((1-t)*om) / sinom
		sq = math32.Sin(t*om) / sinom
	} else {
		sp = 1 - t
		sq = t
	}
	return Add(a.Scale(sp), b.Scale(sq))
}

// Squad is the spherical cubic through a and b with the inner control points
// p and q.
func Squad(a, p, q, b Quat, t float32) Quat {
	ab := Slerp(a, b, t)
	pq := Slerp(p, q, t)
	return Slerp(ab, pq, 2*t*(1-t))
}

// Near returns true if every component differs by at most e.
func Near(a, b Quat, e float32) bool {
	return math32.Abs(a.X-b.X) <= e &&
		math32.Abs(a.Y-b.Y) <= e &&
		math32.Abs(a.Z-b.Z) <= e &&
		math32.Abs(a.W-b.W) <= e
}

// SameRotation is Near modulo the double cover.
func SameRotation(a, b Quat, e float32) bool {
	return Near(a, b, e) || Near(a, b.Neg(), e)
}

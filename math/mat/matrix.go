// SPDX-License-Identifier: GPL-2.0-or-later

// Package mat implements 4x4 matrices for row vectors: a point p is
// transformed as p*M and the translation lives in row 3.
package mat

import (
	"fmt"

	"github.com/chewxy/math32"

	"go3ds/math/quat"
	"go3ds/math/vec"
)

const eps = 1e-8

// Matrix is indexed [row][col].
type Matrix [4][4]float32

func (m Matrix) String() string {
	return fmt.Sprintf("Matrix:\n%v %v %v %v\n%v %v %v %v\n%v %v %v %v\n%v %v %v %v",
		m[0][0], m[0][1], m[0][2], m[0][3],
		m[1][0], m[1][1], m[1][2], m[1][3],
		m[2][0], m[2][1], m[2][2], m[2][3],
		m[3][0], m[3][1], m[3][2], m[3][3],
	)
}

func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns a*b, so a point transformed by the result is first transformed
// by a and then by b.
func Mul(a, b Matrix) Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += a[i][k] * b[k][j]
			}
			r[i][j] = s
		}
	}
	return r
}

func (m Matrix) Transpose() Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Translate computes t*m, the translation is applied before m.
func (m *Matrix) Translate(t vec.Vec3) {
	for i := 0; i < 4; i++ {
		m[3][i] += t.X*m[0][i] + t.Y*m[1][i] + t.Z*m[2][i]
	}
}

// Scale computes s*m.
func (m *Matrix) Scale(s vec.Vec3) {
	for i := 0; i < 4; i++ {
		m[0][i] *= s.X
		m[1][i] *= s.Y
		m[2][i] *= s.Z
	}
}

// Rotate computes r*m with r the rotation matrix of q.
func (m *Matrix) Rotate(q quat.Quat) {
	*m = Mul(FromQuat(q), *m)
}

// RotateAxis computes r*m with r the rotation by angle around axis.
func (m *Matrix) RotateAxis(axis vec.Vec3, angle float32) {
	m.Rotate(quat.AxisAngle(axis, angle))
}

// FromQuat returns the rotation matrix of q. q does not need unit length,
// the zero quaternion gives the identity.
func FromQuat(q quat.Quat) Matrix {
	l := q.SquaredLength()
	if l < eps {
		return Identity()
	}
	s := 2 / l
	xs, ys, zs := q.X*s, q.Y*s, q.Z*s
	wx, wy, wz := q.W*xs, q.W*ys, q.W*zs
	xx, xy, xz := q.X*xs, q.X*ys, q.X*zs
	yy, yz, zz := q.Y*ys, q.Y*zs, q.Z*zs
	return Matrix{
		{1 - (yy + zz), xy + wz, xz - wy, 0},
		{xy - wz, 1 - (xx + zz), yz + wx, 0},
		{xz + wy, yz - wx, 1 - (xx + yy), 0},
		{0, 0, 0, 1},
	}
}

// Quat extracts the rotation of the upper 3x3 part. It expects an
// orthonormal rotation without scale.
func (m Matrix) Quat() quat.Quat {
	var q quat.Quat
	tr := m[0][0] + m[1][1] + m[2][2]
	switch {
	case tr > 0:
		s := math32.Sqrt(tr+1) * 2
		q.W = s / 4
		q.X = (m[1][2] - m[2][1]) / s
		q.Y = (m[2][0] - m[0][2]) / s
		q.Z = (m[0][1] - m[1][0]) / s
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := math32.Sqrt(1+m[0][0]-m[1][1]-m[2][2]) * 2
		q.X = s / 4
		q.W = (m[1][2] - m[2][1]) / s
		q.Y = (m[0][1] + m[1][0]) / s
		q.Z = (m[2][0] + m[0][2]) / s
	case m[1][1] > m[2][2]:
		s := math32.Sqrt(1+m[1][1]-m[0][0]-m[2][2]) * 2
		q.Y = s / 4
		q.W = (m[2][0] - m[0][2]) / s
		q.X = (m[0][1] + m[1][0]) / s
		q.Z = (m[1][2] + m[2][1]) / s
	default:
		s := math32.Sqrt(1+m[2][2]-m[0][0]-m[1][1]) * 2
		q.Z = s / 4
		q.W = (m[0][1] - m[1][0]) / s
		q.X = (m[2][0] + m[0][2]) / s
		q.Y = (m[1][2] + m[2][1]) / s
	}
	return q.Normalize()
}

// TransformPoint returns p*m with w=1.
func (m Matrix) TransformPoint(p vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: p.X*m[0][0] + p.Y*m[1][0] + p.Z*m[2][0] + m[3][0],
		Y: p.X*m[0][1] + p.Y*m[1][1] + p.Z*m[2][1] + m[3][1],
		Z: p.X*m[0][2] + p.Y*m[1][2] + p.Z*m[2][2] + m[3][2],
	}
}

// Translation returns row 3.
func (m Matrix) Translation() vec.Vec3 {
	return vec.Vec3{X: m[3][0], Y: m[3][1], Z: m[3][2]}
}

// Det3 returns the determinant of the upper 3x3 part.
func (m Matrix) Det3() float32 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inv returns the inverse of m. ok is false for singular matrices, the
// identity is returned then.
func (m Matrix) Inv() (Matrix, bool) {
	a := m
	r := Identity()
	for c := 0; c < 4; c++ {
		p := c
		for i := c + 1; i < 4; i++ {
			if math32.Abs(a[i][c]) > math32.Abs(a[p][c]) {
				p = i
			}
		}
		if math32.Abs(a[p][c]) < eps {
			return Identity(), false
		}
		a[c], a[p] = a[p], a[c]
		r[c], r[p] = r[p], r[c]
		d := 1 / a[c][c]
		for j := 0; j < 4; j++ {
			a[c][j] *= d
			r[c][j] *= d
		}
		for i := 0; i < 4; i++ {
			if i == c {
				continue
			}
			f := a[i][c]
			if f == 0 {
				continue
			}
			for j := 0; j < 4; j++ {
				a[i][j] -= f * a[c][j]
				r[i][j] -= f * r[c][j]
			}
		}
	}
	return r, true
}

// Near returns true if every entry differs by at most e.
func Near(a, b Matrix, e float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math32.Abs(a[i][j]-b[i][j]) > e {
				return false
			}
		}
	}
	return true
}

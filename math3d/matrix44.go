package math3d

import (
	"fmt"
	"math"
)

// Matrix44 is a rigid transform for row vectors: v' = v * M. The rotation
// lives in the upper 3x3 (transposed, compared to the column convention) and
// the translation in the fourth row.
type Matrix44 struct {
	m11 float64 // 0
	m12 float64 // 1
	m13 float64 // 2
	m14 float64 // 3
	m21 float64 // 4
	m22 float64 // 5
	m23 float64 // 6
	m24 float64 // 7
	m31 float64 // 8
	m32 float64 // 9
	m33 float64 // 10
	m34 float64 // 11
	m41 float64 // 12
	m42 float64 // 13
	m43 float64 // 14
	m44 float64 // 15
}

var (
	IdentityMatrix44 = Matrix44{m11: 1, m22: 1, m33: 1, m44: 1}
)

func MakeMatrix44(v Vector3, ea EulerAngles) Matrix44 {
	m := Matrix44{}
	m.SetRotation(ea)
	m.SetTranslation(v)
	return m
}

func (m Matrix44) String() string {
	return fmt.Sprintf(
		"&M44{%+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f | %+.4f %+.4f %+.4f %+.4f}",
		m.m11, m.m12, m.m13, m.m14,
		m.m21, m.m22, m.m23, m.m24,
		m.m31, m.m32, m.m33, m.m34,
		m.m41, m.m42, m.m43, m.m44)
}

// Elements returns the matrix as a 4x4 array. This is pretty much only useful
// for dumping its contents and for tests.
func (m Matrix44) Elements() [4][4]float64 {
	return [4][4]float64{
		{m.m11, m.m12, m.m13, m.m14},
		{m.m21, m.m22, m.m23, m.m24},
		{m.m31, m.m32, m.m33, m.m34},
		{m.m41, m.m42, m.m43, m.m44},
	}
}

// Translation returns the fourth row.
func (m Matrix44) Translation() Vector3 {
	return Vector3{m.m41, m.m42, m.m43}
}

// Inverse returns the inverse of a rigid transform: the rotation is
// transposed, and the translation is rotated back and negated. Matrices with
// scale or shear are not supported.
func (m Matrix44) Inverse() Matrix44 {
	r := Matrix44{
		m11: m.m11, m12: m.m21, m13: m.m31,
		m21: m.m12, m22: m.m22, m23: m.m32,
		m31: m.m13, m32: m.m23, m33: m.m33,
		m44: 1,
	}

	t := m.Translation().Rotate(r).MultiplyByScalar(-1)
	r.SetTranslation(t)
	return r
}

// MultiplyMatrices multiplies two 4x4 matrices together. With row vectors,
// v * MultiplyMatrices(a, b) applies a first, then b.
func MultiplyMatrices(a Matrix44, b Matrix44) Matrix44 {
	return Matrix44{
		(a.m11 * b.m11) + (a.m12 * b.m21) + (a.m13 * b.m31) + (a.m14 * b.m41),
		(a.m11 * b.m12) + (a.m12 * b.m22) + (a.m13 * b.m32) + (a.m14 * b.m42),
		(a.m11 * b.m13) + (a.m12 * b.m23) + (a.m13 * b.m33) + (a.m14 * b.m43),
		(a.m11 * b.m14) + (a.m12 * b.m24) + (a.m13 * b.m34) + (a.m14 * b.m44),
		(a.m21 * b.m11) + (a.m22 * b.m21) + (a.m23 * b.m31) + (a.m24 * b.m41),
		(a.m21 * b.m12) + (a.m22 * b.m22) + (a.m23 * b.m32) + (a.m24 * b.m42),
		(a.m21 * b.m13) + (a.m22 * b.m23) + (a.m23 * b.m33) + (a.m24 * b.m43),
		(a.m21 * b.m14) + (a.m22 * b.m24) + (a.m23 * b.m34) + (a.m24 * b.m44),
		(a.m31 * b.m11) + (a.m32 * b.m21) + (a.m33 * b.m31) + (a.m34 * b.m41),
		(a.m31 * b.m12) + (a.m32 * b.m22) + (a.m33 * b.m32) + (a.m34 * b.m42),
		(a.m31 * b.m13) + (a.m32 * b.m23) + (a.m33 * b.m33) + (a.m34 * b.m43),
		(a.m31 * b.m14) + (a.m32 * b.m24) + (a.m33 * b.m34) + (a.m34 * b.m44),
		(a.m41 * b.m11) + (a.m42 * b.m21) + (a.m43 * b.m31) + (a.m44 * b.m41),
		(a.m41 * b.m12) + (a.m42 * b.m22) + (a.m43 * b.m32) + (a.m44 * b.m42),
		(a.m41 * b.m13) + (a.m42 * b.m23) + (a.m43 * b.m33) + (a.m44 * b.m43),
		(a.m41 * b.m14) + (a.m42 * b.m24) + (a.m43 * b.m34) + (a.m44 * b.m44),
	}
}

// SetRotation overwrites the upper 3x3 with R = Rz(yaw) * Ry(pitch) * Rx(roll),
// stored transposed for row vectors. The fourth column is reset.
func (m *Matrix44) SetRotation(ea EulerAngles) {
	cy := math.Cos(ea.Yaw)
	sy := math.Sin(ea.Yaw)
	cp := math.Cos(ea.Pitch)
	sp := math.Sin(ea.Pitch)
	cr := math.Cos(ea.Roll)
	sr := math.Sin(ea.Roll)

	m.m11 = cy * cp
	m.m12 = sy * cp
	m.m13 = -sp
	m.m14 = 0
	m.m21 = (cy * sp * sr) - (sy * cr)
	m.m22 = (sy * sp * sr) + (cy * cr)
	m.m23 = cp * sr
	m.m24 = 0
	m.m31 = (cy * sp * cr) + (sy * sr)
	m.m32 = (sy * sp * cr) - (cy * sr)
	m.m33 = cp * cr
	m.m34 = 0
	m.m44 = 1
}

// SetTranslation sets the translation of a matrix by overwriting the fourth
// row. Other cells are left alone.
func (m *Matrix44) SetTranslation(v Vector3) {
	m.m41 = v.X
	m.m42 = v.Y
	m.m43 = v.Z
	m.m44 = 1
}

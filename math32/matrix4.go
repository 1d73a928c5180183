// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"fmt"
	"strings"
)

// Matrix4 is a 4x4 float32 matrix made of four row vectors.
// Elements are stored row-major: index 4*i + j holds row i, column j.
// With row vectors multiplied on the left, the translation of an
// affine transform is in the last row.
//
// Matrix4 is an immutable value; use [MutableMatrix4] for in-place updates.
type Matrix4 struct {
	e [16]float32
}

var (
	// Matrix4Zero has all elements set to 0.
	Matrix4Zero = Matrix4{}

	// Matrix4Identity has 1s on the diagonal and 0s elsewhere.
	Matrix4Identity = NewMatrix4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
)

// NewMatrix4 returns a new [Matrix4] from the given elements in row-major
// order: mij is row i, column j.
func NewMatrix4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32) Matrix4 {
	return Matrix4{[16]float32{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	}}
}

// Matrix4FromRows returns a new [Matrix4] with the given row vectors.
func Matrix4FromRows(row0, row1, row2, row3 Vector4) Matrix4 {
	m := Matrix4{}
	copy(m.e[0:4], row0.e[:])
	copy(m.e[4:8], row1.e[:])
	copy(m.e[8:12], row2.e[:])
	copy(m.e[12:16], row3.e[:])
	return m
}

// Matrix4FromArray returns a new [Matrix4] from a row-major array.
func Matrix4FromArray(a [16]float32) Matrix4 {
	return Matrix4{a}
}

// Matrix4FromSlice returns a new [Matrix4] from the 16 row-major
// elements of s starting at offset.
func Matrix4FromSlice(s []float32, offset int) Matrix4 {
	m := Matrix4{}
	copy(m.e[:], s[offset:offset+16])
	return m
}

// At returns the element at row i, column j.
// It panics with an [*IndexError] if i or j is not in [0, 4).
func (m Matrix4) At(i, j int) float32 {
	checkIndex(i, 4)
	checkIndex(j, 4)
	return m.e[4*i+j]
}

// Row returns row i as a [Vector4].
// It panics with an [*IndexError] if i is not in [0, 4).
func (m Matrix4) Row(i int) Vector4 {
	checkIndex(i, 4)
	return Vector4FromSlice(m.e[:], 4*i)
}

// Col returns column j as a [Vector4].
// It panics with an [*IndexError] if j is not in [0, 4).
func (m Matrix4) Col(j int) Vector4 {
	checkIndex(j, 4)
	return Vec4(m.e[j], m.e[4+j], m.e[8+j], m.e[12+j])
}

// Array returns the elements in row-major order.
func (m Matrix4) Array() [16]float32 {
	return m.e
}

// ToSlice returns a new slice with the elements in row-major order.
// This order is stable and is what graphics uploads should consume.
func (m Matrix4) ToSlice() []float32 {
	a := m.e
	return a[:]
}

// CopyTo copies the row-major elements into dst starting at offset.
func (m Matrix4) CopyTo(dst []float32, offset int) {
	copy(dst[offset:offset+16], m.e[:])
}

// ToMutable returns a new [MutableMatrix4] holding a copy of this matrix.
func (m Matrix4) ToMutable() *MutableMatrix4 {
	return &MutableMatrix4{m}
}

func (m Matrix4) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < 4; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "[%v, %v, %v, %v]", m.e[4*i], m.e[4*i+1], m.e[4*i+2], m.e[4*i+3])
	}
	sb.WriteString("]")
	return sb.String()
}

// Add returns the elementwise sum of this matrix and other.
func (m Matrix4) Add(other Matrix4) Matrix4 {
	for i := range m.e {
		m.e[i] += other.e[i]
	}
	return m
}

// Sub returns the elementwise difference of this matrix and other.
func (m Matrix4) Sub(other Matrix4) Matrix4 {
	for i := range m.e {
		m.e[i] -= other.e[i]
	}
	return m
}

// AddScalar returns this matrix with s added to every element.
func (m Matrix4) AddScalar(s float32) Matrix4 {
	for i := range m.e {
		m.e[i] += s
	}
	return m
}

// SubScalar returns this matrix with s subtracted from every element.
func (m Matrix4) SubScalar(s float32) Matrix4 {
	for i := range m.e {
		m.e[i] -= s
	}
	return m
}

// MulScalar returns this matrix with every element multiplied by s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	for i := range m.e {
		m.e[i] *= s
	}
	return m
}

// DivScalar returns this matrix with every element divided by s.
func (m Matrix4) DivScalar(s float32) Matrix4 {
	for i := range m.e {
		m.e[i] /= s
	}
	return m
}

// Negate returns this matrix with every element negated.
func (m Matrix4) Negate() Matrix4 {
	for i := range m.e {
		m.e[i] = -m.e[i]
	}
	return m
}

// Mul returns the matrix product m * other (row by column).
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	a, b := &m.e, &other.e
	r := Matrix4{}
	for i := 0; i < 4; i++ {
		a0, a1, a2, a3 := a[4*i], a[4*i+1], a[4*i+2], a[4*i+3]
		for j := 0; j < 4; j++ {
			r.e[4*i+j] = a0*b[j] + a1*b[4+j] + a2*b[8+j] + a3*b[12+j]
		}
	}
	return r
}

// Div returns m * other.Inverse(). A singular other yields
// infinite or NaN elements.
func (m Matrix4) Div(other Matrix4) Matrix4 {
	return m.Mul(other.Inverse())
}

// MulVector4 returns the row vector v multiplied by this matrix.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	x, y, z, w := v.e[0], v.e[1], v.e[2], v.e[3]
	return Vec4(x*m.e[0]+y*m.e[4]+z*m.e[8]+w*m.e[12],
		x*m.e[1]+y*m.e[5]+z*m.e[9]+w*m.e[13],
		x*m.e[2]+y*m.e[6]+z*m.e[10]+w*m.e[14],
		x*m.e[3]+y*m.e[7]+z*m.e[11]+w*m.e[15])
}

// MulVector3AsPoint returns the point v, with w = 1, transformed by this matrix.
// The result is not divided by w.
func (m Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return m.MulVector4(Vector4FromVector3(v, 1)).XYZ()
}

// MulVector3AsVector returns the direction v, with w = 0, transformed by this
// matrix, so translation does not apply.
func (m Matrix4) MulVector3AsVector(v Vector3) Vector3 {
	return m.MulVector4(Vector4FromVector3(v, 0)).XYZ()
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	r := Matrix4{}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.e[4*j+i] = m.e[4*i+j]
		}
	}
	return r
}

// minors returns the six 2x2 minors of the top two rows (s) and
// of the bottom two rows (c), which together expand the determinant
// and the cofactors by Laplace's theorem.
func (m Matrix4) minors() (s, c [6]float32) {
	e := &m.e
	s[0] = e[0]*e[5] - e[1]*e[4]
	s[1] = e[0]*e[6] - e[2]*e[4]
	s[2] = e[0]*e[7] - e[3]*e[4]
	s[3] = e[1]*e[6] - e[2]*e[5]
	s[4] = e[1]*e[7] - e[3]*e[5]
	s[5] = e[2]*e[7] - e[3]*e[6]

	c[0] = e[8]*e[13] - e[9]*e[12]
	c[1] = e[8]*e[14] - e[10]*e[12]
	c[2] = e[8]*e[15] - e[11]*e[12]
	c[3] = e[9]*e[14] - e[10]*e[13]
	c[4] = e[9]*e[15] - e[11]*e[13]
	c[5] = e[10]*e[15] - e[11]*e[14]
	return
}

// Determinant calculates the determinant of the matrix
// by cofactor expansion.
func (m Matrix4) Determinant() float32 {
	s, c := m.minors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Inverse returns the inverse of this matrix: its adjugate divided by its
// determinant. The determinant is not checked; a singular matrix yields
// infinite or NaN elements, so check [Matrix4.Determinant] first when
// that matters.
func (m Matrix4) Inverse() Matrix4 {
	s, c := m.minors()
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	e := &m.e
	adj := [16]float32{
		e[5]*c[5] - e[6]*c[4] + e[7]*c[3],
		-e[1]*c[5] + e[2]*c[4] - e[3]*c[3],
		e[13]*s[5] - e[14]*s[4] + e[15]*s[3],
		-e[9]*s[5] + e[10]*s[4] - e[11]*s[3],

		-e[4]*c[5] + e[6]*c[2] - e[7]*c[1],
		e[0]*c[5] - e[2]*c[2] + e[3]*c[1],
		-e[12]*s[5] + e[14]*s[2] - e[15]*s[1],
		e[8]*s[5] - e[10]*s[2] + e[11]*s[1],

		e[4]*c[4] - e[5]*c[2] + e[7]*c[0],
		-e[0]*c[4] + e[1]*c[2] - e[3]*c[0],
		e[12]*s[4] - e[13]*s[2] + e[15]*s[0],
		-e[8]*s[4] + e[9]*s[2] - e[11]*s[0],

		-e[4]*c[3] + e[5]*c[1] - e[6]*c[0],
		e[0]*c[3] - e[1]*c[1] + e[2]*c[0],
		-e[12]*s[3] + e[13]*s[1] - e[14]*s[0],
		e[8]*s[3] - e[9]*s[1] + e[10]*s[0],
	}
	r := Matrix4{}
	for i := range adj {
		r.e[i] = adj[i] / det
	}
	return r
}

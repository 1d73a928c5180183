// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// MutableMatrix4 is a [Matrix4] that can be updated in place.
// All [Matrix4] operations are available on it; the Set methods modify
// the receiver and return it for chaining.
//
// A MutableMatrix4 is exclusively owned scratch storage and is not safe
// for concurrent modification.
type MutableMatrix4 struct {
	Matrix4
}

// NewMutableMatrix4 returns a new [MutableMatrix4] set to the identity.
func NewMutableMatrix4() *MutableMatrix4 {
	return &MutableMatrix4{Matrix4Identity}
}

// AsSlice returns a slice backed by the matrix storage, in row-major order.
// Writes through it change the matrix.
func (m *MutableMatrix4) AsSlice() []float32 {
	return m.e[:]
}

// ToImmutable returns a copy of the current value.
func (m *MutableMatrix4) ToImmutable() Matrix4 {
	return m.Matrix4
}

// Set sets the matrix to other.
func (m *MutableMatrix4) Set(other Matrix4) *MutableMatrix4 {
	m.Matrix4 = other
	return m
}

// SetAt sets the element at row i, column j.
// It panics with an [*IndexError] if i or j is not in [0, 4).
func (m *MutableMatrix4) SetAt(i, j int, value float32) *MutableMatrix4 {
	checkIndex(i, 4)
	checkIndex(j, 4)
	m.e[4*i+j] = value
	return m
}

// SetRow sets row i.
// It panics with an [*IndexError] if i is not in [0, 4).
func (m *MutableMatrix4) SetRow(i int, row Vector4) *MutableMatrix4 {
	checkIndex(i, 4)
	copy(m.e[4*i:4*i+4], row.e[:])
	return m
}

// SetCol sets column j.
// It panics with an [*IndexError] if j is not in [0, 4).
func (m *MutableMatrix4) SetCol(j int, col Vector4) *MutableMatrix4 {
	checkIndex(j, 4)
	for i := 0; i < 4; i++ {
		m.e[4*i+j] = col.e[i]
	}
	return m
}

// SetIdentity sets this matrix to the identity.
func (m *MutableMatrix4) SetIdentity() *MutableMatrix4 {
	m.Matrix4 = Matrix4Identity
	return m
}

// SetZero sets all elements to zero.
func (m *MutableMatrix4) SetZero() *MutableMatrix4 {
	m.Matrix4 = Matrix4{}
	return m
}

// FromSlice sets the elements from the 16 row-major values of s starting at offset.
func (m *MutableMatrix4) FromSlice(s []float32, offset int) *MutableMatrix4 {
	copy(m.e[:], s[offset:offset+16])
	return m
}

// SetAdd sets this matrix to m + other.
func (m *MutableMatrix4) SetAdd(other Matrix4) *MutableMatrix4 {
	m.Matrix4 = m.Add(other)
	return m
}

// SetSub sets this matrix to m - other.
func (m *MutableMatrix4) SetSub(other Matrix4) *MutableMatrix4 {
	m.Matrix4 = m.Sub(other)
	return m
}

// SetAddScalar adds s to every element.
func (m *MutableMatrix4) SetAddScalar(s float32) *MutableMatrix4 {
	m.Matrix4 = m.AddScalar(s)
	return m
}

// SetSubScalar subtracts s from every element.
func (m *MutableMatrix4) SetSubScalar(s float32) *MutableMatrix4 {
	m.Matrix4 = m.SubScalar(s)
	return m
}

// SetMulScalar multiplies every element by s.
func (m *MutableMatrix4) SetMulScalar(s float32) *MutableMatrix4 {
	m.Matrix4 = m.MulScalar(s)
	return m
}

// SetDivScalar divides every element by s.
func (m *MutableMatrix4) SetDivScalar(s float32) *MutableMatrix4 {
	m.Matrix4 = m.DivScalar(s)
	return m
}

// SetNegate negates every element.
func (m *MutableMatrix4) SetNegate() *MutableMatrix4 {
	m.Matrix4 = m.Negate()
	return m
}

// SetMul sets this matrix to m * other.
func (m *MutableMatrix4) SetMul(other Matrix4) *MutableMatrix4 {
	m.Matrix4 = m.Mul(other)
	return m
}

// SetDiv sets this matrix to m * other.Inverse().
func (m *MutableMatrix4) SetDiv(other Matrix4) *MutableMatrix4 {
	m.Matrix4 = m.Div(other)
	return m
}

// SetTranspose transposes this matrix in place.
func (m *MutableMatrix4) SetTranspose() *MutableMatrix4 {
	e := &m.e
	e[1], e[4] = e[4], e[1]
	e[2], e[8] = e[8], e[2]
	e[3], e[12] = e[12], e[3]
	e[6], e[9] = e[9], e[6]
	e[7], e[13] = e[13], e[7]
	e[11], e[14] = e[14], e[11]
	return m
}

// SetInverse sets this matrix to its inverse. See [Matrix4.Inverse].
func (m *MutableMatrix4) SetInverse() *MutableMatrix4 {
	m.Matrix4 = m.Inverse()
	return m
}

// SetTranslate composes a translation by v into this matrix.
func (m *MutableMatrix4) SetTranslate(v Vector3) *MutableMatrix4 {
	m.Matrix4 = m.Translate(v)
	return m
}

// SetRotate composes a rotation of angle radians around axis into this matrix.
func (m *MutableMatrix4) SetRotate(angle float32, axis Vector3) *MutableMatrix4 {
	m.Matrix4 = m.Rotate(angle, axis)
	return m
}

// SetScale composes a scale by v into this matrix.
func (m *MutableMatrix4) SetScale(v Vector3) *MutableMatrix4 {
	m.Matrix4 = m.Scale(v)
	return m
}

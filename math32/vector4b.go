// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector4b is a 4D vector of bool components, as produced by the
// elementwise classification functions such as [Vector4.IsNaN].
type Vector4b struct {
	e [4]bool
}

var (
	Vector4bFalse = Vector4b{}
	Vector4bTrue  = Vector4bScalar(true)
)

// Vec4b returns a new [Vector4b] with the given components.
func Vec4b(x, y, z, w bool) Vector4b {
	return Vector4b{[4]bool{x, y, z, w}}
}

// Vector4bScalar returns a new [Vector4b] with all components set to b.
func Vector4bScalar(b bool) Vector4b {
	return Vec4b(b, b, b, b)
}

func (v Vector4b) X() bool { return v.e[0] }
func (v Vector4b) Y() bool { return v.e[1] }
func (v Vector4b) Z() bool { return v.e[2] }
func (v Vector4b) W() bool { return v.e[3] }

// WithX returns a copy with the X component set to x.
func (v Vector4b) WithX(x bool) Vector4b {
	v.e[0] = x
	return v
}

// WithY returns a copy with the Y component set to y.
func (v Vector4b) WithY(y bool) Vector4b {
	v.e[1] = y
	return v
}

// WithZ returns a copy with the Z component set to z.
func (v Vector4b) WithZ(z bool) Vector4b {
	v.e[2] = z
	return v
}

// WithW returns a copy with the W component set to w.
func (v Vector4b) WithW(w bool) Vector4b {
	v.e[3] = w
	return v
}

// Dim returns this vector component.
func (v Vector4b) Dim(dim Dims) bool {
	checkIndex(int(dim), 4)
	return v.e[dim]
}

func (v Vector4b) String() string {
	return fmt.Sprintf("(%t, %t, %t, %t)", v.e[0], v.e[1], v.e[2], v.e[3])
}

// Array returns the components in order.
func (v Vector4b) Array() [4]bool {
	return v.e
}

// ToSlice returns a new slice with the components in order.
func (v Vector4b) ToSlice() []bool {
	a := v.e
	return a[:]
}

// ToMutable returns a new [MutableVector4b] holding a copy of this vector.
func (v Vector4b) ToMutable() *MutableVector4b {
	return &MutableVector4b{v}
}

// And returns the logical AND of each component.
func (v Vector4b) And(other Vector4b) Vector4b {
	return Vec4b(v.e[0] && other.e[0], v.e[1] && other.e[1], v.e[2] && other.e[2], v.e[3] && other.e[3])
}

// Or returns the logical OR of each component.
func (v Vector4b) Or(other Vector4b) Vector4b {
	return Vec4b(v.e[0] || other.e[0], v.e[1] || other.e[1], v.e[2] || other.e[2], v.e[3] || other.e[3])
}

// Xor returns the logical XOR of each component.
func (v Vector4b) Xor(other Vector4b) Vector4b {
	return Vec4b(v.e[0] != other.e[0], v.e[1] != other.e[1], v.e[2] != other.e[2], v.e[3] != other.e[3])
}

// Not returns the logical complement of each component.
func (v Vector4b) Not() Vector4b {
	return Vec4b(!v.e[0], !v.e[1], !v.e[2], !v.e[3])
}

// Any returns whether any component is true.
func (v Vector4b) Any() bool {
	return v.e[0] || v.e[1] || v.e[2] || v.e[3]
}

// All returns whether every component is true.
func (v Vector4b) All() bool {
	return v.e[0] && v.e[1] && v.e[2] && v.e[3]
}

// MutableVector4b is a [Vector4b] that can be updated in place.
type MutableVector4b struct {
	Vector4b
}

// NewMutableVec4b returns a new [MutableVector4b] with the given components.
func NewMutableVec4b(x, y, z, w bool) *MutableVector4b {
	return &MutableVector4b{Vec4b(x, y, z, w)}
}

// AsSlice returns a slice backed by the vector's storage.
func (v *MutableVector4b) AsSlice() []bool {
	return v.e[:]
}

func (v *MutableVector4b) ToImmutable() Vector4b {
	return v.Vector4b
}

func (v *MutableVector4b) Set(x, y, z, w bool) *MutableVector4b {
	v.e[0] = x
	v.e[1] = y
	v.e[2] = z
	v.e[3] = w
	return v
}

func (v *MutableVector4b) SetX(x bool) *MutableVector4b {
	v.e[0] = x
	return v
}

func (v *MutableVector4b) SetY(y bool) *MutableVector4b {
	v.e[1] = y
	return v
}

func (v *MutableVector4b) SetZ(z bool) *MutableVector4b {
	v.e[2] = z
	return v
}

func (v *MutableVector4b) SetW(w bool) *MutableVector4b {
	v.e[3] = w
	return v
}

// SetDim sets this vector component value by dimension index.
func (v *MutableVector4b) SetDim(dim Dims, value bool) *MutableVector4b {
	checkIndex(int(dim), 4)
	v.e[dim] = value
	return v
}

func (v *MutableVector4b) SetAnd(other Vector4b) *MutableVector4b {
	v.Vector4b = v.And(other)
	return v
}

func (v *MutableVector4b) SetOr(other Vector4b) *MutableVector4b {
	v.Vector4b = v.Or(other)
	return v
}

func (v *MutableVector4b) SetXor(other Vector4b) *MutableVector4b {
	v.Vector4b = v.Xor(other)
	return v
}

func (v *MutableVector4b) SetNot() *MutableVector4b {
	v.Vector4b = v.Not()
	return v
}

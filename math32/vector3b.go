// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector3b is a 3D vector of bool components, as produced by the
// elementwise classification functions such as [Vector3.IsNaN].
type Vector3b struct {
	e [3]bool
}

var (
	Vector3bFalse = Vector3b{}
	Vector3bTrue  = Vector3bScalar(true)
)

// Vec3b returns a new [Vector3b] with the given components.
func Vec3b(x, y, z bool) Vector3b {
	return Vector3b{[3]bool{x, y, z}}
}

// Vector3bScalar returns a new [Vector3b] with all components set to b.
func Vector3bScalar(b bool) Vector3b {
	return Vec3b(b, b, b)
}

func (v Vector3b) X() bool { return v.e[0] }
func (v Vector3b) Y() bool { return v.e[1] }
func (v Vector3b) Z() bool { return v.e[2] }

// WithX returns a copy with the X component set to x.
func (v Vector3b) WithX(x bool) Vector3b {
	v.e[0] = x
	return v
}

// WithY returns a copy with the Y component set to y.
func (v Vector3b) WithY(y bool) Vector3b {
	v.e[1] = y
	return v
}

// WithZ returns a copy with the Z component set to z.
func (v Vector3b) WithZ(z bool) Vector3b {
	v.e[2] = z
	return v
}

// Dim returns this vector component.
func (v Vector3b) Dim(dim Dims) bool {
	checkIndex(int(dim), 3)
	return v.e[dim]
}

func (v Vector3b) String() string {
	return fmt.Sprintf("(%t, %t, %t)", v.e[0], v.e[1], v.e[2])
}

// Array returns the components in order.
func (v Vector3b) Array() [3]bool {
	return v.e
}

// ToSlice returns a new slice with the components in order.
func (v Vector3b) ToSlice() []bool {
	a := v.e
	return a[:]
}

// ToMutable returns a new [MutableVector3b] holding a copy of this vector.
func (v Vector3b) ToMutable() *MutableVector3b {
	return &MutableVector3b{v}
}

// And returns the logical AND of each component.
func (v Vector3b) And(other Vector3b) Vector3b {
	return Vec3b(v.e[0] && other.e[0], v.e[1] && other.e[1], v.e[2] && other.e[2])
}

// Or returns the logical OR of each component.
func (v Vector3b) Or(other Vector3b) Vector3b {
	return Vec3b(v.e[0] || other.e[0], v.e[1] || other.e[1], v.e[2] || other.e[2])
}

// Xor returns the logical XOR of each component.
func (v Vector3b) Xor(other Vector3b) Vector3b {
	return Vec3b(v.e[0] != other.e[0], v.e[1] != other.e[1], v.e[2] != other.e[2])
}

// Not returns the logical complement of each component.
func (v Vector3b) Not() Vector3b {
	return Vec3b(!v.e[0], !v.e[1], !v.e[2])
}

// Any returns whether any component is true.
func (v Vector3b) Any() bool {
	return v.e[0] || v.e[1] || v.e[2]
}

// All returns whether every component is true.
func (v Vector3b) All() bool {
	return v.e[0] && v.e[1] && v.e[2]
}

// MutableVector3b is a [Vector3b] that can be updated in place.
type MutableVector3b struct {
	Vector3b
}

// NewMutableVec3b returns a new [MutableVector3b] with the given components.
func NewMutableVec3b(x, y, z bool) *MutableVector3b {
	return &MutableVector3b{Vec3b(x, y, z)}
}

// AsSlice returns a slice backed by the vector's storage.
func (v *MutableVector3b) AsSlice() []bool {
	return v.e[:]
}

func (v *MutableVector3b) ToImmutable() Vector3b {
	return v.Vector3b
}

func (v *MutableVector3b) Set(x, y, z bool) *MutableVector3b {
	v.e[0] = x
	v.e[1] = y
	v.e[2] = z
	return v
}

func (v *MutableVector3b) SetX(x bool) *MutableVector3b {
	v.e[0] = x
	return v
}

func (v *MutableVector3b) SetY(y bool) *MutableVector3b {
	v.e[1] = y
	return v
}

func (v *MutableVector3b) SetZ(z bool) *MutableVector3b {
	v.e[2] = z
	return v
}

// SetDim sets this vector component value by dimension index.
func (v *MutableVector3b) SetDim(dim Dims, value bool) *MutableVector3b {
	checkIndex(int(dim), 3)
	v.e[dim] = value
	return v
}

func (v *MutableVector3b) SetAnd(other Vector3b) *MutableVector3b {
	v.Vector3b = v.And(other)
	return v
}

func (v *MutableVector3b) SetOr(other Vector3b) *MutableVector3b {
	v.Vector3b = v.Or(other)
	return v
}

func (v *MutableVector3b) SetXor(other Vector3b) *MutableVector3b {
	v.Vector3b = v.Xor(other)
	return v
}

func (v *MutableVector3b) SetNot() *MutableVector3b {
	v.Vector3b = v.Not()
	return v
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector2b is a 2D vector of bool components, as produced by the
// elementwise classification functions such as [Vector2.IsNaN].
type Vector2b struct {
	e [2]bool
}

var (
	Vector2bFalse = Vector2b{}
	Vector2bTrue  = Vector2bScalar(true)
)

// Vec2b returns a new [Vector2b] with the given components.
func Vec2b(x, y bool) Vector2b {
	return Vector2b{[2]bool{x, y}}
}

// Vector2bScalar returns a new [Vector2b] with all components set to b.
func Vector2bScalar(b bool) Vector2b {
	return Vec2b(b, b)
}

func (v Vector2b) X() bool { return v.e[0] }
func (v Vector2b) Y() bool { return v.e[1] }

// WithX returns a copy with the X component set to x.
func (v Vector2b) WithX(x bool) Vector2b {
	v.e[0] = x
	return v
}

// WithY returns a copy with the Y component set to y.
func (v Vector2b) WithY(y bool) Vector2b {
	v.e[1] = y
	return v
}

// Dim returns this vector component.
func (v Vector2b) Dim(dim Dims) bool {
	checkIndex(int(dim), 2)
	return v.e[dim]
}

func (v Vector2b) String() string {
	return fmt.Sprintf("(%t, %t)", v.e[0], v.e[1])
}

// Array returns the components in order.
func (v Vector2b) Array() [2]bool {
	return v.e
}

// ToSlice returns a new slice with the components in order.
func (v Vector2b) ToSlice() []bool {
	a := v.e
	return a[:]
}

// ToMutable returns a new [MutableVector2b] holding a copy of this vector.
func (v Vector2b) ToMutable() *MutableVector2b {
	return &MutableVector2b{v}
}

// And returns the logical AND of each component.
func (v Vector2b) And(other Vector2b) Vector2b {
	return Vec2b(v.e[0] && other.e[0], v.e[1] && other.e[1])
}

// Or returns the logical OR of each component.
func (v Vector2b) Or(other Vector2b) Vector2b {
	return Vec2b(v.e[0] || other.e[0], v.e[1] || other.e[1])
}

// Xor returns the logical XOR of each component.
func (v Vector2b) Xor(other Vector2b) Vector2b {
	return Vec2b(v.e[0] != other.e[0], v.e[1] != other.e[1])
}

// Not returns the logical complement of each component.
func (v Vector2b) Not() Vector2b {
	return Vec2b(!v.e[0], !v.e[1])
}

// Any returns whether any component is true.
func (v Vector2b) Any() bool {
	return v.e[0] || v.e[1]
}

// All returns whether every component is true.
func (v Vector2b) All() bool {
	return v.e[0] && v.e[1]
}

// MutableVector2b is a [Vector2b] that can be updated in place.
type MutableVector2b struct {
	Vector2b
}

// NewMutableVec2b returns a new [MutableVector2b] with the given components.
func NewMutableVec2b(x, y bool) *MutableVector2b {
	return &MutableVector2b{Vec2b(x, y)}
}

// AsSlice returns a slice backed by the vector's storage.
func (v *MutableVector2b) AsSlice() []bool {
	return v.e[:]
}

func (v *MutableVector2b) ToImmutable() Vector2b {
	return v.Vector2b
}

func (v *MutableVector2b) Set(x, y bool) *MutableVector2b {
	v.e[0] = x
	v.e[1] = y
	return v
}

func (v *MutableVector2b) SetX(x bool) *MutableVector2b {
	v.e[0] = x
	return v
}

func (v *MutableVector2b) SetY(y bool) *MutableVector2b {
	v.e[1] = y
	return v
}

// SetDim sets this vector component value by dimension index.
func (v *MutableVector2b) SetDim(dim Dims, value bool) *MutableVector2b {
	checkIndex(int(dim), 2)
	v.e[dim] = value
	return v
}

func (v *MutableVector2b) SetAnd(other Vector2b) *MutableVector2b {
	v.Vector2b = v.And(other)
	return v
}

func (v *MutableVector2b) SetOr(other Vector2b) *MutableVector2b {
	v.Vector2b = v.Or(other)
	return v
}

func (v *MutableVector2b) SetXor(other Vector2b) *MutableVector2b {
	v.Vector2b = v.Xor(other)
	return v
}

func (v *MutableVector2b) SetNot() *MutableVector2b {
	v.Vector2b = v.Not()
	return v
}

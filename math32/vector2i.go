// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"cogentcore.org/vkmath/math32/minmax"
)

// Vector2i is a 2D vector/point with X and Y int32 components.
// It is an immutable value; use [MutableVector2i] for in-place updates.
type Vector2i struct {
	e [2]int32
}

var (
	Vector2iZero = Vector2i{}
	Vector2iOne  = Vector2iScalar(1)

	Vector2iUp    = Vec2i(0, 1)
	Vector2iDown  = Vec2i(0, -1)
	Vector2iLeft  = Vec2i(-1, 0)
	Vector2iRight = Vec2i(1, 0)
)

// Vec2i returns a new [Vector2i] with the given x, y components.
func Vec2i(x, y int32) Vector2i {
	return Vector2i{[2]int32{x, y}}
}

// Vector2iScalar returns a new [Vector2i] with all components set to the given scalar value.
func Vector2iScalar(s int32) Vector2i {
	return Vec2i(s, s)
}

// Vector2iFromArray returns a new [Vector2i] with the components of a in order.
func Vector2iFromArray(a [2]int32) Vector2i {
	return Vector2i{a}
}

// Vector2iFromSlice returns a new [Vector2i] from the components of s starting at offset.
func Vector2iFromSlice(s []int32, offset int) Vector2i {
	return Vec2i(s[offset], s[offset+1])
}

// X returns the X component.
func (v Vector2i) X() int32 { return v.e[0] }

// Y returns the Y component.
func (v Vector2i) Y() int32 { return v.e[1] }

// WithX returns a copy with the X component set to x.
func (v Vector2i) WithX(x int32) Vector2i {
	v.e[0] = x
	return v
}

// WithY returns a copy with the Y component set to y.
func (v Vector2i) WithY(y int32) Vector2i {
	v.e[1] = y
	return v
}

// Dim returns this vector component.
// It panics with an [*IndexError] if dim is not in [0, 2).
func (v Vector2i) Dim(dim Dims) int32 {
	checkIndex(int(dim), 2)
	return v.e[dim]
}

func (v Vector2i) String() string {
	return fmt.Sprintf("(%d, %d)", v.e[0], v.e[1])
}

// Array returns the components in order.
func (v Vector2i) Array() [2]int32 {
	return v.e
}

// ToSlice returns a new slice with the components in order.
func (v Vector2i) ToSlice() []int32 {
	a := v.e
	return a[:]
}

// CopyTo copies the components into dst starting at offset.
func (v Vector2i) CopyTo(dst []int32, offset int) {
	copy(dst[offset:offset+2], v.e[:])
}

// ToMutable returns a new [MutableVector2i] holding a copy of this vector.
func (v Vector2i) ToMutable() *MutableVector2i {
	return &MutableVector2i{v}
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2i) Add(other Vector2i) Vector2i {
	return Vec2i(v.e[0]+other.e[0], v.e[1]+other.e[1])
}

// AddScalar applies + s to each component and returns result in a new vector.
func (v Vector2i) AddScalar(s int32) Vector2i {
	return Vec2i(v.e[0]+s, v.e[1]+s)
}

// Sub subtracts other vector from this one and returns result in a new vector.
func (v Vector2i) Sub(other Vector2i) Vector2i {
	return Vec2i(v.e[0]-other.e[0], v.e[1]-other.e[1])
}

// SubScalar applies - s to each component and returns result in a new vector.
func (v Vector2i) SubScalar(s int32) Vector2i {
	return Vec2i(v.e[0]-s, v.e[1]-s)
}

// Mul multiplies each component by the corresponding one from other and returns result in a new vector.
func (v Vector2i) Mul(other Vector2i) Vector2i {
	return Vec2i(v.e[0]*other.e[0], v.e[1]*other.e[1])
}

// MulScalar applies * s to each component and returns result in a new vector.
func (v Vector2i) MulScalar(s int32) Vector2i {
	return Vec2i(v.e[0]*s, v.e[1]*s)
}

// Div divides each component by the corresponding one from other and returns result in a new vector.
// It panics on a zero divisor component, as integer division does.
func (v Vector2i) Div(other Vector2i) Vector2i {
	return Vec2i(v.e[0]/other.e[0], v.e[1]/other.e[1])
}

// DivScalar applies / s to each component and returns result in a new vector.
func (v Vector2i) DivScalar(s int32) Vector2i {
	return Vec2i(v.e[0]/s, v.e[1]/s)
}

// Mod returns the remainder of each component divided by the corresponding
// one from other, truncated toward zero like the % operator.
func (v Vector2i) Mod(other Vector2i) Vector2i {
	return Vec2i(v.e[0]%other.e[0], v.e[1]%other.e[1])
}

// ModScalar returns the remainder of each component divided by s.
func (v Vector2i) ModScalar(s int32) Vector2i {
	return Vec2i(v.e[0]%s, v.e[1]%s)
}

// Negate returns the vector with each component negated.
func (v Vector2i) Negate() Vector2i {
	return Vec2i(-v.e[0], -v.e[1])
}

// Abs returns the vector with the absolute value of each component.
func (v Vector2i) Abs() Vector2i {
	return Vec2i(absInt(v.e[0]), absInt(v.e[1]))
}

// Min returns this vector with each component no greater than the corresponding one of other.
func (v Vector2i) Min(other Vector2i) Vector2i {
	return Vec2i(atMost(v.e[0], other.e[0]), atMost(v.e[1], other.e[1]))
}

// MinScalar returns this vector with each component no greater than s.
func (v Vector2i) MinScalar(s int32) Vector2i {
	return Vec2i(atMost(v.e[0], s), atMost(v.e[1], s))
}

// Max returns this vector with each component no less than the corresponding one of other.
func (v Vector2i) Max(other Vector2i) Vector2i {
	return Vec2i(atLeast(v.e[0], other.e[0]), atLeast(v.e[1], other.e[1]))
}

// MaxScalar returns this vector with each component no less than s.
func (v Vector2i) MaxScalar(s int32) Vector2i {
	return Vec2i(atLeast(v.e[0], s), atLeast(v.e[1], s))
}

// Clamp returns this vector with each component clamped between the
// corresponding components of min and max.
func (v Vector2i) Clamp(min, max Vector2i) Vector2i {
	return Vec2i(Clamp(v.e[0], min.e[0], max.e[0]), Clamp(v.e[1], min.e[1], max.e[1]))
}

// ClampScalar returns this vector with each component clamped to [min, max].
func (v Vector2i) ClampScalar(min, max int32) Vector2i {
	return Vec2i(Clamp(v.e[0], min, max), Clamp(v.e[1], min, max))
}

// ClampRange returns this vector with each component clipped to the closed range r.
func (v Vector2i) ClampRange(r minmax.I32) Vector2i {
	return Vec2i(r.ClipValue(v.e[0]), r.ClipValue(v.e[1]))
}

// Dot returns the dot product of this vector with other.
func (v Vector2i) Dot(other Vector2i) int32 {
	return v.e[0]*other.e[0] + v.e[1]*other.e[1]
}

// LengthSquared returns the sum of the squared components.
func (v Vector2i) LengthSquared() int32 {
	return v.Dot(v)
}

// Length returns the length (magnitude) of this vector.
func (v Vector2i) Length() float32 {
	return Sqrt(float32(v.LengthSquared()))
}

///////////////////////////////////////////////////////////////////////
//  Bitwise operations

// And returns the bitwise AND of each component with the corresponding one of other.
func (v Vector2i) And(other Vector2i) Vector2i {
	return Vec2i(v.e[0]&other.e[0], v.e[1]&other.e[1])
}

// Or returns the bitwise OR of each component with the corresponding one of other.
func (v Vector2i) Or(other Vector2i) Vector2i {
	return Vec2i(v.e[0]|other.e[0], v.e[1]|other.e[1])
}

// Xor returns the bitwise XOR of each component with the corresponding one of other.
func (v Vector2i) Xor(other Vector2i) Vector2i {
	return Vec2i(v.e[0]^other.e[0], v.e[1]^other.e[1])
}

// Not returns the bitwise complement of each component.
func (v Vector2i) Not() Vector2i {
	return Vec2i(^v.e[0], ^v.e[1])
}

// Shl returns each component shifted left by s bits.
func (v Vector2i) Shl(s uint) Vector2i {
	return Vec2i(v.e[0]<<s, v.e[1]<<s)
}

// Shr returns each component shifted right by s bits (arithmetic shift).
func (v Vector2i) Shr(s uint) Vector2i {
	return Vec2i(v.e[0]>>s, v.e[1]>>s)
}

// ToVector2 returns this vector converted to float32 components.
func (v Vector2i) ToVector2() Vector2 {
	return Vec2(float32(v.e[0]), float32(v.e[1]))
}

// ToVector2u returns this vector with each component converted to a uint32.
func (v Vector2i) ToVector2u() Vector2u {
	return Vec2u(uint32(v.e[0]), uint32(v.e[1]))
}

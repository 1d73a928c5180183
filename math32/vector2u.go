// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"cogentcore.org/vkmath/math32/minmax"
)

// Vector2u is a 2D vector/point with X and Y uint32 components.
type Vector2u struct {
	e [2]uint32
}

var (
	Vector2uZero = Vector2u{}
	Vector2uOne  = Vector2uScalar(1)
)

// Vec2u returns a new [Vector2u] with the given x, y components.
func Vec2u(x, y uint32) Vector2u {
	return Vector2u{[2]uint32{x, y}}
}

// Vector2uScalar returns a new [Vector2u] with all components set to the given scalar value.
func Vector2uScalar(s uint32) Vector2u {
	return Vec2u(s, s)
}

// Vector2uFromArray returns a new [Vector2u] with the components of a in order.
func Vector2uFromArray(a [2]uint32) Vector2u {
	return Vector2u{a}
}

// Vector2uFromSlice returns a new [Vector2u] from the components of s starting at offset.
func Vector2uFromSlice(s []uint32, offset int) Vector2u {
	return Vec2u(s[offset], s[offset+1])
}

// X returns the X component.
func (v Vector2u) X() uint32 { return v.e[0] }

// Y returns the Y component.
func (v Vector2u) Y() uint32 { return v.e[1] }

// WithX returns a copy with the X component set to x.
func (v Vector2u) WithX(x uint32) Vector2u {
	v.e[0] = x
	return v
}

// WithY returns a copy with the Y component set to y.
func (v Vector2u) WithY(y uint32) Vector2u {
	v.e[1] = y
	return v
}

// Dim returns this vector component.
// It panics with an [*IndexError] if dim is not in [0, 2).
func (v Vector2u) Dim(dim Dims) uint32 {
	checkIndex(int(dim), 2)
	return v.e[dim]
}

func (v Vector2u) String() string {
	return fmt.Sprintf("(%d, %d)", v.e[0], v.e[1])
}

// Array returns the components in order.
func (v Vector2u) Array() [2]uint32 {
	return v.e
}

// ToSlice returns a new slice with the components in order.
func (v Vector2u) ToSlice() []uint32 {
	a := v.e
	return a[:]
}

// CopyTo copies the components into dst starting at offset.
func (v Vector2u) CopyTo(dst []uint32, offset int) {
	copy(dst[offset:offset+2], v.e[:])
}

// ToMutable returns a new [MutableVector2u] holding a copy of this vector.
func (v Vector2u) ToMutable() *MutableVector2u {
	return &MutableVector2u{v}
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector2u) Add(other Vector2u) Vector2u {
	return Vec2u(v.e[0]+other.e[0], v.e[1]+other.e[1])
}

// AddScalar applies + s to each component and returns result in a new vector.
func (v Vector2u) AddScalar(s uint32) Vector2u {
	return Vec2u(v.e[0]+s, v.e[1]+s)
}

// Sub subtracts other vector from this one and returns result in a new vector.
func (v Vector2u) Sub(other Vector2u) Vector2u {
	return Vec2u(v.e[0]-other.e[0], v.e[1]-other.e[1])
}

// SubScalar applies - s to each component and returns result in a new vector.
func (v Vector2u) SubScalar(s uint32) Vector2u {
	return Vec2u(v.e[0]-s, v.e[1]-s)
}

// Mul multiplies each component by the corresponding one from other and returns result in a new vector.
func (v Vector2u) Mul(other Vector2u) Vector2u {
	return Vec2u(v.e[0]*other.e[0], v.e[1]*other.e[1])
}

// MulScalar applies * s to each component and returns result in a new vector.
func (v Vector2u) MulScalar(s uint32) Vector2u {
	return Vec2u(v.e[0]*s, v.e[1]*s)
}

// Div divides each component by the corresponding one from other and returns result in a new vector.
// It panics on a zero divisor component, as integer division does.
func (v Vector2u) Div(other Vector2u) Vector2u {
	return Vec2u(v.e[0]/other.e[0], v.e[1]/other.e[1])
}

// DivScalar applies / s to each component and returns result in a new vector.
func (v Vector2u) DivScalar(s uint32) Vector2u {
	return Vec2u(v.e[0]/s, v.e[1]/s)
}

// Mod returns the remainder of each component divided by the corresponding
// one from other, truncated toward zero like the % operator.
func (v Vector2u) Mod(other Vector2u) Vector2u {
	return Vec2u(v.e[0]%other.e[0], v.e[1]%other.e[1])
}

// ModScalar returns the remainder of each component divided by s.
func (v Vector2u) ModScalar(s uint32) Vector2u {
	return Vec2u(v.e[0]%s, v.e[1]%s)
}

// Min returns this vector with each component no greater than the corresponding one of other.
func (v Vector2u) Min(other Vector2u) Vector2u {
	return Vec2u(atMost(v.e[0], other.e[0]), atMost(v.e[1], other.e[1]))
}

// MinScalar returns this vector with each component no greater than s.
func (v Vector2u) MinScalar(s uint32) Vector2u {
	return Vec2u(atMost(v.e[0], s), atMost(v.e[1], s))
}

// Max returns this vector with each component no less than the corresponding one of other.
func (v Vector2u) Max(other Vector2u) Vector2u {
	return Vec2u(atLeast(v.e[0], other.e[0]), atLeast(v.e[1], other.e[1]))
}

// MaxScalar returns this vector with each component no less than s.
func (v Vector2u) MaxScalar(s uint32) Vector2u {
	return Vec2u(atLeast(v.e[0], s), atLeast(v.e[1], s))
}

// Clamp returns this vector with each component clamped between the
// corresponding components of min and max.
func (v Vector2u) Clamp(min, max Vector2u) Vector2u {
	return Vec2u(Clamp(v.e[0], min.e[0], max.e[0]), Clamp(v.e[1], min.e[1], max.e[1]))
}

// ClampScalar returns this vector with each component clamped to [min, max].
func (v Vector2u) ClampScalar(min, max uint32) Vector2u {
	return Vec2u(Clamp(v.e[0], min, max), Clamp(v.e[1], min, max))
}

// ClampRange returns this vector with each component clipped to the closed range r.
func (v Vector2u) ClampRange(r minmax.U32) Vector2u {
	return Vec2u(r.ClipValue(v.e[0]), r.ClipValue(v.e[1]))
}

// Dot returns the dot product of this vector with other.
func (v Vector2u) Dot(other Vector2u) uint32 {
	return v.e[0]*other.e[0] + v.e[1]*other.e[1]
}

// LengthSquared returns the sum of the squared components.
func (v Vector2u) LengthSquared() uint32 {
	return v.Dot(v)
}

// Length returns the length (magnitude) of this vector.
func (v Vector2u) Length() float32 {
	return Sqrt(float32(v.LengthSquared()))
}

///////////////////////////////////////////////////////////////////////
//  Bitwise operations

// And returns the bitwise AND of each component with the corresponding one of other.
func (v Vector2u) And(other Vector2u) Vector2u {
	return Vec2u(v.e[0]&other.e[0], v.e[1]&other.e[1])
}

// Or returns the bitwise OR of each component with the corresponding one of other.
func (v Vector2u) Or(other Vector2u) Vector2u {
	return Vec2u(v.e[0]|other.e[0], v.e[1]|other.e[1])
}

// Xor returns the bitwise XOR of each component with the corresponding one of other.
func (v Vector2u) Xor(other Vector2u) Vector2u {
	return Vec2u(v.e[0]^other.e[0], v.e[1]^other.e[1])
}

// Not returns the bitwise complement of each component.
func (v Vector2u) Not() Vector2u {
	return Vec2u(^v.e[0], ^v.e[1])
}

// Shl returns each component shifted left by s bits.
func (v Vector2u) Shl(s uint) Vector2u {
	return Vec2u(v.e[0]<<s, v.e[1]<<s)
}

// Shr returns each component shifted right by s bits (logical shift).
func (v Vector2u) Shr(s uint) Vector2u {
	return Vec2u(v.e[0]>>s, v.e[1]>>s)
}

// ToVector2 returns this vector converted to float32 components.
func (v Vector2u) ToVector2() Vector2 {
	return Vec2(float32(v.e[0]), float32(v.e[1]))
}

// ToVector2i returns this vector with each component converted to an int32.
func (v Vector2u) ToVector2i() Vector2i {
	return Vec2i(int32(v.e[0]), int32(v.e[1]))
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"cogentcore.org/vkmath/math32/minmax"
)

// Vector4i is a 4D vector/point with X, Y, Z and W int32 components.
type Vector4i struct {
	e [4]int32
}

var (
	Vector4iZero = Vector4i{}
	Vector4iOne  = Vector4iScalar(1)
)

// Vec4i returns a new [Vector4i] with the given x, y, z, w components.
func Vec4i(x, y, z, w int32) Vector4i {
	return Vector4i{[4]int32{x, y, z, w}}
}

// Vector4iScalar returns a new [Vector4i] with all components set to the given scalar value.
func Vector4iScalar(s int32) Vector4i {
	return Vec4i(s, s, s, s)
}

// Vector4iFromArray returns a new [Vector4i] with the components of a in order.
func Vector4iFromArray(a [4]int32) Vector4i {
	return Vector4i{a}
}

// Vector4iFromSlice returns a new [Vector4i] from the components of s starting at offset.
func Vector4iFromSlice(s []int32, offset int) Vector4i {
	return Vec4i(s[offset], s[offset+1], s[offset+2], s[offset+3])
}

// X returns the X component.
func (v Vector4i) X() int32 { return v.e[0] }

// Y returns the Y component.
func (v Vector4i) Y() int32 { return v.e[1] }

// Z returns the Z component.
func (v Vector4i) Z() int32 { return v.e[2] }

// W returns the W component.
func (v Vector4i) W() int32 { return v.e[3] }

// WithX returns a copy with the X component set to x.
func (v Vector4i) WithX(x int32) Vector4i {
	v.e[0] = x
	return v
}

// WithY returns a copy with the Y component set to y.
func (v Vector4i) WithY(y int32) Vector4i {
	v.e[1] = y
	return v
}

// WithZ returns a copy with the Z component set to z.
func (v Vector4i) WithZ(z int32) Vector4i {
	v.e[2] = z
	return v
}

// WithW returns a copy with the W component set to w.
func (v Vector4i) WithW(w int32) Vector4i {
	v.e[3] = w
	return v
}

// Dim returns this vector component.
// It panics with an [*IndexError] if dim is not in [0, 4).
func (v Vector4i) Dim(dim Dims) int32 {
	checkIndex(int(dim), 4)
	return v.e[dim]
}

func (v Vector4i) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", v.e[0], v.e[1], v.e[2], v.e[3])
}

// Array returns the components in order.
func (v Vector4i) Array() [4]int32 {
	return v.e
}

// ToSlice returns a new slice with the components in order.
func (v Vector4i) ToSlice() []int32 {
	a := v.e
	return a[:]
}

// CopyTo copies the components into dst starting at offset.
func (v Vector4i) CopyTo(dst []int32, offset int) {
	copy(dst[offset:offset+4], v.e[:])
}

// ToMutable returns a new [MutableVector4i] holding a copy of this vector.
func (v Vector4i) ToMutable() *MutableVector4i {
	return &MutableVector4i{v}
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector4i) Add(other Vector4i) Vector4i {
	return Vec4i(v.e[0]+other.e[0], v.e[1]+other.e[1], v.e[2]+other.e[2], v.e[3]+other.e[3])
}

// AddScalar applies + s to each component and returns result in a new vector.
func (v Vector4i) AddScalar(s int32) Vector4i {
	return Vec4i(v.e[0]+s, v.e[1]+s, v.e[2]+s, v.e[3]+s)
}

// Sub subtracts other vector from this one and returns result in a new vector.
func (v Vector4i) Sub(other Vector4i) Vector4i {
	return Vec4i(v.e[0]-other.e[0], v.e[1]-other.e[1], v.e[2]-other.e[2], v.e[3]-other.e[3])
}

// SubScalar applies - s to each component and returns result in a new vector.
func (v Vector4i) SubScalar(s int32) Vector4i {
	return Vec4i(v.e[0]-s, v.e[1]-s, v.e[2]-s, v.e[3]-s)
}

// Mul multiplies each component by the corresponding one from other and returns result in a new vector.
func (v Vector4i) Mul(other Vector4i) Vector4i {
	return Vec4i(v.e[0]*other.e[0], v.e[1]*other.e[1], v.e[2]*other.e[2], v.e[3]*other.e[3])
}

// MulScalar applies * s to each component and returns result in a new vector.
func (v Vector4i) MulScalar(s int32) Vector4i {
	return Vec4i(v.e[0]*s, v.e[1]*s, v.e[2]*s, v.e[3]*s)
}

// Div divides each component by the corresponding one from other and returns result in a new vector.
// It panics on a zero divisor component, as integer division does.
func (v Vector4i) Div(other Vector4i) Vector4i {
	return Vec4i(v.e[0]/other.e[0], v.e[1]/other.e[1], v.e[2]/other.e[2], v.e[3]/other.e[3])
}

// DivScalar applies / s to each component and returns result in a new vector.
func (v Vector4i) DivScalar(s int32) Vector4i {
	return Vec4i(v.e[0]/s, v.e[1]/s, v.e[2]/s, v.e[3]/s)
}

// Mod returns the remainder of each component divided by the corresponding
// one from other, truncated toward zero like the % operator.
func (v Vector4i) Mod(other Vector4i) Vector4i {
	return Vec4i(v.e[0]%other.e[0], v.e[1]%other.e[1], v.e[2]%other.e[2], v.e[3]%other.e[3])
}

// ModScalar returns the remainder of each component divided by s.
func (v Vector4i) ModScalar(s int32) Vector4i {
	return Vec4i(v.e[0]%s, v.e[1]%s, v.e[2]%s, v.e[3]%s)
}

// Negate returns the vector with each component negated.
func (v Vector4i) Negate() Vector4i {
	return Vec4i(-v.e[0], -v.e[1], -v.e[2], -v.e[3])
}

// Abs returns the vector with the absolute value of each component.
func (v Vector4i) Abs() Vector4i {
	return Vec4i(absInt(v.e[0]), absInt(v.e[1]), absInt(v.e[2]), absInt(v.e[3]))
}

// Min returns this vector with each component no greater than the corresponding one of other.
func (v Vector4i) Min(other Vector4i) Vector4i {
	return Vec4i(atMost(v.e[0], other.e[0]), atMost(v.e[1], other.e[1]), atMost(v.e[2], other.e[2]), atMost(v.e[3], other.e[3]))
}

// MinScalar returns this vector with each component no greater than s.
func (v Vector4i) MinScalar(s int32) Vector4i {
	return Vec4i(atMost(v.e[0], s), atMost(v.e[1], s), atMost(v.e[2], s), atMost(v.e[3], s))
}

// Max returns this vector with each component no less than the corresponding one of other.
func (v Vector4i) Max(other Vector4i) Vector4i {
	return Vec4i(atLeast(v.e[0], other.e[0]), atLeast(v.e[1], other.e[1]), atLeast(v.e[2], other.e[2]), atLeast(v.e[3], other.e[3]))
}

// MaxScalar returns this vector with each component no less than s.
func (v Vector4i) MaxScalar(s int32) Vector4i {
	return Vec4i(atLeast(v.e[0], s), atLeast(v.e[1], s), atLeast(v.e[2], s), atLeast(v.e[3], s))
}

// Clamp returns this vector with each component clamped between the
// corresponding components of min and max.
func (v Vector4i) Clamp(min, max Vector4i) Vector4i {
	return Vec4i(Clamp(v.e[0], min.e[0], max.e[0]), Clamp(v.e[1], min.e[1], max.e[1]), Clamp(v.e[2], min.e[2], max.e[2]), Clamp(v.e[3], min.e[3], max.e[3]))
}

// ClampScalar returns this vector with each component clamped to [min, max].
func (v Vector4i) ClampScalar(min, max int32) Vector4i {
	return Vec4i(Clamp(v.e[0], min, max), Clamp(v.e[1], min, max), Clamp(v.e[2], min, max), Clamp(v.e[3], min, max))
}

// ClampRange returns this vector with each component clipped to the closed range r.
func (v Vector4i) ClampRange(r minmax.I32) Vector4i {
	return Vec4i(r.ClipValue(v.e[0]), r.ClipValue(v.e[1]), r.ClipValue(v.e[2]), r.ClipValue(v.e[3]))
}

// Dot returns the dot product of this vector with other.
func (v Vector4i) Dot(other Vector4i) int32 {
	return v.e[0]*other.e[0] + v.e[1]*other.e[1] + v.e[2]*other.e[2] + v.e[3]*other.e[3]
}

// LengthSquared returns the sum of the squared components.
func (v Vector4i) LengthSquared() int32 {
	return v.Dot(v)
}

// Length returns the length (magnitude) of this vector.
func (v Vector4i) Length() float32 {
	return Sqrt(float32(v.LengthSquared()))
}

///////////////////////////////////////////////////////////////////////
//  Bitwise operations

// And returns the bitwise AND of each component with the corresponding one of other.
func (v Vector4i) And(other Vector4i) Vector4i {
	return Vec4i(v.e[0]&other.e[0], v.e[1]&other.e[1], v.e[2]&other.e[2], v.e[3]&other.e[3])
}

// Or returns the bitwise OR of each component with the corresponding one of other.
func (v Vector4i) Or(other Vector4i) Vector4i {
	return Vec4i(v.e[0]|other.e[0], v.e[1]|other.e[1], v.e[2]|other.e[2], v.e[3]|other.e[3])
}

// Xor returns the bitwise XOR of each component with the corresponding one of other.
func (v Vector4i) Xor(other Vector4i) Vector4i {
	return Vec4i(v.e[0]^other.e[0], v.e[1]^other.e[1], v.e[2]^other.e[2], v.e[3]^other.e[3])
}

// Not returns the bitwise complement of each component.
func (v Vector4i) Not() Vector4i {
	return Vec4i(^v.e[0], ^v.e[1], ^v.e[2], ^v.e[3])
}

// Shl returns each component shifted left by s bits.
func (v Vector4i) Shl(s uint) Vector4i {
	return Vec4i(v.e[0]<<s, v.e[1]<<s, v.e[2]<<s, v.e[3]<<s)
}

// Shr returns each component shifted right by s bits (arithmetic shift).
func (v Vector4i) Shr(s uint) Vector4i {
	return Vec4i(v.e[0]>>s, v.e[1]>>s, v.e[2]>>s, v.e[3]>>s)
}

// ToVector4 returns this vector converted to float32 components.
func (v Vector4i) ToVector4() Vector4 {
	return Vec4(float32(v.e[0]), float32(v.e[1]), float32(v.e[2]), float32(v.e[3]))
}

// ToVector4u returns this vector with each component converted to a uint32.
func (v Vector4i) ToVector4u() Vector4u {
	return Vec4u(uint32(v.e[0]), uint32(v.e[1]), uint32(v.e[2]), uint32(v.e[3]))
}

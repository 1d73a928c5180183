// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"cogentcore.org/vkmath/math32/minmax"
)

// Vector4u is a 4D vector/point with X, Y, Z and W uint32 components.
type Vector4u struct {
	e [4]uint32
}

var (
	Vector4uZero = Vector4u{}
	Vector4uOne  = Vector4uScalar(1)
)

// Vec4u returns a new [Vector4u] with the given x, y, z, w components.
func Vec4u(x, y, z, w uint32) Vector4u {
	return Vector4u{[4]uint32{x, y, z, w}}
}

// Vector4uScalar returns a new [Vector4u] with all components set to the given scalar value.
func Vector4uScalar(s uint32) Vector4u {
	return Vec4u(s, s, s, s)
}

// Vector4uFromArray returns a new [Vector4u] with the components of a in order.
func Vector4uFromArray(a [4]uint32) Vector4u {
	return Vector4u{a}
}

// Vector4uFromSlice returns a new [Vector4u] from the components of s starting at offset.
func Vector4uFromSlice(s []uint32, offset int) Vector4u {
	return Vec4u(s[offset], s[offset+1], s[offset+2], s[offset+3])
}

// X returns the X component.
func (v Vector4u) X() uint32 { return v.e[0] }

// Y returns the Y component.
func (v Vector4u) Y() uint32 { return v.e[1] }

// Z returns the Z component.
func (v Vector4u) Z() uint32 { return v.e[2] }

// W returns the W component.
func (v Vector4u) W() uint32 { return v.e[3] }

// WithX returns a copy with the X component set to x.
func (v Vector4u) WithX(x uint32) Vector4u {
	v.e[0] = x
	return v
}

// WithY returns a copy with the Y component set to y.
func (v Vector4u) WithY(y uint32) Vector4u {
	v.e[1] = y
	return v
}

// WithZ returns a copy with the Z component set to z.
func (v Vector4u) WithZ(z uint32) Vector4u {
	v.e[2] = z
	return v
}

// WithW returns a copy with the W component set to w.
func (v Vector4u) WithW(w uint32) Vector4u {
	v.e[3] = w
	return v
}

// Dim returns this vector component.
// It panics with an [*IndexError] if dim is not in [0, 4).
func (v Vector4u) Dim(dim Dims) uint32 {
	checkIndex(int(dim), 4)
	return v.e[dim]
}

func (v Vector4u) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", v.e[0], v.e[1], v.e[2], v.e[3])
}

// Array returns the components in order.
func (v Vector4u) Array() [4]uint32 {
	return v.e
}

// ToSlice returns a new slice with the components in order.
func (v Vector4u) ToSlice() []uint32 {
	a := v.e
	return a[:]
}

// CopyTo copies the components into dst starting at offset.
func (v Vector4u) CopyTo(dst []uint32, offset int) {
	copy(dst[offset:offset+4], v.e[:])
}

// ToMutable returns a new [MutableVector4u] holding a copy of this vector.
func (v Vector4u) ToMutable() *MutableVector4u {
	return &MutableVector4u{v}
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector4u) Add(other Vector4u) Vector4u {
	return Vec4u(v.e[0]+other.e[0], v.e[1]+other.e[1], v.e[2]+other.e[2], v.e[3]+other.e[3])
}

// AddScalar applies + s to each component and returns result in a new vector.
func (v Vector4u) AddScalar(s uint32) Vector4u {
	return Vec4u(v.e[0]+s, v.e[1]+s, v.e[2]+s, v.e[3]+s)
}

// Sub subtracts other vector from this one and returns result in a new vector.
func (v Vector4u) Sub(other Vector4u) Vector4u {
	return Vec4u(v.e[0]-other.e[0], v.e[1]-other.e[1], v.e[2]-other.e[2], v.e[3]-other.e[3])
}

// SubScalar applies - s to each component and returns result in a new vector.
func (v Vector4u) SubScalar(s uint32) Vector4u {
	return Vec4u(v.e[0]-s, v.e[1]-s, v.e[2]-s, v.e[3]-s)
}

// Mul multiplies each component by the corresponding one from other and returns result in a new vector.
func (v Vector4u) Mul(other Vector4u) Vector4u {
	return Vec4u(v.e[0]*other.e[0], v.e[1]*other.e[1], v.e[2]*other.e[2], v.e[3]*other.e[3])
}

// MulScalar applies * s to each component and returns result in a new vector.
func (v Vector4u) MulScalar(s uint32) Vector4u {
	return Vec4u(v.e[0]*s, v.e[1]*s, v.e[2]*s, v.e[3]*s)
}

// Div divides each component by the corresponding one from other and returns result in a new vector.
// It panics on a zero divisor component, as integer division does.
func (v Vector4u) Div(other Vector4u) Vector4u {
	return Vec4u(v.e[0]/other.e[0], v.e[1]/other.e[1], v.e[2]/other.e[2], v.e[3]/other.e[3])
}

// DivScalar applies / s to each component and returns result in a new vector.
func (v Vector4u) DivScalar(s uint32) Vector4u {
	return Vec4u(v.e[0]/s, v.e[1]/s, v.e[2]/s, v.e[3]/s)
}

// Mod returns the remainder of each component divided by the corresponding
// one from other, truncated toward zero like the % operator.
func (v Vector4u) Mod(other Vector4u) Vector4u {
	return Vec4u(v.e[0]%other.e[0], v.e[1]%other.e[1], v.e[2]%other.e[2], v.e[3]%other.e[3])
}

// ModScalar returns the remainder of each component divided by s.
func (v Vector4u) ModScalar(s uint32) Vector4u {
	return Vec4u(v.e[0]%s, v.e[1]%s, v.e[2]%s, v.e[3]%s)
}

// Min returns this vector with each component no greater than the corresponding one of other.
func (v Vector4u) Min(other Vector4u) Vector4u {
	return Vec4u(atMost(v.e[0], other.e[0]), atMost(v.e[1], other.e[1]), atMost(v.e[2], other.e[2]), atMost(v.e[3], other.e[3]))
}

// MinScalar returns this vector with each component no greater than s.
func (v Vector4u) MinScalar(s uint32) Vector4u {
	return Vec4u(atMost(v.e[0], s), atMost(v.e[1], s), atMost(v.e[2], s), atMost(v.e[3], s))
}

// Max returns this vector with each component no less than the corresponding one of other.
func (v Vector4u) Max(other Vector4u) Vector4u {
	return Vec4u(atLeast(v.e[0], other.e[0]), atLeast(v.e[1], other.e[1]), atLeast(v.e[2], other.e[2]), atLeast(v.e[3], other.e[3]))
}

// MaxScalar returns this vector with each component no less than s.
func (v Vector4u) MaxScalar(s uint32) Vector4u {
	return Vec4u(atLeast(v.e[0], s), atLeast(v.e[1], s), atLeast(v.e[2], s), atLeast(v.e[3], s))
}

// Clamp returns this vector with each component clamped between the
// corresponding components of min and max.
func (v Vector4u) Clamp(min, max Vector4u) Vector4u {
	return Vec4u(Clamp(v.e[0], min.e[0], max.e[0]), Clamp(v.e[1], min.e[1], max.e[1]), Clamp(v.e[2], min.e[2], max.e[2]), Clamp(v.e[3], min.e[3], max.e[3]))
}

// ClampScalar returns this vector with each component clamped to [min, max].
func (v Vector4u) ClampScalar(min, max uint32) Vector4u {
	return Vec4u(Clamp(v.e[0], min, max), Clamp(v.e[1], min, max), Clamp(v.e[2], min, max), Clamp(v.e[3], min, max))
}

// ClampRange returns this vector with each component clipped to the closed range r.
func (v Vector4u) ClampRange(r minmax.U32) Vector4u {
	return Vec4u(r.ClipValue(v.e[0]), r.ClipValue(v.e[1]), r.ClipValue(v.e[2]), r.ClipValue(v.e[3]))
}

// Dot returns the dot product of this vector with other.
func (v Vector4u) Dot(other Vector4u) uint32 {
	return v.e[0]*other.e[0] + v.e[1]*other.e[1] + v.e[2]*other.e[2] + v.e[3]*other.e[3]
}

// LengthSquared returns the sum of the squared components.
func (v Vector4u) LengthSquared() uint32 {
	return v.Dot(v)
}

// Length returns the length (magnitude) of this vector.
func (v Vector4u) Length() float32 {
	return Sqrt(float32(v.LengthSquared()))
}

///////////////////////////////////////////////////////////////////////
//  Bitwise operations

// And returns the bitwise AND of each component with the corresponding one of other.
func (v Vector4u) And(other Vector4u) Vector4u {
	return Vec4u(v.e[0]&other.e[0], v.e[1]&other.e[1], v.e[2]&other.e[2], v.e[3]&other.e[3])
}

// Or returns the bitwise OR of each component with the corresponding one of other.
func (v Vector4u) Or(other Vector4u) Vector4u {
	return Vec4u(v.e[0]|other.e[0], v.e[1]|other.e[1], v.e[2]|other.e[2], v.e[3]|other.e[3])
}

// Xor returns the bitwise XOR of each component with the corresponding one of other.
func (v Vector4u) Xor(other Vector4u) Vector4u {
	return Vec4u(v.e[0]^other.e[0], v.e[1]^other.e[1], v.e[2]^other.e[2], v.e[3]^other.e[3])
}

// Not returns the bitwise complement of each component.
func (v Vector4u) Not() Vector4u {
	return Vec4u(^v.e[0], ^v.e[1], ^v.e[2], ^v.e[3])
}

// Shl returns each component shifted left by s bits.
func (v Vector4u) Shl(s uint) Vector4u {
	return Vec4u(v.e[0]<<s, v.e[1]<<s, v.e[2]<<s, v.e[3]<<s)
}

// Shr returns each component shifted right by s bits (logical shift).
func (v Vector4u) Shr(s uint) Vector4u {
	return Vec4u(v.e[0]>>s, v.e[1]>>s, v.e[2]>>s, v.e[3]>>s)
}

// ToVector4 returns this vector converted to float32 components.
func (v Vector4u) ToVector4() Vector4 {
	return Vec4(float32(v.e[0]), float32(v.e[1]), float32(v.e[2]), float32(v.e[3]))
}

// ToVector4i returns this vector with each component converted to an int32.
func (v Vector4u) ToVector4i() Vector4i {
	return Vec4i(int32(v.e[0]), int32(v.e[1]), int32(v.e[2]), int32(v.e[3]))
}

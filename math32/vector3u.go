// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"cogentcore.org/vkmath/math32/minmax"
)

// Vector3u is a 3D vector/point with X, Y and Z uint32 components.
type Vector3u struct {
	e [3]uint32
}

var (
	Vector3uZero = Vector3u{}
	Vector3uOne  = Vector3uScalar(1)
)

// Vec3u returns a new [Vector3u] with the given x, y, z components.
func Vec3u(x, y, z uint32) Vector3u {
	return Vector3u{[3]uint32{x, y, z}}
}

// Vector3uScalar returns a new [Vector3u] with all components set to the given scalar value.
func Vector3uScalar(s uint32) Vector3u {
	return Vec3u(s, s, s)
}

// Vector3uFromArray returns a new [Vector3u] with the components of a in order.
func Vector3uFromArray(a [3]uint32) Vector3u {
	return Vector3u{a}
}

// Vector3uFromSlice returns a new [Vector3u] from the components of s starting at offset.
func Vector3uFromSlice(s []uint32, offset int) Vector3u {
	return Vec3u(s[offset], s[offset+1], s[offset+2])
}

// X returns the X component.
func (v Vector3u) X() uint32 { return v.e[0] }

// Y returns the Y component.
func (v Vector3u) Y() uint32 { return v.e[1] }

// Z returns the Z component.
func (v Vector3u) Z() uint32 { return v.e[2] }

// WithX returns a copy with the X component set to x.
func (v Vector3u) WithX(x uint32) Vector3u {
	v.e[0] = x
	return v
}

// WithY returns a copy with the Y component set to y.
func (v Vector3u) WithY(y uint32) Vector3u {
	v.e[1] = y
	return v
}

// WithZ returns a copy with the Z component set to z.
func (v Vector3u) WithZ(z uint32) Vector3u {
	v.e[2] = z
	return v
}

// Dim returns this vector component.
// It panics with an [*IndexError] if dim is not in [0, 3).
func (v Vector3u) Dim(dim Dims) uint32 {
	checkIndex(int(dim), 3)
	return v.e[dim]
}

func (v Vector3u) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.e[0], v.e[1], v.e[2])
}

// Array returns the components in order.
func (v Vector3u) Array() [3]uint32 {
	return v.e
}

// ToSlice returns a new slice with the components in order.
func (v Vector3u) ToSlice() []uint32 {
	a := v.e
	return a[:]
}

// CopyTo copies the components into dst starting at offset.
func (v Vector3u) CopyTo(dst []uint32, offset int) {
	copy(dst[offset:offset+3], v.e[:])
}

// ToMutable returns a new [MutableVector3u] holding a copy of this vector.
func (v Vector3u) ToMutable() *MutableVector3u {
	return &MutableVector3u{v}
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector3u) Add(other Vector3u) Vector3u {
	return Vec3u(v.e[0]+other.e[0], v.e[1]+other.e[1], v.e[2]+other.e[2])
}

// AddScalar applies + s to each component and returns result in a new vector.
func (v Vector3u) AddScalar(s uint32) Vector3u {
	return Vec3u(v.e[0]+s, v.e[1]+s, v.e[2]+s)
}

// Sub subtracts other vector from this one and returns result in a new vector.
func (v Vector3u) Sub(other Vector3u) Vector3u {
	return Vec3u(v.e[0]-other.e[0], v.e[1]-other.e[1], v.e[2]-other.e[2])
}

// SubScalar applies - s to each component and returns result in a new vector.
func (v Vector3u) SubScalar(s uint32) Vector3u {
	return Vec3u(v.e[0]-s, v.e[1]-s, v.e[2]-s)
}

// Mul multiplies each component by the corresponding one from other and returns result in a new vector.
func (v Vector3u) Mul(other Vector3u) Vector3u {
	return Vec3u(v.e[0]*other.e[0], v.e[1]*other.e[1], v.e[2]*other.e[2])
}

// MulScalar applies * s to each component and returns result in a new vector.
func (v Vector3u) MulScalar(s uint32) Vector3u {
	return Vec3u(v.e[0]*s, v.e[1]*s, v.e[2]*s)
}

// Div divides each component by the corresponding one from other and returns result in a new vector.
// It panics on a zero divisor component, as integer division does.
func (v Vector3u) Div(other Vector3u) Vector3u {
	return Vec3u(v.e[0]/other.e[0], v.e[1]/other.e[1], v.e[2]/other.e[2])
}

// DivScalar applies / s to each component and returns result in a new vector.
func (v Vector3u) DivScalar(s uint32) Vector3u {
	return Vec3u(v.e[0]/s, v.e[1]/s, v.e[2]/s)
}

// Mod returns the remainder of each component divided by the corresponding
// one from other, truncated toward zero like the % operator.
func (v Vector3u) Mod(other Vector3u) Vector3u {
	return Vec3u(v.e[0]%other.e[0], v.e[1]%other.e[1], v.e[2]%other.e[2])
}

// ModScalar returns the remainder of each component divided by s.
func (v Vector3u) ModScalar(s uint32) Vector3u {
	return Vec3u(v.e[0]%s, v.e[1]%s, v.e[2]%s)
}

// Min returns this vector with each component no greater than the corresponding one of other.
func (v Vector3u) Min(other Vector3u) Vector3u {
	return Vec3u(atMost(v.e[0], other.e[0]), atMost(v.e[1], other.e[1]), atMost(v.e[2], other.e[2]))
}

// MinScalar returns this vector with each component no greater than s.
func (v Vector3u) MinScalar(s uint32) Vector3u {
	return Vec3u(atMost(v.e[0], s), atMost(v.e[1], s), atMost(v.e[2], s))
}

// Max returns this vector with each component no less than the corresponding one of other.
func (v Vector3u) Max(other Vector3u) Vector3u {
	return Vec3u(atLeast(v.e[0], other.e[0]), atLeast(v.e[1], other.e[1]), atLeast(v.e[2], other.e[2]))
}

// MaxScalar returns this vector with each component no less than s.
func (v Vector3u) MaxScalar(s uint32) Vector3u {
	return Vec3u(atLeast(v.e[0], s), atLeast(v.e[1], s), atLeast(v.e[2], s))
}

// Clamp returns this vector with each component clamped between the
// corresponding components of min and max.
func (v Vector3u) Clamp(min, max Vector3u) Vector3u {
	return Vec3u(Clamp(v.e[0], min.e[0], max.e[0]), Clamp(v.e[1], min.e[1], max.e[1]), Clamp(v.e[2], min.e[2], max.e[2]))
}

// ClampScalar returns this vector with each component clamped to [min, max].
func (v Vector3u) ClampScalar(min, max uint32) Vector3u {
	return Vec3u(Clamp(v.e[0], min, max), Clamp(v.e[1], min, max), Clamp(v.e[2], min, max))
}

// ClampRange returns this vector with each component clipped to the closed range r.
func (v Vector3u) ClampRange(r minmax.U32) Vector3u {
	return Vec3u(r.ClipValue(v.e[0]), r.ClipValue(v.e[1]), r.ClipValue(v.e[2]))
}

// Dot returns the dot product of this vector with other.
func (v Vector3u) Dot(other Vector3u) uint32 {
	return v.e[0]*other.e[0] + v.e[1]*other.e[1] + v.e[2]*other.e[2]
}

// LengthSquared returns the sum of the squared components.
func (v Vector3u) LengthSquared() uint32 {
	return v.Dot(v)
}

// Length returns the length (magnitude) of this vector.
func (v Vector3u) Length() float32 {
	return Sqrt(float32(v.LengthSquared()))
}

///////////////////////////////////////////////////////////////////////
//  Bitwise operations

// And returns the bitwise AND of each component with the corresponding one of other.
func (v Vector3u) And(other Vector3u) Vector3u {
	return Vec3u(v.e[0]&other.e[0], v.e[1]&other.e[1], v.e[2]&other.e[2])
}

// Or returns the bitwise OR of each component with the corresponding one of other.
func (v Vector3u) Or(other Vector3u) Vector3u {
	return Vec3u(v.e[0]|other.e[0], v.e[1]|other.e[1], v.e[2]|other.e[2])
}

// Xor returns the bitwise XOR of each component with the corresponding one of other.
func (v Vector3u) Xor(other Vector3u) Vector3u {
	return Vec3u(v.e[0]^other.e[0], v.e[1]^other.e[1], v.e[2]^other.e[2])
}

// Not returns the bitwise complement of each component.
func (v Vector3u) Not() Vector3u {
	return Vec3u(^v.e[0], ^v.e[1], ^v.e[2])
}

// Shl returns each component shifted left by s bits.
func (v Vector3u) Shl(s uint) Vector3u {
	return Vec3u(v.e[0]<<s, v.e[1]<<s, v.e[2]<<s)
}

// Shr returns each component shifted right by s bits (logical shift).
func (v Vector3u) Shr(s uint) Vector3u {
	return Vec3u(v.e[0]>>s, v.e[1]>>s, v.e[2]>>s)
}

// ToVector3 returns this vector converted to float32 components.
func (v Vector3u) ToVector3() Vector3 {
	return Vec3(float32(v.e[0]), float32(v.e[1]), float32(v.e[2]))
}

// ToVector3i returns this vector with each component converted to an int32.
func (v Vector3u) ToVector3i() Vector3i {
	return Vec3i(int32(v.e[0]), int32(v.e[1]), int32(v.e[2]))
}

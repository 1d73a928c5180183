// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"cogentcore.org/vkmath/math32/minmax"
)

// Vector4l is a 4D vector/point with X, Y, Z and W int64 components.
type Vector4l struct {
	e [4]int64
}

var (
	Vector4lZero = Vector4l{}
	Vector4lOne  = Vector4lScalar(1)
)

// Vec4l returns a new [Vector4l] with the given x, y, z, w components.
func Vec4l(x, y, z, w int64) Vector4l {
	return Vector4l{[4]int64{x, y, z, w}}
}

// Vector4lScalar returns a new [Vector4l] with all components set to the given scalar value.
func Vector4lScalar(s int64) Vector4l {
	return Vec4l(s, s, s, s)
}

// Vector4lFromArray returns a new [Vector4l] with the components of a in order.
func Vector4lFromArray(a [4]int64) Vector4l {
	return Vector4l{a}
}

// Vector4lFromSlice returns a new [Vector4l] from the components of s starting at offset.
func Vector4lFromSlice(s []int64, offset int) Vector4l {
	return Vec4l(s[offset], s[offset+1], s[offset+2], s[offset+3])
}

// X returns the X component.
func (v Vector4l) X() int64 { return v.e[0] }

// Y returns the Y component.
func (v Vector4l) Y() int64 { return v.e[1] }

// Z returns the Z component.
func (v Vector4l) Z() int64 { return v.e[2] }

// W returns the W component.
func (v Vector4l) W() int64 { return v.e[3] }

// WithX returns a copy with the X component set to x.
func (v Vector4l) WithX(x int64) Vector4l {
	v.e[0] = x
	return v
}

// WithY returns a copy with the Y component set to y.
func (v Vector4l) WithY(y int64) Vector4l {
	v.e[1] = y
	return v
}

// WithZ returns a copy with the Z component set to z.
func (v Vector4l) WithZ(z int64) Vector4l {
	v.e[2] = z
	return v
}

// WithW returns a copy with the W component set to w.
func (v Vector4l) WithW(w int64) Vector4l {
	v.e[3] = w
	return v
}

// Dim returns this vector component.
// It panics with an [*IndexError] if dim is not in [0, 4).
func (v Vector4l) Dim(dim Dims) int64 {
	checkIndex(int(dim), 4)
	return v.e[dim]
}

func (v Vector4l) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", v.e[0], v.e[1], v.e[2], v.e[3])
}

// Array returns the components in order.
func (v Vector4l) Array() [4]int64 {
	return v.e
}

// ToSlice returns a new slice with the components in order.
func (v Vector4l) ToSlice() []int64 {
	a := v.e
	return a[:]
}

// CopyTo copies the components into dst starting at offset.
func (v Vector4l) CopyTo(dst []int64, offset int) {
	copy(dst[offset:offset+4], v.e[:])
}

// ToMutable returns a new [MutableVector4l] holding a copy of this vector.
func (v Vector4l) ToMutable() *MutableVector4l {
	return &MutableVector4l{v}
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector4l) Add(other Vector4l) Vector4l {
	return Vec4l(v.e[0]+other.e[0], v.e[1]+other.e[1], v.e[2]+other.e[2], v.e[3]+other.e[3])
}

// AddScalar applies + s to each component and returns result in a new vector.
func (v Vector4l) AddScalar(s int64) Vector4l {
	return Vec4l(v.e[0]+s, v.e[1]+s, v.e[2]+s, v.e[3]+s)
}

// Sub subtracts other vector from this one and returns result in a new vector.
func (v Vector4l) Sub(other Vector4l) Vector4l {
	return Vec4l(v.e[0]-other.e[0], v.e[1]-other.e[1], v.e[2]-other.e[2], v.e[3]-other.e[3])
}

// SubScalar applies - s to each component and returns result in a new vector.
func (v Vector4l) SubScalar(s int64) Vector4l {
	return Vec4l(v.e[0]-s, v.e[1]-s, v.e[2]-s, v.e[3]-s)
}

// Mul multiplies each component by the corresponding one from other and returns result in a new vector.
func (v Vector4l) Mul(other Vector4l) Vector4l {
	return Vec4l(v.e[0]*other.e[0], v.e[1]*other.e[1], v.e[2]*other.e[2], v.e[3]*other.e[3])
}

// MulScalar applies * s to each component and returns result in a new vector.
func (v Vector4l) MulScalar(s int64) Vector4l {
	return Vec4l(v.e[0]*s, v.e[1]*s, v.e[2]*s, v.e[3]*s)
}

// Div divides each component by the corresponding one from other and returns result in a new vector.
// It panics on a zero divisor component, as integer division does.
func (v Vector4l) Div(other Vector4l) Vector4l {
	return Vec4l(v.e[0]/other.e[0], v.e[1]/other.e[1], v.e[2]/other.e[2], v.e[3]/other.e[3])
}

// DivScalar applies / s to each component and returns result in a new vector.
func (v Vector4l) DivScalar(s int64) Vector4l {
	return Vec4l(v.e[0]/s, v.e[1]/s, v.e[2]/s, v.e[3]/s)
}

// Mod returns the remainder of each component divided by the corresponding
// one from other, truncated toward zero like the % operator.
func (v Vector4l) Mod(other Vector4l) Vector4l {
	return Vec4l(v.e[0]%other.e[0], v.e[1]%other.e[1], v.e[2]%other.e[2], v.e[3]%other.e[3])
}

// ModScalar returns the remainder of each component divided by s.
func (v Vector4l) ModScalar(s int64) Vector4l {
	return Vec4l(v.e[0]%s, v.e[1]%s, v.e[2]%s, v.e[3]%s)
}

// Negate returns the vector with each component negated.
func (v Vector4l) Negate() Vector4l {
	return Vec4l(-v.e[0], -v.e[1], -v.e[2], -v.e[3])
}

// Abs returns the vector with the absolute value of each component.
func (v Vector4l) Abs() Vector4l {
	return Vec4l(absInt(v.e[0]), absInt(v.e[1]), absInt(v.e[2]), absInt(v.e[3]))
}

// Min returns this vector with each component no greater than the corresponding one of other.
func (v Vector4l) Min(other Vector4l) Vector4l {
	return Vec4l(atMost(v.e[0], other.e[0]), atMost(v.e[1], other.e[1]), atMost(v.e[2], other.e[2]), atMost(v.e[3], other.e[3]))
}

// MinScalar returns this vector with each component no greater than s.
func (v Vector4l) MinScalar(s int64) Vector4l {
	return Vec4l(atMost(v.e[0], s), atMost(v.e[1], s), atMost(v.e[2], s), atMost(v.e[3], s))
}

// Max returns this vector with each component no less than the corresponding one of other.
func (v Vector4l) Max(other Vector4l) Vector4l {
	return Vec4l(atLeast(v.e[0], other.e[0]), atLeast(v.e[1], other.e[1]), atLeast(v.e[2], other.e[2]), atLeast(v.e[3], other.e[3]))
}

// MaxScalar returns this vector with each component no less than s.
func (v Vector4l) MaxScalar(s int64) Vector4l {
	return Vec4l(atLeast(v.e[0], s), atLeast(v.e[1], s), atLeast(v.e[2], s), atLeast(v.e[3], s))
}

// Clamp returns this vector with each component clamped between the
// corresponding components of min and max.
func (v Vector4l) Clamp(min, max Vector4l) Vector4l {
	return Vec4l(Clamp(v.e[0], min.e[0], max.e[0]), Clamp(v.e[1], min.e[1], max.e[1]), Clamp(v.e[2], min.e[2], max.e[2]), Clamp(v.e[3], min.e[3], max.e[3]))
}

// ClampScalar returns this vector with each component clamped to [min, max].
func (v Vector4l) ClampScalar(min, max int64) Vector4l {
	return Vec4l(Clamp(v.e[0], min, max), Clamp(v.e[1], min, max), Clamp(v.e[2], min, max), Clamp(v.e[3], min, max))
}

// ClampRange returns this vector with each component clipped to the closed range r.
func (v Vector4l) ClampRange(r minmax.I64) Vector4l {
	return Vec4l(r.ClipValue(v.e[0]), r.ClipValue(v.e[1]), r.ClipValue(v.e[2]), r.ClipValue(v.e[3]))
}

// Dot returns the dot product of this vector with other.
func (v Vector4l) Dot(other Vector4l) int64 {
	return v.e[0]*other.e[0] + v.e[1]*other.e[1] + v.e[2]*other.e[2] + v.e[3]*other.e[3]
}

// LengthSquared returns the sum of the squared components.
func (v Vector4l) LengthSquared() int64 {
	return v.Dot(v)
}

// Length returns the length (magnitude) of this vector.
func (v Vector4l) Length() float32 {
	return Sqrt(float32(v.LengthSquared()))
}

///////////////////////////////////////////////////////////////////////
//  Bitwise operations

// And returns the bitwise AND of each component with the corresponding one of other.
func (v Vector4l) And(other Vector4l) Vector4l {
	return Vec4l(v.e[0]&other.e[0], v.e[1]&other.e[1], v.e[2]&other.e[2], v.e[3]&other.e[3])
}

// Or returns the bitwise OR of each component with the corresponding one of other.
func (v Vector4l) Or(other Vector4l) Vector4l {
	return Vec4l(v.e[0]|other.e[0], v.e[1]|other.e[1], v.e[2]|other.e[2], v.e[3]|other.e[3])
}

// Xor returns the bitwise XOR of each component with the corresponding one of other.
func (v Vector4l) Xor(other Vector4l) Vector4l {
	return Vec4l(v.e[0]^other.e[0], v.e[1]^other.e[1], v.e[2]^other.e[2], v.e[3]^other.e[3])
}

// Not returns the bitwise complement of each component.
func (v Vector4l) Not() Vector4l {
	return Vec4l(^v.e[0], ^v.e[1], ^v.e[2], ^v.e[3])
}

// Shl returns each component shifted left by s bits.
func (v Vector4l) Shl(s uint) Vector4l {
	return Vec4l(v.e[0]<<s, v.e[1]<<s, v.e[2]<<s, v.e[3]<<s)
}

// Shr returns each component shifted right by s bits (arithmetic shift).
func (v Vector4l) Shr(s uint) Vector4l {
	return Vec4l(v.e[0]>>s, v.e[1]>>s, v.e[2]>>s, v.e[3]>>s)
}

// ToVector4 returns this vector converted to float32 components.
func (v Vector4l) ToVector4() Vector4 {
	return Vec4(float32(v.e[0]), float32(v.e[1]), float32(v.e[2]), float32(v.e[3]))
}

// ToVector4i returns this vector with each component truncated to an int32.
func (v Vector4l) ToVector4i() Vector4i {
	return Vec4i(int32(v.e[0]), int32(v.e[1]), int32(v.e[2]), int32(v.e[3]))
}

// Vector4lFromVector4i returns a new [Vector4l] widened from the given [Vector4i].
func Vector4lFromVector4i(v Vector4i) Vector4l {
	return Vec4l(int64(v.e[0]), int64(v.e[1]), int64(v.e[2]), int64(v.e[3]))
}

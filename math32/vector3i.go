// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"fmt"

	"cogentcore.org/vkmath/math32/minmax"
)

// Vector3i is a 3D vector/point with X, Y and Z int32 components.
type Vector3i struct {
	e [3]int32
}

var (
	Vector3iZero = Vector3i{}
	Vector3iOne  = Vector3iScalar(1)

	Vector3iUp      = Vec3i(0, 1, 0)
	Vector3iDown    = Vec3i(0, -1, 0)
	Vector3iLeft    = Vec3i(-1, 0, 0)
	Vector3iRight   = Vec3i(1, 0, 0)
	Vector3iForward = Vec3i(0, 0, 1)
	Vector3iBack    = Vec3i(0, 0, -1)
)

// Vec3i returns a new [Vector3i] with the given x, y, z components.
func Vec3i(x, y, z int32) Vector3i {
	return Vector3i{[3]int32{x, y, z}}
}

// Vector3iScalar returns a new [Vector3i] with all components set to the given scalar value.
func Vector3iScalar(s int32) Vector3i {
	return Vec3i(s, s, s)
}

// Vector3iFromArray returns a new [Vector3i] with the components of a in order.
func Vector3iFromArray(a [3]int32) Vector3i {
	return Vector3i{a}
}

// Vector3iFromSlice returns a new [Vector3i] from the components of s starting at offset.
func Vector3iFromSlice(s []int32, offset int) Vector3i {
	return Vec3i(s[offset], s[offset+1], s[offset+2])
}

// X returns the X component.
func (v Vector3i) X() int32 { return v.e[0] }

// Y returns the Y component.
func (v Vector3i) Y() int32 { return v.e[1] }

// Z returns the Z component.
func (v Vector3i) Z() int32 { return v.e[2] }

// WithX returns a copy with the X component set to x.
func (v Vector3i) WithX(x int32) Vector3i {
	v.e[0] = x
	return v
}

// WithY returns a copy with the Y component set to y.
func (v Vector3i) WithY(y int32) Vector3i {
	v.e[1] = y
	return v
}

// WithZ returns a copy with the Z component set to z.
func (v Vector3i) WithZ(z int32) Vector3i {
	v.e[2] = z
	return v
}

// Dim returns this vector component.
// It panics with an [*IndexError] if dim is not in [0, 3).
func (v Vector3i) Dim(dim Dims) int32 {
	checkIndex(int(dim), 3)
	return v.e[dim]
}

func (v Vector3i) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.e[0], v.e[1], v.e[2])
}

// Array returns the components in order.
func (v Vector3i) Array() [3]int32 {
	return v.e
}

// ToSlice returns a new slice with the components in order.
func (v Vector3i) ToSlice() []int32 {
	a := v.e
	return a[:]
}

// CopyTo copies the components into dst starting at offset.
func (v Vector3i) CopyTo(dst []int32, offset int) {
	copy(dst[offset:offset+3], v.e[:])
}

// ToMutable returns a new [MutableVector3i] holding a copy of this vector.
func (v Vector3i) ToMutable() *MutableVector3i {
	return &MutableVector3i{v}
}

///////////////////////////////////////////////////////////////////////
//  Basic math operations

// Add adds other vector to this one and returns result in a new vector.
func (v Vector3i) Add(other Vector3i) Vector3i {
	return Vec3i(v.e[0]+other.e[0], v.e[1]+other.e[1], v.e[2]+other.e[2])
}

// AddScalar applies + s to each component and returns result in a new vector.
func (v Vector3i) AddScalar(s int32) Vector3i {
	return Vec3i(v.e[0]+s, v.e[1]+s, v.e[2]+s)
}

// Sub subtracts other vector from this one and returns result in a new vector.
func (v Vector3i) Sub(other Vector3i) Vector3i {
	return Vec3i(v.e[0]-other.e[0], v.e[1]-other.e[1], v.e[2]-other.e[2])
}

// SubScalar applies - s to each component and returns result in a new vector.
func (v Vector3i) SubScalar(s int32) Vector3i {
	return Vec3i(v.e[0]-s, v.e[1]-s, v.e[2]-s)
}

// Mul multiplies each component by the corresponding one from other and returns result in a new vector.
func (v Vector3i) Mul(other Vector3i) Vector3i {
	return Vec3i(v.e[0]*other.e[0], v.e[1]*other.e[1], v.e[2]*other.e[2])
}

// MulScalar applies * s to each component and returns result in a new vector.
func (v Vector3i) MulScalar(s int32) Vector3i {
	return Vec3i(v.e[0]*s, v.e[1]*s, v.e[2]*s)
}

// Div divides each component by the corresponding one from other and returns result in a new vector.
// It panics on a zero divisor component, as integer division does.
func (v Vector3i) Div(other Vector3i) Vector3i {
	return Vec3i(v.e[0]/other.e[0], v.e[1]/other.e[1], v.e[2]/other.e[2])
}

// DivScalar applies / s to each component and returns result in a new vector.
func (v Vector3i) DivScalar(s int32) Vector3i {
	return Vec3i(v.e[0]/s, v.e[1]/s, v.e[2]/s)
}

// Mod returns the remainder of each component divided by the corresponding
// one from other, truncated toward zero like the % operator.
func (v Vector3i) Mod(other Vector3i) Vector3i {
	return Vec3i(v.e[0]%other.e[0], v.e[1]%other.e[1], v.e[2]%other.e[2])
}

// ModScalar returns the remainder of each component divided by s.
func (v Vector3i) ModScalar(s int32) Vector3i {
	return Vec3i(v.e[0]%s, v.e[1]%s, v.e[2]%s)
}

// Negate returns the vector with each component negated.
func (v Vector3i) Negate() Vector3i {
	return Vec3i(-v.e[0], -v.e[1], -v.e[2])
}

// Abs returns the vector with the absolute value of each component.
func (v Vector3i) Abs() Vector3i {
	return Vec3i(absInt(v.e[0]), absInt(v.e[1]), absInt(v.e[2]))
}

// Min returns this vector with each component no greater than the corresponding one of other.
func (v Vector3i) Min(other Vector3i) Vector3i {
	return Vec3i(atMost(v.e[0], other.e[0]), atMost(v.e[1], other.e[1]), atMost(v.e[2], other.e[2]))
}

// MinScalar returns this vector with each component no greater than s.
func (v Vector3i) MinScalar(s int32) Vector3i {
	return Vec3i(atMost(v.e[0], s), atMost(v.e[1], s), atMost(v.e[2], s))
}

// Max returns this vector with each component no less than the corresponding one of other.
func (v Vector3i) Max(other Vector3i) Vector3i {
	return Vec3i(atLeast(v.e[0], other.e[0]), atLeast(v.e[1], other.e[1]), atLeast(v.e[2], other.e[2]))
}

// MaxScalar returns this vector with each component no less than s.
func (v Vector3i) MaxScalar(s int32) Vector3i {
	return Vec3i(atLeast(v.e[0], s), atLeast(v.e[1], s), atLeast(v.e[2], s))
}

// Clamp returns this vector with each component clamped between the
// corresponding components of min and max.
func (v Vector3i) Clamp(min, max Vector3i) Vector3i {
	return Vec3i(Clamp(v.e[0], min.e[0], max.e[0]), Clamp(v.e[1], min.e[1], max.e[1]), Clamp(v.e[2], min.e[2], max.e[2]))
}

// ClampScalar returns this vector with each component clamped to [min, max].
func (v Vector3i) ClampScalar(min, max int32) Vector3i {
	return Vec3i(Clamp(v.e[0], min, max), Clamp(v.e[1], min, max), Clamp(v.e[2], min, max))
}

// ClampRange returns this vector with each component clipped to the closed range r.
func (v Vector3i) ClampRange(r minmax.I32) Vector3i {
	return Vec3i(r.ClipValue(v.e[0]), r.ClipValue(v.e[1]), r.ClipValue(v.e[2]))
}

// Dot returns the dot product of this vector with other.
func (v Vector3i) Dot(other Vector3i) int32 {
	return v.e[0]*other.e[0] + v.e[1]*other.e[1] + v.e[2]*other.e[2]
}

// LengthSquared returns the sum of the squared components.
func (v Vector3i) LengthSquared() int32 {
	return v.Dot(v)
}

// Length returns the length (magnitude) of this vector.
func (v Vector3i) Length() float32 {
	return Sqrt(float32(v.LengthSquared()))
}

// Cross returns the cross product of this vector with other.
func (v Vector3i) Cross(other Vector3i) Vector3i {
	return Vec3i(v.e[1]*other.e[2]-v.e[2]*other.e[1], v.e[2]*other.e[0]-v.e[0]*other.e[2], v.e[0]*other.e[1]-v.e[1]*other.e[0])
}

///////////////////////////////////////////////////////////////////////
//  Bitwise operations

// And returns the bitwise AND of each component with the corresponding one of other.
func (v Vector3i) And(other Vector3i) Vector3i {
	return Vec3i(v.e[0]&other.e[0], v.e[1]&other.e[1], v.e[2]&other.e[2])
}

// Or returns the bitwise OR of each component with the corresponding one of other.
func (v Vector3i) Or(other Vector3i) Vector3i {
	return Vec3i(v.e[0]|other.e[0], v.e[1]|other.e[1], v.e[2]|other.e[2])
}

// Xor returns the bitwise XOR of each component with the corresponding one of other.
func (v Vector3i) Xor(other Vector3i) Vector3i {
	return Vec3i(v.e[0]^other.e[0], v.e[1]^other.e[1], v.e[2]^other.e[2])
}

// Not returns the bitwise complement of each component.
func (v Vector3i) Not() Vector3i {
	return Vec3i(^v.e[0], ^v.e[1], ^v.e[2])
}

// Shl returns each component shifted left by s bits.
func (v Vector3i) Shl(s uint) Vector3i {
	return Vec3i(v.e[0]<<s, v.e[1]<<s, v.e[2]<<s)
}

// Shr returns each component shifted right by s bits (arithmetic shift).
func (v Vector3i) Shr(s uint) Vector3i {
	return Vec3i(v.e[0]>>s, v.e[1]>>s, v.e[2]>>s)
}

// ToVector3 returns this vector converted to float32 components.
func (v Vector3i) ToVector3() Vector3 {
	return Vec3(float32(v.e[0]), float32(v.e[1]), float32(v.e[2]))
}

// ToVector3u returns this vector with each component converted to a uint32.
func (v Vector3i) ToVector3u() Vector3u {
	return Vec3u(uint32(v.e[0]), uint32(v.e[1]), uint32(v.e[2]))
}

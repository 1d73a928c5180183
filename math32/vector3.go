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

// Vector3 is a 3D vector/point with X, Y and Z components.
// It is an immutable value: every operation returns a new vector.
// Use [MutableVector3] for in-place updates.
type Vector3 struct {
	e [3]float32
}

var (
	Vector3Zero = Vector3{}
	Vector3One  = Vector3Scalar(1)

	Vector3Up      = Vec3(0, 1, 0)
	Vector3Down    = Vec3(0, -1, 0)
	Vector3Left    = Vec3(-1, 0, 0)
	Vector3Right   = Vec3(1, 0, 0)
	Vector3Forward = Vec3(0, 0, 1)
	Vector3Back    = Vec3(0, 0, -1)

	Vector3PositiveInfinity = Vector3Scalar(Infinity)
	Vector3NegativeInfinity = Vector3Scalar(-Infinity)
)

// Vec3 returns a new [Vector3] with the given x, y, z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{[3]float32{x, y, z}}
}

// Vector3Scalar returns a new [Vector3] with all components set to the given scalar value.
func Vector3Scalar(s float32) Vector3 {
	return Vec3(s, s, s)
}

// Vector3FromArray returns a new [Vector3] with the components of a in order.
func Vector3FromArray(a [3]float32) Vector3 {
	return Vector3{a}
}

// Vector3FromSlice returns a new [Vector3] from the components of s starting at offset.
func Vector3FromSlice(s []float32, offset int) Vector3 {
	return Vec3(s[offset], s[offset+1], s[offset+2])
}

// Vector3FromVector2 returns a new [Vector3] from the given [Vector2] and z component.
func Vector3FromVector2(v Vector2, z float32) Vector3 {
	return Vec3(v.e[0], v.e[1], z)
}

// X returns the X component.
func (v Vector3) X() float32 { return v.e[0] }

// Y returns the Y component.
func (v Vector3) Y() float32 { return v.e[1] }

// Z returns the Z component.
func (v Vector3) Z() float32 { return v.e[2] }

// WithX returns a copy of this vector with the X component set to x.
func (v Vector3) WithX(x float32) Vector3 {
	v.e[0] = x
	return v
}

// WithY returns a copy of this vector with the Y component set to y.
func (v Vector3) WithY(y float32) Vector3 {
	v.e[1] = y
	return v
}

// WithZ returns a copy of this vector with the Z component set to z.
func (v Vector3) WithZ(z float32) Vector3 {
	v.e[2] = z
	return v
}

// Dim returns the component at the given dimension index.
// It panics with an [*IndexError] if dim is not in [0, 3).
func (v Vector3) Dim(dim Dims) float32 {
	checkIndex(int(dim), 3)
	return v.e[dim]
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.e[0], v.e[1], v.e[2])
}

// Array returns the components in X, Y, Z order.
func (v Vector3) Array() [3]float32 {
	return v.e
}

// ToSlice returns a new slice with the components in X, Y, Z order.
func (v Vector3) ToSlice() []float32 {
	a := v.e
	return a[:]
}

// CopyTo copies the components into dst starting at offset.
func (v Vector3) CopyTo(dst []float32, offset int) {
	copy(dst[offset:offset+3], v.e[:])
}

// ToMutable returns a new [MutableVector3] holding a copy of this vector.
func (v Vector3) ToMutable() *MutableVector3 {
	return &MutableVector3{v}
}

// XY returns the X and Y components as a [Vector2].
func (v Vector3) XY() Vector2 {
	return Vec2(v.e[0], v.e[1])
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vec3(v.e[0]+other.e[0], v.e[1]+other.e[1], v.e[2]+other.e[2])
}

// AddScalar adds s to each component and returns the result as a new vector.
func (v Vector3) AddScalar(s float32) Vector3 {
	return Vec3(v.e[0]+s, v.e[1]+s, v.e[2]+s)
}

// Sub subtracts the other vector from this one and returns the result as a new vector.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vec3(v.e[0]-other.e[0], v.e[1]-other.e[1], v.e[2]-other.e[2])
}

// SubScalar subtracts s from each component and returns the result as a new vector.
func (v Vector3) SubScalar(s float32) Vector3 {
	return Vec3(v.e[0]-s, v.e[1]-s, v.e[2]-s)
}

// Mul multiplies each component by the corresponding one from other and returns the result as a new vector.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vec3(v.e[0]*other.e[0], v.e[1]*other.e[1], v.e[2]*other.e[2])
}

// MulScalar multiplies each component by s and returns the result as a new vector.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vec3(v.e[0]*s, v.e[1]*s, v.e[2]*s)
}

// Div divides each component by the corresponding one from other and returns the result as a new vector.
func (v Vector3) Div(other Vector3) Vector3 {
	return Vec3(v.e[0]/other.e[0], v.e[1]/other.e[1], v.e[2]/other.e[2])
}

// DivScalar divides each component by s and returns the result as a new vector.
// Division by zero follows IEEE-754 and yields infinite or NaN components.
func (v Vector3) DivScalar(s float32) Vector3 {
	return Vec3(v.e[0]/s, v.e[1]/s, v.e[2]/s)
}

// Mod returns the floating-point remainder of each component divided by the
// corresponding one from other. The result has the sign of the dividend; see [Mod].
func (v Vector3) Mod(other Vector3) Vector3 {
	return Vec3(Mod(v.e[0], other.e[0]), Mod(v.e[1], other.e[1]), Mod(v.e[2], other.e[2]))
}

// ModScalar returns the floating-point remainder of each component divided by s.
func (v Vector3) ModScalar(s float32) Vector3 {
	return Vec3(Mod(v.e[0], s), Mod(v.e[1], s), Mod(v.e[2], s))
}

// Negate returns the vector with each component negated.
func (v Vector3) Negate() Vector3 {
	return Vec3(-v.e[0], -v.e[1], -v.e[2])
}

// Clamping:

// Min returns this vector with each component no greater than the
// corresponding component of other.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vec3(atMost(v.e[0], other.e[0]), atMost(v.e[1], other.e[1]), atMost(v.e[2], other.e[2]))
}

// MinScalar returns this vector with each component no greater than s.
func (v Vector3) MinScalar(s float32) Vector3 {
	return Vec3(atMost(v.e[0], s), atMost(v.e[1], s), atMost(v.e[2], s))
}

// Max returns this vector with each component no less than the
// corresponding component of other.
func (v Vector3) Max(other Vector3) Vector3 {
	return Vec3(atLeast(v.e[0], other.e[0]), atLeast(v.e[1], other.e[1]), atLeast(v.e[2], other.e[2]))
}

// MaxScalar returns this vector with each component no less than s.
func (v Vector3) MaxScalar(s float32) Vector3 {
	return Vec3(atLeast(v.e[0], s), atLeast(v.e[1], s), atLeast(v.e[2], s))
}

// Clamp returns this vector with each component no less than the corresponding
// component of min and no greater than the corresponding component of max.
// Assumes min <= max; if this assumption isn't true, it will not operate correctly.
// NaN components remain NaN.
func (v Vector3) Clamp(min, max Vector3) Vector3 {
	return Vec3(Clamp(v.e[0], min.e[0], max.e[0]), Clamp(v.e[1], min.e[1], max.e[1]), Clamp(v.e[2], min.e[2], max.e[2]))
}

// ClampScalar returns this vector with each component clamped to [min, max].
func (v Vector3) ClampScalar(min, max float32) Vector3 {
	return Vec3(Clamp(v.e[0], min, max), Clamp(v.e[1], min, max), Clamp(v.e[2], min, max))
}

// ClampRange returns this vector with each component clipped to the closed range r.
func (v Vector3) ClampRange(r minmax.F32) Vector3 {
	return Vec3(r.ClipValue(v.e[0]), r.ClipValue(v.e[1]), r.ClipValue(v.e[2]))
}

// Direction operations:

// Project returns the projection of this vector onto the given vector:
// onto * (v·onto / onto·onto).
func (v Vector3) Project(onto Vector3) Vector3 {
	return onto.MulScalar(v.Dot(onto) / onto.Dot(onto))
}

// MoveTowards returns this vector moved towards target by at most maxDelta.
// If the remaining distance is no more than maxDelta, it returns target exactly.
func (v Vector3) MoveTowards(target Vector3, maxDelta float32) Vector3 {
	d := target.Sub(v)
	dist := d.Length()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return v.Add(d.MulScalar(maxDelta / dist))
}

// AngleTo returns the unsigned angle between this vector and other, in radians.
func (v Vector3) AngleTo(other Vector3) float32 {
	denom := Sqrt(v.LengthSquared() * other.LengthSquared())
	if denom == 0 {
		return Pi / 2
	}
	return Acos(Clamp(v.Dot(other)/denom, -1, 1))
}

// SignedAngleTo returns the angle in radians from this vector to other,
// positive when the rotation from this vector to other is counter-clockwise
// when viewed from the direction of axis.
func (v Vector3) SignedAngleTo(other, axis Vector3) float32 {
	angle := v.AngleTo(other)
	if axis.Dot(v.Cross(other)) < 0 {
		return -angle
	}
	return angle
}

// Conversions:

// ToVector3i returns this vector with each component truncated to an int32.
func (v Vector3) ToVector3i() Vector3i {
	return Vec3i(int32(v.e[0]), int32(v.e[1]), int32(v.e[2]))
}

// ToVector3u returns this vector with each component truncated to a uint32.
func (v Vector3) ToVector3u() Vector3u {
	return Vec3u(uint32(v.e[0]), uint32(v.e[1]), uint32(v.e[2]))
}

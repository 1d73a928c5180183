// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"cogentcore.org/vkmath/math32/minmax"
)

// Vector2 is a 2D vector/point with X and Y components.
// It is an immutable value: every operation returns a new vector.
// Use [MutableVector2] for in-place updates.
type Vector2 struct {
	e [2]float32
}

var (
	Vector2Zero = Vector2{}
	Vector2One  = Vector2Scalar(1)

	Vector2Up    = Vec2(0, 1)
	Vector2Down  = Vec2(0, -1)
	Vector2Left  = Vec2(-1, 0)
	Vector2Right = Vec2(1, 0)

	Vector2PositiveInfinity = Vector2Scalar(Infinity)
	Vector2NegativeInfinity = Vector2Scalar(-Infinity)
)

// Vec2 returns a new [Vector2] with the given x, y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{[2]float32{x, y}}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(s float32) Vector2 {
	return Vec2(s, s)
}

// Vector2FromArray returns a new [Vector2] with the components of a in order.
func Vector2FromArray(a [2]float32) Vector2 {
	return Vector2{a}
}

// Vector2FromSlice returns a new [Vector2] from the components of s starting at offset.
func Vector2FromSlice(s []float32, offset int) Vector2 {
	return Vec2(s[offset], s[offset+1])
}

// X returns the X component.
func (v Vector2) X() float32 { return v.e[0] }

// Y returns the Y component.
func (v Vector2) Y() float32 { return v.e[1] }

// WithX returns a copy of this vector with the X component set to x.
func (v Vector2) WithX(x float32) Vector2 {
	v.e[0] = x
	return v
}

// WithY returns a copy of this vector with the Y component set to y.
func (v Vector2) WithY(y float32) Vector2 {
	v.e[1] = y
	return v
}

// Dim returns the component at the given dimension index.
// It panics with an [*IndexError] if dim is not in [0, 2).
func (v Vector2) Dim(dim Dims) float32 {
	checkIndex(int(dim), 2)
	return v.e[dim]
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.e[0], v.e[1])
}

// Array returns the components in X, Y order.
func (v Vector2) Array() [2]float32 {
	return v.e
}

// ToSlice returns a new slice with the components in X, Y order.
func (v Vector2) ToSlice() []float32 {
	a := v.e
	return a[:]
}

// CopyTo copies the components into dst starting at offset.
func (v Vector2) CopyTo(dst []float32, offset int) {
	copy(dst[offset:offset+2], v.e[:])
}

// ToMutable returns a new [MutableVector2] holding a copy of this vector.
func (v Vector2) ToMutable() *MutableVector2 {
	return &MutableVector2{v}
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.e[0]+other.e[0], v.e[1]+other.e[1])
}

// AddScalar adds s to each component and returns the result as a new vector.
func (v Vector2) AddScalar(s float32) Vector2 {
	return Vec2(v.e[0]+s, v.e[1]+s)
}

// Sub subtracts the other vector from this one and returns the result as a new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.e[0]-other.e[0], v.e[1]-other.e[1])
}

// SubScalar subtracts s from each component and returns the result as a new vector.
func (v Vector2) SubScalar(s float32) Vector2 {
	return Vec2(v.e[0]-s, v.e[1]-s)
}

// Mul multiplies each component by the corresponding one from other and returns the result as a new vector.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vec2(v.e[0]*other.e[0], v.e[1]*other.e[1])
}

// MulScalar multiplies each component by s and returns the result as a new vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.e[0]*s, v.e[1]*s)
}

// Div divides each component by the corresponding one from other and returns the result as a new vector.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vec2(v.e[0]/other.e[0], v.e[1]/other.e[1])
}

// DivScalar divides each component by s and returns the result as a new vector.
// Division by zero follows IEEE-754 and yields infinite or NaN components.
func (v Vector2) DivScalar(s float32) Vector2 {
	return Vec2(v.e[0]/s, v.e[1]/s)
}

// Mod returns the floating-point remainder of each component divided by the
// corresponding one from other. The result has the sign of the dividend; see [Mod].
func (v Vector2) Mod(other Vector2) Vector2 {
	return Vec2(Mod(v.e[0], other.e[0]), Mod(v.e[1], other.e[1]))
}

// ModScalar returns the floating-point remainder of each component divided by s.
func (v Vector2) ModScalar(s float32) Vector2 {
	return Vec2(Mod(v.e[0], s), Mod(v.e[1], s))
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vec2(-v.e[0], -v.e[1])
}

// Clamping:

// Min returns this vector with each component no greater than the
// corresponding component of other.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vec2(atMost(v.e[0], other.e[0]), atMost(v.e[1], other.e[1]))
}

// MinScalar returns this vector with each component no greater than s.
func (v Vector2) MinScalar(s float32) Vector2 {
	return Vec2(atMost(v.e[0], s), atMost(v.e[1], s))
}

// Max returns this vector with each component no less than the
// corresponding component of other.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vec2(atLeast(v.e[0], other.e[0]), atLeast(v.e[1], other.e[1]))
}

// MaxScalar returns this vector with each component no less than s.
func (v Vector2) MaxScalar(s float32) Vector2 {
	return Vec2(atLeast(v.e[0], s), atLeast(v.e[1], s))
}

// Clamp returns this vector with each component no less than the corresponding
// component of min and no greater than the corresponding component of max.
// Assumes min <= max; if this assumption isn't true, it will not operate correctly.
// NaN components remain NaN.
func (v Vector2) Clamp(min, max Vector2) Vector2 {
	return Vec2(Clamp(v.e[0], min.e[0], max.e[0]), Clamp(v.e[1], min.e[1], max.e[1]))
}

// ClampScalar returns this vector with each component clamped to [min, max].
func (v Vector2) ClampScalar(min, max float32) Vector2 {
	return Vec2(Clamp(v.e[0], min, max), Clamp(v.e[1], min, max))
}

// ClampRange returns this vector with each component clipped to the closed range r.
func (v Vector2) ClampRange(r minmax.F32) Vector2 {
	return Vec2(r.ClipValue(v.e[0]), r.ClipValue(v.e[1]))
}

// Direction operations:

// Perpendicular returns this vector rotated 90 degrees counter-clockwise: (-Y, X).
func (v Vector2) Perpendicular() Vector2 {
	return Vec2(-v.e[1], v.e[0])
}

// Project returns the projection of this vector onto the given vector:
// onto * (v·onto / onto·onto).
func (v Vector2) Project(onto Vector2) Vector2 {
	return onto.MulScalar(v.Dot(onto) / onto.Dot(onto))
}

// MoveTowards returns this vector moved towards target by at most maxDelta.
// If the remaining distance is no more than maxDelta, it returns target exactly.
func (v Vector2) MoveTowards(target Vector2, maxDelta float32) Vector2 {
	d := target.Sub(v)
	dist := d.Length()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return v.Add(d.MulScalar(maxDelta / dist))
}

// AngleTo returns the unsigned angle between this vector and other, in radians.
func (v Vector2) AngleTo(other Vector2) float32 {
	denom := Sqrt(v.LengthSquared() * other.LengthSquared())
	if denom == 0 {
		return Pi / 2
	}
	return Acos(Clamp(v.Dot(other)/denom, -1, 1))
}

// SignedAngleTo returns the angle in radians from this vector to other,
// positive when other is counter-clockwise from this vector.
func (v Vector2) SignedAngleTo(other Vector2) float32 {
	angle := v.AngleTo(other)
	cross := v.e[0]*other.e[1] - v.e[1]*other.e[0]
	if cross < 0 {
		return -angle
	}
	return angle
}

// Conversions:

// ToVector2i returns this vector with each component truncated to an int32.
func (v Vector2) ToVector2i() Vector2i {
	return Vec2i(int32(v.e[0]), int32(v.e[1]))
}

// ToVector2u returns this vector with each component truncated to a uint32.
func (v Vector2) ToVector2u() Vector2u {
	return Vec2u(uint32(v.e[0]), uint32(v.e[1]))
}

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

// Vector4 is a vector/point in homogeneous coordinates with X, Y, Z and W components.
// It is an immutable value: every operation returns a new vector.
// Use [MutableVector4] for in-place updates.
type Vector4 struct {
	e [4]float32
}

var (
	Vector4Zero = Vector4{}
	Vector4One  = Vector4Scalar(1)

	Vector4PositiveInfinity = Vector4Scalar(Infinity)
	Vector4NegativeInfinity = Vector4Scalar(-Infinity)
)

// Vec4 returns a new [Vector4] with the given x, y, z, w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{[4]float32{x, y, z, w}}
}

// Vector4Scalar returns a new [Vector4] with all components set to the given scalar value.
func Vector4Scalar(s float32) Vector4 {
	return Vec4(s, s, s, s)
}

// Vector4FromArray returns a new [Vector4] with the components of a in order.
func Vector4FromArray(a [4]float32) Vector4 {
	return Vector4{a}
}

// Vector4FromSlice returns a new [Vector4] from the components of s starting at offset.
func Vector4FromSlice(s []float32, offset int) Vector4 {
	return Vec4(s[offset], s[offset+1], s[offset+2], s[offset+3])
}

// Vector4FromVector3 returns a new [Vector4] from the given [Vector3] and w component.
func Vector4FromVector3(v Vector3, w float32) Vector4 {
	return Vec4(v.e[0], v.e[1], v.e[2], w)
}

// X returns the X component.
func (v Vector4) X() float32 { return v.e[0] }

// Y returns the Y component.
func (v Vector4) Y() float32 { return v.e[1] }

// Z returns the Z component.
func (v Vector4) Z() float32 { return v.e[2] }

// W returns the W component.
func (v Vector4) W() float32 { return v.e[3] }

// WithX returns a copy of this vector with the X component set to x.
func (v Vector4) WithX(x float32) Vector4 {
	v.e[0] = x
	return v
}

// WithY returns a copy of this vector with the Y component set to y.
func (v Vector4) WithY(y float32) Vector4 {
	v.e[1] = y
	return v
}

// WithZ returns a copy of this vector with the Z component set to z.
func (v Vector4) WithZ(z float32) Vector4 {
	v.e[2] = z
	return v
}

// WithW returns a copy of this vector with the W component set to w.
func (v Vector4) WithW(w float32) Vector4 {
	v.e[3] = w
	return v
}

// Dim returns the component at the given dimension index.
// It panics with an [*IndexError] if dim is not in [0, 4).
func (v Vector4) Dim(dim Dims) float32 {
	checkIndex(int(dim), 4)
	return v.e[dim]
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.e[0], v.e[1], v.e[2], v.e[3])
}

// Array returns the components in X, Y, Z, W order.
func (v Vector4) Array() [4]float32 {
	return v.e
}

// ToSlice returns a new slice with the components in X, Y, Z, W order.
func (v Vector4) ToSlice() []float32 {
	a := v.e
	return a[:]
}

// CopyTo copies the components into dst starting at offset.
func (v Vector4) CopyTo(dst []float32, offset int) {
	copy(dst[offset:offset+4], v.e[:])
}

// ToMutable returns a new [MutableVector4] holding a copy of this vector.
func (v Vector4) ToMutable() *MutableVector4 {
	return &MutableVector4{v}
}

// XY returns the X and Y components as a [Vector2].
func (v Vector4) XY() Vector2 {
	return Vec2(v.e[0], v.e[1])
}

// XYZ returns the X, Y and Z components as a [Vector3].
func (v Vector4) XYZ() Vector3 {
	return Vec3(v.e[0], v.e[1], v.e[2])
}

// Basic math operations:

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vec4(v.e[0]+other.e[0], v.e[1]+other.e[1], v.e[2]+other.e[2], v.e[3]+other.e[3])
}

// AddScalar adds s to each component and returns the result as a new vector.
func (v Vector4) AddScalar(s float32) Vector4 {
	return Vec4(v.e[0]+s, v.e[1]+s, v.e[2]+s, v.e[3]+s)
}

// Sub subtracts the other vector from this one and returns the result as a new vector.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vec4(v.e[0]-other.e[0], v.e[1]-other.e[1], v.e[2]-other.e[2], v.e[3]-other.e[3])
}

// SubScalar subtracts s from each component and returns the result as a new vector.
func (v Vector4) SubScalar(s float32) Vector4 {
	return Vec4(v.e[0]-s, v.e[1]-s, v.e[2]-s, v.e[3]-s)
}

// Mul multiplies each component by the corresponding one from other and returns the result as a new vector.
func (v Vector4) Mul(other Vector4) Vector4 {
	return Vec4(v.e[0]*other.e[0], v.e[1]*other.e[1], v.e[2]*other.e[2], v.e[3]*other.e[3])
}

// MulScalar multiplies each component by s and returns the result as a new vector.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vec4(v.e[0]*s, v.e[1]*s, v.e[2]*s, v.e[3]*s)
}

// Div divides each component by the corresponding one from other and returns the result as a new vector.
func (v Vector4) Div(other Vector4) Vector4 {
	return Vec4(v.e[0]/other.e[0], v.e[1]/other.e[1], v.e[2]/other.e[2], v.e[3]/other.e[3])
}

// DivScalar divides each component by s and returns the result as a new vector.
// Division by zero follows IEEE-754 and yields infinite or NaN components.
func (v Vector4) DivScalar(s float32) Vector4 {
	return Vec4(v.e[0]/s, v.e[1]/s, v.e[2]/s, v.e[3]/s)
}

// Mod returns the floating-point remainder of each component divided by the
// corresponding one from other. The result has the sign of the dividend; see [Mod].
func (v Vector4) Mod(other Vector4) Vector4 {
	return Vec4(Mod(v.e[0], other.e[0]), Mod(v.e[1], other.e[1]), Mod(v.e[2], other.e[2]), Mod(v.e[3], other.e[3]))
}

// ModScalar returns the floating-point remainder of each component divided by s.
func (v Vector4) ModScalar(s float32) Vector4 {
	return Vec4(Mod(v.e[0], s), Mod(v.e[1], s), Mod(v.e[2], s), Mod(v.e[3], s))
}

// Negate returns the vector with each component negated.
func (v Vector4) Negate() Vector4 {
	return Vec4(-v.e[0], -v.e[1], -v.e[2], -v.e[3])
}

// Clamping:

// Min returns this vector with each component no greater than the
// corresponding component of other.
func (v Vector4) Min(other Vector4) Vector4 {
	return Vec4(atMost(v.e[0], other.e[0]), atMost(v.e[1], other.e[1]), atMost(v.e[2], other.e[2]), atMost(v.e[3], other.e[3]))
}

// MinScalar returns this vector with each component no greater than s.
func (v Vector4) MinScalar(s float32) Vector4 {
	return Vec4(atMost(v.e[0], s), atMost(v.e[1], s), atMost(v.e[2], s), atMost(v.e[3], s))
}

// Max returns this vector with each component no less than the
// corresponding component of other.
func (v Vector4) Max(other Vector4) Vector4 {
	return Vec4(atLeast(v.e[0], other.e[0]), atLeast(v.e[1], other.e[1]), atLeast(v.e[2], other.e[2]), atLeast(v.e[3], other.e[3]))
}

// MaxScalar returns this vector with each component no less than s.
func (v Vector4) MaxScalar(s float32) Vector4 {
	return Vec4(atLeast(v.e[0], s), atLeast(v.e[1], s), atLeast(v.e[2], s), atLeast(v.e[3], s))
}

// Clamp returns this vector with each component no less than the corresponding
// component of min and no greater than the corresponding component of max.
// Assumes min <= max; if this assumption isn't true, it will not operate correctly.
// NaN components remain NaN.
func (v Vector4) Clamp(min, max Vector4) Vector4 {
	return Vec4(Clamp(v.e[0], min.e[0], max.e[0]), Clamp(v.e[1], min.e[1], max.e[1]), Clamp(v.e[2], min.e[2], max.e[2]), Clamp(v.e[3], min.e[3], max.e[3]))
}

// ClampScalar returns this vector with each component clamped to [min, max].
func (v Vector4) ClampScalar(min, max float32) Vector4 {
	return Vec4(Clamp(v.e[0], min, max), Clamp(v.e[1], min, max), Clamp(v.e[2], min, max), Clamp(v.e[3], min, max))
}

// ClampRange returns this vector with each component clipped to the closed range r.
func (v Vector4) ClampRange(r minmax.F32) Vector4 {
	return Vec4(r.ClipValue(v.e[0]), r.ClipValue(v.e[1]), r.ClipValue(v.e[2]), r.ClipValue(v.e[3]))
}

// Direction operations:

// Project returns the projection of this vector onto the given vector:
// onto * (v·onto / onto·onto).
func (v Vector4) Project(onto Vector4) Vector4 {
	return onto.MulScalar(v.Dot(onto) / onto.Dot(onto))
}

// MoveTowards returns this vector moved towards target by at most maxDelta.
// If the remaining distance is no more than maxDelta, it returns target exactly.
func (v Vector4) MoveTowards(target Vector4, maxDelta float32) Vector4 {
	d := target.Sub(v)
	dist := d.Length()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return v.Add(d.MulScalar(maxDelta / dist))
}

// AngleTo returns the unsigned angle between this vector and other, in radians.
func (v Vector4) AngleTo(other Vector4) float32 {
	denom := Sqrt(v.LengthSquared() * other.LengthSquared())
	if denom == 0 {
		return Pi / 2
	}
	return Acos(Clamp(v.Dot(other)/denom, -1, 1))
}

// Conversions:

// ToVector4i returns this vector with each component truncated to an int32.
func (v Vector4) ToVector4i() Vector4i {
	return Vec4i(int32(v.e[0]), int32(v.e[1]), int32(v.e[2]), int32(v.e[3]))
}

// ToVector4u returns this vector with each component truncated to a uint32.
func (v Vector4) ToVector4u() Vector4u {
	return Vec4u(uint32(v.e[0]), uint32(v.e[1]), uint32(v.e[2]), uint32(v.e[3]))
}

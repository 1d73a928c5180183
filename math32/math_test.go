// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"math"
	"testing"

	"cogentcore.org/vkmath/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestDegToRad(t *testing.T) {
	assert.Equal(t, float32(math.Pi/2), DegToRad(90))
	tolassert.EqualTol(t, 180, RadToDeg(Pi), 1e-4)
	tolassert.EqualTol(t, 45, RadToDeg(DegToRad(45)), 1e-4)
}

func TestSign(t *testing.T) {
	assert.Equal(t, float32(-1), Sign(-3))
	assert.Equal(t, float32(1), Sign(0.001))
	assert.Equal(t, float32(1), Sign(Infinity))
	assert.Equal(t, float32(0), Sign(0))
	negZero := float32(math.Copysign(0, -1))
	assert.True(t, math.Signbit(float64(Sign(negZero))), "-0 keeps its sign")
	assert.True(t, IsNaN(Sign(NaN())))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, float32(3), Round(2.5))
	assert.Equal(t, float32(-3), Round(-2.5))
	assert.Equal(t, float32(2), RoundToEven(2.5))
	assert.Equal(t, float32(-2), RoundToEven(-2.5))
	assert.Equal(t, float32(-1), Trunc(-1.7))
	assert.Equal(t, float32(0.25), Fract(1.25))
	assert.Equal(t, float32(0.75), Fract(-1.25))
	assert.Equal(t, float32(1), Fract(-1e-8), "x - Floor(x) rounds up to 1 for tiny negative x")
	assert.Equal(t, float32(0), Fract(3))
	assert.Equal(t, float32(1.5), Mod(5.5, 2))
	assert.Equal(t, float32(-1.5), Mod(-5.5, 2))
}

func TestMixStep(t *testing.T) {
	assert.Equal(t, float32(2.5), Mix(0, 10, 0.25))
	assert.Equal(t, float32(0), Mix(0, 10, 0))
	assert.Equal(t, float32(10), Mix(0, 10, 1))
	assert.Equal(t, float32(10), MixBool(0, 10, true))
	assert.Equal(t, float32(0), MixBool(0, 10, false))

	assert.Equal(t, float32(0), Step(1, 0.5))
	assert.Equal(t, float32(1), Step(1, 1))
	assert.Equal(t, float32(1), Step(1, 2))

	assert.Equal(t, float32(0), SmoothStep(0, 1, -1))
	assert.Equal(t, float32(0), SmoothStep(0, 1, 0))
	assert.Equal(t, float32(0.5), SmoothStep(0, 1, 0.5))
	assert.Equal(t, float32(1), SmoothStep(0, 1, 1))
	assert.Equal(t, float32(1), SmoothStep(0, 1, 2))
	assert.Equal(t, float32(0.15625), SmoothStep(0, 4, 1))
}

func TestBits(t *testing.T) {
	assert.Equal(t, int32(0x3F800000), ToBits(1))
	assert.Equal(t, int32(math.MinInt32), ToRawBits(float32(math.Copysign(0, -1))))
	assert.Equal(t, CanonicalNaNBits, ToBits(NaN()))
	assert.Equal(t, int32(0x7FC00000), ToBits(FromBits(0x7FC00123)))
	assert.Equal(t, int32(0x7FC00123), ToRawBits(FromBits(0x7FC00123)))
	assert.Equal(t, CanonicalNaNBits, ToBits(FromBits(-0x00400000)), "negative NaNs are canonicalized too")
	assert.Equal(t, int32(-0x00400000), ToRawBits(FromBits(-0x00400000)))
	assert.Equal(t, Infinity, FromBits(0x7F800000))

	for _, x := range []float32{0, 1, -2.5, 3.4e38, SmallestNonzeroFloat32, Infinity} {
		assert.Equal(t, x, FromBits(ToBits(x)))
		assert.Equal(t, x, FromBits(ToRawBits(x)))
	}
}

func TestFrexpLdexp(t *testing.T) {
	frac, exp := Frexp(8)
	assert.Equal(t, float32(0.5), frac)
	assert.Equal(t, 4, exp)
	assert.Equal(t, float32(8), Ldexp(frac, exp))

	frac, exp = Frexp(-0.375)
	assert.Equal(t, float32(-0.75), frac)
	assert.Equal(t, -1, exp)
}

func TestScalarClassify(t *testing.T) {
	assert.True(t, IsFinite(1))
	assert.False(t, IsFinite(Infinity))
	assert.False(t, IsFinite(NaN()))
	assert.True(t, IsInf(Inf(-1), -1))
	assert.False(t, IsInf(Inf(-1), 1))
	assert.Equal(t, float32(0.5), InverseSqrt(4))
	tolassert.EqualTol(t, 3, LogBase(8, 2), 1e-5)
	assert.Equal(t, 5, Clamp(7, 0, 5))
	assert.Equal(t, float32(-1), Clamp[float32](-3, -1, 1))
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommonFunctions(t *testing.T) {
	v := Vec3(-1.5, 0, 2.5)
	assert.Equal(t, Vec3(1.5, 0, 2.5), v.Abs())
	assert.Equal(t, Vec3(-1, 0, 1), v.Sign())
	assert.Equal(t, Vec3(-2, 0, 2), v.Floor())
	assert.Equal(t, Vec3(-1, 0, 3), v.Ceil())
	assert.Equal(t, Vec3(-2, 0, 3), v.Round())
	assert.Equal(t, Vec3(-2, 0, 2), v.RoundToEven())
	assert.Equal(t, Vec3(-1, 0, 2), v.Trunc())
	assert.Equal(t, Vec3(0.5, 0, 0.5), v.Fract())

	a, b := Vec2(0, 10), Vec2(10, 20)
	assert.Equal(t, Vec2(5, 15), a.MixScalar(b, 0.5))
	assert.Equal(t, a, a.MixScalar(b, 0))
	assert.Equal(t, b, a.MixScalar(b, 1))
	assert.Equal(t, Vec2(0, 20), a.Mix(b, Vec2(0, 1)))
	assert.Equal(t, Vec2(10, 10), a.MixBool(b, Vec2b(true, false)))

	s := Vec4(0.5, 1, 2, -1)
	assert.Equal(t, Vec4(0, 1, 1, 0), s.StepScalar(1))
	assert.Equal(t, Vec4(1, 1, 0, 0), s.Step(Vec4(0, 1, 3, 0)))
	assert.Equal(t, Vec4(0.5, 1, 1, 0), s.SmoothStepScalar(0, 1))
	assert.Equal(t, Vec4(0.15625, 0.5, 1, 0), Vec4(1, 2, 5, 0).SmoothStep(Vec4(0, 0, 0, 1), Vec4(4, 4, 4, 2)))
}

func TestClassifyVectors(t *testing.T) {
	v := Vec4(1, NaN(), Infinity, -Infinity)
	assert.Equal(t, Vec4b(false, true, false, false), v.IsNaN())
	assert.Equal(t, Vec4b(false, false, true, true), v.IsInf(0))
	assert.Equal(t, Vec4b(false, false, true, false), v.IsInf(1))
	assert.Equal(t, Vec4b(false, false, false, true), v.IsInf(-1))
	assert.Equal(t, Vec4b(true, false, false, false), v.IsFinite())
}

func TestVectorBits(t *testing.T) {
	v := Vec4(1, -2, NaN(), FromBits(0x7FC00123))
	assert.Equal(t, Vec4i(0x3F800000, -0x40000000, CanonicalNaNBits, CanonicalNaNBits), v.ToBits())
	raw := v.ToRawBits()
	assert.Equal(t, int32(0x7FC00123), raw.W())
	assert.Equal(t, raw, Vector4FromBits(raw).ToRawBits())

	w := Vec3(0.1, -3.5e-20, 7e30)
	assert.Equal(t, w, Vector3FromBits(w.ToBits()))
	assert.Equal(t, w, Vector3FromBits(w.ToRawBits()))
	assert.Equal(t, Vec2(1, 2), Vector2FromBits(Vec2(1, 2).ToBits()))

	frac, exp := Vec3(8, -0.375, 0).Frexp()
	assert.Equal(t, Vec3(0.5, -0.75, 0), frac)
	assert.Equal(t, Vec3i(4, -1, 0), exp)
	assert.Equal(t, Vec3(8, -0.375, 0), Vector3Ldexp(frac, exp))

	f2, e2 := Vec2(3, 1).Frexp()
	assert.Equal(t, Vec2(3, 1), Vector2Ldexp(f2, e2))
	f4, e4 := Vec4(3, 1, 0.5, 1024).Frexp()
	assert.Equal(t, Vec4i(2, 1, 0, 11), e4)
	assert.Equal(t, Vec4(3, 1, 0.5, 1024), Vector4Ldexp(f4, e4))
}

func TestGeometricFunctions(t *testing.T) {
	a, b := Vec3(1, 2, 3), Vec3(-4, 5, 0.5)
	assert.Equal(t, a.Dot(b), b.Dot(a))
	assert.Equal(t, float32(7.5), a.Dot(b))
	assert.Equal(t, Vector3Forward, Vector3Right.Cross(Vector3Up))
	assert.Equal(t, Vector3Back, Vector3Up.Cross(Vector3Right))
	assert.Equal(t, Vec3(-3, 6, -3), Vec3(1, 2, 3).Cross(Vec3(4, 5, 6)))

	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, float32(25), Vec2(3, 4).LengthSquared())
	assert.Equal(t, float32(2), Vec4(1, 1, 1, 1).Length())
	assert.Equal(t, float32(5), Vec3(1, 2, 3).Distance(Vec3(4, 6, 3)))
	assert.Equal(t, float32(25), Vec3(1, 2, 3).DistanceSquared(Vec3(4, 6, 3)))

	for _, v := range []Vector3{Vec3(1, 2, 3), Vec3(-0.1, 40, 7), Vec3(1e-3, 0, 0)} {
		n := v.Normal()
		tolAssertEqual(t, 1, n.Length())
		tolAssertEqualVector3(t, standardTol, n, n.Normal())
	}
	tolAssertEqualVector2(t, standardTol, Vec2(Sqrt2/2, Sqrt2/2), Vec2(5, 5).Normal())
	assert.True(t, Vector4Zero.Normal().IsNaN().All())

	assert.Equal(t, Vec2(1, 1), Vec2(1, -1).Reflect(Vector2Up))
	assert.Equal(t, Vec4(1, 1, 0, 0), Vec4(1, -1, 0, 0).Reflect(Vec4(0, 1, 0, 0)))

	incident := Vec3(1, -1, 0).Normal()
	tolAssertEqualVector3(t, standardTol, incident, incident.Refract(Vector3Up, 1))
	// past the critical angle there is only reflection
	assert.Equal(t, Vector3Zero, Vec3(1, 0, 0).Refract(Vector3Up, 1.5))
	assert.Equal(t, Vector2Zero, Vec2(1, -0.1).Normal().Refract(Vector2Up, 2))
	bent := incident.Refract(Vector3Up, 0.5)
	tolAssertEqual(t, 1, bent.Length())
	assert.Less(t, bent.X(), incident.X())

	n := Vec3(0, 1, 0)
	assert.Equal(t, n, n.FaceForward(Vec3(0, -1, 0), Vector3Up))
	assert.Equal(t, n.Negate(), n.FaceForward(Vec3(0, 1, 0), Vector3Up))
	assert.Equal(t, n.Negate(), n.FaceForward(Vector3Right, Vector3Up), "a zero dot product faces away")
}

func TestExponentialFunctions(t *testing.T) {
	assert.Equal(t, Vec4(1, 2, 4, 8), Vector4Scalar(2).Pow(Vec4(0, 1, 2, 3)))
	assert.Equal(t, Vec4(1, 2, 4, 8), Vector4Scalar(2).PowVectori(Vec4i(0, 1, 2, 3)))
	assert.Equal(t, Vec3(1, 4, 9), Vec3(1, 2, 3).PowScalar(2))
	assert.Equal(t, Vec3(1, 8, 27), Vec3(1, 2, 3).PowInt(3))
	assert.Equal(t, Vec2(0.5, 0.25), Vec2(2, 4).PowInt(-1))

	x := Vec4(0.5, 1, 2, 10)
	tolAssertEqualSlice(t, 1e-5, x.ToSlice(), x.Log().Exp().ToSlice())
	tolAssertEqualSlice(t, 1e-5, x.ToSlice(), x.Log2().Exp2().ToSlice())
	tolAssertEqualSlice(t, 1e-5, []float32{2, 3}, Vec2(100, 1000).Log10().ToSlice())
	tolAssertEqualVector3(t, 1e-5, Vec3(1, 2, 8), Vec3(0, 1, 3).Exp2())
	tolAssertEqualVector3(t, 1e-5, Vec3(0, 1, 3), Vec3(1, 2, 8).Log2())
	tolAssertEqualVector3(t, 1e-5, Vec3(1, E, E*E), Vec3(0, 1, 2).Exp())
	assert.Equal(t, Vec3(2, 3, 4), Vec3(4, 9, 16).Sqrt())
	assert.Equal(t, Vec2(0.5, 0.25), Vec2(4, 16).InverseSqrt())
	tolAssertEqualVector2(t, 1e-5, Vec2(3, 2), Vec2(8, 4).LogBase(2))
	tolAssertEqualVector2(t, 1e-5, Vec2(1, 2), Vec2(3, 9).LogBase(3))

	assert.True(t, Vec2(-1, 0).Sqrt().IsNaN().X())
	assert.True(t, Vec2(-1, 0).Log().IsInf(-1).Y())
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/vkmath/math32/minmax"
	"github.com/stretchr/testify/assert"
)

func TestVector3i(t *testing.T) {
	a, b := Vec3i(1, -2, 3), Vec3i(4, 5, -6)
	assert.Equal(t, "(1, -2, 3)", a.String())
	assert.Equal(t, Vec3i(5, 3, -3), a.Add(b))
	assert.Equal(t, Vec3i(-3, -7, 9), a.Sub(b))
	assert.Equal(t, Vec3i(4, -10, -18), a.Mul(b))
	assert.Equal(t, Vec3i(4, -2, -2), b.Div(a))
	assert.Equal(t, Vec3i(0, 1, 0), b.Mod(a))
	assert.Equal(t, Vec3i(1, -2, 0), Vec3i(7, -8, 9).ModScalar(3))
	assert.Equal(t, Vec3i(2, -4, 6), a.MulScalar(2))
	assert.Equal(t, Vec3i(-1, 2, -3), a.Negate())
	assert.Equal(t, Vec3i(1, 2, 3), a.Abs())
	assert.Equal(t, Vec3i(3, 0, 5), a.AddScalar(2))
	assert.Equal(t, Vec3i(0, -3, 2), a.SubScalar(1))
	assert.Equal(t, Vec3i(2, 2, 3), Vec3i(4, 5, 6).DivScalar(2))

	assert.Equal(t, int32(-24), a.Dot(b))
	assert.Equal(t, int32(14), a.LengthSquared())
	assert.Equal(t, float32(5), Vec3i(0, 3, 4).Length())
	assert.Equal(t, Vector3iForward, Vector3iRight.Cross(Vector3iUp))

	assert.Equal(t, Vec3i(1, -2, 1), a.MinScalar(1))
	assert.Equal(t, Vec3i(1, 0, 3), a.MaxScalar(0))
	assert.Equal(t, Vec3i(1, -1, 2), a.Clamp(Vec3i(-1, -1, -1), Vec3i(2, 2, 2)))
	assert.Equal(t, Vec3i(1, 0, 2), a.ClampScalar(0, 2))
	assert.Equal(t, Vec3i(1, -1, 1), a.ClampRange(minmax.I32{Min: -1, Max: 1}))

	assert.Equal(t, Vec3i(0b0100, 0, 0), Vec3i(0b0110, 1, 0).And(Vec3i(0b1100, 2, 0)))
	assert.Equal(t, Vec3i(0b1110, 3, 0), Vec3i(0b0110, 1, 0).Or(Vec3i(0b1100, 2, 0)))
	assert.Equal(t, Vec3i(0b1010, 3, 0), Vec3i(0b0110, 1, 0).Xor(Vec3i(0b1100, 2, 0)))
	assert.Equal(t, Vec3i(-1, -2, 0), Vec3i(0, 1, -1).Not())
	assert.Equal(t, Vec3i(4, -8, 12), a.Shl(2))
	assert.Equal(t, Vec3i(2, -1, 0), Vec3i(8, -4, 1).Shr(2))

	assert.Panics(t, func() { a.Div(Vector3iZero) }, "integer division by zero panics")
}

func TestMutableVector3i(t *testing.T) {
	m := NewMutableVec3i(1, -2, 3)
	m.SetAdd(Vec3i(1, 1, 1)).SetMulScalar(3).SetAbs()
	assert.Equal(t, Vec3i(6, 3, 12), m.Vector3i)
	m.SetShr(1).SetShl(2).SetXor(Vec3i(1, 1, 1))
	assert.Equal(t, Vec3i(13, 5, 25), m.Vector3i)
	m.SetAnd(Vec3i(8, 4, 16)).SetOr(Vec3i(1, 0, 0)).SetNot()
	assert.Equal(t, Vec3i(-10, -5, -17), m.Vector3i)
	m.SetNegate().SetClampRange(minmax.I32{Min: 0, Max: 10})
	assert.Equal(t, Vec3i(10, 5, 10), m.Vector3i)
	m.SetSub(Vec3i(1, 1, 1)).SetDivScalar(2).SetModScalar(3)
	assert.Equal(t, Vec3i(1, 2, 1), m.Vector3i)
	m.Set(1, 0, 0).SetCross(Vector3iUp)
	assert.Equal(t, Vector3iForward, m.Vector3i)
}

func TestVector3u(t *testing.T) {
	a := Vec3u(1, 2, 3)
	assert.Equal(t, Vec3u(5, 7, 9), a.Add(Vec3u(4, 5, 6)))
	assert.Equal(t, Vec3u(0xFFFFFFFF, 0, 1), a.Sub(Vec3u(2, 2, 2)), "unsigned lanes wrap")
	assert.Equal(t, uint32(14), a.LengthSquared())
	assert.Equal(t, Vec3u(1, 2, 2), a.ClampRange(minmax.U32{Min: 1, Max: 2}))
	assert.Equal(t, Vec3u(0xFFFFFFFE, 0xFFFFFFFD, 0xFFFFFFFC), a.Not())
	assert.Equal(t, Vec3i(1, 2, 3), a.ToVector3i())
	assert.Equal(t, Vec3u(1, 0, 1), Vec3u(4, 6, 7).ModScalar(3))

	m := a.ToMutable().SetMul(Vec3u(2, 2, 2)).SetMaxScalar(3).SetMinScalar(5)
	assert.Equal(t, Vec3u(3, 4, 5), m.Vector3u)
}

func TestVector4l(t *testing.T) {
	big := int64(1) << 20
	a := Vec4l(big, -1, 2, 3)
	assert.Equal(t, Vec4l(2*big, -2, 4, 6), a.Add(a))
	assert.Equal(t, Vec4l(big, 1, 2, 3), a.Abs())
	assert.Equal(t, big*big+14, a.LengthSquared())
	assert.Equal(t, Vec4l(1, -1, 1, 1), a.ClampRange(minmax.I64{Min: -1, Max: 1}))
	assert.Equal(t, Vec4l(big<<1, -2, 4, 6), a.Shl(1))
	assert.Equal(t, Vec4(1, -1, 2, 3), Vec4l(1, -1, 2, 3).ToVector4())

	m := a.ToMutable().SetSubScalar(1).SetNegate()
	assert.Equal(t, Vec4l(1-big, 2, -1, -2), m.Vector4l)
}

func TestVectorBool(t *testing.T) {
	a, b := Vec3b(true, true, false), Vec3b(true, false, false)
	assert.Equal(t, Vec3b(true, false, false), a.And(b))
	assert.Equal(t, Vec3b(true, true, false), a.Or(b))
	assert.Equal(t, Vec3b(false, true, false), a.Xor(b))
	assert.Equal(t, Vec3b(false, false, true), a.Not())
	assert.True(t, a.Any())
	assert.False(t, a.All())
	assert.True(t, Vector3bTrue.All())
	assert.False(t, Vector3bFalse.Any())
	assert.Equal(t, "(true, true, false)", a.String())
	assert.Equal(t, []bool{true, true, false}, a.ToSlice())
	assert.Equal(t, a, a.WithZ(false))
	assert.Equal(t, Vec3b(true, true, true), a.WithZ(true))

	m := a.ToMutable()
	m.SetXor(b).SetOr(Vec3b(false, false, true)).SetNot()
	assert.Equal(t, Vec3b(true, false, false), m.Vector3b)
	m.SetAnd(Vector3bFalse)
	assert.Equal(t, Vector3bFalse, m.Vector3b)
	assert.Equal(t, Vec3b(true, true, false), a, "ToMutable must copy")

	assert.True(t, Vec4b(false, false, false, true).Any())
	assert.True(t, Vec2b(true, true).All())
}

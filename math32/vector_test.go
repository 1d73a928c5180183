// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"errors"
	"image"
	"testing"

	"cogentcore.org/vkmath/math32/minmax"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{[2]float32{5, 10}}, Vec2(5, 10))
	assert.Equal(t, Vec2(20, 20), Vector2Scalar(20))
	assert.Equal(t, Vec2(15, -5), Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vec2(8, 3), Vector2FromFixed(fixed.P(8, 3)))
	assert.Equal(t, Vec2(1, 2), Vector2FromArray([2]float32{1, 2}))
	assert.Equal(t, Vec2(2, 3), Vector2FromSlice([]float32{1, 2, 3}, 1))

	v := Vec2(-1, 7)
	assert.Equal(t, float32(-1), v.X())
	assert.Equal(t, float32(7), v.Y())
	assert.Equal(t, Vec2(4, 7), v.WithX(4))
	assert.Equal(t, Vec2(-1, 4), v.WithY(4))
	assert.Equal(t, Vec2(-1, 7), v, "With must not modify the receiver")
	assert.Equal(t, float32(7), v.Dim(Y))
	assert.Equal(t, "(-1, 7)", v.String())

	assert.Equal(t, image.Pt(8, 3), Vec2(8.7, 3.2).ToPoint())
	assert.Equal(t, fixed.Point26_6{X: 544, Y: -32}, Vec2(8.5, -0.5).ToFixed())
	assert.Equal(t, float32(8.5), FromFixed(ToFixed(8.5)))

	assert.Equal(t, Vec2(-7, -1), v.Perpendicular())
	assert.Equal(t, Vector2Up, Vector2Right.Perpendicular())
}

func TestVector3Construction(t *testing.T) {
	v := Vec3(1, 2, 3)
	assert.Equal(t, [3]float32{1, 2, 3}, v.Array())
	assert.Equal(t, []float32{1, 2, 3}, v.ToSlice())
	assert.Equal(t, v, Vector3FromSlice(v.ToSlice(), 0))
	assert.Equal(t, v, Vector3FromArray(v.Array()))
	assert.Equal(t, v, Vector3FromVector2(Vec2(1, 2), 3))
	assert.Equal(t, Vec2(1, 2), v.XY())
	assert.Equal(t, "(1, 2, 3)", v.String())

	s := v.ToSlice()
	s[0] = 100
	assert.Equal(t, float32(1), v.X(), "ToSlice must return a copy")

	dst := make([]float32, 5)
	v.CopyTo(dst, 2)
	assert.Equal(t, []float32{0, 0, 1, 2, 3}, dst)

	assert.Equal(t, Vec3(9, 2, 3), v.WithX(9))
	assert.Equal(t, Vec3(1, 9, 3), v.WithY(9))
	assert.Equal(t, Vec3(1, 2, 9), v.WithZ(9))

	assert.Equal(t, Vec3(0, 0, 0), Vector3Zero)
	assert.Equal(t, Vec3(1, 1, 1), Vector3One)
	assert.Equal(t, Vector3Up.Negate(), Vector3Down)
	assert.Equal(t, Vector3Right.Negate(), Vector3Left)
	assert.Equal(t, Vector3Forward.Negate(), Vector3Back)
	assert.True(t, Vector3PositiveInfinity.IsInf(1).All())
	assert.True(t, Vector3NegativeInfinity.IsInf(-1).All())

	v4 := Vector4FromVector3(v, 4)
	assert.Equal(t, Vec4(1, 2, 3, 4), v4)
	assert.Equal(t, v, v4.XYZ())
	assert.Equal(t, Vec2(1, 2), v4.XY())
	assert.Equal(t, "(1, 2, 3, 4)", v4.String())
}

func TestVectorBounds(t *testing.T) {
	v := Vec4(1, 2, 3, 4)
	assert.Equal(t, float32(4), v.Dim(W))
	assert.PanicsWithError(t, indexPanic(4, 4), func() { v.Dim(4) })
	assert.PanicsWithError(t, indexPanic(-1, 4), func() { v.Dim(-1) })
	assert.PanicsWithError(t, indexPanic(3, 3), func() { Vec3(1, 2, 3).Dim(W) })
	assert.PanicsWithError(t, indexPanic(2, 2), func() { Vec2(1, 2).Dim(Z) })
	assert.PanicsWithError(t, indexPanic(4, 4), func() { Vec4i(1, 2, 3, 4).Dim(4) })
	assert.PanicsWithError(t, indexPanic(4, 4), func() { Vec4u(1, 2, 3, 4).Dim(4) })
	assert.PanicsWithError(t, indexPanic(4, 4), func() { Vec4l(1, 2, 3, 4).Dim(4) })
	assert.PanicsWithError(t, indexPanic(4, 4), func() { Vec4b(true, true, true, true).Dim(4) })
	assert.PanicsWithError(t, indexPanic(4, 4), func() { NewMutableVec4(1, 2, 3, 4).SetDim(4, 0) })

	defer func() {
		r := recover()
		err, ok := r.(error)
		assert.True(t, ok)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange))
		var ie *IndexError
		assert.True(t, errors.As(err, &ie))
		assert.Equal(t, 4, ie.Index)
		assert.Equal(t, 4, ie.Len)
	}()
	v.Dim(4)
}

func TestVector3Arithmetic(t *testing.T) {
	a, b := Vec3(1, 2, 3), Vec3(4, 5, 6)
	assert.Equal(t, Vec3(5, 7, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, Vec3(4, 10, 18), a.Mul(b))
	assert.Equal(t, Vec3(4, 2.5, 2), b.Div(a))
	assert.Equal(t, Vec3(3, 4, 5), a.AddScalar(2))
	assert.Equal(t, Vec3(-1, 0, 1), a.SubScalar(2))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vec3(0.5, 1, 1.5), a.DivScalar(2))
	assert.Equal(t, Vec3(-1, -2, -3), a.Negate())
	assert.Equal(t, Vec3(1, 2, 3), a, "operations must not modify the receiver")

	assert.Equal(t, Vec3(1.5, -1.5, 0), Vec3(5.5, -5.5, 4).Mod(Vec3(2, 2, 2)))
	assert.Equal(t, Vec3(1, 0, 2), Vec3(4, 6, 8).ModScalar(3))

	d := Vec3(1, 0, -1).Div(Vector3Zero)
	assert.Equal(t, Vec3b(true, false, true), d.IsInf(0))
	assert.True(t, IsNaN(d.Y()))
	assert.True(t, IsInf(d.X(), 1))
	assert.True(t, IsInf(d.Z(), -1))
}

func TestVectorClamp(t *testing.T) {
	v := Vec4(-2, 0.5, 3, NaN())
	assert.Equal(t, Vec3(-2, 0.5, 1), v.XYZ().MinScalar(1))
	assert.Equal(t, Vec3(0, 0.5, 3), v.XYZ().MaxScalar(0))
	assert.Equal(t, Vec3(0, 0.5, 1), v.XYZ().ClampScalar(0, 1))
	assert.Equal(t, Vec3(-1, 0.5, 2), v.XYZ().Clamp(Vec3(-1, -1, -1), Vec3(2, 2, 2)))
	assert.Equal(t, Vec3(-2, 0.5, 2), v.XYZ().Min(Vec3(5, 5, 2)))
	assert.Equal(t, Vec3(-1, 1, 3), v.XYZ().Max(Vec3(-1, 1, 1)))
	assert.Equal(t, Vec3(0, 0.5, 1), v.XYZ().ClampRange(minmax.F32{Min: 0, Max: 1}))

	// NaN lanes stay NaN through every clamp
	assert.True(t, IsNaN(v.ClampScalar(0, 1).W()))
	assert.True(t, IsNaN(v.MinScalar(0).W()))
	assert.True(t, IsNaN(v.MaxScalar(0).W()))
	assert.True(t, IsNaN(v.ClampRange(minmax.F32{Min: 0, Max: 1}).W()))
	assert.Equal(t, Vec3(0, 0.5, 1), v.ClampScalar(0, 1).XYZ())
}

func TestVectorDirection(t *testing.T) {
	assert.Equal(t, Vec3(2, 0, 0), Vec3(2, 3, 4).Project(Vector3Right))
	assert.Equal(t, Vec2(1.5, 1.5), Vec2(3, 0).Project(Vec2(1, 1)))
	assert.True(t, Vec3(1, 2, 3).Project(Vector3Zero).IsNaN().All())

	assert.Equal(t, Vec3(1, 0, 0), Vector3Zero.MoveTowards(Vec3(10, 0, 0), 1))
	assert.Equal(t, Vec3(10, 0, 0), Vec3(9.5, 0, 0).MoveTowards(Vec3(10, 0, 0), 1))
	assert.Equal(t, Vec2(3, 4), Vec2(3, 4).MoveTowards(Vec2(3, 4), 0))
	assert.Equal(t, Vec2(0.6, 0.8), Vector2Zero.MoveTowards(Vec2(3, 4), 1))
	assert.Equal(t, Vec4(1, 1, 1, 1), Vector4Zero.MoveTowards(Vector4One, 3))

	tolAssertEqual(t, Pi/2, Vector3Right.AngleTo(Vector3Up))
	tolAssertEqual(t, Pi, Vector3Right.AngleTo(Vector3Left))
	tolAssertEqual(t, 0, Vec3(2, 2, 0).AngleTo(Vec3(1, 1, 0)))
	tolAssertEqual(t, Pi/4, Vec2(1, 0).AngleTo(Vec2(1, 1)))
	tolAssertEqual(t, Pi/2, Vec4(1, 0, 0, 0).AngleTo(Vec4(0, 0, 0, 5)))
	assert.Equal(t, float32(Pi/2), Vector3Zero.AngleTo(Vector3Up))

	tolAssertEqual(t, Pi/2, Vector2Right.SignedAngleTo(Vector2Up))
	tolAssertEqual(t, -Pi/2, Vector2Up.SignedAngleTo(Vector2Right))
	tolAssertEqual(t, Pi/2, Vector3Right.SignedAngleTo(Vector3Up, Vector3Forward))
	tolAssertEqual(t, -Pi/2, Vector3Right.SignedAngleTo(Vector3Up, Vector3Back))
}

func tolAssertEqual(t *testing.T, expected, actual float32) {
	t.Helper()
	tolAssertEqualSlice(t, standardTol, []float32{expected}, []float32{actual})
}

func TestVectorConversions(t *testing.T) {
	assert.Equal(t, Vec3i(1, -2, 3), Vec3(1.9, -2.9, 3).ToVector3i())
	assert.Equal(t, Vec2u(1, 2), Vec2(1.5, 2.5).ToVector2u())
	assert.Equal(t, Vec4(1, -2, 3, 4), Vec4i(1, -2, 3, 4).ToVector4())
	assert.Equal(t, Vec3(1, 2, 3), Vec3u(1, 2, 3).ToVector3())
	assert.Equal(t, Vec4l(1, -2, 3, 4), Vector4lFromVector4i(Vec4i(1, -2, 3, 4)))
	assert.Equal(t, Vec4i(1, -2, 3, 4), Vec4l(1, -2, 3, 4).ToVector4i())
	assert.Equal(t, Vec2i(15, -5), Vector2iFromPoint(image.Pt(15, -5)))
	assert.Equal(t, image.Pt(15, -5), Vec2i(15, -5).ToPoint())
}

func TestVectorEquality(t *testing.T) {
	assert.True(t, Vec3(1, 2, 3) == Vec3(1, 2, 3))
	assert.False(t, Vec3(1, 2, 3) == Vec3(1, 2, 4))
	n := Vec2(NaN(), 0)
	assert.False(t, n == n)

	seen := map[Vector3i]bool{Vec3i(1, 2, 3): true}
	assert.True(t, seen[Vec3i(1, 2, 3)])
}

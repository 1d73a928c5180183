// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testMatrix() Matrix4 {
	return Matrix4FromRows(
		Vec4(1, 2, 3, 4),
		Vec4(2, 1, 2, 3),
		Vec4(3, 2, 1, 2),
		Vec4(5, 3, 2, 1),
	)
}

func TestMatrix4Construction(t *testing.T) {
	m := testMatrix()
	a := [16]float32{1, 2, 3, 4, 2, 1, 2, 3, 3, 2, 1, 2, 5, 3, 2, 1}
	assert.Equal(t, a, m.Array())
	assert.Equal(t, a[:], m.ToSlice())
	assert.Equal(t, m, Matrix4FromArray(a))
	assert.Equal(t, m, Matrix4FromSlice(append([]float32{9}, a[:]...), 1))
	assert.Equal(t, m, NewMatrix4(1, 2, 3, 4, 2, 1, 2, 3, 3, 2, 1, 2, 5, 3, 2, 1))

	dst := make([]float32, 18)
	m.CopyTo(dst, 2)
	assert.Equal(t, a[:], dst[2:])

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, m.At(i, j), m.Row(i).Dim(Dims(j)))
			assert.Equal(t, m.At(i, j), m.Col(j).Dim(Dims(i)))
			assert.Equal(t, a[4*i+j], m.At(i, j))
		}
	}
	assert.Equal(t, Vec4(5, 3, 2, 1), m.Row(3))
	assert.Equal(t, Vec4(4, 3, 2, 1), m.Col(3))

	assert.Equal(t, "[[1, 0, 0, 0], [0, 1, 0, 0], [0, 0, 1, 0], [0, 0, 0, 1]]", Matrix4Identity.String())
	assert.Equal(t, Matrix4{}, Matrix4Zero)
}

func TestMatrix4Bounds(t *testing.T) {
	m := NewMutableMatrix4()
	assert.PanicsWithError(t, indexPanic(4, 4), func() { m.At(4, 0) })
	assert.PanicsWithError(t, indexPanic(4, 4), func() { m.At(0, 4) })
	assert.PanicsWithError(t, indexPanic(-1, 4), func() { m.At(-1, 0) })
	assert.PanicsWithError(t, indexPanic(4, 4), func() { m.Row(4) })
	assert.PanicsWithError(t, indexPanic(4, 4), func() { m.Col(4) })
	assert.PanicsWithError(t, indexPanic(4, 4), func() { m.SetAt(4, 1, 0) })
	assert.PanicsWithError(t, indexPanic(4, 4), func() { m.SetAt(1, 4, 0) })
	assert.PanicsWithError(t, indexPanic(4, 4), func() { m.SetRow(4, Vector4One) })
	assert.PanicsWithError(t, indexPanic(4, 4), func() { m.SetCol(4, Vector4One) })
	assert.Equal(t, Matrix4Identity, m.Matrix4, "failed writes leave the matrix unchanged")
}

func TestMatrix4Arithmetic(t *testing.T) {
	m := testMatrix()
	assert.Equal(t, m.MulScalar(2), m.Add(m))
	assert.Equal(t, Matrix4Zero, m.Sub(m))
	assert.Equal(t, m, m.AddScalar(1).SubScalar(1))
	assert.Equal(t, m, m.MulScalar(4).DivScalar(4))
	assert.Equal(t, Matrix4Zero, m.Add(m.Negate()))

	assert.Equal(t, m, m.Mul(Matrix4Identity))
	assert.Equal(t, m, Matrix4Identity.Mul(m))
	assert.Equal(t, Vec4(34, 22, 18, 20), m.Mul(m).Row(0))
	assert.Equal(t, m.Mul(m.Transpose()), m.Mul(m.Transpose()).Transpose(), "m * mT is symmetric")

	assert.Equal(t, m.Row(0), m.MulVector4(Vec4(1, 0, 0, 0)))
	assert.Equal(t, m.Row(1).Add(m.Row(3)), m.MulVector4(Vec4(0, 1, 0, 1)))

	assert.Equal(t, m, m.Transpose().Transpose())
	assert.Equal(t, m.Col(2), m.Transpose().Row(2))
}

func TestMatrix4Inverse(t *testing.T) {
	m := testMatrix()
	assert.Equal(t, float32(-22), m.Determinant())
	assert.Equal(t, float32(1), Matrix4Identity.Determinant())
	assert.Equal(t, float32(0), Matrix4Zero.Determinant())
	assert.Equal(t, m.Determinant(), m.Transpose().Determinant())
	assert.Equal(t, float32(24), Matrix4Scaling(Vec3(2, 3, 4)).Determinant())

	tolAssertEqualMatrix4(t, standardTol, Matrix4Identity, m.Mul(m.Inverse()))
	tolAssertEqualMatrix4(t, standardTol, Matrix4Identity, m.Inverse().Mul(m))
	tolAssertEqualMatrix4(t, standardTol, Matrix4Identity, m.Div(m))
	tolAssertEqualMatrix4(t, 1e-5, m, m.Inverse().Inverse())

	tr := Matrix4Translation(Vec3(1, 2, 3))
	assert.Equal(t, Matrix4Translation(Vec3(-1, -2, -3)), tr.Inverse())
	assert.Equal(t, Matrix4Identity, Matrix4Identity.Inverse())

	r := Matrix4Rotation(0.3, Vec3(1, 2, 3))
	tolAssertEqualMatrix4(t, 1e-5, r.Transpose(), r.Inverse())

	// a singular matrix propagates NaN and Inf instead of failing
	z := Matrix4Zero.Inverse()
	for _, e := range z.ToSlice() {
		assert.True(t, IsNaN(e))
	}
	s := Matrix4Scaling(Vec3(1, 0, 1)).Inverse()
	assert.False(t, IsFinite(s.At(0, 0)), "%v", s)
}

func TestMatrix4Transforms(t *testing.T) {
	m := Matrix4Identity.
		Translate(Vec3(1, 2, 3)).
		Rotate(DegToRad(45), Vector3Forward).
		Scale(Vec3(1, 2, 3))
	expected := NewMatrix4(
		Sqrt2/2, Sqrt2/2, 0, 0,
		-Sqrt2, Sqrt2, 0, 0,
		0, 0, 3, 0,
		1, 2, 3, 1,
	)
	tolAssertEqualMatrix4(t, standardTol, expected, m)

	mm := NewMutableMatrix4()
	res := mm.SetTranslate(Vec3(1, 2, 3)).SetRotate(DegToRad(45), Vector3Forward).SetScale(Vec3(1, 2, 3))
	assert.Same(t, mm, res)
	assert.Equal(t, m, mm.Matrix4)

	assert.Equal(t, Matrix4Translation(Vec3(1, 2, 3)), Matrix4Identity.Translate(Vec3(1, 2, 3)))
	assert.Equal(t, Matrix4Scaling(Vec3(1, 2, 3)), Matrix4Identity.Scale(Vec3(1, 2, 3)))
	assert.Equal(t, Matrix4Rotation(1, Vector3Up), Matrix4Identity.Rotate(1, Vector3Up))
	tolAssertEqualMatrix4(t, standardTol, Matrix4Translation(Vec3(1, 2, 3)).Mul(m), m.Translate(Vec3(1, 2, 3)))
	assert.Equal(t, Matrix4Scaling(Vec3(1, 2, 3)).Mul(m), m.Scale(Vec3(1, 2, 3)))

	// composition is not commutative
	ts := Matrix4Identity.Translate(Vec3(1, 0, 0)).Scale(Vec3(2, 2, 2))
	st := Matrix4Identity.Scale(Vec3(2, 2, 2)).Translate(Vec3(1, 0, 0))
	assert.Equal(t, Vec3(3, 0, 0), ts.MulVector3AsPoint(Vec3(1, 0, 0)))
	assert.Equal(t, Vec3(4, 0, 0), st.MulVector3AsPoint(Vec3(1, 0, 0)))
	assert.Equal(t, Vec3(2, 0, 0), ts.MulVector3AsVector(Vec3(1, 0, 0)), "directions ignore translation")

	assert.Equal(t, Vec3(1, 2, 3), Matrix4Translation(Vec3(1, 2, 3)).MulVector3AsPoint(Vector3Zero))
	assert.Equal(t, Vec3(2, 3, 4), Matrix4Scaling(Vec3(2, 3, 4)).MulVector3AsPoint(Vector3One))

	rz := Matrix4Rotation(DegToRad(90), Vector3Forward)
	tolAssertEqualVector3(t, standardTol, Vector3Up, rz.MulVector3AsVector(Vector3Right))
	tolAssertEqualVector3(t, standardTol, Vector3Left, rz.MulVector3AsVector(Vector3Up))
	rx := Matrix4Rotation(DegToRad(90), Vector3Right)
	tolAssertEqualVector3(t, standardTol, Vector3Forward, rx.MulVector3AsVector(Vector3Up))
	ry := Matrix4Rotation(DegToRad(90), Vec3(0, 5, 0))
	tolAssertEqualVector3(t, standardTol, Vector3Right, ry.MulVector3AsVector(Vector3Forward))

	axis := Vec3(1, 1, 1).Normal()
	tolAssertEqualVector3(t, standardTol, axis, Matrix4Rotation(2, axis).MulVector3AsVector(axis))
	tolAssertEqualSlice(t, 1e-5, []float32{1}, []float32{Matrix4Rotation(0.7, Vec3(3, -1, 2)).Determinant()})
}

func TestMutableMatrix4(t *testing.T) {
	m := testMatrix().ToMutable()
	assert.Same(t, m, m.SetAt(0, 3, 9))
	assert.Equal(t, float32(9), m.At(0, 3))

	m.SetRow(1, Vec4(1, 1, 1, 1)).SetCol(2, Vec4(7, 7, 7, 7))
	assert.Equal(t, Vec4(1, 1, 7, 1), m.Row(1))
	assert.Equal(t, Vec4(7, 7, 7, 7), m.Col(2))

	s := m.AsSlice()
	s[15] = 100
	assert.Equal(t, float32(100), m.At(3, 3))
	m.SetAt(3, 0, -1)
	assert.Equal(t, float32(-1), s[12])

	im := m.ToImmutable()
	m.SetZero()
	assert.Equal(t, float32(100), im.At(3, 3), "ToImmutable must copy")
	assert.Equal(t, Matrix4Zero, m.Matrix4)

	m.Set(testMatrix()).SetTranspose()
	assert.Equal(t, testMatrix().Transpose(), m.Matrix4)
	m.SetTranspose().SetMul(Matrix4Identity).SetAdd(testMatrix()).SetSub(testMatrix())
	assert.Equal(t, testMatrix(), m.Matrix4)
	m.SetMulScalar(2).SetDivScalar(2).SetAddScalar(3).SetSubScalar(3).SetNegate().SetNegate()
	assert.Equal(t, testMatrix(), m.Matrix4)

	m.SetInverse()
	tolAssertEqualMatrix4(t, standardTol, testMatrix().Inverse(), m.Matrix4)
	m.Set(testMatrix()).SetDiv(testMatrix())
	tolAssertEqualMatrix4(t, standardTol, Matrix4Identity, m.Matrix4)

	m.FromSlice(Matrix4Translation(Vec3(4, 5, 6)).ToSlice(), 0)
	assert.Equal(t, Vec4(4, 5, 6, 1), m.Row(3))
	m.SetIdentity()
	assert.Equal(t, Matrix4Identity, m.Matrix4)

	m.SetZero().SetAddScalar(2).SetMulScalar(3).SetSubScalar(1).SetDivScalar(5)
	assert.Equal(t, Matrix4Zero.AddScalar(1), m.Matrix4)
	m.SetAdd(Matrix4Identity).SetSub(Matrix4Zero.AddScalar(1)).SetNegate()
	assert.Equal(t, Matrix4Identity.Negate(), m.Matrix4)

	orig := testMatrix()
	cp := orig.ToMutable()
	cp.SetZero()
	assert.Equal(t, testMatrix(), orig, "ToMutable must copy")
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/vkmath/math32/minmax"
	"github.com/stretchr/testify/assert"
)

func TestMutableVector3(t *testing.T) {
	m := NewMutableVec3(1, 2, 3)
	assert.Equal(t, Vec3(1, 2, 3), m.Vector3)
	assert.Equal(t, float32(6), m.Dot(Vector3One), "immutable operations are promoted")

	res := m.SetAdd(Vec3(1, 1, 1)).SetMulScalar(2).SetSubScalar(1)
	assert.Same(t, m, res, "Set methods return the receiver")
	assert.Equal(t, Vec3(3, 5, 7), m.ToImmutable())

	m.SetX(-1).SetY(-2).SetZ(-3)
	assert.Equal(t, Vec3(-1, -2, -3), m.Vector3)
	m.SetNegate()
	assert.Equal(t, Vec3(1, 2, 3), m.Vector3)
	m.SetDim(Z, 9)
	assert.Equal(t, float32(9), m.Z())
	m.SetScalar(4)
	assert.Equal(t, Vector3Scalar(4), m.Vector3)
	m.SetZero()
	assert.Equal(t, Vector3Zero, m.Vector3)
	m.FromSlice([]float32{0, 1, 2, 3}, 1)
	assert.Equal(t, Vec3(1, 2, 3), m.Vector3)

	m.Set(1, 2, 3).SetSub(Vec3(1, 1, 1)).SetMul(Vec3(2, 2, 2)).SetDiv(Vec3(1, 2, 4)).SetAddScalar(1)
	assert.Equal(t, Vec3(1, 2, 2), m.Vector3)
	m.SetDivScalar(2).SetMod(Vec3(0.5, 0.75, 1)).SetModScalar(1)
	assert.Equal(t, Vec3(0, 0.25, 0), m.Vector3)

	m.Set(-2, 0.5, 3).SetClampScalar(0, 1)
	assert.Equal(t, Vec3(0, 0.5, 1), m.Vector3)
	m.Set(-2, 0.5, 3).SetClamp(Vec3(-1, 0, 0), Vec3(1, 1, 2))
	assert.Equal(t, Vec3(-1, 0.5, 2), m.Vector3)
	m.Set(-2, 0.5, 3).SetMin(Vec3(0, 0, 0)).SetMax(Vec3(-1, -1, -1))
	assert.Equal(t, Vec3(-1, 0, 0), m.Vector3)
	m.Set(-2, 0.5, 3).SetMinScalar(1).SetMaxScalar(0)
	assert.Equal(t, Vec3(0, 0.5, 1), m.Vector3)
	m.Set(-2, 0.5, 3).SetClampRange(minmax.F32{Min: -1, Max: 1})
	assert.Equal(t, Vec3(-1, 0.5, 1), m.Vector3)

	m.Set(3, 0, 4).SetNormal()
	assert.Equal(t, Vec3(0.6, 0, 0.8), m.Vector3)
	m.Set(1, 0, 0).SetCross(Vector3Up)
	assert.Equal(t, Vector3Forward, m.Vector3)
	m.Set(1, -1, 0).SetReflect(Vector3Up)
	assert.Equal(t, Vec3(1, 1, 0), m.Vector3)
	m.Set(2, 3, 4).SetProject(Vector3Right)
	assert.Equal(t, Vec3(2, 0, 0), m.Vector3)
	m.Set(0, 0, 0).SetMoveTowards(Vec3(0, 10, 0), 4)
	assert.Equal(t, Vec3(0, 4, 0), m.Vector3)
	m.Set(0, 0, 1).SetFaceForward(Vector3Forward, Vector3Forward)
	assert.Equal(t, Vec3(0, 0, -1), m.Vector3)
	m.Set(0, -1, 0).SetRefract(Vector3Up, 1)
	assert.Equal(t, Vec3(0, -1, 0), m.Vector3)
}

func TestMutableCopies(t *testing.T) {
	v := Vec3(1, 2, 3)
	m := v.ToMutable()
	m.SetX(10)
	assert.Equal(t, Vec3(1, 2, 3), v, "ToMutable must copy")

	im := m.ToImmutable()
	m.SetY(20)
	assert.Equal(t, Vec3(10, 2, 3), im, "ToImmutable must copy")

	cp := m.Vector3
	m.SetZ(30)
	assert.Equal(t, Vec3(10, 20, 3), cp)

	// the axis constants are values: mutating a mutable copy leaves them intact
	up := Vector3Up.ToMutable()
	up.SetScalar(5)
	assert.Equal(t, Vec3(0, 1, 0), Vector3Up)
}

func TestAsSliceLiveView(t *testing.T) {
	m := NewMutableVec4(1, 2, 3, 4)
	s := m.AsSlice()
	s[1] = 20
	assert.Equal(t, float32(20), m.Y())
	m.SetW(40)
	assert.Equal(t, float32(40), s[3])
	assert.Equal(t, []float32{1, 20, 3, 40}, m.ToSlice())

	mi := NewMutableVec2i(1, 2)
	mi.AsSlice()[0] = 7
	assert.Equal(t, Vec2i(7, 2), mi.ToImmutable())

	mu := NewMutableVec3u(1, 2, 3)
	mu.AsSlice()[2] = 9
	assert.Equal(t, Vec3u(1, 2, 9), mu.Vector3u)

	ml := NewMutableVec4l(1, 2, 3, 4)
	ml.AsSlice()[3] = 1 << 40
	assert.Equal(t, int64(1<<40), ml.W())

	mb := NewMutableVec2b(false, false)
	mb.AsSlice()[1] = true
	assert.Equal(t, Vec2b(false, true), mb.ToImmutable())
}

func TestMutableVector2(t *testing.T) {
	m := NewMutableVec2(3, 4)
	m.SetPerpendicular()
	assert.Equal(t, Vec2(-4, 3), m.Vector2)
	m.SetNormal()
	tolAssertEqual(t, 1, m.Length())

	z := NewMutableVec2(0, 0).SetNormal()
	assert.True(t, z.IsNaN().All(), "normalizing the zero vector yields NaN")
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox3(t *testing.T) {
	assert.True(t, B3Empty().IsEmpty())
	assert.True(t, B3FromPoints().IsEmpty())

	b := B3FromPoints(Vec3(1, -1, 0), Vec3(-1, 2, 3), Vec3(0, 0, 1))
	assert.Equal(t, B3(-1, -1, 0, 1, 2, 3), b)
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Vec3(0, 0.5, 1.5), b.Center())
	assert.Equal(t, Vec3(2, 3, 3), b.Size())
	assert.Equal(t, "[(-1, -1, 0), (1, 2, 3)]", b.String())

	assert.True(t, b.ContainsPoint(Vec3(1, 2, 3)))
	assert.False(t, b.ContainsPoint(Vec3(1, 2, 3.5)))
	assert.True(t, b.ContainsBox(B3(0, 0, 0, 1, 1, 1)))
	assert.False(t, b.ContainsBox(B3(0, 0, 0, 2, 1, 1)))
	assert.True(t, b.IntersectsBox(B3(0.5, 0.5, 0.5, 5, 5, 5)))
	assert.False(t, b.IntersectsBox(B3(2, 0, 0, 3, 1, 1)))

	assert.Equal(t, B3(0, 0, 0, 1, 2, 2), b.Intersect(B3(0, 0, 0, 2, 2, 2)))
	assert.Equal(t, B3(-1, -1, 0, 2, 2, 3), b.Union(B3(0, 0, 0, 2, 2, 2)))
	assert.Equal(t, B3(-2, -2, -1, 2, 3, 4), b.ExpandByScalar(1))
	assert.Equal(t, B3(-1, -1, 0, 1, 2, 5), b.ExpandByBox(B3(0, 0, 4, 0, 0, 5)))
	assert.Equal(t, B3(0, 0, 0, 2, 3, 3), b.Translate(Vec3(1, 1, 0)))

	assert.Equal(t, Vec3(1, 0, 3), b.ClampPoint(Vec3(4, 0, 4)))
	assert.Equal(t, float32(5), b.DistanceToPoint(Vec3(4, 6, 0)))
	assert.Equal(t, float32(0), b.DistanceToPoint(Vec3(0, 0, 1)))
}

func TestBox3MulMatrix4(t *testing.T) {
	b := B3(0, 0, 0, 1, 2, 3)
	assert.Equal(t, b, b.MulMatrix4(Matrix4Identity))
	assert.Equal(t, b.Translate(Vec3(1, 2, 3)), b.MulMatrix4(Matrix4Translation(Vec3(1, 2, 3))))
	assert.Equal(t, B3(-2, 0, 0, 0, 1, 3), b.MulMatrix4(Matrix4Scaling(Vec3(-2, 0.5, 1))))

	r := b.MulMatrix4(Matrix4Rotation(DegToRad(90), Vector3Forward))
	tolAssertEqualVector3(t, standardTol, Vec3(-2, 0, 0), r.Min)
	tolAssertEqualVector3(t, standardTol, Vec3(0, 1, 3), r.Max)
}

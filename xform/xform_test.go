// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"os"
	"strings"
	"testing"

	"cogentcore.org/vkmath/base/errors"
	"cogentcore.org/vkmath/base/tolassert"
	"cogentcore.org/vkmath/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var armMatrix = math32.NewMatrix4(
	math32.Sqrt2/2, math32.Sqrt2/2, 0, 0,
	-math32.Sqrt2, math32.Sqrt2, 0, 0,
	0, 0, 3, 0,
	1, 2, 3, 1,
)

func assertMatrix(t *testing.T, expected, actual math32.Matrix4) {
	t.Helper()
	e, a := expected.ToSlice(), actual.ToSlice()
	for i := range e {
		tolassert.EqualTol(t, e[i], a[i], 1.0e-6, "element %d", i)
	}
}

func TestOpen(t *testing.T) {
	for _, file := range []string{"testdata/arm.toml", "testdata/arm.yaml"} {
		t.Run(file, func(t *testing.T) {
			p, err := Open(file)
			require.NoError(t, err)
			assert.Equal(t, "arm", p.Name)
			require.Len(t, p.Steps, 3)
			assert.Equal(t, Translate, p.Steps[0].Op)
			assert.Equal(t, []float32{1, 2, 3}, p.Steps[0].Vector)
			assert.Equal(t, Rotate, p.Steps[1].Op)
			assert.Equal(t, Scale, p.Steps[2].Op)

			m, err := p.Compose()
			require.NoError(t, err)
			assertMatrix(t, armMatrix, m)

			b, ok := p.Bounds(m)
			assert.True(t, ok)
			assert.True(t, b.ContainsPoint(math32.Vec3(1, 2, 3)), "%v", b)
			tolassert.EqualTol(t, 3, b.Size().Z(), 1.0e-6)
		})
	}
}

func TestOpenFS(t *testing.T) {
	p, err := OpenFS(os.DirFS("testdata"), "arm.yaml")
	require.NoError(t, err)
	assert.Len(t, p.Steps, 3)

	_, err = OpenFS(os.DirFS("testdata"), "missing.toml")
	assert.Error(t, err)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open("testdata/badop.yaml")
	assert.ErrorIs(t, err, ErrUnknownOp)
	assert.ErrorContains(t, err, "step 1")
	assert.ErrorContains(t, err, "shear")

	_, err = Open("testdata/short.toml")
	assert.ErrorIs(t, err, ErrVectorLength)
	assert.ErrorContains(t, err, "step 0")

	_, err = Open("testdata/unknown.toml")
	assert.Error(t, err)

	_, err = Open("testdata/pipeline.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Open("testdata/nothing.toml")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRead(t *testing.T) {
	p, err := Read(strings.NewReader(`
steps:
  - op: rotate
    vector: [0, 0, 2]
    angle: 90
    degrees: true
`), YAML)
	require.NoError(t, err)
	m, err := p.Compose()
	require.NoError(t, err)
	v := m.MulVector3AsVector(math32.Vector3Right)
	tolassert.EqualTol(t, 0, v.X(), 1.0e-6)
	tolassert.EqualTol(t, 1, v.Y(), 1.0e-6)

	p, err = ReadBytes([]byte("name = \"empty\"\n"), TOML)
	require.NoError(t, err)
	m, err = p.Compose()
	require.NoError(t, err)
	assert.Equal(t, math32.Matrix4Identity, m)
	_, ok := p.Bounds(m)
	assert.False(t, ok)

	p, err = Read(strings.NewReader(""), YAML)
	require.NoError(t, err)
	assert.Empty(t, p.Steps)

	_, err = Read(strings.NewReader("steps: [{op: rotate, vector: [0, 0, 0], angle: 1}]"), YAML)
	assert.ErrorIs(t, err, ErrZeroAxis)

	_, err = Read(strings.NewReader("box = [1.0]"), TOML)
	assert.ErrorIs(t, err, ErrVectorLength)

	_, err = Read(strings.NewReader(""), Format(7))
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.ErrorContains(t, err, "Format(7)")
}

func TestCompose(t *testing.T) {
	p := &Pipeline{Steps: []Step{
		{Op: Scale, Vector: []float32{2, 2, 2}},
		{Op: Translate, Vector: []float32{1, 0, 0}},
	}}
	m, err := p.Compose()
	require.NoError(t, err)
	assert.Equal(t, math32.Matrix4Identity.Scale(math32.Vec3(2, 2, 2)).Translate(math32.Vec3(1, 0, 0)), m)

	p.Steps = append(p.Steps, Step{Op: "spin", Vector: []float32{1, 0, 0}})
	_, err = p.Compose()
	assert.ErrorIs(t, err, ErrUnknownOp)
	assert.ErrorContains(t, err, "step 2")

	s := Step{Op: Rotate, Vector: []float32{0, 0, 1}, Angle: 180, Degrees: true}
	assert.Equal(t, math32.DegToRad(180), s.Radians())
	s.Degrees = false
	assert.Equal(t, float32(180), s.Radians())
}

func TestUniform(t *testing.T) {
	m := math32.Matrix4Translation(math32.Vec3(1, 2, 3))
	assert.Equal(t, []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 2, 3, 1}, Uniform(m))

	bits := UniformBits(m)
	assert.Len(t, bits, 16)
	assert.Equal(t, int32(0x3F800000), bits[0])
	assert.Equal(t, int32(0x40400000), bits[14])

	n := math32.Matrix4Zero.Inverse()
	for _, b := range UniformBits(n) {
		assert.Equal(t, math32.CanonicalNaNBits, b)
	}
}

func TestFormat(t *testing.T) {
	f, err := FormatForFile("a/b.YML")
	assert.NoError(t, err)
	assert.Equal(t, YAML, f)
	f, err = FormatForFile("x.toml")
	assert.NoError(t, err)
	assert.Equal(t, TOML, f)
	assert.Equal(t, "yaml", YAML.String())
	assert.Equal(t, "toml", TOML.String())
}

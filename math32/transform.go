// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Transforms use the row-vector convention: a point p is transformed as
// p * M, so the translation of an affine matrix is held in row 3.
// Composing X onto M yields X * M, which means that transforms
// accumulate in the order they are called on the matrix.

// Matrix4Translation returns a matrix that translates by v.
func Matrix4Translation(v Vector3) Matrix4 {
	return NewMatrix4(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v.e[0], v.e[1], v.e[2], 1,
	)
}

// Matrix4Scaling returns a matrix that scales by v.
func Matrix4Scaling(v Vector3) Matrix4 {
	return NewMatrix4(
		v.e[0], 0, 0, 0,
		0, v.e[1], 0, 0,
		0, 0, v.e[2], 0,
		0, 0, 0, 1,
	)
}

// Matrix4Rotation returns a right-handed rotation of angle radians
// around axis, using the Rodrigues rotation formula.
// The axis is normalized first; a zero axis yields NaN elements.
func Matrix4Rotation(angle float32, axis Vector3) Matrix4 {
	a := axis.Normal()
	x, y, z := a.e[0], a.e[1], a.e[2]
	s, c := Sincos(angle)
	t := 1 - c
	return NewMatrix4(
		c+t*x*x, t*x*y+s*z, t*x*z-s*y, 0,
		t*x*y-s*z, c+t*y*y, t*y*z+s*x, 0,
		t*x*z+s*y, t*y*z-s*x, c+t*z*z, 0,
		0, 0, 0, 1,
	)
}

// Translate returns this matrix with a translation by v composed into it,
// applied in the basis of the matrix.
func (m Matrix4) Translate(v Vector3) Matrix4 {
	x, y, z := v.e[0], v.e[1], v.e[2]
	for j := 0; j < 4; j++ {
		m.e[12+j] += x*m.e[j] + y*m.e[4+j] + z*m.e[8+j]
	}
	return m
}

// Rotate returns this matrix with a rotation of angle radians around
// axis composed into it. See [Matrix4Rotation].
func (m Matrix4) Rotate(angle float32, axis Vector3) Matrix4 {
	return Matrix4Rotation(angle, axis).Mul(m)
}

// Scale returns this matrix with a non-uniform scale by v composed into it.
func (m Matrix4) Scale(v Vector3) Matrix4 {
	for i := 0; i < 3; i++ {
		s := v.e[i]
		for j := 0; j < 4; j++ {
			m.e[4*i+j] *= s
		}
	}
	return m
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/vkmath/base/tolassert"
)

const standardTol = float32(1.0e-6)

func tolAssertEqualSlice(t *testing.T, tol float32, expected, actual []float32) {
	t.Helper()
	for i := range expected {
		tolassert.EqualTol(t, expected[i], actual[i], tol, "component %d", i)
	}
}

func tolAssertEqualVector2(t *testing.T, tol float32, expected, actual Vector2) {
	t.Helper()
	tolAssertEqualSlice(t, tol, expected.ToSlice(), actual.ToSlice())
}

func tolAssertEqualVector3(t *testing.T, tol float32, expected, actual Vector3) {
	t.Helper()
	tolAssertEqualSlice(t, tol, expected.ToSlice(), actual.ToSlice())
}

func tolAssertEqualVector4(t *testing.T, tol float32, expected, actual Vector4) {
	t.Helper()
	tolAssertEqualSlice(t, tol, expected.ToSlice(), actual.ToSlice())
}

func tolAssertEqualMatrix4(t *testing.T, tol float32, expected, actual Matrix4) {
	t.Helper()
	tolAssertEqualSlice(t, tol, expected.ToSlice(), actual.ToSlice())
}

// indexPanic returns the error a bounds check panics with.
func indexPanic(i, n int) string {
	return (&IndexError{Index: i, Len: n}).Error()
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	failed bool
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(t, float32(3.1415), 3.1416))
	assert.True(t, EqualTol(t, 2.0, 2.0000001, 1e-6))

	r := &recorder{}
	assert.False(t, Equal(r, float32(1), 1.1))
	assert.True(t, r.failed)

	r = &recorder{}
	assert.False(t, EqualTol(r, 1.0, 1.00001, 1e-6))
	assert.True(t, r.failed)

	r = &recorder{}
	assert.False(t, EqualTol(r, math.NaN(), math.NaN(), 1))
	assert.True(t, r.failed)
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestF32(t *testing.T) {
	r := F32{}
	r.Set(-1, 3)
	assert.True(t, r.IsValid())
	assert.Equal(t, float32(4), r.Range())
	assert.Equal(t, float32(0.25), r.Scale())
	assert.Equal(t, float32(1), r.Midpoint())
	assert.True(t, r.InRange(3))
	assert.False(t, r.InRange(3.5))
	assert.True(t, r.IsLow(-2))
	assert.True(t, r.IsHigh(4))
	assert.False(t, r.IsHigh(2))

	assert.Equal(t, float32(-1), r.ClipValue(-5))
	assert.Equal(t, float32(3), r.ClipValue(5))
	assert.Equal(t, float32(2), r.ClipValue(2))
	assert.True(t, math.IsNaN(float64(r.ClipValue(float32(math.NaN())))))

	assert.Equal(t, float32(0.5), r.NormValue(1))
	assert.Equal(t, float32(1), r.NormValue(10))
	assert.Equal(t, float32(1), r.ProjValue(0.5))

	r.SetInfinity()
	assert.False(t, r.IsValid())
	assert.True(t, r.FitValueInRange(2))
	assert.True(t, r.FitValueInRange(-2))
	assert.False(t, r.FitValueInRange(0))
	assert.Equal(t, F32{-2, 2}, r)

	z := F32{1, 1}
	assert.Equal(t, float32(0), z.Scale())
}

func TestIntRanges(t *testing.T) {
	i := I32{}
	i.Set(-2, 2)
	assert.True(t, i.IsValid())
	assert.Equal(t, int32(4), i.Range())
	assert.True(t, i.InRange(-2))
	assert.Equal(t, int32(-2), i.ClipValue(-9))
	assert.Equal(t, int32(2), i.ClipValue(9))
	assert.Equal(t, int32(1), i.ClipValue(1))

	u := U32{Min: 1, Max: 10}
	assert.Equal(t, uint32(1), u.ClipValue(0))
	assert.Equal(t, uint32(10), u.ClipValue(100))
	assert.False(t, u.InRange(11))
	assert.Equal(t, uint32(9), u.Range())

	l := I64{}
	l.Set(-(1 << 40), 1<<40)
	assert.Equal(t, int64(1<<40), l.ClipValue(1<<50))
	assert.Equal(t, int64(-(1 << 40)), l.ClipValue(-(1 << 50)))
	assert.Equal(t, int64(1<<41), l.Range())
	assert.False(t, (&I64{Min: 1, Max: 0}).IsValid())
}

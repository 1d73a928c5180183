// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package minmax

// I32 represents a closed [Min, Max] range for int32 values.
type I32 struct {
	Min int32
	Max int32
}

// Set sets the min and max values
func (mr *I32) Set(mn, mx int32) {
	mr.Min = mn
	mr.Max = mx
}

// IsValid returns true if Min <= Max
func (mr *I32) IsValid() bool {
	return mr.Min <= mr.Max
}

// InRange tests whether value is within the range (>= Min and <= Max)
func (mr *I32) InRange(val int32) bool {
	return val >= mr.Min && val <= mr.Max
}

// Range returns Max - Min
func (mr *I32) Range() int32 {
	return mr.Max - mr.Min
}

// ClipValue clips given value within Min / Max range
func (mr *I32) ClipValue(val int32) int32 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}

// U32 represents a closed [Min, Max] range for uint32 values.
type U32 struct {
	Min uint32
	Max uint32
}

// Set sets the min and max values
func (mr *U32) Set(mn, mx uint32) {
	mr.Min = mn
	mr.Max = mx
}

// IsValid returns true if Min <= Max
func (mr *U32) IsValid() bool {
	return mr.Min <= mr.Max
}

// InRange tests whether value is within the range (>= Min and <= Max)
func (mr *U32) InRange(val uint32) bool {
	return val >= mr.Min && val <= mr.Max
}

// Range returns Max - Min
func (mr *U32) Range() uint32 {
	return mr.Max - mr.Min
}

// ClipValue clips given value within Min / Max range
func (mr *U32) ClipValue(val uint32) uint32 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}

// I64 represents a closed [Min, Max] range for int64 values.
type I64 struct {
	Min int64
	Max int64
}

// Set sets the min and max values
func (mr *I64) Set(mn, mx int64) {
	mr.Min = mn
	mr.Max = mx
}

// IsValid returns true if Min <= Max
func (mr *I64) IsValid() bool {
	return mr.Min <= mr.Max
}

// InRange tests whether value is within the range (>= Min and <= Max)
func (mr *I64) InRange(val int64) bool {
	return val >= mr.Min && val <= mr.Max
}

// Range returns Max - Min
func (mr *I64) Range() int64 {
	return mr.Max - mr.Min
}

// ClipValue clips given value within Min / Max range
func (mr *I64) ClipValue(val int64) int64 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}

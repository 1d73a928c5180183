// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "cogentcore.org/vkmath/math32/minmax"

// MutableVector4l is a [Vector4l] that can be updated in place.
// It is not safe for concurrent modification.
type MutableVector4l struct {
	Vector4l
}

// NewMutableVec4l returns a new [MutableVector4l] with the given components.
func NewMutableVec4l(x, y, z, w int64) *MutableVector4l {
	return &MutableVector4l{Vec4l(x, y, z, w)}
}

// AsSlice returns a slice backed by the vector's storage.
func (v *MutableVector4l) AsSlice() []int64 {
	return v.e[:]
}

// ToImmutable returns a copy of the current value.
func (v *MutableVector4l) ToImmutable() Vector4l {
	return v.Vector4l
}

// Set sets the X, Y, Z, W components.
func (v *MutableVector4l) Set(x, y, z, w int64) *MutableVector4l {
	v.e[0] = x
	v.e[1] = y
	v.e[2] = z
	v.e[3] = w
	return v
}

// SetX sets the X component.
func (v *MutableVector4l) SetX(x int64) *MutableVector4l {
	v.e[0] = x
	return v
}

// SetY sets the Y component.
func (v *MutableVector4l) SetY(y int64) *MutableVector4l {
	v.e[1] = y
	return v
}

// SetZ sets the Z component.
func (v *MutableVector4l) SetZ(z int64) *MutableVector4l {
	v.e[2] = z
	return v
}

// SetW sets the W component.
func (v *MutableVector4l) SetW(w int64) *MutableVector4l {
	v.e[3] = w
	return v
}

// SetDim sets this vector component value by dimension index.
func (v *MutableVector4l) SetDim(dim Dims, value int64) *MutableVector4l {
	checkIndex(int(dim), 4)
	v.e[dim] = value
	return v
}

// SetScalar sets all components to the same scalar value.
func (v *MutableVector4l) SetScalar(s int64) *MutableVector4l {
	v.e[0] = s
	v.e[1] = s
	v.e[2] = s
	v.e[3] = s
	return v
}

// SetZero sets all components to zero.
func (v *MutableVector4l) SetZero() *MutableVector4l {
	v.Vector4l = Vector4l{}
	return v
}

// FromSlice sets the components from s starting at offset.
func (v *MutableVector4l) FromSlice(s []int64, offset int) *MutableVector4l {
	copy(v.e[:], s[offset:offset+4])
	return v
}

// SetAdd sets this to += other vector.
func (v *MutableVector4l) SetAdd(other Vector4l) *MutableVector4l {
	v.e[0] += other.e[0]
	v.e[1] += other.e[1]
	v.e[2] += other.e[2]
	v.e[3] += other.e[3]
	return v
}

// SetAddScalar sets this to += s.
func (v *MutableVector4l) SetAddScalar(s int64) *MutableVector4l {
	v.e[0] += s
	v.e[1] += s
	v.e[2] += s
	v.e[3] += s
	return v
}

// SetSub sets this to -= other vector.
func (v *MutableVector4l) SetSub(other Vector4l) *MutableVector4l {
	v.e[0] -= other.e[0]
	v.e[1] -= other.e[1]
	v.e[2] -= other.e[2]
	v.e[3] -= other.e[3]
	return v
}

// SetSubScalar sets this to -= s.
func (v *MutableVector4l) SetSubScalar(s int64) *MutableVector4l {
	v.e[0] -= s
	v.e[1] -= s
	v.e[2] -= s
	v.e[3] -= s
	return v
}

// SetMul sets this to *= other vector.
func (v *MutableVector4l) SetMul(other Vector4l) *MutableVector4l {
	v.e[0] *= other.e[0]
	v.e[1] *= other.e[1]
	v.e[2] *= other.e[2]
	v.e[3] *= other.e[3]
	return v
}

// SetMulScalar sets this to *= s.
func (v *MutableVector4l) SetMulScalar(s int64) *MutableVector4l {
	v.e[0] *= s
	v.e[1] *= s
	v.e[2] *= s
	v.e[3] *= s
	return v
}

// SetDiv sets this to /= other vector.
func (v *MutableVector4l) SetDiv(other Vector4l) *MutableVector4l {
	v.e[0] /= other.e[0]
	v.e[1] /= other.e[1]
	v.e[2] /= other.e[2]
	v.e[3] /= other.e[3]
	return v
}

// SetDivScalar sets this to /= s.
func (v *MutableVector4l) SetDivScalar(s int64) *MutableVector4l {
	v.e[0] /= s
	v.e[1] /= s
	v.e[2] /= s
	v.e[3] /= s
	return v
}

// SetMod sets this to %= other vector.
func (v *MutableVector4l) SetMod(other Vector4l) *MutableVector4l {
	v.e[0] %= other.e[0]
	v.e[1] %= other.e[1]
	v.e[2] %= other.e[2]
	v.e[3] %= other.e[3]
	return v
}

// SetModScalar sets this to %= s.
func (v *MutableVector4l) SetModScalar(s int64) *MutableVector4l {
	v.e[0] %= s
	v.e[1] %= s
	v.e[2] %= s
	v.e[3] %= s
	return v
}

// SetNegate negates each component.
func (v *MutableVector4l) SetNegate() *MutableVector4l {
	v.Vector4l = v.Negate()
	return v
}

// SetAbs sets each component to its absolute value.
func (v *MutableVector4l) SetAbs() *MutableVector4l {
	v.Vector4l = v.Abs()
	return v
}

// SetMin sets this vector to [Vector4l.Min].
func (v *MutableVector4l) SetMin(other Vector4l) *MutableVector4l {
	v.Vector4l = v.Min(other)
	return v
}

// SetMinScalar sets this vector to [Vector4l.MinScalar].
func (v *MutableVector4l) SetMinScalar(s int64) *MutableVector4l {
	v.Vector4l = v.MinScalar(s)
	return v
}

// SetMax sets this vector to [Vector4l.Max].
func (v *MutableVector4l) SetMax(other Vector4l) *MutableVector4l {
	v.Vector4l = v.Max(other)
	return v
}

// SetMaxScalar sets this vector to [Vector4l.MaxScalar].
func (v *MutableVector4l) SetMaxScalar(s int64) *MutableVector4l {
	v.Vector4l = v.MaxScalar(s)
	return v
}

// SetClamp sets this vector to [Vector4l.Clamp].
func (v *MutableVector4l) SetClamp(min, max Vector4l) *MutableVector4l {
	v.Vector4l = v.Clamp(min, max)
	return v
}

// SetClampScalar sets this vector to [Vector4l.ClampScalar].
func (v *MutableVector4l) SetClampScalar(min, max int64) *MutableVector4l {
	v.Vector4l = v.ClampScalar(min, max)
	return v
}

// SetClampRange sets this vector to [Vector4l.ClampRange].
func (v *MutableVector4l) SetClampRange(r minmax.I64) *MutableVector4l {
	v.Vector4l = v.ClampRange(r)
	return v
}

// SetAnd sets this to &= other vector.
func (v *MutableVector4l) SetAnd(other Vector4l) *MutableVector4l {
	v.e[0] &= other.e[0]
	v.e[1] &= other.e[1]
	v.e[2] &= other.e[2]
	v.e[3] &= other.e[3]
	return v
}

// SetOr sets this to |= other vector.
func (v *MutableVector4l) SetOr(other Vector4l) *MutableVector4l {
	v.e[0] |= other.e[0]
	v.e[1] |= other.e[1]
	v.e[2] |= other.e[2]
	v.e[3] |= other.e[3]
	return v
}

// SetXor sets this to ^= other vector.
func (v *MutableVector4l) SetXor(other Vector4l) *MutableVector4l {
	v.e[0] ^= other.e[0]
	v.e[1] ^= other.e[1]
	v.e[2] ^= other.e[2]
	v.e[3] ^= other.e[3]
	return v
}

// SetNot complements each component.
func (v *MutableVector4l) SetNot() *MutableVector4l {
	v.Vector4l = v.Not()
	return v
}

// SetShl shifts each component left by s bits.
func (v *MutableVector4l) SetShl(s uint) *MutableVector4l {
	v.e[0] <<= s
	v.e[1] <<= s
	v.e[2] <<= s
	v.e[3] <<= s
	return v
}

// SetShr shifts each component right by s bits.
func (v *MutableVector4l) SetShr(s uint) *MutableVector4l {
	v.e[0] >>= s
	v.e[1] >>= s
	v.e[2] >>= s
	v.e[3] >>= s
	return v
}

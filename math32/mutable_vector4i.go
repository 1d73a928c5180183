// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "cogentcore.org/vkmath/math32/minmax"

// MutableVector4i is a [Vector4i] that can be updated in place.
// It is not safe for concurrent modification.
type MutableVector4i struct {
	Vector4i
}

// NewMutableVec4i returns a new [MutableVector4i] with the given components.
func NewMutableVec4i(x, y, z, w int32) *MutableVector4i {
	return &MutableVector4i{Vec4i(x, y, z, w)}
}

// AsSlice returns a slice backed by the vector's storage.
func (v *MutableVector4i) AsSlice() []int32 {
	return v.e[:]
}

// ToImmutable returns a copy of the current value.
func (v *MutableVector4i) ToImmutable() Vector4i {
	return v.Vector4i
}

// Set sets the X, Y, Z, W components.
func (v *MutableVector4i) Set(x, y, z, w int32) *MutableVector4i {
	v.e[0] = x
	v.e[1] = y
	v.e[2] = z
	v.e[3] = w
	return v
}

// SetX sets the X component.
func (v *MutableVector4i) SetX(x int32) *MutableVector4i {
	v.e[0] = x
	return v
}

// SetY sets the Y component.
func (v *MutableVector4i) SetY(y int32) *MutableVector4i {
	v.e[1] = y
	return v
}

// SetZ sets the Z component.
func (v *MutableVector4i) SetZ(z int32) *MutableVector4i {
	v.e[2] = z
	return v
}

// SetW sets the W component.
func (v *MutableVector4i) SetW(w int32) *MutableVector4i {
	v.e[3] = w
	return v
}

// SetDim sets this vector component value by dimension index.
func (v *MutableVector4i) SetDim(dim Dims, value int32) *MutableVector4i {
	checkIndex(int(dim), 4)
	v.e[dim] = value
	return v
}

// SetScalar sets all components to the same scalar value.
func (v *MutableVector4i) SetScalar(s int32) *MutableVector4i {
	v.e[0] = s
	v.e[1] = s
	v.e[2] = s
	v.e[3] = s
	return v
}

// SetZero sets all components to zero.
func (v *MutableVector4i) SetZero() *MutableVector4i {
	v.Vector4i = Vector4i{}
	return v
}

// FromSlice sets the components from s starting at offset.
func (v *MutableVector4i) FromSlice(s []int32, offset int) *MutableVector4i {
	copy(v.e[:], s[offset:offset+4])
	return v
}

// SetAdd sets this to += other vector.
func (v *MutableVector4i) SetAdd(other Vector4i) *MutableVector4i {
	v.e[0] += other.e[0]
	v.e[1] += other.e[1]
	v.e[2] += other.e[2]
	v.e[3] += other.e[3]
	return v
}

// SetAddScalar sets this to += s.
func (v *MutableVector4i) SetAddScalar(s int32) *MutableVector4i {
	v.e[0] += s
	v.e[1] += s
	v.e[2] += s
	v.e[3] += s
	return v
}

// SetSub sets this to -= other vector.
func (v *MutableVector4i) SetSub(other Vector4i) *MutableVector4i {
	v.e[0] -= other.e[0]
	v.e[1] -= other.e[1]
	v.e[2] -= other.e[2]
	v.e[3] -= other.e[3]
	return v
}

// SetSubScalar sets this to -= s.
func (v *MutableVector4i) SetSubScalar(s int32) *MutableVector4i {
	v.e[0] -= s
	v.e[1] -= s
	v.e[2] -= s
	v.e[3] -= s
	return v
}

// SetMul sets this to *= other vector.
func (v *MutableVector4i) SetMul(other Vector4i) *MutableVector4i {
	v.e[0] *= other.e[0]
	v.e[1] *= other.e[1]
	v.e[2] *= other.e[2]
	v.e[3] *= other.e[3]
	return v
}

// SetMulScalar sets this to *= s.
func (v *MutableVector4i) SetMulScalar(s int32) *MutableVector4i {
	v.e[0] *= s
	v.e[1] *= s
	v.e[2] *= s
	v.e[3] *= s
	return v
}

// SetDiv sets this to /= other vector.
func (v *MutableVector4i) SetDiv(other Vector4i) *MutableVector4i {
	v.e[0] /= other.e[0]
	v.e[1] /= other.e[1]
	v.e[2] /= other.e[2]
	v.e[3] /= other.e[3]
	return v
}

// SetDivScalar sets this to /= s.
func (v *MutableVector4i) SetDivScalar(s int32) *MutableVector4i {
	v.e[0] /= s
	v.e[1] /= s
	v.e[2] /= s
	v.e[3] /= s
	return v
}

// SetMod sets this to %= other vector.
func (v *MutableVector4i) SetMod(other Vector4i) *MutableVector4i {
	v.e[0] %= other.e[0]
	v.e[1] %= other.e[1]
	v.e[2] %= other.e[2]
	v.e[3] %= other.e[3]
	return v
}

// SetModScalar sets this to %= s.
func (v *MutableVector4i) SetModScalar(s int32) *MutableVector4i {
	v.e[0] %= s
	v.e[1] %= s
	v.e[2] %= s
	v.e[3] %= s
	return v
}

// SetNegate negates each component.
func (v *MutableVector4i) SetNegate() *MutableVector4i {
	v.Vector4i = v.Negate()
	return v
}

// SetAbs sets each component to its absolute value.
func (v *MutableVector4i) SetAbs() *MutableVector4i {
	v.Vector4i = v.Abs()
	return v
}

// SetMin sets this vector to [Vector4i.Min].
func (v *MutableVector4i) SetMin(other Vector4i) *MutableVector4i {
	v.Vector4i = v.Min(other)
	return v
}

// SetMinScalar sets this vector to [Vector4i.MinScalar].
func (v *MutableVector4i) SetMinScalar(s int32) *MutableVector4i {
	v.Vector4i = v.MinScalar(s)
	return v
}

// SetMax sets this vector to [Vector4i.Max].
func (v *MutableVector4i) SetMax(other Vector4i) *MutableVector4i {
	v.Vector4i = v.Max(other)
	return v
}

// SetMaxScalar sets this vector to [Vector4i.MaxScalar].
func (v *MutableVector4i) SetMaxScalar(s int32) *MutableVector4i {
	v.Vector4i = v.MaxScalar(s)
	return v
}

// SetClamp sets this vector to [Vector4i.Clamp].
func (v *MutableVector4i) SetClamp(min, max Vector4i) *MutableVector4i {
	v.Vector4i = v.Clamp(min, max)
	return v
}

// SetClampScalar sets this vector to [Vector4i.ClampScalar].
func (v *MutableVector4i) SetClampScalar(min, max int32) *MutableVector4i {
	v.Vector4i = v.ClampScalar(min, max)
	return v
}

// SetClampRange sets this vector to [Vector4i.ClampRange].
func (v *MutableVector4i) SetClampRange(r minmax.I32) *MutableVector4i {
	v.Vector4i = v.ClampRange(r)
	return v
}

// SetAnd sets this to &= other vector.
func (v *MutableVector4i) SetAnd(other Vector4i) *MutableVector4i {
	v.e[0] &= other.e[0]
	v.e[1] &= other.e[1]
	v.e[2] &= other.e[2]
	v.e[3] &= other.e[3]
	return v
}

// SetOr sets this to |= other vector.
func (v *MutableVector4i) SetOr(other Vector4i) *MutableVector4i {
	v.e[0] |= other.e[0]
	v.e[1] |= other.e[1]
	v.e[2] |= other.e[2]
	v.e[3] |= other.e[3]
	return v
}

// SetXor sets this to ^= other vector.
func (v *MutableVector4i) SetXor(other Vector4i) *MutableVector4i {
	v.e[0] ^= other.e[0]
	v.e[1] ^= other.e[1]
	v.e[2] ^= other.e[2]
	v.e[3] ^= other.e[3]
	return v
}

// SetNot complements each component.
func (v *MutableVector4i) SetNot() *MutableVector4i {
	v.Vector4i = v.Not()
	return v
}

// SetShl shifts each component left by s bits.
func (v *MutableVector4i) SetShl(s uint) *MutableVector4i {
	v.e[0] <<= s
	v.e[1] <<= s
	v.e[2] <<= s
	v.e[3] <<= s
	return v
}

// SetShr shifts each component right by s bits.
func (v *MutableVector4i) SetShr(s uint) *MutableVector4i {
	v.e[0] >>= s
	v.e[1] >>= s
	v.e[2] >>= s
	v.e[3] >>= s
	return v
}

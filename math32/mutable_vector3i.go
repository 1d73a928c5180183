// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "cogentcore.org/vkmath/math32/minmax"

// MutableVector3i is a [Vector3i] that can be updated in place.
// It is not safe for concurrent modification.
type MutableVector3i struct {
	Vector3i
}

// NewMutableVec3i returns a new [MutableVector3i] with the given components.
func NewMutableVec3i(x, y, z int32) *MutableVector3i {
	return &MutableVector3i{Vec3i(x, y, z)}
}

// AsSlice returns a slice backed by the vector's storage.
func (v *MutableVector3i) AsSlice() []int32 {
	return v.e[:]
}

// ToImmutable returns a copy of the current value.
func (v *MutableVector3i) ToImmutable() Vector3i {
	return v.Vector3i
}

// Set sets the X, Y, Z components.
func (v *MutableVector3i) Set(x, y, z int32) *MutableVector3i {
	v.e[0] = x
	v.e[1] = y
	v.e[2] = z
	return v
}

// SetX sets the X component.
func (v *MutableVector3i) SetX(x int32) *MutableVector3i {
	v.e[0] = x
	return v
}

// SetY sets the Y component.
func (v *MutableVector3i) SetY(y int32) *MutableVector3i {
	v.e[1] = y
	return v
}

// SetZ sets the Z component.
func (v *MutableVector3i) SetZ(z int32) *MutableVector3i {
	v.e[2] = z
	return v
}

// SetDim sets this vector component value by dimension index.
func (v *MutableVector3i) SetDim(dim Dims, value int32) *MutableVector3i {
	checkIndex(int(dim), 3)
	v.e[dim] = value
	return v
}

// SetScalar sets all components to the same scalar value.
func (v *MutableVector3i) SetScalar(s int32) *MutableVector3i {
	v.e[0] = s
	v.e[1] = s
	v.e[2] = s
	return v
}

// SetZero sets all components to zero.
func (v *MutableVector3i) SetZero() *MutableVector3i {
	v.Vector3i = Vector3i{}
	return v
}

// FromSlice sets the components from s starting at offset.
func (v *MutableVector3i) FromSlice(s []int32, offset int) *MutableVector3i {
	copy(v.e[:], s[offset:offset+3])
	return v
}

// SetAdd sets this to += other vector.
func (v *MutableVector3i) SetAdd(other Vector3i) *MutableVector3i {
	v.e[0] += other.e[0]
	v.e[1] += other.e[1]
	v.e[2] += other.e[2]
	return v
}

// SetAddScalar sets this to += s.
func (v *MutableVector3i) SetAddScalar(s int32) *MutableVector3i {
	v.e[0] += s
	v.e[1] += s
	v.e[2] += s
	return v
}

// SetSub sets this to -= other vector.
func (v *MutableVector3i) SetSub(other Vector3i) *MutableVector3i {
	v.e[0] -= other.e[0]
	v.e[1] -= other.e[1]
	v.e[2] -= other.e[2]
	return v
}

// SetSubScalar sets this to -= s.
func (v *MutableVector3i) SetSubScalar(s int32) *MutableVector3i {
	v.e[0] -= s
	v.e[1] -= s
	v.e[2] -= s
	return v
}

// SetMul sets this to *= other vector.
func (v *MutableVector3i) SetMul(other Vector3i) *MutableVector3i {
	v.e[0] *= other.e[0]
	v.e[1] *= other.e[1]
	v.e[2] *= other.e[2]
	return v
}

// SetMulScalar sets this to *= s.
func (v *MutableVector3i) SetMulScalar(s int32) *MutableVector3i {
	v.e[0] *= s
	v.e[1] *= s
	v.e[2] *= s
	return v
}

// SetDiv sets this to /= other vector.
func (v *MutableVector3i) SetDiv(other Vector3i) *MutableVector3i {
	v.e[0] /= other.e[0]
	v.e[1] /= other.e[1]
	v.e[2] /= other.e[2]
	return v
}

// SetDivScalar sets this to /= s.
func (v *MutableVector3i) SetDivScalar(s int32) *MutableVector3i {
	v.e[0] /= s
	v.e[1] /= s
	v.e[2] /= s
	return v
}

// SetMod sets this to %= other vector.
func (v *MutableVector3i) SetMod(other Vector3i) *MutableVector3i {
	v.e[0] %= other.e[0]
	v.e[1] %= other.e[1]
	v.e[2] %= other.e[2]
	return v
}

// SetModScalar sets this to %= s.
func (v *MutableVector3i) SetModScalar(s int32) *MutableVector3i {
	v.e[0] %= s
	v.e[1] %= s
	v.e[2] %= s
	return v
}

// SetNegate negates each component.
func (v *MutableVector3i) SetNegate() *MutableVector3i {
	v.Vector3i = v.Negate()
	return v
}

// SetAbs sets each component to its absolute value.
func (v *MutableVector3i) SetAbs() *MutableVector3i {
	v.Vector3i = v.Abs()
	return v
}

// SetMin sets this vector to [Vector3i.Min].
func (v *MutableVector3i) SetMin(other Vector3i) *MutableVector3i {
	v.Vector3i = v.Min(other)
	return v
}

// SetMinScalar sets this vector to [Vector3i.MinScalar].
func (v *MutableVector3i) SetMinScalar(s int32) *MutableVector3i {
	v.Vector3i = v.MinScalar(s)
	return v
}

// SetMax sets this vector to [Vector3i.Max].
func (v *MutableVector3i) SetMax(other Vector3i) *MutableVector3i {
	v.Vector3i = v.Max(other)
	return v
}

// SetMaxScalar sets this vector to [Vector3i.MaxScalar].
func (v *MutableVector3i) SetMaxScalar(s int32) *MutableVector3i {
	v.Vector3i = v.MaxScalar(s)
	return v
}

// SetClamp sets this vector to [Vector3i.Clamp].
func (v *MutableVector3i) SetClamp(min, max Vector3i) *MutableVector3i {
	v.Vector3i = v.Clamp(min, max)
	return v
}

// SetClampScalar sets this vector to [Vector3i.ClampScalar].
func (v *MutableVector3i) SetClampScalar(min, max int32) *MutableVector3i {
	v.Vector3i = v.ClampScalar(min, max)
	return v
}

// SetClampRange sets this vector to [Vector3i.ClampRange].
func (v *MutableVector3i) SetClampRange(r minmax.I32) *MutableVector3i {
	v.Vector3i = v.ClampRange(r)
	return v
}

// SetCross sets this vector to the cross product of itself and other.
func (v *MutableVector3i) SetCross(other Vector3i) *MutableVector3i {
	v.Vector3i = v.Cross(other)
	return v
}

// SetAnd sets this to &= other vector.
func (v *MutableVector3i) SetAnd(other Vector3i) *MutableVector3i {
	v.e[0] &= other.e[0]
	v.e[1] &= other.e[1]
	v.e[2] &= other.e[2]
	return v
}

// SetOr sets this to |= other vector.
func (v *MutableVector3i) SetOr(other Vector3i) *MutableVector3i {
	v.e[0] |= other.e[0]
	v.e[1] |= other.e[1]
	v.e[2] |= other.e[2]
	return v
}

// SetXor sets this to ^= other vector.
func (v *MutableVector3i) SetXor(other Vector3i) *MutableVector3i {
	v.e[0] ^= other.e[0]
	v.e[1] ^= other.e[1]
	v.e[2] ^= other.e[2]
	return v
}

// SetNot complements each component.
func (v *MutableVector3i) SetNot() *MutableVector3i {
	v.Vector3i = v.Not()
	return v
}

// SetShl shifts each component left by s bits.
func (v *MutableVector3i) SetShl(s uint) *MutableVector3i {
	v.e[0] <<= s
	v.e[1] <<= s
	v.e[2] <<= s
	return v
}

// SetShr shifts each component right by s bits.
func (v *MutableVector3i) SetShr(s uint) *MutableVector3i {
	v.e[0] >>= s
	v.e[1] >>= s
	v.e[2] >>= s
	return v
}

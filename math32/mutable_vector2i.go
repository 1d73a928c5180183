// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "cogentcore.org/vkmath/math32/minmax"

// MutableVector2i is a [Vector2i] that can be updated in place.
// It is not safe for concurrent modification.
type MutableVector2i struct {
	Vector2i
}

// NewMutableVec2i returns a new [MutableVector2i] with the given components.
func NewMutableVec2i(x, y int32) *MutableVector2i {
	return &MutableVector2i{Vec2i(x, y)}
}

// AsSlice returns a slice backed by the vector's storage.
func (v *MutableVector2i) AsSlice() []int32 {
	return v.e[:]
}

// ToImmutable returns a copy of the current value.
func (v *MutableVector2i) ToImmutable() Vector2i {
	return v.Vector2i
}

// Set sets the X, Y components.
func (v *MutableVector2i) Set(x, y int32) *MutableVector2i {
	v.e[0] = x
	v.e[1] = y
	return v
}

// SetX sets the X component.
func (v *MutableVector2i) SetX(x int32) *MutableVector2i {
	v.e[0] = x
	return v
}

// SetY sets the Y component.
func (v *MutableVector2i) SetY(y int32) *MutableVector2i {
	v.e[1] = y
	return v
}

// SetDim sets this vector component value by dimension index.
func (v *MutableVector2i) SetDim(dim Dims, value int32) *MutableVector2i {
	checkIndex(int(dim), 2)
	v.e[dim] = value
	return v
}

// SetScalar sets all components to the same scalar value.
func (v *MutableVector2i) SetScalar(s int32) *MutableVector2i {
	v.e[0] = s
	v.e[1] = s
	return v
}

// SetZero sets all components to zero.
func (v *MutableVector2i) SetZero() *MutableVector2i {
	v.Vector2i = Vector2i{}
	return v
}

// FromSlice sets the components from s starting at offset.
func (v *MutableVector2i) FromSlice(s []int32, offset int) *MutableVector2i {
	copy(v.e[:], s[offset:offset+2])
	return v
}

// SetAdd sets this to += other vector.
func (v *MutableVector2i) SetAdd(other Vector2i) *MutableVector2i {
	v.e[0] += other.e[0]
	v.e[1] += other.e[1]
	return v
}

// SetAddScalar sets this to += s.
func (v *MutableVector2i) SetAddScalar(s int32) *MutableVector2i {
	v.e[0] += s
	v.e[1] += s
	return v
}

// SetSub sets this to -= other vector.
func (v *MutableVector2i) SetSub(other Vector2i) *MutableVector2i {
	v.e[0] -= other.e[0]
	v.e[1] -= other.e[1]
	return v
}

// SetSubScalar sets this to -= s.
func (v *MutableVector2i) SetSubScalar(s int32) *MutableVector2i {
	v.e[0] -= s
	v.e[1] -= s
	return v
}

// SetMul sets this to *= other vector.
func (v *MutableVector2i) SetMul(other Vector2i) *MutableVector2i {
	v.e[0] *= other.e[0]
	v.e[1] *= other.e[1]
	return v
}

// SetMulScalar sets this to *= s.
func (v *MutableVector2i) SetMulScalar(s int32) *MutableVector2i {
	v.e[0] *= s
	v.e[1] *= s
	return v
}

// SetDiv sets this to /= other vector.
func (v *MutableVector2i) SetDiv(other Vector2i) *MutableVector2i {
	v.e[0] /= other.e[0]
	v.e[1] /= other.e[1]
	return v
}

// SetDivScalar sets this to /= s.
func (v *MutableVector2i) SetDivScalar(s int32) *MutableVector2i {
	v.e[0] /= s
	v.e[1] /= s
	return v
}

// SetMod sets this to %= other vector.
func (v *MutableVector2i) SetMod(other Vector2i) *MutableVector2i {
	v.e[0] %= other.e[0]
	v.e[1] %= other.e[1]
	return v
}

// SetModScalar sets this to %= s.
func (v *MutableVector2i) SetModScalar(s int32) *MutableVector2i {
	v.e[0] %= s
	v.e[1] %= s
	return v
}

// SetNegate negates each component.
func (v *MutableVector2i) SetNegate() *MutableVector2i {
	v.Vector2i = v.Negate()
	return v
}

// SetAbs sets each component to its absolute value.
func (v *MutableVector2i) SetAbs() *MutableVector2i {
	v.Vector2i = v.Abs()
	return v
}

// SetMin sets this vector to [Vector2i.Min].
func (v *MutableVector2i) SetMin(other Vector2i) *MutableVector2i {
	v.Vector2i = v.Min(other)
	return v
}

// SetMinScalar sets this vector to [Vector2i.MinScalar].
func (v *MutableVector2i) SetMinScalar(s int32) *MutableVector2i {
	v.Vector2i = v.MinScalar(s)
	return v
}

// SetMax sets this vector to [Vector2i.Max].
func (v *MutableVector2i) SetMax(other Vector2i) *MutableVector2i {
	v.Vector2i = v.Max(other)
	return v
}

// SetMaxScalar sets this vector to [Vector2i.MaxScalar].
func (v *MutableVector2i) SetMaxScalar(s int32) *MutableVector2i {
	v.Vector2i = v.MaxScalar(s)
	return v
}

// SetClamp sets this vector to [Vector2i.Clamp].
func (v *MutableVector2i) SetClamp(min, max Vector2i) *MutableVector2i {
	v.Vector2i = v.Clamp(min, max)
	return v
}

// SetClampScalar sets this vector to [Vector2i.ClampScalar].
func (v *MutableVector2i) SetClampScalar(min, max int32) *MutableVector2i {
	v.Vector2i = v.ClampScalar(min, max)
	return v
}

// SetClampRange sets this vector to [Vector2i.ClampRange].
func (v *MutableVector2i) SetClampRange(r minmax.I32) *MutableVector2i {
	v.Vector2i = v.ClampRange(r)
	return v
}

// SetAnd sets this to &= other vector.
func (v *MutableVector2i) SetAnd(other Vector2i) *MutableVector2i {
	v.e[0] &= other.e[0]
	v.e[1] &= other.e[1]
	return v
}

// SetOr sets this to |= other vector.
func (v *MutableVector2i) SetOr(other Vector2i) *MutableVector2i {
	v.e[0] |= other.e[0]
	v.e[1] |= other.e[1]
	return v
}

// SetXor sets this to ^= other vector.
func (v *MutableVector2i) SetXor(other Vector2i) *MutableVector2i {
	v.e[0] ^= other.e[0]
	v.e[1] ^= other.e[1]
	return v
}

// SetNot complements each component.
func (v *MutableVector2i) SetNot() *MutableVector2i {
	v.Vector2i = v.Not()
	return v
}

// SetShl shifts each component left by s bits.
func (v *MutableVector2i) SetShl(s uint) *MutableVector2i {
	v.e[0] <<= s
	v.e[1] <<= s
	return v
}

// SetShr shifts each component right by s bits.
func (v *MutableVector2i) SetShr(s uint) *MutableVector2i {
	v.e[0] >>= s
	v.e[1] >>= s
	return v
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "cogentcore.org/vkmath/math32/minmax"

// MutableVector2u is a [Vector2u] that can be updated in place.
// It is not safe for concurrent modification.
type MutableVector2u struct {
	Vector2u
}

// NewMutableVec2u returns a new [MutableVector2u] with the given components.
func NewMutableVec2u(x, y uint32) *MutableVector2u {
	return &MutableVector2u{Vec2u(x, y)}
}

// AsSlice returns a slice backed by the vector's storage.
func (v *MutableVector2u) AsSlice() []uint32 {
	return v.e[:]
}

// ToImmutable returns a copy of the current value.
func (v *MutableVector2u) ToImmutable() Vector2u {
	return v.Vector2u
}

// Set sets the X, Y components.
func (v *MutableVector2u) Set(x, y uint32) *MutableVector2u {
	v.e[0] = x
	v.e[1] = y
	return v
}

// SetX sets the X component.
func (v *MutableVector2u) SetX(x uint32) *MutableVector2u {
	v.e[0] = x
	return v
}

// SetY sets the Y component.
func (v *MutableVector2u) SetY(y uint32) *MutableVector2u {
	v.e[1] = y
	return v
}

// SetDim sets this vector component value by dimension index.
func (v *MutableVector2u) SetDim(dim Dims, value uint32) *MutableVector2u {
	checkIndex(int(dim), 2)
	v.e[dim] = value
	return v
}

// SetScalar sets all components to the same scalar value.
func (v *MutableVector2u) SetScalar(s uint32) *MutableVector2u {
	v.e[0] = s
	v.e[1] = s
	return v
}

// SetZero sets all components to zero.
func (v *MutableVector2u) SetZero() *MutableVector2u {
	v.Vector2u = Vector2u{}
	return v
}

// FromSlice sets the components from s starting at offset.
func (v *MutableVector2u) FromSlice(s []uint32, offset int) *MutableVector2u {
	copy(v.e[:], s[offset:offset+2])
	return v
}

// SetAdd sets this to += other vector.
func (v *MutableVector2u) SetAdd(other Vector2u) *MutableVector2u {
	v.e[0] += other.e[0]
	v.e[1] += other.e[1]
	return v
}

// SetAddScalar sets this to += s.
func (v *MutableVector2u) SetAddScalar(s uint32) *MutableVector2u {
	v.e[0] += s
	v.e[1] += s
	return v
}

// SetSub sets this to -= other vector.
func (v *MutableVector2u) SetSub(other Vector2u) *MutableVector2u {
	v.e[0] -= other.e[0]
	v.e[1] -= other.e[1]
	return v
}

// SetSubScalar sets this to -= s.
func (v *MutableVector2u) SetSubScalar(s uint32) *MutableVector2u {
	v.e[0] -= s
	v.e[1] -= s
	return v
}

// SetMul sets this to *= other vector.
func (v *MutableVector2u) SetMul(other Vector2u) *MutableVector2u {
	v.e[0] *= other.e[0]
	v.e[1] *= other.e[1]
	return v
}

// SetMulScalar sets this to *= s.
func (v *MutableVector2u) SetMulScalar(s uint32) *MutableVector2u {
	v.e[0] *= s
	v.e[1] *= s
	return v
}

// SetDiv sets this to /= other vector.
func (v *MutableVector2u) SetDiv(other Vector2u) *MutableVector2u {
	v.e[0] /= other.e[0]
	v.e[1] /= other.e[1]
	return v
}

// SetDivScalar sets this to /= s.
func (v *MutableVector2u) SetDivScalar(s uint32) *MutableVector2u {
	v.e[0] /= s
	v.e[1] /= s
	return v
}

// SetMod sets this to %= other vector.
func (v *MutableVector2u) SetMod(other Vector2u) *MutableVector2u {
	v.e[0] %= other.e[0]
	v.e[1] %= other.e[1]
	return v
}

// SetModScalar sets this to %= s.
func (v *MutableVector2u) SetModScalar(s uint32) *MutableVector2u {
	v.e[0] %= s
	v.e[1] %= s
	return v
}

// SetMin sets this vector to [Vector2u.Min].
func (v *MutableVector2u) SetMin(other Vector2u) *MutableVector2u {
	v.Vector2u = v.Min(other)
	return v
}

// SetMinScalar sets this vector to [Vector2u.MinScalar].
func (v *MutableVector2u) SetMinScalar(s uint32) *MutableVector2u {
	v.Vector2u = v.MinScalar(s)
	return v
}

// SetMax sets this vector to [Vector2u.Max].
func (v *MutableVector2u) SetMax(other Vector2u) *MutableVector2u {
	v.Vector2u = v.Max(other)
	return v
}

// SetMaxScalar sets this vector to [Vector2u.MaxScalar].
func (v *MutableVector2u) SetMaxScalar(s uint32) *MutableVector2u {
	v.Vector2u = v.MaxScalar(s)
	return v
}

// SetClamp sets this vector to [Vector2u.Clamp].
func (v *MutableVector2u) SetClamp(min, max Vector2u) *MutableVector2u {
	v.Vector2u = v.Clamp(min, max)
	return v
}

// SetClampScalar sets this vector to [Vector2u.ClampScalar].
func (v *MutableVector2u) SetClampScalar(min, max uint32) *MutableVector2u {
	v.Vector2u = v.ClampScalar(min, max)
	return v
}

// SetClampRange sets this vector to [Vector2u.ClampRange].
func (v *MutableVector2u) SetClampRange(r minmax.U32) *MutableVector2u {
	v.Vector2u = v.ClampRange(r)
	return v
}

// SetAnd sets this to &= other vector.
func (v *MutableVector2u) SetAnd(other Vector2u) *MutableVector2u {
	v.e[0] &= other.e[0]
	v.e[1] &= other.e[1]
	return v
}

// SetOr sets this to |= other vector.
func (v *MutableVector2u) SetOr(other Vector2u) *MutableVector2u {
	v.e[0] |= other.e[0]
	v.e[1] |= other.e[1]
	return v
}

// SetXor sets this to ^= other vector.
func (v *MutableVector2u) SetXor(other Vector2u) *MutableVector2u {
	v.e[0] ^= other.e[0]
	v.e[1] ^= other.e[1]
	return v
}

// SetNot complements each component.
func (v *MutableVector2u) SetNot() *MutableVector2u {
	v.Vector2u = v.Not()
	return v
}

// SetShl shifts each component left by s bits.
func (v *MutableVector2u) SetShl(s uint) *MutableVector2u {
	v.e[0] <<= s
	v.e[1] <<= s
	return v
}

// SetShr shifts each component right by s bits.
func (v *MutableVector2u) SetShr(s uint) *MutableVector2u {
	v.e[0] >>= s
	v.e[1] >>= s
	return v
}

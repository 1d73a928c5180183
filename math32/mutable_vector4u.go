// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "cogentcore.org/vkmath/math32/minmax"

// MutableVector4u is a [Vector4u] that can be updated in place.
// It is not safe for concurrent modification.
type MutableVector4u struct {
	Vector4u
}

// NewMutableVec4u returns a new [MutableVector4u] with the given components.
func NewMutableVec4u(x, y, z, w uint32) *MutableVector4u {
	return &MutableVector4u{Vec4u(x, y, z, w)}
}

// AsSlice returns a slice backed by the vector's storage.
func (v *MutableVector4u) AsSlice() []uint32 {
	return v.e[:]
}

// ToImmutable returns a copy of the current value.
func (v *MutableVector4u) ToImmutable() Vector4u {
	return v.Vector4u
}

// Set sets the X, Y, Z, W components.
func (v *MutableVector4u) Set(x, y, z, w uint32) *MutableVector4u {
	v.e[0] = x
	v.e[1] = y
	v.e[2] = z
	v.e[3] = w
	return v
}

// SetX sets the X component.
func (v *MutableVector4u) SetX(x uint32) *MutableVector4u {
	v.e[0] = x
	return v
}

// SetY sets the Y component.
func (v *MutableVector4u) SetY(y uint32) *MutableVector4u {
	v.e[1] = y
	return v
}

// SetZ sets the Z component.
func (v *MutableVector4u) SetZ(z uint32) *MutableVector4u {
	v.e[2] = z
	return v
}

// SetW sets the W component.
func (v *MutableVector4u) SetW(w uint32) *MutableVector4u {
	v.e[3] = w
	return v
}

// SetDim sets this vector component value by dimension index.
func (v *MutableVector4u) SetDim(dim Dims, value uint32) *MutableVector4u {
	checkIndex(int(dim), 4)
	v.e[dim] = value
	return v
}

// SetScalar sets all components to the same scalar value.
func (v *MutableVector4u) SetScalar(s uint32) *MutableVector4u {
	v.e[0] = s
	v.e[1] = s
	v.e[2] = s
	v.e[3] = s
	return v
}

// SetZero sets all components to zero.
func (v *MutableVector4u) SetZero() *MutableVector4u {
	v.Vector4u = Vector4u{}
	return v
}

// FromSlice sets the components from s starting at offset.
func (v *MutableVector4u) FromSlice(s []uint32, offset int) *MutableVector4u {
	copy(v.e[:], s[offset:offset+4])
	return v
}

// SetAdd sets this to += other vector.
func (v *MutableVector4u) SetAdd(other Vector4u) *MutableVector4u {
	v.e[0] += other.e[0]
	v.e[1] += other.e[1]
	v.e[2] += other.e[2]
	v.e[3] += other.e[3]
	return v
}

// SetAddScalar sets this to += s.
func (v *MutableVector4u) SetAddScalar(s uint32) *MutableVector4u {
	v.e[0] += s
	v.e[1] += s
	v.e[2] += s
	v.e[3] += s
	return v
}

// SetSub sets this to -= other vector.
func (v *MutableVector4u) SetSub(other Vector4u) *MutableVector4u {
	v.e[0] -= other.e[0]
	v.e[1] -= other.e[1]
	v.e[2] -= other.e[2]
	v.e[3] -= other.e[3]
	return v
}

// SetSubScalar sets this to -= s.
func (v *MutableVector4u) SetSubScalar(s uint32) *MutableVector4u {
	v.e[0] -= s
	v.e[1] -= s
	v.e[2] -= s
	v.e[3] -= s
	return v
}

// SetMul sets this to *= other vector.
func (v *MutableVector4u) SetMul(other Vector4u) *MutableVector4u {
	v.e[0] *= other.e[0]
	v.e[1] *= other.e[1]
	v.e[2] *= other.e[2]
	v.e[3] *= other.e[3]
	return v
}

// SetMulScalar sets this to *= s.
func (v *MutableVector4u) SetMulScalar(s uint32) *MutableVector4u {
	v.e[0] *= s
	v.e[1] *= s
	v.e[2] *= s
	v.e[3] *= s
	return v
}

// SetDiv sets this to /= other vector.
func (v *MutableVector4u) SetDiv(other Vector4u) *MutableVector4u {
	v.e[0] /= other.e[0]
	v.e[1] /= other.e[1]
	v.e[2] /= other.e[2]
	v.e[3] /= other.e[3]
	return v
}

// SetDivScalar sets this to /= s.
func (v *MutableVector4u) SetDivScalar(s uint32) *MutableVector4u {
	v.e[0] /= s
	v.e[1] /= s
	v.e[2] /= s
	v.e[3] /= s
	return v
}

// SetMod sets this to %= other vector.
func (v *MutableVector4u) SetMod(other Vector4u) *MutableVector4u {
	v.e[0] %= other.e[0]
	v.e[1] %= other.e[1]
	v.e[2] %= other.e[2]
	v.e[3] %= other.e[3]
	return v
}

// SetModScalar sets this to %= s.
func (v *MutableVector4u) SetModScalar(s uint32) *MutableVector4u {
	v.e[0] %= s
	v.e[1] %= s
	v.e[2] %= s
	v.e[3] %= s
	return v
}

// SetMin sets this vector to [Vector4u.Min].
func (v *MutableVector4u) SetMin(other Vector4u) *MutableVector4u {
	v.Vector4u = v.Min(other)
	return v
}

// SetMinScalar sets this vector to [Vector4u.MinScalar].
func (v *MutableVector4u) SetMinScalar(s uint32) *MutableVector4u {
	v.Vector4u = v.MinScalar(s)
	return v
}

// SetMax sets this vector to [Vector4u.Max].
func (v *MutableVector4u) SetMax(other Vector4u) *MutableVector4u {
	v.Vector4u = v.Max(other)
	return v
}

// SetMaxScalar sets this vector to [Vector4u.MaxScalar].
func (v *MutableVector4u) SetMaxScalar(s uint32) *MutableVector4u {
	v.Vector4u = v.MaxScalar(s)
	return v
}

// SetClamp sets this vector to [Vector4u.Clamp].
func (v *MutableVector4u) SetClamp(min, max Vector4u) *MutableVector4u {
	v.Vector4u = v.Clamp(min, max)
	return v
}

// SetClampScalar sets this vector to [Vector4u.ClampScalar].
func (v *MutableVector4u) SetClampScalar(min, max uint32) *MutableVector4u {
	v.Vector4u = v.ClampScalar(min, max)
	return v
}

// SetClampRange sets this vector to [Vector4u.ClampRange].
func (v *MutableVector4u) SetClampRange(r minmax.U32) *MutableVector4u {
	v.Vector4u = v.ClampRange(r)
	return v
}

// SetAnd sets this to &= other vector.
func (v *MutableVector4u) SetAnd(other Vector4u) *MutableVector4u {
	v.e[0] &= other.e[0]
	v.e[1] &= other.e[1]
	v.e[2] &= other.e[2]
	v.e[3] &= other.e[3]
	return v
}

// SetOr sets this to |= other vector.
func (v *MutableVector4u) SetOr(other Vector4u) *MutableVector4u {
	v.e[0] |= other.e[0]
	v.e[1] |= other.e[1]
	v.e[2] |= other.e[2]
	v.e[3] |= other.e[3]
	return v
}

// SetXor sets this to ^= other vector.
func (v *MutableVector4u) SetXor(other Vector4u) *MutableVector4u {
	v.e[0] ^= other.e[0]
	v.e[1] ^= other.e[1]
	v.e[2] ^= other.e[2]
	v.e[3] ^= other.e[3]
	return v
}

// SetNot complements each component.
func (v *MutableVector4u) SetNot() *MutableVector4u {
	v.Vector4u = v.Not()
	return v
}

// SetShl shifts each component left by s bits.
func (v *MutableVector4u) SetShl(s uint) *MutableVector4u {
	v.e[0] <<= s
	v.e[1] <<= s
	v.e[2] <<= s
	v.e[3] <<= s
	return v
}

// SetShr shifts each component right by s bits.
func (v *MutableVector4u) SetShr(s uint) *MutableVector4u {
	v.e[0] >>= s
	v.e[1] >>= s
	v.e[2] >>= s
	v.e[3] >>= s
	return v
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "cogentcore.org/vkmath/math32/minmax"

// MutableVector3u is a [Vector3u] that can be updated in place.
// It is not safe for concurrent modification.
type MutableVector3u struct {
	Vector3u
}

// NewMutableVec3u returns a new [MutableVector3u] with the given components.
func NewMutableVec3u(x, y, z uint32) *MutableVector3u {
	return &MutableVector3u{Vec3u(x, y, z)}
}

// AsSlice returns a slice backed by the vector's storage.
func (v *MutableVector3u) AsSlice() []uint32 {
	return v.e[:]
}

// ToImmutable returns a copy of the current value.
func (v *MutableVector3u) ToImmutable() Vector3u {
	return v.Vector3u
}

// Set sets the X, Y, Z components.
func (v *MutableVector3u) Set(x, y, z uint32) *MutableVector3u {
	v.e[0] = x
	v.e[1] = y
	v.e[2] = z
	return v
}

// SetX sets the X component.
func (v *MutableVector3u) SetX(x uint32) *MutableVector3u {
	v.e[0] = x
	return v
}

// SetY sets the Y component.
func (v *MutableVector3u) SetY(y uint32) *MutableVector3u {
	v.e[1] = y
	return v
}

// SetZ sets the Z component.
func (v *MutableVector3u) SetZ(z uint32) *MutableVector3u {
	v.e[2] = z
	return v
}

// SetDim sets this vector component value by dimension index.
func (v *MutableVector3u) SetDim(dim Dims, value uint32) *MutableVector3u {
	checkIndex(int(dim), 3)
	v.e[dim] = value
	return v
}

// SetScalar sets all components to the same scalar value.
func (v *MutableVector3u) SetScalar(s uint32) *MutableVector3u {
	v.e[0] = s
	v.e[1] = s
	v.e[2] = s
	return v
}

// SetZero sets all components to zero.
func (v *MutableVector3u) SetZero() *MutableVector3u {
	v.Vector3u = Vector3u{}
	return v
}

// FromSlice sets the components from s starting at offset.
func (v *MutableVector3u) FromSlice(s []uint32, offset int) *MutableVector3u {
	copy(v.e[:], s[offset:offset+3])
	return v
}

// SetAdd sets this to += other vector.
func (v *MutableVector3u) SetAdd(other Vector3u) *MutableVector3u {
	v.e[0] += other.e[0]
	v.e[1] += other.e[1]
	v.e[2] += other.e[2]
	return v
}

// SetAddScalar sets this to += s.
func (v *MutableVector3u) SetAddScalar(s uint32) *MutableVector3u {
	v.e[0] += s
	v.e[1] += s
	v.e[2] += s
	return v
}

// SetSub sets this to -= other vector.
func (v *MutableVector3u) SetSub(other Vector3u) *MutableVector3u {
	v.e[0] -= other.e[0]
	v.e[1] -= other.e[1]
	v.e[2] -= other.e[2]
	return v
}

// SetSubScalar sets this to -= s.
func (v *MutableVector3u) SetSubScalar(s uint32) *MutableVector3u {
	v.e[0] -= s
	v.e[1] -= s
	v.e[2] -= s
	return v
}

// SetMul sets this to *= other vector.
func (v *MutableVector3u) SetMul(other Vector3u) *MutableVector3u {
	v.e[0] *= other.e[0]
	v.e[1] *= other.e[1]
	v.e[2] *= other.e[2]
	return v
}

// SetMulScalar sets this to *= s.
func (v *MutableVector3u) SetMulScalar(s uint32) *MutableVector3u {
	v.e[0] *= s
	v.e[1] *= s
	v.e[2] *= s
	return v
}

// SetDiv sets this to /= other vector.
func (v *MutableVector3u) SetDiv(other Vector3u) *MutableVector3u {
	v.e[0] /= other.e[0]
	v.e[1] /= other.e[1]
	v.e[2] /= other.e[2]
	return v
}

// SetDivScalar sets this to /= s.
func (v *MutableVector3u) SetDivScalar(s uint32) *MutableVector3u {
	v.e[0] /= s
	v.e[1] /= s
	v.e[2] /= s
	return v
}

// SetMod sets this to %= other vector.
func (v *MutableVector3u) SetMod(other Vector3u) *MutableVector3u {
	v.e[0] %= other.e[0]
	v.e[1] %= other.e[1]
	v.e[2] %= other.e[2]
	return v
}

// SetModScalar sets this to %= s.
func (v *MutableVector3u) SetModScalar(s uint32) *MutableVector3u {
	v.e[0] %= s
	v.e[1] %= s
	v.e[2] %= s
	return v
}

// SetMin sets this vector to [Vector3u.Min].
func (v *MutableVector3u) SetMin(other Vector3u) *MutableVector3u {
	v.Vector3u = v.Min(other)
	return v
}

// SetMinScalar sets this vector to [Vector3u.MinScalar].
func (v *MutableVector3u) SetMinScalar(s uint32) *MutableVector3u {
	v.Vector3u = v.MinScalar(s)
	return v
}

// SetMax sets this vector to [Vector3u.Max].
func (v *MutableVector3u) SetMax(other Vector3u) *MutableVector3u {
	v.Vector3u = v.Max(other)
	return v
}

// SetMaxScalar sets this vector to [Vector3u.MaxScalar].
func (v *MutableVector3u) SetMaxScalar(s uint32) *MutableVector3u {
	v.Vector3u = v.MaxScalar(s)
	return v
}

// SetClamp sets this vector to [Vector3u.Clamp].
func (v *MutableVector3u) SetClamp(min, max Vector3u) *MutableVector3u {
	v.Vector3u = v.Clamp(min, max)
	return v
}

// SetClampScalar sets this vector to [Vector3u.ClampScalar].
func (v *MutableVector3u) SetClampScalar(min, max uint32) *MutableVector3u {
	v.Vector3u = v.ClampScalar(min, max)
	return v
}

// SetClampRange sets this vector to [Vector3u.ClampRange].
func (v *MutableVector3u) SetClampRange(r minmax.U32) *MutableVector3u {
	v.Vector3u = v.ClampRange(r)
	return v
}

// SetAnd sets this to &= other vector.
func (v *MutableVector3u) SetAnd(other Vector3u) *MutableVector3u {
	v.e[0] &= other.e[0]
	v.e[1] &= other.e[1]
	v.e[2] &= other.e[2]
	return v
}

// SetOr sets this to |= other vector.
func (v *MutableVector3u) SetOr(other Vector3u) *MutableVector3u {
	v.e[0] |= other.e[0]
	v.e[1] |= other.e[1]
	v.e[2] |= other.e[2]
	return v
}

// SetXor sets this to ^= other vector.
func (v *MutableVector3u) SetXor(other Vector3u) *MutableVector3u {
	v.e[0] ^= other.e[0]
	v.e[1] ^= other.e[1]
	v.e[2] ^= other.e[2]
	return v
}

// SetNot complements each component.
func (v *MutableVector3u) SetNot() *MutableVector3u {
	v.Vector3u = v.Not()
	return v
}

// SetShl shifts each component left by s bits.
func (v *MutableVector3u) SetShl(s uint) *MutableVector3u {
	v.e[0] <<= s
	v.e[1] <<= s
	v.e[2] <<= s
	return v
}

// SetShr shifts each component right by s bits.
func (v *MutableVector3u) SetShr(s uint) *MutableVector3u {
	v.e[0] >>= s
	v.e[1] >>= s
	v.e[2] >>= s
	return v
}

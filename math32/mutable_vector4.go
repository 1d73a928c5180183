// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "cogentcore.org/vkmath/math32/minmax"

// MutableVector4 is a [Vector4] that can be updated in place. All [Vector4] operations
// are available on it and return new immutable vectors; the Set methods
// modify the receiver and return it for chaining.
//
// A MutableVector4 is exclusively owned scratch storage and is not safe for
// concurrent modification.
type MutableVector4 struct {
	Vector4
}

// NewMutableVec4 returns a new [MutableVector4] with the given x, y, z, w components.
func NewMutableVec4(x, y, z, w float32) *MutableVector4 {
	return &MutableVector4{Vec4(x, y, z, w)}
}

// AsSlice returns a slice backed by the vector's storage: writes through it
// change the vector.
func (v *MutableVector4) AsSlice() []float32 {
	return v.e[:]
}

// ToImmutable returns a copy of the current value.
func (v *MutableVector4) ToImmutable() Vector4 {
	return v.Vector4
}

// Set sets the X, Y, Z, W components.
func (v *MutableVector4) Set(x, y, z, w float32) *MutableVector4 {
	v.e[0] = x
	v.e[1] = y
	v.e[2] = z
	v.e[3] = w
	return v
}

// SetX sets the X component.
func (v *MutableVector4) SetX(x float32) *MutableVector4 {
	v.e[0] = x
	return v
}

// SetY sets the Y component.
func (v *MutableVector4) SetY(y float32) *MutableVector4 {
	v.e[1] = y
	return v
}

// SetZ sets the Z component.
func (v *MutableVector4) SetZ(z float32) *MutableVector4 {
	v.e[2] = z
	return v
}

// SetW sets the W component.
func (v *MutableVector4) SetW(w float32) *MutableVector4 {
	v.e[3] = w
	return v
}

// SetDim sets the component at the given dimension index.
// It panics with an [*IndexError] if dim is not in [0, 4).
func (v *MutableVector4) SetDim(dim Dims, value float32) *MutableVector4 {
	checkIndex(int(dim), 4)
	v.e[dim] = value
	return v
}

// SetScalar sets all components to the same scalar value.
func (v *MutableVector4) SetScalar(s float32) *MutableVector4 {
	v.e[0] = s
	v.e[1] = s
	v.e[2] = s
	v.e[3] = s
	return v
}

// SetZero sets all components to zero.
func (v *MutableVector4) SetZero() *MutableVector4 {
	v.Vector4 = Vector4{}
	return v
}

// FromSlice sets the components from s starting at offset.
func (v *MutableVector4) FromSlice(s []float32, offset int) *MutableVector4 {
	copy(v.e[:], s[offset:offset+4])
	return v
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *MutableVector4) SetAdd(other Vector4) *MutableVector4 {
	v.e[0] += other.e[0]
	v.e[1] += other.e[1]
	v.e[2] += other.e[2]
	v.e[3] += other.e[3]
	return v
}

// SetAddScalar sets this to addition with scalar.
func (v *MutableVector4) SetAddScalar(s float32) *MutableVector4 {
	v.e[0] += s
	v.e[1] += s
	v.e[2] += s
	v.e[3] += s
	return v
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *MutableVector4) SetSub(other Vector4) *MutableVector4 {
	v.e[0] -= other.e[0]
	v.e[1] -= other.e[1]
	v.e[2] -= other.e[2]
	v.e[3] -= other.e[3]
	return v
}

// SetSubScalar sets this to subtraction with scalar.
func (v *MutableVector4) SetSubScalar(s float32) *MutableVector4 {
	v.e[0] -= s
	v.e[1] -= s
	v.e[2] -= s
	v.e[3] -= s
	return v
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *MutableVector4) SetMul(other Vector4) *MutableVector4 {
	v.e[0] *= other.e[0]
	v.e[1] *= other.e[1]
	v.e[2] *= other.e[2]
	v.e[3] *= other.e[3]
	return v
}

// SetMulScalar sets this to multiplication with scalar.
func (v *MutableVector4) SetMulScalar(s float32) *MutableVector4 {
	v.e[0] *= s
	v.e[1] *= s
	v.e[2] *= s
	v.e[3] *= s
	return v
}

// SetDiv sets this to division with other vector (i.e., /= or divide-equals).
func (v *MutableVector4) SetDiv(other Vector4) *MutableVector4 {
	v.e[0] /= other.e[0]
	v.e[1] /= other.e[1]
	v.e[2] /= other.e[2]
	v.e[3] /= other.e[3]
	return v
}

// SetDivScalar sets this to division with scalar.
func (v *MutableVector4) SetDivScalar(s float32) *MutableVector4 {
	v.e[0] /= s
	v.e[1] /= s
	v.e[2] /= s
	v.e[3] /= s
	return v
}

// SetMod sets this to the floating-point remainder of division by other.
func (v *MutableVector4) SetMod(other Vector4) *MutableVector4 {
	v.Vector4 = v.Mod(other)
	return v
}

// SetModScalar sets this to the floating-point remainder of division by s.
func (v *MutableVector4) SetModScalar(s float32) *MutableVector4 {
	v.Vector4 = v.ModScalar(s)
	return v
}

// SetNegate negates each component.
func (v *MutableVector4) SetNegate() *MutableVector4 {
	v.e[0] = -v.e[0]
	v.e[1] = -v.e[1]
	v.e[2] = -v.e[2]
	v.e[3] = -v.e[3]
	return v
}

// SetMin sets this vector to [Vector4.Min].
func (v *MutableVector4) SetMin(other Vector4) *MutableVector4 {
	v.Vector4 = v.Min(other)
	return v
}

// SetMinScalar sets this vector to [Vector4.MinScalar].
func (v *MutableVector4) SetMinScalar(s float32) *MutableVector4 {
	v.Vector4 = v.MinScalar(s)
	return v
}

// SetMax sets this vector to [Vector4.Max].
func (v *MutableVector4) SetMax(other Vector4) *MutableVector4 {
	v.Vector4 = v.Max(other)
	return v
}

// SetMaxScalar sets this vector to [Vector4.MaxScalar].
func (v *MutableVector4) SetMaxScalar(s float32) *MutableVector4 {
	v.Vector4 = v.MaxScalar(s)
	return v
}

// SetClamp sets this vector to [Vector4.Clamp].
func (v *MutableVector4) SetClamp(min, max Vector4) *MutableVector4 {
	v.Vector4 = v.Clamp(min, max)
	return v
}

// SetClampScalar sets this vector to [Vector4.ClampScalar].
func (v *MutableVector4) SetClampScalar(min, max float32) *MutableVector4 {
	v.Vector4 = v.ClampScalar(min, max)
	return v
}

// SetClampRange sets this vector to [Vector4.ClampRange].
func (v *MutableVector4) SetClampRange(r minmax.F32) *MutableVector4 {
	v.Vector4 = v.ClampRange(r)
	return v
}

// SetNormal normalizes this vector so its length will be 1.
// A zero vector becomes NaN.
func (v *MutableVector4) SetNormal() *MutableVector4 {
	v.Vector4 = v.Normal()
	return v
}

// SetReflect reflects this vector off the plane with the given unit normal.
func (v *MutableVector4) SetReflect(normal Vector4) *MutableVector4 {
	v.Vector4 = v.Reflect(normal)
	return v
}

// SetRefract sets this incident vector to its refraction; see [Vector4.Refract].
func (v *MutableVector4) SetRefract(normal Vector4, eta float32) *MutableVector4 {
	v.Vector4 = v.Refract(normal, eta)
	return v
}

// SetFaceForward orients this normal against the incident vector; see [Vector4.FaceForward].
func (v *MutableVector4) SetFaceForward(incident, nref Vector4) *MutableVector4 {
	v.Vector4 = v.FaceForward(incident, nref)
	return v
}

// SetProject sets this vector to its projection onto the given vector.
func (v *MutableVector4) SetProject(onto Vector4) *MutableVector4 {
	v.Vector4 = v.Project(onto)
	return v
}

// SetMoveTowards moves this vector towards target by at most maxDelta.
func (v *MutableVector4) SetMoveTowards(target Vector4, maxDelta float32) *MutableVector4 {
	v.Vector4 = v.MoveTowards(target, maxDelta)
	return v
}

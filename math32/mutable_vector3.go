// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "cogentcore.org/vkmath/math32/minmax"

// MutableVector3 is a [Vector3] that can be updated in place. All [Vector3] operations
// are available on it and return new immutable vectors; the Set methods
// modify the receiver and return it for chaining.
//
// A MutableVector3 is exclusively owned scratch storage and is not safe for
// concurrent modification.
type MutableVector3 struct {
	Vector3
}

// NewMutableVec3 returns a new [MutableVector3] with the given x, y, z components.
func NewMutableVec3(x, y, z float32) *MutableVector3 {
	return &MutableVector3{Vec3(x, y, z)}
}

// AsSlice returns a slice backed by the vector's storage: writes through it
// change the vector.
func (v *MutableVector3) AsSlice() []float32 {
	return v.e[:]
}

// ToImmutable returns a copy of the current value.
func (v *MutableVector3) ToImmutable() Vector3 {
	return v.Vector3
}

// Set sets the X, Y, Z components.
func (v *MutableVector3) Set(x, y, z float32) *MutableVector3 {
	v.e[0] = x
	v.e[1] = y
	v.e[2] = z
	return v
}

// SetX sets the X component.
func (v *MutableVector3) SetX(x float32) *MutableVector3 {
	v.e[0] = x
	return v
}

// SetY sets the Y component.
func (v *MutableVector3) SetY(y float32) *MutableVector3 {
	v.e[1] = y
	return v
}

// SetZ sets the Z component.
func (v *MutableVector3) SetZ(z float32) *MutableVector3 {
	v.e[2] = z
	return v
}

// SetDim sets the component at the given dimension index.
// It panics with an [*IndexError] if dim is not in [0, 3).
func (v *MutableVector3) SetDim(dim Dims, value float32) *MutableVector3 {
	checkIndex(int(dim), 3)
	v.e[dim] = value
	return v
}

// SetScalar sets all components to the same scalar value.
func (v *MutableVector3) SetScalar(s float32) *MutableVector3 {
	v.e[0] = s
	v.e[1] = s
	v.e[2] = s
	return v
}

// SetZero sets all components to zero.
func (v *MutableVector3) SetZero() *MutableVector3 {
	v.Vector3 = Vector3{}
	return v
}

// FromSlice sets the components from s starting at offset.
func (v *MutableVector3) FromSlice(s []float32, offset int) *MutableVector3 {
	copy(v.e[:], s[offset:offset+3])
	return v
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *MutableVector3) SetAdd(other Vector3) *MutableVector3 {
	v.e[0] += other.e[0]
	v.e[1] += other.e[1]
	v.e[2] += other.e[2]
	return v
}

// SetAddScalar sets this to addition with scalar.
func (v *MutableVector3) SetAddScalar(s float32) *MutableVector3 {
	v.e[0] += s
	v.e[1] += s
	v.e[2] += s
	return v
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *MutableVector3) SetSub(other Vector3) *MutableVector3 {
	v.e[0] -= other.e[0]
	v.e[1] -= other.e[1]
	v.e[2] -= other.e[2]
	return v
}

// SetSubScalar sets this to subtraction with scalar.
func (v *MutableVector3) SetSubScalar(s float32) *MutableVector3 {
	v.e[0] -= s
	v.e[1] -= s
	v.e[2] -= s
	return v
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *MutableVector3) SetMul(other Vector3) *MutableVector3 {
	v.e[0] *= other.e[0]
	v.e[1] *= other.e[1]
	v.e[2] *= other.e[2]
	return v
}

// SetMulScalar sets this to multiplication with scalar.
func (v *MutableVector3) SetMulScalar(s float32) *MutableVector3 {
	v.e[0] *= s
	v.e[1] *= s
	v.e[2] *= s
	return v
}

// SetDiv sets this to division with other vector (i.e., /= or divide-equals).
func (v *MutableVector3) SetDiv(other Vector3) *MutableVector3 {
	v.e[0] /= other.e[0]
	v.e[1] /= other.e[1]
	v.e[2] /= other.e[2]
	return v
}

// SetDivScalar sets this to division with scalar.
func (v *MutableVector3) SetDivScalar(s float32) *MutableVector3 {
	v.e[0] /= s
	v.e[1] /= s
	v.e[2] /= s
	return v
}

// SetMod sets this to the floating-point remainder of division by other.
func (v *MutableVector3) SetMod(other Vector3) *MutableVector3 {
	v.Vector3 = v.Mod(other)
	return v
}

// SetModScalar sets this to the floating-point remainder of division by s.
func (v *MutableVector3) SetModScalar(s float32) *MutableVector3 {
	v.Vector3 = v.ModScalar(s)
	return v
}

// SetNegate negates each component.
func (v *MutableVector3) SetNegate() *MutableVector3 {
	v.e[0] = -v.e[0]
	v.e[1] = -v.e[1]
	v.e[2] = -v.e[2]
	return v
}

// SetMin sets this vector to [Vector3.Min].
func (v *MutableVector3) SetMin(other Vector3) *MutableVector3 {
	v.Vector3 = v.Min(other)
	return v
}

// SetMinScalar sets this vector to [Vector3.MinScalar].
func (v *MutableVector3) SetMinScalar(s float32) *MutableVector3 {
	v.Vector3 = v.MinScalar(s)
	return v
}

// SetMax sets this vector to [Vector3.Max].
func (v *MutableVector3) SetMax(other Vector3) *MutableVector3 {
	v.Vector3 = v.Max(other)
	return v
}

// SetMaxScalar sets this vector to [Vector3.MaxScalar].
func (v *MutableVector3) SetMaxScalar(s float32) *MutableVector3 {
	v.Vector3 = v.MaxScalar(s)
	return v
}

// SetClamp sets this vector to [Vector3.Clamp].
func (v *MutableVector3) SetClamp(min, max Vector3) *MutableVector3 {
	v.Vector3 = v.Clamp(min, max)
	return v
}

// SetClampScalar sets this vector to [Vector3.ClampScalar].
func (v *MutableVector3) SetClampScalar(min, max float32) *MutableVector3 {
	v.Vector3 = v.ClampScalar(min, max)
	return v
}

// SetClampRange sets this vector to [Vector3.ClampRange].
func (v *MutableVector3) SetClampRange(r minmax.F32) *MutableVector3 {
	v.Vector3 = v.ClampRange(r)
	return v
}

// SetNormal normalizes this vector so its length will be 1.
// A zero vector becomes NaN.
func (v *MutableVector3) SetNormal() *MutableVector3 {
	v.Vector3 = v.Normal()
	return v
}

// SetCross sets this vector to the cross product of itself and other.
func (v *MutableVector3) SetCross(other Vector3) *MutableVector3 {
	v.Vector3 = v.Cross(other)
	return v
}

// SetReflect reflects this vector off the plane with the given unit normal.
func (v *MutableVector3) SetReflect(normal Vector3) *MutableVector3 {
	v.Vector3 = v.Reflect(normal)
	return v
}

// SetRefract sets this incident vector to its refraction; see [Vector3.Refract].
func (v *MutableVector3) SetRefract(normal Vector3, eta float32) *MutableVector3 {
	v.Vector3 = v.Refract(normal, eta)
	return v
}

// SetFaceForward orients this normal against the incident vector; see [Vector3.FaceForward].
func (v *MutableVector3) SetFaceForward(incident, nref Vector3) *MutableVector3 {
	v.Vector3 = v.FaceForward(incident, nref)
	return v
}

// SetProject sets this vector to its projection onto the given vector.
func (v *MutableVector3) SetProject(onto Vector3) *MutableVector3 {
	v.Vector3 = v.Project(onto)
	return v
}

// SetMoveTowards moves this vector towards target by at most maxDelta.
func (v *MutableVector3) SetMoveTowards(target Vector3, maxDelta float32) *MutableVector3 {
	v.Vector3 = v.MoveTowards(target, maxDelta)
	return v
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "cogentcore.org/vkmath/math32/minmax"

// MutableVector2 is a [Vector2] that can be updated in place. All [Vector2] operations
// are available on it and return new immutable vectors; the Set methods
// modify the receiver and return it for chaining.
//
// A MutableVector2 is exclusively owned scratch storage and is not safe for
// concurrent modification.
type MutableVector2 struct {
	Vector2
}

// NewMutableVec2 returns a new [MutableVector2] with the given x, y components.
func NewMutableVec2(x, y float32) *MutableVector2 {
	return &MutableVector2{Vec2(x, y)}
}

// AsSlice returns a slice backed by the vector's storage: writes through it
// change the vector.
func (v *MutableVector2) AsSlice() []float32 {
	return v.e[:]
}

// ToImmutable returns a copy of the current value.
func (v *MutableVector2) ToImmutable() Vector2 {
	return v.Vector2
}

// Set sets the X, Y components.
func (v *MutableVector2) Set(x, y float32) *MutableVector2 {
	v.e[0] = x
	v.e[1] = y
	return v
}

// SetX sets the X component.
func (v *MutableVector2) SetX(x float32) *MutableVector2 {
	v.e[0] = x
	return v
}

// SetY sets the Y component.
func (v *MutableVector2) SetY(y float32) *MutableVector2 {
	v.e[1] = y
	return v
}

// SetDim sets the component at the given dimension index.
// It panics with an [*IndexError] if dim is not in [0, 2).
func (v *MutableVector2) SetDim(dim Dims, value float32) *MutableVector2 {
	checkIndex(int(dim), 2)
	v.e[dim] = value
	return v
}

// SetScalar sets all components to the same scalar value.
func (v *MutableVector2) SetScalar(s float32) *MutableVector2 {
	v.e[0] = s
	v.e[1] = s
	return v
}

// SetZero sets all components to zero.
func (v *MutableVector2) SetZero() *MutableVector2 {
	v.Vector2 = Vector2{}
	return v
}

// FromSlice sets the components from s starting at offset.
func (v *MutableVector2) FromSlice(s []float32, offset int) *MutableVector2 {
	copy(v.e[:], s[offset:offset+2])
	return v
}

// SetAdd sets this to addition with other vector (i.e., += or plus-equals).
func (v *MutableVector2) SetAdd(other Vector2) *MutableVector2 {
	v.e[0] += other.e[0]
	v.e[1] += other.e[1]
	return v
}

// SetAddScalar sets this to addition with scalar.
func (v *MutableVector2) SetAddScalar(s float32) *MutableVector2 {
	v.e[0] += s
	v.e[1] += s
	return v
}

// SetSub sets this to subtraction with other vector (i.e., -= or minus-equals).
func (v *MutableVector2) SetSub(other Vector2) *MutableVector2 {
	v.e[0] -= other.e[0]
	v.e[1] -= other.e[1]
	return v
}

// SetSubScalar sets this to subtraction with scalar.
func (v *MutableVector2) SetSubScalar(s float32) *MutableVector2 {
	v.e[0] -= s
	v.e[1] -= s
	return v
}

// SetMul sets this to multiplication with other vector (i.e., *= or times-equals).
func (v *MutableVector2) SetMul(other Vector2) *MutableVector2 {
	v.e[0] *= other.e[0]
	v.e[1] *= other.e[1]
	return v
}

// SetMulScalar sets this to multiplication with scalar.
func (v *MutableVector2) SetMulScalar(s float32) *MutableVector2 {
	v.e[0] *= s
	v.e[1] *= s
	return v
}

// SetDiv sets this to division with other vector (i.e., /= or divide-equals).
func (v *MutableVector2) SetDiv(other Vector2) *MutableVector2 {
	v.e[0] /= other.e[0]
	v.e[1] /= other.e[1]
	return v
}

// SetDivScalar sets this to division with scalar.
func (v *MutableVector2) SetDivScalar(s float32) *MutableVector2 {
	v.e[0] /= s
	v.e[1] /= s
	return v
}

// SetMod sets this to the floating-point remainder of division by other.
func (v *MutableVector2) SetMod(other Vector2) *MutableVector2 {
	v.Vector2 = v.Mod(other)
	return v
}

// SetModScalar sets this to the floating-point remainder of division by s.
func (v *MutableVector2) SetModScalar(s float32) *MutableVector2 {
	v.Vector2 = v.ModScalar(s)
	return v
}

// SetNegate negates each component.
func (v *MutableVector2) SetNegate() *MutableVector2 {
	v.e[0] = -v.e[0]
	v.e[1] = -v.e[1]
	return v
}

// SetMin sets this vector to [Vector2.Min].
func (v *MutableVector2) SetMin(other Vector2) *MutableVector2 {
	v.Vector2 = v.Min(other)
	return v
}

// SetMinScalar sets this vector to [Vector2.MinScalar].
func (v *MutableVector2) SetMinScalar(s float32) *MutableVector2 {
	v.Vector2 = v.MinScalar(s)
	return v
}

// SetMax sets this vector to [Vector2.Max].
func (v *MutableVector2) SetMax(other Vector2) *MutableVector2 {
	v.Vector2 = v.Max(other)
	return v
}

// SetMaxScalar sets this vector to [Vector2.MaxScalar].
func (v *MutableVector2) SetMaxScalar(s float32) *MutableVector2 {
	v.Vector2 = v.MaxScalar(s)
	return v
}

// SetClamp sets this vector to [Vector2.Clamp].
func (v *MutableVector2) SetClamp(min, max Vector2) *MutableVector2 {
	v.Vector2 = v.Clamp(min, max)
	return v
}

// SetClampScalar sets this vector to [Vector2.ClampScalar].
func (v *MutableVector2) SetClampScalar(min, max float32) *MutableVector2 {
	v.Vector2 = v.ClampScalar(min, max)
	return v
}

// SetClampRange sets this vector to [Vector2.ClampRange].
func (v *MutableVector2) SetClampRange(r minmax.F32) *MutableVector2 {
	v.Vector2 = v.ClampRange(r)
	return v
}

// SetNormal normalizes this vector so its length will be 1.
// A zero vector becomes NaN.
func (v *MutableVector2) SetNormal() *MutableVector2 {
	v.Vector2 = v.Normal()
	return v
}

// SetPerpendicular rotates this vector 90 degrees counter-clockwise.
func (v *MutableVector2) SetPerpendicular() *MutableVector2 {
	v.Vector2 = v.Perpendicular()
	return v
}

// SetReflect reflects this vector off the plane with the given unit normal.
func (v *MutableVector2) SetReflect(normal Vector2) *MutableVector2 {
	v.Vector2 = v.Reflect(normal)
	return v
}

// SetRefract sets this incident vector to its refraction; see [Vector2.Refract].
func (v *MutableVector2) SetRefract(normal Vector2, eta float32) *MutableVector2 {
	v.Vector2 = v.Refract(normal, eta)
	return v
}

// SetFaceForward orients this normal against the incident vector; see [Vector2.FaceForward].
func (v *MutableVector2) SetFaceForward(incident, nref Vector2) *MutableVector2 {
	v.Vector2 = v.FaceForward(incident, nref)
	return v
}

// SetProject sets this vector to its projection onto the given vector.
func (v *MutableVector2) SetProject(onto Vector2) *MutableVector2 {
	v.Vector2 = v.Project(onto)
	return v
}

// SetMoveTowards moves this vector towards target by at most maxDelta.
func (v *MutableVector2) SetMoveTowards(target Vector2, maxDelta float32) *MutableVector2 {
	v.Vector2 = v.MoveTowards(target, maxDelta)
	return v
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Elementwise versions of the common functions in math.go.
// Each applies the scalar function to every component independently.

////////////////////////////////////////////////////////////
// Vector2

// Abs returns this vector with [Abs] applied to each component.
func (v Vector2) Abs() Vector2 {
	return Vec2(Abs(v.e[0]), Abs(v.e[1]))
}

// Sign returns this vector with [Sign] applied to each component.
func (v Vector2) Sign() Vector2 {
	return Vec2(Sign(v.e[0]), Sign(v.e[1]))
}

// Floor returns this vector with [Floor] applied to each component.
func (v Vector2) Floor() Vector2 {
	return Vec2(Floor(v.e[0]), Floor(v.e[1]))
}

// Ceil returns this vector with [Ceil] applied to each component.
func (v Vector2) Ceil() Vector2 {
	return Vec2(Ceil(v.e[0]), Ceil(v.e[1]))
}

// Round returns this vector with [Round] applied to each component.
func (v Vector2) Round() Vector2 {
	return Vec2(Round(v.e[0]), Round(v.e[1]))
}

// RoundToEven returns this vector with [RoundToEven] applied to each component.
func (v Vector2) RoundToEven() Vector2 {
	return Vec2(RoundToEven(v.e[0]), RoundToEven(v.e[1]))
}

// Trunc returns this vector with [Trunc] applied to each component.
func (v Vector2) Trunc() Vector2 {
	return Vec2(Trunc(v.e[0]), Trunc(v.e[1]))
}

// Fract returns this vector with [Fract] applied to each component.
func (v Vector2) Fract() Vector2 {
	return Vec2(Fract(v.e[0]), Fract(v.e[1]))
}

// Mix returns the linear blend of this vector and other, weighted per
// component by a: v*(1-a) + other*a.
func (v Vector2) Mix(other, a Vector2) Vector2 {
	return Vec2(Mix(v.e[0], other.e[0], a.e[0]), Mix(v.e[1], other.e[1], a.e[1]))
}

// MixScalar returns the linear blend of this vector and other by a.
func (v Vector2) MixScalar(other Vector2, a float32) Vector2 {
	return Vec2(Mix(v.e[0], other.e[0], a), Mix(v.e[1], other.e[1], a))
}

// MixBool returns, per component, other where a is true and this vector elsewhere.
func (v Vector2) MixBool(other Vector2, a Vector2b) Vector2 {
	return Vec2(MixBool(v.e[0], other.e[0], a.e[0]), MixBool(v.e[1], other.e[1], a.e[1]))
}

// Step returns 0 for each component less than the corresponding edge and 1 otherwise.
func (v Vector2) Step(edge Vector2) Vector2 {
	return Vec2(Step(edge.e[0], v.e[0]), Step(edge.e[1], v.e[1]))
}

// StepScalar returns 0 for each component less than edge and 1 otherwise.
func (v Vector2) StepScalar(edge float32) Vector2 {
	return Vec2(Step(edge, v.e[0]), Step(edge, v.e[1]))
}

// SmoothStep returns the Hermite interpolation of each component between
// the corresponding components of edge0 and edge1; see [SmoothStep].
func (v Vector2) SmoothStep(edge0, edge1 Vector2) Vector2 {
	return Vec2(SmoothStep(edge0.e[0], edge1.e[0], v.e[0]), SmoothStep(edge0.e[1], edge1.e[1], v.e[1]))
}

// SmoothStepScalar is [Vector2.SmoothStep] with the same edges for every component.
func (v Vector2) SmoothStepScalar(edge0, edge1 float32) Vector2 {
	return Vec2(SmoothStep(edge0, edge1, v.e[0]), SmoothStep(edge0, edge1, v.e[1]))
}

// IsNaN reports which components are NaN.
func (v Vector2) IsNaN() Vector2b {
	return Vec2b(IsNaN(v.e[0]), IsNaN(v.e[1]))
}

// IsInf reports which components are infinite, according to sign as in [IsInf].
func (v Vector2) IsInf(sign int) Vector2b {
	return Vec2b(IsInf(v.e[0], sign), IsInf(v.e[1], sign))
}

// IsFinite reports which components are neither infinite nor NaN.
func (v Vector2) IsFinite() Vector2b {
	return Vec2b(IsFinite(v.e[0]), IsFinite(v.e[1]))
}

// ToBits returns the IEEE-754 bit patterns of the components, with every NaN
// mapped to the canonical NaN; see [ToBits].
func (v Vector2) ToBits() Vector2i {
	return Vec2i(ToBits(v.e[0]), ToBits(v.e[1]))
}

// ToRawBits returns the IEEE-754 bit patterns of the components, preserving NaN payloads.
func (v Vector2) ToRawBits() Vector2i {
	return Vec2i(ToRawBits(v.e[0]), ToRawBits(v.e[1]))
}

// Vector2FromBits returns the [Vector2] whose components have the given bit patterns.
func Vector2FromBits(bits Vector2i) Vector2 {
	return Vec2(FromBits(bits.e[0]), FromBits(bits.e[1]))
}

// Frexp breaks each component into a fraction in [½, 1) and a power of two; see [Frexp].
func (v Vector2) Frexp() (frac Vector2, exp Vector2i) {
	f0, e0 := Frexp(v.e[0])
	f1, e1 := Frexp(v.e[1])
	return Vec2(f0, f1), Vec2i(int32(e0), int32(e1))
}

// Vector2Ldexp is the inverse of [Vector2.Frexp]: it returns frac × 2**exp per component.
func Vector2Ldexp(frac Vector2, exp Vector2i) Vector2 {
	return Vec2(Ldexp(frac.e[0], int(exp.e[0])), Ldexp(frac.e[1], int(exp.e[1])))
}

////////////////////////////////////////////////////////////
// Vector3

// Abs returns this vector with [Abs] applied to each component.
func (v Vector3) Abs() Vector3 {
	return Vec3(Abs(v.e[0]), Abs(v.e[1]), Abs(v.e[2]))
}

// Sign returns this vector with [Sign] applied to each component.
func (v Vector3) Sign() Vector3 {
	return Vec3(Sign(v.e[0]), Sign(v.e[1]), Sign(v.e[2]))
}

// Floor returns this vector with [Floor] applied to each component.
func (v Vector3) Floor() Vector3 {
	return Vec3(Floor(v.e[0]), Floor(v.e[1]), Floor(v.e[2]))
}

// Ceil returns this vector with [Ceil] applied to each component.
func (v Vector3) Ceil() Vector3 {
	return Vec3(Ceil(v.e[0]), Ceil(v.e[1]), Ceil(v.e[2]))
}

// Round returns this vector with [Round] applied to each component.
func (v Vector3) Round() Vector3 {
	return Vec3(Round(v.e[0]), Round(v.e[1]), Round(v.e[2]))
}

// RoundToEven returns this vector with [RoundToEven] applied to each component.
func (v Vector3) RoundToEven() Vector3 {
	return Vec3(RoundToEven(v.e[0]), RoundToEven(v.e[1]), RoundToEven(v.e[2]))
}

// Trunc returns this vector with [Trunc] applied to each component.
func (v Vector3) Trunc() Vector3 {
	return Vec3(Trunc(v.e[0]), Trunc(v.e[1]), Trunc(v.e[2]))
}

// Fract returns this vector with [Fract] applied to each component.
func (v Vector3) Fract() Vector3 {
	return Vec3(Fract(v.e[0]), Fract(v.e[1]), Fract(v.e[2]))
}

// Mix returns the linear blend of this vector and other, weighted per
// component by a: v*(1-a) + other*a.
func (v Vector3) Mix(other, a Vector3) Vector3 {
	return Vec3(Mix(v.e[0], other.e[0], a.e[0]), Mix(v.e[1], other.e[1], a.e[1]), Mix(v.e[2], other.e[2], a.e[2]))
}

// MixScalar returns the linear blend of this vector and other by a.
func (v Vector3) MixScalar(other Vector3, a float32) Vector3 {
	return Vec3(Mix(v.e[0], other.e[0], a), Mix(v.e[1], other.e[1], a), Mix(v.e[2], other.e[2], a))
}

// MixBool returns, per component, other where a is true and this vector elsewhere.
func (v Vector3) MixBool(other Vector3, a Vector3b) Vector3 {
	return Vec3(MixBool(v.e[0], other.e[0], a.e[0]), MixBool(v.e[1], other.e[1], a.e[1]), MixBool(v.e[2], other.e[2], a.e[2]))
}

// Step returns 0 for each component less than the corresponding edge and 1 otherwise.
func (v Vector3) Step(edge Vector3) Vector3 {
	return Vec3(Step(edge.e[0], v.e[0]), Step(edge.e[1], v.e[1]), Step(edge.e[2], v.e[2]))
}

// StepScalar returns 0 for each component less than edge and 1 otherwise.
func (v Vector3) StepScalar(edge float32) Vector3 {
	return Vec3(Step(edge, v.e[0]), Step(edge, v.e[1]), Step(edge, v.e[2]))
}

// SmoothStep returns the Hermite interpolation of each component between
// the corresponding components of edge0 and edge1; see [SmoothStep].
func (v Vector3) SmoothStep(edge0, edge1 Vector3) Vector3 {
	return Vec3(SmoothStep(edge0.e[0], edge1.e[0], v.e[0]), SmoothStep(edge0.e[1], edge1.e[1], v.e[1]), SmoothStep(edge0.e[2], edge1.e[2], v.e[2]))
}

// SmoothStepScalar is [Vector3.SmoothStep] with the same edges for every component.
func (v Vector3) SmoothStepScalar(edge0, edge1 float32) Vector3 {
	return Vec3(SmoothStep(edge0, edge1, v.e[0]), SmoothStep(edge0, edge1, v.e[1]), SmoothStep(edge0, edge1, v.e[2]))
}

// IsNaN reports which components are NaN.
func (v Vector3) IsNaN() Vector3b {
	return Vec3b(IsNaN(v.e[0]), IsNaN(v.e[1]), IsNaN(v.e[2]))
}

// IsInf reports which components are infinite, according to sign as in [IsInf].
func (v Vector3) IsInf(sign int) Vector3b {
	return Vec3b(IsInf(v.e[0], sign), IsInf(v.e[1], sign), IsInf(v.e[2], sign))
}

// IsFinite reports which components are neither infinite nor NaN.
func (v Vector3) IsFinite() Vector3b {
	return Vec3b(IsFinite(v.e[0]), IsFinite(v.e[1]), IsFinite(v.e[2]))
}

// ToBits returns the IEEE-754 bit patterns of the components, with every NaN
// mapped to the canonical NaN; see [ToBits].
func (v Vector3) ToBits() Vector3i {
	return Vec3i(ToBits(v.e[0]), ToBits(v.e[1]), ToBits(v.e[2]))
}

// ToRawBits returns the IEEE-754 bit patterns of the components, preserving NaN payloads.
func (v Vector3) ToRawBits() Vector3i {
	return Vec3i(ToRawBits(v.e[0]), ToRawBits(v.e[1]), ToRawBits(v.e[2]))
}

// Vector3FromBits returns the [Vector3] whose components have the given bit patterns.
func Vector3FromBits(bits Vector3i) Vector3 {
	return Vec3(FromBits(bits.e[0]), FromBits(bits.e[1]), FromBits(bits.e[2]))
}

// Frexp breaks each component into a fraction in [½, 1) and a power of two; see [Frexp].
func (v Vector3) Frexp() (frac Vector3, exp Vector3i) {
	f0, e0 := Frexp(v.e[0])
	f1, e1 := Frexp(v.e[1])
	f2, e2 := Frexp(v.e[2])
	return Vec3(f0, f1, f2), Vec3i(int32(e0), int32(e1), int32(e2))
}

// Vector3Ldexp is the inverse of [Vector3.Frexp]: it returns frac × 2**exp per component.
func Vector3Ldexp(frac Vector3, exp Vector3i) Vector3 {
	return Vec3(Ldexp(frac.e[0], int(exp.e[0])), Ldexp(frac.e[1], int(exp.e[1])), Ldexp(frac.e[2], int(exp.e[2])))
}

////////////////////////////////////////////////////////////
// Vector4

// Abs returns this vector with [Abs] applied to each component.
func (v Vector4) Abs() Vector4 {
	return Vec4(Abs(v.e[0]), Abs(v.e[1]), Abs(v.e[2]), Abs(v.e[3]))
}

// Sign returns this vector with [Sign] applied to each component.
func (v Vector4) Sign() Vector4 {
	return Vec4(Sign(v.e[0]), Sign(v.e[1]), Sign(v.e[2]), Sign(v.e[3]))
}

// Floor returns this vector with [Floor] applied to each component.
func (v Vector4) Floor() Vector4 {
	return Vec4(Floor(v.e[0]), Floor(v.e[1]), Floor(v.e[2]), Floor(v.e[3]))
}

// Ceil returns this vector with [Ceil] applied to each component.
func (v Vector4) Ceil() Vector4 {
	return Vec4(Ceil(v.e[0]), Ceil(v.e[1]), Ceil(v.e[2]), Ceil(v.e[3]))
}

// Round returns this vector with [Round] applied to each component.
func (v Vector4) Round() Vector4 {
	return Vec4(Round(v.e[0]), Round(v.e[1]), Round(v.e[2]), Round(v.e[3]))
}

// RoundToEven returns this vector with [RoundToEven] applied to each component.
func (v Vector4) RoundToEven() Vector4 {
	return Vec4(RoundToEven(v.e[0]), RoundToEven(v.e[1]), RoundToEven(v.e[2]), RoundToEven(v.e[3]))
}

// Trunc returns this vector with [Trunc] applied to each component.
func (v Vector4) Trunc() Vector4 {
	return Vec4(Trunc(v.e[0]), Trunc(v.e[1]), Trunc(v.e[2]), Trunc(v.e[3]))
}

// Fract returns this vector with [Fract] applied to each component.
func (v Vector4) Fract() Vector4 {
	return Vec4(Fract(v.e[0]), Fract(v.e[1]), Fract(v.e[2]), Fract(v.e[3]))
}

// Mix returns the linear blend of this vector and other, weighted per
// component by a: v*(1-a) + other*a.
func (v Vector4) Mix(other, a Vector4) Vector4 {
	return Vec4(Mix(v.e[0], other.e[0], a.e[0]), Mix(v.e[1], other.e[1], a.e[1]), Mix(v.e[2], other.e[2], a.e[2]), Mix(v.e[3], other.e[3], a.e[3]))
}

// MixScalar returns the linear blend of this vector and other by a.
func (v Vector4) MixScalar(other Vector4, a float32) Vector4 {
	return Vec4(Mix(v.e[0], other.e[0], a), Mix(v.e[1], other.e[1], a), Mix(v.e[2], other.e[2], a), Mix(v.e[3], other.e[3], a))
}

// MixBool returns, per component, other where a is true and this vector elsewhere.
func (v Vector4) MixBool(other Vector4, a Vector4b) Vector4 {
	return Vec4(MixBool(v.e[0], other.e[0], a.e[0]), MixBool(v.e[1], other.e[1], a.e[1]), MixBool(v.e[2], other.e[2], a.e[2]), MixBool(v.e[3], other.e[3], a.e[3]))
}

// Step returns 0 for each component less than the corresponding edge and 1 otherwise.
func (v Vector4) Step(edge Vector4) Vector4 {
	return Vec4(Step(edge.e[0], v.e[0]), Step(edge.e[1], v.e[1]), Step(edge.e[2], v.e[2]), Step(edge.e[3], v.e[3]))
}

// StepScalar returns 0 for each component less than edge and 1 otherwise.
func (v Vector4) StepScalar(edge float32) Vector4 {
	return Vec4(Step(edge, v.e[0]), Step(edge, v.e[1]), Step(edge, v.e[2]), Step(edge, v.e[3]))
}

// SmoothStep returns the Hermite interpolation of each component between
// the corresponding components of edge0 and edge1; see [SmoothStep].
func (v Vector4) SmoothStep(edge0, edge1 Vector4) Vector4 {
	return Vec4(SmoothStep(edge0.e[0], edge1.e[0], v.e[0]), SmoothStep(edge0.e[1], edge1.e[1], v.e[1]), SmoothStep(edge0.e[2], edge1.e[2], v.e[2]), SmoothStep(edge0.e[3], edge1.e[3], v.e[3]))
}

// SmoothStepScalar is [Vector4.SmoothStep] with the same edges for every component.
func (v Vector4) SmoothStepScalar(edge0, edge1 float32) Vector4 {
	return Vec4(SmoothStep(edge0, edge1, v.e[0]), SmoothStep(edge0, edge1, v.e[1]), SmoothStep(edge0, edge1, v.e[2]), SmoothStep(edge0, edge1, v.e[3]))
}

// IsNaN reports which components are NaN.
func (v Vector4) IsNaN() Vector4b {
	return Vec4b(IsNaN(v.e[0]), IsNaN(v.e[1]), IsNaN(v.e[2]), IsNaN(v.e[3]))
}

// IsInf reports which components are infinite, according to sign as in [IsInf].
func (v Vector4) IsInf(sign int) Vector4b {
	return Vec4b(IsInf(v.e[0], sign), IsInf(v.e[1], sign), IsInf(v.e[2], sign), IsInf(v.e[3], sign))
}

// IsFinite reports which components are neither infinite nor NaN.
func (v Vector4) IsFinite() Vector4b {
	return Vec4b(IsFinite(v.e[0]), IsFinite(v.e[1]), IsFinite(v.e[2]), IsFinite(v.e[3]))
}

// ToBits returns the IEEE-754 bit patterns of the components, with every NaN
// mapped to the canonical NaN; see [ToBits].
func (v Vector4) ToBits() Vector4i {
	return Vec4i(ToBits(v.e[0]), ToBits(v.e[1]), ToBits(v.e[2]), ToBits(v.e[3]))
}

// ToRawBits returns the IEEE-754 bit patterns of the components, preserving NaN payloads.
func (v Vector4) ToRawBits() Vector4i {
	return Vec4i(ToRawBits(v.e[0]), ToRawBits(v.e[1]), ToRawBits(v.e[2]), ToRawBits(v.e[3]))
}

// Vector4FromBits returns the [Vector4] whose components have the given bit patterns.
func Vector4FromBits(bits Vector4i) Vector4 {
	return Vec4(FromBits(bits.e[0]), FromBits(bits.e[1]), FromBits(bits.e[2]), FromBits(bits.e[3]))
}

// Frexp breaks each component into a fraction in [½, 1) and a power of two; see [Frexp].
func (v Vector4) Frexp() (frac Vector4, exp Vector4i) {
	f0, e0 := Frexp(v.e[0])
	f1, e1 := Frexp(v.e[1])
	f2, e2 := Frexp(v.e[2])
	f3, e3 := Frexp(v.e[3])
	return Vec4(f0, f1, f2, f3), Vec4i(int32(e0), int32(e1), int32(e2), int32(e3))
}

// Vector4Ldexp is the inverse of [Vector4.Frexp]: it returns frac × 2**exp per component.
func Vector4Ldexp(frac Vector4, exp Vector4i) Vector4 {
	return Vec4(Ldexp(frac.e[0], int(exp.e[0])), Ldexp(frac.e[1], int(exp.e[1])), Ldexp(frac.e[2], int(exp.e[2])), Ldexp(frac.e[3], int(exp.e[3])))
}

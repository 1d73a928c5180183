// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Pow returns each component raised to the power of the corresponding component of exp.
func (v Vector2) Pow(exp Vector2) Vector2 {
	return Vec2(Pow(v.e[0], exp.e[0]), Pow(v.e[1], exp.e[1]))
}

// PowScalar returns each component raised to the power exp.
func (v Vector2) PowScalar(exp float32) Vector2 {
	return Vec2(Pow(v.e[0], exp), Pow(v.e[1], exp))
}

// PowInt returns each component raised to the integer power exp.
func (v Vector2) PowInt(exp int) Vector2 {
	e := float32(exp)
	return Vec2(Pow(v.e[0], e), Pow(v.e[1], e))
}

// PowVectori returns each component raised to the corresponding integer power.
func (v Vector2) PowVectori(exp Vector2i) Vector2 {
	return Vec2(Pow(v.e[0], float32(exp.e[0])), Pow(v.e[1], float32(exp.e[1])))
}

// Exp returns e**x of each component.
func (v Vector2) Exp() Vector2 {
	return Vec2(Exp(v.e[0]), Exp(v.e[1]))
}

// Exp2 returns 2**x of each component.
func (v Vector2) Exp2() Vector2 {
	return Vec2(Exp2(v.e[0]), Exp2(v.e[1]))
}

// Log returns the natural logarithm of each component.
func (v Vector2) Log() Vector2 {
	return Vec2(Log(v.e[0]), Log(v.e[1]))
}

// Log2 returns the binary logarithm of each component.
func (v Vector2) Log2() Vector2 {
	return Vec2(Log2(v.e[0]), Log2(v.e[1]))
}

// Log10 returns the decimal logarithm of each component.
func (v Vector2) Log10() Vector2 {
	return Vec2(Log10(v.e[0]), Log10(v.e[1]))
}

// Sqrt returns the square root of each component.
func (v Vector2) Sqrt() Vector2 {
	return Vec2(Sqrt(v.e[0]), Sqrt(v.e[1]))
}

// InverseSqrt returns 1/sqrt(x) of each component.
func (v Vector2) InverseSqrt() Vector2 {
	return Vec2(InverseSqrt(v.e[0]), InverseSqrt(v.e[1]))
}

// LogBase returns the logarithm of each component in the given base.
func (v Vector2) LogBase(base float32) Vector2 {
	return Vec2(LogBase(v.e[0], base), LogBase(v.e[1], base))
}

// Pow returns each component raised to the power of the corresponding component of exp.
func (v Vector3) Pow(exp Vector3) Vector3 {
	return Vec3(Pow(v.e[0], exp.e[0]), Pow(v.e[1], exp.e[1]), Pow(v.e[2], exp.e[2]))
}

// PowScalar returns each component raised to the power exp.
func (v Vector3) PowScalar(exp float32) Vector3 {
	return Vec3(Pow(v.e[0], exp), Pow(v.e[1], exp), Pow(v.e[2], exp))
}

// PowInt returns each component raised to the integer power exp.
func (v Vector3) PowInt(exp int) Vector3 {
	e := float32(exp)
	return Vec3(Pow(v.e[0], e), Pow(v.e[1], e), Pow(v.e[2], e))
}

// PowVectori returns each component raised to the corresponding integer power.
func (v Vector3) PowVectori(exp Vector3i) Vector3 {
	return Vec3(Pow(v.e[0], float32(exp.e[0])), Pow(v.e[1], float32(exp.e[1])), Pow(v.e[2], float32(exp.e[2])))
}

// Exp returns e**x of each component.
func (v Vector3) Exp() Vector3 {
	return Vec3(Exp(v.e[0]), Exp(v.e[1]), Exp(v.e[2]))
}

// Exp2 returns 2**x of each component.
func (v Vector3) Exp2() Vector3 {
	return Vec3(Exp2(v.e[0]), Exp2(v.e[1]), Exp2(v.e[2]))
}

// Log returns the natural logarithm of each component.
func (v Vector3) Log() Vector3 {
	return Vec3(Log(v.e[0]), Log(v.e[1]), Log(v.e[2]))
}

// Log2 returns the binary logarithm of each component.
func (v Vector3) Log2() Vector3 {
	return Vec3(Log2(v.e[0]), Log2(v.e[1]), Log2(v.e[2]))
}

// Log10 returns the decimal logarithm of each component.
func (v Vector3) Log10() Vector3 {
	return Vec3(Log10(v.e[0]), Log10(v.e[1]), Log10(v.e[2]))
}

// Sqrt returns the square root of each component.
func (v Vector3) Sqrt() Vector3 {
	return Vec3(Sqrt(v.e[0]), Sqrt(v.e[1]), Sqrt(v.e[2]))
}

// InverseSqrt returns 1/sqrt(x) of each component.
func (v Vector3) InverseSqrt() Vector3 {
	return Vec3(InverseSqrt(v.e[0]), InverseSqrt(v.e[1]), InverseSqrt(v.e[2]))
}

// LogBase returns the logarithm of each component in the given base.
func (v Vector3) LogBase(base float32) Vector3 {
	return Vec3(LogBase(v.e[0], base), LogBase(v.e[1], base), LogBase(v.e[2], base))
}

// Pow returns each component raised to the power of the corresponding component of exp.
func (v Vector4) Pow(exp Vector4) Vector4 {
	return Vec4(Pow(v.e[0], exp.e[0]), Pow(v.e[1], exp.e[1]), Pow(v.e[2], exp.e[2]), Pow(v.e[3], exp.e[3]))
}

// PowScalar returns each component raised to the power exp.
func (v Vector4) PowScalar(exp float32) Vector4 {
	return Vec4(Pow(v.e[0], exp), Pow(v.e[1], exp), Pow(v.e[2], exp), Pow(v.e[3], exp))
}

// PowInt returns each component raised to the integer power exp.
func (v Vector4) PowInt(exp int) Vector4 {
	e := float32(exp)
	return Vec4(Pow(v.e[0], e), Pow(v.e[1], e), Pow(v.e[2], e), Pow(v.e[3], e))
}

// PowVectori returns each component raised to the corresponding integer power.
func (v Vector4) PowVectori(exp Vector4i) Vector4 {
	return Vec4(Pow(v.e[0], float32(exp.e[0])), Pow(v.e[1], float32(exp.e[1])), Pow(v.e[2], float32(exp.e[2])), Pow(v.e[3], float32(exp.e[3])))
}

// Exp returns e**x of each component.
func (v Vector4) Exp() Vector4 {
	return Vec4(Exp(v.e[0]), Exp(v.e[1]), Exp(v.e[2]), Exp(v.e[3]))
}

// Exp2 returns 2**x of each component.
func (v Vector4) Exp2() Vector4 {
	return Vec4(Exp2(v.e[0]), Exp2(v.e[1]), Exp2(v.e[2]), Exp2(v.e[3]))
}

// Log returns the natural logarithm of each component.
func (v Vector4) Log() Vector4 {
	return Vec4(Log(v.e[0]), Log(v.e[1]), Log(v.e[2]), Log(v.e[3]))
}

// Log2 returns the binary logarithm of each component.
func (v Vector4) Log2() Vector4 {
	return Vec4(Log2(v.e[0]), Log2(v.e[1]), Log2(v.e[2]), Log2(v.e[3]))
}

// Log10 returns the decimal logarithm of each component.
func (v Vector4) Log10() Vector4 {
	return Vec4(Log10(v.e[0]), Log10(v.e[1]), Log10(v.e[2]), Log10(v.e[3]))
}

// Sqrt returns the square root of each component.
func (v Vector4) Sqrt() Vector4 {
	return Vec4(Sqrt(v.e[0]), Sqrt(v.e[1]), Sqrt(v.e[2]), Sqrt(v.e[3]))
}

// InverseSqrt returns 1/sqrt(x) of each component.
func (v Vector4) InverseSqrt() Vector4 {
	return Vec4(InverseSqrt(v.e[0]), InverseSqrt(v.e[1]), InverseSqrt(v.e[2]), InverseSqrt(v.e[3]))
}

// LogBase returns the logarithm of each component in the given base.
func (v Vector4) LogBase(base float32) Vector4 {
	return Vec4(LogBase(v.e[0], base), LogBase(v.e[1], base), LogBase(v.e[2], base), LogBase(v.e[3], base))
}

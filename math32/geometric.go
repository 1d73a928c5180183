// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Dot returns the dot product of this vector with the given other vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v.e[0]*other.e[0] + v.e[1]*other.e[1]
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector2) LengthSquared() float32 {
	return v.e[0]*v.e[0] + v.e[1]*v.e[1]
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Distance returns the distance between this vector and other.
func (v Vector2) Distance(other Vector2) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between this vector and other.
func (v Vector2) DistanceSquared(other Vector2) float32 {
	return v.Sub(other).LengthSquared()
}

// Normal returns this vector divided by its length (its unit vector).
// The zero vector has no direction and yields NaN components.
func (v Vector2) Normal() Vector2 {
	return v.DivScalar(v.Length())
}

// Reflect returns this vector reflected off the plane with the given unit normal:
// v - 2*dot(v, normal)*normal.
func (v Vector2) Reflect(normal Vector2) Vector2 {
	return v.Sub(normal.MulScalar(2 * v.Dot(normal)))
}

// Refract returns the refraction of this incident vector through a surface
// with the given unit normal and ratio of indices of refraction eta.
// On total internal reflection it returns the zero vector.
func (v Vector2) Refract(normal Vector2, eta float32) Vector2 {
	d := normal.Dot(v)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return Vector2{}
	}
	return v.MulScalar(eta).Sub(normal.MulScalar(eta*d + Sqrt(k)))
}

// FaceForward returns this normal if dot(nref, incident) < 0 and its negation
// otherwise, orienting it against the incident vector.
func (v Vector2) FaceForward(incident, nref Vector2) Vector2 {
	if nref.Dot(incident) < 0 {
		return v
	}
	return v.Negate()
}

// Dot returns the dot product of this vector with the given other vector.
func (v Vector3) Dot(other Vector3) float32 {
	return v.e[0]*other.e[0] + v.e[1]*other.e[1] + v.e[2]*other.e[2]
}

// Cross returns the right-handed cross product of this vector with other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vec3(v.e[1]*other.e[2]-v.e[2]*other.e[1], v.e[2]*other.e[0]-v.e[0]*other.e[2], v.e[0]*other.e[1]-v.e[1]*other.e[0])
}

// LengthSquared returns the length squared of this vector.
func (v Vector3) LengthSquared() float32 {
	return v.e[0]*v.e[0] + v.e[1]*v.e[1] + v.e[2]*v.e[2]
}

// Length returns the length (magnitude) of this vector.
func (v Vector3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Distance returns the distance between this vector and other.
func (v Vector3) Distance(other Vector3) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between this vector and other.
func (v Vector3) DistanceSquared(other Vector3) float32 {
	return v.Sub(other).LengthSquared()
}

// Normal returns this vector divided by its length (its unit vector).
// The zero vector has no direction and yields NaN components.
func (v Vector3) Normal() Vector3 {
	return v.DivScalar(v.Length())
}

// Reflect returns this vector reflected off the plane with the given unit normal:
// v - 2*dot(v, normal)*normal.
func (v Vector3) Reflect(normal Vector3) Vector3 {
	return v.Sub(normal.MulScalar(2 * v.Dot(normal)))
}

// Refract returns the refraction of this incident vector through a surface
// with the given unit normal and ratio of indices of refraction eta.
// On total internal reflection it returns the zero vector.
func (v Vector3) Refract(normal Vector3, eta float32) Vector3 {
	d := normal.Dot(v)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return Vector3{}
	}
	return v.MulScalar(eta).Sub(normal.MulScalar(eta*d + Sqrt(k)))
}

// FaceForward returns this normal if dot(nref, incident) < 0 and its negation
// otherwise, orienting it against the incident vector.
func (v Vector3) FaceForward(incident, nref Vector3) Vector3 {
	if nref.Dot(incident) < 0 {
		return v
	}
	return v.Negate()
}

// Dot returns the dot product of this vector with the given other vector.
func (v Vector4) Dot(other Vector4) float32 {
	return v.e[0]*other.e[0] + v.e[1]*other.e[1] + v.e[2]*other.e[2] + v.e[3]*other.e[3]
}

// LengthSquared returns the length squared of this vector.
func (v Vector4) LengthSquared() float32 {
	return v.e[0]*v.e[0] + v.e[1]*v.e[1] + v.e[2]*v.e[2] + v.e[3]*v.e[3]
}

// Length returns the length (magnitude) of this vector.
func (v Vector4) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// Distance returns the distance between this vector and other.
func (v Vector4) Distance(other Vector4) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between this vector and other.
func (v Vector4) DistanceSquared(other Vector4) float32 {
	return v.Sub(other).LengthSquared()
}

// Normal returns this vector divided by its length (its unit vector).
// The zero vector has no direction and yields NaN components.
func (v Vector4) Normal() Vector4 {
	return v.DivScalar(v.Length())
}

// Reflect returns this vector reflected off the plane with the given unit normal:
// v - 2*dot(v, normal)*normal.
func (v Vector4) Reflect(normal Vector4) Vector4 {
	return v.Sub(normal.MulScalar(2 * v.Dot(normal)))
}

// Refract returns the refraction of this incident vector through a surface
// with the given unit normal and ratio of indices of refraction eta.
// On total internal reflection it returns the zero vector.
func (v Vector4) Refract(normal Vector4, eta float32) Vector4 {
	d := normal.Dot(v)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return Vector4{}
	}
	return v.MulScalar(eta).Sub(normal.MulScalar(eta*d + Sqrt(k)))
}

// FaceForward returns this normal if dot(nref, incident) < 0 and its negation
// otherwise, orienting it against the incident vector.
func (v Vector4) FaceForward(incident, nref Vector4) Vector4 {
	if nref.Dot(incident) < 0 {
		return v
	}
	return v.Negate()
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// ToFixed converts a float32 value to a fixed.Int26_6 value
func ToFixed(x float32) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

// FromFixed converts a fixed.Int26_6 value to a float32
func FromFixed(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(pt image.Point) Vector2 {
	return Vec2(float32(pt.X), float32(pt.Y))
}

// Vector2FromFixed returns a new [Vector2] from the given [fixed.Point26_6].
func Vector2FromFixed(pt fixed.Point26_6) Vector2 {
	return Vec2(FromFixed(pt.X), FromFixed(pt.Y))
}

// ToPoint returns the vector as an [image.Point], truncating each component.
func (v Vector2) ToPoint() image.Point {
	return image.Pt(int(v.e[0]), int(v.e[1]))
}

// ToFixed returns the vector as a [fixed.Point26_6].
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: ToFixed(v.e[0]), Y: ToFixed(v.e[1])}
}

// Vector2iFromPoint returns a new [Vector2i] from the given [image.Point].
func Vector2iFromPoint(pt image.Point) Vector2i {
	return Vec2i(int32(pt.X), int32(pt.Y))
}

// ToPoint returns the vector as an [image.Point].
func (v Vector2i) ToPoint() image.Point {
	return image.Pt(int(v.e[0]), int(v.e[1]))
}

// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Box3 represents a 3D axis-aligned bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
// Like the vectors, it is a value: every operation returns a new box.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Empty returns a new empty [Box3], with the minimum at +Infinity and
// the maximum at -Infinity, so that expanding it by a point yields that point.
func B3Empty() Box3 {
	return Box3{Vector3PositiveInfinity, Vector3NegativeInfinity}
}

// B3FromPoints returns the smallest [Box3] containing all of the given points.
// It is empty when there are no points.
func B3FromPoints(points ...Vector3) Box3 {
	b := B3Empty()
	for _, p := range points {
		b = b.ExpandByPoint(p)
	}
	return b
}

func (b Box3) String() string {
	return fmt.Sprintf("[%v, %v]", b.Min, b.Max)
}

// IsEmpty returns true if this bounding box is empty (max < min on any coord).
func (b Box3) IsEmpty() bool {
	return b.Max.e[0] < b.Min.e[0] || b.Max.e[1] < b.Min.e[1] || b.Max.e[2] < b.Min.e[2]
}

// ExpandByPoint returns this bounding box expanded to include the given point.
func (b Box3) ExpandByPoint(point Vector3) Box3 {
	return Box3{b.Min.Min(point), b.Max.Max(point)}
}

// ExpandByBox returns this bounding box expanded to include the given box.
func (b Box3) ExpandByBox(box Box3) Box3 {
	return b.ExpandByPoint(box.Min).ExpandByPoint(box.Max)
}

// ExpandByScalar returns this bounding box grown by s on every side.
func (b Box3) ExpandByScalar(s float32) Box3 {
	return Box3{b.Min.SubScalar(s), b.Max.AddScalar(s)}
}

// Center returns the center of the bounding box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns if this bounding box contains the specified point.
// Points on the boundary are contained.
func (b Box3) ContainsPoint(point Vector3) bool {
	for i := 0; i < 3; i++ {
		if point.e[i] < b.Min.e[i] || point.e[i] > b.Max.e[i] {
			return false
		}
	}
	return true
}

// ContainsBox returns if this bounding box contains other box.
func (b Box3) ContainsBox(box Box3) bool {
	return b.ContainsPoint(box.Min) && b.ContainsPoint(box.Max)
}

// IntersectsBox returns if other box intersects this one.
func (b Box3) IntersectsBox(other Box3) bool {
	// using 6 splitting planes to rule out intersections.
	for i := 0; i < 3; i++ {
		if other.Max.e[i] < b.Min.e[i] || other.Min.e[i] > b.Max.e[i] {
			return false
		}
	}
	return true
}

// ClampPoint returns the specified point clamped inside this box.
func (b Box3) ClampPoint(point Vector3) Vector3 {
	return point.Clamp(b.Min, b.Max)
}

// DistanceToPoint returns the distance from this box to the specified point.
// It is zero for points inside the box.
func (b Box3) DistanceToPoint(point Vector3) float32 {
	return b.ClampPoint(point).Distance(point)
}

// Intersect returns the intersection with other box.
func (b Box3) Intersect(other Box3) Box3 {
	return Box3{other.Min.Max(b.Min), other.Max.Min(b.Max)}
}

// Union returns the union with other box.
func (b Box3) Union(other Box3) Box3 {
	return Box3{other.Min.Min(b.Min), other.Max.Max(b.Max)}
}

// Translate returns translated position of this box by offset.
func (b Box3) Translate(offset Vector3) Box3 {
	return Box3{b.Min.Add(offset), b.Max.Add(offset)}
}

// MulMatrix4 transforms the corners of this bounding box as points by the
// given affine matrix and returns the box spanning the transformed corners.
func (b Box3) MulMatrix4(m Matrix4) Box3 {
	nb := Box3{m.Row(3).XYZ(), m.Row(3).XYZ()}
	for i := 0; i < 3; i++ {
		row := m.Row(i).XYZ()
		lo, hi := row.MulScalar(b.Min.e[i]), row.MulScalar(b.Max.e[i])
		nb.Min = nb.Min.Add(lo.Min(hi))
		nb.Max = nb.Max.Add(lo.Max(hi))
	}
	return nb
}

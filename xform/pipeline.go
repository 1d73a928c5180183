// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xform composes declarative transform pipelines into
// [math32.Matrix4] values. A pipeline is an ordered list of translate,
// rotate and scale steps read from a TOML or YAML file:
//
//	name = "arm"
//
//	[[steps]]
//	op = "translate"
//	vector = [1.0, 2.0, 3.0]
//
//	[[steps]]
//	op = "rotate"
//	vector = [0.0, 0.0, 1.0]
//	angle = 45.0
//	degrees = true
//
// Steps accumulate in file order, so the matrix above equals
// math32.Matrix4Identity.Translate(...).Rotate(...).
package xform

import (
	"fmt"

	"cogentcore.org/vkmath/base/errors"
	"cogentcore.org/vkmath/math32"
)

var (
	// ErrUnknownOp is returned for a step whose op is not one of the [Op] values.
	ErrUnknownOp = errors.New("xform: unknown op")

	// ErrVectorLength is returned for a step or box with the wrong number of components.
	ErrVectorLength = errors.New("xform: wrong vector length")

	// ErrZeroAxis is returned for a rotate step around the zero vector.
	ErrZeroAxis = errors.New("xform: rotation axis is zero")

	// ErrUnknownFormat is returned for a file that is neither TOML nor YAML.
	ErrUnknownFormat = errors.New("xform: unknown format")
)

// Op is the kind of transform a [Step] applies.
type Op string

const (
	// Translate moves by Vector.
	Translate Op = "translate"

	// Rotate turns by Angle around the axis Vector.
	Rotate Op = "rotate"

	// Scale scales each axis by the matching component of Vector.
	Scale Op = "scale"
)

// Step is one transform of a [Pipeline].
type Step struct {
	Op Op `toml:"op" yaml:"op"`

	// Vector is the translation, rotation axis or scale factors.
	Vector []float32 `toml:"vector" yaml:"vector"`

	// Angle is the rotation angle, in radians unless Degrees is set.
	Angle float32 `toml:"angle,omitempty" yaml:"angle,omitempty"`

	// Degrees indicates that Angle is in degrees.
	Degrees bool `toml:"degrees,omitempty" yaml:"degrees,omitempty"`
}

// Pipeline is an ordered list of transform steps.
type Pipeline struct {
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`

	// Box is an optional bounding box, as min x, y, z then max x, y, z,
	// to report after transformation.
	Box []float32 `toml:"box,omitempty" yaml:"box,omitempty"`

	Steps []Step `toml:"steps" yaml:"steps"`
}

// Validate checks the step without applying it.
func (s *Step) Validate() error {
	switch s.Op {
	case Translate, Rotate, Scale:
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, s.Op)
	}
	if len(s.Vector) != 3 {
		return fmt.Errorf("%w: %s needs 3 components, got %d", ErrVectorLength, s.Op, len(s.Vector))
	}
	if s.Op == Rotate && s.vector() == math32.Vector3Zero {
		return ErrZeroAxis
	}
	return nil
}

func (s *Step) vector() math32.Vector3 {
	return math32.Vector3FromSlice(s.Vector, 0)
}

// Radians returns the rotation angle in radians.
func (s *Step) Radians() float32 {
	if s.Degrees {
		return math32.DegToRad(s.Angle)
	}
	return s.Angle
}

// Apply composes the step into m. The step must be valid.
func (s *Step) Apply(m *math32.MutableMatrix4) {
	switch s.Op {
	case Translate:
		m.SetTranslate(s.vector())
	case Rotate:
		m.SetRotate(s.Radians(), s.vector())
	case Scale:
		m.SetScale(s.vector())
	}
}

// Validate checks every step and the box, returning the first error
// with the index of the offending step.
func (p *Pipeline) Validate() error {
	if p.Box != nil && len(p.Box) != 6 {
		return fmt.Errorf("box: %w: needs 6 components, got %d", ErrVectorLength, len(p.Box))
	}
	for i := range p.Steps {
		if err := p.Steps[i].Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// Compose validates the pipeline and folds its steps, in order,
// into the identity matrix.
func (p *Pipeline) Compose() (math32.Matrix4, error) {
	if err := p.Validate(); err != nil {
		return math32.Matrix4{}, err
	}
	m := math32.NewMutableMatrix4()
	for i := range p.Steps {
		p.Steps[i].Apply(m)
	}
	return m.ToImmutable(), nil
}

// Bounds returns the pipeline box transformed by m, and false
// if the pipeline has no box.
func (p *Pipeline) Bounds(m math32.Matrix4) (math32.Box3, bool) {
	if len(p.Box) != 6 {
		return math32.Box3{}, false
	}
	b := math32.Box3{Min: math32.Vector3FromSlice(p.Box, 0), Max: math32.Vector3FromSlice(p.Box, 3)}
	return b.MulMatrix4(m), true
}

// Uniform returns the 16 elements of m in row-major order,
// ready for upload as a float uniform.
func Uniform(m math32.Matrix4) []float32 {
	return m.ToSlice()
}

// UniformBits returns the IEEE 754 bit patterns of the row-major
// elements of m, with NaNs canonicalized, for integer buffers.
func UniformBits(m math32.Matrix4) []int32 {
	a := m.Array()
	bits := make([]int32, len(a))
	for i, e := range a {
		bits[i] = math32.ToBits(e)
	}
	return bits
}

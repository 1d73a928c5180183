// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/vkmath/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is an interface for standard decoder types
type Decoder interface {
	// Decode decodes from io.Reader specified at creation
	Decode(v any) error
}

// DecoderFunc is a function that creates a new Decoder for given reader
type DecoderFunc func(r io.Reader) Decoder

// Format is a pipeline file format.
type Format int32

const (
	// TOML is the TOML format, with the steps as an array of tables.
	TOML Format = iota

	// YAML is the YAML format, with the steps as a sequence of mappings.
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// NewDecoder returns a [DecoderFunc] for the format.
// Both formats reject fields that a [Pipeline] does not have.
func (f Format) NewDecoder() (DecoderFunc, error) {
	switch f {
	case TOML:
		return func(r io.Reader) Decoder {
			return toml.NewDecoder(r).DisallowUnknownFields()
		}, nil
	case YAML:
		return func(r io.Reader) Decoder {
			d := yaml.NewDecoder(r)
			d.KnownFields(true)
			return d
		}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// FormatForFile returns the format of the given file based on its extension:
// .toml, or .yaml / .yml.
func FormatForFile(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
}

// Open reads a [Pipeline] from the given file, in the format given
// by its extension.
func Open(filename string) (*Pipeline, error) {
	f, err := FormatForFile(filename)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	p, err := Read(bufio.NewReader(fp), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}

// OpenFS reads a [Pipeline] from the given file in the fs.FS filesystem
// (e.g., for embed files).
func OpenFS(fsys fs.FS, filename string) (*Pipeline, error) {
	f, err := FormatForFile(filename)
	if err != nil {
		return nil, err
	}
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	p, err := Read(bufio.NewReader(fp), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}

// Read reads a [Pipeline] in the given format from the reader.
// The steps are validated but not composed.
func Read(r io.Reader, f Format) (*Pipeline, error) {
	df, err := f.NewDecoder()
	if err != nil {
		return nil, err
	}
	p := &Pipeline{}
	if err := df(r).Decode(p); err != nil {
		if errors.Is(err, io.EOF) {
			return p, nil
		}
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ReadBytes reads a [Pipeline] in the given format from the bytes.
func ReadBytes(data []byte, f Format) (*Pipeline, error) {
	return Read(bytes.NewReader(data), f)
}

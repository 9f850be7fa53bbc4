// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenefile reads textual scene descriptions in TOML or YAML
// and turns them into fields ready to be combined into a scene.
package scenefile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/scenedata/scene"
	"cogentcore.org/scenedata/scenetools"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for a file extension or format name
	// that is not a supported description format.
	ErrUnknownFormat = errors.New("unknown scene description format")

	// ErrValueCount is returned when a field lists a number of values
	// that does not match its entries.
	ErrValueCount = errors.New("wrong number of values")

	// ErrValueRange is returned when a value or object key does not
	// fit its type.
	ErrValueRange = errors.New("value out of range for its type")

	// ErrSharedMapping is returned when a field shares the mapping of
	// a field that is not listed before it, or also lists its own keys.
	ErrSharedMapping = errors.New("invalid shared mapping")
)

//go:generate core generate

// Formats are the supported description formats.
type Formats int32 //enums:enum

const (
	// TOML is the format of .toml files.
	TOML Formats = iota

	// YAML is the format of .yaml and .yml files.
	YAML
)

// FormatFor returns the format for the extension of the given filename.
func FormatFor(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("scenefile.FormatFor: %q: %w", filename, ErrUnknownFormat)
}

// Description is a scene described as a list of fields.
type Description struct {

	// MappingType is the mapping type of the combined scene, and the
	// default mapping type of fields.
	MappingType scene.MappingTypes `toml:"mappingType" yaml:"mappingType"`

	// MappingBound is the exclusive upper bound on object keys.
	MappingBound uint64 `toml:"mappingBound" yaml:"mappingBound"`

	Fields []FieldDesc `toml:"fields" yaml:"fields"`
}

// FieldDesc describes one field.
type FieldDesc struct {
	Name scene.FieldName `toml:"name" yaml:"name"`

	// MappingType of the keys, if different from the scene mapping type.
	MappingType *scene.MappingTypes `toml:"mappingType,omitempty" yaml:"mappingType,omitempty"`

	Type      scene.FieldTypes `toml:"type" yaml:"type"`
	ArraySize int              `toml:"arraySize,omitempty" yaml:"arraySize,omitempty"`

	// Flags, separated by |.
	Flags scene.FieldFlags `toml:"flags,omitempty" yaml:"flags,omitempty"`

	// Mapping lists the object keys.
	Mapping []uint64 `toml:"mapping,omitempty" yaml:"mapping,omitempty"`

	// Values lists the values of all entries, component by component:
	// a Vector3 entry takes three values, an array entry ArraySize times
	// as many.
	Values []float64 `toml:"values,omitempty" yaml:"values,omitempty"`

	// Placeholder marks a field whose columns are reserved but not given.
	Placeholder bool `toml:"placeholder,omitempty" yaml:"placeholder,omitempty"`

	// Size is the number of entries of a placeholder, or of an implicit
	// mapping without listed keys.
	Size int `toml:"size,omitempty" yaml:"size,omitempty"`

	// ShareMapping names an earlier field whose mapping this field shares.
	ShareMapping string `toml:"shareMapping,omitempty" yaml:"shareMapping,omitempty"`
}

// Open reads the description in the given file, in the format
// given by its extension.
func Open(filename string) (*Description, error) {
	format, err := FormatFor(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("scenefile.Open: %s: %w", filename, err)
	}
	return d, nil
}

// Read reads a description in the given format. Unknown keys are errors.
func Read(r io.Reader, format Formats) (*Description, error) {
	d := &Description{}
	switch format {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(d); err != nil {
			return nil, err
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(d); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("scenefile.Read: %v: %w", format, ErrUnknownFormat)
	}
	return d, nil
}

// ReadBytes reads a description in the given format from bytes.
func ReadBytes(b []byte, format Formats) (*Description, error) {
	return Read(bytes.NewReader(b), format)
}

// Write writes the description in the given format.
func (d *Description) Write(w io.Writer, format Formats) error {
	switch format {
	case TOML:
		return toml.NewEncoder(w).Encode(d)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("scenefile.Write: %v: %w", format, ErrUnknownFormat)
}

// Fields returns the field descriptors of all described fields, with
// columns holding the described keys and values. Fields naming the same
// shared mapping get the same mapping [scene.Column].
func (d *Description) Fields() ([]scene.FieldData, error) {
	fields := make([]scene.FieldData, 0, len(d.Fields))
	byName := map[string]int{}
	for i := range d.Fields {
		fd, err := d.field(&d.Fields[i], fields, byName)
		if err != nil {
			return nil, fmt.Errorf("scenefile.Description.Fields: field %d (%v): %w", i, d.Fields[i].Name, err)
		}
		byName[fd.Name.String()] = len(fields)
		fields = append(fields, fd)
	}
	return fields, nil
}

func (d *Description) field(desc *FieldDesc, fields []scene.FieldData, byName map[string]int) (scene.FieldData, error) {
	mt := d.MappingType
	if desc.MappingType != nil {
		mt = *desc.MappingType
	}
	fd := scene.FieldData{
		Name:        desc.Name,
		MappingType: mt,
		Type:        desc.Type,
		ArraySize:   desc.ArraySize,
		Flags:       desc.Flags,
	}
	if desc.Placeholder {
		fd.Size = desc.Size
		return fd, nil
	}

	switch {
	case desc.ShareMapping != "":
		name, err := scene.ParseFieldName(desc.ShareMapping)
		if err != nil {
			return fd, err
		}
		idx, has := byName[name.String()]
		if !has || len(desc.Mapping) > 0 {
			return fd, fmt.Errorf("%q: %w", desc.ShareMapping, ErrSharedMapping)
		}
		shared := fields[idx]
		fd.MappingType = shared.MappingType
		fd.Mapping = shared.Mapping
		fd.Size = shared.Size
	case len(desc.Mapping) == 0 && fd.Flags.HasFlag(scene.ImplicitMapping):
		fd.Size = desc.Size
	default:
		col, err := keyColumn(mt, desc.Mapping)
		if err != nil {
			return fd, err
		}
		fd.Mapping = col
		fd.Size = len(desc.Mapping)
	}

	col, err := valueColumn(desc.Type, desc.Values, fd.Size*max(desc.ArraySize, 1))
	if err != nil {
		return fd, err
	}
	fd.Data = col
	return fd, nil
}

// Scene returns the described fields combined into a new scene.
func (d *Description) Scene() (*scene.Scene, error) {
	fields, err := d.Fields()
	if err != nil {
		return nil, err
	}
	return scenetools.CombineFields(d.MappingType, d.MappingBound, fields)
}

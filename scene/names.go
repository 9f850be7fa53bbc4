// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
)

// FieldName identifies a field of a scene. The builtin names cover the
// common scene graph fields; [Custom] creates application-defined names.
// Names are opaque to this package apart from [Parent], which the
// hierarchy queries rely on.
type FieldName uint32

const (
	// Parent maps an object to its parent object, or -1 for a root.
	Parent FieldName = iota + 1
	Transformation
	Translation
	Rotation
	Scaling
	Mesh
	MeshMaterial
	Light
	Camera
	Skin
	ImporterState

	// customBase is the first custom field name.
	customBase FieldName = 1 << 31
)

var builtinFieldNames = map[FieldName]string{
	Parent:         "Parent",
	Transformation: "Transformation",
	Translation:    "Translation",
	Rotation:       "Rotation",
	Scaling:        "Scaling",
	Mesh:           "Mesh",
	MeshMaterial:   "MeshMaterial",
	Light:          "Light",
	Camera:         "Camera",
	Skin:           "Skin",
	ImporterState:  "ImporterState",
}

// Custom returns the custom field name with the given index.
func Custom(index uint32) FieldName {
	return customBase + FieldName(index&^uint32(customBase))
}

// IsCustom returns whether the name was created with [Custom].
func (fn FieldName) IsCustom() bool {
	return fn >= customBase
}

// CustomIndex returns the index passed to [Custom], or false
// for a builtin name.
func (fn FieldName) CustomIndex() (uint32, bool) {
	if !fn.IsCustom() {
		return 0, false
	}
	return uint32(fn - customBase), true
}

func (fn FieldName) String() string {
	if idx, ok := fn.CustomIndex(); ok {
		return fmt.Sprintf("Custom(%d)", idx)
	}
	if nm, ok := builtinFieldNames[fn]; ok {
		return nm
	}
	return fmt.Sprintf("FieldName(%d)", uint32(fn))
}

// ParseFieldName parses a builtin name such as "Mesh", or a custom
// name in the "Custom(15)" form produced by [FieldName.String].
func ParseFieldName(s string) (FieldName, error) {
	s = strings.TrimSpace(s)
	for fn, nm := range builtinFieldNames {
		if strings.EqualFold(nm, s) {
			return fn, nil
		}
	}
	if rest, ok := strings.CutPrefix(s, "Custom("); ok {
		if num, ok := strings.CutSuffix(rest, ")"); ok {
			idx, err := strconv.ParseUint(num, 10, 31)
			if err != nil {
				return 0, fmt.Errorf("scene.ParseFieldName: invalid custom field index in %q: %w", s, err)
			}
			return Custom(uint32(idx)), nil
		}
	}
	return 0, errors.New("scene.ParseFieldName: unknown field name " + strconv.Quote(s))
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (fn FieldName) MarshalText() ([]byte, error) { return []byte(fn.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (fn *FieldName) UnmarshalText(text []byte) error {
	v, err := ParseFieldName(string(text))
	if err != nil {
		return err
	}
	*fn = v
	return nil
}

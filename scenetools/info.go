// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenetools

import (
	"fmt"
	"strings"

	"cogentcore.org/scenedata/scene"
)

// SceneInfo is a summary of the layout of a [scene.Scene].
type SceneInfo struct {
	MappingType  scene.MappingTypes
	MappingBound uint64

	// DataSize is the arena size in bytes.
	DataSize int

	Fields []FieldInfo
}

// FieldInfo is a summary of one field of a scene.
type FieldInfo struct {
	Name      scene.FieldName
	Type      scene.FieldTypes
	ArraySize int
	Size      int
	Flags     scene.FieldFlags

	// SharesMappingWith is the first earlier field with the same
	// mapping, if HasSharedMapping.
	SharesMappingWith scene.FieldName
	HasSharedMapping  bool
}

// Info returns a summary of the given scene.
func Info(sc *scene.Scene) SceneInfo {
	si := SceneInfo{
		MappingType:  sc.MappingType(),
		MappingBound: sc.MappingBound(),
		DataSize:     len(sc.Data()),
	}
	first := map[*scene.Column]scene.FieldName{}
	for _, fd := range sc.Fields() {
		fi := FieldInfo{Name: fd.Name, Type: fd.Type, ArraySize: fd.ArraySize, Size: fd.Size, Flags: fd.Flags}
		if name, has := first[fd.Mapping]; has {
			fi.SharesMappingWith = name
			fi.HasSharedMapping = true
		} else {
			first[fd.Mapping] = fd.Name
		}
		si.Fields = append(si.Fields, fi)
	}
	return si
}

func (si SceneInfo) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Bound: %d @ %v, %d fields, %d bytes\n", si.MappingBound, si.MappingType, len(si.Fields), si.DataSize)
	for _, fi := range si.Fields {
		fmt.Fprintf(&b, "  %v @ %v", fi.Name, fi.Type)
		if fi.ArraySize != 0 {
			fmt.Fprintf(&b, "[%d]", fi.ArraySize)
		}
		fmt.Fprintf(&b, ", %d entries", fi.Size)
		if fi.Flags != 0 {
			fmt.Fprintf(&b, ", flags: %v", fi.Flags)
		}
		if fi.HasSharedMapping {
			fmt.Fprintf(&b, ", mapping shared with %v", fi.SharesMappingWith)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

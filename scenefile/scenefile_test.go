// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"bytes"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/scenedata/scene"
	"cogentcore.org/scenedata/scenetools"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFor(t *testing.T) {
	f, err := FormatFor("a/b.TOML")
	assert.NoError(t, err)
	assert.Equal(t, TOML, f)
	f, err = FormatFor("b.yml")
	assert.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = FormatFor("b.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestOpen(t *testing.T) {
	toml, err := Open("testdata/split.toml")
	require.NoError(t, err)
	yaml, err := Open("testdata/split.yaml")
	require.NoError(t, err)
	if diff := cmp.Diff(toml, yaml); diff != "" {
		t.Errorf("toml and yaml descriptions differ (-toml +yaml):\n%s", diff)
	}

	assert.Equal(t, scene.MappingUint16, toml.MappingType)
	assert.Equal(t, uint64(10), toml.MappingBound)
	require.Len(t, toml.Fields, 6)
	assert.Equal(t, scene.MeshMaterial, toml.Fields[2].Name)
	assert.Equal(t, "Mesh", toml.Fields[2].ShareMapping)
	require.NotNil(t, toml.Fields[3].MappingType)
	assert.Equal(t, scene.MappingUint8, *toml.Fields[3].MappingType)
	assert.True(t, toml.Fields[4].Flags.HasFlag(scene.OrderedMapping))
	assert.True(t, toml.Fields[5].Placeholder)

	_, err = Open("testdata/missing.toml")
	assert.Error(t, err)
}

func TestFields(t *testing.T) {
	d, err := Open("testdata/split.yaml")
	require.NoError(t, err)
	fields, err := d.Fields()
	require.NoError(t, err)
	require.Len(t, fields, 6)

	assert.Same(t, fields[1].Mapping, fields[2].Mapping)
	assert.Equal(t, 3, fields[2].Size)
	assert.Equal(t, scene.MappingUint8, fields[3].MappingType)
	assert.True(t, fields[5].IsPlaceholder())
	assert.Equal(t, 2, fields[5].Size)

	sc, err := d.Scene()
	require.NoError(t, err)
	assert.Equal(t, 6, sc.FieldCount())
	assert.Equal(t, []scene.ObjectParent{{1, -1}, {2, 1}}, sc.ParentsAsArray())
	assert.Equal(t, []uint32{3, 7, 4}, scene.Values[uint32](sc, 1))
	assert.Equal(t, []int32{0, -1, 2}, scene.Values[int32](sc, 2))
	assert.Equal(t, []uint16{1}, scene.Mapping[uint16](sc, 3))
	assert.Equal(t, []math32.Vector3{{1, 2, 3}, {0.5, 0.25, -1}}, scene.Values[math32.Vector3](sc, 4))
	assert.Equal(t, []uint16{0, 0}, scene.Values[uint16](sc, 5))
	assert.Same(t, sc.Field(1).Mapping, sc.Field(2).Mapping)

	split, err := scenetools.ConvertToSingleFunctionObjects(sc, []scene.FieldName{scene.Mesh}, []scene.FieldName{scene.Skin}, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 10, 2}, split.MappingAsArray(2))
	assert.Equal(t, []uint64{1, 10}, split.MappingAsArray(3))
}

func TestImplicitFields(t *testing.T) {
	d, err := Open("testdata/custom.yaml")
	require.NoError(t, err)
	sc, err := d.Scene()
	require.NoError(t, err)

	assert.Equal(t, scene.Custom(7), sc.Field(0).Name)
	assert.Equal(t, []uint8{0, 1, 2}, scene.Mapping[uint8](sc, 0))
	assert.Equal(t, []float32{0, 0.5, 1, 1.5, 2, 2.5}, scene.Values[float32](sc, 0))
	assert.Equal(t, []uint64{1, 2}, sc.ChildrenFor(0))
	assert.True(t, sc.FieldFlags(scene.Parent).HasFlag(scene.OrderedMapping))
}

func TestWriteRead(t *testing.T) {
	d, err := Open("testdata/split.toml")
	require.NoError(t, err)
	for _, format := range FormatsValues() {
		t.Run(format.String(), func(t *testing.T) {
			var b bytes.Buffer
			require.NoError(t, d.Write(&b, format))
			back, err := ReadBytes(b.Bytes(), format)
			require.NoError(t, err)
			if diff := cmp.Diff(d, back); diff != "" {
				t.Errorf("description changed in a round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFieldsErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		err  error
	}{
		{"values", "mappingType: Uint8\nfields:\n  - {name: Mesh, type: Uint8, mapping: [1, 2], values: [1]}\n", ErrValueCount},
		{"vector values", "mappingType: Uint8\nfields:\n  - {name: Translation, type: Vector2, mapping: [1], values: [1, 2, 3]}\n", ErrValueCount},
		{"int range", "mappingType: Uint8\nfields:\n  - {name: Mesh, type: Int8, mapping: [1], values: [200]}\n", ErrValueRange},
		{"fraction", "mappingType: Uint8\nfields:\n  - {name: Mesh, type: Uint16, mapping: [1], values: [1.5]}\n", ErrValueRange},
		{"key range", "mappingType: Uint8\nfields:\n  - {name: Mesh, type: Uint8, mapping: [300], values: [1]}\n", ErrValueRange},
		{"shared later", "mappingType: Uint8\nfields:\n  - {name: MeshMaterial, type: Int32, shareMapping: Mesh, values: []}\n  - {name: Mesh, type: Uint8, mapping: [], values: []}\n", ErrSharedMapping},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := ReadBytes([]byte(test.src), YAML)
			require.NoError(t, err)
			_, err = d.Fields()
			assert.ErrorIs(t, err, test.err)
		})
	}
}

func TestReadErrors(t *testing.T) {
	_, err := ReadBytes([]byte("mappingType: Uint8\nunknown: 1\n"), YAML)
	assert.Error(t, err)
	_, err = ReadBytes([]byte("mappingType = 'Uint8'\nunknown = 1\n"), TOML)
	assert.Error(t, err)
	_, err = ReadBytes([]byte("mappingType: Uint9\n"), YAML)
	assert.Error(t, err)
	_, err = ReadBytes([]byte("fields:\n  - name: Bogus\n"), YAML)
	assert.Error(t, err)
}

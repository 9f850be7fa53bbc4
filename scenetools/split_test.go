// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenetools

import (
	"math"
	"testing"

	"cogentcore.org/scenedata/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parents(pairs ...int64) []scene.ObjectParent {
	out := make([]scene.ObjectParent, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, scene.ObjectParent{Object: uint64(pairs[i]), Parent: pairs[i+1]})
	}
	return out
}

func valuesOf[V scene.Value](t *testing.T, sc *scene.Scene, name scene.FieldName) []V {
	t.Helper()
	id, has := sc.FieldID(name)
	require.True(t, has, name.String())
	return scene.Values[V](sc, id)
}

func mappingOf(t *testing.T, sc *scene.Scene, name scene.FieldName) []uint64 {
	t.Helper()
	id, has := sc.FieldID(name)
	require.True(t, has, name.String())
	return sc.MappingAsArray(id)
}

func TestConvertToSingleFunctionObjects(t *testing.T) {
	tests := []struct {
		name          string
		bound         uint64
		expectedBound uint64
		parentFlags   []scene.FieldFlags
		expectedFlags scene.FieldFlags
	}{
		{"original bound smaller than new", 64, 70, nil, 0},
		{"original bound larger than new", 96, 96, nil, 0},
		{"ordered parents", 64, 70, []scene.FieldFlags{scene.OrderedMapping}, scene.NewFieldFlags(scene.OrderedMapping)},
		{"implicit parents", 64, 70, []scene.FieldFlags{scene.ImplicitMapping}, scene.NewFieldFlags(scene.OrderedMapping)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			parent := scene.NewField(scene.Parent, []uint16{2, 15, 21, 22, 23}, []int8{-1, -1, -1, 21, 22}, test.parentFlags...)
			mesh := scene.NewField(scene.Mesh, []uint16{15, 23, 23, 23, 2, 15, 21}, []uint32{6, 1, 2, 4, 7, 3, 5})
			material := scene.NewSharedField(scene.MeshMaterial, mesh, []int32{4, 0, 3, 2, 2, 1, -1})
			camera := scene.NewField(scene.Camera, []uint16{22, 2}, []uint32{1, 5})
			light := scene.NewField(scene.Light, []uint16{0, 1}, []uint8{15, 23}, scene.ImplicitMapping)
			foo := scene.NewField(scene.Custom(15), []uint16{0, 1, 2, 3}, []float32{1, 2, 3, 4}, scene.ImplicitMapping)
			foo2 := scene.NewField(scene.Custom(16), []uint16{0, 1}, []int8{-5, -7}, scene.ImplicitMapping)
			foo3 := scene.NewSharedField(scene.Custom(17), foo, []int8{-1, -2, 7, 2}, scene.ImplicitMapping)
			original := combine(t, scene.MappingUint16, test.bound, parent, mesh, material, camera, light, foo, foo2, foo3)

			sc, err := ConvertToSingleFunctionObjects(original, []scene.FieldName{
				scene.Mesh, scene.Camera, scene.Light, scene.Custom(15), scene.ImporterState,
			}, nil, 63)
			require.NoError(t, err)
			assert.Equal(t, test.expectedBound, sc.MappingBound())
			assert.Equal(t, scene.MappingUint16, sc.MappingType())

			assert.Equal(t, []uint64{67}, sc.ChildrenFor(0))
			assert.Equal(t, []uint64{68}, sc.ChildrenFor(1))
			assert.Equal(t, []uint64{66, 69}, sc.ChildrenFor(2))
			assert.Equal(t, []uint64{65}, sc.ChildrenFor(15))
			assert.Equal(t, []uint64{63, 64}, sc.ChildrenFor(23))

			assert.Equal(t, parents(2, -1, 15, -1, 21, -1, 22, 21, 23, 22, 63, 23, 64, 23, 65, 15, 66, 2, 67, 0, 68, 1, 69, 2), sc.ParentsAsArray())
			assert.Equal(t, test.expectedFlags, sc.FieldFlags(scene.Parent))
			pfd, _ := sc.FieldByName(scene.Parent)
			assert.Equal(t, scene.Int32, pfd.Type)

			assert.Equal(t, []uint64{15, 23, 63, 64, 2, 65, 21}, mappingOf(t, sc, scene.Mesh))
			assert.Equal(t, []uint32{6, 1, 2, 4, 7, 3, 5}, valuesOf[uint32](t, sc, scene.Mesh))
			assert.Equal(t, []uint64{15, 23, 63, 64, 2, 65, 21}, mappingOf(t, sc, scene.MeshMaterial))
			assert.Equal(t, []int32{4, 0, 3, 2, 2, 1, -1}, valuesOf[int32](t, sc, scene.MeshMaterial))
			assert.Equal(t, scene.FieldFlags(0), sc.FieldFlags(scene.Mesh))
			assert.Equal(t, scene.FieldFlags(0), sc.FieldFlags(scene.MeshMaterial))

			assert.Equal(t, []uint64{22, 66}, mappingOf(t, sc, scene.Camera))
			assert.Equal(t, []uint32{1, 5}, valuesOf[uint32](t, sc, scene.Camera))

			assert.Equal(t, []uint64{0, 1}, mappingOf(t, sc, scene.Light))
			assert.Equal(t, []uint8{15, 23}, valuesOf[uint8](t, sc, scene.Light))
			assert.Equal(t, scene.FieldFlags(0), sc.FieldFlags(scene.Light))

			assert.Equal(t, []uint64{67, 68, 69, 3}, mappingOf(t, sc, scene.Custom(15)))
			assert.Equal(t, []float32{1, 2, 3, 4}, valuesOf[float32](t, sc, scene.Custom(15)))
			assert.Equal(t, scene.FieldFlags(0), sc.FieldFlags(scene.Custom(15)))

			assert.Equal(t, []uint64{0, 1}, mappingOf(t, sc, scene.Custom(16)))
			assert.Equal(t, []int8{-5, -7}, valuesOf[int8](t, sc, scene.Custom(16)))
			assert.Equal(t, scene.FieldFlags(0), sc.FieldFlags(scene.Custom(16)))

			assert.Equal(t, []uint64{67, 68, 69, 3}, mappingOf(t, sc, scene.Custom(17)))
			assert.Equal(t, []int8{-1, -2, 7, 2}, valuesOf[int8](t, sc, scene.Custom(17)))
			assert.Equal(t, scene.FieldFlags(0), sc.FieldFlags(scene.Custom(17)))

			// The input scene is left untouched.
			assert.Equal(t, []uint64{15, 23, 23, 23, 2, 15, 21}, mappingOf(t, original, scene.Mesh))
		})
	}
}

func TestConvertFieldsToCopy(t *testing.T) {
	parent := scene.NewField(scene.Parent, []uint16{2, 15, 21, 22}, []int8{-1, -1, -1, 21})
	mesh := scene.NewField(scene.Mesh, []uint16{15, 21, 21, 21, 22, 15}, []uint32{6, 1, 2, 4, 7, 3})
	skin := scene.NewField(scene.Skin, []uint16{22, 21}, []uint32{5, 13})
	foo := scene.NewArrayField(scene.Custom(15), []uint64{15, 23, 15, 21}, []int32{0, 1, 2, 3, 4, 5, 6, 7}, 2)
	transformation := scene.NewPlaceholderField(scene.Transformation, scene.MappingUint16, scene.Matrix4, 0, 0)
	original := combine(t, scene.MappingUint16, 50, parent, mesh, skin, foo, transformation)

	sc, err := ConvertToSingleFunctionObjects(original,
		[]scene.FieldName{scene.ImporterState, scene.Mesh},
		[]scene.FieldName{scene.Skin, scene.Custom(15), scene.Camera}, 60)
	require.NoError(t, err)
	assert.Equal(t, uint64(63), sc.MappingBound())

	assert.Equal(t, parents(2, -1, 15, -1, 21, -1, 22, 21, 60, 21, 61, 21, 62, 15), sc.ParentsAsArray())
	assert.Equal(t, []uint64{15, 21, 60, 61, 22, 62}, mappingOf(t, sc, scene.Mesh))
	assert.Equal(t, []uint32{6, 1, 2, 4, 7, 3}, valuesOf[uint32](t, sc, scene.Mesh))
	assert.Equal(t, []uint64{22, 21, 60, 61}, mappingOf(t, sc, scene.Skin))
	assert.Equal(t, []uint32{5, 13, 13, 13}, valuesOf[uint32](t, sc, scene.Skin))
	assert.Equal(t, []uint64{15, 23, 15, 21, 60, 61, 62, 62}, mappingOf(t, sc, scene.Custom(15)))
	assert.Equal(t, []int32{0, 1, 2, 3, 4, 5, 6, 7, 6, 7, 6, 7, 0, 1, 4, 5}, valuesOf[int32](t, sc, scene.Custom(15)))
	assert.Equal(t, 2, sc.Field(3).ArraySize)
	assert.Equal(t, 0, sc.FieldSize(scene.Transformation))
	assert.False(t, sc.HasField(scene.Camera))
}

func TestConvertSplitsConflictingFields(t *testing.T) {
	parent := scene.NewField(scene.Parent, []uint8{5}, []int8{-1})
	mesh := scene.NewField(scene.Mesh, []uint8{5}, []uint32{1})
	camera := scene.NewField(scene.Camera, []uint8{5}, []uint32{2})
	skin := scene.NewField(scene.Skin, []uint8{5}, []uint32{9})
	original := combine(t, scene.MappingUint8, 8, parent, mesh, camera, skin)

	sc, err := ConvertToSingleFunctionObjects(original,
		[]scene.FieldName{scene.Mesh, scene.Camera}, []scene.FieldName{scene.Skin}, 10)
	require.NoError(t, err)

	assert.Equal(t, 4, sc.FieldCount())
	assert.Equal(t, 1, sc.FieldSize(scene.Mesh))
	assert.Equal(t, 1, sc.FieldSize(scene.Camera))
	assert.Equal(t, original.FieldSize(scene.Parent)+1, sc.FieldSize(scene.Parent))

	assert.Equal(t, []uint64{5}, mappingOf(t, sc, scene.Mesh))
	assert.Equal(t, []uint64{10}, mappingOf(t, sc, scene.Camera))
	p, has := sc.ParentFor(10)
	assert.True(t, has)
	assert.Equal(t, int64(5), p)

	assert.Equal(t, []uint64{5, 10}, mappingOf(t, sc, scene.Skin))
	assert.Equal(t, []uint32{9, 9}, valuesOf[uint32](t, sc, scene.Skin))
}

func TestConvertConcreteScenario(t *testing.T) {
	parent := scene.NewField(scene.Parent, []uint32{1}, []int32{-1})
	mesh := scene.NewField(scene.Mesh, []uint32{1, 1}, []uint32{3, 7})
	skin := scene.NewField(scene.Skin, []uint32{1}, []uint32{0})
	original := combine(t, scene.MappingUint32, 10, parent, mesh, skin)

	sc, err := ConvertToSingleFunctionObjects(original,
		[]scene.FieldName{scene.Mesh}, []scene.FieldName{scene.Skin}, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), sc.MappingBound())
	assert.Equal(t, parents(1, -1, 10, 1), sc.ParentsAsArray())
	assert.Equal(t, []uint64{1, 10}, mappingOf(t, sc, scene.Mesh))
	assert.Equal(t, []uint32{3, 7}, valuesOf[uint32](t, sc, scene.Mesh))
	assert.Equal(t, []uint64{1, 10}, mappingOf(t, sc, scene.Skin))
	assert.Equal(t, []uint32{0, 0}, valuesOf[uint32](t, sc, scene.Skin))
}

func TestConvertSharedMappingListedTwice(t *testing.T) {
	parent := scene.NewField(scene.Parent, []uint16{1, 2}, []int16{-1, 1})
	mesh := scene.NewField(scene.Mesh, []uint16{1, 1, 2}, []uint32{3, 7, 8})
	material := scene.NewSharedField(scene.MeshMaterial, mesh, []int32{0, 1, 2})
	original := combine(t, scene.MappingUint16, 4, parent, mesh, material)

	sc, err := ConvertToSingleFunctionObjects(original,
		[]scene.FieldName{scene.Mesh, scene.MeshMaterial}, nil, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), sc.MappingBound())
	assert.Equal(t, parents(1, -1, 2, 1, 4, 1), sc.ParentsAsArray())
	assert.Equal(t, []uint64{1, 4, 2}, mappingOf(t, sc, scene.Mesh))
	assert.Equal(t, []uint64{1, 4, 2}, mappingOf(t, sc, scene.MeshMaterial))
	assert.Same(t, sc.Field(1).Mapping, sc.Field(2).Mapping)
}

func TestConvertNothingToSplit(t *testing.T) {
	parent := scene.NewField(scene.Parent, []uint8{0, 1}, []int8{-1, 0}, scene.ImplicitMapping)
	mesh := scene.NewField(scene.Mesh, []uint8{0, 1}, []uint8{4, 5}, scene.OrderedMapping)
	original := combine(t, scene.MappingUint8, 2, parent, mesh)

	sc, err := ConvertToSingleFunctionObjects(original, []scene.FieldName{scene.Mesh}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), sc.MappingBound())
	assert.Equal(t, original.ParentsAsArray(), sc.ParentsAsArray())
	assert.Equal(t, []uint64{0, 1}, mappingOf(t, sc, scene.Mesh))
	assert.Equal(t, scene.NewFieldFlags(scene.OrderedMapping), sc.FieldFlags(scene.Parent))
}

func TestConvertParentOrderLost(t *testing.T) {
	parent := scene.NewField(scene.Parent, []uint8{1, 7}, []int8{-1, 1}, scene.OrderedMapping)
	mesh := scene.NewField(scene.Mesh, []uint8{7, 7}, []uint8{4, 5})
	original := combine(t, scene.MappingUint8, 8, parent, mesh)

	sc, err := ConvertToSingleFunctionObjects(original, []scene.FieldName{scene.Mesh}, nil, 3)
	require.NoError(t, err)
	assert.Equal(t, parents(1, -1, 7, 1, 3, 7), sc.ParentsAsArray())
	assert.Equal(t, scene.FieldFlags(0), sc.FieldFlags(scene.Parent))
}

func TestConvertWidensMappingType(t *testing.T) {
	parent := scene.NewField(scene.Parent, []uint8{3}, []int8{-1})
	mesh := scene.NewField(scene.Mesh, []uint8{3, 3}, []uint8{4, 5})
	original := combine(t, scene.MappingUint8, 4, parent, mesh)

	sc, err := ConvertToSingleFunctionObjects(original, []scene.FieldName{scene.Mesh}, nil, 1000)
	require.NoError(t, err)
	assert.Equal(t, scene.MappingUint16, sc.MappingType())
	assert.Equal(t, uint64(1001), sc.MappingBound())
	assert.Equal(t, []uint64{3, 1000}, mappingOf(t, sc, scene.Mesh))
	assert.Equal(t, parents(3, -1, 1000, 3), sc.ParentsAsArray())
}

func TestConvertErrors(t *testing.T) {
	parent := scene.NewField(scene.Parent, []uint16{1}, []int16{-1})
	mesh := scene.NewField(scene.Mesh, []uint16{1, 1}, []uint32{3, 7})
	skin := scene.NewField(scene.Skin, []uint16{1}, []uint32{0})
	original := combine(t, scene.MappingUint16, 10, parent, mesh, skin)

	_, err := ConvertToSingleFunctionObjects(original, []scene.FieldName{scene.Parent}, nil, 10)
	assert.ErrorIs(t, err, ErrParentInFieldSet)
	_, err = ConvertToSingleFunctionObjects(original, []scene.FieldName{scene.Mesh}, []scene.FieldName{scene.Parent}, 10)
	assert.ErrorIs(t, err, ErrParentInFieldSet)
	_, err = ConvertToSingleFunctionObjects(original, []scene.FieldName{scene.Mesh}, []scene.FieldName{scene.Mesh}, 10)
	assert.ErrorIs(t, err, ErrFieldSetOverlap)
	_, err = ConvertToSingleFunctionObjects(original, []scene.FieldName{scene.Mesh}, nil, math.MaxUint32)
	assert.ErrorIs(t, err, ErrObjectCountOverflow)

	orphan := combine(t, scene.MappingUint16, 10, mesh)
	_, err = ConvertToSingleFunctionObjects(orphan, []scene.FieldName{scene.Mesh}, nil, 10)
	assert.ErrorIs(t, err, ErrNoParentField)

	outside := scene.NewField(scene.Mesh, []uint16{12}, []uint32{3})
	broken, err := scene.NewScene(scene.MappingUint16, 10, nil, []scene.FieldData{parent, outside})
	require.NoError(t, err)
	_, err = ConvertToSingleFunctionObjects(broken, []scene.FieldName{scene.Mesh}, nil, 10)
	assert.ErrorIs(t, err, ErrObjectOutOfBounds)
	_, err = ConvertToSingleFunctionObjects(broken, nil, []scene.FieldName{scene.Mesh}, 10)
	assert.ErrorIs(t, err, ErrObjectOutOfBounds)
}

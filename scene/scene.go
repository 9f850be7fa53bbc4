// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the data model of a scene graph stored as
// fields: named columns associating object keys with typed values,
// all owned by a single contiguous arena.
package scene

import (
	"fmt"
	"sort"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/ordmap"
)

var (
	// ErrMappingBound is returned when a mapping type cannot represent
	// all object keys below the mapping bound.
	ErrMappingBound = errors.New("mapping type too small for the mapping bound")

	// ErrDuplicateField is returned when a scene has two fields
	// with the same name.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrMappingTypeMismatch is returned when a field of a scene uses
	// a different mapping type than the scene.
	ErrMappingTypeMismatch = errors.New("field mapping type differs from the scene mapping type")

	// ErrFieldDataSize is returned when a column does not hold the
	// number of entries declared by its field.
	ErrFieldDataSize = errors.New("field data size mismatch")

	// ErrMissingData is returned when a field of a scene has no
	// mapping or value column.
	ErrMissingData = errors.New("field has no data")

	// ErrParentType is returned when the [Parent] field is not
	// a scalar signed integer field.
	ErrParentType = errors.New("parent field must be a scalar signed integer")
)

// Scene is a set of fields whose columns all live in one owned arena.
// Values are immutable from the point of view of this package, but
// callers may write into the columns, typically to fill placeholders.
type Scene struct {
	mappingType  MappingTypes
	mappingBound uint64
	data         []byte
	fields       *ordmap.Map[FieldName, FieldData]
}

// NewScene returns a scene taking ownership of the given data, with
// fields viewing into it. All fields must use the given mapping type.
func NewScene(mappingType MappingTypes, mappingBound uint64, data []byte, fields []FieldData) (*Scene, error) {
	if !mappingType.CanRepresent(mappingBound) {
		return nil, fmt.Errorf("scene.NewScene: %v cannot represent %d objects: %w", mappingType, mappingBound, ErrMappingBound)
	}
	sc := &Scene{
		mappingType:  mappingType,
		mappingBound: mappingBound,
		data:         data,
		fields:       ordmap.New[FieldName, FieldData](),
	}
	for i, fd := range fields {
		if _, has := sc.fields.IndexByKeyTry(fd.Name); has {
			return nil, fmt.Errorf("scene.NewScene: field %d (%v): %w", i, fd.Name, ErrDuplicateField)
		}
		if fd.MappingType != mappingType {
			return nil, fmt.Errorf("scene.NewScene: field %d (%v) uses %v in a %v scene: %w", i, fd.Name, fd.MappingType, mappingType, ErrMappingTypeMismatch)
		}
		if fd.Mapping == nil || fd.Data == nil {
			return nil, fmt.Errorf("scene.NewScene: field %d (%v): %w", i, fd.Name, ErrMissingData)
		}
		if err := fd.CheckSizes(); err != nil {
			return nil, fmt.Errorf("scene.NewScene: field %d: %w", i, err)
		}
		if fd.Name == Parent && (!fd.Type.IsSignedInteger() || fd.ArraySize != 0) {
			return nil, fmt.Errorf("scene.NewScene: field %d is %v[%d]: %w", i, fd.Type, fd.ArraySize, ErrParentType)
		}
		sc.fields.Add(fd.Name, fd)
	}
	return sc, nil
}

// MappingType returns the type of all object keys in the scene.
func (sc *Scene) MappingType() MappingTypes { return sc.mappingType }

// MappingBound returns the exclusive upper bound on object keys.
func (sc *Scene) MappingBound() uint64 { return sc.mappingBound }

// Data returns the arena holding all field columns.
func (sc *Scene) Data() []byte { return sc.data }

// FieldCount returns the number of fields.
func (sc *Scene) FieldCount() int { return sc.fields.Len() }

// Field returns the field at the given index.
func (sc *Scene) Field(id int) FieldData { return sc.fields.ValueByIndex(id) }

// Fields returns all fields, in order.
func (sc *Scene) Fields() []FieldData { return sc.fields.Values() }

// FieldID returns the index of the field with the given name.
func (sc *Scene) FieldID(name FieldName) (int, bool) {
	return sc.fields.IndexByKeyTry(name)
}

// HasField returns whether the scene has a field with the given name.
func (sc *Scene) HasField(name FieldName) bool {
	_, has := sc.FieldID(name)
	return has
}

// FieldByName returns the field with the given name.
func (sc *Scene) FieldByName(name FieldName) (FieldData, bool) {
	return sc.fields.ValueByKeyTry(name)
}

// FieldSize returns the number of entries of the field with the
// given name, or 0 if there is no such field.
func (sc *Scene) FieldSize(name FieldName) int {
	fd, _ := sc.FieldByName(name)
	return fd.Size
}

// FieldFlags returns the flags of the field with the given name.
func (sc *Scene) FieldFlags(name FieldName) FieldFlags {
	fd, _ := sc.FieldByName(name)
	return fd.Flags
}

// MappingView returns a mutable key view over the mapping of a field.
func (sc *Scene) MappingView(id int) KeyView {
	fd := sc.Field(id)
	return fd.Keys()
}

// MappingAsArray returns the object keys of a field widened to uint64.
func (sc *Scene) MappingAsArray(id int) []uint64 {
	return sc.MappingView(id).AsArray()
}

// RawMapping returns the mutable mapping bytes of a field.
func (sc *Scene) RawMapping(id int) []byte {
	return sc.Field(id).Mapping.Bytes()
}

// RawValues returns the mutable value bytes of a field.
func (sc *Scene) RawValues(id int) []byte {
	return sc.Field(id).Data.Bytes()
}

// Mapping returns the object keys of a field as a mutable slice.
// It panics if K does not match the scene mapping type.
func Mapping[K Key](sc *Scene, id int) []K {
	if mt := MappingTypeOf[K](); mt != sc.mappingType {
		panic(fmt.Sprintf("scene.Mapping: %v requested from a %v scene", mt, sc.mappingType))
	}
	return FromBytes[K](sc.RawMapping(id))
}

// Values returns the values of a field as a mutable slice. Array fields
// return ArraySize consecutive elements per entry. It panics if V does
// not match the field type.
func Values[V Value](sc *Scene, id int) []V {
	fd := sc.Field(id)
	if ft := FieldTypeOf[V](); ft != fd.Type {
		panic(fmt.Sprintf("scene.Values: %v requested from %v field %v", ft, fd.Type, fd.Name))
	}
	return FromBytes[V](fd.Data.Bytes())
}

// ObjectParent is one entry of the [Parent] field.
type ObjectParent struct {
	Object uint64
	Parent int64
}

// ParentsAsArray returns the entries of the [Parent] field, with parents
// widened to int64, or nil if there is no such field.
func (sc *Scene) ParentsAsArray() []ObjectParent {
	id, has := sc.FieldID(Parent)
	if !has {
		return nil
	}
	fd := sc.Field(id)
	keys := fd.Keys()
	out := make([]ObjectParent, fd.Size)
	for i := range out {
		out[i] = ObjectParent{Object: keys.At(i), Parent: intAt(fd.Type, fd.Data.Bytes(), i)}
	}
	return out
}

// SetParentAt sets the parent value of the given entry of the [Parent]
// field, converting it to the field type.
func (sc *Scene) SetParentAt(i int, parent int64) {
	id, has := sc.FieldID(Parent)
	if !has {
		panic("scene.Scene.SetParentAt: scene has no parent field")
	}
	fd := sc.Field(id)
	setIntAt(fd.Type, fd.Data.Bytes(), i, parent)
}

// FieldObjectOffset returns the index of the first entry of the field at
// or after offset that is attached to the given object. Implicit mappings
// are looked up directly, ordered mappings with a binary search and others
// with a linear scan.
func (sc *Scene) FieldObjectOffset(id int, object uint64, offset int) (int, bool) {
	fd := sc.Field(id)
	if offset < 0 || offset > fd.Size {
		panic(fmt.Sprintf("scene.Scene.FieldObjectOffset: offset %d out of range for a field of size %d", offset, fd.Size))
	}
	keys := fd.Keys()
	switch {
	case fd.Flags.HasFlag(ImplicitMapping):
		if object >= uint64(offset) && object < uint64(fd.Size) {
			return int(object), true
		}
		return 0, false
	case fd.Flags.HasFlag(OrderedMapping):
		lo := offset + sort.Search(fd.Size-offset, func(i int) bool {
			return keys.At(offset+i) >= object
		})
		if lo < fd.Size && keys.At(lo) == object {
			return lo, true
		}
		return 0, false
	}
	for i := offset; i < fd.Size; i++ {
		if keys.At(i) == object {
			return i, true
		}
	}
	return 0, false
}

// HasFieldObject returns whether the given object has at least one
// entry in the field.
func (sc *Scene) HasFieldObject(id int, object uint64) bool {
	_, has := sc.FieldObjectOffset(id, object, 0)
	return has
}

// ParentFor returns the parent of the given object, -1 for a root, and
// false if the object is not in the [Parent] field.
func (sc *Scene) ParentFor(object uint64) (int64, bool) {
	id, has := sc.FieldID(Parent)
	if !has {
		return 0, false
	}
	i, has := sc.FieldObjectOffset(id, object, 0)
	if !has {
		return 0, false
	}
	fd := sc.Field(id)
	return intAt(fd.Type, fd.Data.Bytes(), i), true
}

// ChildrenFor returns the objects whose parent is the given object,
// in field order. Passing -1 returns the root objects.
func (sc *Scene) ChildrenFor(object int64) []uint64 {
	var children []uint64
	for _, op := range sc.ParentsAsArray() {
		if op.Parent == object {
			children = append(children, op.Object)
		}
	}
	return children
}

// Release returns the arena and the fields viewing into it, leaving
// the scene empty.
func (sc *Scene) Release() ([]byte, []FieldData) {
	data, fields := sc.data, sc.Fields()
	sc.data = nil
	sc.fields = ordmap.New[FieldName, FieldData]()
	return data, fields
}

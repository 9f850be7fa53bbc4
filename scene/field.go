// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "fmt"

// FieldData describes one field: a named association from object keys
// to per-object values. It does not own its data; the columns view
// memory owned by the caller or by a [Scene].
type FieldData struct {

	// Name of the field.
	Name FieldName

	// MappingType is the type of the object keys in Mapping.
	MappingType MappingTypes

	// Mapping holds Size object keys, or is nil for a placeholder.
	// Fields sharing the same *Column share their object mapping.
	Mapping *Column

	// Type is the type of the values in Data.
	Type FieldTypes

	// Data holds Size values (each an array of ArraySize elements
	// when ArraySize is non-zero), or is nil for a placeholder.
	Data *Column

	// ArraySize is 0 for one value per entry, or the fixed number
	// of values per entry.
	ArraySize int

	// Size is the number of entries.
	Size int

	// Flags describe the mapping.
	Flags FieldFlags
}

// NewField returns a field associating the given object keys
// with the given values. The slices are viewed, not copied.
func NewField[K Key, V Value](name FieldName, mapping []K, values []V, flags ...FieldFlags) FieldData {
	return FieldData{
		Name:        name,
		MappingType: MappingTypeOf[K](),
		Mapping:     ColumnOf(mapping),
		Type:        FieldTypeOf[V](),
		Data:        ColumnOf(values),
		Size:        len(mapping),
		Flags:       NewFieldFlags(flags...),
	}
}

// NewArrayField returns a field with arraySize values per object key.
// The values slice holds len(mapping)*arraySize elements.
func NewArrayField[K Key, V Value](name FieldName, mapping []K, values []V, arraySize int, flags ...FieldFlags) FieldData {
	fd := NewField(name, mapping, values, flags...)
	fd.ArraySize = arraySize
	return fd
}

// NewSharedField returns a field whose object mapping is shared with
// the given field, associating its keys with the given values.
func NewSharedField[V Value](name FieldName, mappingOf FieldData, values []V, flags ...FieldFlags) FieldData {
	return FieldData{
		Name:        name,
		MappingType: mappingOf.MappingType,
		Mapping:     mappingOf.Mapping,
		Type:        FieldTypeOf[V](),
		Data:        ColumnOf(values),
		Size:        mappingOf.Size,
		Flags:       NewFieldFlags(flags...),
	}
}

// NewPlaceholderField returns a field with neither mapping nor value
// data, reserving space for size entries to be filled in after the
// field is combined into a [Scene].
func NewPlaceholderField(name FieldName, mappingType MappingTypes, fieldType FieldTypes, arraySize, size int, flags ...FieldFlags) FieldData {
	return FieldData{
		Name:        name,
		MappingType: mappingType,
		Type:        fieldType,
		ArraySize:   arraySize,
		Size:        size,
		Flags:       NewFieldFlags(flags...),
	}
}

// MappingStride returns the number of bytes of one object key.
func (fd *FieldData) MappingStride() int {
	return fd.MappingType.Size()
}

// DataStride returns the number of bytes of the values of one entry.
func (fd *FieldData) DataStride() int {
	return fd.Type.Size() * max(fd.ArraySize, 1)
}

// IsOrdered returns whether the object keys are known to be
// monotonically increasing.
func (fd *FieldData) IsOrdered() bool {
	return fd.Flags.HasFlag(OrderedMapping) || fd.Flags.HasFlag(ImplicitMapping)
}

// IsPlaceholder returns whether the field has neither mapping
// nor value data.
func (fd *FieldData) IsPlaceholder() bool {
	return fd.Mapping == nil && fd.Data == nil
}

// Keys returns a key view over the mapping data, which is empty
// for a placeholder mapping.
func (fd *FieldData) Keys() KeyView {
	return NewKeyView(fd.MappingType, fd.Mapping.Bytes())
}

// CheckSizes returns an error if a non-placeholder column does not
// hold exactly Size entries.
func (fd *FieldData) CheckSizes() error {
	if fd.Size < 0 || fd.ArraySize < 0 {
		return fmt.Errorf("field %v has negative size %d or array size %d: %w", fd.Name, fd.Size, fd.ArraySize, ErrFieldDataSize)
	}
	if fd.Mapping != nil && fd.Mapping.Len() != fd.Size*fd.MappingStride() {
		return fmt.Errorf("field %v mapping has %d bytes, expected %d for %d entries: %w", fd.Name, fd.Mapping.Len(), fd.Size*fd.MappingStride(), fd.Size, ErrFieldDataSize)
	}
	if fd.Data != nil && fd.Data.Len() != fd.Size*fd.DataStride() {
		return fmt.Errorf("field %v data has %d bytes, expected %d for %d entries: %w", fd.Name, fd.Data.Len(), fd.Size*fd.DataStride(), fd.Size, ErrFieldDataSize)
	}
	return nil
}

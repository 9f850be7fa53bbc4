// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"encoding/binary"
	"unsafe"
)

// Column is a view over the bytes of one mapping or value column.
// The identity of a *Column is what marks two fields as sharing
// the same object mapping: fields constructed with the same *Column
// keep sharing storage after being combined. A nil *Column in a
// [FieldData] is a placeholder, reserving space without any data.
type Column struct {
	data []byte
}

// NewColumn returns a column viewing the given bytes. The bytes must be
// aligned for the element type the column is used with.
func NewColumn(data []byte) *Column {
	return &Column{data: data}
}

// ColumnOf returns a column viewing the memory of the given values
// without copying them.
func ColumnOf[T any](values []T) *Column {
	return &Column{data: ToBytes(values)}
}

// Bytes returns the bytes of the column, or nil for a placeholder.
func (c *Column) Bytes() []byte {
	if c == nil {
		return nil
	}
	return c.data
}

// Len returns the number of bytes in the column.
func (c *Column) Len() int {
	return len(c.Bytes())
}

// IsAligned returns whether the column start satisfies the given alignment.
func (c *Column) IsAligned(align int) bool {
	if c.Len() == 0 || align <= 1 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(c.data)))%uintptr(align) == 0
}

// ToBytes returns the memory of the given slice as bytes, without copying.
func ToBytes[T any](src []T) []byte {
	if len(src) == 0 {
		return []byte{}
	}
	var v T
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(src))), len(src)*int(unsafe.Sizeof(v)))
}

// FromBytes returns the given bytes as a slice of T, without copying.
// The bytes must be aligned for T; any trailing partial element is dropped.
func FromBytes[T any](src []byte) []T {
	var v T
	sz := int(unsafe.Sizeof(v))
	if len(src) < sz || sz == 0 {
		return []T{}
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(src))), len(src)/sz)
}

// KeyView is a view over a mapping column that reads and writes
// object keys of any [MappingTypes] as uint64.
type KeyView struct {
	Type MappingTypes
	data []byte
}

// NewKeyView returns a key view over the given bytes.
func NewKeyView(mt MappingTypes, data []byte) KeyView {
	return KeyView{Type: mt, data: data}
}

// Len returns the number of keys.
func (kv KeyView) Len() int {
	return len(kv.data) / kv.Type.Size()
}

// At returns the key at the given index.
func (kv KeyView) At(i int) uint64 {
	switch kv.Type {
	case MappingUint8:
		return uint64(kv.data[i])
	case MappingUint16:
		return uint64(binary.NativeEndian.Uint16(kv.data[i*2:]))
	case MappingUint32:
		return uint64(binary.NativeEndian.Uint32(kv.data[i*4:]))
	}
	return binary.NativeEndian.Uint64(kv.data[i*8:])
}

// Set sets the key at the given index, truncating it to the key width.
func (kv KeyView) Set(i int, key uint64) {
	switch kv.Type {
	case MappingUint8:
		kv.data[i] = uint8(key)
	case MappingUint16:
		binary.NativeEndian.PutUint16(kv.data[i*2:], uint16(key))
	case MappingUint32:
		binary.NativeEndian.PutUint32(kv.data[i*4:], uint32(key))
	default:
		binary.NativeEndian.PutUint64(kv.data[i*8:], key)
	}
}

// AsArray returns all keys widened to uint64.
func (kv KeyView) AsArray() []uint64 {
	out := make([]uint64, kv.Len())
	for i := range out {
		out[i] = kv.At(i)
	}
	return out
}

// intAt reads the signed integer of the given type at the given index.
func intAt(ft FieldTypes, data []byte, i int) int64 {
	switch ft {
	case Int8:
		return int64(int8(data[i]))
	case Int16:
		return int64(int16(binary.NativeEndian.Uint16(data[i*2:])))
	case Int32:
		return int64(int32(binary.NativeEndian.Uint32(data[i*4:])))
	case Int64:
		return int64(binary.NativeEndian.Uint64(data[i*8:]))
	}
	panic("scene: " + ft.String() + " is not a signed integer type")
}

// setIntAt writes the signed integer of the given type at the given index.
func setIntAt(ft FieldTypes, data []byte, i int, v int64) {
	switch ft {
	case Int8:
		data[i] = uint8(int8(v))
	case Int16:
		binary.NativeEndian.PutUint16(data[i*2:], uint16(int16(v)))
	case Int32:
		binary.NativeEndian.PutUint32(data[i*4:], uint32(int32(v)))
	case Int64:
		binary.NativeEndian.PutUint64(data[i*8:], uint64(v))
	default:
		panic("scene: " + ft.String() + " is not a signed integer type")
	}
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"unsafe"

	"cogentcore.org/core/math32"
)

// FieldTypes are the value types a scene field can store per entry.
// Sizes and alignments follow the Go memory layout of the
// corresponding type, so the math32 types can be viewed in place.
type FieldTypes int32 //enums:enum

const (
	Uint8 FieldTypes = iota
	Int8
	Uint16
	Int16
	Uint32
	Int32
	Uint64
	Int64
	Float32
	Float64

	// Vector2 is a [math32.Vector2].
	Vector2

	// Vector3 is a [math32.Vector3].
	Vector3

	// Vector4 is a [math32.Vector4].
	Vector4

	// Vector2i is a [math32.Vector2i].
	Vector2i

	// Vector3i is a [math32.Vector3i].
	Vector3i

	// Quat is a [math32.Quat] rotation.
	Quat

	// Matrix3 is a [math32.Matrix3], typically a 2D transformation.
	Matrix3

	// Matrix4 is a [math32.Matrix4], typically a 3D transformation.
	Matrix4
)

// typeLayout is the size and alignment of a type, in bytes.
type typeLayout struct {
	size  int
	align int
}

func layoutOf[T any]() typeLayout {
	var v T
	return typeLayout{size: int(unsafe.Sizeof(v)), align: int(unsafe.Alignof(v))}
}

var (
	uint8Layout  = layoutOf[uint8]()
	uint16Layout = layoutOf[uint16]()
	uint32Layout = layoutOf[uint32]()
	uint64Layout = layoutOf[uint64]()
)

var fieldTypeLayouts = [FieldTypesN]typeLayout{
	Uint8:    uint8Layout,
	Int8:     layoutOf[int8](),
	Uint16:   uint16Layout,
	Int16:    layoutOf[int16](),
	Uint32:   uint32Layout,
	Int32:    layoutOf[int32](),
	Uint64:   uint64Layout,
	Int64:    layoutOf[int64](),
	Float32:  layoutOf[float32](),
	Float64:  layoutOf[float64](),
	Vector2:  layoutOf[math32.Vector2](),
	Vector3:  layoutOf[math32.Vector3](),
	Vector4:  layoutOf[math32.Vector4](),
	Vector2i: layoutOf[math32.Vector2i](),
	Vector3i: layoutOf[math32.Vector3i](),
	Quat:     layoutOf[math32.Quat](),
	Matrix3:  layoutOf[math32.Matrix3](),
	Matrix4:  layoutOf[math32.Matrix4](),
}

// Size returns the number of bytes of one value of the type.
func (ft FieldTypes) Size() int {
	return fieldTypeLayouts[ft].size
}

// Alignment returns the alignment of one value of the type, in bytes.
func (ft FieldTypes) Alignment() int {
	return fieldTypeLayouts[ft].align
}

// IsSignedInteger returns whether the type is a signed integer scalar,
// which is what the [Parent] field requires.
func (ft FieldTypes) IsSignedInteger() bool {
	switch ft {
	case Int8, Int16, Int32, Int64:
		return true
	}
	return false
}

// Value is the set of Go types that can be stored in a field.
type Value interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 | uint64 | int64 |
		float32 | float64 |
		math32.Vector2 | math32.Vector3 | math32.Vector4 |
		math32.Vector2i | math32.Vector3i |
		math32.Quat | math32.Matrix3 | math32.Matrix4
}

// Key is the set of Go types that can store object keys.
type Key interface {
	uint8 | uint16 | uint32 | uint64
}

// FieldTypeOf returns the field type corresponding to the Go type T.
func FieldTypeOf[T Value]() FieldTypes {
	var v T
	switch any(v).(type) {
	case uint8:
		return Uint8
	case int8:
		return Int8
	case uint16:
		return Uint16
	case int16:
		return Int16
	case uint32:
		return Uint32
	case int32:
		return Int32
	case uint64:
		return Uint64
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	case math32.Vector2:
		return Vector2
	case math32.Vector3:
		return Vector3
	case math32.Vector4:
		return Vector4
	case math32.Vector2i:
		return Vector2i
	case math32.Vector3i:
		return Vector3i
	case math32.Quat:
		return Quat
	case math32.Matrix3:
		return Matrix3
	}
	return Matrix4
}

// MappingTypeOf returns the mapping type corresponding to the Go type K.
func MappingTypeOf[K Key]() MappingTypes {
	var k K
	switch any(k).(type) {
	case uint8:
		return MappingUint8
	case uint16:
		return MappingUint16
	case uint32:
		return MappingUint32
	}
	return MappingUint64
}

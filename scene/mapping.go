// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "math"

//go:generate core generate

// MappingTypes are the unsigned integer types used to store object keys
// (the mapping from field entries to scene objects).
type MappingTypes int32 //enums:enum -trim-prefix Mapping

const (
	// MappingUint8 stores object keys as 8-bit unsigned integers.
	MappingUint8 MappingTypes = iota

	// MappingUint16 stores object keys as 16-bit unsigned integers.
	MappingUint16

	// MappingUint32 stores object keys as 32-bit unsigned integers.
	MappingUint32

	// MappingUint64 stores object keys as 64-bit unsigned integers.
	MappingUint64
)

// Size returns the number of bytes of one object key.
func (mt MappingTypes) Size() int {
	switch mt {
	case MappingUint8:
		return 1
	case MappingUint16:
		return 2
	case MappingUint32:
		return 4
	case MappingUint64:
		return 8
	}
	panic("scene.MappingTypes.Size: invalid mapping type " + mt.String())
}

// Alignment returns the natural alignment of one object key, in bytes.
func (mt MappingTypes) Alignment() int {
	switch mt {
	case MappingUint8:
		return uint8Layout.align
	case MappingUint16:
		return uint16Layout.align
	case MappingUint32:
		return uint32Layout.align
	case MappingUint64:
		return uint64Layout.align
	}
	panic("scene.MappingTypes.Alignment: invalid mapping type " + mt.String())
}

// Max returns the largest object key representable by the mapping type.
func (mt MappingTypes) Max() uint64 {
	switch mt {
	case MappingUint8:
		return math.MaxUint8
	case MappingUint16:
		return math.MaxUint16
	case MappingUint32:
		return math.MaxUint32
	}
	return math.MaxUint64
}

// CanRepresent returns whether all object keys below the given mapping
// bound fit into the mapping type.
func (mt MappingTypes) CanRepresent(bound uint64) bool {
	return bound == 0 || bound-1 <= mt.Max()
}

// MappingTypeFor returns the smallest mapping type able to represent
// every object key below the given mapping bound.
func MappingTypeFor(bound uint64) MappingTypes {
	for _, mt := range MappingTypesValues() {
		if mt.CanRepresent(bound) {
			return mt
		}
	}
	return MappingUint64
}

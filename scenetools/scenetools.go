// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenetools provides operations producing new scenes: packing
// loose fields into one arena with [CombineFields], and splitting objects
// with several mutually exclusive fields into single-function objects with
// [ConvertToSingleFunctionObjects].
package scenetools

import "cogentcore.org/core/base/errors"

var (
	// ErrOffsetOnly is returned for fields whose columns are offsets
	// into data that is not available to the combiner.
	ErrOffsetOnly = errors.New("offset-only fields cannot be combined")

	// ErrSharedMappingSize is returned when two fields share a mapping
	// column but declare a different number of entries.
	ErrSharedMappingSize = errors.New("fields sharing a mapping differ in size")

	// ErrMappingNarrowing is returned when an object key does not fit
	// into the output mapping type.
	ErrMappingNarrowing = errors.New("object key does not fit the mapping type")

	// ErrColumnAlignment is returned when a source mapping column is
	// not aligned for its mapping type.
	ErrColumnAlignment = errors.New("mapping column is misaligned")

	// ErrParentInFieldSet is returned when the parent field is listed
	// among the fields to convert or copy.
	ErrParentInFieldSet = errors.New("the parent field cannot be converted or copied")

	// ErrFieldSetOverlap is returned when a field is listed both
	// to be converted and to be copied.
	ErrFieldSetOverlap = errors.New("field listed both to convert and to copy")

	// ErrNoParentField is returned when splitting a scene without
	// a parent field.
	ErrNoParentField = errors.New("scene has no parent field")

	// ErrObjectCountOverflow is returned when the objects to add do not
	// fit into 32-bit object keys.
	ErrObjectCountOverflow = errors.New("too many objects")

	// ErrObjectOutOfBounds is returned when an object key of a converted
	// or copied field is not below the mapping bound.
	ErrObjectOutOfBounds = errors.New("object key out of the mapping bound")
)

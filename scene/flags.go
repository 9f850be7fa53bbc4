// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// FieldFlags are bit flags describing how a field stores its mapping.
type FieldFlags int64 //enums:bitflag

const (
	// OffsetOnly indicates that the mapping and field data are byte
	// offsets into a separate data blob rather than standalone views.
	// Such fields cannot be combined into a new arena.
	OffsetOnly FieldFlags = iota

	// OrderedMapping indicates that the object keys are monotonically
	// increasing, allowing binary search lookups.
	OrderedMapping

	// ImplicitMapping indicates that the object keys are 0 to N-1 and can
	// be assumed rather than read. It implies [OrderedMapping] for lookups.
	ImplicitMapping
)

// NewFieldFlags returns flags with the given flags set.
func NewFieldFlags(flags ...FieldFlags) FieldFlags {
	var fl FieldFlags
	for _, f := range flags {
		fl.SetFlag(true, f)
	}
	return fl
}

// WithoutMappingOrder returns the flags with both [ImplicitMapping] and
// [OrderedMapping] cleared, for fields whose keys get rewritten.
func (fl FieldFlags) WithoutMappingOrder() FieldFlags {
	fl.SetFlag(false, ImplicitMapping, OrderedMapping)
	return fl
}

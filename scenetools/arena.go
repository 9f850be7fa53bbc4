// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenetools

import (
	"fmt"

	"cogentcore.org/scenedata/scene"
)

// maxAlign is the largest alignment of any mapping or field type,
// and the alignment of the arena base.
const maxAlign = 8

// memSizeAlign returns size rounded up to a multiple of align.
func memSizeAlign(size, align int) int {
	if align <= 1 || size%align == 0 {
		return size
	}
	nb := size / align
	return (nb + 1) * align
}

// memReg is one region of the arena, in bytes.
type memReg struct {
	Offset int
	Size   int
	Align  int
}

// Bytes returns the region within the given arena.
func (mr *memReg) Bytes(arena []byte) []byte {
	return arena[mr.Offset : mr.Offset+mr.Size : mr.Offset+mr.Size]
}

// arenaPlan is the layout of all columns of a combined scene.
type arenaPlan struct {

	// regions in reservation order, with offsets once resolved.
	regions []memReg

	// mapping is the region index of the mapping column of each field.
	mapping []int

	// values is the region index of the value column of each field.
	values []int

	// newMapping records whether a field reserved its own mapping region,
	// as opposed to sharing one reserved by an earlier field.
	newMapping []bool

	// size is the total arena size in bytes.
	size int
}

// reserve appends a region of the given size and alignment,
// returning its index.
func (ap *arenaPlan) reserve(size, align int) int {
	ap.regions = append(ap.regions, memReg{Size: size, Align: align})
	return len(ap.regions) - 1
}

// resolve assigns offsets to all regions by bump allocation,
// padding each region start to its alignment.
func (ap *arenaPlan) resolve() {
	off := 0
	for i := range ap.regions {
		mr := &ap.regions[i]
		off = memSizeAlign(off, mr.Align)
		mr.Offset = off
		off += mr.Size
	}
	ap.size = off
}

// alloc returns a zeroed arena of the planned size. The backing store
// is a []uint64 so the base is aligned for every column type.
func (ap *arenaPlan) alloc() []byte {
	words := make([]uint64, memSizeAlign(ap.size, maxAlign)/maxAlign)
	return scene.ToBytes(words)[:ap.size:ap.size]
}

// mappingBytes returns the mapping column of field i within the arena.
func (ap *arenaPlan) mappingBytes(arena []byte, i int) []byte {
	return ap.regions[ap.mapping[i]].Bytes(arena)
}

// valueBytes returns the value column of field i within the arena.
func (ap *arenaPlan) valueBytes(arena []byte, i int) []byte {
	return ap.regions[ap.values[i]].Bytes(arena)
}

// planArena lays out the mapping and value columns of all fields for the
// given mapping type. Fields whose mapping is the same *Column share one
// mapping region; placeholder mappings always get their own.
func planArena(mappingType scene.MappingTypes, fields []scene.FieldData) (*arenaPlan, error) {
	ap := &arenaPlan{
		mapping:    make([]int, len(fields)),
		values:     make([]int, len(fields)),
		newMapping: make([]bool, len(fields)),
	}
	shared := map[*scene.Column]int{}
	sharedSize := map[*scene.Column]int{}
	for i := range fields {
		fd := &fields[i]
		if fd.Flags.HasFlag(scene.OffsetOnly) {
			return nil, fmt.Errorf("scenetools.planArena: field %d (%v): %w", i, fd.Name, ErrOffsetOnly)
		}
		if reg, has := shared[fd.Mapping]; has {
			if sz := sharedSize[fd.Mapping]; sz != fd.Size {
				return nil, fmt.Errorf("scenetools.planArena: field %d (%v) has %d entries but shares a mapping of %d entries: %w", i, fd.Name, fd.Size, sz, ErrSharedMappingSize)
			}
			ap.mapping[i] = reg
		} else {
			ap.mapping[i] = ap.reserve(fd.Size*mappingType.Size(), mappingType.Alignment())
			ap.newMapping[i] = true
			if fd.Mapping != nil {
				shared[fd.Mapping] = ap.mapping[i]
				sharedSize[fd.Mapping] = fd.Size
			}
		}
		ap.values[i] = ap.reserve(fd.Size*fd.DataStride(), fd.Type.Alignment())
	}
	ap.resolve()
	return ap, nil
}

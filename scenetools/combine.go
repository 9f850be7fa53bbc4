// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenetools

import (
	"fmt"
	"log/slog"
	"runtime"

	"cogentcore.org/scenedata/scene"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// parallelCopySize is the value column size in bytes above which
// columns are copied on separate goroutines.
const parallelCopySize = 1 << 20

// CombineFields packs the given fields into a new [scene.Scene] with the
// given mapping type and bound. All columns are copied into one arena, with
// object keys converted to the mapping type. Fields sharing the same mapping
// [scene.Column] share it in the output as well. Placeholder columns are
// reserved and zeroed, and an implicit mapping without data gets the keys
// 0 to Size-1. The input fields are not modified.
func CombineFields(mappingType scene.MappingTypes, mappingBound uint64, fields []scene.FieldData) (*scene.Scene, error) {
	if !mappingType.CanRepresent(mappingBound) {
		return nil, fmt.Errorf("scenetools.CombineFields: %v cannot represent %d objects: %w", mappingType, mappingBound, scene.ErrMappingBound)
	}
	for i := range fields {
		if err := checkField(mappingType, &fields[i]); err != nil {
			return nil, fmt.Errorf("scenetools.CombineFields: field %d: %w", i, err)
		}
	}
	ap, err := planArena(mappingType, fields)
	if err != nil {
		return nil, err
	}
	arena := ap.alloc()

	for i := range fields {
		if !ap.newMapping[i] {
			continue
		}
		fd := &fields[i]
		dst := ap.mappingBytes(arena, i)
		switch {
		case fd.Mapping != nil:
			copyMapping(mappingType, dst, fd.MappingType, fd.Mapping.Bytes())
		case fd.Flags.HasFlag(scene.ImplicitMapping):
			kv := scene.NewKeyView(mappingType, dst)
			for k := range fd.Size {
				kv.Set(k, uint64(k))
			}
		}
	}
	if err := copyValues(ap, arena, fields); err != nil {
		return nil, err
	}

	cols := make([]*scene.Column, len(ap.regions))
	for i := range ap.regions {
		cols[i] = scene.NewColumn(ap.regions[i].Bytes(arena))
	}
	out := make([]scene.FieldData, len(fields))
	for i, fd := range fields {
		out[i] = scene.FieldData{
			Name:        fd.Name,
			MappingType: mappingType,
			Mapping:     cols[ap.mapping[i]],
			Type:        fd.Type,
			Data:        cols[ap.values[i]],
			ArraySize:   fd.ArraySize,
			Size:        fd.Size,
			Flags:       fd.Flags,
		}
	}
	slog.Debug("scenetools.CombineFields", "mappingType", mappingType, "mappingBound", mappingBound, "fields", len(fields), "regions", len(ap.regions), "bytes", ap.size)
	return scene.NewScene(mappingType, mappingBound, arena, out)
}

// Copy returns a copy of the given scene with its own arena, keeping
// the mapping type, bound, and shared mappings.
func Copy(sc *scene.Scene) (*scene.Scene, error) {
	return CombineFields(sc.MappingType(), sc.MappingBound(), sc.Fields())
}

// checkField returns an error if the field cannot be copied into
// a scene of the given mapping type.
func checkField(mappingType scene.MappingTypes, fd *scene.FieldData) error {
	if err := fd.CheckSizes(); err != nil {
		return err
	}
	if fd.Mapping == nil {
		if fd.Flags.HasFlag(scene.ImplicitMapping) && fd.Size > 0 && uint64(fd.Size-1) > mappingType.Max() {
			return fmt.Errorf("implicit mapping of %v with %d entries does not fit %v: %w", fd.Name, fd.Size, mappingType, ErrMappingNarrowing)
		}
		return nil
	}
	if !fd.Mapping.IsAligned(fd.MappingType.Alignment()) {
		return fmt.Errorf("%v mapping of %v: %w", fd.MappingType, fd.Name, ErrColumnAlignment)
	}
	if fd.MappingType.Size() <= mappingType.Size() {
		return nil
	}
	keys := fd.Keys()
	for k := range keys.Len() {
		if key := keys.At(k); key > mappingType.Max() {
			return fmt.Errorf("key %d of %v at entry %d does not fit %v: %w", key, fd.Name, k, mappingType, ErrMappingNarrowing)
		}
	}
	return nil
}

// copyMapping copies object keys of the source type into the destination,
// converting them to the destination type.
func copyMapping(dstType scene.MappingTypes, dst []byte, srcType scene.MappingTypes, src []byte) {
	if dstType == srcType {
		copy(dst, src)
		return
	}
	switch dstType {
	case scene.MappingUint8:
		castFrom(srcType, src, scene.FromBytes[uint8](dst))
	case scene.MappingUint16:
		castFrom(srcType, src, scene.FromBytes[uint16](dst))
	case scene.MappingUint32:
		castFrom(srcType, src, scene.FromBytes[uint32](dst))
	case scene.MappingUint64:
		castFrom(srcType, src, scene.FromBytes[uint64](dst))
	default:
		panic(fmt.Sprintf("scenetools.copyMapping: invalid mapping type %d", dstType))
	}
}

// castFrom converts keys of the given source type into dst.
func castFrom[D constraints.Unsigned](srcType scene.MappingTypes, src []byte, dst []D) {
	switch srcType {
	case scene.MappingUint8:
		castInto(scene.FromBytes[uint8](src), dst)
	case scene.MappingUint16:
		castInto(scene.FromBytes[uint16](src), dst)
	case scene.MappingUint32:
		castInto(scene.FromBytes[uint32](src), dst)
	case scene.MappingUint64:
		castInto(scene.FromBytes[uint64](src), dst)
	default:
		panic(fmt.Sprintf("scenetools.castFrom: invalid mapping type %d", srcType))
	}
}

// castInto converts each element of src into the corresponding element of dst.
func castInto[S, D constraints.Unsigned](src []S, dst []D) {
	for i, v := range src {
		dst[i] = D(v)
	}
}

// copyValues copies all value columns into the arena byte for byte.
// Large columns are copied concurrently, as their destinations are disjoint.
func copyValues(ap *arenaPlan, arena []byte, fields []scene.FieldData) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range fields {
		src := fields[i].Data.Bytes()
		if len(src) == 0 {
			continue
		}
		dst := ap.valueBytes(arena, i)
		if len(src) < parallelCopySize {
			copy(dst, src)
			continue
		}
		g.Go(func() error {
			copy(dst, src)
			return nil
		})
	}
	return g.Wait()
}

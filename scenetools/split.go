// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenetools

import (
	"fmt"
	"log/slog"
	"math"
	"slices"

	"cogentcore.org/scenedata/scene"
)

// ConvertToSingleFunctionObjects returns a copy of the scene in which every
// object has at most one entry among all fieldsToConvert. Each further entry
// of an object is moved to a new object, numbered from newObjectOffset and
// added to the [scene.Parent] field as a child of the original object.
// Entries of fieldsToCopy attached to the original object are duplicated
// onto each of its new children.
//
// Fields sharing a mapping with a converted field move along with it, so of
// fields attached together (such as a mesh and its material) only one needs
// to be listed. Names not present in the scene are ignored. The result uses
// at least 32-bit parent values, and every field except the parent loses its
// ordered and implicit mapping flags.
func ConvertToSingleFunctionObjects(sc *scene.Scene, fieldsToConvert, fieldsToCopy []scene.FieldName, newObjectOffset uint32) (*scene.Scene, error) {
	convertIDs, copyIDs, err := splitFieldIDs(sc, fieldsToConvert, fieldsToCopy)
	if err != nil {
		return nil, err
	}
	if sc.MappingBound() > math.MaxUint32+1 {
		return nil, fmt.Errorf("scenetools.ConvertToSingleFunctionObjects: mapping bound %d: %w", sc.MappingBound(), ErrObjectCountOverflow)
	}
	parentID, _ := sc.FieldID(scene.Parent)

	counts, err := countAttachments(sc, convertIDs)
	if err != nil {
		return nil, err
	}
	copyCounts, err := countCopies(sc, copyIDs, counts)
	if err != nil {
		return nil, err
	}
	added := objectsToAdd(counts)
	if uint64(newObjectOffset)+added > math.MaxUint32 {
		return nil, fmt.Errorf("scenetools.ConvertToSingleFunctionObjects: %d objects to add at offset %d: %w", added, newObjectOffset, ErrObjectCountOverflow)
	}
	bound := max(sc.MappingBound(), uint64(newObjectOffset)+added)
	mappingType := max(sc.MappingType(), scene.MappingTypeFor(bound))

	fields := extendFields(sc, parentID, copyIDs, copyCounts, added, newObjectOffset, bound)
	out, err := CombineFields(mappingType, bound, fields)
	if err != nil {
		return nil, fmt.Errorf("scenetools.ConvertToSingleFunctionObjects: %w", err)
	}

	populatePrefixes(sc, out, parentID, copyIDs, added, newObjectOffset)
	moved := reassignObjects(sc, out, parentID, convertIDs, copyIDs, newObjectOffset)
	if moved != added {
		panic(fmt.Sprintf("scenetools.ConvertToSingleFunctionObjects: reassigned %d objects, expected %d", moved, added))
	}
	slog.Debug("scenetools.ConvertToSingleFunctionObjects", "converted", len(convertIDs), "copied", len(copyIDs), "objectsAdded", added, "mappingBound", bound, "mappingType", mappingType)
	return out, nil
}

// splitFieldIDs validates the field sets and returns the IDs of the
// fields present in the scene. Converted fields sharing a mapping are
// listed once, under the first of them.
func splitFieldIDs(sc *scene.Scene, fieldsToConvert, fieldsToCopy []scene.FieldName) (convertIDs, copyIDs []int, err error) {
	for _, name := range fieldsToConvert {
		if name == scene.Parent {
			return nil, nil, fmt.Errorf("scenetools.ConvertToSingleFunctionObjects: fields to convert: %w", ErrParentInFieldSet)
		}
	}
	for _, name := range fieldsToCopy {
		if name == scene.Parent {
			return nil, nil, fmt.Errorf("scenetools.ConvertToSingleFunctionObjects: fields to copy: %w", ErrParentInFieldSet)
		}
		if slices.Contains(fieldsToConvert, name) {
			return nil, nil, fmt.Errorf("scenetools.ConvertToSingleFunctionObjects: %v: %w", name, ErrFieldSetOverlap)
		}
	}
	if !sc.HasField(scene.Parent) {
		return nil, nil, fmt.Errorf("scenetools.ConvertToSingleFunctionObjects: %w", ErrNoParentField)
	}

	var mappings []*scene.Column
	for _, name := range fieldsToConvert {
		id, has := sc.FieldID(name)
		if !has {
			continue
		}
		col := sc.Field(id).Mapping
		if slices.Contains(mappings, col) {
			continue
		}
		mappings = append(mappings, col)
		convertIDs = append(convertIDs, id)
	}
	for _, name := range fieldsToCopy {
		id, has := sc.FieldID(name)
		if !has || slices.Contains(copyIDs, id) {
			continue
		}
		copyIDs = append(copyIDs, id)
	}
	return convertIDs, copyIDs, nil
}

// countAttachments returns the number of entries each object has
// among the given fields.
func countAttachments(sc *scene.Scene, convertIDs []int) ([]uint32, error) {
	counts := make([]uint32, sc.MappingBound())
	for _, id := range convertIDs {
		keys := sc.MappingView(id)
		for k := range keys.Len() {
			obj := keys.At(k)
			if obj >= uint64(len(counts)) {
				return nil, fmt.Errorf("scenetools.ConvertToSingleFunctionObjects: object %d of %v is not below the mapping bound %d: %w", obj, sc.Field(id).Name, len(counts), ErrObjectOutOfBounds)
			}
			counts[obj]++
		}
	}
	return counts, nil
}

// countCopies returns, for each field to copy, the number of entries
// to add for the new objects given the attachment counts.
func countCopies(sc *scene.Scene, copyIDs []int, counts []uint32) ([]int, error) {
	copyCounts := make([]int, len(copyIDs))
	for i, id := range copyIDs {
		keys := sc.MappingView(id)
		for k := range keys.Len() {
			obj := keys.At(k)
			if obj >= uint64(len(counts)) {
				return nil, fmt.Errorf("scenetools.ConvertToSingleFunctionObjects: object %d of %v is not below the mapping bound %d: %w", obj, sc.Field(id).Name, len(counts), ErrObjectOutOfBounds)
			}
			if counts[obj] > 1 {
				copyCounts[i] += int(counts[obj] - 1)
			}
		}
	}
	return copyCounts, nil
}

// objectsToAdd returns the number of new objects needed for the
// given attachment counts.
func objectsToAdd(counts []uint32) uint64 {
	var n uint64
	for _, c := range counts {
		if c > 1 {
			n += uint64(c - 1)
		}
	}
	return n
}

// parentType returns the parent field type able to hold all objects
// below the given bound.
func parentType(bound uint64) scene.FieldTypes {
	if bound > math.MaxInt32+1 {
		return scene.Int64
	}
	return scene.Int32
}

// extendFields returns the fields of the scene prepared for combining
// into the split scene: the parent field and fields to copy become
// enlarged placeholders, all others keep their columns.
func extendFields(sc *scene.Scene, parentID int, copyIDs, copyCounts []int, added uint64, newObjectOffset uint32, bound uint64) []scene.FieldData {
	fields := sc.Fields()
	for i := range fields {
		fields[i].Flags = fields[i].Flags.WithoutMappingOrder()
	}
	for i, id := range copyIDs {
		fd := &fields[id]
		fd.Mapping = nil
		fd.Data = nil
		fd.Size += copyCounts[i]
	}

	orig := sc.Field(parentID)
	var flags []scene.FieldFlags
	if orig.IsOrdered() && (added == 0 || orig.Size == 0 || orig.Keys().At(orig.Size-1) < uint64(newObjectOffset)) {
		flags = append(flags, scene.OrderedMapping)
	}
	fields[parentID] = scene.NewPlaceholderField(scene.Parent, orig.MappingType, parentType(bound), 0, orig.Size+int(added), flags...)
	return fields
}

// populatePrefixes fills the placeholders of the split scene with the
// original entries, and lists the new objects as roots at the end of
// the parent field.
func populatePrefixes(sc, out *scene.Scene, parentID int, copyIDs []int, added uint64, newObjectOffset uint32) {
	parents := sc.ParentsAsArray()
	outKeys := out.MappingView(parentID)
	for i, op := range parents {
		outKeys.Set(i, op.Object)
		out.SetParentAt(i, op.Parent)
	}
	for i := range int(added) {
		outKeys.Set(len(parents)+i, uint64(newObjectOffset)+uint64(i))
		out.SetParentAt(len(parents)+i, -1)
	}

	for _, id := range copyIDs {
		src := sc.MappingView(id)
		dst := out.MappingView(id)
		for k := range src.Len() {
			dst.Set(k, src.At(k))
		}
		copy(out.RawValues(id), sc.RawValues(id))
	}
}

// reassignObjects moves every entry of the converted fields whose object
// already has an entry to the next new object, making the new object a
// child of the original one and copying to it all entries of the fields
// to copy attached to the original. It returns the number of new objects
// used.
func reassignObjects(sc, out *scene.Scene, parentID int, convertIDs, copyIDs []int, newObjectOffset uint32) uint64 {
	seen := make([]bool, sc.MappingBound())
	origParents := sc.FieldSize(scene.Parent)
	cursors := make([]int, len(copyIDs))
	for i, id := range copyIDs {
		cursors[i] = sc.Field(id).Size
	}

	var moved uint64
	for _, id := range convertIDs {
		keys := out.MappingView(id)
		for k := range keys.Len() {
			obj := keys.At(k)
			if !seen[obj] {
				seen[obj] = true
				continue
			}
			newObj := uint64(newObjectOffset) + moved
			for i, cid := range copyIDs {
				cursors[i] = copyEntries(sc, out, cid, obj, newObj, cursors[i])
			}
			out.SetParentAt(origParents+int(moved), int64(obj))
			keys.Set(k, newObj)
			moved++
		}
	}
	return moved
}

// copyEntries copies all entries of field id attached to obj in the source
// scene to entries attached to newObj in the split scene, starting at the
// given entry index. It returns the index after the last copied entry.
func copyEntries(sc, out *scene.Scene, id int, obj, newObj uint64, cursor int) int {
	stride := sc.Field(id).DataStride()
	src := sc.RawValues(id)
	dst := out.RawValues(id)
	keys := out.MappingView(id)
	for off := 0; ; {
		found, has := sc.FieldObjectOffset(id, obj, off)
		if !has {
			return cursor
		}
		keys.Set(cursor, newObj)
		copy(dst[cursor*stride:(cursor+1)*stride], src[found*stride:(found+1)*stride])
		cursor++
		off = found + 1
	}
}

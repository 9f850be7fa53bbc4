// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"fmt"
	"math"

	"cogentcore.org/scenedata/scene"
	"golang.org/x/exp/constraints"
)

// components returns the number of scalar components of one value
// of the given type.
func components(ft scene.FieldTypes) int {
	switch ft {
	case scene.Vector2, scene.Vector2i:
		return 2
	case scene.Vector3, scene.Vector3i:
		return 3
	case scene.Vector4, scene.Quat:
		return 4
	case scene.Matrix3:
		return 9
	case scene.Matrix4:
		return 16
	}
	return 1
}

// keyColumn returns a column with the given keys as the given mapping type.
func keyColumn(mt scene.MappingTypes, keys []uint64) (*scene.Column, error) {
	for i, k := range keys {
		if k > mt.Max() {
			return nil, fmt.Errorf("key %d at entry %d does not fit %v: %w", k, i, mt, ErrValueRange)
		}
	}
	switch mt {
	case scene.MappingUint8:
		return scene.ColumnOf(castKeys[uint8](keys)), nil
	case scene.MappingUint16:
		return scene.ColumnOf(castKeys[uint16](keys)), nil
	case scene.MappingUint32:
		return scene.ColumnOf(castKeys[uint32](keys)), nil
	}
	return scene.ColumnOf(keys), nil
}

func castKeys[K scene.Key](keys []uint64) []K {
	out := make([]K, len(keys))
	for i, k := range keys {
		out[i] = K(k)
	}
	return out
}

// valueColumn returns a column with the given values encoded as the
// given field type, for the given number of values.
func valueColumn(ft scene.FieldTypes, vals []float64, n int) (*scene.Column, error) {
	if want := n * components(ft); len(vals) != want {
		return nil, fmt.Errorf("%d values for %d %v values: %w", len(vals), n, ft, ErrValueCount)
	}
	switch ft {
	case scene.Uint8:
		return intColumn[uint8](vals)
	case scene.Int8:
		return intColumn[int8](vals)
	case scene.Uint16:
		return intColumn[uint16](vals)
	case scene.Int16:
		return intColumn[int16](vals)
	case scene.Uint32:
		return intColumn[uint32](vals)
	case scene.Int32, scene.Vector2i, scene.Vector3i:
		return intColumn[int32](vals)
	case scene.Uint64:
		return intColumn[uint64](vals)
	case scene.Int64:
		return intColumn[int64](vals)
	case scene.Float64:
		return scene.ColumnOf(vals), nil
	}
	out := make([]float32, len(vals))
	for i, v := range vals {
		out[i] = float32(v)
		if math.IsInf(float64(out[i]), 0) && !math.IsInf(v, 0) {
			return nil, fmt.Errorf("value %g at %d does not fit float32: %w", v, i, ErrValueRange)
		}
	}
	return scene.ColumnOf(out), nil
}

// intColumn returns a column of the given values as integers of type T,
// which must represent them exactly.
func intColumn[T constraints.Integer](vals []float64) (*scene.Column, error) {
	out := make([]T, len(vals))
	for i, v := range vals {
		out[i] = T(v)
		if float64(out[i]) != v {
			return nil, fmt.Errorf("value %g at %d is not a %T: %w", v, i, out[i], ErrValueRange)
		}
	}
	return scene.ColumnOf(out), nil
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package array provides homogeneous n-dimensional arrays with a
// declared element [Kind], which are the column data of a frame.Table.
// Values are stored in row-major order in a flat slice, and arrays
// are not modified after creation: indexing operations ([Array.Take],
// [Array.Filter], [Array.Slice]) always return new arrays.
package array

import (
	"fmt"

	"github.com/podata/po/base/errors"
)

var (
	// ErrIndexOutOfRange is returned for an index outside of the valid range.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrLengthMismatch is returned when two lengths that must agree do not.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrKind is returned when an element kind does not support an operation.
	ErrKind = errors.New("unsupported element kind")

	// ErrShape is returned for an array of the wrong dimensionality.
	ErrShape = errors.New("invalid shape")
)

// Kind is the element kind of an [Array].
type Kind int32

const (
	// TextKind is fixed-width text: values longer than the
	// width are truncated, and no missing value can be stored.
	TextKind Kind = iota

	// ObjectKind holds arbitrary values, with nil as the missing value marker.
	ObjectKind

	// IntKind is signed integers.
	IntKind

	// UintKind is unsigned integers.
	UintKind

	// FloatKind is floating point numbers.
	FloatKind

	// BoolKind is booleans.
	BoolKind
)

var kindNames = [...]string{"Text", "Object", "Int", "Uint", "Float", "Bool"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
	return kindNames[k]
}

// Array is the interface for homogeneous arrays of a single element [Kind].
// Element access is through a flat 1D index (0-Len()-1), in row-major order.
// Take, Filter and Slice operate on the flat values and return 1D arrays
// of the same kind.
type Array interface {
	fmt.Stringer

	// Kind returns the element kind.
	Kind() Kind

	// Len returns the number of elements in the array,
	// which is the product of all shape dimensions.
	Len() int

	// Shape returns a copy of the sizes of each dimension.
	Shape() []int

	// NumDims returns the total number of dimensions.
	NumDims() int

	// Value returns the element at the given 1D index.
	Value(i int) any

	// StringValue returns the element at the given 1D index as a string.
	StringValue(i int) string

	// Float returns the element at the given 1D index as a float64,
	// and false if it has no numerical representation.
	Float(i int) (float64, bool)

	// Take returns a new array with the elements at the given indexes,
	// in order. Negative indexes count back from the end.
	// Returns [ErrIndexOutOfRange] for any index outside [-Len(), Len()).
	Take(idx []int) (Array, error)

	// Filter returns a new array with the elements for which the mask is true.
	// Returns [ErrLengthMismatch] if the mask length is not Len().
	Filter(mask []bool) (Array, error)

	// Slice returns a new array with the elements selected by the given [Slice].
	Slice(s Slice) Array
}

// checkIndexes resolves negative indexes against n and checks bounds.
func checkIndexes(idx []int, n int) ([]int, error) {
	res := make([]int, len(idx))
	for i, ix := range idx {
		if ix < 0 {
			ix += n
		}
		if ix < 0 || ix >= n {
			return nil, fmt.Errorf("array.Take: index %d is out of range for length %d: %w", idx[i], n, ErrIndexOutOfRange)
		}
		res[i] = ix
	}
	return res, nil
}

func takeValues[T any](vals []T, idx []int) ([]T, error) {
	ix, err := checkIndexes(idx, len(vals))
	if err != nil {
		return nil, err
	}
	res := make([]T, len(ix))
	for i, j := range ix {
		res[i] = vals[j]
	}
	return res, nil
}

func filterValues[T any](vals []T, mask []bool) ([]T, error) {
	if len(mask) != len(vals) {
		return nil, fmt.Errorf("array.Filter: mask of length %d does not match array of length %d: %w", len(mask), len(vals), ErrLengthMismatch)
	}
	res := make([]T, 0, len(vals))
	for i, m := range mask {
		if m {
			res = append(res, vals[i])
		}
	}
	return res, nil
}

func sliceValues[T any](vals []T, s Slice) []T {
	ix := s.Indices(len(vals))
	res := make([]T, len(ix))
	for i, j := range ix {
		res[i] = vals[j]
	}
	return res
}

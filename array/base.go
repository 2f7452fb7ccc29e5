// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"slices"
)

// Base is the shared storage for all array types:
// a shape and the flat row-major slice of values.
type Base[T any] struct {
	shape  []int
	Values []T
}

// newBase returns a 1D Base wrapping the given values (not copied).
func newBase[T any](vals []T) Base[T] {
	return Base[T]{shape: []int{len(vals)}, Values: vals}
}

// newBaseShape returns a zero-valued Base with the given sizes per dimension.
func newBaseShape[T any](sizes ...int) Base[T] {
	n := 1
	for _, s := range sizes {
		n *= max(s, 0)
	}
	return Base[T]{shape: slices.Clone(sizes), Values: make([]T, n)}
}

// Len returns the number of elements in the array.
func (b *Base[T]) Len() int { return len(b.Values) }

// Shape returns a copy of the sizes of each dimension.
func (b *Base[T]) Shape() []int { return slices.Clone(b.shape) }

// NumDims returns the total number of dimensions.
func (b *Base[T]) NumDims() int { return len(b.shape) }

// Value returns the element at the given 1D index.
func (b *Base[T]) Value(i int) any { return b.Values[i] }

// Value1D returns the typed element at the given 1D index.
func (b *Base[T]) Value1D(i int) T { return b.Values[i] }

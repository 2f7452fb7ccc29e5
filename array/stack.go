// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// checkStack checks that all arrays are 1D with the same length,
// returning that length.
func checkStack(fn string, cols []Array) (int, error) {
	rows := 0
	for i, c := range cols {
		if c.NumDims() != 1 {
			return 0, fmt.Errorf("array.%s: array %d has %d dimensions, must be 1: %w", fn, i, c.NumDims(), ErrShape)
		}
		if i == 0 {
			rows = c.Len()
			continue
		}
		if c.Len() != rows {
			return 0, fmt.Errorf("array.%s: array %d has length %d, not %d: %w", fn, i, c.Len(), rows, ErrLengthMismatch)
		}
	}
	return rows, nil
}

// Stack returns a 2D [Object] array with the given 1D arrays as the
// outer dimension, so its shape is (len(cols), rows) and element
// (c, r) is row r of array c. All arrays must be 1D with the same length.
func Stack(cols ...Array) (*Object, error) {
	rows, err := checkStack("Stack", cols)
	if err != nil {
		return nil, err
	}
	st := NewObjectShape(len(cols), rows)
	for c, col := range cols {
		for r := range rows {
			st.Values[c*rows+r] = col.Value(r)
		}
	}
	return st, nil
}

// Dense returns a gonum [mat.Dense] matrix with one matrix row per
// given 1D array, laid out like [Stack]. Every element must have
// a numerical representation (see [Array.Float]), otherwise an
// [ErrKind] error is returned. An empty matrix is returned when
// there are no arrays or no rows.
func Dense(cols ...Array) (*mat.Dense, error) {
	rows, err := checkStack("Dense", cols)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 || rows == 0 {
		return &mat.Dense{}, nil
	}
	data := make([]float64, len(cols)*rows)
	for c, col := range cols {
		for r := range rows {
			f, ok := col.Float(r)
			if !ok {
				return nil, fmt.Errorf("array.Dense: %s element %d (%s) of array %d is not numerical: %w", col.Kind(), r, col.StringValue(r), c, ErrKind)
			}
			data[c*rows+r] = f
		}
	}
	return mat.NewDense(len(cols), rows, data), nil
}

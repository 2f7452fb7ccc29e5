// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import "strconv"

// Bool is an array of boolean values, used for masks.
type Bool struct {
	Base[bool]
}

// NewBool returns a new 1D [Bool] array holding a copy of the given values.
func NewBool(vals ...bool) *Bool {
	return &Bool{Base: newBase(append([]bool(nil), vals...))}
}

// NewBoolShape returns a new all-false n-dimensional [Bool] array
// with the given sizes per dimension.
func NewBoolShape(sizes ...int) *Bool {
	return &Bool{Base: newBaseShape[bool](sizes...)}
}

func (ar *Bool) Kind() Kind { return BoolKind }

func (ar *Bool) String() string { return sprint(ar) }

func (ar *Bool) StringValue(i int) string { return strconv.FormatBool(ar.Values[i]) }

func (ar *Bool) Float(i int) (float64, bool) {
	if ar.Values[i] {
		return 1, true
	}
	return 0, true
}

func (ar *Bool) Take(idx []int) (Array, error) {
	vals, err := takeValues(ar.Values, idx)
	if err != nil {
		return nil, err
	}
	return &Bool{Base: newBase(vals)}, nil
}

func (ar *Bool) Filter(mask []bool) (Array, error) {
	vals, err := filterValues(ar.Values, mask)
	if err != nil {
		return nil, err
	}
	return &Bool{Base: newBase(vals)}, nil
}

func (ar *Bool) Slice(s Slice) Array { return &Bool{Base: newBase(sliceValues(ar.Values, s))} }

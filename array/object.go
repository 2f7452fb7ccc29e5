// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"fmt"
	"reflect"
)

// NullString is the string representation of a missing (nil) [Object] value.
const NullString = "null"

// Object is an array of arbitrary values, where nil marks
// a missing value. String columns of a table are stored as
// Object arrays, so that missing values can be represented.
type Object struct {
	Base[any]
}

// NewObject returns a new 1D [Object] array holding a copy of the given values.
func NewObject(vals ...any) *Object {
	return &Object{Base: newBase(append([]any(nil), vals...))}
}

// NewObjectShape returns a new n-dimensional [Object] array of nil values
// with the given sizes per dimension.
func NewObjectShape(sizes ...int) *Object {
	return &Object{Base: newBaseShape[any](sizes...)}
}

// AsObject returns the given array converted to an [Object] array
// if it is a [Text] array, keeping its shape. Any other array,
// including an Object array, is returned as is.
func AsObject(ar Array) Array {
	tx, ok := ar.(*Text)
	if !ok {
		return ar
	}
	ob := &Object{Base: newBaseShape[any](tx.shape...)}
	for i, v := range tx.Values {
		ob.Values[i] = v
	}
	return ob
}

// IsNull returns whether the value at the given 1D index is missing.
func (ar *Object) IsNull(i int) bool { return ar.Values[i] == nil }

func (ar *Object) Kind() Kind { return ObjectKind }

func (ar *Object) String() string { return sprint(ar) }

func (ar *Object) StringValue(i int) string {
	switch v := ar.Values[i].(type) {
	case nil:
		return NullString
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (ar *Object) Float(i int) (float64, bool) {
	v := ar.Values[i]
	if v == nil {
		return 0, false
	}
	if b, ok := v.(bool); ok {
		if b {
			return 1, true
		}
		return 0, true
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanFloat():
		return rv.Float(), true
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	}
	return 0, false
}

func (ar *Object) Take(idx []int) (Array, error) {
	vals, err := takeValues(ar.Values, idx)
	if err != nil {
		return nil, err
	}
	return &Object{Base: newBase(vals)}, nil
}

func (ar *Object) Filter(mask []bool) (Array, error) {
	vals, err := filterValues(ar.Values, mask)
	if err != nil {
		return nil, err
	}
	return &Object{Base: newBase(vals)}, nil
}

func (ar *Object) Slice(s Slice) Array { return &Object{Base: newBase(sliceValues(ar.Values, s))} }

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Numeric is the set of element types supported by [Number].
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Number is an array of numerical values.
type Number[T Numeric] struct {
	Base[T]
}

// Float64 is an alias for Number[float64].
type Float64 = Number[float64]

// Float32 is an alias for Number[float32].
type Float32 = Number[float32]

// Int is an alias for Number[int].
type Int = Number[int]

// Int64 is an alias for Number[int64].
type Int64 = Number[int64]

// Int32 is an alias for Number[int32].
type Int32 = Number[int32]

// Uint8 is an alias for Number[uint8].
type Uint8 = Number[uint8]

// NewNumber returns a new 1D array holding a copy of the given values.
func NewNumber[T Numeric](vals ...T) *Number[T] {
	return &Number[T]{Base: newBase(append([]T(nil), vals...))}
}

// NewNumberShape returns a new zero-valued n-dimensional array
// with the given sizes per dimension.
func NewNumberShape[T Numeric](sizes ...int) *Number[T] {
	return &Number[T]{Base: newBaseShape[T](sizes...)}
}

// NewFloat64 returns a new 1D [Float64] array of the given values.
func NewFloat64(vals ...float64) *Float64 { return NewNumber(vals...) }

// NewInt returns a new 1D [Int] array of the given values.
func NewInt(vals ...int) *Int { return NewNumber(vals...) }

// NumberKind returns the [Kind] for the given numerical type.
func NumberKind[T Numeric]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return FloatKind
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return UintKind
	default:
		return IntKind
	}
}

func (ar *Number[T]) Kind() Kind { return NumberKind[T]() }

func (ar *Number[T]) String() string { return sprint(ar) }

func (ar *Number[T]) StringValue(i int) string {
	v := ar.Values[i]
	switch ar.Kind() {
	case FloatKind:
		return strconv.FormatFloat(float64(v), 'g', -1, reflect.TypeFor[T]().Bits())
	default:
		return fmt.Sprint(v)
	}
}

func (ar *Number[T]) Float(i int) (float64, bool) { return float64(ar.Values[i]), true }

func (ar *Number[T]) Take(idx []int) (Array, error) {
	vals, err := takeValues(ar.Values, idx)
	if err != nil {
		return nil, err
	}
	return &Number[T]{Base: newBase(vals)}, nil
}

func (ar *Number[T]) Filter(mask []bool) (Array, error) {
	vals, err := filterValues(ar.Values, mask)
	if err != nil {
		return nil, err
	}
	return &Number[T]{Base: newBase(vals)}, nil
}

func (ar *Number[T]) Slice(s Slice) Array {
	return &Number[T]{Base: newBase(sliceValues(ar.Values, s))}
}

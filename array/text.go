// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"strconv"
	"unicode/utf8"
)

// Text is an array of fixed-width text values. Values longer than
// Width runes are truncated when the array is created, and there is
// no representation for a missing value. Use [AsObject] to convert
// to a generic [Object] array that can hold nil markers.
type Text struct {
	Base[string]

	// Width is the maximum number of runes per value.
	Width int
}

// NewText returns a new 1D [Text] array of the given width, holding
// a copy of the given values truncated to width. A width <= 0 uses
// the width of the longest value.
func NewText(width int, vals ...string) *Text {
	if width <= 0 {
		for _, v := range vals {
			width = max(width, utf8.RuneCountInString(v))
		}
	}
	tv := make([]string, len(vals))
	for i, v := range vals {
		tv[i] = truncate(v, width)
	}
	return &Text{Base: newBase(tv), Width: width}
}

// NewStrings returns a new 1D [Text] array wide enough for all of
// the given values.
func NewStrings(vals ...string) *Text {
	return NewText(0, vals...)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	n := 0
	for i := range s {
		if n == width {
			return s[:i]
		}
		n++
	}
	return s
}

func (ar *Text) Kind() Kind { return TextKind }

func (ar *Text) String() string { return sprint(ar) }

func (ar *Text) StringValue(i int) string { return ar.Values[i] }

func (ar *Text) Float(i int) (float64, bool) {
	f, err := strconv.ParseFloat(ar.Values[i], 64)
	return f, err == nil
}

func (ar *Text) Take(idx []int) (Array, error) {
	vals, err := takeValues(ar.Values, idx)
	if err != nil {
		return nil, err
	}
	return &Text{Base: newBase(vals), Width: ar.Width}, nil
}

func (ar *Text) Filter(mask []bool) (Array, error) {
	vals, err := filterValues(ar.Values, mask)
	if err != nil {
		return nil, err
	}
	return &Text{Base: newBase(vals), Width: ar.Width}, nil
}

func (ar *Text) Slice(s Slice) Array {
	return &Text{Base: newBase(sliceValues(ar.Values, s)), Width: ar.Width}
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package array

import (
	"strconv"
	"strings"
)

// sprint returns a bracketed rendering of the array values,
// nested by dimension, with text values quoted.
func sprint(ar Array) string {
	var b strings.Builder
	shape := ar.Shape()
	if len(shape) == 0 {
		return "[]"
	}
	quote := ar.Kind() == TextKind || ar.Kind() == ObjectKind
	var rec func(dim, off int)
	rec = func(dim, off int) {
		b.WriteByte('[')
		stride := 1
		for _, s := range shape[dim+1:] {
			stride *= s
		}
		for i := range shape[dim] {
			if i > 0 {
				b.WriteByte(' ')
			}
			if dim < len(shape)-1 {
				rec(dim+1, off+i*stride)
				continue
			}
			sv := ar.StringValue(off + i)
			if quote && ar.Value(off+i) != nil {
				sv = strconv.Quote(sv)
			}
			b.WriteString(sv)
		}
		b.WriteByte(']')
	}
	rec(0, 0)
	return b.String()
}

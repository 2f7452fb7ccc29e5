// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a set of helpers on top of the
// standard reflect package.
package reflectx

import (
	"reflect"
)

// NonPointerValue returns a non-pointer version of the given value.
// A nil pointer yields the invalid zero [reflect.Value].
func NonPointerValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// KindIsInt returns whether the given kind is a signed or unsigned integer.
func KindIsInt(kind reflect.Kind) bool {
	return kind >= reflect.Int && kind <= reflect.Uintptr
}

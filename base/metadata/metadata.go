// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metadata provides [Data], a map of named values of any type
// attached to tables, such as the table name and the file it was read from.
package metadata

import (
	"fmt"
	"maps"

	"github.com/podata/po/base/errors"
)

// Standard metadata keys.
const (
	// NameKey is the key for the name of the table.
	NameKey = "Name"

	// FilenameKey is the key for the file a table was read from.
	FilenameKey = "Filename"
)

// ErrNotFound is returned by [Get] for a missing key.
var ErrNotFound = errors.New("metadata key not found")

// Data is a map of named metadata values. The zero value is
// ready to use: [Data.Set] makes the map as needed.
type Data map[string]any

// Set sets the value for the given key.
func (md *Data) Set(key string, value any) {
	if *md == nil {
		*md = Data{}
	}
	(*md)[key] = value
}

// Get returns the value for the given key as type T. It returns
// [ErrNotFound] for a missing key, and an error for a value of another type.
func Get[T any](md Data, key string) (T, error) {
	var zero T
	v, ok := md[key]
	if !ok {
		return zero, fmt.Errorf("metadata.Get %q: %w", key, ErrNotFound)
	}
	tv, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("metadata.Get %q: value is a %T, not a %T", key, v, zero)
	}
	return tv, nil
}

// Copy sets all of the values in src on md. Values are copied by
// assignment, so pointer values are shared with src.
func (md *Data) Copy(src Data) {
	if len(src) == 0 {
		return
	}
	if *md == nil {
		*md = make(Data, len(src))
	}
	maps.Copy(*md, src)
}

// SetName sets the [NameKey] value.
func (md *Data) SetName(name string) { md.Set(NameKey, name) }

// Name returns the [NameKey] value, or "".
func (md Data) Name() string { return errors.Ignore1(Get[string](md, NameKey)) }

// SetFilename sets the [FilenameKey] value.
func (md *Data) SetFilename(file string) { md.Set(FilenameKey, file) }

// Filename returns the [FilenameKey] value, or "".
func (md Data) Filename() string { return errors.Ignore1(Get[string](md, FilenameKey)) }

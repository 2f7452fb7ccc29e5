// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keylist provides [List], an ordered sequence of keyed
// values with a key to position map, so that values can be found
// both by key and by position. It backs the column store of
// frame.Table, where the keys are the column names.
package keylist

import "fmt"

// List is an ordered sequence of Values with parallel Keys.
// Keys are unique. The zero value is an empty list.
// A List that is shared between goroutines must not be modified;
// use [List.WithKeys] to derive a renamed copy instead.
type List[K comparable, V any] struct {
	// Values in order.
	Values []V

	// Keys in the same order as Values.
	Keys []K

	// positions maps each key to its position.
	positions map[K]int
}

// New returns a new empty [List].
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{positions: map[K]int{}}
}

// ensure builds the positions map if a List was made without [New].
func (kl *List[K, V]) ensure() {
	if kl.positions == nil {
		kl.UpdateIndexes()
	}
}

// Add appends a value under the given key, which must not
// already be on the list.
func (kl *List[K, V]) Add(key K, val V) error {
	kl.ensure()
	if _, has := kl.positions[key]; has {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.positions[key] = len(kl.Values)
	kl.Keys = append(kl.Keys, key)
	kl.Values = append(kl.Values, val)
	return nil
}

// At returns the value for the given key, or the zero value.
func (kl *List[K, V]) At(key K) V {
	v, _ := kl.AtTry(key)
	return v
}

// AtTry returns the value for the given key, and whether it was found.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if i := kl.IndexByKey(key); i >= 0 {
		return kl.Values[i], true
	}
	var zero V
	return zero, false
}

// IndexIsValid returns an error if the given position is not on the list.
func (kl *List[K, V]) IndexIsValid(idx int) error {
	if n := kl.Len(); idx < 0 || idx >= n {
		return fmt.Errorf("keylist.List: position %d is out of range for length %d", idx, n)
	}
	return nil
}

// IndexByKey returns the position of the given key, or -1.
func (kl *List[K, V]) IndexByKey(key K) int {
	kl.ensure()
	if i, ok := kl.positions[key]; ok {
		return i
	}
	return -1
}

// Len returns the number of values; 0 for a nil list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}

// WithKeys returns a new list with the same values, in the same
// order, under the given keys, which must be unique and one per value.
// The receiver is not modified.
func (kl *List[K, V]) WithKeys(keys []K) (*List[K, V], error) {
	if len(keys) != kl.Len() {
		return nil, fmt.Errorf("keylist.WithKeys: got %d keys for %d values", len(keys), kl.Len())
	}
	nl := New[K, V]()
	for i, k := range keys {
		if err := nl.Add(k, kl.Values[i]); err != nil {
			return nil, fmt.Errorf("keylist.WithKeys: key %v is repeated", k)
		}
	}
	return nl, nil
}

// UpdateIndexes rebuilds the key positions from Keys,
// which is needed after setting Keys directly.
func (kl *List[K, V]) UpdateIndexes() {
	kl.positions = make(map[K]int, len(kl.Keys))
	for i, k := range kl.Keys {
		kl.positions[k] = i
	}
}

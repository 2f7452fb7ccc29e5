// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	kl := New[string, int]()
	require.NoError(t, kl.Add("a", 10))
	require.NoError(t, kl.Add("b", 20))
	require.NoError(t, kl.Add("c", 30))
	assert.Error(t, kl.Add("b", 5))

	assert.Equal(t, 3, kl.Len())
	assert.Equal(t, 20, kl.At("b"))
	assert.Equal(t, 0, kl.At("nope"))
	assert.Equal(t, 2, kl.IndexByKey("c"))
	assert.Equal(t, -1, kl.IndexByKey("nope"))
	_, ok := kl.AtTry("nope")
	assert.False(t, ok)

	assert.NoError(t, kl.IndexIsValid(2))
	assert.Error(t, kl.IndexIsValid(3))
	assert.Error(t, kl.IndexIsValid(-1))

	var nl *List[string, int]
	assert.Equal(t, 0, nl.Len())
}

func TestWithKeys(t *testing.T) {
	kl := New[string, int]()
	kl.Add("a", 10)
	kl.Add("b", 20)

	rn, err := kl.WithKeys([]string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, rn.Keys)
	assert.Equal(t, []int{10, 20}, rn.Values)
	assert.Equal(t, 1, rn.IndexByKey("y"))
	assert.Equal(t, []string{"a", "b"}, kl.Keys)
	assert.Equal(t, 0, kl.IndexByKey("a"))

	_, err = kl.WithKeys([]string{"x"})
	assert.Error(t, err)
	_, err = kl.WithKeys([]string{"x", "x"})
	assert.Error(t, err)
}

func TestZeroValue(t *testing.T) {
	kl := List[string, int]{Keys: []string{"a", "b"}, Values: []int{1, 2}}
	assert.Equal(t, 1, kl.IndexByKey("b"))
	assert.Equal(t, 2, kl.At("b"))
	require.NoError(t, kl.Add("c", 3))
	assert.Equal(t, 2, kl.IndexByKey("c"))
}

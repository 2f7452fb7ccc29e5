// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Delim   string
	MaxRows int
	Verbose bool
}

func TestOpen(t *testing.T) {
	low, high := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(low, "po.toml"), []byte("Delim = \"\\t\"\nMaxRows = 5\n"), 0666))
	require.NoError(t, os.WriteFile(filepath.Join(high, "po.toml"), []byte("MaxRows = 7\n"), 0666))

	cfg := &testConfig{Delim: ",", MaxRows: 20}

	require.NoError(t, Open(cfg, []string{low, high}, "po.toml"))
	assert.Equal(t, "\t", cfg.Delim)
	assert.Equal(t, 7, cfg.MaxRows)
	assert.False(t, cfg.Verbose)

	assert.Error(t, Open(cfg, []string{t.TempDir()}, "po.toml"))
	assert.NoError(t, OpenIfExists(cfg, []string{t.TempDir()}, "po.toml"))
}

func TestConfigPaths(t *testing.T) {
	paths := ConfigPaths("po")
	require.NotEmpty(t, paths)
	assert.Equal(t, ".", paths[len(paths)-1])
}

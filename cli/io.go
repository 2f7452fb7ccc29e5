// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli provides the config file lookup shared by po commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/podata/po/base/fsx"
	"github.com/podata/po/base/iox/tomlx"
)

// ConfigPaths returns the standard paths on which config files are
// looked up, in increasing order of priority: the user config
// directory for the given app, and then the current directory.
func ConfigPaths(app string) []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, app))
	}
	return append(paths, ".")
}

// Open reads the config struct from every copy of the given config
// file found on the given paths, in order, so that later paths
// overwrite settings from earlier ones. It returns an error if the
// file is not found on any of the paths.
func Open(cfg any, paths []string, file string) error {
	files := fsx.FindFilesOnPaths(paths, file)
	if len(files) == 0 {
		return fmt.Errorf("cli.Open: no files found for %q on paths %v", file, paths)
	}
	return tomlx.OpenFiles(cfg, files...)
}

// OpenIfExists is a version of [Open] that does nothing
// if the file is not found on any of the paths.
func OpenIfExists(cfg any, paths []string, file string) error {
	files := fsx.FindFilesOnPaths(paths, file)
	if len(files) == 0 {
		return nil
	}
	return tomlx.OpenFiles(cfg, files...)
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides functions for loading and saving
// config structs in the TOML format.
package tomlx

import (
	"bufio"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/podata/po/base/errors"
)

// Read reads the given object from the given reader,
// using TOML format.
func Read(v any, reader io.Reader) error {
	d := toml.NewDecoder(reader)
	return d.Decode(v)
}

// Open reads the given object from the given filename using TOML format.
func Open(v any, filename string) error {
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp))
}

// OpenFiles reads the given object from the given filenames using TOML format,
// in order, so that later files overwrite values set by earlier ones.
// All files are attempted; the returned error joins any failures.
func OpenFiles(v any, filenames ...string) error {
	var errs []error
	for _, file := range filenames {
		errs = append(errs, Open(v, file))
	}
	return errors.Join(errs...)
}

// Write writes the given object to the given writer using TOML format.
func Write(v any, writer io.Writer) error {
	e := toml.NewEncoder(writer)
	return e.Encode(v)
}

// Save writes the given object to the given filename using TOML format.
func Save(v any, filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = Write(v, bw)
	if err != nil {
		return err
	}
	return bw.Flush()
}

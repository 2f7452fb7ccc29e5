// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csvio reads [frame.Table] data from delimiter separated
// text files, inferring the element kind of each column, and writes
// tables back out in the same format.
package csvio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/podata/po/array"
	"github.com/podata/po/base/errors"
	"github.com/podata/po/base/fsx"
	"github.com/podata/po/frame"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space)
type Delims int32

const (
	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Space is the space rune delimiter, for SSV space separated value
	Space

	// Detect is used during reading a file: reads the first line and detects tabs or commas
	Detect
)

var delimNames = []string{"tab", "comma", "space", "detect"}

// Rune returns the delimiter rune, with Tab for [Detect].
func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

func (dl Delims) String() string {
	if dl < 0 || int(dl) >= len(delimNames) {
		return "Delims(" + strconv.Itoa(int(dl)) + ")"
	}
	return delimNames[dl]
}

// SetString sets the delimiter from its name, or from the
// delimiter character itself.
func (dl *Delims) SetString(s string) error {
	switch strings.ToLower(s) {
	case "tab", "\t", `\t`:
		*dl = Tab
	case "comma", ",":
		*dl = Comma
	case "space", " ":
		*dl = Space
	case "detect", "":
		*dl = Detect
	default:
		return fmt.Errorf("csvio.Delims: %q is not one of %v", s, delimNames)
	}
	return nil
}

// DetectDelim returns [Tab] if the given header line contains a tab,
// and [Comma] otherwise.
func DetectDelim(line string) Delims {
	if strings.Contains(line, "\t") {
		return Tab
	}
	return Comma
}

// OpenCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader conforming to the official CSV standard.
// The table is named after the file, which is also recorded in its metadata.
func OpenCSV(filename string, delim Delims) (*frame.Table, error) {
	fsys, name, err := fsx.DirFS(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	dt, err := OpenFS(fsys, name, delim)
	if err != nil {
		return nil, err
	}
	dt.Meta.SetFilename(filename)
	return dt, nil
}

// OpenFS is the version of [OpenCSV] that uses an [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string, delim Delims) (*frame.Table, error) {
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	dt, err := ReadCSV(bufio.NewReader(fp), delim)
	if err != nil {
		return nil, fmt.Errorf("csvio.OpenFS %s: %w", filename, err)
	}
	setFileMeta(dt, filename)
	return dt, nil
}

func setFileMeta(dt *frame.Table, filename string) {
	dt.Meta.SetFilename(filename)
	base := filepath.Base(filename)
	dt.SetName(strings.TrimSuffix(base, filepath.Ext(base)))
}

// ReadCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader conforming to the official CSV standard.
// The first row of the file holds the column names, with blank names
// replaced by col_N. The kind of each column is inferred from its
// values (see [ColumnKind]). Empty cells are missing values: NaN in
// numerical columns and nil in [array.Object] columns, where an
// integer column with missing values is read as floating point.
func ReadCSV(r io.Reader, delim Delims) (*frame.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if delim == Detect {
		first, _, _ := bytes.Cut(data, []byte("\n"))
		delim = DetectDelim(string(first))
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delim.Rune()
	rec, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return frame.New()
	}
	hdrs, rows := rec[0], rec[1:]
	cols := make([]frame.Column, len(hdrs))
	for ci, hd := range hdrs {
		hd = strings.TrimSpace(hd)
		if hd == "" {
			hd = fmt.Sprintf("col_%d", ci)
		}
		vals := make([]string, len(rows))
		for ri, row := range rows {
			vals[ri] = strings.TrimSpace(row[ci])
		}
		kind := ColumnKind(vals)
		slog.Debug("csvio.ReadCSV: inferred column kind", "column", hd, "kind", kind)
		cols[ci] = frame.Column{Name: hd, Data: columnArray(kind, vals)}
	}
	return frame.New(cols...)
}

// InferKind returns the inferred element kind for the given string:
// [array.BoolKind] for true or false, [array.IntKind], [array.FloatKind],
// or [array.ObjectKind] for anything else.
func InferKind(str string) array.Kind {
	switch strings.ToLower(str) {
	case "true", "false":
		return array.BoolKind
	}
	if strings.Contains(str, ".") {
		if _, err := strconv.ParseFloat(str, 64); err == nil {
			return array.FloatKind
		}
	}
	if _, err := strconv.ParseInt(str, 10, 64); err == nil {
		return array.IntKind
	}
	// try float again just in case..
	if _, err := strconv.ParseFloat(str, 64); err == nil {
		return array.FloatKind
	}
	return array.ObjectKind
}

// ColumnKind returns the element kind for a column with the given
// string values, ignoring empty values. Integer columns are upgraded
// to floating point by any float value, and any other mix of kinds,
// or a column with no values, is [array.ObjectKind].
func ColumnKind(vals []string) array.Kind {
	kind := array.Kind(-1)
	for _, v := range vals {
		if v == "" {
			continue
		}
		ck := InferKind(v)
		switch {
		case ck == array.ObjectKind: // definitive
			return ck
		case kind < 0 || kind == ck:
			kind = ck
		case isNumber(kind) && isNumber(ck): // upgrade
			kind = array.FloatKind
		default:
			return array.ObjectKind
		}
	}
	if kind < 0 {
		return array.ObjectKind
	}
	return kind
}

func isNumber(k array.Kind) bool {
	return k == array.IntKind || k == array.FloatKind
}

func hasEmpty(vals []string) bool {
	for _, v := range vals {
		if v == "" {
			return true
		}
	}
	return false
}

// columnArray returns the array of the given kind for the given values,
// which must all be empty or parse as that kind.
func columnArray(kind array.Kind, vals []string) array.Array {
	if kind == array.IntKind && hasEmpty(vals) {
		kind = array.FloatKind
	}
	switch kind {
	case array.IntKind:
		ar := array.NewNumberShape[int](len(vals))
		for i, v := range vals {
			ar.Values[i] = int(errors.Ignore1(strconv.ParseInt(v, 10, 64)))
		}
		return ar
	case array.FloatKind:
		ar := array.NewNumberShape[float64](len(vals))
		for i, v := range vals {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				f = math.NaN()
			}
			ar.Values[i] = f
		}
		return ar
	case array.BoolKind:
		if !hasEmpty(vals) {
			ar := array.NewBoolShape(len(vals))
			for i, v := range vals {
				ar.Values[i] = strings.EqualFold(v, "true")
			}
			return ar
		}
	}
	ar := array.NewObjectShape(len(vals))
	for i, v := range vals {
		if v == "" {
			continue
		}
		if kind == array.BoolKind {
			ar.Values[i] = strings.EqualFold(v, "true")
			continue
		}
		ar.Values[i] = v
	}
	return ar
}

// WriteCSV writes a table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// If headers = true then the column names are written as the first row.
// Missing values are written as empty cells.
func WriteCSV(w io.Writer, dt *frame.Table, delim Delims, headers bool) error {
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if headers {
		if err := cw.Write(dt.Columns()); err != nil {
			return err
		}
	}
	rows, ncol := dt.Shape()
	rec := make([]string, ncol)
	for r := range rows {
		for ci := range ncol {
			rec[ci] = cellString(dt.ColumnByIndex(ci), r)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func cellString(ar array.Array, i int) string {
	if ob, ok := ar.(*array.Object); ok && ob.IsNull(i) {
		return ""
	}
	if f, ok := ar.Float(i); ok && math.IsNaN(f) && ar.Kind() == array.FloatKind {
		return ""
	}
	return ar.StringValue(i)
}

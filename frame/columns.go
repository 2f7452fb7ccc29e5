// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"iter"

	"github.com/podata/po/array"
	"github.com/podata/po/base/keylist"
	"gonum.org/v1/gonum/mat"
)

// Columns returns the column names, in order.
// The returned slice is a copy, and is never nil.
func (dt *Table) Columns() []string {
	return append([]string{}, dt.list().Keys...)
}

// Column returns the column with given name, or nil if not found.
// See [Table.ColumnTry] for a version that returns an error.
func (dt *Table) Column(name string) array.Array {
	return dt.list().At(name)
}

// ColumnTry is a version of [Table.Column] that also returns an error
// if the column name is not found.
func (dt *Table) ColumnTry(name string) (array.Array, error) {
	kl := dt.list()
	if cl, ok := kl.AtTry(name); ok {
		return cl, nil
	}
	return nil, notFound("ColumnTry", name, kl.Keys)
}

// ColumnByIndex returns the column at the given position,
// or nil if the position is out of range.
func (dt *Table) ColumnByIndex(idx int) array.Array {
	kl := dt.list()
	if kl.IndexIsValid(idx) != nil {
		return nil
	}
	return kl.Values[idx]
}

// ColumnName returns the name of the column at the given position,
// or "" if the position is out of range.
func (dt *Table) ColumnName(idx int) string {
	kl := dt.list()
	if kl.IndexIsValid(idx) != nil {
		return ""
	}
	return kl.Keys[idx]
}

// ColumnIndex returns the position of the column with given name, or -1.
func (dt *Table) ColumnIndex(name string) int {
	return dt.list().IndexByKey(name)
}

// All returns an iterator over the column names and columns, in order.
func (dt *Table) All() iter.Seq2[string, array.Array] {
	kl := dt.list()
	return func(yield func(string, array.Array) bool) {
		for i, k := range kl.Keys {
			if !yield(k, kl.Values[i]) {
				return
			}
		}
	}
}

// SetColumns renames the columns by position to the given names,
// which must be a []string, or a []any of strings, with one unique
// name per column. It returns [ErrTypeKind] if names is not such a
// sequence or has a non-string element, [ErrLengthMismatch] if the
// count differs from [Table.NumColumns], and [ErrDuplicateName] for
// repeated names. The table is unchanged if an error is returned.
func (dt *Table) SetColumns(names any) error {
	var elems []any
	switch nv := names.(type) {
	case []string:
		return dt.Rename(nv...)
	case []any:
		elems = nv
	default:
		return fmt.Errorf("frame.Table SetColumns: names should be a sequence of strings, got %T: %w", names, ErrTypeKind)
	}
	if n := dt.NumColumns(); len(elems) != n {
		return fmt.Errorf("frame.Table SetColumns: got %d names for %d columns: %w", len(elems), n, ErrLengthMismatch)
	}
	nms := make([]string, len(elems))
	for i, e := range elems {
		s, ok := e.(string)
		if !ok {
			return fmt.Errorf("frame.Table SetColumns: all names should be strings, got %T for %v: %w", e, e, ErrTypeKind)
		}
		nms[i] = s
	}
	return dt.Rename(nms...)
}

// Rename renames the columns by position to the given names,
// keeping the column arrays. See [Table.SetColumns] for the errors.
// Rename holds the table lock while it swaps in the new name list,
// so it is safe to call concurrently with readers.
func (dt *Table) Rename(names ...string) error {
	dt.mu.Lock()
	defer dt.mu.Unlock()
	if dt.columns == nil {
		dt.columns = keylist.New[string, array.Array]()
	}
	if n := dt.columns.Len(); len(names) != n {
		return fmt.Errorf("frame.Table Rename: got %d names for %d columns: %w", len(names), n, ErrLengthMismatch)
	}
	seen := make(map[string]bool, len(names))
	for _, nm := range names {
		if seen[nm] {
			return fmt.Errorf("frame.Table Rename: name %q is repeated: %w", nm, ErrDuplicateName)
		}
		seen[nm] = true
	}
	kl, err := dt.columns.WithKeys(names)
	if err != nil {
		return err
	}
	dt.columns = kl
	return nil
}

// Values returns the columns stacked into a 2D [array.Object] array
// of shape (columns, rows): the column is the outer dimension.
func (dt *Table) Values() (*array.Object, error) {
	return array.Stack(dt.list().Values...)
}

// Dense returns the columns as a gonum [mat.Dense] matrix with one
// matrix row per column, for numerical and boolean tables.
// It returns [ErrUnsupportedKind] if any value is not numerical.
func (dt *Table) Dense() (*mat.Dense, error) {
	return array.Dense(dt.list().Values...)
}

// dtypeLabels is the fixed mapping from element kind to dtype label.
var dtypeLabels = map[array.Kind]string{
	array.ObjectKind: "string",
	array.IntKind:    "int",
	array.FloatKind:  "float",
	array.BoolKind:   "bool",
}

// DtypeLabel returns the dtype label for the given element kind:
// "string", "int", "float" or "bool". Other kinds return
// [ErrUnsupportedKind].
func DtypeLabel(kind array.Kind) (string, error) {
	lb, ok := dtypeLabels[kind]
	if !ok {
		return "", fmt.Errorf("frame.DtypeLabel: no dtype label for kind %s: %w", kind, ErrUnsupportedKind)
	}
	return lb, nil
}

// Dtypes returns a summary table with one row per column, with
// columns "column_name" and "dtype", where dtype is the [DtypeLabel]
// of the column kind.
func (dt *Table) Dtypes() (*Table, error) {
	kl := dt.list()
	labels := make([]string, kl.Len())
	for i, cl := range kl.Values {
		lb, err := DtypeLabel(cl.Kind())
		if err != nil {
			return nil, fmt.Errorf("frame.Table Dtypes: column %q: %w", kl.Keys[i], err)
		}
		labels[i] = lb
	}
	return New(
		Column{Name: "column_name", Data: array.NewStrings(kl.Keys...)},
		Column{Name: "dtype", Data: array.NewStrings(labels...)},
	)
}

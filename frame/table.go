// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame provides [Table], a column-oriented table of named,
// equal-length 1D [array.Array] columns, with type-checked
// construction, renaming, dtype introspection, and a selection
// engine ([Table.Select]) for columns, boolean masks, and combined
// row / column selections.
//
// Tables are values: every operation that changes the columns or
// rows returns a new Table built through the same validation as [New].
package frame

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/podata/po/array"
	"github.com/podata/po/base/keylist"
	"github.com/podata/po/base/metadata"
	"github.com/podata/po/base/reflectx"
)

// Table is a table of 1D [array.Array] columns of the same length,
// in a fixed order, with unique names.
// Use [Table.Column] (by name) and [Table.ColumnByIndex] to access columns,
// and [Table.Select] or [Table.Get] to select sub-tables.
type Table struct {
	// Meta is misc metadata for the table, such as its name and
	// the file it was read from. Selections copy it to their results.
	Meta metadata.Data

	// mu guards the columns pointer, which is replaced (never modified)
	// on rename.
	mu sync.RWMutex

	// columns is the ordered list of named columns.
	columns *keylist.List[string, array.Array]
}

// Column is a named column, used as the input to [New].
type Column struct {
	// Name is the column name, unique within a table.
	Name string

	// Data is the column data, which must be a 1D array.
	Data array.Array
}

// New returns a new [Table] with the given columns, in order.
// Every Data must be a non-nil 1D array ([ErrTypeKind]), all
// columns must have the same length as the first ([ErrLengthMismatch]),
// and names must be unique ([ErrDuplicateName]).
// [array.Text] columns are converted to [array.Object] columns, so that
// missing values can be represented. A table with no columns has 0 rows.
func New(cols ...Column) (*Table, error) {
	kl := keylist.New[string, array.Array]()
	for _, c := range cols {
		ar, err := validColumn(c.Name, c.Data)
		if err != nil {
			return nil, err
		}
		if kl.IndexByKey(c.Name) >= 0 {
			return nil, fmt.Errorf("frame.New: column name %q is repeated: %w", c.Name, ErrDuplicateName)
		}
		kl.Add(c.Name, ar)
	}
	for i := 1; i < kl.Len(); i++ {
		if n, rows := kl.Values[i].Len(), kl.Values[0].Len(); n != rows {
			return nil, fmt.Errorf("frame.New: column %q has length %d, but column %q has length %d: %w", kl.Keys[i], n, kl.Keys[0], rows, ErrLengthMismatch)
		}
	}
	return &Table{columns: kl}, nil
}

// validColumn checks that the given column data is a 1D array,
// returning it with text converted to the object kind.
func validColumn(name string, ar array.Array) (array.Array, error) {
	if ar == nil {
		return nil, fmt.Errorf("frame.New: column %q is nil, must be an array: %w", name, ErrTypeKind)
	}
	if rv := reflect.ValueOf(ar); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, fmt.Errorf("frame.New: column %q is a nil %T, must be an array: %w", name, ar, ErrTypeKind)
	}
	if nd := ar.NumDims(); nd != 1 {
		return nil, fmt.Errorf("frame.New: column %q has %d dimensions, must be 1: %w", name, nd, ErrTypeKind)
	}
	if ar.Kind() == array.TextKind {
		slog.Debug("frame.New: converting fixed-width text column to object", "column", name)
		return array.AsObject(ar), nil
	}
	return ar, nil
}

// FromList returns a new [Table] with the columns in the given list,
// in list order, validated as in [New].
func FromList(kl *keylist.List[string, array.Array]) (*Table, error) {
	if kl == nil {
		return New()
	}
	cols := make([]Column, kl.Len())
	for i, k := range kl.Keys {
		cols[i] = Column{Name: k, Data: kl.Values[i]}
	}
	return New(cols...)
}

// FromAny returns a new [Table] from a dynamically typed mapping of
// column names to arrays. Accepted inputs are a []Column, a
// *keylist.List[string, array.Array], or any Go map (or pointer to one)
// with string keys and [array.Array] values. Go maps have no order,
// so their columns are ordered by sorted name.
// Returns [ErrTypeKind] for any other input, for a non-string key,
// and for a value that is not a 1D array.
func FromAny(data any) (*Table, error) {
	switch d := data.(type) {
	case []Column:
		return New(d...)
	case *keylist.List[string, array.Array]:
		return FromList(d)
	}
	rv := reflectx.NonPointerValue(reflect.ValueOf(data))
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("frame.FromAny: data should be a mapping of names to arrays, got %T: %w", data, ErrTypeKind)
	}
	keys := rv.MapKeys()
	names := make([]string, 0, len(keys))
	byName := make(map[string]reflect.Value, len(keys))
	for _, k := range keys {
		kv := k
		if kv.Kind() == reflect.Interface {
			kv = kv.Elem()
		}
		if !kv.IsValid() || kv.Kind() != reflect.String {
			return nil, fmt.Errorf("frame.FromAny: all keys should be strings, got %s for %v: %w", typeName(kv), valueOf(kv), ErrTypeKind)
		}
		names = append(names, kv.String())
		byName[kv.String()] = rv.MapIndex(k)
	}
	slices.Sort(names)
	cols := make([]Column, len(names))
	for i, nm := range names {
		v := byName[nm]
		var val any
		if v.IsValid() && v.CanInterface() {
			val = v.Interface()
		}
		ar, ok := val.(array.Array)
		if !ok {
			return nil, fmt.Errorf("frame.FromAny: all values should be arrays, got %T for %q: %w", val, nm, ErrTypeKind)
		}
		cols[i] = Column{Name: nm, Data: ar}
	}
	return New(cols...)
}

func typeName(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}

func valueOf(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}

// list returns the current column list, which is never modified
// once installed, so it can be read without holding the lock.
func (dt *Table) list() *keylist.List[string, array.Array] {
	dt.mu.RLock()
	defer dt.mu.RUnlock()
	if dt.columns == nil {
		return keylist.New[string, array.Array]()
	}
	return dt.columns
}

// NumRows returns the number of rows, which is 0 for a table with no columns.
func (dt *Table) NumRows() int {
	kl := dt.list()
	if kl.Len() == 0 {
		return 0
	}
	return kl.Values[0].Len()
}

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.list().Len() }

// Shape returns the number of rows and columns.
func (dt *Table) Shape() (rows, cols int) {
	kl := dt.list()
	if kl.Len() > 0 {
		rows = kl.Values[0].Len()
	}
	return rows, kl.Len()
}

// Name returns the name of the table from its metadata.
func (dt *Table) Name() string { return dt.Meta.Name() }

// SetName sets the name of the table in its metadata.
func (dt *Table) SetName(name string) *Table {
	dt.Meta.SetName(name)
	return dt
}

// newDerived returns a new table from the given columns,
// carrying over the metadata of the receiver.
func (dt *Table) newDerived(cols []Column) (*Table, error) {
	nt, err := New(cols...)
	if err != nil {
		return nil, err
	}
	nt.Meta.Copy(dt.Meta)
	return nt, nil
}

// Label returns a short summary of the table: its name and shape.
func (dt *Table) Label() string {
	rows, cols := dt.Shape()
	var b strings.Builder
	if nm := dt.Name(); nm != "" {
		b.WriteString(nm + " ")
	}
	fmt.Fprintf(&b, "[%d rows x %d columns]", rows, cols)
	return b.String()
}

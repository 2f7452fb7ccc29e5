// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"

	"github.com/podata/po/array"
	"github.com/podata/po/base/errors"
	"github.com/podata/po/base/keylist"
)

// Get returns the sub-table selected by the given dynamically typed
// index, which is converted with [ParseIndex] and passed to [Table.Select].
func (dt *Table) Get(v any) (*Table, error) {
	idx, err := ParseIndex(v)
	if err != nil {
		return nil, err
	}
	return dt.Select(idx)
}

// Select returns a new table selected by the given index:
//   - [Name]: the named column, as a one-column table.
//   - [NameList]: the named columns, in the given order.
//   - [MaskTable]: all columns, with the rows where the mask is true.
//   - [RowCol]: the selected rows of the selected columns.
//
// The result is always built by [New], so it is a valid table.
// Columns that are not transformed by the row selection are shared
// with the receiver.
func (dt *Table) Select(idx Index) (*Table, error) {
	kl := dt.list()
	var cols []Column
	var err error
	switch x := idx.(type) {
	case Name:
		cols, err = selectNames(kl, NameList{string(x)})
	case NameList:
		cols, err = selectNames(kl, x)
	case MaskTable:
		cols, err = selectMask(kl, x.Mask)
	case RowCol:
		cols, err = selectRowCol(kl, x)
	default:
		err = fmt.Errorf("frame.Table Select: index of type %T is not one of frame.Name, frame.NameList, frame.MaskTable, or frame.RowCol: %w", idx, ErrUnsupportedIndexType)
	}
	if err != nil {
		return nil, err
	}
	return dt.newDerived(cols)
}

// Head returns the first n rows, or all but the last -n rows if n is negative.
func (dt *Table) Head(n int) (*Table, error) {
	return dt.Select(RowCol{Row: RowSlice(array.To(n)), Col: ColSlice{}})
}

// Tail returns the last n rows, or all but the first -n rows if n is negative.
func (dt *Table) Tail(n int) (*Table, error) {
	sl := array.From(-n)
	if n == 0 {
		sl = array.To(0)
	}
	return dt.Select(RowCol{Row: RowSlice(sl), Col: ColSlice{}})
}

func selectNames(kl *keylist.List[string, array.Array], names NameList) ([]Column, error) {
	cols := make([]Column, len(names))
	for i, nm := range names {
		cl, ok := kl.AtTry(nm)
		if !ok {
			return nil, notFound("Select", nm, kl.Keys)
		}
		cols[i] = Column{Name: nm, Data: cl}
	}
	return cols, nil
}

func numRows(kl *keylist.List[string, array.Array]) int {
	if kl.Len() == 0 {
		return 0
	}
	return kl.Values[0].Len()
}

// maskValues returns the values of a boolean mask table,
// which must have exactly one column, of the bool kind.
func maskValues(mask *Table) ([]bool, error) {
	if mask == nil {
		return nil, fmt.Errorf("frame.Table Select: mask table is nil, must have 1 bool column: %w", ErrShape)
	}
	if nc := mask.NumColumns(); nc != 1 {
		return nil, fmt.Errorf("frame.Table Select: mask table has %d columns, must have 1: %w", nc, ErrShape)
	}
	cl := mask.ColumnByIndex(0)
	if k := cl.Kind(); k != array.BoolKind {
		return nil, fmt.Errorf("frame.Table Select: mask column %q is of kind %s, must be Bool: %w", mask.ColumnName(0), k, ErrTypeKind)
	}
	if b, ok := cl.(*array.Bool); ok {
		return b.Values, nil
	}
	vals := make([]bool, cl.Len())
	for i := range vals {
		vals[i], _ = cl.Value(i).(bool)
	}
	return vals, nil
}

func checkMaskLen(n, rows int) error {
	if n != rows {
		return fmt.Errorf("frame.Table Select: mask has %d values for %d rows: %w", n, rows, ErrLengthMismatch)
	}
	return nil
}

func selectMask(kl *keylist.List[string, array.Array], mask *Table) ([]Column, error) {
	vals, err := maskValues(mask)
	if err != nil {
		return nil, err
	}
	if err := checkMaskLen(len(vals), numRows(kl)); err != nil {
		return nil, err
	}
	return pickRows(kl, allColumns(kl), func(ar array.Array) (array.Array, error) {
		return ar.Filter(vals)
	})
}

func selectRowCol(kl *keylist.List[string, array.Array], rc RowCol) ([]Column, error) {
	pick, err := rowPicker(rc.Row, numRows(kl))
	// with no columns there are no rows to bound row numbers against
	if err != nil && !(kl.Len() == 0 && errors.Is(err, ErrIndexOutOfRange)) {
		return nil, err
	}
	cis, err := colIndexes(kl, rc.Col)
	if err != nil {
		return nil, err
	}
	return pickRows(kl, cis, pick)
}

// rowPick applies a row selection to a column.
type rowPick func(ar array.Array) (array.Array, error)

func checkRow(i, rows int) error {
	if i < -rows || i >= rows {
		return fmt.Errorf("frame.Table Select: row %d is out of range for %d rows: %w", i, rows, ErrIndexOutOfRange)
	}
	return nil
}

// rowPicker normalizes a row selector for a table with the given
// number of rows. A single row is kept as a one-row list.
func rowPicker(sel RowSelector, rows int) (rowPick, error) {
	switch x := sel.(type) {
	case RowIndex:
		return rowPicker(RowList{int(x)}, rows)
	case RowList:
		for _, i := range x {
			if err := checkRow(i, rows); err != nil {
				return nil, err
			}
		}
		return func(ar array.Array) (array.Array, error) { return ar.Take(x) }, nil
	case RowBools:
		if err := checkMaskLen(len(x), rows); err != nil {
			return nil, err
		}
		return func(ar array.Array) (array.Array, error) { return ar.Filter(x) }, nil
	case RowSlice:
		return func(ar array.Array) (array.Array, error) { return ar.Slice(array.Slice(x)), nil }, nil
	case RowMask:
		vals, err := maskValues(x.Mask)
		if err != nil {
			return nil, err
		}
		return rowPicker(RowBools(vals), rows)
	}
	return nil, fmt.Errorf("frame.Table Select: row selector of type %T is not one of frame.RowIndex, frame.RowList, frame.RowBools, frame.RowSlice, or frame.RowMask: %w", sel, ErrUnsupportedIndexType)
}

func allColumns(kl *keylist.List[string, array.Array]) []int {
	cis := make([]int, kl.Len())
	for i := range cis {
		cis[i] = i
	}
	return cis
}

// colIndex returns the position of the column with the given key,
// which must be a position in [0, n) or a name.
func colIndex(kl *keylist.List[string, array.Array], k Key) (int, error) {
	switch k.kind {
	case keyPos:
		if err := kl.IndexIsValid(k.pos); err != nil {
			return 0, fmt.Errorf("frame.Table Select: column %d is out of range for %d columns: %w", k.pos, kl.Len(), ErrIndexOutOfRange)
		}
		return k.pos, nil
	case keyLabel:
		ci := kl.IndexByKey(k.name)
		if ci < 0 {
			return 0, notFound("Select", k.name, kl.Keys)
		}
		return ci, nil
	}
	return 0, fmt.Errorf("frame.Table Select: an open column key selects no column: %w", ErrUnsupportedIndexType)
}

// sliceBound returns the slice bound for a key. A name resolves to
// its position, or the position after it for a stop bound, so that
// the named column is included either way.
func sliceBound(kl *keylist.List[string, array.Array], k Key, stop bool) (array.Bound, error) {
	switch k.kind {
	case keyOpen:
		return array.Bound{}, nil
	case keyPos:
		return array.At(k.pos), nil
	}
	ci, err := colIndex(kl, k)
	if err != nil {
		return array.Bound{}, err
	}
	if stop {
		ci++
	}
	return array.At(ci), nil
}

// colIndexes normalizes a column selector to the list of selected
// column positions, in selection order.
func colIndexes(kl *keylist.List[string, array.Array], sel ColSelector) ([]int, error) {
	switch x := sel.(type) {
	case ColIndex:
		ci, err := colIndex(kl, Pos(int(x)))
		if err != nil {
			return nil, err
		}
		return []int{ci}, nil
	case ColName:
		ci, err := colIndex(kl, Label(string(x)))
		if err != nil {
			return nil, err
		}
		return []int{ci}, nil
	case ColList:
		cis := make([]int, len(x))
		for i, k := range x {
			ci, err := colIndex(kl, k)
			if err != nil {
				return nil, err
			}
			cis[i] = ci
		}
		return cis, nil
	case ColSlice:
		start, err := sliceBound(kl, x.Start, false)
		if err != nil {
			return nil, err
		}
		stop, err := sliceBound(kl, x.Stop, true)
		if err != nil {
			return nil, err
		}
		return array.Slice{Start: start, Stop: stop, Step: x.Step}.Indices(kl.Len()), nil
	}
	return nil, fmt.Errorf("frame.Table Select: column selector of type %T is not one of frame.ColIndex, frame.ColName, frame.ColList, or frame.ColSlice: %w", sel, ErrUnsupportedIndexType)
}

// pickRows applies the row selection to each of the given columns.
func pickRows(kl *keylist.List[string, array.Array], cis []int, pick rowPick) ([]Column, error) {
	cols := make([]Column, len(cis))
	for i, ci := range cis {
		ar, err := pick(kl.Values[ci])
		if err != nil {
			return nil, fmt.Errorf("frame.Table Select: column %q: %w", kl.Keys[ci], err)
		}
		cols[i] = Column{Name: kl.Keys[ci], Data: ar}
	}
	return cols, nil
}

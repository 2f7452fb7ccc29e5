// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/podata/po/array"
)

// Index is an index expression for [Table.Select]. It is one of
// [Name], [NameList], [MaskTable] or [RowCol].
// Use [ParseIndex] to convert dynamically typed values.
type Index interface {
	isIndex()
}

// Name selects a single column as a one-column table.
type Name string

// NameList selects the named columns, in the given order.
type NameList []string

// MaskTable selects the rows for which the single boolean
// column of Mask is true, keeping all columns.
type MaskTable struct {
	Mask *Table
}

// RowCol selects rows and columns independently.
type RowCol struct {
	Row RowSelector
	Col ColSelector
}

func (Name) isIndex()      {}
func (NameList) isIndex()  {}
func (MaskTable) isIndex() {}
func (RowCol) isIndex()    {}

// RowSelector selects rows in a [RowCol] index. It is one of
// [RowIndex], [RowList], [RowBools], [RowSlice] or [RowMask].
type RowSelector interface {
	isRowSelector()
}

// RowIndex selects a single row, keeping the row dimension.
// Negative values count back from the end.
type RowIndex int

// RowList selects the rows at the given positions, in order.
// Negative values count back from the end.
type RowList []int

// RowBools selects the rows for which the mask is true.
// The mask must have one value per row.
type RowBools []bool

// RowSlice selects the rows in a slice.
type RowSlice array.Slice

// RowMask selects the rows for which the single boolean
// column of Mask is true.
type RowMask struct {
	Mask *Table
}

func (RowIndex) isRowSelector() {}
func (RowList) isRowSelector()  {}
func (RowBools) isRowSelector() {}
func (RowSlice) isRowSelector() {}
func (RowMask) isRowSelector()  {}

// ColSelector selects columns in a [RowCol] index. It is one of
// [ColIndex], [ColName], [ColList] or [ColSlice].
type ColSelector interface {
	isColSelector()
}

// ColIndex selects the column at the given position,
// which must be in [0, NumColumns).
type ColIndex int

// ColName selects the column with the given name.
type ColName string

// ColList selects the columns given by position or name, in order.
type ColList []Key

// ColSlice selects a slice of the columns, where each bound
// is an open [Key], a position, or a column name. A name Start
// resolves to the position of that column and a name Stop to the
// position after it, so that the named stop column is included.
type ColSlice struct {
	Start Key
	Stop  Key
	Step  int
}

func (ColIndex) isColSelector() {}
func (ColName) isColSelector()  {}
func (ColList) isColSelector()  {}
func (ColSlice) isColSelector() {}

// keyKinds are the kinds of [Key].
type keyKind int

const (
	keyOpen keyKind = iota
	keyPos
	keyLabel
)

// Key is a column reference by position or by name.
// The zero value is an open bound, used in [ColSlice].
type Key struct {
	kind keyKind
	pos  int
	name string
}

// Pos returns a [Key] for the column at the given position.
func Pos(i int) Key { return Key{kind: keyPos, pos: i} }

// Label returns a [Key] for the column with the given name.
func Label(name string) Key { return Key{kind: keyLabel, name: name} }

// IsOpen returns whether the key is the zero, open bound.
func (k Key) IsOpen() bool { return k.kind == keyOpen }

// String returns the position, the quoted name, or "" for an open key.
func (k Key) String() string {
	switch k.kind {
	case keyPos:
		return strconv.Itoa(k.pos)
	case keyLabel:
		return strconv.Quote(k.name)
	}
	return ""
}

// Tuple is a dynamically typed (row, column) index for [ParseIndex],
// which must have exactly two elements.
type Tuple []any

// ParseIndex converts a dynamically typed index value to an [Index]:
//   - string: [Name]
//   - []string, or []any of strings: [NameList]
//   - *Table: [MaskTable]
//   - [Tuple] of length 2: [RowCol], using [ParseRow] and [ParseCol]
//   - an [Index]: returned as is
//
// A Tuple of another length returns [ErrShape], and any other value
// returns [ErrUnsupportedIndexType].
func ParseIndex(v any) (Index, error) {
	switch x := v.(type) {
	case Index:
		return x, nil
	case string:
		return Name(x), nil
	case []string:
		return NameList(x), nil
	case *Table:
		return MaskTable{Mask: x}, nil
	case []any:
		nms := make(NameList, len(x))
		for i, e := range x {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("frame.ParseIndex: list element %v of type %T is not a column name: %w", e, e, ErrUnsupportedIndexType)
			}
			nms[i] = s
		}
		return nms, nil
	case Tuple:
		if len(x) != 2 {
			return nil, fmt.Errorf("frame.ParseIndex: a (row, column) tuple must have 2 elements, got %d: %w", len(x), ErrShape)
		}
		row, err := ParseRow(x[0])
		if err != nil {
			return nil, err
		}
		col, err := ParseCol(x[1])
		if err != nil {
			return nil, err
		}
		return RowCol{Row: row, Col: col}, nil
	}
	return nil, fmt.Errorf("frame.ParseIndex: index of type %T is not one of string, []string, *frame.Table, or a frame.Tuple of (row, column): %w", v, ErrUnsupportedIndexType)
}

// asInt returns the value of any Go integer type as an int.
func asInt(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return int(rv.Int()), true
	case rv.CanUint():
		return int(rv.Uint()), true
	}
	return 0, false
}

// ParseRow converts a dynamically typed row selector to a [RowSelector]:
// an integer is a [RowIndex], []int or []any of integers a [RowList],
// []bool or []any of bools a [RowBools], an [array.Slice] a [RowSlice],
// and a *Table a [RowMask]. Anything else returns [ErrUnsupportedIndexType].
func ParseRow(v any) (RowSelector, error) {
	switch x := v.(type) {
	case RowSelector:
		return x, nil
	case *Table:
		return RowMask{Mask: x}, nil
	case []int:
		return RowList(x), nil
	case []bool:
		return RowBools(x), nil
	case array.Slice:
		return RowSlice(x), nil
	case []any:
		return parseRowList(x)
	}
	if i, ok := asInt(v); ok {
		return RowIndex(i), nil
	}
	return nil, fmt.Errorf("frame.ParseRow: row selector of type %T is not one of int, []int, []bool, array.Slice, or *frame.Table: %w", v, ErrUnsupportedIndexType)
}

func parseRowList(x []any) (RowSelector, error) {
	if len(x) == 0 {
		return RowList{}, nil
	}
	if _, isBool := x[0].(bool); isBool {
		bs := make(RowBools, len(x))
		for i, e := range x {
			b, ok := e.(bool)
			if !ok {
				return nil, fmt.Errorf("frame.ParseRow: mixed row list element %v of type %T: %w", e, e, ErrUnsupportedIndexType)
			}
			bs[i] = b
		}
		return bs, nil
	}
	rl := make(RowList, len(x))
	for i, e := range x {
		n, ok := asInt(e)
		if !ok {
			return nil, fmt.Errorf("frame.ParseRow: row list element %v of type %T is not an integer: %w", e, e, ErrUnsupportedIndexType)
		}
		rl[i] = n
	}
	return rl, nil
}

// ParseCol converts a dynamically typed column selector to a [ColSelector]:
// an integer is a [ColIndex], a string a [ColName], a [Key] the
// corresponding one of those, []string, []int or []any of integers
// and strings a [ColList], and an [array.Slice] a [ColSlice].
// Anything else, including floating point values, returns
// [ErrUnsupportedIndexType].
func ParseCol(v any) (ColSelector, error) {
	switch x := v.(type) {
	case ColSelector:
		return x, nil
	case string:
		return ColName(x), nil
	case Key:
		switch x.kind {
		case keyPos:
			return ColIndex(x.pos), nil
		case keyLabel:
			return ColName(x.name), nil
		}
	case []string:
		cl := make(ColList, len(x))
		for i, s := range x {
			cl[i] = Label(s)
		}
		return cl, nil
	case []int:
		cl := make(ColList, len(x))
		for i, p := range x {
			cl[i] = Pos(p)
		}
		return cl, nil
	case []any:
		cl := make(ColList, len(x))
		for i, e := range x {
			k, err := parseKey(e)
			if err != nil {
				return nil, err
			}
			cl[i] = k
		}
		return cl, nil
	case array.Slice:
		cs := ColSlice{Step: x.Step}
		if x.Start.Set {
			cs.Start = Pos(x.Start.Value)
		}
		if x.Stop.Set {
			cs.Stop = Pos(x.Stop.Value)
		}
		return cs, nil
	default:
		if i, ok := asInt(v); ok {
			return ColIndex(i), nil
		}
	}
	return nil, fmt.Errorf("frame.ParseCol: column selector %v of type %T is not one of int, string, a list of them, or a slice: %w", v, v, ErrUnsupportedIndexType)
}

func parseKey(e any) (Key, error) {
	if s, ok := e.(string); ok {
		return Label(s), nil
	}
	if k, ok := e.(Key); ok && !k.IsOpen() {
		return k, nil
	}
	if i, ok := asInt(e); ok {
		return Pos(i), nil
	}
	return Key{}, fmt.Errorf("frame.ParseCol: column list element %v of type %T is not an integer or a string: %w", e, e, ErrUnsupportedIndexType)
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"testing"

	"github.com/podata/po/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letterTable(t *testing.T) *Table {
	dt, err := New(
		Column{Name: "a", Data: array.NewInt(1, 2, 3, 4)},
		Column{Name: "b", Data: array.NewFloat64(10, 20, 30, 40)},
		Column{Name: "c", Data: array.NewStrings("w", "x", "y", "z")},
		Column{Name: "d", Data: array.NewBool(true, false, true, false)},
		Column{Name: "e", Data: array.NewInt(5, 6, 7, 8)},
	)
	require.NoError(t, err)
	return dt
}

func boolTable(t *testing.T, vals ...bool) *Table {
	dt, err := New(Column{Name: "m", Data: array.NewBool(vals...)})
	require.NoError(t, err)
	return dt
}

// checkValid checks that a selection result satisfies
// the invariants of a constructed table.
func checkValid(t *testing.T, dt *Table) {
	t.Helper()
	rows, cols := dt.Shape()
	assert.Len(t, dt.Columns(), cols)
	for nm, cl := range dt.All() {
		assert.Equal(t, rows, cl.Len(), "column %q", nm)
		assert.Equal(t, 1, cl.NumDims())
		assert.NotEqual(t, array.TextKind, cl.Kind())
	}
	_, err := FromList(dt.list())
	assert.NoError(t, err)
}

func TestSelectName(t *testing.T) {
	dt := letterTable(t)
	sub, err := dt.Get("b")
	require.NoError(t, err)
	checkValid(t, sub)
	assert.Equal(t, []string{"b"}, sub.Columns())
	assert.Equal(t, 4, sub.NumRows())
	assert.Same(t, dt.Column("b"), sub.Column("b"))

	_, err = dt.Get("bb")
	assert.ErrorIs(t, err, ErrColumnNotFound)
	_, err = dt.Select(Name("nope"))
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestSelectNames(t *testing.T) {
	dt := letterTable(t)
	sub, err := dt.Get([]string{"e", "a"})
	require.NoError(t, err)
	checkValid(t, sub)
	assert.Equal(t, []string{"e", "a"}, sub.Columns())
	assert.Equal(t, []any{5, 6, 7, 8}, values(sub.Column("e")))

	sub, err = dt.Get([]any{"c", "d"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, sub.Columns())

	_, err = dt.Get([]string{"a", "zz", "yy"})
	assert.ErrorIs(t, err, ErrColumnNotFound)
	assert.ErrorContains(t, err, `"zz"`)

	_, err = dt.Get([]any{"a", 1})
	assert.ErrorIs(t, err, ErrUnsupportedIndexType)

	_, err = dt.Get([]string{"a", "a"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestSelectMask(t *testing.T) {
	dt, err := New(
		Column{Name: "x", Data: array.NewInt(1, 2, 3)},
		Column{Name: "y", Data: array.NewStrings("p", "q", "r")},
	)
	require.NoError(t, err)
	sub, err := dt.Get(boolTable(t, true, false, true))
	require.NoError(t, err)
	checkValid(t, sub)
	assert.Equal(t, []string{"x", "y"}, sub.Columns())
	assert.Equal(t, 2, sub.NumRows())
	assert.Equal(t, []any{1, 3}, values(sub.Column("x")))
	assert.Equal(t, []any{"p", "r"}, values(sub.Column("y")))

	sub, err = dt.Get(boolTable(t, false, false, false))
	require.NoError(t, err)
	assert.Equal(t, 0, sub.NumRows())
	assert.Equal(t, 2, sub.NumColumns())

	_, err = dt.Get(dt)
	assert.ErrorIs(t, err, ErrShape)

	empty, err := New()
	require.NoError(t, err)
	_, err = dt.Get(empty)
	assert.ErrorIs(t, err, ErrShape)

	ints, err := dt.Get("x")
	require.NoError(t, err)
	_, err = dt.Get(ints)
	assert.ErrorIs(t, err, ErrTypeKind)

	_, err = dt.Get(boolTable(t, true, false))
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = dt.Select(MaskTable{})
	assert.ErrorIs(t, err, ErrShape)
}

func TestSelectRowCol(t *testing.T) {
	dt := letterTable(t)

	sub, err := dt.Get(Tuple{1, 0})
	require.NoError(t, err)
	checkValid(t, sub)
	rows, cols := sub.Shape()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 1, cols)
	assert.Equal(t, []string{"a"}, sub.Columns())
	assert.Equal(t, []any{2}, values(sub.Column("a")))

	sub, err = dt.Get(Tuple{array.All(), array.From(-2)})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "e"}, sub.Columns())
	assert.Equal(t, 4, sub.NumRows())

	sub, err = dt.Get(Tuple{-1, "c"})
	require.NoError(t, err)
	assert.Equal(t, []any{"z"}, values(sub.Column("c")))

	sub, err = dt.Get(Tuple{[]int{3, 0}, []any{0, "c"}})
	require.NoError(t, err)
	checkValid(t, sub)
	assert.Equal(t, []string{"a", "c"}, sub.Columns())
	assert.Equal(t, []any{4, 1}, values(sub.Column("a")))
	assert.Equal(t, []any{"z", "w"}, values(sub.Column("c")))

	sub, err = dt.Get(Tuple{array.Span(1, 3), []string{"b"}})
	require.NoError(t, err)
	assert.Equal(t, []any{20.0, 30.0}, values(sub.Column("b")))

	sub, err = dt.Get(Tuple{array.All().By(-1), "a"})
	require.NoError(t, err)
	assert.Equal(t, []any{4, 3, 2, 1}, values(sub.Column("a")))

	sub, err = dt.Get(Tuple{[]bool{true, false, false, true}, "e"})
	require.NoError(t, err)
	assert.Equal(t, []any{5, 8}, values(sub.Column("e")))

	sub, err = dt.Get(Tuple{[]any{false, true, true, false}, "e"})
	require.NoError(t, err)
	assert.Equal(t, []any{6, 7}, values(sub.Column("e")))

	sub, err = dt.Get(Tuple{boolTable(t, false, true, false, true), []string{"a", "b"}})
	require.NoError(t, err)
	checkValid(t, sub)
	assert.Equal(t, []any{2, 4}, values(sub.Column("a")))
	assert.Equal(t, []any{20.0, 40.0}, values(sub.Column("b")))
}

func TestSelectColSlice(t *testing.T) {
	dt := letterTable(t)
	tests := []struct {
		sel  ColSlice
		cols []string
	}{
		{ColSlice{}, []string{"a", "b", "c", "d", "e"}},
		{ColSlice{Start: Label("b"), Stop: Label("d")}, []string{"b", "c", "d"}},
		{ColSlice{Start: Label("c")}, []string{"c", "d", "e"}},
		{ColSlice{Stop: Label("b")}, []string{"a", "b"}},
		{ColSlice{Start: Pos(1), Stop: Label("c")}, []string{"b", "c"}},
		{ColSlice{Start: Label("b"), Stop: Pos(-1)}, []string{"b", "c", "d"}},
		{ColSlice{Start: Label("d"), Stop: Label("b")}, []string{}},
		{ColSlice{Start: Label("e"), Stop: Label("e")}, []string{"e"}},
		{ColSlice{Step: 2}, []string{"a", "c", "e"}},
		{ColSlice{Step: -1}, []string{"e", "d", "c", "b", "a"}},
		{ColSlice{Start: Pos(-2)}, []string{"d", "e"}},
	}
	for _, tc := range tests {
		sub, err := dt.Select(RowCol{Row: RowSlice(array.All()), Col: tc.sel})
		require.NoError(t, err, "slice: %v:%v:%d", tc.sel.Start, tc.sel.Stop, tc.sel.Step)
		assert.Equal(t, tc.cols, sub.Columns(), "slice: %v:%v:%d", tc.sel.Start, tc.sel.Stop, tc.sel.Step)
		checkValid(t, sub)
	}

	_, err := dt.Select(RowCol{Row: RowSlice(array.All()), Col: ColSlice{Start: Label("zz")}})
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestSelectErrors(t *testing.T) {
	dt := letterTable(t)
	tests := []struct {
		idx any
		err error
	}{
		{Tuple{0, 1.5}, ErrUnsupportedIndexType},
		{Tuple{1.5, 0}, ErrUnsupportedIndexType},
		{Tuple{0, []any{0, 2.5}}, ErrUnsupportedIndexType},
		{Tuple{0, true}, ErrUnsupportedIndexType},
		{Tuple{"a", 0}, ErrUnsupportedIndexType},
		{Tuple{nil, 0}, ErrUnsupportedIndexType},
		{Tuple{0, nil}, ErrUnsupportedIndexType},
		{Tuple{0, 0, 0}, ErrShape},
		{Tuple{0}, ErrShape},
		{Tuple{boolTable(t, true, true, true, true), 0}, nil},
		{Tuple{dt, 0}, ErrShape},
		{Tuple{mustTable(dt.Get("a")), 0}, ErrTypeKind},
		{Tuple{[]bool{true}, 0}, ErrLengthMismatch},
		{Tuple{0, 5}, ErrIndexOutOfRange},
		{Tuple{0, -1}, ErrIndexOutOfRange},
		{Tuple{0, []int{0, 9}}, ErrIndexOutOfRange},
		{Tuple{4, 0}, ErrIndexOutOfRange},
		{Tuple{-5, 0}, ErrIndexOutOfRange},
		{Tuple{[]int{0, 7}, 0}, ErrIndexOutOfRange},
		{Tuple{0, "zz"}, ErrColumnNotFound},
		{Tuple{0, []int{1, 1}}, ErrDuplicateName},
		{5, ErrUnsupportedIndexType},
		{nil, ErrUnsupportedIndexType},
		{3.5, ErrUnsupportedIndexType},
		{map[string]int{}, ErrUnsupportedIndexType},
	}
	for _, tc := range tests {
		_, err := dt.Get(tc.idx)
		if tc.err == nil {
			assert.NoError(t, err, "index: %#v", tc.idx)
			continue
		}
		assert.ErrorIs(t, err, tc.err, "index: %#v", tc.idx)
	}

	_, err := dt.Select(nil)
	assert.ErrorIs(t, err, ErrUnsupportedIndexType)
	_, err = dt.Select(RowCol{Col: ColIndex(0)})
	assert.ErrorIs(t, err, ErrUnsupportedIndexType)
	_, err = dt.Select(RowCol{Row: RowIndex(0)})
	assert.ErrorIs(t, err, ErrUnsupportedIndexType)
	_, err = dt.Select(RowCol{Row: RowIndex(0), Col: ColList{{}}})
	assert.ErrorIs(t, err, ErrUnsupportedIndexType)
}

// mustTable returns the table, panicking on error.
func mustTable(dt *Table, err error) *Table {
	if err != nil {
		panic(err)
	}
	return dt
}

func TestSelectMeta(t *testing.T) {
	dt := letterTable(t)
	dt.SetName("letters")
	dt.Meta.SetFilename("letters.csv")
	sub, err := dt.Get([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, "letters", sub.Name())
	assert.Equal(t, "letters.csv", sub.Meta.Filename())

	sub.SetName("sub")
	assert.Equal(t, "letters", dt.Name())
}

func TestSelectNoColumns(t *testing.T) {
	dt, err := New()
	require.NoError(t, err)
	rows := []RowSelector{RowIndex(0), RowIndex(-3), RowList{0, 5}, RowSlice(array.All()), RowBools{}}
	for _, row := range rows {
		sub, err := dt.Select(RowCol{Row: row, Col: ColList{}})
		require.NoError(t, err, "row: %#v", row)
		r, c := sub.Shape()
		assert.Equal(t, 0, r)
		assert.Equal(t, 0, c)
	}

	_, err = dt.Select(RowCol{Row: RowBools{true}, Col: ColList{}})
	assert.ErrorIs(t, err, ErrLengthMismatch)
	_, err = dt.Select(RowCol{Row: RowIndex(0), Col: ColIndex(0)})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = dt.Select(RowCol{Row: nil, Col: ColList{}})
	assert.ErrorIs(t, err, ErrUnsupportedIndexType)
}

func TestHeadTail(t *testing.T) {
	dt := letterTable(t)
	tests := []struct {
		head bool
		n    int
		a    []any
	}{
		{true, 2, []any{1, 2}},
		{true, 10, []any{1, 2, 3, 4}},
		{true, 0, []any{}},
		{true, -1, []any{1, 2, 3}},
		{false, 1, []any{4}},
		{false, 3, []any{2, 3, 4}},
		{false, 0, []any{}},
		{false, -1, []any{2, 3, 4}},
	}
	for _, tc := range tests {
		var sub *Table
		var err error
		if tc.head {
			sub, err = dt.Head(tc.n)
		} else {
			sub, err = dt.Tail(tc.n)
		}
		require.NoError(t, err)
		assert.Equal(t, tc.a, values(sub.Column("a")), "head: %v n: %d", tc.head, tc.n)
		assert.Equal(t, 5, sub.NumColumns())
	}
}

func TestParseSelectors(t *testing.T) {
	row, err := ParseRow(int8(2))
	require.NoError(t, err)
	assert.Equal(t, RowIndex(2), row)
	row, err = ParseRow([]any{})
	require.NoError(t, err)
	assert.Equal(t, RowList{}, row)
	row, err = ParseRow(array.From(1))
	require.NoError(t, err)
	assert.Equal(t, RowSlice(array.From(1)), row)
	_, err = ParseRow(true)
	assert.ErrorIs(t, err, ErrUnsupportedIndexType)
	_, err = ParseRow([]any{true, 1})
	assert.ErrorIs(t, err, ErrUnsupportedIndexType)

	col, err := ParseCol(uint(3))
	require.NoError(t, err)
	assert.Equal(t, ColIndex(3), col)
	col, err = ParseCol(Pos(2))
	require.NoError(t, err)
	assert.Equal(t, ColIndex(2), col)
	col, err = ParseCol(Label("x"))
	require.NoError(t, err)
	assert.Equal(t, ColName("x"), col)
	col, err = ParseCol([]any{1, "b"})
	require.NoError(t, err)
	assert.Equal(t, ColList{Pos(1), Label("b")}, col)
	col, err = ParseCol(array.Span(1, 3))
	require.NoError(t, err)
	assert.Equal(t, ColSlice{Start: Pos(1), Stop: Pos(3)}, col)
	_, err = ParseCol(Key{})
	assert.ErrorIs(t, err, ErrUnsupportedIndexType)
	_, err = ParseCol(float32(1))
	assert.ErrorIs(t, err, ErrUnsupportedIndexType)

	assert.Equal(t, "3", Pos(3).String())
	assert.Equal(t, `"a"`, Label("a").String())
	assert.Equal(t, "", Key{}.String())
	assert.True(t, Key{}.IsOpen())
}

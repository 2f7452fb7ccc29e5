// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csvio

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/podata/po/array"
	"github.com/podata/po/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mixedCSV = `name,score,ok,n,note
x,1.5,true,1,hi
y,2,false,2,
z,,True,3,there
`

func values(ar array.Array) []any {
	vals := make([]any, ar.Len())
	for i := range vals {
		vals[i] = ar.Value(i)
	}
	return vals
}

func TestReadCSV(t *testing.T) {
	dt, err := ReadCSV(strings.NewReader(mixedCSV), Comma)
	require.NoError(t, err)
	rows, cols := dt.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 5, cols)
	assert.Equal(t, []string{"name", "score", "ok", "n", "note"}, dt.Columns())

	dts, err := dt.Dtypes()
	require.NoError(t, err)
	assert.Equal(t, []any{"string", "float", "bool", "int", "string"}, values(dts.Column("dtype")))

	assert.Equal(t, []any{"x", "y", "z"}, values(dt.Column("name")))
	assert.Equal(t, []any{true, false, true}, values(dt.Column("ok")))
	assert.Equal(t, []any{1, 2, 3}, values(dt.Column("n")))
	assert.Equal(t, []any{"hi", nil, "there"}, values(dt.Column("note")))
	score := dt.Column("score").(*array.Float64)
	assert.Equal(t, []float64{1.5, 2}, score.Values[:2])
	assert.True(t, math.IsNaN(score.Values[2]))
}

func TestReadCSVMissing(t *testing.T) {
	dt, err := ReadCSV(strings.NewReader("a,b\n1,x\n,y\n3,z\n"), Comma)
	require.NoError(t, err)
	assert.Equal(t, array.FloatKind, dt.Column("a").Kind())

	dt, err = ReadCSV(strings.NewReader("a,b\ntrue,1\n,2\n"), Comma)
	require.NoError(t, err)
	assert.Equal(t, array.ObjectKind, dt.Column("a").Kind())
	assert.Equal(t, []any{true, nil}, values(dt.Column("a")))

	dt, err = ReadCSV(strings.NewReader("a,b\ntrue,1\n1,2\n"), Comma)
	require.NoError(t, err)
	assert.Equal(t, []any{"true", "1"}, values(dt.Column("a")))

	dt, err = ReadCSV(strings.NewReader("a,b\n,1\n,2\n"), Comma)
	require.NoError(t, err)
	assert.Equal(t, []any{nil, nil}, values(dt.Column("a")))
}

func TestReadCSVShape(t *testing.T) {
	dt, err := ReadCSV(strings.NewReader("a\tb\n1\t2\n"), Detect)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, dt.Columns())

	dt, err = ReadCSV(strings.NewReader("a b\n1 2\n"), Space)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, dt.Columns())

	dt, err = ReadCSV(strings.NewReader("a,,c\n1,2,3\n"), Detect)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "col_1", "c"}, dt.Columns())

	dt, err = ReadCSV(strings.NewReader("a,b\n"), Comma)
	require.NoError(t, err)
	rows, cols := dt.Shape()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 2, cols)

	dt, err = ReadCSV(strings.NewReader(""), Comma)
	require.NoError(t, err)
	assert.Equal(t, 0, dt.NumColumns())

	_, err = ReadCSV(strings.NewReader("a,a\n1,2\n"), Comma)
	assert.ErrorIs(t, err, frame.ErrDuplicateName)

	_, err = ReadCSV(strings.NewReader("a,b\n1\n"), Comma)
	assert.Error(t, err)
}

func TestInferKind(t *testing.T) {
	assert.Equal(t, array.IntKind, InferKind("42"))
	assert.Equal(t, array.IntKind, InferKind("-7"))
	assert.Equal(t, array.FloatKind, InferKind("4.2"))
	assert.Equal(t, array.FloatKind, InferKind("1e3"))
	assert.Equal(t, array.FloatKind, InferKind("NaN"))
	assert.Equal(t, array.BoolKind, InferKind("FALSE"))
	assert.Equal(t, array.ObjectKind, InferKind("abc"))
	assert.Equal(t, array.ObjectKind, InferKind("1.2.3"))

	assert.Equal(t, array.FloatKind, ColumnKind([]string{"1", "2.5", ""}))
	assert.Equal(t, array.IntKind, ColumnKind([]string{"1", "", "3"}))
	assert.Equal(t, array.ObjectKind, ColumnKind([]string{"1", "x"}))
	assert.Equal(t, array.ObjectKind, ColumnKind([]string{"", ""}))
	assert.Equal(t, array.ObjectKind, ColumnKind(nil))
}

func TestWriteCSV(t *testing.T) {
	dt, err := ReadCSV(strings.NewReader(mixedCSV), Comma)
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, WriteCSV(&b, dt, Comma, true))
	assert.Equal(t, strings.Replace(mixedCSV, "True", "true", 1), b.String())

	b.Reset()
	sub, err := dt.Get(frame.Tuple{[]int{0}, []string{"n", "name"}})
	require.NoError(t, err)
	require.NoError(t, WriteCSV(&b, sub, Tab, false))
	assert.Equal(t, "1\tx\n", b.String())
}

func TestOpenCSV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "people.csv")
	require.NoError(t, os.WriteFile(fn, []byte(mixedCSV), 0666))
	dt, err := OpenCSV(fn, Detect)
	require.NoError(t, err)
	assert.Equal(t, "people", dt.Name())
	assert.Equal(t, fn, dt.Meta.Filename())
	assert.Equal(t, 3, dt.NumRows())

	dt, err = OpenFS(os.DirFS(filepath.Dir(fn)), "people.csv", Comma)
	require.NoError(t, err)
	assert.Equal(t, 5, dt.NumColumns())

	_, err = OpenCSV(filepath.Join(t.TempDir(), "none.csv"), Comma)
	assert.Error(t, err)

	t.Chdir(filepath.Dir(fn))
	dt, err = OpenCSV("people.csv", Comma)
	require.NoError(t, err)
	assert.Equal(t, "people.csv", dt.Meta.Filename())
	assert.Equal(t, "people", dt.Name())
}

func TestDelims(t *testing.T) {
	var dl Delims
	require.NoError(t, dl.SetString("comma"))
	assert.Equal(t, Comma, dl)
	require.NoError(t, dl.SetString(`\t`))
	assert.Equal(t, Tab, dl)
	require.NoError(t, dl.SetString(""))
	assert.Equal(t, Detect, dl)
	assert.Error(t, dl.SetString(";"))
	assert.Equal(t, "space", Space.String())
	assert.Equal(t, "Delims(9)", Delims(9).String())
	assert.Equal(t, ' ', Space.Rune())
}

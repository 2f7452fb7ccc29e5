// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"strconv"
	"strings"
	"text/tabwriter"
)

// MaxPrintRows is the maximum number of rows printed by [Table.String].
var MaxPrintRows = 20

// String returns a text rendering of the table, with the row
// index on the left and one aligned column per table column,
// followed by the table [Table.Label]. At most [MaxPrintRows]
// rows are shown, eliding the middle.
func (dt *Table) String() string {
	kl := dt.list()
	rows := numRows(kl)
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', tabwriter.AlignRight)
	tw.Write([]byte("\t"))
	for _, k := range kl.Keys {
		tw.Write([]byte(k + "\t"))
	}
	tw.Write([]byte("\n"))
	row := func(r int) {
		tw.Write([]byte(strconv.Itoa(r) + "\t"))
		for _, cl := range kl.Values {
			tw.Write([]byte(cl.StringValue(r) + "\t"))
		}
		tw.Write([]byte("\n"))
	}
	if rows <= MaxPrintRows {
		for r := range rows {
			row(r)
		}
	} else {
		half := MaxPrintRows / 2
		for r := range half {
			row(r)
		}
		tw.Write([]byte("..." + strings.Repeat("\t...", len(kl.Keys)) + "\t\n"))
		for r := rows - half; r < rows; r++ {
			row(r)
		}
	}
	tw.Flush()
	b.WriteString("\n" + dt.Label() + "\n")
	return b.String()
}

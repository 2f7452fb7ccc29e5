// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/podata/po/csvio"
	"github.com/podata/po/frame"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B5CF6")).
			Bold(true).
			Padding(0, 1)

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#334155"))
)

// render writes the table to w in the configured format.
func render(w io.Writer, dt *frame.Table, cfg *Config) error {
	switch cfg.Format {
	case "csv":
		return csvio.WriteCSV(w, dt, csvio.Comma, true)
	case "table", "":
		_, err := fmt.Fprintln(w, renderTable(dt, cfg.MaxRows))
		return err
	}
	return fmt.Errorf("po: unknown output format %q (must be table or csv)", cfg.Format)
}

// printRows returns the rows to print out of the given number,
// with -1 marking where rows are elided when rows > maxRows > 0.
func printRows(rows, maxRows int) []int {
	var prs []int
	if maxRows <= 0 || rows <= maxRows {
		for r := range rows {
			prs = append(prs, r)
		}
		return prs
	}
	head := (maxRows + 1) / 2
	for r := range head {
		prs = append(prs, r)
	}
	prs = append(prs, -1)
	for r := rows - (maxRows - head); r < rows; r++ {
		prs = append(prs, r)
	}
	return prs
}

// renderTable returns the table as a bordered text table, with the row
// index in the first column, followed by the table label.
func renderTable(dt *frame.Table, maxRows int) string {
	names := dt.Columns()
	hdrs := append([]string{""}, names...)
	var rows [][]string
	for _, r := range printRows(dt.NumRows(), maxRows) {
		row := make([]string, len(hdrs))
		if r < 0 {
			for i := range row {
				row[i] = "…"
			}
			rows = append(rows, row)
			continue
		}
		row[0] = strconv.Itoa(r)
		for ci := range names {
			row[ci+1] = dt.ColumnByIndex(ci).StringValue(r)
		}
		rows = append(rows, row)
	}
	tb := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return indexStyle
			}
			return cellStyle
		}).
		Headers(hdrs...).
		Rows(rows...)
	return tb.String() + "\n" + dt.Label()
}

package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ColumnWidth is the width of every value column.
const ColumnWidth = 20

// Table is one titled block of the report: a header row and one row per
// symbol length. The first cell of every row is the index column.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

// Lines renders the table, title first.
func (t Table) Lines() []string {
	lines := make([]string, 0, len(t.Rows)+2)
	lines = append(lines, t.Title, formatRow(t.Header))
	for _, row := range t.Rows {
		lines = append(lines, formatRow(row))
	}
	return lines
}

func formatRow(row []string) string {
	var b strings.Builder
	for i, cell := range row {
		if i == 0 {
			b.WriteString(cell)
			continue
		}
		b.WriteByte(' ')
		b.WriteString(padLeft(cell, ColumnWidth))
	}
	return b.String()
}

// padLeft right-aligns value in width terminal columns. Values wider than
// width are returned unchanged.
func padLeft(value string, width int) string {
	valueWidth := runewidth.StringWidth(value)
	if valueWidth >= width {
		return value
	}
	return strings.Repeat(" ", width-valueWidth) + value
}

// Package formatter renders aligned text tables for terminal reports.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// minColumnWidth keeps separator rows at least "---" wide.
const minColumnWidth = 3

// FormatTable lays out header and rows as a pipe-delimited table whose columns
// are padded to the widest cell, measured in display width so accented and
// wide characters line up. Short rows are padded with empty cells.
func FormatTable(header []string, rows [][]string) string {
	return strings.Join(TableLines(header, rows), "\n")
}

// TableLines is FormatTable split into lines.
func TableLines(header []string, rows [][]string) []string {
	table := make([][]string, 0, len(rows)+1)
	if len(header) > 0 {
		table = append(table, header)
	}

	table = append(table, rows...)

	if len(table) == 0 {
		return nil
	}

	colCount := 0
	for _, row := range table {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	colWidths := make([]int, colCount)

	for _, row := range table {
		for i, cell := range row {
			width := runewidth.StringWidth(strings.TrimSpace(cell))
			if width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	for i := range colWidths {
		if colWidths[i] < minColumnWidth {
			colWidths[i] = minColumnWidth
		}
	}

	var result []string

	for i, row := range table {
		result = append(result, formatRow(row, colWidths))

		if i == 0 && len(header) > 0 {
			result = append(result, separatorRow(colWidths))
		}
	}

	return result
}

func formatRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = strings.TrimSpace(row[j])
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		if padding := width - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

func separatorRow(colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	return sb.String()
}

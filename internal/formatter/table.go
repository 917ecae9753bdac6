// Package formatter renders fixed-width console tables for the CLI tools.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table renders rows under a header as a pipe-delimited table. Column widths
// use display width, so wide characters stay aligned.
func Table(headers []string, rows [][]string) string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return ""
	}

	widths := make([]int, colCount)
	measure := func(row []string) {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	var sb strings.Builder

	writeRow := func(row []string) {
		sb.WriteString("|")

		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			sb.WriteString(" ")
			sb.WriteString(pad(cell, widths[i]))
			sb.WriteString(" |")
		}

		sb.WriteString("\n")
	}

	writeRow(headers)

	separator := make([]string, colCount)
	for i := range separator {
		separator[i] = strings.Repeat("-", widths[i])
	}

	writeRow(separator)

	for _, row := range rows {
		writeRow(row)
	}

	return sb.String()
}

// pad right-fills cell to the target display width.
func pad(cell string, width int) string {
	gap := width - runewidth.StringWidth(cell)
	if gap <= 0 {
		return cell
	}

	return cell + strings.Repeat(" ", gap)
}

package report

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// renderTable lays out rows as a pipe-delimited text table with a
// separator under the first row. Columns are padded to the widest cell by
// display width, so wide runes in addresses keep the grid aligned.
func renderTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	widths := make([]int, colCount)
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	var b strings.Builder
	writeRow := func(row []string) {
		b.WriteString("|")
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(" ")
			b.WriteString(cell)
			if pad := widths[i] - runewidth.StringWidth(cell); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	writeRow(rows[0])
	b.WriteString("|")
	for i := 0; i < colCount; i++ {
		b.WriteString(" ")
		b.WriteString(strings.Repeat("-", widths[i]))
		b.WriteString(" |")
	}
	b.WriteString("\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}

	return b.String()
}

package ingest

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/comps-cli/internal/model"
)

// XLSXOptions selects the worksheet to read.
type XLSXOptions struct {
	SheetIndex int    // default 0
	SheetName  string // if set, overrides SheetIndex
}

// ParseXLSX reads one worksheet of a workbook into the same dataset shape
// the delimited parsers produce: first row header, remaining rows data.
func ParseXLSX(content []byte, opts XLSXOptions) (model.Dataset, error) {
	f, err := xlsx.OpenBinary(content)
	if err != nil {
		return model.Dataset{}, eris.Wrap(err, "ingest: open xlsx")
	}

	sheet, err := pickSheet(f, opts)
	if err != nil {
		return model.Dataset{}, err
	}
	if len(sheet.Rows) == 0 {
		return model.Dataset{}, eris.New("ingest: xlsx sheet has no header row")
	}

	header := rowToStrings(sheet.Rows[0])
	columns := make([]string, len(header))
	for i, col := range header {
		columns[i] = strings.TrimSpace(col)
	}

	rows := make([][]string, 0, len(sheet.Rows)-1)
	for _, row := range sheet.Rows[1:] {
		rows = append(rows, rowToStrings(row))
	}

	return model.Dataset{Columns: columns, Rows: rows}, nil
}

func pickSheet(f *xlsx.File, opts XLSXOptions) (*xlsx.Sheet, error) {
	if opts.SheetName != "" {
		sheet, ok := f.Sheet[opts.SheetName]
		if !ok {
			return nil, eris.Errorf("ingest: xlsx sheet %q not found", opts.SheetName)
		}
		return sheet, nil
	}
	if opts.SheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("ingest: xlsx sheet index %d out of range (workbook has %d sheets)", opts.SheetIndex, len(f.Sheets))
	}
	return f.Sheets[opts.SheetIndex], nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for j, cell := range row.Cells {
		cells[j] = cell.String()
	}
	return cells
}

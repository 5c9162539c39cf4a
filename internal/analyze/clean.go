// Package analyze derives comparison statistics from a validated dataset.
// Every function takes immutable inputs and returns fresh structures; no
// stage mutates the dataset it reads.
package analyze

import (
	"github.com/sells-group/comps-cli/internal/model"
)

// Clean derives per-record numeric fields from the mapped columns of a
// dataset. Unparseable cells become absent values on the record, which
// excludes the record from dependent statistics while keeping it visible
// in raw listings. Row order is preserved.
func Clean(ds model.Dataset, fm model.FieldMap) []model.CleanedRecord {
	idx := ds.ColumnIndex()
	records := make([]model.CleanedRecord, 0, len(ds.Rows))

	for i, row := range ds.Rows {
		rec := model.CleanedRecord{Index: i}

		if col, ok := fm[model.FieldAddress]; ok {
			rec.Address = ds.Value(row, idx, col)
		}
		if col, ok := fm[model.FieldDate]; ok {
			rec.Date = ds.Value(row, idx, col)
		}
		if col, ok := fm[model.FieldPrice]; ok {
			rec.Price = model.CleanPrice(ds.Value(row, idx, col))
		}
		if col, ok := fm[model.FieldSqft]; ok {
			rec.Sqft = model.ParseNumber(ds.Value(row, idx, col))
		}
		if col, ok := fm[model.FieldBeds]; ok {
			rec.Beds = model.ParseNumber(ds.Value(row, idx, col))
		}
		if col, ok := fm[model.FieldBaths]; ok {
			rec.Baths = model.ParseNumber(ds.Value(row, idx, col))
		}

		if price, ok := rec.Price.Float(); ok {
			if sqft, ok := rec.Sqft.Float(); ok && sqft > 0 {
				rec.PricePerSqft = model.Num(price / sqft)
			}
		}

		records = append(records, rec)
	}
	return records
}

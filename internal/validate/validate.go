// Package validate gates a mapped dataset before any analyzer runs.
package validate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sells-group/comps-cli/internal/model"
)

// Messages surfaced to the caller on gate outcomes.
const (
	MsgPriceColumnNotFound = "Price column not found"
	MsgNoValidPriceData    = "No valid price data found"
	MsgValidationOK        = "Data validation successful"
)

// Dataset checks that a mapped dataset can support price analysis.
// It fails when no price column is mapped, or when no record's cleaned
// price clears the plausibility floor (which rejects header rows,
// subtotals, and corrupted values that survived parsing). A mapped sqft
// column is coerced and its miss count logged, but never fails the gate.
// Downstream analyzers assume a dataset that passed here.
func Dataset(ds model.Dataset, fm model.FieldMap, priceFloor float64) (bool, string) {
	priceCol, ok := fm[model.FieldPrice]
	if !ok {
		return false, MsgPriceColumnNotFound
	}

	idx := ds.ColumnIndex()
	validPrices := 0
	for _, row := range ds.Rows {
		if model.CleanPrice(ds.Value(row, idx, priceCol)).GreaterThan(priceFloor) {
			validPrices++
		}
	}
	if validPrices == 0 {
		return false, MsgNoValidPriceData
	}

	if sqftCol, ok := fm[model.FieldSqft]; ok {
		validSqft := 0
		for _, row := range ds.Rows {
			if model.ParseNumber(ds.Value(row, idx, sqftCol)).GreaterThan(0) {
				validSqft++
			}
		}
		if missing := len(ds.Rows) - validSqft; missing > 0 {
			zap.L().Debug("validate: rows without usable square footage",
				zap.Int("missing", missing),
				zap.Int("total", len(ds.Rows)),
			)
		}
	}

	return true, fmt.Sprintf("%s (%d records with usable prices)", MsgValidationOK, validPrices)
}

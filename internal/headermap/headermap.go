// Package headermap reconciles the arbitrary column names of a sales
// export onto the canonical analysis vocabulary (price, address, beds,
// baths, sqft, date) via case-insensitive substring matching against a
// synonym table.
package headermap

import (
	"strings"

	"github.com/sells-group/comps-cli/internal/model"
)

// Synonyms lists, per canonical field, the substrings that identify it in
// a document column name. List order is significant: earlier synonyms win.
type Synonyms map[model.CanonicalField][]string

// Defaults is the built-in synonym table, covering the column vocabularies
// of the known county export styles.
func Defaults() Synonyms {
	return Synonyms{
		model.FieldPrice:   {"price", "saleamount", "sale amount", "sale price", "amount", "value"},
		model.FieldAddress: {"address", "property address", "location", "street address"},
		model.FieldBeds:    {"beds", "bedrooms", "br", "number of bedrooms", "bed"},
		model.FieldBaths:   {"baths", "bathrooms", "ba", "number of bathrooms", "bath"},
		model.FieldSqft:    {"sqft", "square feet", "squarefeet", "living area", "size", "living"},
		model.FieldDate:    {"date", "saledate", "sale date", "transaction date", "date sold"},
	}
}

// Map binds canonical fields to document columns. For each canonical key
// the synonym list is scanned in order, and within a synonym the columns
// in document order; the first column containing the synonym
// (case-insensitive) wins. Keys with no match are absent from the result.
func Map(columns []string, syn Synonyms) model.FieldMap {
	lowered := make([]string, len(columns))
	for i, col := range columns {
		lowered[i] = strings.ToLower(col)
	}

	fm := make(model.FieldMap)
	for _, key := range model.CanonicalFields {
	nextKey:
		for _, name := range syn[key] {
			needle := strings.ToLower(name)
			for i, col := range lowered {
				if strings.Contains(col, needle) {
					fm[key] = columns[i]
					break nextKey
				}
			}
		}
	}
	return fm
}

// MissingRequired returns the required canonical fields absent from the
// map. Only price is required; the other fields degrade gracefully.
func MissingRequired(fm model.FieldMap) []model.CanonicalField {
	var missing []model.CanonicalField
	if _, ok := fm[model.FieldPrice]; !ok {
		missing = append(missing, model.FieldPrice)
	}
	return missing
}

// MissingOptional returns the non-required canonical fields absent from
// the map, for warning-level reporting.
func MissingOptional(fm model.FieldMap) []model.CanonicalField {
	var missing []model.CanonicalField
	for _, key := range model.CanonicalFields {
		if key == model.FieldPrice {
			continue
		}
		if _, ok := fm[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

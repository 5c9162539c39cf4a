package model

// FormatKind identifies the framing of an uploaded sales export.
type FormatKind string

const (
	// FormatNarrative is the semi-structured appraiser text export
	// ("Address:" / "Parcel #:" blocks with sale lines).
	FormatNarrative FormatKind = "narrative"
	// FormatDollarDelimited is the "sep=$" export with $-separated fields.
	FormatDollarDelimited FormatKind = "dollar_delimited"
	// FormatStandardCSV is a plain comma-separated file with a header row.
	FormatStandardCSV FormatKind = "standard_csv"
	// FormatXLSX is a spreadsheet workbook, dispatched on file extension.
	FormatXLSX FormatKind = "xlsx"
)

// RawDocument is one uploaded sales export: raw bytes plus the name it
// arrived under. Never mutated.
type RawDocument struct {
	Content  []byte
	Filename string
}

// Dataset is a parsed document: ordered column names and rows of raw cell
// values in document order. Stages derive from a Dataset; none mutate it.
type Dataset struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ColumnIndex maps each column name to its position.
func (d Dataset) ColumnIndex() map[string]int {
	idx := make(map[string]int, len(d.Columns))
	for i, col := range d.Columns {
		idx[col] = i
	}
	return idx
}

// Value returns the named cell of a row, or "" when the row is short or
// the column unknown.
func (d Dataset) Value(row []string, idx map[string]int, column string) string {
	i, ok := idx[column]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// CanonicalField is one of the standardized analysis keys that downstream
// logic depends on by name, regardless of the source column header text.
type CanonicalField string

const (
	FieldPrice   CanonicalField = "price"
	FieldAddress CanonicalField = "address"
	FieldBeds    CanonicalField = "beds"
	FieldBaths   CanonicalField = "baths"
	FieldSqft    CanonicalField = "sqft"
	FieldDate    CanonicalField = "date"
)

// CanonicalFields lists all keys in presentation order.
var CanonicalFields = []CanonicalField{
	FieldPrice, FieldAddress, FieldBeds, FieldBaths, FieldSqft, FieldDate,
}

// FieldMap binds canonical keys to the concrete column names of one
// dataset. Keys with no matching column are simply absent.
type FieldMap map[CanonicalField]string

// CleanedRecord is one dataset row with its derived numeric fields.
// An absent derived field means the raw cell was missing or unparseable.
type CleanedRecord struct {
	Index        int    `json:"index"`
	Address      string `json:"address,omitempty"`
	Date         string `json:"date,omitempty"`
	Price        Number `json:"price"`
	Sqft         Number `json:"sqft"`
	Beds         Number `json:"beds"`
	Baths        Number `json:"baths"`
	PricePerSqft Number `json:"price_per_sqft"`
}

// Package ingest turns raw sales export files into uniform datasets.
// It detects the export framing (narrative text, $-delimited, standard
// CSV, or an XLSX workbook by extension) and parses each into ordered
// rows under a header, leaving all value interpretation to later stages.
package ingest

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/comps-cli/internal/model"
)

// Read parses a raw document into a dataset. Workbooks are dispatched on
// the .xlsx extension; everything else is classified by DetectFormat.
func Read(doc model.RawDocument, opts XLSXOptions) (model.Dataset, model.FormatKind, error) {
	if strings.HasSuffix(strings.ToLower(doc.Filename), ".xlsx") {
		ds, err := ParseXLSX(doc.Content, opts)
		return ds, model.FormatXLSX, err
	}

	kind, err := DetectFormat(doc.Content, doc.Filename)
	if err != nil {
		return model.Dataset{}, "", err
	}

	var ds model.Dataset
	switch kind {
	case model.FormatNarrative:
		ds, err = ParseNarrative(doc.Content)
	case model.FormatDollarDelimited:
		ds, err = ParseDollarDelimited(doc.Content)
	default:
		ds, err = ParseStandardCSV(doc.Content)
	}
	if err != nil {
		return model.Dataset{}, kind, eris.Wrapf(err, "ingest: parse %s as %s", doc.Filename, kind)
	}
	return ds, kind, nil
}

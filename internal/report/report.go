// Package report renders pipeline results for people and for machines.
package report

import (
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"

	"github.com/sells-group/comps-cli/internal/model"
)

// Analysis bundles everything one pipeline run produced for a file.
type Analysis struct {
	RunID      string                  `json:"run_id"`
	File       string                  `json:"file"`
	Format     model.FormatKind        `json:"format"`
	County     string                  `json:"county"`
	Fields     model.FieldMap          `json:"fields"`
	Warnings   []string                `json:"warnings,omitempty"`
	Records    []model.CleanedRecord   `json:"records,omitempty"`
	Stats      model.NeighborhoodStats `json:"stats"`
	Units      []model.UnitCohort      `json:"units"`
	Trend      []model.TrendPoint      `json:"trend,omitempty"`
	Subject    *model.SubjectProperty  `json:"subject,omitempty"`
	Comparison *model.ComparisonResult `json:"comparison,omitempty"`
}

// WriteJSON writes the analysis as indented JSON.
func WriteJSON(w io.Writer, a Analysis) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return eris.Wrap(err, "report: encode json")
	}
	return nil
}

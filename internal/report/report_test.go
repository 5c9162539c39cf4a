package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sells-group/comps-cli/internal/model"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{350000, "$350,000.00"},
		{1250.5, "$1,250.50"},
		{999, "$999.00"},
	}
	for _, tt := range tests {
		if got := Money(tt.in); got != tt.want {
			t.Errorf("Money(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMoneyOr(t *testing.T) {
	if got := MoneyOr(model.None(), "No Data"); got != "No Data" {
		t.Errorf("MoneyOr(absent) = %q", got)
	}
	if got := MoneyOr(model.Num(1000), "No Data"); got != "$1,000.00" {
		t.Errorf("MoneyOr(1000) = %q", got)
	}
}

func sampleAnalysis() Analysis {
	comparison := &model.ComparisonResult{
		NeighborhoodBaseline: model.Num(320000),
		SimilarBaseline:      model.Num(310000),
		SubjectPrice:         300000,
		Decision:             model.DecisionBuy,
	}
	return Analysis{
		RunID:  "run-1",
		File:   "sutton.csv",
		Format: model.FormatNarrative,
		County: "Seminole County",
		Fields: model.FieldMap{
			model.FieldPrice: "Sale Amount",
			model.FieldBeds:  "Bed",
		},
		Stats: model.NeighborhoodStats{
			Price:    model.Num(340000),
			Count:    12,
			MinPrice: model.Num(180000),
			MaxPrice: model.Num(520000),
		},
		Units: []model.UnitCohort{
			{Beds: 3, Baths: 2.5, Sqft: 1800, Price: model.Num(325000), Count: 2,
				MinPrice: model.Num(300000), MaxPrice: model.Num(350000),
				PricePerSqft: model.Num(180.55)},
		},
		Subject: &model.SubjectProperty{
			Address: "123 Main St", Beds: 3, Baths: 2.5, Sqft: 1800, Price: 300000,
		},
		Comparison: comparison,
	}
}

func TestText(t *testing.T) {
	out := Text(sampleAnalysis())

	for _, want := range []string{
		"# Comps Report: sutton.csv",
		"County: Seminole County",
		"- price: \"Sale Amount\"",
		"- sqft: (unmapped)",
		"- Price: $340,000.00",
		"- Range: $180,000.00 - $520,000.00",
		"- Price/SqFt: N/A",
		"| Beds |",
		"- Neighborhood Avg: $320,000.00",
		"- Exact Models Avg: No Exact Matches Found",
		"Decision: BUY",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestText_NoComparisonSection(t *testing.T) {
	a := sampleAnalysis()
	a.Subject = nil
	a.Comparison = nil

	out := Text(a)
	if strings.Contains(out, "Decision:") {
		t.Error("report without a subject must not render a decision")
	}
}

func TestWriteJSON_NullsForAbsent(t *testing.T) {
	a := sampleAnalysis()
	var buf bytes.Buffer
	if err := WriteJSON(&buf, a); err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}

	comparison := decoded["comparison"].(map[string]any)
	if comparison["exact_baseline"] != nil {
		t.Errorf("absent baseline must encode as null, got %v", comparison["exact_baseline"])
	}
	if comparison["neighborhood_baseline"] != 320000.0 {
		t.Errorf("neighborhood baseline = %v", comparison["neighborhood_baseline"])
	}
}

func TestRenderTable_Alignment(t *testing.T) {
	out := renderTable([][]string{
		{"Beds", "Price"},
		{"3", "$350,000.00"},
		{"10", "$99,000.00"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	// Separator sits under the header and every line is equally wide.
	if !strings.HasPrefix(lines[1], "| ---") {
		t.Errorf("missing separator: %q", lines[1])
	}
	for i := 1; i < len(lines); i++ {
		if len(lines[i]) != len(lines[0]) {
			t.Errorf("line %d width %d != header width %d", i, len(lines[i]), len(lines[0]))
		}
	}
}

package ingest

import (
	"testing"

	"github.com/sells-group/comps-cli/internal/model"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    model.FormatKind
	}{
		{
			name:    "narrative markers",
			content: "Address: 123 Main St - Lot 4\nParcel #: 12-34-56\n01/2023 $350,000 3 2.5 1800",
			want:    model.FormatNarrative,
		},
		{
			name:    "dollar sentinel",
			content: "sep=$\nAddress$Price\n1 Elm$100000",
			want:    model.FormatDollarDelimited,
		},
		{
			name:    "plain csv default",
			content: "Address,Price\n1 Elm,100000",
			want:    model.FormatStandardCSV,
		},
		{
			name:    "narrative wins over dollar sentinel",
			content: "sep=$\nAddress: 1 Elm - Lot 1\nParcel #: 9",
			want:    model.FormatNarrative,
		},
		{
			name:    "address marker alone is not narrative",
			content: "Address: 1 Elm\nPrice,Beds",
			want:    model.FormatStandardCSV,
		},
		{
			name:    "empty input",
			content: "",
			want:    model.FormatStandardCSV,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat([]byte(tt.content), "export.csv")
			if err != nil {
				t.Fatalf("DetectFormat() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDetectFormat_InvalidUTF8(t *testing.T) {
	_, err := DetectFormat([]byte{0xff, 0xfe, 0x00}, "bad.csv")
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
}

func TestDetectCounty(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"Sutton-Q3-sales.csv", "Seminole County"},
		{"anthem_exports.csv", "Orange County"},
		{"AUDOBON park.csv", "Orange County"},
		{"baylake2024.xlsx", "Orange County"},
		{"downtown.csv", "Unknown County"},
	}
	for _, tt := range tests {
		if got := DetectCounty(tt.filename); got != tt.want {
			t.Errorf("DetectCounty(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

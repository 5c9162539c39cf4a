package ingest

import (
	"strings"
	"unicode/utf8"

	"github.com/rotisserie/eris"

	"github.com/sells-group/comps-cli/internal/model"
)

// DetectFormat classifies the text framing of an export. Exactly one of
// narrative, dollar-delimited, or standard CSV is returned; the marker
// checks take precedence over the CSV default. Undecodable bytes are an
// ingestion error, not a format.
func DetectFormat(content []byte, filename string) (model.FormatKind, error) {
	if !utf8.Valid(content) {
		return "", eris.Errorf("ingest: %s is not valid UTF-8 text", filename)
	}
	text := string(content)

	if strings.Contains(text, "Address:") && strings.Contains(text, "Parcel #:") {
		return model.FormatNarrative, nil
	}
	if strings.Contains(text, "sep=$") {
		return model.FormatDollarDelimited, nil
	}
	return model.FormatStandardCSV, nil
}

// DetectCounty guesses the source county from the export's filename.
func DetectCounty(filename string) string {
	name := strings.ToLower(filename)
	switch {
	case strings.Contains(name, "sutton"):
		return "Seminole County"
	case strings.Contains(name, "anthem"),
		strings.Contains(name, "audobon"),
		strings.Contains(name, "baylake"):
		return "Orange County"
	default:
		return "Unknown County"
	}
}

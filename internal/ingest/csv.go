package ingest

import (
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/comps-cli/internal/model"
)

// dollarSentinel is the first line of a dollar-delimited export.
const dollarSentinel = "sep=$"

// ParseStandardCSV parses a comma-separated export. The first row is the
// header; quoted fields and embedded commas follow standard CSV rules.
func ParseStandardCSV(content []byte) (model.Dataset, error) {
	return parseDelimited(content, ',')
}

// ParseDollarDelimited parses a $-separated export. A leading "sep=$"
// sentinel line is discarded; the next line is the header.
func ParseDollarDelimited(content []byte) (model.Dataset, error) {
	text := string(content)
	if first, rest, found := strings.Cut(text, "\n"); found && strings.TrimRight(first, "\r") == dollarSentinel {
		text = rest
	} else if !found && strings.TrimRight(first, "\r") == dollarSentinel {
		text = ""
	}
	return parseDelimited([]byte(text), '$')
}

func parseDelimited(content []byte, comma rune) (model.Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = comma
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return model.Dataset{}, eris.Wrap(err, "ingest: read delimited content")
	}
	if len(records) == 0 {
		return model.Dataset{}, eris.New("ingest: document has no header row")
	}

	columns := make([]string, len(records[0]))
	for i, col := range records[0] {
		columns[i] = strings.TrimSpace(col)
	}

	return model.Dataset{Columns: columns, Rows: records[1:]}, nil
}

package ingest

import (
	"regexp"
	"strings"

	"github.com/sells-group/comps-cli/internal/model"
)

// Narrative export column names, matching the county assessor's layout.
const (
	colPropertyAddress = "Property Address"
	colDate            = "Date"
	colSaleAmount      = "Sale Amount"
	colBed             = "Bed"
	colBath            = "Bath"
	colLiving          = "Living"
)

var (
	addressRe   = regexp.MustCompile(`Address: (.*?) -`)
	candidateRe = regexp.MustCompile(`\d{2}/\d{4}|\$\d+,\d+`)
	dateRe      = regexp.MustCompile(`\d{2}/\d{4}`)
	priceRe     = regexp.MustCompile(`\$[\d,]+`)
	numberRe    = regexp.MustCompile(`\b\d+\.?\d*\b`)
)

// ParseNarrative extracts sale records from the semi-structured assessor
// text. Blocks repeat as an "Address:" line followed by sale lines; the
// address context persists until the next "Address:" line. A sale line
// must carry an MM/YYYY date, a $-prefixed price, and at least three
// numeric tokens that classify into bed, bath, and living area, otherwise
// it is dropped. Dropping beats guessing: the format has no column
// alignment to fall back on.
func ParseNarrative(content []byte) (model.Dataset, error) {
	var (
		rows           [][]string
		currentAddress string
	)

	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" ||
			strings.Contains(line, "Subdivision:") ||
			strings.Contains(line, "Parcel #:") {
			continue
		}

		if strings.Contains(line, "Address:") {
			if m := addressRe.FindStringSubmatch(line); m != nil {
				currentAddress = strings.TrimSpace(m[1])
			}
			continue
		}

		if !candidateRe.MatchString(line) {
			continue
		}

		date := dateRe.FindString(line)
		price := priceRe.FindString(line)
		if date == "" || price == "" {
			continue
		}

		// The date and price tokens carry digits of their own ("01",
		// "350", "000"); strip them so they cannot masquerade as bed,
		// bath, or living-area candidates.
		rest := strings.Replace(line, date, "", 1)
		rest = strings.Replace(rest, price, "", 1)
		numbers := numberRe.FindAllString(rest, -1)
		if len(numbers) < 3 {
			continue
		}

		fields, ok := classifyTokens(numbers)
		if !ok {
			continue
		}

		amount, ok := model.CleanPrice(price).Float()
		if !ok {
			continue
		}

		rows = append(rows, []string{
			currentAddress,
			date,
			model.FormatNumber(amount),
			model.FormatNumber(fields.bed),
			model.FormatNumber(fields.bath),
			model.FormatNumber(fields.living),
		})
	}

	return model.Dataset{
		Columns: []string{colPropertyAddress, colDate, colSaleAmount, colBed, colBath, colLiving},
		Rows:    rows,
	}, nil
}

// saleFields holds the disambiguated numeric tokens of one sale line.
type saleFields struct {
	bed    float64
	bath   float64
	living float64
}

// classifyTokens resolves a sale line's numeric tokens into bed, bath, and
// living area. Each field scans the tokens independently and takes the
// first match: bed is the first value strictly below 5, bath the first
// token whose text carries a decimal point, living the first value
// strictly between 1000 and 5000. The scans are deliberately not mutually
// exclusive; a token like "2.5" may bind to both bed and bath. All three
// must resolve or the line yields nothing.
func classifyTokens(tokens []string) (saleFields, bool) {
	var (
		f                          saleFields
		gotBed, gotBath, gotLiving bool
	)

	for _, tok := range tokens {
		v, ok := model.ParseNumber(tok).Float()
		if !ok {
			continue
		}
		if !gotBed && v < 5 {
			f.bed = v
			gotBed = true
		}
		if !gotBath && strings.Contains(tok, ".") {
			f.bath = v
			gotBath = true
		}
		if !gotLiving && v > 1000 && v < 5000 {
			f.living = v
			gotLiving = true
		}
	}

	return f, gotBed && gotBath && gotLiving
}

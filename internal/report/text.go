package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/comps-cli/internal/model"
)

var printer = message.NewPrinter(language.English)

// Money renders a price with a currency symbol and thousands separators.
func Money(v float64) string {
	return printer.Sprintf("$%.2f", v)
}

// MoneyOr renders an optional price, or the fallback when absent.
func MoneyOr(n model.Number, fallback string) string {
	if v, ok := n.Float(); ok {
		return Money(v)
	}
	return fallback
}

// Text renders a human-readable report for one analyzed file.
func Text(a Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Comps Report: %s\n", a.File)
	fmt.Fprintf(&b, "Run: %s\n", a.RunID)
	fmt.Fprintf(&b, "Format: %s\n", a.Format)
	fmt.Fprintf(&b, "County: %s\n\n", a.County)

	b.WriteString("## Field Mapping\n")
	for _, key := range model.CanonicalFields {
		if col, ok := a.Fields[key]; ok {
			fmt.Fprintf(&b, "- %s: %q\n", key, col)
		} else {
			fmt.Fprintf(&b, "- %s: (unmapped)\n", key)
		}
	}
	for _, w := range a.Warnings {
		fmt.Fprintf(&b, "- warning: %s\n", w)
	}
	b.WriteString("\n")

	b.WriteString("## Neighborhood\n")
	fmt.Fprintf(&b, "- Price: %s\n", MoneyOr(a.Stats.Price, "N/A"))
	fmt.Fprintf(&b, "- Properties: %d\n", a.Stats.Count)
	if min, ok := a.Stats.MinPrice.Float(); ok {
		max, _ := a.Stats.MaxPrice.Float()
		fmt.Fprintf(&b, "- Range: %s - %s\n", Money(min), Money(max))
	} else {
		b.WriteString("- Range: N/A\n")
	}
	fmt.Fprintf(&b, "- Price/SqFt: %s\n\n", MoneyOr(a.Stats.PricePerSqft, "N/A"))

	b.WriteString("## Unit Types\n")
	if len(a.Units) == 0 {
		b.WriteString("No unit cohorts (beds, baths, and sqft must all be mapped).\n\n")
	} else {
		b.WriteString(unitTable(a.Units))
		b.WriteString("\n")
	}

	if len(a.Trend) > 0 {
		fmt.Fprintf(&b, "## Price Trend\n%d dated sales from %s to %s\n\n",
			len(a.Trend), a.Trend[0].Date, a.Trend[len(a.Trend)-1].Date)
	}

	if a.Comparison != nil {
		b.WriteString(comparisonSection(a))
	}

	return b.String()
}

func comparisonSection(a Analysis) string {
	var b strings.Builder
	r := a.Comparison

	b.WriteString("## Subject Property\n")
	if a.Subject != nil {
		fmt.Fprintf(&b, "- Address: %s\n", a.Subject.Address)
		fmt.Fprintf(&b, "- Unit: %s bed / %s bath / %s sqft\n",
			model.FormatNumber(a.Subject.Beds),
			model.FormatNumber(a.Subject.Baths),
			model.FormatNumber(a.Subject.Sqft))
		fmt.Fprintf(&b, "- Asking: %s\n", Money(a.Subject.Price))
		fmt.Fprintf(&b, "- Asking/SqFt: %s\n", MoneyOr(a.Subject.PricePerArea(), "N/A"))
	}
	b.WriteString("\n## Comparison\n")
	fmt.Fprintf(&b, "- Neighborhood Avg: %s\n", MoneyOr(r.NeighborhoodBaseline, "No Data"))
	fmt.Fprintf(&b, "- Similar Models Avg: %s\n", MoneyOr(r.SimilarBaseline, "No Similar Models Found"))
	fmt.Fprintf(&b, "- Exact Models Avg: %s\n", MoneyOr(r.ExactBaseline, "No Exact Matches Found"))
	fmt.Fprintf(&b, "\nDecision: %s\n", r.Decision)
	return b.String()
}

func unitTable(units []model.UnitCohort) string {
	rows := [][]string{
		{"Beds", "Baths", "Sq. Ft", "Price", "Count", "Min Price", "Max Price", "Price/SqFt"},
	}
	for _, u := range units {
		rows = append(rows, []string{
			model.FormatNumber(u.Beds),
			model.FormatNumber(u.Baths),
			model.FormatNumber(u.Sqft),
			MoneyOr(u.Price, "N/A"),
			fmt.Sprintf("%d", u.Count),
			MoneyOr(u.MinPrice, "N/A"),
			MoneyOr(u.MaxPrice, "N/A"),
			MoneyOr(u.PricePerSqft, "N/A"),
		})
	}
	return renderTable(rows)
}

package analyze

import (
	"sort"
	"time"

	"github.com/sells-group/comps-cli/internal/model"
)

// dateLayouts covers the sale-date forms seen across the county exports.
// MM/YYYY (narrative format) resolves to the first of the month.
var dateLayouts = []string{
	"01/2006",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
}

// Trend extracts a chronological (date, price) series for time-series
// display. Records with an unparseable date or without a usable price are
// skipped. The sort is stable, so same-date sales keep document order.
func Trend(records []model.CleanedRecord, opts Options) []model.TrendPoint {
	type dated struct {
		at    time.Time
		point model.TrendPoint
	}

	var series []dated
	for _, rec := range records {
		if rec.Date == "" || !opts.usablePrice(rec) {
			continue
		}
		at, ok := parseSaleDate(rec.Date)
		if !ok {
			continue
		}
		price, _ := rec.Price.Float()
		series = append(series, dated{
			at: at,
			point: model.TrendPoint{
				Date:  at.Format("2006-01-02"),
				Label: rec.Date,
				Price: price,
			},
		})
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].at.Before(series[j].at)
	})

	points := make([]model.TrendPoint, len(series))
	for i, d := range series {
		points[i] = d.point
	}
	return points
}

func parseSaleDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

package analyze

import (
	"github.com/sells-group/comps-cli/internal/model"
)

// Neighborhood computes aggregate statistics over the records with a
// usable price. Price-per-sqft covers only the subset that also carries a
// positive living area; when that subset is empty the statistic is
// absent, never zero.
func Neighborhood(records []model.CleanedRecord, opts Options) model.NeighborhoodStats {
	var (
		prices  []float64
		ratios  []float64
		minSeen model.Number
		maxSeen model.Number
	)

	for _, rec := range records {
		if !opts.usablePrice(rec) {
			continue
		}
		price, _ := rec.Price.Float()
		prices = append(prices, price)

		if !minSeen.Valid() || minSeen.GreaterThan(price) {
			minSeen = model.Num(price)
		}
		if max, ok := maxSeen.Float(); !ok || price > max {
			maxSeen = model.Num(price)
		}

		if sqft, ok := rec.Sqft.Float(); ok && sqft > 0 {
			ratios = append(ratios, price/sqft)
		}
	}

	return model.NeighborhoodStats{
		Price:        opts.Aggregate.Of(prices),
		Count:        len(prices),
		MinPrice:     minSeen,
		MaxPrice:     maxSeen,
		PricePerSqft: opts.Aggregate.Of(ratios),
	}
}

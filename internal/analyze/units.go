package analyze

import (
	"sort"

	"github.com/sells-group/comps-cli/internal/model"
)

type unitKey struct {
	beds, baths, sqft float64
}

// Units groups records into exact (beds, baths, sqft) cohorts and
// aggregates prices per cohort. Records missing any of the three grouping
// fields or a usable price are left out. The result is sorted ascending
// by (beds, baths, sqft); tabular display and charting both rely on that
// ordering.
func Units(records []model.CleanedRecord, opts Options) []model.UnitCohort {
	groups := make(map[unitKey][]float64)

	for _, rec := range records {
		beds, okB := rec.Beds.Float()
		baths, okT := rec.Baths.Float()
		sqft, okS := rec.Sqft.Float()
		if !okB || !okT || !okS || !opts.usablePrice(rec) {
			continue
		}
		price, _ := rec.Price.Float()
		key := unitKey{beds: beds, baths: baths, sqft: sqft}
		groups[key] = append(groups[key], price)
	}

	cohorts := make([]model.UnitCohort, 0, len(groups))
	for key, prices := range groups {
		agg := opts.Aggregate.Of(prices)

		min, max := prices[0], prices[0]
		for _, p := range prices[1:] {
			if p < min {
				min = p
			}
			if p > max {
				max = p
			}
		}

		ppsf := model.None()
		if v, ok := agg.Float(); ok && key.sqft > 0 {
			ppsf = model.Num(v / key.sqft)
		}

		cohorts = append(cohorts, model.UnitCohort{
			Beds:         key.beds,
			Baths:        key.baths,
			Sqft:         key.sqft,
			Price:        agg,
			Count:        len(prices),
			MinPrice:     model.Num(min),
			MaxPrice:     model.Num(max),
			PricePerSqft: ppsf,
		})
	}

	sort.Slice(cohorts, func(i, j int) bool {
		if cohorts[i].Beds != cohorts[j].Beds {
			return cohorts[i].Beds < cohorts[j].Beds
		}
		if cohorts[i].Baths != cohorts[j].Baths {
			return cohorts[i].Baths < cohorts[j].Baths
		}
		return cohorts[i].Sqft < cohorts[j].Sqft
	})

	return cohorts
}

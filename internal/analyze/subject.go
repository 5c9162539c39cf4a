package analyze

import (
	"math"

	"github.com/sells-group/comps-cli/internal/model"
)

// Compare computes the three comparison baselines for a subject property
// and applies the decision rule. Each baseline is independently absent
// when its cohort is empty; an absent baseline simply casts no vote.
func Compare(records []model.CleanedRecord, subject model.SubjectProperty, opts Options) model.ComparisonResult {
	var neighborhood, similar, exact []float64

	for _, rec := range records {
		if !opts.usablePrice(rec) {
			continue
		}
		price, _ := rec.Price.Float()
		neighborhood = append(neighborhood, price)

		if !rec.Beds.Equals(subject.Beds) {
			continue
		}
		similar = append(similar, price)

		if !rec.Baths.Equals(subject.Baths) {
			continue
		}
		if sqft, ok := rec.Sqft.Float(); ok && math.Abs(sqft-subject.Sqft) <= opts.SqftTolerance {
			exact = append(exact, price)
		}
	}

	result := model.ComparisonResult{
		NeighborhoodBaseline: opts.Aggregate.Of(neighborhood),
		SimilarBaseline:      opts.Aggregate.Of(similar),
		ExactBaseline:        opts.Aggregate.Of(exact),
		SubjectPrice:         subject.Price,
	}
	result.Decision = decide(result)
	return result
}

// decide applies the three-tier vote. With no evidence the verdict is
// INVESTIGATE; when every available baseline exceeds the asking price the
// property looks underpriced and the verdict is BUY; with at most one
// baseline higher it is PASS; mixed evidence lands on INVESTIGATE. The
// asymmetry is intentional: scarce or conflicting evidence must never
// resolve toward BUY.
func decide(r model.ComparisonResult) model.Decision {
	baselines := r.Baselines()
	if len(baselines) == 0 {
		return model.DecisionInvestigate
	}

	higher := 0
	for _, v := range baselines {
		if v > r.SubjectPrice {
			higher++
		}
	}

	switch {
	case higher == len(baselines):
		return model.DecisionBuy
	case higher <= 1:
		return model.DecisionPass
	default:
		return model.DecisionInvestigate
	}
}

package analyze

import (
	"sort"

	"github.com/rotisserie/eris"

	"github.com/sells-group/comps-cli/internal/model"
)

// Aggregate selects the central-tendency statistic. One mode is chosen at
// startup and applied uniformly across the neighborhood, unit, and
// comparator layers; the layers never mix modes.
type Aggregate string

const (
	AggregateMean   Aggregate = "mean"
	AggregateMedian Aggregate = "median"
)

// ParseAggregate validates a configured aggregate mode.
func ParseAggregate(s string) (Aggregate, error) {
	switch Aggregate(s) {
	case AggregateMean:
		return AggregateMean, nil
	case AggregateMedian:
		return AggregateMedian, nil
	default:
		return "", eris.Errorf("analyze: unknown aggregate mode %q (want mean or median)", s)
	}
}

// Of computes the aggregate of vs, absent for an empty slice.
func (a Aggregate) Of(vs []float64) model.Number {
	if len(vs) == 0 {
		return model.None()
	}
	if a == AggregateMedian {
		return model.Num(median(vs))
	}
	return model.Num(mean(vs))
}

func mean(vs []float64) float64 {
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

func median(vs []float64) float64 {
	sorted := make([]float64, len(vs))
	copy(sorted, vs)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// Options tunes the analyzers. The zero value is unusable; use
// DefaultOptions and override.
type Options struct {
	Aggregate Aggregate
	// PriceFloor is the minimum plausible sale price. Records at or below
	// it are presumed non-sale noise (headers, subtotals, corruption) and
	// excluded from statistics.
	PriceFloor float64
	// SqftTolerance is the absolute living-area tolerance for the exact
	// comparison cohort.
	SqftTolerance float64
	// MaxPrice, when present, excludes sales above the cap from every
	// aggregate.
	MaxPrice model.Number
}

// DefaultOptions returns the standard analyzer tuning.
func DefaultOptions() Options {
	return Options{
		Aggregate:     AggregateMean,
		PriceFloor:    1000,
		SqftTolerance: 5,
	}
}

// usablePrice reports whether a record's price participates in statistics:
// present, above the plausibility floor, and under the optional cap.
func (o Options) usablePrice(rec model.CleanedRecord) bool {
	if !rec.Price.GreaterThan(o.PriceFloor) {
		return false
	}
	if cap, ok := o.MaxPrice.Float(); ok && !rec.Price.AtMost(cap) {
		return false
	}
	return true
}

package model

// NeighborhoodStats aggregates the validated record set. Absent values
// mean "not computable from this dataset", never zero.
type NeighborhoodStats struct {
	Price        Number `json:"price"`
	Count        int    `json:"count"`
	MinPrice     Number `json:"min_price"`
	MaxPrice     Number `json:"max_price"`
	PricePerSqft Number `json:"price_per_sqft"`
}

// UnitCohort is the aggregate for one exact (beds, baths, sqft) group.
type UnitCohort struct {
	Beds         float64 `json:"beds"`
	Baths        float64 `json:"baths"`
	Sqft         float64 `json:"sqft"`
	Price        Number  `json:"price"`
	Count        int     `json:"count"`
	MinPrice     Number  `json:"min_price"`
	MaxPrice     Number  `json:"max_price"`
	PricePerSqft Number  `json:"price_per_sqft"`
}

// TrendPoint is one (sale date, price) sample for time-series display.
type TrendPoint struct {
	Date  string  `json:"date"` // ISO yyyy-mm-dd
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// SubjectProperty is the user-entered comparison anchor. It is not part
// of the ingested dataset.
type SubjectProperty struct {
	Address string  `json:"address"`
	Beds    float64 `json:"beds"`
	Baths   float64 `json:"baths"`
	Sqft    float64 `json:"sqft"`
	Price   float64 `json:"price"`
}

// PricePerArea derives asking price per square foot when sqft is known.
func (s SubjectProperty) PricePerArea() Number {
	if s.Sqft <= 0 {
		return None()
	}
	return Num(s.Price / s.Sqft)
}

// Decision is the comparison verdict for a subject property.
type Decision string

const (
	DecisionBuy         Decision = "BUY"
	DecisionInvestigate Decision = "INVESTIGATE"
	DecisionPass        Decision = "PASS"
)

// ComparisonResult holds the three comparison baselines, the echoed
// subject price, and the verdict. An empty cohort yields an absent
// baseline, not zero.
type ComparisonResult struct {
	NeighborhoodBaseline Number   `json:"neighborhood_baseline"`
	SimilarBaseline      Number   `json:"similar_baseline"`
	ExactBaseline        Number   `json:"exact_baseline"`
	SubjectPrice         float64  `json:"subject_price"`
	Decision             Decision `json:"decision"`
}

// Baselines returns the non-absent baseline values in fixed order.
func (r ComparisonResult) Baselines() []float64 {
	var vs []float64
	for _, n := range []Number{r.NeighborhoodBaseline, r.SimilarBaseline, r.ExactBaseline} {
		if v, ok := n.Float(); ok {
			vs = append(vs, v)
		}
	}
	return vs
}

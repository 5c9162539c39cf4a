package analyze

import (
	"testing"
)

func TestAggregate_Of(t *testing.T) {
	vs := []float64{300000, 100000, 200000, 900000}

	if v, ok := AggregateMean.Of(vs).Float(); !ok || v != 375000 {
		t.Errorf("mean = %v, %v, want 375000", v, ok)
	}
	if v, ok := AggregateMedian.Of(vs).Float(); !ok || v != 250000 {
		t.Errorf("even median = %v, %v, want 250000", v, ok)
	}
	if v, ok := AggregateMedian.Of(vs[:3]).Float(); !ok || v != 200000 {
		t.Errorf("odd median = %v, %v, want 200000", v, ok)
	}
}

func TestAggregate_OfEmpty(t *testing.T) {
	if AggregateMean.Of(nil).Valid() {
		t.Error("mean of nothing must be absent, not zero")
	}
	if AggregateMedian.Of(nil).Valid() {
		t.Error("median of nothing must be absent, not zero")
	}
}

func TestAggregate_MedianDoesNotReorderInput(t *testing.T) {
	vs := []float64{3, 1, 2}
	_ = AggregateMedian.Of(vs)
	if vs[0] != 3 || vs[1] != 1 || vs[2] != 2 {
		t.Error("median must sort a copy")
	}
}

func TestParseAggregate(t *testing.T) {
	if mode, err := ParseAggregate("mean"); err != nil || mode != AggregateMean {
		t.Errorf("ParseAggregate(mean) = %v, %v", mode, err)
	}
	if mode, err := ParseAggregate("median"); err != nil || mode != AggregateMedian {
		t.Errorf("ParseAggregate(median) = %v, %v", mode, err)
	}
	if _, err := ParseAggregate("mode"); err == nil {
		t.Error("expected error for unknown aggregate")
	}
}

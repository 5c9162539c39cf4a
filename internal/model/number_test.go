package model

import (
	"encoding/json"
	"testing"
)

func TestCleanPrice(t *testing.T) {
	tests := []struct {
		in    string
		want  float64
		valid bool
	}{
		{"$350,000", 350000, true},
		{"1,250.50", 1250.50, true},
		{"$1,234,567", 1234567, true},
		{"250000", 250000, true},
		{" $99,000 ", 99000, true},
		{"0", 0, true},
		{"", 0, false},
		{"N/A", 0, false},
		{"WARRANTY DEED", 0, false},
		{"$", 0, false},
	}

	for _, tt := range tests {
		got := CleanPrice(tt.in)
		v, ok := got.Float()
		if ok != tt.valid {
			t.Errorf("CleanPrice(%q) valid = %v, want %v", tt.in, ok, tt.valid)
			continue
		}
		if tt.valid && v != tt.want {
			t.Errorf("CleanPrice(%q) = %v, want %v", tt.in, v, tt.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	if v, ok := ParseNumber(" 2.5 ").Float(); !ok || v != 2.5 {
		t.Errorf("ParseNumber(\" 2.5 \") = %v, %v", v, ok)
	}
	if ParseNumber("three").Valid() {
		t.Error("ParseNumber(\"three\") should be absent")
	}
	if ParseNumber("").Valid() {
		t.Error("ParseNumber(\"\") should be absent")
	}
}

func TestNumber_AbsentIsNotZero(t *testing.T) {
	n := None()
	if n.GreaterThan(-1) {
		t.Error("absent Number must not compare greater than anything")
	}
	if n.Equals(0) {
		t.Error("absent Number must not equal zero")
	}
	if n.Or(42) != 42 {
		t.Error("Or should return the default for an absent Number")
	}
}

func TestNumber_JSON(t *testing.T) {
	type payload struct {
		A Number `json:"a"`
		B Number `json:"b"`
	}

	data, err := json.Marshal(payload{A: Num(1250.5)})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"a":1250.5,"b":null}` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var decoded payload
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if v, ok := decoded.A.Float(); !ok || v != 1250.5 {
		t.Errorf("round-trip A = %v, %v", v, ok)
	}
	if decoded.B.Valid() {
		t.Error("null must decode as absent")
	}
}

func TestSubjectProperty_PricePerArea(t *testing.T) {
	s := SubjectProperty{Price: 300000, Sqft: 1500}
	if v, ok := s.PricePerArea().Float(); !ok || v != 200 {
		t.Errorf("PricePerArea = %v, %v, want 200", v, ok)
	}

	s.Sqft = 0
	if s.PricePerArea().Valid() {
		t.Error("PricePerArea must be absent for zero sqft")
	}
}

package model

import (
	"strconv"
	"strings"
)

// Number is an optional float64. The zero value is absent, so a missing
// measurement can never be read as a valid zero.
type Number struct {
	value float64
	valid bool
}

// Num wraps a known float value.
func Num(v float64) Number {
	return Number{value: v, valid: true}
}

// None is the absent Number.
func None() Number {
	return Number{}
}

// Valid reports whether a value is present.
func (n Number) Valid() bool {
	return n.valid
}

// Float returns the value and whether it is present.
func (n Number) Float() (float64, bool) {
	return n.value, n.valid
}

// Or returns the value when present, otherwise def.
func (n Number) Or(def float64) float64 {
	if n.valid {
		return n.value
	}
	return def
}

// GreaterThan reports whether the value is present and strictly above v.
func (n Number) GreaterThan(v float64) bool {
	return n.valid && n.value > v
}

// AtMost reports whether the value is present and not above v.
func (n Number) AtMost(v float64) bool {
	return n.valid && n.value <= v
}

// Equals reports whether the value is present and exactly v.
func (n Number) Equals(v float64) bool {
	return n.valid && n.value == v
}

// MarshalJSON encodes an absent Number as null.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(n.value, 'f', -1, 64)), nil
}

// UnmarshalJSON decodes null as absent.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = Number{}
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = Num(v)
	return nil
}

// ParseNumber coerces a raw cell value to a Number. Blank or non-numeric
// input is absent, never zero.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return None()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return None()
	}
	return Num(v)
}

// CleanPrice parses a currency cell: "$350,000" -> 350000. Dollar signs,
// thousands separators, and stray spaces are stripped before parsing.
// Garbage input is absent.
func CleanPrice(s string) Number {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	return ParseNumber(cleaned)
}

// FormatNumber renders a float the way the parsers store numeric cells:
// no exponent, no trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

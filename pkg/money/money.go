// Package money holds the display conventions shared by the ledger and
// dashboard reports.
package money

import "github.com/shopspring/decimal"

const lakhExponent = 5

var half = decimal.New(5, -1)

// RoundHalfUp rounds value to the given number of decimal places. Ties are
// resolved toward positive infinity, so 0.25 becomes 0.3 and -0.25 becomes -0.2.
func RoundHalfUp(value decimal.Decimal, places int32) decimal.Decimal {
	return value.Shift(places).Add(half).Floor().Shift(-places)
}

// Lakh renders value in lakhs (value / 100000) with one decimal place and an
// "L" suffix, e.g. 250000 -> "2.5L". Ties round away from zero and a negative
// value keeps its sign even when it rounds to zero ("-0.0L").
func Lakh(value decimal.Decimal) string {
	formatted := value.Shift(-lakhExponent).Round(1).StringFixed(1)
	if value.IsNegative() && formatted[0] != '-' {
		formatted = "-" + formatted
	}
	return formatted + "L"
}

// Rate returns part / whole as a percentage rounded to one decimal place.
// A zero whole yields 0.
func Rate(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	percent := part.Shift(2).DivRound(whole, 8)
	return RoundHalfUp(percent, 1).InexactFloat64()
}

package utils

import (
	"math"

	"github.com/dustin/go-humanize"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// RoundToUnit rounds to the nearest whole number, halves away from zero.
func RoundToUnit(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f)
}

// SafeDivide returns 0 instead of Inf or NaN when the denominator is zero.
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return numerator / denominator
}

// FormatMoney renders an amount as "AED 12,500", dropping fractions.
func FormatMoney(currency string, amount float64) string {
	rounded := int64(math.Round(amount))
	if rounded < 0 {
		return "-" + currency + " " + humanize.Comma(-rounded)
	}
	return currency + " " + humanize.Comma(rounded)
}

// FormatNumber renders a value with thousands separators and at most one
// decimal.
func FormatNumber(f float64) string {
	return humanize.CommafWithDigits(f, 1)
}

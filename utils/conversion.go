package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TaxAmount returns round(amount*taxRate/100) in whole currency units.
func TaxAmount(amount, taxRate float64) float64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromFloat(taxRate)).
		Div(hundred).
		Round(0).
		InexactFloat64()
}

// TotalWithTax returns amount + TaxAmount(amount, taxRate).
func TotalWithTax(amount, taxRate float64) float64 {
	return decimal.NewFromFloat(amount).
		Add(decimal.NewFromFloat(TaxAmount(amount, taxRate))).
		InexactFloat64()
}

// ToMinorUnits converts rupees to paise for gateway payloads.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(hundred).Round(0).IntPart()
}

// FormatINR renders an amount the way en-IN currency formatting does, e.g. ₹1,23,456.50.
func FormatINR(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	b.WriteString(groupIndian(intPart))
	b.WriteString(frac)
	return b.String()
}

// groupIndian inserts separators after the last three digits and then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}

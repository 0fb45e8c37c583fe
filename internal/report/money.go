package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money renders an amount as dollars with thousands separators, rounded to
// cents: 1234.5 -> "$1,234.50", -80 -> "-$80.00".
func Money(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	s := d.StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")
	return sign + "$" + groupThousands(whole) + "." + frac
}

// Percent renders a fraction as a percentage with two decimals: 0.05 -> "5.00%".
func Percent(rate float64) string {
	return decimal.NewFromFloat(rate).Shift(2).StringFixed(2) + "%"
}

// SignedPercent is Percent with one decimal and an explicit sign: "+5.0%".
func SignedPercent(rate float64) string {
	d := decimal.NewFromFloat(rate).Shift(2)
	s := d.StringFixed(1)
	if !d.IsNegative() {
		s = "+" + s
	}
	return s + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

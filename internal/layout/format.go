package layout

import (
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatPercent renders the move from first to last as a signed percentage
// with two decimals, e.g. "+5.00%".
func FormatPercent(first, last float64) string {
	if first == 0 {
		return "+0.00%"
	}
	f := decimal.NewFromFloat(first)
	pct := decimal.NewFromFloat(last).Sub(f).Div(f).Mul(hundred).Round(2)
	if pct.IsNegative() {
		return pct.StringFixed(2) + "%"
	}
	return "+" + pct.StringFixed(2) + "%"
}

// FormatPrice drops the decimals from prices of 10000 and above.
func FormatPrice(price float64) string {
	p := decimal.NewFromFloat(price).Round(2)
	if p.GreaterThanOrEqual(decimal.NewFromInt(10000)) {
		return p.StringFixed(0)
	}
	return p.StringFixed(2)
}

// FitTitle picks "Name (SYM)", then "Name", then "SYM", whichever first fits
// in maxLen characters.
func FitTitle(name, symbol string, maxLen int) string {
	full := name + " (" + symbol + ")"
	switch {
	case name == "" || name == symbol:
		return symbol
	case utf8.RuneCountInString(full) <= maxLen:
		return full
	case utf8.RuneCountInString(name) <= maxLen:
		return name
	default:
		return symbol
	}
}

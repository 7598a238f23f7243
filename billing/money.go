// Package billing holds the bill calculator used by the billing screen: line
// items, the totals reducer, the per-session draft and submission checks.
package billing

import "github.com/shopspring/decimal"

func init() {
	// Amounts leave this package as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

var hundred = decimal.NewFromInt(100)

// Round2 is the single rounding policy for every monetary value: two decimal
// places, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Percent returns pct percent of amount, unrounded.
func Percent(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred)
}

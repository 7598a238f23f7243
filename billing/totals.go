package billing

import "github.com/shopspring/decimal"

type BillTotals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxPercent decimal.Decimal `json:"gstPercentage"`
	TaxAmount  decimal.Decimal `json:"gst"`
	Tip        decimal.Decimal `json:"tip"`
	Cashback   decimal.Decimal `json:"cashback"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
	FinalTotal decimal.Decimal `json:"finalTotal"`
}

// RecomputeTotals reduces the line items and charges into bill totals. It is
// pure: inputs are never modified and equal inputs give equal totals.
// Negative tax, cashback and tip are treated as zero.
func RecomputeTotals(services []ServiceLineItem, products []ProductLineItem, taxPercent, cashback, tip decimal.Decimal) BillTotals {
	subtotal := decimal.Zero
	for _, s := range services {
		subtotal = subtotal.Add(nonNegative(s.FinalPrice))
	}
	for _, p := range products {
		subtotal = subtotal.Add(nonNegative(p.FinalPrice))
	}
	subtotal = Round2(subtotal)

	taxPercent = nonNegative(taxPercent)
	cashback = Round2(nonNegative(cashback))
	tip = Round2(nonNegative(tip))

	tax := Round2(Percent(subtotal, taxPercent))
	grand := subtotal.Add(tax).Add(tip)

	return BillTotals{
		Subtotal:   subtotal,
		TaxPercent: taxPercent,
		TaxAmount:  tax,
		Tip:        tip,
		Cashback:   cashback,
		GrandTotal: grand,
		FinalTotal: nonNegative(grand.Sub(cashback)),
	}
}

package quote

import "github.com/shopspring/decimal"

// Totals carries every figure a presentation surface needs for a quote.
// All four fields are always computed; hiding a zero discount or tax line
// is a rendering decision, never a calculation one.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	Total          decimal.Decimal `json:"total"`
}

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// ComputeTotals is the single source of quote figures. Quote detail, list
// rows, dashboard aggregates and the PDF export all call it; no surface
// recomputes a subtotal or total on its own.
//
// The tax model is "por dentro": taxPercent is the share of the final total
// that is tax, so the total is grossed up from the net base by dividing by
// (1 - rate). A non-positive divisor (taxPercent >= 100) skips the division
// and keeps the net base as the total with zero tax. That guard is policy,
// not validation: degenerate rates are tolerated, not rejected.
//
// The net base may go negative when the flat discount exceeds the subtotal;
// it is not clamped and the negative total propagates as-is.
func ComputeTotals(items []Item, discount, taxPercent decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Quantity.Mul(it.UnitPrice))
	}
	netBase := subtotal.Sub(discount)

	divisor := one.Sub(taxPercent.Div(hundred))
	total := netBase
	taxAmount := decimal.Zero
	if divisor.IsPositive() {
		total = netBase.Div(divisor)
		taxAmount = total.Sub(netBase)
	}

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      taxAmount,
		Total:          total,
	}
}

// Totals computes the quote's figures from its current items, discount and
// tax percent. Callers must treat the quote as a snapshot while this runs.
func (q Quote) Totals() Totals {
	return ComputeTotals(q.Items, q.Discount, q.TaxPercent)
}

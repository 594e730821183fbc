package quote

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(qty, price string) Item {
	return Item{
		Quantity:  decimal.RequireFromString(qty),
		UnitPrice: decimal.RequireFromString(price),
	}
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeTotalsGrossUp(t *testing.T) {
	// 40x100 + 12x50 = 4600, no discount, 5% tax "por dentro":
	// total = 4600 / 0.95, tax = total - 4600.
	items := []Item{item("40", "100"), item("12", "50")}
	got := ComputeTotals(items, decimal.Zero, d("5"))

	require.True(t, got.Subtotal.Equal(d("4600")), "subtotal = %s", got.Subtotal)
	require.True(t, got.DiscountAmount.IsZero())
	assert.True(t, got.Total.Round(2).Equal(d("4842.11")), "total = %s", got.Total)
	assert.True(t, got.TaxAmount.Round(2).Equal(d("242.11")), "tax = %s", got.TaxAmount)
	// tax is exactly the difference between total and net base
	assert.True(t, got.Total.Sub(got.TaxAmount).Equal(got.Subtotal), "net base mismatch")
}

func TestComputeTotalsFlatDiscountNoTax(t *testing.T) {
	// 25x80 = 2000, flat discount 100, no tax: total is exactly 1900.
	got := ComputeTotals([]Item{item("25", "80")}, d("100"), decimal.Zero)

	require.True(t, got.Subtotal.Equal(d("2000")))
	require.True(t, got.DiscountAmount.Equal(d("100")))
	assert.True(t, got.TaxAmount.IsZero())
	assert.True(t, got.Total.Equal(d("1900")), "total = %s", got.Total)
}

func TestComputeTotalsEmptyItemsNegativeNetBase(t *testing.T) {
	// No items but a discount: the net base goes negative and is not
	// clamped.
	got := ComputeTotals(nil, d("50"), decimal.Zero)

	require.True(t, got.Subtotal.IsZero())
	assert.True(t, got.Total.Equal(d("-50")), "total = %s", got.Total)
	assert.True(t, got.TaxAmount.IsZero())
}

func TestComputeTotalsDegenerateTaxRate(t *testing.T) {
	items := []Item{item("1", "100")}

	for _, tc := range []struct {
		name       string
		taxPercent string
	}{
		{"divisor zero", "100"},
		{"divisor negative", "150"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotals(items, decimal.Zero, d(tc.taxPercent))
			// The gross-up division is skipped entirely: the net base
			// passes through and tax stays zero.
			assert.True(t, got.Total.Equal(d("100")), "total = %s", got.Total)
			assert.True(t, got.TaxAmount.IsZero())
		})
	}
}

func TestComputeTotalsPermutationInvariance(t *testing.T) {
	a := item("1.5", "99.90")
	b := item("3", "10")
	c := item("40", "100")

	orders := [][]Item{
		{a, b, c},
		{c, a, b},
		{b, c, a},
	}
	first := ComputeTotals(orders[0], d("7"), d("12"))
	for _, items := range orders[1:] {
		got := ComputeTotals(items, d("7"), d("12"))
		assert.True(t, got.Subtotal.Equal(first.Subtotal))
		assert.True(t, got.Total.Equal(first.Total))
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	items := []Item{item("2.5", "80"), item("1", "19.99")}
	first := ComputeTotals(items, d("10"), d("8"))
	second := ComputeTotals(items, d("10"), d("8"))

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.DiscountAmount.Equal(second.DiscountAmount))
	assert.True(t, first.TaxAmount.Equal(second.TaxAmount))
	assert.True(t, first.Total.Equal(second.Total))
}

func TestComputeTotalsFractionalQuantity(t *testing.T) {
	// Service hours are fractional.
	got := ComputeTotals([]Item{item("1.5", "100")}, decimal.Zero, decimal.Zero)
	assert.True(t, got.Subtotal.Equal(d("150")))
	assert.True(t, got.Total.Equal(d("150")))
}

func TestQuoteTotalsMatchesComputeTotals(t *testing.T) {
	q := Quote{
		Items:      []Item{item("40", "100"), item("12", "50")},
		Discount:   decimal.Zero,
		TaxPercent: d("5"),
	}
	fromQuote := q.Totals()
	direct := ComputeTotals(q.Items, q.Discount, q.TaxPercent)
	assert.True(t, fromQuote.Total.Equal(direct.Total))
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusSent, StatusApproved, StatusRejected} {
		assert.True(t, s.Valid())
	}
	assert.False(t, Status("CONVERTED").Valid())
	assert.False(t, Status("").Valid())
}

func TestItemLineTotal(t *testing.T) {
	it := item("2.5", "80")
	assert.True(t, it.LineTotal().Equal(d("200")))
}

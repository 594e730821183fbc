package document

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarhget/quotes-backend/internal/domain/client"
	"github.com/tarhget/quotes-backend/internal/domain/company"
	"github.com/tarhget/quotes-backend/internal/domain/money"
	"github.com/tarhget/quotes-backend/internal/domain/quote"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testFormatter() money.Formatter { return money.NewFormatter("pt-BR", "R$") }

func testClient() *client.Client {
	return &client.Client{
		ID:       "cli-1",
		Name:     "Acme Corp",
		Email:    "contact@acme.com",
		Phone:    "555-0101",
		Address:  "123 Main St, Anytown",
		Document: "12.345.678/0001-90",
	}
}

func testCompany() company.Config {
	return company.Config{
		Name:         "TARHGET",
		TaxID:        "55.666.777/0001-88",
		Address:      "Av. Principal, 100, Centro",
		Contact:      "contato@tarhget.com",
		DefaultTerms: "Pagamento em até 30 dias.",
	}
}

func testQuote() quote.Quote {
	return quote.Quote{
		ID:           "quo-1",
		Number:       "ORC-0001",
		ClientID:     "cli-1",
		IssueDate:    time.Date(2023, 10, 26, 0, 0, 0, 0, time.UTC),
		ValidityDate: time.Date(2023, 11, 25, 0, 0, 0, 0, time.UTC),
		Status:       quote.StatusSent,
		TaxPercent:   d("5"),
		Notes:        "Initial project proposal.",
		Items: []quote.Item{
			{ID: "item-1", ProductID: "prod-1", Description: "Website development", Quantity: d("40"), UnitPrice: d("100")},
			{ID: "item-2", ProductID: "prod-3", Description: "Cloud hosting, 1 year", Quantity: d("12"), UnitPrice: d("50")},
		},
	}
}

func TestBuildRefusesUnresolvedClient(t *testing.T) {
	_, err := Build(testQuote(), nil, testCompany(), testFormatter())
	require.ErrorIs(t, err, ErrClientUnresolved)
}

func TestBuildBlocks(t *testing.T) {
	doc, err := Build(testQuote(), testClient(), testCompany(), testFormatter())
	require.NoError(t, err)

	assert.Equal(t, "TARHGET", doc.Company.Name)
	assert.Equal(t, "55.666.777/0001-88", doc.Company.TaxID)
	assert.Equal(t, "ORC-0001", doc.Quote.Number)
	assert.Equal(t, "Acme Corp", doc.Client.Name)
	assert.Equal(t, "12.345.678/0001-90", doc.Client.Document)
	assert.Equal(t, "Initial project proposal.", doc.Notes)
	assert.Equal(t, "Pagamento em até 30 dias.", doc.Terms)
	assert.Equal(t, "orcamento-quo-1.pdf", doc.Filename)
}

func TestBuildLinesKeepOrderAndOwnDescriptions(t *testing.T) {
	doc, err := Build(testQuote(), testClient(), testCompany(), testFormatter())
	require.NoError(t, err)

	require.Len(t, doc.Lines, 2)
	// The item's own description, even for catalog-linked items.
	assert.Equal(t, "Website development", doc.Lines[0].Description)
	assert.Equal(t, "Cloud hosting, 1 year", doc.Lines[1].Description)
	assert.Equal(t, "40", doc.Lines[0].Quantity)
	assert.Equal(t, "R$ 100,00", doc.Lines[0].UnitPrice)
	assert.Equal(t, "R$ 4.000,00", doc.Lines[0].LineTotal)
	assert.Equal(t, "R$ 600,00", doc.Lines[1].LineTotal)
}

func TestBuildTotalsTaxShownDiscountSuppressed(t *testing.T) {
	doc, err := Build(testQuote(), testClient(), testCompany(), testFormatter())
	require.NoError(t, err)

	assert.Equal(t, "R$ 4.600,00", doc.Totals.Subtotal)
	assert.Empty(t, doc.Totals.Discount, "zero discount line must be suppressed")
	assert.Equal(t, "Impostos (5%)", doc.Totals.TaxLabel)
	assert.Equal(t, "R$ 242,11", doc.Totals.Tax)
	assert.Equal(t, "R$ 4.842,11", doc.Totals.Total)
}

func TestBuildTotalsDiscountShownTaxSuppressed(t *testing.T) {
	q := testQuote()
	q.Items = []quote.Item{{ID: "item-3", Description: "Logo and brand guide", Quantity: d("25"), UnitPrice: d("80")}}
	q.Discount = d("100")
	q.TaxPercent = decimal.Zero

	doc, err := Build(q, testClient(), testCompany(), testFormatter())
	require.NoError(t, err)

	assert.Equal(t, "R$ 2.000,00", doc.Totals.Subtotal)
	assert.Equal(t, "R$ 100,00", doc.Totals.Discount)
	assert.Empty(t, doc.Totals.Tax, "zero tax line must be suppressed")
	assert.Empty(t, doc.Totals.TaxLabel)
	assert.Equal(t, "R$ 1.900,00", doc.Totals.Total)
}

func TestBuildNegativeTotalTolerated(t *testing.T) {
	q := testQuote()
	q.Items = nil
	q.Discount = d("50")
	q.TaxPercent = decimal.Zero

	doc, err := Build(q, testClient(), testCompany(), testFormatter())
	require.NoError(t, err)
	assert.Equal(t, "R$ -50,00", doc.Totals.Total)
}

func TestBuildNotesPreserveLineBreaks(t *testing.T) {
	q := testQuote()
	q.Notes = "first line\nsecond line"

	doc, err := Build(q, testClient(), testCompany(), testFormatter())
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", doc.Notes)
}

func TestBuildEmptyNotesAndTerms(t *testing.T) {
	q := testQuote()
	q.Notes = ""
	cfg := testCompany()
	cfg.DefaultTerms = ""

	doc, err := Build(q, testClient(), cfg, testFormatter())
	require.NoError(t, err)
	assert.Empty(t, doc.Notes)
	assert.Empty(t, doc.Terms)
}

func TestBuildTotalMatchesCalculatorOutput(t *testing.T) {
	// Cross-surface consistency: the document's formatted total is the
	// formatter applied to the shared calculation, nothing else.
	q := testQuote()
	f := testFormatter()
	doc, err := Build(q, testClient(), testCompany(), f)
	require.NoError(t, err)
	assert.Equal(t, f.Format(q.Totals().Total), doc.Totals.Total)
}

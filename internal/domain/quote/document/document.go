// Package document builds the presentation-ready model of a quote: the
// ordered blocks (header, client, line-item table, totals, notes, terms)
// that both the interactive JSON sink and the PDF export consume. All money
// strings are formatted here, once, so every sink shows identical figures.
package document

import (
	"fmt"
	"time"

	"github.com/tarhget/quotes-backend/internal/domain/client"
	"github.com/tarhget/quotes-backend/internal/domain/company"
	"github.com/tarhget/quotes-backend/internal/domain/money"
	"github.com/tarhget/quotes-backend/internal/domain/quote"
)

// ErrClientUnresolved is returned when a quote references a client that no
// longer exists. A financial document without its subject is worthless, so
// rendering refuses outright instead of leaving the client block blank.
var ErrClientUnresolved = fmt.Errorf("quote client unresolved")

type Document struct {
	Company CompanyBlock `json:"company"`
	Quote   QuoteBlock   `json:"quote"`
	Client  ClientBlock  `json:"client"`
	Lines   []Line       `json:"lines"`
	Totals  TotalsBlock  `json:"totals"`
	// Notes is omitted by sinks when empty; internal line breaks are
	// significant and preserved.
	Notes string `json:"notes,omitempty"`
	// Terms is appended by the export sink only, when non-empty.
	Terms    string `json:"terms,omitempty"`
	Filename string `json:"filename"`
}

type CompanyBlock struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url,omitempty"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	TaxID   string `json:"tax_id"`
}

type QuoteBlock struct {
	Number       string    `json:"number"`
	IssueDate    time.Time `json:"issue_date"`
	ValidityDate time.Time `json:"validity_date"`
}

type ClientBlock struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

// Line is one row of the item table. Description is the item's own text,
// never the catalog description, even for catalog-linked items.
type Line struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

// TotalsBlock holds the formatted figures. Discount and Tax are empty when
// their lines are suppressed (zero or negative amounts); the underlying
// calculation always produced them regardless.
type TotalsBlock struct {
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount,omitempty"`
	TaxLabel string `json:"tax_label,omitempty"`
	Tax      string `json:"tax,omitempty"`
	Total    string `json:"total"`
}

// Build assembles the document for one quote. c is the resolved client;
// passing nil signals a dangling reference and fails with
// ErrClientUnresolved before anything is rendered.
func Build(q quote.Quote, c *client.Client, cfg company.Config, f money.Formatter) (Document, error) {
	if c == nil {
		return Document{}, ErrClientUnresolved
	}

	totals := q.Totals()

	doc := Document{
		Company: CompanyBlock{
			Name:    cfg.Name,
			LogoURL: cfg.LogoURL,
			Address: cfg.Address,
			Contact: cfg.Contact,
			TaxID:   cfg.TaxID,
		},
		Quote: QuoteBlock{
			Number:       q.Number,
			IssueDate:    q.IssueDate,
			ValidityDate: q.ValidityDate,
		},
		Client: ClientBlock{
			Name:     c.Name,
			Address:  c.Address,
			Email:    c.Email,
			Phone:    c.Phone,
			Document: c.Document,
		},
		Notes:    q.Notes,
		Terms:    cfg.DefaultTerms,
		Filename: Filename(q),
	}

	for _, it := range q.Items {
		doc.Lines = append(doc.Lines, Line{
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			UnitPrice:   f.Format(it.UnitPrice),
			LineTotal:   f.Format(it.LineTotal()),
		})
	}

	doc.Totals.Subtotal = f.Format(totals.Subtotal)
	if totals.DiscountAmount.IsPositive() {
		doc.Totals.Discount = f.Format(totals.DiscountAmount)
	}
	if totals.TaxAmount.IsPositive() {
		doc.Totals.TaxLabel = fmt.Sprintf("Impostos (%s%%)", q.TaxPercent.String())
		doc.Totals.Tax = f.Format(totals.TaxAmount)
	}
	doc.Totals.Total = f.Format(totals.Total)

	return doc, nil
}

// Filename names the exported file deterministically from the quote id.
func Filename(q quote.Quote) string {
	return fmt.Sprintf("orcamento-%s.pdf", q.ID)
}

package gofpdf

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tarhget/quotes-backend/internal/domain/quote/document"
)

func testDocument(lines int) document.Document {
	doc := document.Document{
		Company: document.CompanyBlock{
			Name:    "TARHGET",
			Address: "Av. Principal, 100, Centro",
			Contact: "contato@tarhget.com",
			TaxID:   "55.666.777/0001-88",
		},
		Quote: document.QuoteBlock{
			Number:       "ORC-0001",
			IssueDate:    time.Date(2023, 10, 26, 0, 0, 0, 0, time.UTC),
			ValidityDate: time.Date(2023, 11, 25, 0, 0, 0, 0, time.UTC),
		},
		Client: document.ClientBlock{
			Name:     "Acme Corp",
			Address:  "123 Main St, Anytown",
			Email:    "contact@acme.com",
			Phone:    "555-0101",
			Document: "12.345.678/0001-90",
		},
		Totals: document.TotalsBlock{
			Subtotal: "R$ 4.600,00",
			TaxLabel: "Impostos (5%)",
			Tax:      "R$ 242,11",
			Total:    "R$ 4.842,11",
		},
		Notes:    "Observação com acentuação: orçamento válido.\nSegunda linha.",
		Terms:    "Pagamento em até 30 dias.",
		Filename: "orcamento-quo-1.pdf",
	}
	for i := 0; i < lines; i++ {
		doc.Lines = append(doc.Lines, document.Line{
			Description: fmt.Sprintf("Serviço %d", i+1),
			Quantity:    "1",
			UnitPrice:   "R$ 100,00",
			LineTotal:   "R$ 100,00",
		})
	}
	return doc
}

func TestGenerateProducesPDF(t *testing.T) {
	got, err := New().Generate(testDocument(3))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(got, []byte("%PDF")), "output is not a PDF")
	require.Greater(t, len(got), 1000)
}

func TestGenerateLongTableSpansPages(t *testing.T) {
	// Enough rows to force the auto page break; the totals, notes and
	// terms blocks follow the cursor onto the last page.
	got, err := New().Generate(testDocument(80))
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(got, []byte("%PDF")))
	// A single-page file has one /Type /Pages and one /Type /Page object;
	// anything above two means the table spilled over.
	require.Greater(t, bytes.Count(got, []byte("/Type /Page")), 2)
}

func TestGenerateWithoutOptionalBlocks(t *testing.T) {
	doc := testDocument(1)
	doc.Notes = ""
	doc.Terms = ""
	doc.Totals.Tax = ""
	doc.Totals.TaxLabel = ""

	got, err := New().Generate(doc)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(got, []byte("%PDF")))
}

func TestTrim(t *testing.T) {
	require.Equal(t, "short", trim("short", 10))
	long := "uma descrição bastante longa para caber na coluna"
	got := trim(long, 20)
	require.Equal(t, 20, len([]rune(got)))
}

package gofpdf

import (
	"bytes"
	"log"

	"github.com/jung-kurt/gofpdf"
	"github.com/tarhget/quotes-backend/internal/domain/quote/document"
)

const (
	colDescription = 100
	colQuantity    = 20
	colUnitPrice   = 35
	colLineTotal   = 35
)

type Generator struct{}

func New() *Generator { return &Generator{} }

// Generate renders the document model to an A4 PDF. The totals, notes and
// terms blocks are anchored to wherever the item table ends; long tables
// spill onto extra pages via the auto page break and the trailing blocks
// follow the cursor.
func (g *Generator) Generate(doc document.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Orçamento "+doc.Quote.Number, true)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	// Header: company identity left, quote identity right.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(120, 8, tr(doc.Company.Name), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, tr("Orçamento "+doc.Quote.Number), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(120, 5, tr(doc.Company.Address), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Data: "+doc.Quote.IssueDate.Format("02/01/2006")), "", 1, "R", false, 0, "")
	pdf.CellFormat(120, 5, tr(doc.Company.Contact), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("Válido até: "+doc.Quote.ValidityDate.Format("02/01/2006")), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 5, tr("CNPJ: "+doc.Company.TaxID), "", 1, "L", false, 0, "")

	pdf.Ln(2)
	pdf.SetLineWidth(0.4)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(3)

	// Client block.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, tr("Cliente"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr(doc.Client.Name), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr(doc.Client.Address), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr(doc.Client.Email+" | "+doc.Client.Phone), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, tr("CPF/CNPJ: "+doc.Client.Document), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Item table, row order as given.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(220, 38, 38)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(colDescription, 7, tr("Descrição"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(colQuantity, 7, tr("Qtd."), "1", 0, "R", true, 0, "")
	pdf.CellFormat(colUnitPrice, 7, tr("Preço Unit."), "1", 0, "R", true, 0, "")
	pdf.CellFormat(colLineTotal, 7, tr("Total"), "1", 1, "R", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range doc.Lines {
		pdf.CellFormat(colDescription, 6, tr(trim(line.Description, 60)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colQuantity, 6, tr(line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colUnitPrice, 6, tr(line.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colLineTotal, 6, tr(line.LineTotal), "1", 1, "R", false, 0, "")
	}

	// Totals, anchored to the end of the table.
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr("Subtotal: "+doc.Totals.Subtotal), "", 1, "R", false, 0, "")
	if doc.Totals.Discount != "" {
		pdf.CellFormat(0, 5, tr("Desconto: - "+doc.Totals.Discount), "", 1, "R", false, 0, "")
	}
	if doc.Totals.Tax != "" {
		pdf.CellFormat(0, 5, tr(doc.Totals.TaxLabel+": + "+doc.Totals.Tax), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, tr("Total: "+doc.Totals.Total), "", 1, "R", false, 0, "")

	if doc.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, tr("Observações:"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, tr(doc.Notes), "", "L", false)
	}

	if doc.Terms != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(0, 5, tr("Termos e Condições:"), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.MultiCell(0, 4, tr(doc.Terms), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("quote pdf: output failed: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

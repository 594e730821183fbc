package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tarhget/quotes-backend/internal/domain/client"
	"github.com/tarhget/quotes-backend/internal/domain/quote"
	"github.com/tarhget/quotes-backend/internal/domain/quote/document"
)

// buildDocument resolves everything a quote document needs. A missing
// client is the one unrecoverable condition: the document is refused
// instead of rendered with blank fields.
func (h *Handlers) buildDocument(w http.ResponseWriter, r *http.Request) (document.Document, bool) {
	q, err := h.deps.Quotes.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, quote.ErrNotFound) {
		http.Error(w, "quote not found", http.StatusNotFound)
		return document.Document{}, false
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return document.Document{}, false
	}

	c, err := h.deps.Clients.Get(r.Context(), q.ClientID)
	if err != nil && !errors.Is(err, client.ErrNotFound) {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return document.Document{}, false
	}

	cfg, err := h.deps.Company.Get(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return document.Document{}, false
	}

	doc, err := document.Build(*q, c, cfg, h.deps.Money)
	if errors.Is(err, document.ErrClientUnresolved) {
		http.Error(w, "quote client no longer exists", http.StatusUnprocessableEntity)
		return document.Document{}, false
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return document.Document{}, false
	}
	return doc, true
}

// QuoteDocument is the interactive sink: the document model as JSON.
func (h *Handlers) QuoteDocument(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.buildDocument(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// QuotePDF is the export sink: a downloadable fixed-layout file named
// deterministically from the quote id.
func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.buildDocument(w, r)
	if !ok {
		return
	}

	pdfBytes, err := h.deps.PDF.Generate(doc)
	if err != nil {
		http.Error(w, "pdf generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, doc.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

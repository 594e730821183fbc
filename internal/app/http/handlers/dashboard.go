package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/tarhget/quotes-backend/internal/domain/quote"
)

type dashboardResponse struct {
	ClientCount  int `json:"client_count"`
	ProductCount int `json:"product_count"`
	QuoteCount   int `json:"quote_count"`

	StatusCounts map[quote.Status]int `json:"status_counts"`

	// Value of APPROVED quotes and of quotes still out (SENT), computed
	// with the same totals function as every other surface.
	ApprovedTotal          decimal.Decimal `json:"approved_total"`
	ApprovedTotalFormatted string          `json:"approved_total_formatted"`
	PendingTotal           decimal.Decimal `json:"pending_total"`
	PendingTotalFormatted  string          `json:"pending_total_formatted"`
}

func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.deps.Quotes.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	clients, err := h.deps.Clients.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	products, err := h.deps.Products.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := dashboardResponse{
		ClientCount:   len(clients),
		ProductCount:  len(products),
		QuoteCount:    len(quotes),
		StatusCounts:  make(map[quote.Status]int),
		ApprovedTotal: decimal.Zero,
		PendingTotal:  decimal.Zero,
	}
	for _, q := range quotes {
		resp.StatusCounts[q.Status]++
		switch q.Status {
		case quote.StatusApproved:
			resp.ApprovedTotal = resp.ApprovedTotal.Add(q.Totals().Total)
		case quote.StatusSent:
			resp.PendingTotal = resp.PendingTotal.Add(q.Totals().Total)
		}
	}
	resp.ApprovedTotalFormatted = h.deps.Money.Format(resp.ApprovedTotal)
	resp.PendingTotalFormatted = h.deps.Money.Format(resp.PendingTotal)

	writeJSON(w, http.StatusOK, resp)
}

package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tarhget/quotes-backend/internal/domain/catalog"
	"github.com/tarhget/quotes-backend/internal/domain/client"
	"github.com/tarhget/quotes-backend/internal/domain/quote"
)

type quoteItemRequest struct {
	ProductID   string           `json:"product_id"`
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
}

type quoteRequest struct {
	ClientID     string             `json:"client_id" validate:"required"`
	IssueDate    string             `json:"issue_date" validate:"required"`
	ValidityDate string             `json:"validity_date" validate:"required"`
	Status       string             `json:"status" validate:"omitempty,oneof=DRAFT SENT APPROVED REJECTED"`
	Discount     decimal.Decimal    `json:"discount"`
	TaxPercent   decimal.Decimal    `json:"tax_percent"`
	Notes        string             `json:"notes"`
	Items        []quoteItemRequest `json:"items"`
}

type quoteStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT SENT APPROVED REJECTED"`
}

// quoteResponse is the detail payload. Totals come from the one shared
// calculation; the formatted total is what every other surface shows too.
type quoteResponse struct {
	quote.Quote
	Totals         quote.Totals `json:"totals"`
	TotalFormatted string       `json:"total_formatted"`
}

type quoteListRow struct {
	ID             string          `json:"id"`
	Number         string          `json:"number"`
	ClientID       string          `json:"client_id"`
	ClientName     string          `json:"client_name"`
	IssueDate      time.Time       `json:"issue_date"`
	ValidityDate   time.Time       `json:"validity_date"`
	Status         quote.Status    `json:"status"`
	Total          decimal.Decimal `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
}

func (h *Handlers) quoteResponse(q quote.Quote) quoteResponse {
	totals := q.Totals()
	return quoteResponse{
		Quote:          q,
		Totals:         totals,
		TotalFormatted: h.deps.Money.Format(totals.Total),
	}
}

func (h *Handlers) ListQuotes(w http.ResponseWriter, r *http.Request) {
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
	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}

	rows := make([]quoteListRow, 0, len(quotes))
	for _, q := range quotes {
		totals := q.Totals()
		rows = append(rows, quoteListRow{
			ID:             q.ID,
			Number:         q.Number,
			ClientID:       q.ClientID,
			ClientName:     names[q.ClientID],
			IssueDate:      q.IssueDate,
			ValidityDate:   q.ValidityDate,
			Status:         q.Status,
			Total:          totals.Total,
			TotalFormatted: h.deps.Money.Format(totals.Total),
		})
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !h.decode(w, r, &req) {
		return
	}
	q, ok := h.buildQuote(w, r, req)
	if !ok {
		return
	}
	q.ID = uuid.NewString()
	q.Number = "ORC-" + strings.ToUpper(q.ID[:8])
	for i := range q.Items {
		q.Items[i].ID = uuid.NewString()
	}

	if err := h.deps.Quotes.Create(r.Context(), q); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, h.quoteResponse(q))
}

func (h *Handlers) GetQuote(w http.ResponseWriter, r *http.Request) {
	q, err := h.deps.Quotes.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, quote.ErrNotFound) {
		http.Error(w, "quote not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.quoteResponse(*q))
}

func (h *Handlers) UpdateQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !h.decode(w, r, &req) {
		return
	}
	id := chi.URLParam(r, "id")
	existing, err := h.deps.Quotes.Get(r.Context(), id)
	if errors.Is(err, quote.ErrNotFound) {
		http.Error(w, "quote not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	q, ok := h.buildQuote(w, r, req)
	if !ok {
		return
	}
	q.ID = existing.ID
	q.Number = existing.Number
	for i := range q.Items {
		if q.Items[i].ID == "" {
			q.Items[i].ID = uuid.NewString()
		}
	}

	if err := h.deps.Quotes.Update(r.Context(), q); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, h.quoteResponse(q))
}

// UpdateQuoteStatus sets any valid status. There is deliberately no
// transition graph: a rejected quote can go straight back to draft.
func (h *Handlers) UpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	var req quoteStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	err := h.deps.Quotes.UpdateStatus(r.Context(), chi.URLParam(r, "id"), quote.Status(req.Status))
	if errors.Is(err, quote.ErrNotFound) {
		http.Error(w, "quote not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	err := h.deps.Quotes.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, quote.ErrNotFound) {
		http.Error(w, "quote not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// buildQuote turns a request into a domain quote, copying description and
// price from the catalog for product-linked items that did not override
// them. The copy happens here, once, at write time: the stored item owns
// its description and price from then on.
func (h *Handlers) buildQuote(w http.ResponseWriter, r *http.Request, req quoteRequest) (quote.Quote, bool) {
	issueDate, err := time.Parse("2006-01-02", req.IssueDate)
	if err != nil {
		http.Error(w, "invalid issue_date", http.StatusBadRequest)
		return quote.Quote{}, false
	}
	validityDate, err := time.Parse("2006-01-02", req.ValidityDate)
	if err != nil {
		http.Error(w, "invalid validity_date", http.StatusBadRequest)
		return quote.Quote{}, false
	}

	if _, err := h.deps.Clients.Get(r.Context(), req.ClientID); err != nil {
		if errors.Is(err, client.ErrNotFound) {
			http.Error(w, "client not found", http.StatusBadRequest)
			return quote.Quote{}, false
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return quote.Quote{}, false
	}

	status := quote.Status(req.Status)
	if req.Status == "" {
		status = quote.StatusDraft
	}

	q := quote.Quote{
		ClientID:     req.ClientID,
		IssueDate:    issueDate,
		ValidityDate: validityDate,
		Status:       status,
		Discount:     req.Discount,
		TaxPercent:   req.TaxPercent,
		Notes:        req.Notes,
	}

	for _, item := range req.Items {
		it := quote.Item{
			ProductID:   item.ProductID,
			Description: item.Description,
			Quantity:    item.Quantity,
		}
		if item.UnitPrice != nil {
			it.UnitPrice = *item.UnitPrice
		}
		if item.ProductID != "" && (item.Description == "" || item.UnitPrice == nil) {
			p, err := h.deps.Products.Get(r.Context(), item.ProductID)
			if errors.Is(err, catalog.ErrNotFound) {
				http.Error(w, "product not found", http.StatusBadRequest)
				return quote.Quote{}, false
			}
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return quote.Quote{}, false
			}
			if it.Description == "" {
				it.Description = p.Description
			}
			if item.UnitPrice == nil {
				it.UnitPrice = p.UnitPrice
			}
		}
		q.Items = append(q.Items, it)
	}
	return q, true
}

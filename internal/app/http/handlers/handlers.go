package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/tarhget/quotes-backend/internal/domain/ai/describer"
	"github.com/tarhget/quotes-backend/internal/domain/catalog"
	"github.com/tarhget/quotes-backend/internal/domain/client"
	"github.com/tarhget/quotes-backend/internal/domain/company"
	"github.com/tarhget/quotes-backend/internal/domain/money"
	"github.com/tarhget/quotes-backend/internal/domain/quote"
	"github.com/tarhget/quotes-backend/internal/domain/quote/pdf"
)

type Deps struct {
	Clients   client.Repository
	Products  catalog.Repository
	Quotes    quote.Repository
	Company   company.Repository
	Describer describer.Generator
	PDF       pdf.Generator
	Money     money.Formatter
}

type Handlers struct {
	deps     Deps
	validate *validator.Validate
}

func New(deps Deps) *Handlers {
	return &Handlers{
		deps:     deps,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

package handlers

import (
	"net/http"

	"github.com/tarhget/quotes-backend/internal/domain/company"
)

type companyRequest struct {
	Name         string `json:"name" validate:"required"`
	LogoURL      string `json:"logo_url"`
	TaxID        string `json:"tax_id"`
	Address      string `json:"address"`
	Contact      string `json:"contact"`
	DefaultTerms string `json:"default_terms"`
}

func (h *Handlers) GetCompany(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.deps.Company.Get(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *Handlers) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if !h.decode(w, r, &req) {
		return
	}
	cfg := company.Config{
		Name:         req.Name,
		LogoURL:      req.LogoURL,
		TaxID:        req.TaxID,
		Address:      req.Address,
		Contact:      req.Contact,
		DefaultTerms: req.DefaultTerms,
	}
	if err := h.deps.Company.Update(r.Context(), cfg); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

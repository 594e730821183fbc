package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tarhget/quotes-backend/internal/domain/client"
)

type clientRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Document string `json:"document"`
}

func (h *Handlers) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.deps.Clients.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if clients == nil {
		clients = []client.Client{}
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *Handlers) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if !h.decode(w, r, &req) {
		return
	}

	c := client.Client{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Document: req.Document,
	}
	if err := h.deps.Clients.Create(r.Context(), c); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handlers) GetClient(w http.ResponseWriter, r *http.Request) {
	c, err := h.deps.Clients.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, client.ErrNotFound) {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handlers) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if !h.decode(w, r, &req) {
		return
	}

	c := client.Client{
		ID:       chi.URLParam(r, "id"),
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Document: req.Document,
	}
	err := h.deps.Clients.Update(r.Context(), c)
	if errors.Is(err, client.ErrNotFound) {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteClient removes the client outright. Quotes that reference it keep
// the dangling id; their documents stop rendering until the reference is
// fixed, which is the intended failure mode.
func (h *Handlers) DeleteClient(w http.ResponseWriter, r *http.Request) {
	err := h.deps.Clients.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, client.ErrNotFound) {
		http.Error(w, "client not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

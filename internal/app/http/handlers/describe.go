package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/tarhget/quotes-backend/internal/domain/ai/describer"
)

type describeRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type describeResponse struct {
	Description string `json:"description"`
}

// DescribeItem asks the external text-generation service for an item
// description. It is a convenience for data entry; a failure here never
// affects quoting itself.
func (h *Handlers) DescribeItem(w http.ResponseWriter, r *http.Request) {
	var req describeRequest
	if !h.decode(w, r, &req) {
		return
	}

	text, err := h.deps.Describer.Describe(r.Context(), req.Prompt)
	if errors.Is(err, describer.ErrGeneration) {
		log.Printf("describe: %v", err)
		http.Error(w, "description generation failed", http.StatusBadGateway)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, describeResponse{Description: text})
}

package document

import (
	"encoding/json"
	"errors"
	"net/http"
	"paste-upload/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// V1PutSelectionRequest is the body request moving a document's caret
type V1PutSelectionRequest struct {
	Offset int `json:"offset"`
}

// PutSelectionV1 is the handler for put document selection v1
func (h *HandlerV1) PutSelectionV1(w http.ResponseWriter, r *http.Request) {

	documentID := chi.URLParam(r, "documentID")

	var req V1PutSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding put selection request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Offset < 0 {
		http.Error(w, "offset must not be negative", http.StatusBadRequest)
		return
	}

	err := h.documents.SetSelection(documentID, req.Offset)
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		http.Error(w, "document not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error setting document selection", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
	}

}

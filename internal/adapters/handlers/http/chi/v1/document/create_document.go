package document

import (
	"encoding/json"
	"errors"
	"net/http"
	"paste-upload/internal/core/domain"
)

// V1CreateDocumentRequest is the body request for Create Document. ID is
// optional; a blank one is generated server side.
type V1CreateDocumentRequest struct {
	ID string `json:"id"`
}

// V1CreateDocumentResponse is the body response for Create Document
type V1CreateDocumentResponse struct {
	ID string `json:"id"`
}

// CreateDocumentV1 is the handler for create document v1
func (h *HandlerV1) CreateDocumentV1(w http.ResponseWriter, r *http.Request) {

	var req V1CreateDocumentRequest

	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error("error decoding create document request", "error", err)
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
	}

	id, err := h.documents.Create(req.ID)
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		http.Error(w, "document already exists", http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("error creating document", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1CreateDocumentResponse{ID: id}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}

}

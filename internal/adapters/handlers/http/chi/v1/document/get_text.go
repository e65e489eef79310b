package document

import (
	"encoding/json"
	"errors"
	"net/http"
	"paste-upload/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// V1TextResponse is the body response carrying a document's full text
type V1TextResponse struct {
	Text string `json:"text"`
}

// GetTextV1 is the handler for get document text v1
func (h *HandlerV1) GetTextV1(w http.ResponseWriter, r *http.Request) {

	documentID := chi.URLParam(r, "documentID")

	editor, err := h.documents.Editor(documentID)
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		http.Error(w, "document not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error resolving document", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	text, err := editor.Text(r.Context())
	if err != nil {
		h.logger.Error("error reading document text", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1TextResponse{Text: text}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}

}

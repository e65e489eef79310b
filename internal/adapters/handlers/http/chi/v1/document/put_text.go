package document

import (
	"encoding/json"
	"errors"
	"net/http"
	"paste-upload/internal/core/domain"

	"github.com/go-chi/chi/v5"
)

// V1PutTextRequest is the body request replacing a document's full text
type V1PutTextRequest struct {
	Text string `json:"text"`
}

// PutTextV1 is the handler for put document text v1
func (h *HandlerV1) PutTextV1(w http.ResponseWriter, r *http.Request) {

	documentID := chi.URLParam(r, "documentID")

	var req V1PutTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding put text request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

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

	err = editor.UpdateText(r.Context(), func(string) string {
		return req.Text
	})
	if err != nil {
		h.logger.Error("error updating document text", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)

}

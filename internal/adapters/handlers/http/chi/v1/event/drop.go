package event

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"paste-upload/internal/core/domain"
)

const maxDropMemory = 32 << 20 // form parts above this spill to disk

// V1DropResponse tells the frontend whether to suppress its native handling
type V1DropResponse struct {
	Intercepted bool `json:"intercepted"`
}

// HandleDropV1 is the handler for drop/paste events v1. The frontend posts
// multipart/form-data with document_id and source fields plus one or more
// files parts.
func (h *HandlerV1) HandleDropV1(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseMultipartForm(maxDropMemory); err != nil {
		h.logger.Error("error parsing drop event form", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	documentID := r.FormValue("document_id")
	if documentID == "" {
		http.Error(w, "document_id required", http.StatusBadRequest)
		return
	}

	source := domain.EventSource(r.FormValue("source"))
	if source != domain.EventSourcePaste {
		source = domain.EventSourceDrop
	}

	var files []domain.UploadTarget
	for _, header := range r.MultipartForm.File["files"] {
		part, err := header.Open()
		if err != nil {
			h.logger.Error("error opening drop event file part", "error", err)
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			h.logger.Error("error reading drop event file part", "error", err)
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		files = append(files, domain.UploadTarget{
			Name:     header.Filename,
			MimeType: header.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	intercepted, err := h.uploadService.HandleDrop(r.Context(), domain.DropEvent{
		DocumentID: documentID,
		Source:     source,
		Files:      files,
	})
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		http.Error(w, "document not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("error handling drop event", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1DropResponse{Intercepted: intercepted}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
	}

}

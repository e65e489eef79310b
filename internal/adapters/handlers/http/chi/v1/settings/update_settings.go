package settings

import (
	"encoding/json"
	"net/http"
	"paste-upload/internal/core/domain"
)

// UpdateSettingsV1 is the handler for update settings v1. The body replaces
// the whole configuration; values are persisted exactly as given.
func (h *HandlerV1) UpdateSettingsV1(w http.ResponseWriter, r *http.Request) {

	var cfg domain.UploadConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		h.logger.Error("error decoding update settings request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	switch cfg.PdfDisposition {
	case domain.PdfSaveLocally, domain.PdfUpload, domain.PdfAskEachTime, "":
	default:
		http.Error(w, "unknown pdf_disposition", http.StatusBadRequest)
		return
	}

	if err := h.settingsService.Update(r.Context(), cfg); err != nil {
		h.logger.Error("error updating settings", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)

}

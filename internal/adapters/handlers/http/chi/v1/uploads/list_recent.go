package uploads

import (
	"encoding/json"
	"net/http"
	"paste-upload/internal/core/domain"
	"strconv"
)

// V1ListRecentResponse is the body response for the recent upload history
type V1ListRecentResponse struct {
	Records []domain.UploadRecord `json:"records"`
}

// ListRecentV1 is the handler for list recent uploads v1
func (h *HandlerV1) ListRecentV1(w http.ResponseWriter, r *http.Request) {

	limitInt := 0
	if limit := r.URL.Query().Get("limit"); limit != "" {
		var err error
		limitInt, err = strconv.Atoi(limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if limitInt <= 0 {
			http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
			return
		}
	}

	records, err := h.historyService.Recent(r.Context(), limitInt)
	if err != nil {
		h.logger.Error("error listing recent uploads", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1ListRecentResponse{Records: records}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}

}

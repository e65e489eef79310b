package settings

import (
	"encoding/json"
	"net/http"
)

// GetSettingsV1 is the handler for get settings v1
func (h *HandlerV1) GetSettingsV1(w http.ResponseWriter, r *http.Request) {

	cfg := h.settingsService.Current()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(cfg); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}

}

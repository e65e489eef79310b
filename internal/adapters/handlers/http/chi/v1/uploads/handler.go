package uploads

import (
	"log/slog"
	"paste-upload/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 upload history routes
type HandlerV1 struct {
	historyService port.HistoryService
	logger         *slog.Logger
}

// NewUploadsHandlerV1 creates HandlerV1
func NewUploadsHandlerV1(service port.HistoryService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		historyService: service,
		logger:         logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/recent", h.ListRecentV1)

	return router
}

package event

import (
	"log/slog"
	"paste-upload/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 editor event routes
type HandlerV1 struct {
	uploadService port.UploadService
	logger        *slog.Logger
}

// NewEventHandlerV1 creates HandlerV1
func NewEventHandlerV1(service port.UploadService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		uploadService: service,
		logger:        logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/drop", h.HandleDropV1)

	return router
}

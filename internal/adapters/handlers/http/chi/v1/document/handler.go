package document

import (
	"log/slog"
	"paste-upload/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 document routes
type HandlerV1 struct {
	documents port.DocumentStore
	logger    *slog.Logger
}

// NewDocumentHandlerV1 creates HandlerV1
func NewDocumentHandlerV1(documents port.DocumentStore, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		documents: documents,
		logger:    logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.CreateDocumentV1)
	router.Get("/{documentID}/text", h.GetTextV1)
	router.Put("/{documentID}/text", h.PutTextV1)
	router.Put("/{documentID}/selection", h.PutSelectionV1)

	return router
}

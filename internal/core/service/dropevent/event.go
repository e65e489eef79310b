package dropevent

import (
	"log/slog"
	"paste-upload/internal/core/port"
)

type dropEventService struct {
	uploads port.UploadService
	logger  *slog.Logger
}

// NewDropEventService creates a message service decoding broker-delivered
// drop events and feeding them to the upload orchestrator.
func NewDropEventService(uploads port.UploadService, logger *slog.Logger) port.MessageService {
	return &dropEventService{
		uploads: uploads,
		logger:  logger,
	}
}

package history

import (
	"context"
	"paste-upload/internal/core/domain"
	"paste-upload/internal/core/port"
)

const defaultLimit = 50

type historyService struct {
	records port.UploadRecordRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(records port.UploadRecordRepository) port.HistoryService {
	return &historyService{records: records}
}

// Recent returns the latest upload records, newest first
func (h *historyService) Recent(ctx context.Context, limit int) ([]domain.UploadRecord, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return h.records.ListRecent(ctx, limit)
}

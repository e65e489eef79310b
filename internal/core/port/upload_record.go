package port

import (
	"context"
	"paste-upload/internal/core/domain"
)

// UploadRecordRepository is an interface to define upload history persistence
type UploadRecordRepository interface {
	Create(ctx context.Context, record domain.UploadRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.UploadRecord, error)
}

// HistoryService is an interface to define read access to the upload history
type HistoryService interface {
	Recent(ctx context.Context, limit int) ([]domain.UploadRecord, error)
}

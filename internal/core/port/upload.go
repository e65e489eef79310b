package port

import (
	"context"
	"paste-upload/internal/core/domain"
)

// UploadService is an interface to define the upload orchestration core
type UploadService interface {
	// HandleDrop classifies a batch, schedules its uploads and reports
	// whether the native event should be suppressed.
	HandleDrop(ctx context.Context, event domain.DropEvent) (bool, error)
	// Upload sends a single file to the configured endpoint and returns the
	// extracted resource URL.
	Upload(ctx context.Context, target domain.UploadTarget) (string, error)
	// Wait blocks until every scheduled upload has resolved.
	Wait()
}

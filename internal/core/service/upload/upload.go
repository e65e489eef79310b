package upload

import (
	"context"
	"log/slog"
	"paste-upload/internal/core/domain"
	"paste-upload/internal/core/port"
	"sync"
	"time"

	"github.com/google/uuid"
)

type uploadService struct {
	editors     port.EditorRegistry
	sender      port.RequestSender
	settings    port.SettingsService
	attachments port.AttachmentStore
	prompter    port.ChoicePrompter
	notifier    port.Notifier
	records     port.UploadRecordRepository
	logger      *slog.Logger
	wg          sync.WaitGroup
}

// NewUploadService creates a new upload service
func NewUploadService(
	editors port.EditorRegistry,
	sender port.RequestSender,
	settings port.SettingsService,
	attachments port.AttachmentStore,
	prompter port.ChoicePrompter,
	notifier port.Notifier,
	records port.UploadRecordRepository,
	logger *slog.Logger,
) port.UploadService {
	return &uploadService{
		editors:     editors,
		sender:      sender,
		settings:    settings,
		attachments: attachments,
		prompter:    prompter,
		notifier:    notifier,
		records:     records,
		logger:      logger,
	}
}

// Wait blocks until every scheduled upload has resolved
func (s *uploadService) Wait() {
	s.wg.Wait()
}

func (s *uploadService) record(ctx context.Context, event domain.DropEvent, target domain.UploadTarget, outcome domain.UploadOutcome, url, reason string) {
	rec := domain.UploadRecord{
		ID:         uuid.New(),
		DocumentID: event.DocumentID,
		FileName:   target.Name,
		MimeType:   target.MimeType,
		Category:   Classify(target.Name),
		SizeBytes:  int64(len(target.Data)),
		Outcome:    outcome,
		URL:        url,
		Reason:     reason,
		CreatedAt:  time.Now(),
	}

	// history is advisory, a write failure never affects the file's outcome
	if err := s.records.Create(ctx, rec); err != nil {
		s.logger.Error("failed to record upload outcome", "file", target.Name, "error", err)
	}
}

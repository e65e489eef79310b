package upload

import (
	"context"
	"fmt"
	"paste-upload/internal/core/domain"
	"paste-upload/internal/core/port"
)

// saveLocally writes the file through the host's attachment store and embeds
// a reference to the stored name at the current selection.
func (s *uploadService) saveLocally(ctx context.Context, ed port.Editor, event domain.DropEvent, target domain.UploadTarget) {
	storedName, err := s.attachments.Save(ctx, target.Name, target.Data)
	if err != nil {
		s.notifier.Notify(ctx, err.Error())
		s.logger.Error("failed to store attachment", "file", target.Name, "error", err)
		s.record(ctx, event, target, domain.UploadOutcomeFailed, "", err.Error())
		return
	}

	if err := ed.InsertAtSelection(ctx, fmt.Sprintf("![[%s]]", storedName)); err != nil {
		s.logger.Error("failed to insert attachment reference", "file", target.Name, "error", err)
	}
	s.record(ctx, event, target, domain.UploadOutcomeSaved, "", "")
}

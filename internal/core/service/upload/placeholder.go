package upload

import (
	"context"
	"fmt"
	"paste-upload/internal/core/domain"
	"paste-upload/internal/core/port"
	"strings"

	"github.com/google/uuid"
)

// placeholderFor returns the transient marker inserted into the document
// while target uploads. The random suffix keeps concurrently active
// placeholders distinguishable within one document.
func placeholderFor(target domain.UploadTarget) string {
	return fmt.Sprintf("![Uploading %s %s]()", target.Name, uuid.NewString()[:8])
}

// replacePlaceholder swaps the first exact occurrence of placeholder with
// replacement. When the placeholder was altered or deleted by the user this
// is a no-op, not an error.
func (s *uploadService) replacePlaceholder(ctx context.Context, ed port.Editor, placeholder, replacement string) error {
	return ed.UpdateText(ctx, func(current string) string {
		return strings.Replace(current, placeholder, replacement, 1)
	})
}

// finishUpload drives one target from its already-inserted placeholder to a
// terminal result: link substitution on success, silent placeholder removal
// plus a notification on failure.
func (s *uploadService) finishUpload(ctx context.Context, ed port.Editor, event domain.DropEvent, target domain.UploadTarget, placeholder string) {
	url, err := s.Upload(ctx, target)
	if err != nil {
		if replaceErr := s.replacePlaceholder(ctx, ed, placeholder, ""); replaceErr != nil {
			s.logger.Error("failed to remove placeholder", "file", target.Name, "error", replaceErr)
		}
		s.notifier.Notify(ctx, err.Error())
		s.logger.Warn("upload failed", "file", target.Name, "error", err)
		s.record(ctx, event, target, domain.UploadOutcomeFailed, "", err.Error())
		return
	}

	replacement := fmt.Sprintf("[%s](%s)", target.Name, url)
	if Classify(target.Name) == domain.CategoryImage {
		replacement = fmt.Sprintf("![](%s)", url)
	}

	if err := s.replacePlaceholder(ctx, ed, placeholder, replacement); err != nil {
		s.logger.Error("failed to substitute placeholder", "file", target.Name, "error", err)
	}
	s.record(ctx, event, target, domain.UploadOutcomeUploaded, url, "")
}

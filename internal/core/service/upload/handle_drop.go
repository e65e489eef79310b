package upload

import (
	"context"
	"paste-upload/internal/core/domain"
	"paste-upload/internal/core/port"
)

// HandleDrop dispatches one drop or paste batch. It returns false when no
// file matches the interception predicate (an image, or a PDF whose
// disposition is not save-locally); the host's native handling then proceeds
// untouched. Once intercepted, image uploads run concurrently and
// independently while PDFs are resolved strictly one after another in
// encounter order. Files outside both categories are left to the host.
func (s *uploadService) HandleDrop(ctx context.Context, event domain.DropEvent) (bool, error) {
	cfg := s.settings.Current()

	var images, pdfs []domain.UploadTarget
	intercept := false
	for _, f := range event.Files {
		switch Classify(f.Name) {
		case domain.CategoryImage:
			images = append(images, f)
			intercept = true
		case domain.CategoryPdf:
			pdfs = append(pdfs, f)
			if cfg.PdfDisposition != domain.PdfSaveLocally {
				intercept = true
			}
		}
	}
	if !intercept {
		return false, nil
	}

	ed, err := s.editors.Editor(event.DocumentID)
	if err != nil {
		return false, err
	}

	// uploads must run to completion even after the caller's context is
	// cancelled, e.g. once an HTTP handler has already answered the drop
	taskCtx := context.WithoutCancel(ctx)

	// placeholders are inserted synchronously, before any upload starts
	for _, img := range images {
		target := img
		placeholder := placeholderFor(target)
		if err := ed.InsertAtSelection(ctx, placeholder); err != nil {
			s.logger.Error("failed to insert placeholder", "file", target.Name, "error", err)
			s.notifier.Notify(ctx, err.Error())
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.finishUpload(taskCtx, ed, event, target, placeholder)
		}()
	}

	if len(pdfs) > 0 {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for _, pdf := range pdfs {
				s.handlePdf(taskCtx, ed, event, pdf, cfg)
			}
		}()
	}

	return true, nil
}

// handlePdf resolves one PDF's disposition and runs it to completion. The
// caller guarantees PDFs of a batch arrive here sequentially.
func (s *uploadService) handlePdf(ctx context.Context, ed port.Editor, event domain.DropEvent, target domain.UploadTarget, cfg domain.UploadConfig) {
	disposition := cfg.PdfDisposition

	if disposition == domain.PdfAskEachTime {
		confirmed, err := s.prompter.ConfirmUpload(ctx, target.Name)
		if err != nil {
			// an abandoned choice means "do not upload, save locally"
			s.logger.Warn("upload prompt not answered", "file", target.Name, "error", err)
			confirmed = false
		}
		if confirmed {
			disposition = domain.PdfUpload
		} else {
			disposition = domain.PdfSaveLocally
		}
	}

	if disposition == domain.PdfUpload {
		placeholder := placeholderFor(target)
		if err := ed.InsertAtSelection(ctx, placeholder); err != nil {
			s.logger.Error("failed to insert placeholder", "file", target.Name, "error", err)
			s.notifier.Notify(ctx, err.Error())
			return
		}
		s.finishUpload(ctx, ed, event, target, placeholder)
		return
	}

	s.saveLocally(ctx, ed, event, target)
}

package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"paste-upload/internal/core/domain"
)

// Update persists cfg through the settings store and swaps it in as the
// active config. The config is saved exactly as given; a blank file field
// name stays blank here and is coerced to "file" only at request time.
func (s *settingsService) Update(ctx context.Context, cfg domain.UploadConfig) error {
	if cfg.PdfDisposition == "" {
		cfg.PdfDisposition = domain.PdfSaveLocally
	}

	blob, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := s.store.Save(ctx, blob); err != nil {
		return fmt.Errorf("failed to persist settings: %w", err)
	}

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()

	s.logger.Info("settings updated", "endpoint", cfg.Endpoint, "pdf_disposition", cfg.PdfDisposition)
	return nil
}

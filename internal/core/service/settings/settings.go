package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"paste-upload/internal/core/domain"
	"paste-upload/internal/core/port"
	"sync"
)

type settingsService struct {
	store  port.SettingsStore
	logger *slog.Logger

	mu  sync.RWMutex
	cfg domain.UploadConfig
}

// NewSettingsService loads the persisted upload config through the host's
// settings store, falling back to seed when nothing was saved yet. The
// returned service is the single owner of the in-memory config.
func NewSettingsService(ctx context.Context, store port.SettingsStore, seed domain.UploadConfig, logger *slog.Logger) (port.SettingsService, error) {
	blob, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	cfg := seed
	if len(blob) > 0 {
		if err := json.Unmarshal(blob, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode settings: %w", err)
		}
	}
	if cfg.PdfDisposition == "" {
		cfg.PdfDisposition = domain.PdfSaveLocally
	}

	return &settingsService{store: store, logger: logger, cfg: cfg}, nil
}

// Current returns a copy of the active upload config
func (s *settingsService) Current() domain.UploadConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := s.cfg
	cfg.Headers = append([]domain.HeaderPair(nil), s.cfg.Headers...)
	return cfg
}

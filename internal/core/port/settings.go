package port

import (
	"context"
	"paste-upload/internal/core/domain"
)

// SettingsStore is an interface to define the host's settings persistence.
// The blob is opaque to the host; Load returns nil when nothing was saved yet.
type SettingsStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
}

// SettingsService is an interface to define ownership of the upload config.
// Every mutation goes through Update, the single update-and-persist entry
// point.
type SettingsService interface {
	Current() domain.UploadConfig
	Update(ctx context.Context, cfg domain.UploadConfig) error
}

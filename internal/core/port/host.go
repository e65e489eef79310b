package port

import "context"

// Notifier is an interface to surface transient user-visible messages
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// ChoicePrompter is an interface to present a two-option upload choice.
// A dismissed or failed prompt counts as "do not upload, save locally".
type ChoicePrompter interface {
	ConfirmUpload(ctx context.Context, fileName string) (bool, error)
}

// AttachmentStore is an interface to define the host's attachment storage.
// Save returns the collision-free name the file was stored under.
type AttachmentStore interface {
	Save(ctx context.Context, desiredName string, data []byte) (string, error)
}

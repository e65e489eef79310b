package port

import "context"

// Editor is the handle the host exposes over one document's text buffer.
// UpdateText applies fn as a single atomic full-buffer read-modify-write, so
// concurrent plugin-driven edits never interleave mid-substitution.
type Editor interface {
	Text(ctx context.Context) (string, error)
	UpdateText(ctx context.Context, fn func(current string) string) error
	InsertAtSelection(ctx context.Context, text string) error
}

// EditorRegistry resolves the editor handle for a document
type EditorRegistry interface {
	Editor(documentID string) (Editor, error)
}

// DocumentStore is an interface to define the host's document registry
type DocumentStore interface {
	EditorRegistry
	Create(documentID string) (string, error)
	SetSelection(documentID string, offset int) error
}

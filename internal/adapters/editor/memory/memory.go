package memory

import (
	"context"
	"paste-upload/internal/core/domain"
	"paste-upload/internal/core/port"
	"sync"

	"github.com/google/uuid"
)

// Store keeps editable documents in memory, keyed by ID. Each document's
// operations are serialized by its own mutex, so an UpdateText closure is
// atomic with respect to every other edit of the same document.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	mu        sync.Mutex
	text      string
	selection int
}

// NewStore creates an empty document store
func NewStore() *Store {
	return &Store{docs: make(map[string]*document)}
}

// Create registers a new empty document. A blank id gets a generated one.
func (s *Store) Create(documentID string) (string, error) {
	if documentID == "" {
		documentID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[documentID]; ok {
		return "", domain.ErrAlreadyExists
	}
	s.docs[documentID] = &document{}
	return documentID, nil
}

// Editor resolves the handle for a registered document
func (s *Store) Editor(documentID string) (port.Editor, error) {
	s.mu.RLock()
	doc, ok := s.docs[documentID]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrDocumentNotFound
	}
	return &editorHandle{doc: doc}, nil
}

// SetSelection moves a document's caret, clamped to the text bounds
func (s *Store) SetSelection(documentID string, offset int) error {
	s.mu.RLock()
	doc, ok := s.docs[documentID]
	s.mu.RUnlock()

	if !ok {
		return domain.ErrDocumentNotFound
	}

	doc.mu.Lock()
	defer doc.mu.Unlock()
	doc.selection = clamp(offset, len(doc.text))
	return nil
}

type editorHandle struct {
	doc *document
}

func (e *editorHandle) Text(_ context.Context) (string, error) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()
	return e.doc.text, nil
}

func (e *editorHandle) UpdateText(_ context.Context, fn func(current string) string) error {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	e.doc.text = fn(e.doc.text)
	e.doc.selection = clamp(e.doc.selection, len(e.doc.text))
	return nil
}

func (e *editorHandle) InsertAtSelection(_ context.Context, text string) error {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	at := clamp(e.doc.selection, len(e.doc.text))
	e.doc.text = e.doc.text[:at] + text + e.doc.text[at:]
	e.doc.selection = at + len(text)
	return nil
}

func clamp(offset, max int) int {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store writes attachments into a base directory on disk, deduplicating
// names the way desktop editors do ("doc.pdf", "doc 1.pdf", "doc 2.pdf").
type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore creates the base directory if needed and returns the store
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create attachments directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes data under a collision-free variation of desiredName and
// returns the name actually used.
func (s *Store) Save(_ context.Context, desiredName string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := filepath.Base(desiredName)
	if name == "." || name == string(filepath.Separator) {
		name = "attachment"
	}

	stored := name
	for i := 1; ; i++ {
		if _, err := os.Stat(filepath.Join(s.dir, stored)); os.IsNotExist(err) {
			break
		}
		ext := filepath.Ext(name)
		stored = fmt.Sprintf("%s %d%s", strings.TrimSuffix(name, ext), i, ext)
	}

	if err := os.WriteFile(filepath.Join(s.dir, stored), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}
	return stored, nil
}

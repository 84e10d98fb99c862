package memory

import (
	"bytes"
	"context"
	"path/filepath"
	"sort"
	"sync"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interfaces.
var (
	_ driven.DocumentStore  = (*DocumentStore)(nil)
	_ driven.FragmentSource = (*DocumentStore)(nil)
)

// DocumentStore is an in-memory file tree. It serves documents and source
// fragments to tests without touching the filesystem.
type DocumentStore struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{files: make(map[string][]byte)}
}

// Read returns a copy of the file at path.
func (s *DocumentStore) Read(_ context.Context, path string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[filepath.Clean(path)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return bytes.Clone(data), nil
}

// Write stores a copy of data at path.
func (s *DocumentStore) Write(_ context.Context, path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[filepath.Clean(path)] = bytes.Clone(data)
	return nil
}

// Fragment reads dir/name as a fragment of kind.
func (s *DocumentStore) Fragment(ctx context.Context, dir string, kind domain.Kind, name string) (*domain.Fragment, error) {
	data, err := s.Read(ctx, filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}
	return &domain.Fragment{Kind: kind, Name: name, Data: data}, nil
}

// Paths returns the stored paths in order.
func (s *DocumentStore) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

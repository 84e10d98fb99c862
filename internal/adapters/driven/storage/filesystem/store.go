package filesystem

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
)

var (
	_ driven.DocumentStore  = (*Store)(nil)
	_ driven.FragmentSource = (*Store)(nil)
)

// Store reads and writes files relative to the working directory.
type Store struct{}

// NewStore creates a filesystem store.
func NewStore() *Store {
	return &Store{}
}

// Read returns the content of the file at path.
func (s *Store) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Write atomically replaces the file at path, creating parent directories.
func (s *Store) Write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return atomic.WriteFile(path, bytes.NewReader(data))
}

// Fragment reads dir/name as a fragment of kind.
func (s *Store) Fragment(ctx context.Context, dir string, kind domain.Kind, name string) (*domain.Fragment, error) {
	data, err := s.Read(ctx, filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}
	return &domain.Fragment{Kind: kind, Name: name, Data: data}, nil
}

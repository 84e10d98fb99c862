package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
)

// Ensure LedgerStore implements the interface.
var _ driven.LedgerStore = (*LedgerStore)(nil)

// LedgerStore is an in-memory implementation of driven.LedgerStore.
type LedgerStore struct {
	mu      sync.RWMutex
	records map[string]domain.GenerationRecord
}

// NewLedgerStore creates a new in-memory ledger store.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		records: make(map[string]domain.GenerationRecord),
	}
}

// Record stores or replaces a generation record.
func (s *LedgerStore) Record(_ context.Context, rec domain.GenerationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.Patches = append([]string(nil), rec.Patches...)
	s.records[rec.ID] = rec
	return nil
}

// Get retrieves a record by ID.
func (s *LedgerStore) Get(_ context.Context, id string) (*domain.GenerationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// List returns up to limit records, newest first.
func (s *LedgerStore) List(_ context.Context, limit int) ([]domain.GenerationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]domain.GenerationRecord, 0, len(s.records))
	for _, rec := range s.records {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		if !recs[i].CreatedAt.Equal(recs[j].CreatedAt) {
			return recs[i].CreatedAt.After(recs[j].CreatedAt)
		}
		return recs[i].ID < recs[j].ID
	})

	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

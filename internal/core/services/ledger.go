package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driving"
)

// Ensure LedgerService implements the interface.
var _ driving.LedgerService = (*LedgerService)(nil)

// ErrLedgerDisabled indicates no ledger store is available.
var ErrLedgerDisabled = errors.New("generation ledger is disabled")

// LedgerService reads the generation history.
type LedgerService struct {
	store driven.LedgerStore
}

// NewLedgerService creates a new ledger service. A nil store disables it.
func NewLedgerService(store driven.LedgerStore) *LedgerService {
	return &LedgerService{store: store}
}

// List returns up to limit records, newest first.
func (s *LedgerService) List(ctx context.Context, limit int) ([]domain.GenerationRecord, error) {
	if s.store == nil {
		return nil, ErrLedgerDisabled
	}
	return s.store.List(ctx, limit)
}

// Get retrieves a record by ID.
func (s *LedgerService) Get(ctx context.Context, id string) (*domain.GenerationRecord, error) {
	if s.store == nil {
		return nil, ErrLedgerDisabled
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

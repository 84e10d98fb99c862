package driven

import (
	"context"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// LedgerStore persists generation records.
type LedgerStore interface {
	// Record stores a generation record.
	Record(ctx context.Context, rec domain.GenerationRecord) error

	// Get retrieves a record by ID.
	// Returns domain.ErrNotFound if no record exists.
	Get(ctx context.Context, id string) (*domain.GenerationRecord, error)

	// List returns up to limit records, newest first.
	// A limit of zero or less returns all records.
	List(ctx context.Context, limit int) ([]domain.GenerationRecord, error)
}

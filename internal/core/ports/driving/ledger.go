package driving

import (
	"context"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// LedgerService reads the generation history.
type LedgerService interface {
	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int) ([]domain.GenerationRecord, error)

	// Get retrieves a record by ID.
	Get(ctx context.Context, id string) (*domain.GenerationRecord, error)
}

package driving

import (
	"context"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// DocumentService inspects canonical documents.
type DocumentService interface {
	// Validate checks the document at path against the canonical schema.
	Validate(ctx context.Context, path string) error

	// Schema returns the canonical schema.
	Schema() []byte

	// Review summarises the document at path.
	Review(ctx context.Context, path string) (*domain.Review, error)
}

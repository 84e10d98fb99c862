package driven

import (
	"context"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// DocumentStore reads and writes document files.
type DocumentStore interface {
	// Read returns the content of the file at path.
	// Returns domain.ErrNotFound when the file does not exist.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write replaces the file at path with data. Readers never observe a
	// partially written file.
	Write(ctx context.Context, path string, data []byte) error
}

// PatchSource reads ad-hoc patch files.
type PatchSource interface {
	// ReadPatch parses the RFC 6902 operation list stored at path.
	ReadPatch(ctx context.Context, path string) ([]domain.PatchOperation, error)
}

// DescriptionTransformer rewrites documentation prose.
// Implementations must not change document structure.
type DescriptionTransformer interface {
	// Transform returns the rewritten text.
	Transform(text string) string
}

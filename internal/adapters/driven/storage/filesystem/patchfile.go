package filesystem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/tailscale/hujson"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
)

// Ensure PatchReader implements the interface.
var _ driven.PatchSource = (*PatchReader)(nil)

var validOps = map[string]bool{
	domain.OpAdd:     true,
	domain.OpRemove:  true,
	domain.OpReplace: true,
	domain.OpMove:    true,
	domain.OpCopy:    true,
	domain.OpTest:    true,
}

// PatchReader reads RFC 6902 patch files. Files may carry comments and
// trailing commas.
type PatchReader struct {
	store driven.DocumentStore
}

// NewPatchReader creates a patch reader over store.
func NewPatchReader(store driven.DocumentStore) *PatchReader {
	return &PatchReader{store: store}
}

// ReadPatch parses the operation list stored at path.
func (r *PatchReader) ReadPatch(ctx context.Context, path string) ([]domain.PatchOperation, error) {
	data, err := r.store.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	return ParsePatch(data)
}

// ParsePatch parses a JSON or JSONC operation list. Numbers keep their
// literal form.
func ParsePatch(data []byte) ([]domain.PatchOperation, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	dec := json.NewDecoder(bytes.NewReader(std))
	dec.UseNumber()
	var ops []domain.PatchOperation
	if err := dec.Decode(&ops); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	for i, op := range ops {
		if !validOps[op.Op] {
			return nil, fmt.Errorf("%w: operation %d: unknown op %q", domain.ErrInvalidInput, i, op.Op)
		}
		if (op.Op == domain.OpMove || op.Op == domain.OpCopy) && op.From == "" {
			return nil, fmt.Errorf("%w: operation %d: %s requires from", domain.ErrInvalidInput, i, op.Op)
		}
	}
	return ops, nil
}

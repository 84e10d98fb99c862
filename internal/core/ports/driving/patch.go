package driving

import (
	"context"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// PatchRequest describes a standalone patch application.
type PatchRequest struct {
	// Source is the document to patch.
	Source string

	// Patch is the RFC 6902 patch file.
	Patch string

	// Output receives the patched document. Empty means not written.
	Output string

	// Inverse receives the operations that undo the patch. Empty means not written.
	Inverse string
}

// PatchResult describes a patched document.
type PatchResult struct {
	// Document is the patched document.
	Document []byte

	// Operations is the number of applied operations.
	Operations int

	// RecordID is the ledger record ID, empty when nothing was written or
	// recording is disabled.
	RecordID string
}

// PatchService amends canonical documents. Every application validates the
// document before and after, and never returns a partially patched document.
type PatchService interface {
	// ExtensionPack parses the extension pack at path.
	ExtensionPack(ctx context.Context, path string) (*domain.ChangeSet, []domain.PatchOperation, error)

	// ConvertExtensionPack writes the patch operations of the extension pack
	// at src to dst and returns their number.
	ConvertExtensionPack(ctx context.Context, src, dst string) (int, error)

	// Apply applies ops to doc.
	Apply(ctx context.Context, doc []byte, ops []domain.PatchOperation) ([]byte, error)

	// ApplyExtensionPack applies the extension pack at path to doc.
	ApplyExtensionPack(ctx context.Context, doc []byte, path string) ([]byte, error)

	// ApplyPatchFile applies the patch file at path to doc.
	ApplyPatchFile(ctx context.Context, doc []byte, path string) ([]byte, error)

	// Patch applies a patch file to a document file.
	Patch(ctx context.Context, req PatchRequest) (*PatchResult, error)
}

package driving

import (
	"context"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// BuildRequest describes one normalisation run.
type BuildRequest struct {
	// Source is the directory holding the XML fragments.
	Source string

	// Destination is the directory receiving the document.
	Destination string

	// ExtensionPacks are extension-pack XML files, applied in order.
	ExtensionPacks []string

	// Patches are RFC 6902 patch files, applied in order after extension packs.
	Patches []string

	// Command is the invocation recorded in meta.fixtodict.command.
	Command string
}

// BuildResult describes a written document.
type BuildResult struct {
	// Path is the written file.
	Path string

	// Document is the final document.
	Document *domain.Document

	// RecordID is the ledger record ID, empty when recording is disabled.
	RecordID string
}

// RepositoryService turns FIX Repository fragments into canonical documents.
type RepositoryService interface {
	// Normalise extracts, links, assembles and validates the fragments in source.
	Normalise(ctx context.Context, source, command string) (*domain.Document, error)

	// Build normalises, applies amendments and writes the document.
	Build(ctx context.Context, req BuildRequest) (*BuildResult, error)
}

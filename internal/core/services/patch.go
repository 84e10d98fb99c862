package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driving"
	"github.com/custodia-labs/fixtodict/internal/extensionpack"
	"github.com/custodia-labs/fixtodict/internal/logger"
	"github.com/custodia-labs/fixtodict/internal/patch"
)

// Ensure PatchService implements the interface.
var _ driving.PatchService = (*PatchService)(nil)

// PatchService applies extension packs and patch files to documents.
type PatchService struct {
	validator driven.SchemaValidator
	docStore  driven.DocumentStore
	patches   driven.PatchSource
	ledger    driven.LedgerStore
	settings  domain.Settings
	clock     func() time.Time
}

// NewPatchService creates a new patch service. The ledger is optional.
func NewPatchService(
	validator driven.SchemaValidator,
	docStore driven.DocumentStore,
	patches driven.PatchSource,
	ledger driven.LedgerStore,
	settings domain.Settings,
) *PatchService {
	return &PatchService{
		validator: validator,
		docStore:  docStore,
		patches:   patches,
		ledger:    ledger,
		settings:  settings,
		clock:     time.Now,
	}
}

// SetClock replaces the clock used for ledger timestamps.
func (s *PatchService) SetClock(clock func() time.Time) {
	s.clock = clock
}

// ExtensionPack parses the extension pack at path into its change set and
// patch operations.
func (s *PatchService) ExtensionPack(ctx context.Context, path string) (*domain.ChangeSet, []domain.PatchOperation, error) {
	if s.docStore == nil {
		return nil, nil, errors.New("document store not configured")
	}
	data, err := s.docStore.Read(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	cs, err := extensionpack.ParseBytes(data, s.settings.Policy)
	if err != nil {
		return nil, nil, domain.WithFragment(err, filepath.Base(path))
	}
	ops, err := patch.FromChangeSet(cs)
	if err != nil {
		return nil, nil, fmt.Errorf("extension pack %s: %w", cs.ID, err)
	}
	logger.Debug("extension pack %s: %d operations", cs.ID, len(ops))
	return cs, ops, nil
}

// ConvertExtensionPack writes the patch operations of the extension pack
// at src to dst.
func (s *PatchService) ConvertExtensionPack(ctx context.Context, src, dst string) (int, error) {
	_, ops, err := s.ExtensionPack(ctx, src)
	if err != nil {
		return 0, err
	}
	if err := s.writeOps(ctx, dst, ops); err != nil {
		return 0, err
	}
	return len(ops), nil
}

// Apply validates doc, applies ops to a copy and validates the result.
// The result is returned in canonical member order.
func (s *PatchService) Apply(_ context.Context, doc []byte, ops []domain.PatchOperation) ([]byte, error) {
	if s.validator == nil {
		return nil, errors.New("schema validator not configured")
	}
	if err := s.validator.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate before patch: %w", err)
	}

	out, err := patch.Apply(doc, ops)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(out); err != nil {
		return nil, fmt.Errorf("validate after patch: %w", err)
	}
	return patch.Canonicalize(out, s.settings.Indent)
}

// ApplyExtensionPack applies the extension pack at path to doc.
func (s *PatchService) ApplyExtensionPack(ctx context.Context, doc []byte, path string) ([]byte, error) {
	cs, ops, err := s.ExtensionPack(ctx, path)
	if err != nil {
		return nil, err
	}
	out, err := s.Apply(ctx, doc, ops)
	if err != nil {
		return nil, fmt.Errorf("extension pack %s: %w", cs.ID, err)
	}
	return out, nil
}

// ApplyPatchFile applies the patch file at path to doc.
func (s *PatchService) ApplyPatchFile(ctx context.Context, doc []byte, path string) ([]byte, error) {
	ops, err := s.readPatch(ctx, path)
	if err != nil {
		return nil, err
	}
	out, err := s.Apply(ctx, doc, ops)
	if err != nil {
		return nil, fmt.Errorf("patch %s: %w", path, err)
	}
	return out, nil
}

// Patch applies a patch file to a document file. The inverse operations
// are computed against the unpatched document.
func (s *PatchService) Patch(ctx context.Context, req driving.PatchRequest) (*driving.PatchResult, error) {
	if s.docStore == nil {
		return nil, errors.New("document store not configured")
	}
	doc, err := s.docStore.Read(ctx, req.Source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", req.Source, err)
	}
	ops, err := s.readPatch(ctx, req.Patch)
	if err != nil {
		return nil, err
	}

	out, err := s.Apply(ctx, doc, ops)
	if err != nil {
		return nil, fmt.Errorf("patch %s: %w", req.Patch, err)
	}
	result := &driving.PatchResult{Document: out, Operations: len(ops)}

	if req.Inverse != "" {
		inverse, err := patch.Invert(doc, ops)
		if err != nil {
			return nil, fmt.Errorf("invert %s: %w", req.Patch, err)
		}
		if err := s.writeOps(ctx, req.Inverse, inverse); err != nil {
			return nil, err
		}
	}

	if req.Output == "" {
		return result, nil
	}
	if err := s.docStore.Write(ctx, req.Output, out); err != nil {
		return nil, fmt.Errorf("write %s: %w", req.Output, err)
	}

	if s.ledger != nil && s.settings.Ledger.Enabled {
		var version domain.Version
		if d, err := domain.DecodeDocument(out); err == nil {
			version = d.Meta.Version
		}
		rec := domain.GenerationRecord{
			ID:        uuid.New().String(),
			Operation: domain.OperationPatch,
			Version:   version,
			Source:    req.Source,
			Output:    req.Output,
			Patches:   []string{req.Patch},
			CreatedAt: s.clock(),
		}
		if err := s.ledger.Record(ctx, rec); err != nil {
			return nil, fmt.Errorf("record generation: %w", err)
		}
		result.RecordID = rec.ID
	}
	return result, nil
}

func (s *PatchService) readPatch(ctx context.Context, path string) ([]domain.PatchOperation, error) {
	if s.patches == nil {
		return nil, errors.New("patch source not configured")
	}
	ops, err := s.patches.ReadPatch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read patch %s: %w", path, err)
	}
	return ops, nil
}

func (s *PatchService) writeOps(ctx context.Context, path string, ops []domain.PatchOperation) error {
	if ops == nil {
		ops = []domain.PatchOperation{}
	}
	indent := strings.Repeat(" ", max(s.settings.Indent, 0))
	data, err := json.MarshalIndent(ops, "", indent)
	if err != nil {
		return fmt.Errorf("encode operations: %w", err)
	}
	if err := s.docStore.Write(ctx, path, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/fixtodict/internal/assembler"
	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driven"
	"github.com/custodia-labs/fixtodict/internal/core/ports/driving"
	"github.com/custodia-labs/fixtodict/internal/extractors"
	"github.com/custodia-labs/fixtodict/internal/linker"
	"github.com/custodia-labs/fixtodict/internal/logger"
)

// Ensure RepositoryService implements the interface.
var _ driving.RepositoryService = (*RepositoryService)(nil)

// fragmentOrder is the order fragments are read in.
var fragmentOrder = []domain.Kind{
	domain.KindAbbreviation,
	domain.KindCategory,
	domain.KindComponent,
	domain.KindDatatype,
	domain.KindEnum,
	domain.KindField,
	domain.KindMessage,
	domain.KindMessageContent,
	domain.KindSection,
	domain.KindPhrase,
}

// RepositoryService normalises FIX Repository fragments into documents.
type RepositoryService struct {
	fragments   driven.FragmentSource
	checksummer driven.Checksummer
	validator   driven.SchemaValidator
	docStore    driven.DocumentStore
	transformer driven.DescriptionTransformer
	ledger      driven.LedgerStore
	patcher     driving.PatchService
	settings    domain.Settings
	version     string
	clock       func() time.Time
}

// NewRepositoryService creates a new repository service.
// The checksummer, transformer and ledger are optional.
func NewRepositoryService(
	fragments driven.FragmentSource,
	checksummer driven.Checksummer,
	validator driven.SchemaValidator,
	docStore driven.DocumentStore,
	transformer driven.DescriptionTransformer,
	ledger driven.LedgerStore,
	patcher driving.PatchService,
	settings domain.Settings,
	version string,
) *RepositoryService {
	return &RepositoryService{
		fragments:   fragments,
		checksummer: checksummer,
		validator:   validator,
		docStore:    docStore,
		transformer: transformer,
		ledger:      ledger,
		patcher:     patcher,
		settings:    settings,
		version:     version,
		clock:       time.Now,
	}
}

// SetClock replaces the clock used for generation timestamps.
func (s *RepositoryService) SetClock(clock func() time.Time) {
	s.clock = clock
}

// Normalise extracts, links, assembles and validates the fragments in source.
func (s *RepositoryService) Normalise(ctx context.Context, source, command string) (*domain.Document, error) {
	if s.fragments == nil {
		return nil, errors.New("fragment source not configured")
	}
	if s.validator == nil {
		return nil, errors.New("schema validator not configured")
	}

	logger.Section("Extract")
	ex, err := s.extract(ctx, source)
	if err != nil {
		return nil, err
	}

	logger.Section("Link")
	repo, err := linker.Default(s.settings.Policy).Link(ctx, ex)
	if err != nil {
		return nil, fmt.Errorf("link: %w", err)
	}
	if s.transformer != nil {
		transformDocs(repo, s.transformer)
	}

	var checksum string
	if s.checksummer != nil {
		checksum, err = s.checksummer.Checksum(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("checksum: %w", err)
		}
	}

	logger.Section("Assemble")
	a := assembler.New(assembler.Options{
		GeneratorVersion: s.version,
		Copyright:        s.settings.Copyright,
		Legal:            s.settings.Legal,
		Links:            true,
		Clock:            s.clock,
	})
	doc, err := a.Assemble(repo, assembler.Input{Version: ex.Version, Checksum: checksum, Command: command})
	if err != nil {
		return nil, fmt.Errorf("assemble: %w", err)
	}

	data, err := doc.Marshal(0)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if err := s.validator.Validate(data); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return doc, nil
}

// extract reads every configured fragment. All missing mandatory fragments
// are reported together.
func (s *RepositoryService) extract(ctx context.Context, source string) (*domain.Extraction, error) {
	ex := domain.NewExtraction()

	var frags []*domain.Fragment
	var missing []error
	for _, kind := range fragmentOrder {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := s.settings.Fragments[kind]
		if name == "" {
			name = domain.DefaultFragments()[kind]
		}

		frag, err := s.fragments.Fragment(ctx, source, kind, name)
		if errors.Is(err, domain.ErrNotFound) {
			if kind.Mandatory() {
				missing = append(missing, &domain.EntityError{Fragment: name, Kind: kind, Err: domain.ErrFragmentMissing})
			} else {
				logger.Debug("extract: optional fragment %s not present", name)
			}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		frags = append(frags, frag)
	}
	if len(missing) > 0 {
		return nil, errors.Join(missing...)
	}

	for _, frag := range frags {
		if err := extractors.Into(ex, frag, extractors.Options{}); err != nil {
			return nil, fmt.Errorf("extract: %w", err)
		}
		logger.Debug("extract: %s read", frag.Name)
	}
	if ex.Version == (domain.Version{}) {
		return nil, &domain.EntityError{Kind: domain.KindMessage, Field: "version", Err: domain.ErrRequiredFieldMissing}
	}
	return ex, nil
}

// Build normalises, applies amendments and writes the document.
// Extension packs are applied before patch files. Documentation text of
// amendments is written as supplied.
func (s *RepositoryService) Build(ctx context.Context, req driving.BuildRequest) (*driving.BuildResult, error) {
	if s.docStore == nil {
		return nil, errors.New("document store not configured")
	}

	doc, err := s.Normalise(ctx, req.Source, req.Command)
	if err != nil {
		return nil, err
	}
	data, err := doc.Marshal(s.settings.Indent)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	amendments := len(req.ExtensionPacks) + len(req.Patches)
	if amendments > 0 && s.patcher == nil {
		return nil, errors.New("patch service not configured")
	}
	for _, ep := range req.ExtensionPacks {
		logger.Section("Extension pack " + filepath.Base(ep))
		if data, err = s.patcher.ApplyExtensionPack(ctx, data, ep); err != nil {
			return nil, err
		}
	}
	for _, p := range req.Patches {
		logger.Section("Patch " + filepath.Base(p))
		if data, err = s.patcher.ApplyPatchFile(ctx, data, p); err != nil {
			return nil, err
		}
	}
	if amendments > 0 {
		if doc, err = domain.DecodeDocument(data); err != nil {
			return nil, err
		}
	}

	path := filepath.Join(req.Destination, doc.Meta.Version.Filename("json"))
	if err := s.docStore.Write(ctx, path, data); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	logger.Info("wrote %s", path)

	result := &driving.BuildResult{Path: path, Document: doc}
	if s.ledger != nil && s.settings.Ledger.Enabled {
		rec := domain.GenerationRecord{
			ID:        uuid.New().String(),
			Operation: domain.OperationRepo,
			Version:   doc.Meta.Version,
			Source:    req.Source,
			Output:    path,
			Checksum:  doc.Meta.Generator.MD5,
			Patches:   append(append([]string(nil), req.ExtensionPacks...), req.Patches...),
			CreatedAt: s.clock(),
		}
		if err := s.ledger.Record(ctx, rec); err != nil {
			return nil, fmt.Errorf("record generation: %w", err)
		}
		result.RecordID = rec.ID
	}
	return result, nil
}

// transformDocs rewrites every documentation text in repo.
func transformDocs(repo *domain.Repository, t driven.DescriptionTransformer) {
	apply := func(d *domain.Documentation) {
		d.Examples = append([]string(nil), d.Examples...)
		for _, text := range d.Texts() {
			*text = t.Transform(*text)
		}
	}
	rows := func(rows []domain.MessageContent) {
		for i := range rows {
			apply(&rows[i].Docs)
		}
	}

	for k, v := range repo.Abbreviations {
		apply(&v.Docs)
		repo.Abbreviations[k] = v
	}
	for k, v := range repo.Datatypes {
		apply(&v.Docs)
		repo.Datatypes[k] = v
	}
	for k, v := range repo.Sections {
		apply(&v.Docs)
		repo.Sections[k] = v
	}
	for k, v := range repo.Categories {
		apply(&v.Docs)
		repo.Categories[k] = v
	}
	for k, v := range repo.Fields {
		apply(&v.Docs)
		for i := range v.Enum {
			apply(&v.Enum[i].Docs)
		}
		repo.Fields[k] = v
	}
	for k, v := range repo.Components {
		apply(&v.Docs)
		rows(v.Breakdown)
		repo.Components[k] = v
	}
	for k, v := range repo.Messages {
		apply(&v.Docs)
		rows(v.Breakdown)
		repo.Messages[k] = v
	}
}

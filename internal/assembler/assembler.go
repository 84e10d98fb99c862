// Package assembler wraps a linked repository into a canonical document.
package assembler

import (
	"fmt"
	"time"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// Options configures an Assembler.
type Options struct {
	// GeneratorVersion is written to meta.fixtodict.version.
	GeneratorVersion string

	// Copyright is written to meta.copyright.
	Copyright string

	// Legal is written to meta.fixtodict.legal.
	Legal string

	// Links adds public dictionary links to meta.links.
	Links bool

	// Clock returns the generation time. Defaults to time.Now.
	Clock func() time.Time
}

// Input carries the per-run metadata of a document.
type Input struct {
	// Version is the protocol version of the dataset.
	Version domain.Version

	// Checksum is the source integrity tag, may be empty.
	Checksum string

	// Command is the invocation that produced the document.
	Command string
}

// Assembler builds canonical documents.
type Assembler struct {
	opts Options
}

// New creates an Assembler.
func New(opts Options) *Assembler {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Assembler{opts: opts}
}

// Assemble builds the document for repo. Every entity must carry an
// "added" version and every component and message a breakdown.
func (a *Assembler) Assemble(repo *domain.Repository, in Input) (*domain.Document, error) {
	if repo == nil {
		return nil, fmt.Errorf("%w: repository is nil", domain.ErrInvalidInput)
	}
	if in.Version.Protocol == "" {
		return nil, fmt.Errorf("%w: version", domain.ErrRequiredFieldMissing)
	}
	if err := checkComplete(repo); err != nil {
		return nil, err
	}

	meta := domain.Meta{
		Schema:    domain.SchemaVersion,
		Version:   in.Version,
		Copyright: a.opts.Copyright,
		Generator: domain.Generator{
			Version:   a.opts.GeneratorVersion,
			Legal:     a.opts.Legal,
			MD5:       in.Checksum,
			Command:   in.Command,
			Generated: Timestamp(a.opts.Clock()),
		},
	}
	if a.opts.Links {
		links := in.Version.Links()
		meta.Links = &links
	}

	return &domain.Document{Meta: meta, Repository: *repo}, nil
}

// Timestamp formats t as RFC 3339 with second precision, keeping its zone.
func Timestamp(t time.Time) string {
	return t.Truncate(time.Second).Format(time.RFC3339)
}

func checkComplete(repo *domain.Repository) error {
	missingAdded := func(kind domain.Kind, key string) error {
		return &domain.EntityError{Kind: kind, Key: key, Field: "added", Err: domain.ErrRequiredFieldMissing}
	}
	for _, kind := range domain.DocumentKinds {
		for _, key := range repo.Keys(kind) {
			v, _ := repo.Entity(kind, key)
			if h := history(v); h == nil || h.Added == nil {
				return missingAdded(kind, key)
			}
		}
	}
	for _, key := range repo.Components.SortedKeys() {
		if repo.Components[key].Breakdown == nil {
			return &domain.EntityError{Kind: domain.KindComponent, Key: key, Field: "breakdown", Err: domain.ErrRequiredFieldMissing}
		}
	}
	for _, key := range repo.Messages.SortedKeys() {
		if repo.Messages[key].Breakdown == nil {
			return &domain.EntityError{Kind: domain.KindMessage, Key: key, Field: "breakdown", Err: domain.ErrRequiredFieldMissing}
		}
	}
	return nil
}

func history(v any) *domain.History {
	switch e := v.(type) {
	case domain.Abbreviation:
		return &e.History
	case domain.Category:
		return &e.History
	case domain.Component:
		return &e.History
	case domain.Datatype:
		return &e.History
	case domain.Field:
		return &e.History
	case domain.Message:
		return &e.History
	case domain.Section:
		return &e.History
	default:
		return nil
	}
}

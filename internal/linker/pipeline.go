// Package linker resolves the cross-references extractors leave dangling.
//
// Linking runs a fixed sequence of stages over a working State seeded from
// a domain.Extraction. The extraction itself is never modified; the result
// is a new domain.Repository.
package linker

import (
	"context"
	"fmt"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/logger"
)

// State is the working set shared by the stages of one linking run.
type State struct {
	// Repo receives the linked entities.
	Repo *domain.Repository

	// Enums and Contents are private copies of the extracted rows.
	Enums    []domain.Enum
	Contents []domain.MessageContent

	// Phrases is the documentation table, nil when none was supplied.
	Phrases map[string]domain.Phrase

	// Groups holds the ordered content rows per parent once the contents
	// stage has run.
	Groups map[string][]domain.MessageContent

	// Policy holds the named exceptions applied while linking.
	Policy domain.Policy
}

// NewState seeds a State from ex. Entity maps are copied so that stages
// can replace records freely.
func NewState(ex *domain.Extraction, policy domain.Policy) *State {
	repo := domain.NewRepository()
	copyInto(repo.Abbreviations, ex.Abbreviations)
	copyInto(repo.Categories, ex.Categories)
	copyInto(repo.Components, ex.Components)
	copyInto(repo.Datatypes, ex.Datatypes)
	copyInto(repo.Fields, ex.Fields)
	copyInto(repo.Messages, ex.Messages)
	copyInto(repo.Sections, ex.Sections)

	return &State{
		Repo:     repo,
		Enums:    append([]domain.Enum(nil), ex.Enums...),
		Contents: append([]domain.MessageContent(nil), ex.Contents...),
		Phrases:  ex.Phrases,
		Policy:   policy,
	}
}

func copyInto[T any](dst domain.Keyed[T], src map[string]T) {
	for k, v := range src {
		dst[k] = v
	}
}

// Stage resolves one kind of cross-reference.
type Stage interface {
	// Name returns the stage name for logging and configuration.
	Name() string

	// Link updates s in place.
	Link(ctx context.Context, s *State) error
}

// Pipeline chains stages and runs them in order.
type Pipeline struct {
	stages []Stage
	policy domain.Policy
}

// NewPipeline creates a linking pipeline with the given stages.
// Stages are executed in the order provided.
func NewPipeline(policy domain.Policy, stages ...Stage) *Pipeline {
	return &Pipeline{
		stages: stages,
		policy: policy,
	}
}

// Link builds a linked repository from ex.
func (p *Pipeline) Link(ctx context.Context, ex *domain.Extraction) (*domain.Repository, error) {
	if ex == nil {
		return nil, fmt.Errorf("%w: extraction is nil", domain.ErrInvalidInput)
	}

	s := NewState(ex, p.policy)
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Debug("linker: running stage %s", stage.Name())
		if err := stage.Link(ctx, s); err != nil {
			return nil, fmt.Errorf("stage %s: %w", stage.Name(), err)
		}
	}
	return s.Repo, nil
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(stage Stage) {
	p.stages = append(p.stages, stage)
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

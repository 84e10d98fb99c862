package linker

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// BuilderFunc creates a Stage.
type BuilderFunc func() Stage

// Registry maps stage names to their builders.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new stage registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a stage builder to the registry.
// Name should be unique and match the stage's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a stage by name.
// Returns error if the stage name is not registered.
func (r *Registry) Build(name string) (Stage, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown stage: %s", domain.ErrInvalidInput, name)
	}
	return builder(), nil
}

// Has returns true if a stage with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered stage names in ascending order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pipeline builds a pipeline from the named stages, in order.
func (r *Registry) Pipeline(policy domain.Policy, names ...string) (*Pipeline, error) {
	p := NewPipeline(policy)
	for _, name := range names {
		stage, err := r.Build(name)
		if err != nil {
			return nil, err
		}
		p.Add(stage)
	}
	return p, nil
}

package linker

import "github.com/custodia-labs/fixtodict/internal/core/domain"

// Stage names.
const (
	StagePhrases    = "phrases"
	StageEnums      = "enums"
	StageContents   = "contents"
	StageBreakdowns = "breakdowns"
)

// DefaultStages lists the built-in stages in execution order. Breakdowns
// depend on the groups built by the contents stage.
var DefaultStages = []string{StagePhrases, StageEnums, StageContents, StageBreakdowns}

// RegisterDefaults registers all built-in stages with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(StagePhrases, func() Stage { return Phrases{} })
	r.Register(StageEnums, func() Stage { return Enums{} })
	r.Register(StageContents, func() Stage { return Contents{} })
	r.Register(StageBreakdowns, func() Stage { return Breakdowns{} })
}

// Default returns the standard linking pipeline.
func Default(policy domain.Policy) *Pipeline {
	r := NewRegistry()
	RegisterDefaults(r)
	p, err := r.Pipeline(policy, DefaultStages...)
	if err != nil {
		// Unreachable: every default stage is registered above.
		panic(err)
	}
	return p
}

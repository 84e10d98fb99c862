package linker

import (
	"context"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/logger"
)

// Enums embeds enum groups into the fields that reference them. Fields
// named in the suppression policy lose their enum entirely.
type Enums struct{}

// Name returns the stage name.
func (Enums) Name() string { return StageEnums }

// Link resolves every field enum reference in s.
func (Enums) Link(_ context.Context, s *State) error {
	groups := make(map[string][]domain.Enum)
	for _, e := range s.Enums {
		groups[e.Parent] = append(groups[e.Parent], e)
	}

	for _, tag := range s.Repo.Fields.SortedKeys() {
		f := s.Repo.Fields[tag]
		if f.EnumRef == "" {
			continue
		}
		if s.Policy.SuppressesEnum(f.Name) {
			logger.Warn("linker: fields[%s]: suppressing enum %q of %s by policy", tag, f.EnumRef, f.Name)
			f.Enum = nil
			f.EnumRef = ""
			s.Repo.Fields[tag] = f
			continue
		}

		group, ok := groups[f.EnumRef]
		if !ok {
			return &domain.EntityError{Kind: domain.KindField, Key: tag, Field: "enum", Err: domain.ErrUnresolvedReference}
		}
		f.Enum = append([]domain.Enum(nil), group...)
		s.Repo.Fields[tag] = f
	}
	return nil
}

package linker

import (
	"context"
	"sort"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/logger"
)

// Contents groups breakdown rows by parent, resolves their kind and orders
// each group by position.
//
// A row tag names a field when it is a field key, otherwise a component
// when it matches a component name. Preset kinds are kept.
type Contents struct{}

// Name returns the stage name.
func (Contents) Name() string { return StageContents }

// Link builds s.Groups.
func (Contents) Link(_ context.Context, s *State) error {
	componentNames := make(map[string]struct{}, len(s.Repo.Components))
	for _, c := range s.Repo.Components {
		if c.Name != "" {
			componentNames[c.Name] = struct{}{}
		}
	}

	s.Groups = make(map[string][]domain.MessageContent)
	for _, row := range s.Contents {
		if row.Kind == "" {
			if _, ok := s.Repo.Fields[row.Tag]; ok {
				row.Kind = domain.ContentField
			} else if _, ok := componentNames[row.Tag]; ok {
				row.Kind = domain.ContentComponent
			} else {
				logger.Warn("linker: %s[%s]: unresolved content %q", domain.KindMessageContent, row.Parent, row.Tag)
			}
		}
		s.Groups[row.Parent] = append(s.Groups[row.Parent], row)
	}

	for _, rows := range s.Groups {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Position < rows[j].Position
		})
	}
	return nil
}

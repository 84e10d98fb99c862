package linker

import (
	"context"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// Breakdowns embeds content groups: messages take the group of their
// layout id, components the group of their own id. Owners without a group
// get an empty breakdown.
type Breakdowns struct{}

// Name returns the stage name.
func (Breakdowns) Name() string { return StageBreakdowns }

// Link fills every breakdown in s.Repo.
func (Breakdowns) Link(_ context.Context, s *State) error {
	for id, c := range s.Repo.Components {
		c.Breakdown = s.group(id)
		s.Repo.Components[id] = c
	}
	for msgType, m := range s.Repo.Messages {
		m.Breakdown = s.group(m.ComponentRef)
		m.ComponentRef = ""
		s.Repo.Messages[msgType] = m
	}
	return nil
}

// group returns a private copy of the rows of parent, never nil.
func (s *State) group(parent string) []domain.MessageContent {
	rows := s.Groups[parent]
	out := make([]domain.MessageContent, len(rows))
	copy(out, rows)
	return out
}

package linker

import (
	"context"
	"strings"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/logger"
)

// abbreviationPhrase prefixes phrases whose first paragraph is an
// abbreviation term.
const abbreviationPhrase = "AT_"

// Phrases substitutes phrase-table documentation for textId references.
// Unresolved references are logged and leave inline docs untouched.
type Phrases struct{}

// Name returns the stage name.
func (Phrases) Name() string { return StagePhrases }

// Link resolves every textId in s.
func (Phrases) Link(_ context.Context, s *State) error {
	if s.Phrases == nil {
		return nil
	}
	r := phraseResolver{phrases: s.Phrases}

	for k, v := range s.Repo.Abbreviations {
		if p, ok := r.resolve(v.TextID, &v.Docs, domain.KindAbbreviation, k); ok && strings.HasPrefix(v.TextID, abbreviationPhrase) {
			v.Term = p.AbbreviationTerm
		}
		s.Repo.Abbreviations[k] = v
	}
	for k, v := range s.Repo.Categories {
		r.resolve(v.TextID, &v.Docs, domain.KindCategory, k)
		s.Repo.Categories[k] = v
	}
	for k, v := range s.Repo.Components {
		r.resolve(v.TextID, &v.Docs, domain.KindComponent, k)
		s.Repo.Components[k] = v
	}
	for k, v := range s.Repo.Datatypes {
		r.resolve(v.TextID, &v.Docs, domain.KindDatatype, k)
		s.Repo.Datatypes[k] = v
	}
	for k, v := range s.Repo.Fields {
		r.resolve(v.TextID, &v.Docs, domain.KindField, k)
		s.Repo.Fields[k] = v
	}
	for k, v := range s.Repo.Messages {
		r.resolve(v.TextID, &v.Docs, domain.KindMessage, k)
		s.Repo.Messages[k] = v
	}
	for k, v := range s.Repo.Sections {
		r.resolve(v.TextID, &v.Docs, domain.KindSection, k)
		s.Repo.Sections[k] = v
	}
	for i := range s.Enums {
		e := &s.Enums[i]
		r.resolve(e.TextID, &e.Docs, domain.KindEnum, e.Parent+"="+e.Value)
	}
	for i := range s.Contents {
		c := &s.Contents[i]
		r.resolve(c.TextID, &c.Docs, domain.KindMessageContent, c.Parent+"/"+c.Tag)
	}
	return nil
}

type phraseResolver struct {
	phrases map[string]domain.Phrase
}

// resolve replaces docs with the phrase referenced by textID.
func (r phraseResolver) resolve(textID string, docs *domain.Documentation, kind domain.Kind, key string) (domain.Phrase, bool) {
	if textID == "" {
		return domain.Phrase{}, false
	}
	p, ok := r.phrases[textID]
	if !ok {
		logger.Warn("linker: %s[%s]: unresolved textId %q", kind, key, textID)
		return domain.Phrase{}, false
	}
	*docs = domain.Documentation{Description: p.Description}
	return p, true
}

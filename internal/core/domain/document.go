package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaVersion is the canonical document schema revision.
const SchemaVersion = "1"

// Repository holds the linked entity maps of one protocol version.
type Repository struct {
	Abbreviations Keyed[Abbreviation] `json:"abbreviations"`
	Datatypes     Keyed[Datatype]     `json:"datatypes"`
	Sections      Keyed[Section]      `json:"sections"`
	Categories    Keyed[Category]     `json:"categories"`
	Fields        Keyed[Field]        `json:"fields"`
	Components    Keyed[Component]    `json:"components"`
	Messages      Keyed[Message]      `json:"messages"`
}

// NewRepository returns a repository with all maps allocated.
func NewRepository() *Repository {
	return &Repository{
		Abbreviations: make(Keyed[Abbreviation]),
		Datatypes:     make(Keyed[Datatype]),
		Sections:      make(Keyed[Section]),
		Categories:    make(Keyed[Category]),
		Fields:        make(Keyed[Field]),
		Components:    make(Keyed[Component]),
		Messages:      make(Keyed[Message]),
	}
}

// Keys returns the keys of kind in output order.
// Returns nil for kinds that are not keyed document members.
func (r *Repository) Keys(kind Kind) []string {
	switch kind {
	case KindAbbreviation:
		return r.Abbreviations.SortedKeys()
	case KindDatatype:
		return r.Datatypes.SortedKeys()
	case KindSection:
		return r.Sections.SortedKeys()
	case KindCategory:
		return r.Categories.SortedKeys()
	case KindField:
		return r.Fields.SortedKeys()
	case KindComponent:
		return r.Components.SortedKeys()
	case KindMessage:
		return r.Messages.SortedKeys()
	default:
		return nil
	}
}

// Entity returns the entity of kind stored under key.
func (r *Repository) Entity(kind Kind, key string) (any, bool) {
	var (
		v  any
		ok bool
	)
	switch kind {
	case KindAbbreviation:
		v, ok = r.Abbreviations[key]
	case KindDatatype:
		v, ok = r.Datatypes[key]
	case KindSection:
		v, ok = r.Sections[key]
	case KindCategory:
		v, ok = r.Categories[key]
	case KindField:
		v, ok = r.Fields[key]
	case KindComponent:
		v, ok = r.Components[key]
	case KindMessage:
		v, ok = r.Messages[key]
	}
	return v, ok
}

// Len returns the number of entities of kind.
func (r *Repository) Len(kind Kind) int {
	return len(r.Keys(kind))
}

// Meta is the generation envelope of a canonical document.
type Meta struct {
	Schema    string    `json:"schema"`
	Version   Version   `json:"version"`
	Copyright string    `json:"copyright,omitempty"`
	Links     *Links    `json:"links,omitempty"`
	Generator Generator `json:"fixtodict"`
}

// Generator records how a document was produced.
type Generator struct {
	Version   string `json:"version"`
	Legal     string `json:"legal,omitempty"`
	MD5       string `json:"md5,omitempty"`
	Command   string `json:"command,omitempty"`
	Generated string `json:"generated"`
}

// Document is the canonical, versioned JSON document.
type Document struct {
	Meta Meta `json:"meta"`
	Repository
}

// Marshal encodes d with the given indentation (0 for compact output).
func (d *Document) Marshal(indent int) ([]byte, error) {
	if indent <= 0 {
		return json.Marshal(d)
	}
	return json.MarshalIndent(d, "", strings.Repeat(" ", indent))
}

// DecodeDocument parses a canonical document.
func DecodeDocument(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: decode document: %w", ErrInvalidInput, err)
	}
	return &d, nil
}

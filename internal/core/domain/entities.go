package domain

// Kind identifies an entity kind. Keyed kinds double as document members.
type Kind string

// Entity kinds.
const (
	KindAbbreviation   Kind = "abbreviations"
	KindCategory       Kind = "categories"
	KindComponent      Kind = "components"
	KindDatatype       Kind = "datatypes"
	KindEnum           Kind = "enums"
	KindField          Kind = "fields"
	KindMessage        Kind = "messages"
	KindMessageContent Kind = "msgContents"
	KindSection        Kind = "sections"
	KindPhrase         Kind = "phrases"
)

// DocumentKinds lists the keyed kinds in document order.
var DocumentKinds = []Kind{
	KindAbbreviation,
	KindDatatype,
	KindSection,
	KindCategory,
	KindField,
	KindComponent,
	KindMessage,
}

// IsValid returns true if the kind is recognised.
func (k Kind) IsValid() bool {
	switch k {
	case KindAbbreviation, KindCategory, KindComponent, KindDatatype, KindEnum,
		KindField, KindMessage, KindMessageContent, KindSection, KindPhrase:
		return true
	default:
		return false
	}
}

// IsKeyed reports whether entities of this kind are addressable by key in a document.
func (k Kind) IsKeyed() bool {
	for _, dk := range DocumentKinds {
		if dk == k {
			return true
		}
	}
	return false
}

// Mandatory reports whether a source fragment of this kind must be present.
func (k Kind) Mandatory() bool {
	switch k {
	case KindEnum, KindField, KindMessage, KindMessageContent:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k Kind) String() string {
	return string(k)
}

// ContentKind is the resolved kind of a breakdown row.
type ContentKind string

// Breakdown row kinds.
const (
	ContentField     ContentKind = "field"
	ContentComponent ContentKind = "component"
)

// Abbreviation is keyed by the abbreviated term.
type Abbreviation struct {
	Term    string        `json:"term,omitempty"`
	Docs    Documentation `json:"docs,omitzero"`
	History History       `json:"history,omitzero"`

	// TextID references a phrase holding the documentation.
	TextID string `json:"-"`
}

// Datatype is keyed by name. Base equals the name for root datatypes.
type Datatype struct {
	Base    string        `json:"base,omitempty"`
	Docs    Documentation `json:"docs,omitzero"`
	History History       `json:"history,omitzero"`
	TextID  string        `json:"-"`
}

// Section is keyed by section id.
type Section struct {
	Name    string        `json:"name,omitempty"`
	FIXML   FIXML         `json:"fixml,omitzero"`
	Docs    Documentation `json:"docs,omitzero"`
	History History       `json:"history,omitzero"`
	TextID  string        `json:"-"`
}

// Category is keyed by category id.
type Category struct {
	Kind    string        `json:"kind,omitempty"`
	Section string        `json:"section,omitempty"`
	FIXML   FIXML         `json:"fixml,omitzero"`
	Docs    Documentation `json:"docs,omitzero"`
	History History       `json:"history,omitzero"`
	TextID  string        `json:"-"`
}

// Component is keyed by component id.
// Breakdown is nil before linking and non-nil (possibly empty) after.
type Component struct {
	Name      string           `json:"name,omitempty"`
	NameAbbr  string           `json:"nameAbbr,omitempty"`
	Kind      string           `json:"kind,omitempty"`
	Category  string           `json:"category,omitempty"`
	Breakdown []MessageContent `json:"breakdown,omitzero"`
	Docs      Documentation    `json:"docs,omitzero"`
	History   History          `json:"history,omitzero"`
	TextID    string           `json:"-"`
}

// Field is keyed by numeric tag.
type Field struct {
	Name     string        `json:"name,omitempty"`
	Datatype string        `json:"datatype,omitempty"`
	Enum     []Enum        `json:"enum,omitempty"`
	Docs     Documentation `json:"docs,omitzero"`
	History  History       `json:"history,omitzero"`

	// EnumRef is the grouping key of the field's enum set, resolved by the linker.
	EnumRef string `json:"-"`
	TextID  string `json:"-"`
}

// Enum is one value of a field's enumeration. Parent is the owning field tag.
type Enum struct {
	Name    string        `json:"name,omitempty"`
	Value   string        `json:"value"`
	Docs    Documentation `json:"docs,omitzero"`
	History History       `json:"history,omitzero"`
	Parent  string        `json:"-"`
	TextID  string        `json:"-"`
}

// Message is keyed by message type code.
type Message struct {
	Name      string           `json:"name,omitempty"`
	Category  string           `json:"category,omitempty"`
	Section   string           `json:"section,omitempty"`
	Breakdown []MessageContent `json:"breakdown,omitzero"`
	FIXML     FIXML            `json:"fixml,omitzero"`
	Docs      Documentation    `json:"docs,omitzero"`
	History   History          `json:"history,omitzero"`

	// ComponentRef is the id of the content group holding the message layout.
	// It is consumed by the linker.
	ComponentRef string `json:"-"`
	TextID       string `json:"-"`
}

// MessageContent is one row of a breakdown, grouped by Parent.
type MessageContent struct {
	Parent   string        `json:"parent,omitempty"`
	Tag      string        `json:"tag"`
	Kind     ContentKind   `json:"kind,omitempty"`
	Position float64       `json:"position"`
	Optional bool          `json:"optional"`
	Inlined  bool          `json:"inlined"`
	Docs     Documentation `json:"docs,omitzero"`
	History  History       `json:"history,omitzero"`
	TextID   string        `json:"-"`
}

// Phrase is an externally stored documentation block referenced by textId.
type Phrase struct {
	Description string

	// AbbreviationTerm is the first paragraph, used as the term of "AT_" phrases.
	AbbreviationTerm string
}

package domain

// Fragment is one source file holding all instances of one entity kind.
type Fragment struct {
	// Kind is the entity kind held by the fragment.
	Kind Kind

	// Name is the file name, used for error attribution.
	Name string

	// Data is the raw XML content.
	Data []byte
}

// Extraction is the raw, unlinked output of the extractors.
// It is never mutated once built; the linker derives a new Repository from it.
type Extraction struct {
	// Version is the protocol version of the source dataset.
	Version Version

	Abbreviations map[string]Abbreviation
	Categories    map[string]Category
	Components    map[string]Component
	Datatypes     map[string]Datatype
	Fields        map[string]Field
	Messages      map[string]Message
	Sections      map[string]Section

	// Enums are grouped by Parent during linking.
	Enums []Enum

	// Contents are grouped by Parent during linking.
	Contents []MessageContent

	// Phrases maps textId to documentation blocks. Nil when no phrase table exists.
	Phrases map[string]Phrase
}

// NewExtraction returns an extraction with all maps allocated.
func NewExtraction() *Extraction {
	return &Extraction{
		Abbreviations: make(map[string]Abbreviation),
		Categories:    make(map[string]Category),
		Components:    make(map[string]Component),
		Datatypes:     make(map[string]Datatype),
		Fields:        make(map[string]Field),
		Messages:      make(map[string]Message),
		Sections:      make(map[string]Section),
	}
}

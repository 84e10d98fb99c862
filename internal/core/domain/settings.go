package domain

import "time"

// DefaultCopyright is the notice attached to every generated document.
const DefaultCopyright = "Copyright (c) FIX Protocol Limited, all rights reserved"

// DefaultLegal is the free-text legal notice of the generator.
const DefaultLegal = "FIX Repository data is the property of FIX Protocol Limited. " +
	"fixtodict transformations are released under the Apache License 2.0: " +
	"https://www.apache.org/licenses/LICENSE-2.0.txt"

// DefaultIndent is the JSON indentation of written documents.
const DefaultIndent = 2

// Policy holds named exceptions applied by the pipeline.
// The tables are data, not logic, so that product owners can review them.
type Policy struct {
	// EnumSuppressions lists field names whose enum reference is dropped
	// rather than resolved, because the source enumeration is erroneous.
	EnumSuppressions []string

	// ExtensionPackExtractors maps an extension-pack container kind to the
	// kind whose extractor parses its entries.
	ExtensionPackExtractors map[Kind]Kind
}

// DefaultPolicy returns the exception tables observed in FIX Repository data.
//
// Components in extension packs are parsed with the abbreviation extractor,
// as the reference converter does. The mapping is pending product-owner
// confirmation and is logged whenever it is used.
func DefaultPolicy() Policy {
	return Policy{
		EnumSuppressions: []string{"RefMsgType"},
		ExtensionPackExtractors: map[Kind]Kind{
			KindAbbreviation: KindAbbreviation,
			KindCategory:     KindCategory,
			KindComponent:    KindAbbreviation,
			KindDatatype:     KindDatatype,
			KindField:        KindField,
			KindMessage:      KindMessage,
			KindSection:      KindSection,
		},
	}
}

// SuppressesEnum reports whether the enum of the named field must be dropped.
func (p Policy) SuppressesEnum(fieldName string) bool {
	for _, name := range p.EnumSuppressions {
		if name == fieldName {
			return true
		}
	}
	return false
}

// ExtractorFor returns the extractor kind for an extension-pack container.
// Unmapped kinds use their own extractor.
func (p Policy) ExtractorFor(kind Kind) Kind {
	if k, ok := p.ExtensionPackExtractors[kind]; ok {
		return k
	}
	return kind
}

// LedgerSettings configures the generation ledger.
type LedgerSettings struct {
	// Enabled turns recording on.
	Enabled bool

	// Dir is the directory holding the ledger database.
	// Empty means ~/.fixtodict/data.
	Dir string
}

// Settings is the resolved configuration of a run.
type Settings struct {
	// Fragments maps each kind to its source file name.
	Fragments map[Kind]string

	// SchemaPath overrides the embedded schema when set.
	SchemaPath string

	// Indent is the JSON indentation of written documents.
	Indent int

	// Copyright is copied into meta.copyright.
	Copyright string

	// Legal is copied into meta.fixtodict.legal.
	Legal string

	// Typos maps misspellings to corrections in documentation text.
	Typos map[string]string

	// Ledger configures run recording.
	Ledger LedgerSettings

	// Policy holds the named exception tables.
	Policy Policy
}

// DefaultFragments returns the conventional fragment file names.
func DefaultFragments() map[Kind]string {
	return map[Kind]string{
		KindAbbreviation:   "Abbreviations.xml",
		KindCategory:       "Categories.xml",
		KindComponent:      "Components.xml",
		KindDatatype:       "Datatypes.xml",
		KindEnum:           "Enums.xml",
		KindField:          "Fields.xml",
		KindMessage:        "Messages.xml",
		KindMessageContent: "MsgContents.xml",
		KindSection:        "Sections.xml",
		KindPhrase:         "Phrases.xml",
	}
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Fragments: DefaultFragments(),
		Indent:    DefaultIndent,
		Copyright: DefaultCopyright,
		Legal:     DefaultLegal,
		Typos:     map[string]string{},
		Ledger:    LedgerSettings{Enabled: true},
		Policy:    DefaultPolicy(),
	}
}

// Generation operations recorded in the ledger.
const (
	OperationRepo  = "repo"
	OperationPatch = "patch"
)

// GenerationRecord is one ledger entry describing a written document.
type GenerationRecord struct {
	// ID uniquely identifies the run.
	ID string

	// Operation is OperationRepo or OperationPatch.
	Operation string

	// Version is the protocol version of the written document.
	Version Version

	// Source is the input directory or document path.
	Source string

	// Output is the path of the written document.
	Output string

	// Checksum is the source integrity tag, if computed.
	Checksum string

	// Patches lists applied extension packs and patch files, in order.
	Patches []string

	// CreatedAt is when the document was written.
	CreatedAt time.Time
}

package extractors

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// Parse reads an XML fragment and returns its root element.
func Parse(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", domain.ErrInvalidInput)
	}
	return root, nil
}

// ExtractAll runs extract over every child element of root. A key seen
// twice fails with domain.ErrDuplicateKey.
func ExtractAll[T any](root *etree.Element, kind domain.Kind, extract Extractor[T], opts Options) (map[string]T, error) {
	out := make(map[string]T)
	if root == nil {
		return out, nil
	}
	for _, child := range root.ChildElements() {
		key, rec, err := extract(child, opts)
		if err != nil {
			return nil, err
		}
		if _, dup := out[key]; dup {
			return nil, &domain.EntityError{Kind: kind, Key: key, Err: domain.ErrDuplicateKey}
		}
		out[key] = rec
	}
	return out, nil
}

// ExtractRows runs extract over every child element of root, in order.
func ExtractRows[T any](root *etree.Element, extract RowExtractor[T], opts Options) ([]T, error) {
	if root == nil {
		return nil, nil
	}
	out := make([]T, 0, len(root.ChildElements()))
	for _, child := range root.ChildElements() {
		rec, err := extract(child, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

var (
	rootVersion       = Of(Attr("version"))
	rootExtensionPack = Of(Attr("extensionPack"))
)

// RootVersion reads the "version" attribute of a fragment root.
// Returns nil when the attribute is absent.
func RootVersion(root *etree.Element) (*domain.Version, error) {
	raw, ok := rootVersion.Find(root)
	if !ok {
		return nil, nil
	}
	v, err := domain.ParseVersion(raw, rootExtensionPack.String(root))
	if err != nil {
		return nil, &domain.EntityError{Field: "version", Err: err}
	}
	return &v, nil
}

// Into extracts the fragment into ex. Unified components, messages and
// fields contribute their nested content rows and enum values as well.
//
// The dataset version is read from the fragment root. The messages
// fragment is authoritative; other fragments only fill an unset version.
func Into(ex *domain.Extraction, frag *domain.Fragment, opts Options) error {
	root, err := Parse(frag.Data)
	if err != nil {
		return domain.WithFragment(err, frag.Name)
	}

	v, err := RootVersion(root)
	if err != nil {
		return domain.WithFragment(err, frag.Name)
	}
	if v != nil && (frag.Kind == domain.KindMessage || ex.Version == (domain.Version{})) {
		ex.Version = *v
	}

	return domain.WithFragment(into(ex, frag.Kind, root, opts), frag.Name)
}

func into(ex *domain.Extraction, kind domain.Kind, root *etree.Element, opts Options) error {
	switch kind {
	case domain.KindAbbreviation:
		return merge(ex.Abbreviations, root, kind, Abbreviation, opts)
	case domain.KindCategory:
		return merge(ex.Categories, root, kind, Category, opts)
	case domain.KindDatatype:
		return merge(ex.Datatypes, root, kind, Datatype, opts)
	case domain.KindSection:
		return merge(ex.Sections, root, kind, Section, opts)
	case domain.KindComponent:
		return mergeNested(ex, ex.Components, root, kind, Component, opts, func(key string, _ *domain.Component) string {
			return key
		})
	case domain.KindMessage:
		return mergeNested(ex, ex.Messages, root, kind, Message, opts, func(key string, m *domain.Message) string {
			if m.ComponentRef == "" {
				m.ComponentRef = key
			}
			return m.ComponentRef
		})
	case domain.KindField:
		return mergeFields(ex, root, opts)
	case domain.KindEnum:
		rows, err := ExtractRows(root, Enum, opts)
		if err != nil {
			return err
		}
		ex.Enums = append(ex.Enums, rows...)
		return nil
	case domain.KindMessageContent:
		rows, err := ExtractRows(root, MessageContent, opts)
		if err != nil {
			return err
		}
		ex.Contents = append(ex.Contents, rows...)
		return nil
	case domain.KindPhrase:
		phrases, err := ExtractAll(root, kind, Phrase, opts)
		if err != nil {
			return err
		}
		if ex.Phrases == nil {
			ex.Phrases = make(map[string]domain.Phrase, len(phrases))
		}
		for k, v := range phrases {
			ex.Phrases[k] = v
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidInput, kind)
	}
}

func merge[T any](dst map[string]T, root *etree.Element, kind domain.Kind, extract Extractor[T], opts Options) error {
	recs, err := ExtractAll(root, kind, extract, opts)
	if err != nil {
		return err
	}
	for k, v := range recs {
		if _, dup := dst[k]; dup {
			return &domain.EntityError{Kind: kind, Key: k, Err: domain.ErrDuplicateKey}
		}
		dst[k] = v
	}
	return nil
}

// mergeNested extracts keyed records whose elements may also carry
// Unified content references. layout names the content group of a record.
func mergeNested[T any](
	ex *domain.Extraction,
	dst map[string]T,
	root *etree.Element,
	kind domain.Kind,
	extract Extractor[T],
	opts Options,
	layout func(key string, rec *T) string,
) error {
	for _, child := range root.ChildElements() {
		key, rec, err := extract(child, opts)
		if err != nil {
			return err
		}
		if _, dup := dst[key]; dup {
			return &domain.EntityError{Kind: kind, Key: key, Err: domain.ErrDuplicateKey}
		}

		rows, err := NestedContents(child, layout(key, &rec), opts)
		if err != nil {
			return err
		}
		ex.Contents = append(ex.Contents, rows...)
		dst[key] = rec
	}
	return nil
}

func mergeFields(ex *domain.Extraction, root *etree.Element, opts Options) error {
	for _, child := range root.ChildElements() {
		key, rec, err := Field(child, opts)
		if err != nil {
			return err
		}
		if _, dup := ex.Fields[key]; dup {
			return &domain.EntityError{Kind: domain.KindField, Key: key, Err: domain.ErrDuplicateKey}
		}
		enums, err := NestedEnums(child, key, opts)
		if err != nil {
			return err
		}
		ex.Enums = append(ex.Enums, enums...)
		ex.Fields[key] = rec
	}
	return nil
}

// ForKind returns the extractor of a keyed kind with its record boxed.
func ForKind(kind domain.Kind) (Extractor[any], bool) {
	switch kind {
	case domain.KindAbbreviation:
		return box(Abbreviation), true
	case domain.KindCategory:
		return box(Category), true
	case domain.KindComponent:
		return box(Component), true
	case domain.KindDatatype:
		return box(Datatype), true
	case domain.KindField:
		return box(Field), true
	case domain.KindMessage:
		return box(Message), true
	case domain.KindSection:
		return box(Section), true
	default:
		return nil, false
	}
}

func box[T any](extract Extractor[T]) Extractor[any] {
	return func(el *etree.Element, opts Options) (string, any, error) {
		key, rec, err := extract(el, opts)
		if err != nil {
			return "", nil, err
		}
		return key, rec, nil
	}
}

package extractors

import (
	"github.com/beevik/etree"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

var (
	fieldKey      = Of(Elem("Tag"), Attr("id"))
	fieldName     = Of(Elem("Name"), Attr("name"))
	fieldDatatype = Of(Elem("Type"), Attr("type"))
	fieldEnumRef  = Of(Elem("EnumDatatype"), Attr("enumDatatype"))
)

// nestedEnum is the element name of inline enum values in the Unified dialect.
const nestedEnum = "enum"

// Field extracts a field keyed by its tag. The enum is left as a reference:
// EnumDatatype when present, the field's own tag when enum values are
// nested inline.
func Field(el *etree.Element, opts Options) (string, domain.Field, error) {
	key, err := required(el, fieldKey, domain.KindField, "", "Tag")
	if err != nil {
		return "", domain.Field{}, err
	}

	history, err := History(el, opts.history(true))
	if err != nil {
		return "", domain.Field{}, attribute(err, domain.KindField, key)
	}

	enumRef, _ := fieldEnumRef.Find(el)
	if enumRef == "" && el.SelectElement(nestedEnum) != nil {
		enumRef = key
	}

	docs, textID := Docs(el, DocsOptions{Description: true, Elaboration: true})
	return key, domain.Field{
		Name:     fieldName.String(el),
		Datatype: fieldDatatype.String(el),
		Docs:     docs,
		History:  history,
		EnumRef:  enumRef,
		TextID:   textID,
	}, nil
}

// NestedEnums extracts the inline enum children of a Unified field.
func NestedEnums(el *etree.Element, tag string, opts Options) ([]domain.Enum, error) {
	var out []domain.Enum
	for _, child := range el.SelectElements(nestedEnum) {
		e, err := enumValue(child, tag, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

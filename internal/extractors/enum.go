package extractors

import (
	"github.com/beevik/etree"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

var (
	enumTag    = Of(Elem("Tag"), Attr("tag"))
	enumSymbol = Of(Elem("SymbolicName"), Attr("symbolicName"))
	enumCode   = Of(Elem("Value"), Attr("value"))
)

// Enum extracts one enumeration value. Values are grouped by Parent, the
// tag of the owning field.
func Enum(el *etree.Element, opts Options) (domain.Enum, error) {
	parent, err := required(el, enumTag, domain.KindEnum, "", "Tag")
	if err != nil {
		return domain.Enum{}, err
	}
	return enumValue(el, parent, opts)
}

func enumValue(el *etree.Element, parent string, opts Options) (domain.Enum, error) {
	value, err := required(el, enumCode, domain.KindEnum, parent, "Value")
	if err != nil {
		return domain.Enum{}, err
	}
	key := parent + "=" + value

	history, err := History(el, opts.history(true))
	if err != nil {
		return domain.Enum{}, attribute(err, domain.KindEnum, key)
	}

	docs, textID := Docs(el, DocsOptions{Description: true, Elaboration: true})
	return domain.Enum{
		Name:    enumSymbol.String(el),
		Value:   value,
		Docs:    docs,
		History: history,
		Parent:  parent,
		TextID:  textID,
	}, nil
}

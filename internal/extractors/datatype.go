package extractors

import (
	"github.com/beevik/etree"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

var (
	datatypeKey  = Of(Attr("Name"), Attr("name"), Elem("Name"))
	datatypeBase = Of(Elem("Base"), Attr("baseType"))
)

// Datatype extracts a datatype keyed by its name.
// Root datatypes are their own base. Partial records keep an absent base
// absent so that updates do not rewrite it.
func Datatype(el *etree.Element, opts Options) (string, domain.Datatype, error) {
	key, err := required(el, datatypeKey, domain.KindDatatype, "", "Name")
	if err != nil {
		return "", domain.Datatype{}, err
	}

	history, err := History(el, opts.history(false))
	if err != nil {
		return "", domain.Datatype{}, attribute(err, domain.KindDatatype, key)
	}

	base, ok := datatypeBase.Find(el)
	if !ok && !opts.Partial {
		base = key
	}

	docs, textID := Docs(el, DocsOptions{Description: true, Examples: true})
	return key, domain.Datatype{
		Base:    base,
		Docs:    docs,
		History: history,
		TextID:  textID,
	}, nil
}

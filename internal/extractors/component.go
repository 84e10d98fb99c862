package extractors

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

var (
	componentKey      = Of(Attr("id"), Elem("ComponentID"))
	componentName     = Of(Attr("name"), Elem("Name"))
	componentNameAbbr = Of(Attr("abbrName"), Elem("NameAbbr"))
	componentKind     = Of(Attr("type"), Elem("ComponentType"))
	componentCategory = Of(Attr("category"), Elem("CategoryID"))
)

// Component extracts a component keyed by its id. The breakdown is left
// nil for the linker to fill.
func Component(el *etree.Element, opts Options) (string, domain.Component, error) {
	key, err := required(el, componentKey, domain.KindComponent, "", "ComponentID")
	if err != nil {
		return "", domain.Component{}, err
	}

	history, err := History(el, opts.history(false))
	if err != nil {
		return "", domain.Component{}, attribute(err, domain.KindComponent, key)
	}

	docs, textID := Docs(el, DocsOptions{Description: true, Elaboration: true})
	return key, domain.Component{
		Name:     componentName.String(el),
		NameAbbr: componentNameAbbr.String(el),
		Kind:     strings.ToLower(componentKind.String(el)),
		Category: componentCategory.String(el),
		Docs:     docs,
		History:  history,
		TextID:   textID,
	}, nil
}

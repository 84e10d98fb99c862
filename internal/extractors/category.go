package extractors

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

var (
	categoryKey          = Of(Elem("CategoryID"), Attr("id"))
	categoryKind         = Of(Attr("componentType"), Elem("ComponentType"))
	categorySection      = Of(Attr("section"), Elem("SectionID"))
	categoryFilename     = Of(Attr("FIXMLFileName"), Elem("FIXMLFileName"))
	categoryGenerateImpl = Of(Attr("generateImplFile"), Elem("GenerateImplFile"))
	categoryNotReqXML    = Of(Attr("notReqXML"), Elem("NotReqXML"))
)

// Category extracts a message category keyed by its id.
func Category(el *etree.Element, opts Options) (string, domain.Category, error) {
	const kind = domain.KindCategory

	key, err := required(el, categoryKey, kind, "", "CategoryID")
	if err != nil {
		return "", domain.Category{}, err
	}

	history, err := History(el, opts.history(false))
	if err != nil {
		return "", domain.Category{}, attribute(err, kind, key)
	}

	generateImpl, err := flag(el, categoryGenerateImpl, kind, key, "GenerateImplFile")
	if err != nil {
		return "", domain.Category{}, err
	}
	optional, err := flag(el, categoryNotReqXML, kind, key, "NotReqXML")
	if err != nil {
		return "", domain.Category{}, err
	}

	docs, textID := Docs(el, DocsOptions{Description: true, Volume: true})
	return key, domain.Category{
		Kind:    strings.ToLower(categoryKind.String(el)),
		Section: categorySection.String(el),
		FIXML: domain.FIXML{
			Filename:     categoryFilename.String(el),
			GenerateImpl: generateImpl,
			Optional:     optional,
		},
		Docs:    docs,
		History: history,
		TextID:  textID,
	}, nil
}

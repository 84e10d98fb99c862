package extractors

import (
	"github.com/beevik/etree"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

var (
	sectionKey       = Of(Attr("id"), Elem("SectionID"))
	sectionName      = Of(Attr("name"), Elem("Name"))
	sectionFilename  = Of(Attr("FIXMLFileName"), Elem("FIXMLFileName"))
	sectionNotReqXML = Of(Attr("notReqXML"), Elem("NotReqXML"))
)

// Section extracts a protocol section keyed by its id.
func Section(el *etree.Element, opts Options) (string, domain.Section, error) {
	key, err := required(el, sectionKey, domain.KindSection, "", "SectionID")
	if err != nil {
		return "", domain.Section{}, err
	}

	history, err := History(el, opts.history(false))
	if err != nil {
		return "", domain.Section{}, attribute(err, domain.KindSection, key)
	}

	optional, err := flag(el, sectionNotReqXML, domain.KindSection, key, "NotReqXML")
	if err != nil {
		return "", domain.Section{}, err
	}

	docs, textID := Docs(el, DocsOptions{Description: true, Volume: true})
	return key, domain.Section{
		Name: sectionName.String(el),
		FIXML: domain.FIXML{
			Filename: sectionFilename.String(el),
			Optional: optional,
		},
		Docs:    docs,
		History: history,
		TextID:  textID,
	}, nil
}

package extractors

import (
	"github.com/beevik/etree"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

var (
	abbrKey  = Of(Attr("abbrTerm"), Elem("AbbrTerm"))
	abbrTerm = Of(Attr("term"), Elem("Term"))
)

// Abbreviation extracts an abbreviation keyed by its abbreviated term.
func Abbreviation(el *etree.Element, opts Options) (string, domain.Abbreviation, error) {
	key, err := required(el, abbrKey, domain.KindAbbreviation, "", "abbrTerm")
	if err != nil {
		return "", domain.Abbreviation{}, err
	}

	history, err := History(el, opts.history(false))
	if err != nil {
		return "", domain.Abbreviation{}, attribute(err, domain.KindAbbreviation, key)
	}

	docs, textID := Docs(el, DocsOptions{Usage: true})
	return key, domain.Abbreviation{
		Term:    abbrTerm.String(el),
		Docs:    docs,
		History: history,
		TextID:  textID,
	}, nil
}

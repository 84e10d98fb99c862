package extractors

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

var phraseKey = Of(Attr("textId"))

// Phrase extracts a documentation block keyed by its textId. The first
// paragraph doubles as the term of abbreviation phrases.
func Phrase(el *etree.Element, _ Options) (string, domain.Phrase, error) {
	key, err := required(el, phraseKey, domain.KindPhrase, "", "textId")
	if err != nil {
		return "", domain.Phrase{}, err
	}

	var paras []string
	if text := el.SelectElement("text"); text != nil {
		paras = Texts(text, "para")
	}
	if len(paras) == 0 {
		return key, domain.Phrase{}, nil
	}
	return key, domain.Phrase{
		Description:      strings.Join(paras, "\n") + "\n",
		AbbreviationTerm: paras[0],
	}, nil
}

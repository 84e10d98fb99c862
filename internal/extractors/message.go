package extractors

import (
	"github.com/beevik/etree"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

var (
	messageKey       = Of(Attr("msgType"), Elem("MsgType"))
	messageLayout    = Of(Attr("id"), Elem("ComponentID"))
	messageName      = Of(Attr("name"), Elem("Name"))
	messageCategory  = Of(Attr("category"), Elem("CategoryID"))
	messageSection   = Of(Attr("section"), Elem("SectionID"))
	messageNotReqXML = Of(Attr("notReqXML"), Elem("NotReqXML"))
)

// Message extracts a message keyed by its message type. ComponentRef holds
// the id of the content group describing its layout.
func Message(el *etree.Element, opts Options) (string, domain.Message, error) {
	key, err := required(el, messageKey, domain.KindMessage, "", "MsgType")
	if err != nil {
		return "", domain.Message{}, err
	}

	history, err := History(el, opts.history(false))
	if err != nil {
		return "", domain.Message{}, attribute(err, domain.KindMessage, key)
	}

	optional, err := flag(el, messageNotReqXML, domain.KindMessage, key, "NotReqXML")
	if err != nil {
		return "", domain.Message{}, err
	}

	docs, textID := Docs(el, DocsOptions{Description: true, Elaboration: true})
	return key, domain.Message{
		Name:         messageName.String(el),
		Category:     messageCategory.String(el),
		Section:      messageSection.String(el),
		FIXML:        domain.FIXML{Optional: optional},
		Docs:         docs,
		History:      history,
		ComponentRef: messageLayout.String(el),
		TextID:       textID,
	}, nil
}

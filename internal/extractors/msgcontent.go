package extractors

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

var (
	contentParent   = Of(Elem("ComponentID"), Attr("componentID"))
	contentTag      = Of(Elem("TagText"), Attr("tagText"))
	contentPosition = Of(Elem("Position"), Attr("position"))
	contentReqd     = Of(Elem("Reqd"), Attr("reqd"))
	contentInlined  = Of(Elem("Inlined"), Attr("inlined"))
)

// Reference element names of the Unified dialect.
const (
	refField     = "fieldRef"
	refComponent = "componentRef"
	refGroup     = "groupRef"
)

var (
	refFieldTag     = Of(Attr("id"), Attr("tag"))
	refComponentTag = Of(Attr("name"), Attr("id"))
	refRequired     = Of(Attr("required"))
	refInlined      = Of(Attr("inlined"))
)

// MessageContent extracts one breakdown row. Rows are grouped by Parent.
func MessageContent(el *etree.Element, opts Options) (domain.MessageContent, error) {
	const kind = domain.KindMessageContent

	parent, err := required(el, contentParent, kind, "", "ComponentID")
	if err != nil {
		return domain.MessageContent{}, err
	}
	tag, err := required(el, contentTag, kind, parent, "TagText")
	if err != nil {
		return domain.MessageContent{}, err
	}
	key := parent + "/" + tag

	rawPosition, err := required(el, contentPosition, kind, key, "Position")
	if err != nil {
		return domain.MessageContent{}, err
	}
	position, err := strconv.ParseFloat(rawPosition, 64)
	if err != nil {
		return domain.MessageContent{}, &domain.EntityError{Kind: kind, Key: key, Field: "Position", Err: domain.ErrInvalidInput}
	}

	reqd, err := flag(el, contentReqd, kind, key, "Reqd")
	if err != nil {
		return domain.MessageContent{}, err
	}
	inlined, err := flag(el, contentInlined, kind, key, "Inlined")
	if err != nil {
		return domain.MessageContent{}, err
	}

	history, err := History(el, opts.history(false))
	if err != nil {
		return domain.MessageContent{}, attribute(err, kind, key)
	}

	docs, textID := Docs(el, DocsOptions{Description: true})
	return domain.MessageContent{
		Parent:   parent,
		Tag:      tag,
		Position: position,
		Optional: reqd != nil && !*reqd,
		Inlined:  inlined == nil || *inlined,
		Docs:     docs,
		History:  history,
		TextID:   textID,
	}, nil
}

// NestedContents extracts the fieldRef, componentRef and groupRef children
// of a Unified component or message. Rows get their kind preset and
// positions 1..n in document order.
func NestedContents(el *etree.Element, parent string, opts Options) ([]domain.MessageContent, error) {
	const kind = domain.KindMessageContent

	var rows []domain.MessageContent
	for _, child := range el.ChildElements() {
		var (
			contentKind domain.ContentKind
			tagLookup   Lookup
		)
		switch child.Tag {
		case refField:
			contentKind, tagLookup = domain.ContentField, refFieldTag
		case refComponent, refGroup:
			contentKind, tagLookup = domain.ContentComponent, refComponentTag
		default:
			continue
		}

		tag, err := required(child, tagLookup, kind, parent, child.Tag)
		if err != nil {
			return nil, err
		}
		key := parent + "/" + tag

		req, err := flag(child, refRequired, kind, key, "required")
		if err != nil {
			return nil, err
		}
		inlined, err := flag(child, refInlined, kind, key, "inlined")
		if err != nil {
			return nil, err
		}
		history, err := History(child, opts.history(false))
		if err != nil {
			return nil, attribute(err, kind, key)
		}

		docs, textID := Docs(child, DocsOptions{Description: true})
		rows = append(rows, domain.MessageContent{
			Parent:   parent,
			Tag:      tag,
			Kind:     contentKind,
			Position: float64(len(rows) + 1),
			Optional: req == nil || !*req,
			Inlined:  inlined == nil || *inlined,
			Docs:     docs,
			History:  history,
			TextID:   textID,
		})
	}
	return rows, nil
}

// Package extensionpack parses extension-pack fragments into change sets.
//
// Entries are read with the same extractors as the primary fragments, so
// change-set records have the shape of document entities. Which extractor
// serves a container is decided by domain.Policy.
package extensionpack

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
	"github.com/custodia-labs/fixtodict/internal/extractors"
	"github.com/custodia-labs/fixtodict/internal/logger"
)

// rootTag is the element holding one extension pack.
const rootTag = "extensionPack"

var (
	packID       = extractors.Of(extractors.Attr("id"))
	packApproved = extractors.Of(extractors.Attr("approved"))
	packDesc     = extractors.Of(extractors.Attr("desc"))
)

// container names the XML elements of one kind.
type container struct {
	kind   domain.Kind
	group  string
	entity string
}

var containers = []container{
	{domain.KindAbbreviation, "Abbreviations", "Abbreviation"},
	{domain.KindDatatype, "Datatypes", "Datatype"},
	{domain.KindSection, "Sections", "Section"},
	{domain.KindCategory, "Categories", "Category"},
	{domain.KindField, "Fields", "Field"},
	{domain.KindComponent, "Components", "Component"},
	{domain.KindMessage, "Messages", "Message"},
}

// changes maps change containers to change types. Only inserts carry
// complete records.
var changes = []struct {
	tag     string
	ct      domain.ChangeType
	partial bool
}{
	{"Inserts", domain.ChangeAdded, false},
	{"Updates", domain.ChangeUpdated, true},
	{"Deprecations", domain.ChangeDeprecated, true},
	{"Deletes", domain.ChangeRemoved, true},
}

// ParseBytes parses an extension-pack file.
func ParseBytes(data []byte, policy domain.Policy) (*domain.ChangeSet, error) {
	root, err := extractors.Parse(data)
	if err != nil {
		return nil, err
	}
	return Parse(root, policy)
}

// Parse reads the extension pack at root. root is either the
// <extensionPack> element or a wrapper whose first such child is used.
func Parse(root *etree.Element, policy domain.Policy) (*domain.ChangeSet, error) {
	ep := root
	if ep.Tag != rootTag {
		ep = root.SelectElement(rootTag)
		if ep == nil {
			return nil, fmt.Errorf("%w: no <%s> element", domain.ErrInvalidInput, rootTag)
		}
	}

	id, ok := packID.Find(ep)
	if !ok {
		return nil, &domain.EntityError{Field: "id", Err: domain.ErrRequiredFieldMissing}
	}

	cs := domain.NewChangeSet(id)
	cs.ApprovalState = packApproved.String(ep)
	cs.Description = packDesc.String(ep)

	for _, c := range containers {
		groups := ep.SelectElements(c.group)
		if len(groups) == 0 {
			continue
		}
		if err := parseKind(cs, c, groups, policy); err != nil {
			return nil, err
		}
	}

	logger.Debug("extension pack %s: %d changes", id, cs.Len())
	return cs, nil
}

func parseKind(cs *domain.ChangeSet, c container, groups []*etree.Element, policy domain.Policy) error {
	ek := policy.ExtractorFor(c.kind)
	extract, ok := extractors.ForKind(ek)
	if !ok {
		return fmt.Errorf("%w: no extractor for %s", domain.ErrInvalidInput, ek)
	}
	if ek != c.kind {
		logger.Warn("extension pack %s: %s entries are read with the %s extractor and fail unless they carry its key; "+
			"mapping awaits confirmation, set policy.extension_pack.%s to override", cs.ID, c.kind, ek, c.kind)
	}

	for _, g := range groups {
		for _, ch := range changes {
			for _, holder := range g.SelectElements(ch.tag) {
				for _, el := range holder.SelectElements(c.entity) {
					key, rec, err := extract(el, extractors.Options{Partial: ch.partial})
					if err != nil {
						return rekind(err, c.kind)
					}
					switch ch.ct {
					case domain.ChangeAdded:
						rec = withoutLayout(cs.ID, key, rec)
					case domain.ChangeRemoved:
						rec = nil
					}
					cs.Put(ch.ct, c.kind, key, rec)
				}
			}
		}
	}
	return nil
}

// withoutLayout gives inserted messages and components an empty
// breakdown. Extension packs carry no content rows, so their layout has to
// follow in an ad-hoc patch.
func withoutLayout(id, key string, rec any) any {
	switch r := rec.(type) {
	case domain.Message:
		logger.Warn("extension pack %s: message %s is inserted with an empty breakdown; content group %q is not part of the pack", id, key, r.ComponentRef)
		r.Breakdown = []domain.MessageContent{}
		return r
	case domain.Component:
		logger.Warn("extension pack %s: component %s is inserted with an empty breakdown", id, key)
		r.Breakdown = []domain.MessageContent{}
		return r
	}
	return rec
}

// rekind attributes extractor failures to the container kind.
func rekind(err error, kind domain.Kind) error {
	if ee, ok := err.(*domain.EntityError); ok {
		cp := *ee
		cp.Kind = kind
		return &cp
	}
	return err
}

package extractors

import (
	"github.com/beevik/etree"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// DocsOptions selects which documentation members an entity carries.
type DocsOptions struct {
	Description bool
	Usage       bool
	Volume      bool
	Elaboration bool
	Examples    bool
}

var (
	lookupDescription = Of(Elem("Description"))
	lookupUsage       = Of(Elem("Usage"))
	lookupVolume      = Of(Elem("Volume"))
	lookupElaboration = Of(Elem("Elaboration"))
	lookupTextID      = Of(Attr("textId"), Elem("TextID"))
)

// Docs reads the inline documentation of el and its phrase reference, if any.
func Docs(el *etree.Element, opts DocsOptions) (domain.Documentation, string) {
	var d domain.Documentation
	if opts.Description {
		d.Description = lookupDescription.String(el)
	}
	if opts.Usage {
		d.Usage = lookupUsage.String(el)
	}
	if opts.Volume {
		d.Volume = lookupVolume.String(el)
	}
	if opts.Elaboration {
		d.Elaboration = lookupElaboration.String(el)
	}
	if opts.Examples {
		d.Examples = Texts(el, "Example")
	}
	return d, lookupTextID.String(el)
}

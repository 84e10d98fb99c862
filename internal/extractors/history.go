package extractors

import (
	"errors"

	"github.com/beevik/etree"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// Version attribute prefixes, in output order.
const (
	keyAdded      = "added"
	keyUpdated    = "updated"
	keyDeprecated = "deprecated"
	keyReplaced   = "replaced"
)

// HistoryOptions selects which provenance members are read.
type HistoryOptions struct {
	// Replaced reads "replaced" and "ReplacedByField". Fields and enums only.
	Replaced bool

	// Partial allows a missing "added" version.
	Partial bool
}

// History reads the provenance block of el from its version attribute
// pairs. Only present members are set. A missing "added" version fails
// with domain.ErrRequiredFieldMissing unless opts.Partial is set.
func History(el *etree.Element, opts HistoryOptions) (domain.History, error) {
	a := presentOnly(attrs(el))

	var (
		h    domain.History
		errs []error
	)
	read := func(prefix string) *domain.Version {
		v, err := domain.VersionFromAttrs(a, prefix)
		if err != nil {
			errs = append(errs, &domain.EntityError{Field: prefix, Err: errors.Unwrap(err)})
		}
		return v
	}

	h.Added = read(keyAdded)
	h.Updated = read(keyUpdated)
	h.Deprecated = read(keyDeprecated)
	if opts.Replaced {
		h.Replaced = read(keyReplaced)
		h.Replacement = a["ReplacedByField"]
	}
	if issue := a["issue"]; issue != "" {
		h.Issues = []string{issue}
	}

	if len(errs) > 0 {
		return domain.History{}, errs[0]
	}
	if h.Added == nil && !opts.Partial {
		return domain.History{}, &domain.EntityError{Field: keyAdded, Err: domain.ErrRequiredFieldMissing}
	}
	return h, nil
}

// presentOnly drops empty attributes so that added="" reads as absent.
func presentOnly(a map[string]string) map[string]string {
	out := make(map[string]string, len(a))
	for k, v := range a {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

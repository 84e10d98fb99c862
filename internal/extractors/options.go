package extractors

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/custodia-labs/fixtodict/internal/core/domain"
)

// Options tunes extraction.
type Options struct {
	// Partial relaxes the "added" requirement. Extension-pack updates and
	// removals carry partial records.
	Partial bool
}

func (o Options) history(replaced bool) HistoryOptions {
	return HistoryOptions{Replaced: replaced, Partial: o.Partial}
}

// Extractor maps one element to a keyed record.
type Extractor[T any] func(el *etree.Element, opts Options) (string, T, error)

// RowExtractor maps one element to a record grouped by its parent.
type RowExtractor[T any] func(el *etree.Element, opts Options) (T, error)

// required returns the value of l or an attributed ErrRequiredFieldMissing.
func required(el *etree.Element, l Lookup, kind domain.Kind, key, field string) (string, error) {
	v, ok := l.Find(el)
	if !ok {
		return "", &domain.EntityError{Kind: kind, Key: key, Field: field, Err: domain.ErrRequiredFieldMissing}
	}
	return v, nil
}

// attribute fills the kind and key of an EntityError raised below the
// entity level.
func attribute(err error, kind domain.Kind, key string) error {
	if err == nil {
		return nil
	}
	if ee, ok := err.(*domain.EntityError); ok {
		cp := *ee
		if cp.Kind == "" {
			cp.Kind = kind
		}
		if cp.Key == "" {
			cp.Key = key
		}
		return &cp
	}
	return &domain.EntityError{Kind: kind, Key: key, Err: err}
}

// flag parses an optional boolean encoded as "0"/"1" or "true"/"false".
func flag(el *etree.Element, l Lookup, kind domain.Kind, key, field string) (*bool, error) {
	raw, ok := l.Find(el)
	if !ok {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, &domain.EntityError{Kind: kind, Key: key, Field: field, Err: domain.ErrInvalidInput}
	}
	return &b, nil
}

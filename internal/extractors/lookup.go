package extractors

import (
	"strings"

	"github.com/beevik/etree"
)

// Accessor reads one candidate encoding of a value from an element.
// It reports false when the value is absent or empty.
type Accessor func(el *etree.Element) (string, bool)

// Attr reads the attribute name.
func Attr(name string) Accessor {
	return func(el *etree.Element) (string, bool) {
		attr := el.SelectAttr(name)
		if attr == nil {
			return "", false
		}
		v := strings.TrimSpace(attr.Value)
		return v, v != ""
	}
}

// Elem reads the text of the first child element named name.
func Elem(name string) Accessor {
	return func(el *etree.Element) (string, bool) {
		child := el.SelectElement(name)
		if child == nil {
			return "", false
		}
		v := strings.TrimSpace(child.Text())
		return v, v != ""
	}
}

// Lookup is an ordered list of candidate accessors.
// The first accessor yielding a value wins; values are never merged.
type Lookup []Accessor

// Of builds a Lookup from candidates.
func Of(candidates ...Accessor) Lookup {
	return Lookup(candidates)
}

// Find returns the first present value.
func (l Lookup) Find(el *etree.Element) (string, bool) {
	for _, get := range l {
		if v, ok := get(el); ok {
			return v, true
		}
	}
	return "", false
}

// String returns the first present value or the empty string.
func (l Lookup) String(el *etree.Element) string {
	v, _ := l.Find(el)
	return v
}

// Texts returns the trimmed, non-empty texts of all children named name.
func Texts(el *etree.Element, name string) []string {
	var out []string
	for _, child := range el.SelectElements(name) {
		if v := strings.TrimSpace(child.Text()); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// attrs flattens the attributes of el into a map keyed by local name.
func attrs(el *etree.Element) map[string]string {
	m := make(map[string]string, len(el.Attr))
	for _, a := range el.Attr {
		m[a.Key] = strings.TrimSpace(a.Value)
	}
	return m
}
